package handlers

import (
	"context"
	"net/http"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JsonLDService interface {
	Generate(ctx context.Context, businessID uuid.UUID) (*entities.JsonLDFeed, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.JsonLDFeed, error)
}

// JsonLDHandler handles JSON-LD feed endpoints
type JsonLDHandler struct {
	jsonldUsecase JsonLDService
}

// NewJsonLDHandler creates a new JSON-LD handler
func NewJsonLDHandler(jsonldUsecase JsonLDService) *JsonLDHandler {
	return &JsonLDHandler{jsonldUsecase: jsonldUsecase}
}

// Generate builds a schema.org document from the business's current state
// and persists it as a new feed version.
// POST /api/v1/jsonld/generate?business_id=
func (h *JsonLDHandler) Generate(c *gin.Context) {
	businessID, err := uuid.Parse(c.Query("business_id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid business ID"))
		return
	}

	feed, err := h.jsonldUsecase.Generate(c.Request.Context(), businessID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, feed)
}

// GetByID gets a feed by ID
// GET /api/v1/jsonld/:id
func (h *JsonLDHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid feed ID"))
		return
	}

	feed, err := h.jsonldUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, feed)
}

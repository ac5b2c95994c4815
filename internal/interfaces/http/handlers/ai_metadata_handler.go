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

type AiMetadataService interface {
	Generate(ctx context.Context, businessID uuid.UUID) (*entities.AiMetadataResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AiMetadata, error)
}

// AiMetadataHandler handles AI metadata endpoints
type AiMetadataHandler struct {
	metadataUsecase AiMetadataService
}

// NewAiMetadataHandler creates a new AI metadata handler
func NewAiMetadataHandler(metadataUsecase AiMetadataService) *AiMetadataHandler {
	return &AiMetadataHandler{metadataUsecase: metadataUsecase}
}

// Generate produces and upserts SEO metadata for a business. A failed AI
// call still returns 200 with degraded=true and heuristic content.
// POST /api/v1/ai-metadata/generate?business_id=
func (h *AiMetadataHandler) Generate(c *gin.Context) {
	businessID, err := uuid.Parse(c.Query("business_id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid business ID"))
		return
	}

	metadataResponse, err := h.metadataUsecase.Generate(c.Request.Context(), businessID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, metadataResponse)
}

// GetByID gets a metadata row by ID
// GET /api/v1/ai-metadata/:id
func (h *AiMetadataHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid metadata ID"))
		return
	}

	metadata, err := h.metadataUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, metadata)
}

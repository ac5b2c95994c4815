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

type MediaService interface {
	Create(ctx context.Context, input *entities.MediaCreateInput) (*entities.MediaAsset, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MediaAsset, error)
}

// MediaHandler handles media asset endpoints
type MediaHandler struct {
	mediaUsecase MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaUsecase MediaService) *MediaHandler {
	return &MediaHandler{mediaUsecase: mediaUsecase}
}

// Create registers a media asset for a business
// POST /api/v1/media
func (h *MediaHandler) Create(c *gin.Context) {
	var input entities.MediaCreateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	media, err := h.mediaUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, media)
}

// GetByID gets a media asset by ID
// GET /api/v1/media/:id
func (h *MediaHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid media ID"))
		return
	}

	media, err := h.mediaUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, media)
}

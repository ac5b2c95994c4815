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

type OperationalInfoService interface {
	Create(ctx context.Context, input *entities.OperationalInfoCreateInput) (*entities.OperationalInfo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.OperationalInfo, error)
}

// OperationalInfoHandler handles operational info endpoints
type OperationalInfoHandler struct {
	opInfoUsecase OperationalInfoService
}

// NewOperationalInfoHandler creates a new operational info handler
func NewOperationalInfoHandler(opInfoUsecase OperationalInfoService) *OperationalInfoHandler {
	return &OperationalInfoHandler{opInfoUsecase: opInfoUsecase}
}

// Create creates the single operational info record for a business
// POST /api/v1/operational-info
func (h *OperationalInfoHandler) Create(c *gin.Context) {
	var input entities.OperationalInfoCreateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	info, err := h.opInfoUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, info)
}

// GetByID gets an operational info record by ID
// GET /api/v1/operational-info/:id
func (h *OperationalInfoHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid operational info ID"))
		return
	}

	info, err := h.opInfoUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, info)
}

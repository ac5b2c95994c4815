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

type ServiceService interface {
	Create(ctx context.Context, input *entities.ServiceCreateInput) (*entities.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error)
}

// ServiceHandler handles service catalog endpoints
type ServiceHandler struct {
	serviceUsecase ServiceService
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(serviceUsecase ServiceService) *ServiceHandler {
	return &ServiceHandler{serviceUsecase: serviceUsecase}
}

// Create creates a service, with optional restaurant or salon sub-record
// POST /api/v1/services
func (h *ServiceHandler) Create(c *gin.Context) {
	var input entities.ServiceCreateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	service, err := h.serviceUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, service)
}

// GetByID gets a service with its typed sub-record
// GET /api/v1/services/:id
func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid service ID"))
		return
	}

	service, err := h.serviceUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, service)
}

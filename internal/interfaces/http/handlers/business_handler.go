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

type BusinessService interface {
	Create(ctx context.Context, input *entities.BusinessCreateInput) (*entities.BusinessProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.BusinessUpdateInput) (*entities.BusinessProfile, error)
	Directory(ctx context.Context) ([]*entities.DirectoryEntry, error)
	List(ctx context.Context) ([]*entities.BusinessProfile, error)
}

// BusinessHandler handles business profile endpoints
type BusinessHandler struct {
	businessUsecase BusinessService
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(businessUsecase BusinessService) *BusinessHandler {
	return &BusinessHandler{businessUsecase: businessUsecase}
}

// Create creates a business profile
// POST /api/v1/business
func (h *BusinessHandler) Create(c *gin.Context) {
	var input entities.BusinessCreateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	business, err := h.businessUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, business)
}

// GetByID gets a business profile by ID
// GET /api/v1/business/:id
func (h *BusinessHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid business ID"))
		return
	}

	business, err := h.businessUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, business)
}

// Update partially updates a business profile
// PATCH /api/v1/business/:id
func (h *BusinessHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid business ID"))
		return
	}

	var input entities.BusinessUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	business, err := h.businessUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, business)
}

// Directory returns the aggregated snapshot of all published businesses
// GET /api/v1/business/directory-view
func (h *BusinessHandler) Directory(c *gin.Context) {
	entries, err := h.businessUsecase.Directory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"businesses": entries,
		"count":      len(entries),
	})
}

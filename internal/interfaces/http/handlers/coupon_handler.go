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

type CouponService interface {
	Create(ctx context.Context, input *entities.CouponCreateInput) (*entities.Coupon, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Coupon, error)
}

// CouponHandler handles coupon endpoints
type CouponHandler struct {
	couponUsecase CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponUsecase CouponService) *CouponHandler {
	return &CouponHandler{couponUsecase: couponUsecase}
}

// Create creates a coupon with a validity window
// POST /api/v1/coupons
func (h *CouponHandler) Create(c *gin.Context) {
	var input entities.CouponCreateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	coupon, err := h.couponUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, coupon)
}

// GetByID gets a coupon by ID
// GET /api/v1/coupons/:id
func (h *CouponHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid coupon ID"))
		return
	}

	coupon, err := h.couponUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, coupon)
}

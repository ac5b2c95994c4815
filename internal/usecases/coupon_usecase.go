package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/domain/repositories"
	"aivault.backend/internal/infrastructure/cache"
)

// CouponUsecase handles coupon creation and lookup
type CouponUsecase struct {
	couponRepo   repositories.CouponRepository
	businessRepo repositories.BusinessRepository
	cache        *cache.DirectoryCache
}

// NewCouponUsecase creates a new coupon usecase
func NewCouponUsecase(
	couponRepo repositories.CouponRepository,
	businessRepo repositories.BusinessRepository,
	directoryCache *cache.DirectoryCache,
) *CouponUsecase {
	return &CouponUsecase{
		couponRepo:   couponRepo,
		businessRepo: businessRepo,
		cache:        directoryCache,
	}
}

// Create creates a coupon for an existing business. The validity window is
// checked before anything is written.
func (u *CouponUsecase) Create(ctx context.Context, input *entities.CouponCreateInput) (*entities.Coupon, error) {
	if _, err := u.businessRepo.GetByID(ctx, input.BusinessID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, domainerrors.BadRequest(err.Error())
	}

	coupon := &entities.Coupon{
		BusinessID:    input.BusinessID,
		Code:          input.Code,
		DiscountValue: input.DiscountValue,
		ValidFrom:     input.ValidFrom,
		ValidUntil:    input.ValidUntil,
		IsActive:      true,
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}
	if input.Description != "" {
		coupon.Description.SetValid(input.Description)
	}
	if input.TermsConditions != "" {
		coupon.TermsConditions.SetValid(input.TermsConditions)
	}

	if err := u.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	u.cache.Invalidate()
	return coupon, nil
}

// GetByID gets a coupon by ID
func (u *CouponUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Coupon, error) {
	coupon, err := u.couponRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Coupon not found")
		}
		return nil, err
	}
	return coupon, nil
}

package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/domain/repositories"
	"aivault.backend/internal/infrastructure/cache"
	"aivault.backend/pkg/logger"
)

// BusinessUsecase handles business profile logic and the aggregated
// directory view
type BusinessUsecase struct {
	businessRepo repositories.BusinessRepository
	userRepo     repositories.UserRepository
	serviceRepo  repositories.ServiceRepository
	mediaRepo    repositories.MediaRepository
	couponRepo   repositories.CouponRepository
	opInfoRepo   repositories.OperationalInfoRepository
	cache        *cache.DirectoryCache
}

// NewBusinessUsecase creates a new business usecase
func NewBusinessUsecase(
	businessRepo repositories.BusinessRepository,
	userRepo repositories.UserRepository,
	serviceRepo repositories.ServiceRepository,
	mediaRepo repositories.MediaRepository,
	couponRepo repositories.CouponRepository,
	opInfoRepo repositories.OperationalInfoRepository,
	directoryCache *cache.DirectoryCache,
) *BusinessUsecase {
	return &BusinessUsecase{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		serviceRepo:  serviceRepo,
		mediaRepo:    mediaRepo,
		couponRepo:   couponRepo,
		opInfoRepo:   opInfoRepo,
		cache:        directoryCache,
	}
}

// Create creates a business profile for an existing owner
func (u *BusinessUsecase) Create(ctx context.Context, input *entities.BusinessCreateInput) (*entities.BusinessProfile, error) {
	if _, err := u.userRepo.GetByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Owner not found")
		}
		return nil, err
	}

	if input.BusinessType != "" && !entities.ValidBusinessType(entities.BusinessType(input.BusinessType)) {
		return nil, domainerrors.BadRequest("businessType must be one of restaurant, salon, clinic")
	}

	business := &entities.BusinessProfile{
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		BusinessType: entities.BusinessType(input.BusinessType),
		Published:    true,
		Version:      1,
	}
	if input.Published != nil {
		business.Published = *input.Published
	}
	if input.Description != "" {
		business.Description.SetValid(input.Description)
	}
	if input.Phone != "" {
		business.Phone.SetValid(input.Phone)
	}
	if input.Website != "" {
		business.Website.SetValid(input.Website)
	}
	if input.Address != "" {
		business.Address.SetValid(input.Address)
	}
	if input.Latitude != nil {
		business.Latitude.SetValid(*input.Latitude)
	}
	if input.Longitude != nil {
		business.Longitude.SetValid(*input.Longitude)
	}
	if input.Timezone != "" {
		business.Timezone.SetValid(input.Timezone)
	}
	if input.QuoteSlogan != "" {
		business.QuoteSlogan.SetValid(input.QuoteSlogan)
	}
	if input.IdentificationMark != "" {
		business.IdentificationMark.SetValid(input.IdentificationMark)
	}

	if err := u.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	u.cache.Invalidate()
	return business, nil
}

// GetByID gets a business profile by ID
func (u *BusinessUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error) {
	business, err := u.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}
	return business, nil
}

// Update applies a partial update to a business profile. Only fields present
// in the input change; the version counter always increments.
func (u *BusinessUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.BusinessUpdateInput) (*entities.BusinessProfile, error) {
	if input.BusinessType != nil && !entities.ValidBusinessType(entities.BusinessType(*input.BusinessType)) {
		return nil, domainerrors.BadRequest("businessType must be one of restaurant, salon, clinic")
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.BusinessType != nil {
		updates["business_type"] = *input.BusinessType
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Website != nil {
		updates["website"] = *input.Website
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Latitude != nil {
		updates["latitude"] = *input.Latitude
	}
	if input.Longitude != nil {
		updates["longitude"] = *input.Longitude
	}
	if input.Timezone != nil {
		updates["timezone"] = *input.Timezone
	}
	if input.QuoteSlogan != nil {
		updates["quote_slogan"] = *input.QuoteSlogan
	}
	if input.IdentificationMark != nil {
		updates["identification_mark"] = *input.IdentificationMark
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}

	business, err := u.businessRepo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	u.cache.Invalidate()
	return business, nil
}

// Directory returns the aggregated listing view, read-through cached
func (u *BusinessUsecase) Directory(ctx context.Context) ([]*entities.DirectoryEntry, error) {
	if entries, ok := u.cache.Get(); ok {
		return entries, nil
	}

	businesses, err := u.businessRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.DirectoryEntry, 0, len(businesses))
	for _, business := range businesses {
		if !business.Published {
			continue
		}
		entry, err := u.buildEntry(ctx, business)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	u.cache.Set(entries)
	logger.Debug(ctx, "directory snapshot rebuilt")
	return entries, nil
}

// List returns every business profile, published or not
func (u *BusinessUsecase) List(ctx context.Context) ([]*entities.BusinessProfile, error) {
	return u.businessRepo.List(ctx)
}

func (u *BusinessUsecase) buildEntry(ctx context.Context, business *entities.BusinessProfile) (*entities.DirectoryEntry, error) {
	entry := &entities.DirectoryEntry{
		Business: business,
		Services: []*entities.Service{},
		Coupons:  []*entities.Coupon{},
	}

	thumbnail, err := u.mediaRepo.FirstImage(ctx, business.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	entry.Thumbnail = thumbnail

	services, err := u.serviceRepo.GetByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	entry.Services = services

	coupons, err := u.couponRepo.GetActiveByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	entry.Coupons = coupons

	opInfo, err := u.opInfoRepo.GetByBusinessID(ctx, business.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	entry.OperationalInfo = opInfo

	return entry, nil
}

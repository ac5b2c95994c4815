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

// OperationalInfoUsecase handles hours and amenity records
type OperationalInfoUsecase struct {
	opInfoRepo   repositories.OperationalInfoRepository
	businessRepo repositories.BusinessRepository
	cache        *cache.DirectoryCache
}

// NewOperationalInfoUsecase creates a new operational info usecase
func NewOperationalInfoUsecase(
	opInfoRepo repositories.OperationalInfoRepository,
	businessRepo repositories.BusinessRepository,
	directoryCache *cache.DirectoryCache,
) *OperationalInfoUsecase {
	return &OperationalInfoUsecase{
		opInfoRepo:   opInfoRepo,
		businessRepo: businessRepo,
		cache:        directoryCache,
	}
}

// Create creates the operational info row for a business. A business holds
// at most one row; a second create conflicts.
func (u *OperationalInfoUsecase) Create(ctx context.Context, input *entities.OperationalInfoCreateInput) (*entities.OperationalInfo, error) {
	if _, err := u.businessRepo.GetByID(ctx, input.BusinessID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	_, err := u.opInfoRepo.GetByBusinessID(ctx, input.BusinessID)
	if err == nil {
		return nil, domainerrors.Conflict("Operational info already exists for this business")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	offDays := input.OffDays
	if offDays == nil {
		offDays = []string{}
	}

	info := &entities.OperationalInfo{
		BusinessID:   input.BusinessID,
		OpeningHours: input.OpeningHours,
		ClosingHours: input.ClosingHours,
		OffDays:      offDays,
	}
	if input.WifiAvailable != nil {
		info.WifiAvailable = *input.WifiAvailable
	}
	if input.DeliveryOptions != "" {
		info.DeliveryOptions.SetValid(input.DeliveryOptions)
	}
	if input.ReservationOptions != "" {
		info.ReservationOptions.SetValid(input.ReservationOptions)
	}
	if input.AccessibilityFeatures != "" {
		info.AccessibilityFeatures.SetValid(input.AccessibilityFeatures)
	}
	if input.NearbyParkingSpot != "" {
		info.NearbyParkingSpot.SetValid(input.NearbyParkingSpot)
	}
	if input.SpecialNotes != "" {
		info.SpecialNotes.SetValid(input.SpecialNotes)
	}

	if err := u.opInfoRepo.Create(ctx, info); err != nil {
		return nil, err
	}

	u.cache.Invalidate()
	return info, nil
}

// GetByID gets operational info by ID
func (u *OperationalInfoUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.OperationalInfo, error) {
	info, err := u.opInfoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Operational info not found")
		}
		return nil, err
	}
	return info, nil
}

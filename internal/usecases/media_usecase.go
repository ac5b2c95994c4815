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

// MediaUsecase handles media asset registration
type MediaUsecase struct {
	mediaRepo    repositories.MediaRepository
	businessRepo repositories.BusinessRepository
	cache        *cache.DirectoryCache
}

// NewMediaUsecase creates a new media usecase
func NewMediaUsecase(
	mediaRepo repositories.MediaRepository,
	businessRepo repositories.BusinessRepository,
	directoryCache *cache.DirectoryCache,
) *MediaUsecase {
	return &MediaUsecase{
		mediaRepo:    mediaRepo,
		businessRepo: businessRepo,
		cache:        directoryCache,
	}
}

// Create registers a media asset for an existing business
func (u *MediaUsecase) Create(ctx context.Context, input *entities.MediaCreateInput) (*entities.MediaAsset, error) {
	if _, err := u.businessRepo.GetByID(ctx, input.BusinessID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	mediaType := entities.MediaType(input.MediaType)
	if !entities.ValidMediaType(mediaType) {
		return nil, domainerrors.BadRequest("mediaType must be one of image, video, document")
	}

	asset := &entities.MediaAsset{
		BusinessID: input.BusinessID,
		MediaType:  mediaType,
		URL:        input.URL,
	}
	if input.AltText != "" {
		asset.AltText.SetValid(input.AltText)
	}

	if err := u.mediaRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	u.cache.Invalidate()
	return asset, nil
}

// GetByID gets a media asset by ID
func (u *MediaUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.MediaAsset, error) {
	asset, err := u.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Media asset not found")
		}
		return nil, err
	}
	return asset, nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/infrastructure/models"
)

// MediaRepository implements media asset data operations
type MediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create registers a new media asset
func (r *MediaRepository) Create(ctx context.Context, asset *entities.MediaAsset) error {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	if asset.UploadedAt.IsZero() {
		asset.UploadedAt = time.Now().UTC()
	}
	m := &models.MediaAsset{
		ID:         asset.ID,
		BusinessID: asset.BusinessID,
		MediaType:  string(asset.MediaType),
		URL:        asset.URL,
		AltText:    asset.AltText.Ptr(),
		UploadedAt: asset.UploadedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a media asset by ID
func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MediaAsset, error) {
	var m models.MediaAsset
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByBusinessID lists all media assets of a business
func (r *MediaRepository) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.MediaAsset, error) {
	var assetModels []models.MediaAsset
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("uploaded_at ASC").
		Find(&assetModels).Error; err != nil {
		return nil, err
	}
	assets := make([]*entities.MediaAsset, 0, len(assetModels))
	for i := range assetModels {
		assets = append(assets, r.toEntity(&assetModels[i]))
	}
	return assets, nil
}

// FirstImage returns the oldest image asset for a business
func (r *MediaRepository) FirstImage(ctx context.Context, businessID uuid.UUID) (*entities.MediaAsset, error) {
	var m models.MediaAsset
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND media_type = ?", businessID, string(entities.MediaTypeImage)).
		Order("uploaded_at ASC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

// CountByBusinessID counts media assets belonging to a business
func (r *MediaRepository) CountByBusinessID(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MediaAsset{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	return count, err
}

func (r *MediaRepository) toEntity(m *models.MediaAsset) *entities.MediaAsset {
	return &entities.MediaAsset{
		ID:         m.ID,
		BusinessID: m.BusinessID,
		MediaType:  entities.MediaType(m.MediaType),
		URL:        m.URL,
		AltText:    null.StringFromPtr(m.AltText),
		UploadedAt: m.UploadedAt,
	}
}

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

// JsonLDFeedRepository implements the append-only structured-data feed store
type JsonLDFeedRepository struct {
	db *gorm.DB
}

// NewJsonLDFeedRepository creates a new JSON-LD feed repository
func NewJsonLDFeedRepository(db *gorm.DB) *JsonLDFeedRepository {
	return &JsonLDFeedRepository{db: db}
}

// Create appends a new generated feed row
func (r *JsonLDFeedRepository) Create(ctx context.Context, feed *entities.JsonLDFeed) error {
	if feed.ID == uuid.Nil {
		feed.ID = uuid.New()
	}
	if feed.GeneratedAt.IsZero() {
		feed.GeneratedAt = time.Now().UTC()
	}
	m := &models.JsonLDFeed{
		ID:               feed.ID,
		BusinessID:       feed.BusinessID,
		SchemaType:       string(feed.SchemaType),
		JsonLDData:       feed.JsonLDData,
		IsValid:          feed.IsValid,
		ValidationErrors: feed.ValidationErrors.Ptr(),
		GeneratedAt:      feed.GeneratedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a feed row by ID
func (r *JsonLDFeedRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.JsonLDFeed, error) {
	var m models.JsonLDFeed
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// LatestByBusinessID gets the most recently generated feed row for a business
func (r *JsonLDFeedRepository) LatestByBusinessID(ctx context.Context, businessID uuid.UUID) (*entities.JsonLDFeed, error) {
	var m models.JsonLDFeed
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("generated_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ExistsForBusiness reports whether any feed row exists for a business
func (r *JsonLDFeedRepository) ExistsForBusiness(ctx context.Context, businessID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.JsonLDFeed{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *JsonLDFeedRepository) toEntity(m *models.JsonLDFeed) *entities.JsonLDFeed {
	return &entities.JsonLDFeed{
		ID:               m.ID,
		BusinessID:       m.BusinessID,
		SchemaType:       entities.SchemaType(m.SchemaType),
		JsonLDData:       m.JsonLDData,
		IsValid:          m.IsValid,
		ValidationErrors: null.StringFromPtr(m.ValidationErrors),
		GeneratedAt:      m.GeneratedAt,
	}
}

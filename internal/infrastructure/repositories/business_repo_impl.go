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

// BusinessRepository implements business profile data operations
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create creates a new business profile
func (r *BusinessRepository) Create(ctx context.Context, business *entities.BusinessProfile) error {
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}
	if business.Version == 0 {
		business.Version = 1
	}
	if business.CreatedAt.IsZero() {
		business.CreatedAt = time.Now().UTC()
	}
	m := r.toModel(business)
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a business by ID
func (r *BusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error) {
	var m models.BusinessProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByOwnerID gets the business owned by a user
func (r *BusinessRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entities.BusinessProfile, error) {
	var m models.BusinessProfile
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update applies column updates, bumps the version and returns the fresh row
func (r *BusinessRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*entities.BusinessProfile, error) {
	updates["updated_at"] = time.Now().UTC()
	updates["version"] = gorm.Expr("version + 1")

	result := r.db.WithContext(ctx).Model(&models.BusinessProfile{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// List returns all business profiles ordered by creation time
func (r *BusinessRepository) List(ctx context.Context) ([]*entities.BusinessProfile, error) {
	var businessModels []models.BusinessProfile
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&businessModels).Error; err != nil {
		return nil, err
	}
	businesses := make([]*entities.BusinessProfile, 0, len(businessModels))
	for i := range businessModels {
		businesses = append(businesses, r.toEntity(&businessModels[i]))
	}
	return businesses, nil
}

func (r *BusinessRepository) toModel(b *entities.BusinessProfile) *models.BusinessProfile {
	m := &models.BusinessProfile{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		Name:               b.Name,
		Description:        b.Description.Ptr(),
		Phone:              b.Phone.Ptr(),
		Website:            b.Website.Ptr(),
		Address:            b.Address.Ptr(),
		Latitude:           b.Latitude.Ptr(),
		Longitude:          b.Longitude.Ptr(),
		Timezone:           b.Timezone.Ptr(),
		QuoteSlogan:        b.QuoteSlogan.Ptr(),
		IdentificationMark: b.IdentificationMark.Ptr(),
		Published:          b.Published,
		Version:            b.Version,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt.Ptr(),
	}
	if b.BusinessType != "" {
		bt := string(b.BusinessType)
		m.BusinessType = &bt
	}
	return m
}

func (r *BusinessRepository) toEntity(m *models.BusinessProfile) *entities.BusinessProfile {
	b := &entities.BusinessProfile{
		ID:                 m.ID,
		OwnerID:            m.OwnerID,
		Name:               m.Name,
		Description:        null.StringFromPtr(m.Description),
		Phone:              null.StringFromPtr(m.Phone),
		Website:            null.StringFromPtr(m.Website),
		Address:            null.StringFromPtr(m.Address),
		Latitude:           null.Float64FromPtr(m.Latitude),
		Longitude:          null.Float64FromPtr(m.Longitude),
		Timezone:           null.StringFromPtr(m.Timezone),
		QuoteSlogan:        null.StringFromPtr(m.QuoteSlogan),
		IdentificationMark: null.StringFromPtr(m.IdentificationMark),
		Published:          m.Published,
		Version:            m.Version,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          null.TimeFromPtr(m.UpdatedAt),
	}
	if m.BusinessType != nil {
		b.BusinessType = entities.BusinessType(*m.BusinessType)
	}
	return b
}

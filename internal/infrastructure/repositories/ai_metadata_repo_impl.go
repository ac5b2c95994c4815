package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/infrastructure/models"
)

// AiMetadataRepository implements AI metadata data operations
type AiMetadataRepository struct {
	db *gorm.DB
}

// NewAiMetadataRepository creates a new AI metadata repository
func NewAiMetadataRepository(db *gorm.DB) *AiMetadataRepository {
	return &AiMetadataRepository{db: db}
}

// Upsert replaces the metadata row for the business, inserting if none exists
func (r *AiMetadataRepository) Upsert(ctx context.Context, metadata *entities.AiMetadata) error {
	if metadata.GeneratedAt.IsZero() {
		metadata.GeneratedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.AiMetadata
		err := tx.Where("business_id = ?", metadata.BusinessID).First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if metadata.ID == uuid.Nil {
				metadata.ID = uuid.New()
			}
			return tx.Create(r.toModel(metadata)).Error
		}
		metadata.ID = existing.ID
		return tx.Model(&models.AiMetadata{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"keywords":           metadata.Keywords,
				"extracted_insights": metadata.ExtractedInsights,
				"detected_entities":  metadata.DetectedEntities,
				"intent_labels":      metadata.IntentLabels,
				"generated_at":       metadata.GeneratedAt,
			}).Error
	})
}

// GetByID gets metadata by ID
func (r *AiMetadataRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AiMetadata, error) {
	var m models.AiMetadata
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByBusinessID gets the metadata row for a business
func (r *AiMetadataRepository) GetByBusinessID(ctx context.Context, businessID uuid.UUID) (*entities.AiMetadata, error) {
	var m models.AiMetadata
	if err := r.db.WithContext(ctx).Where("business_id = ?", businessID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AiMetadataRepository) toModel(e *entities.AiMetadata) *models.AiMetadata {
	return &models.AiMetadata{
		ID:                e.ID,
		BusinessID:        e.BusinessID,
		Keywords:          e.Keywords,
		ExtractedInsights: e.ExtractedInsights,
		DetectedEntities:  e.DetectedEntities,
		IntentLabels:      e.IntentLabels,
		GeneratedAt:       e.GeneratedAt,
	}
}

func (r *AiMetadataRepository) toEntity(m *models.AiMetadata) *entities.AiMetadata {
	return &entities.AiMetadata{
		ID:                m.ID,
		BusinessID:        m.BusinessID,
		Keywords:          m.Keywords,
		ExtractedInsights: m.ExtractedInsights,
		DetectedEntities:  m.DetectedEntities,
		IntentLabels:      m.IntentLabels,
		GeneratedAt:       m.GeneratedAt,
	}
}

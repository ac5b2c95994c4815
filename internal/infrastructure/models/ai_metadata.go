package models

import (
	"time"

	"github.com/google/uuid"
)

type AiMetadata struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Keywords          string    `gorm:"type:text"`
	ExtractedInsights string    `gorm:"type:text"`
	DetectedEntities  string    `gorm:"type:text"`
	IntentLabels      string    `gorm:"type:text"`
	GeneratedAt       time.Time `gorm:"not null"`
}

func (AiMetadata) TableName() string {
	return "ai_metadata"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type MediaAsset struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index"`
	MediaType  string    `gorm:"type:varchar(20);not null"`
	URL        string    `gorm:"type:text;not null"`
	AltText    *string   `gorm:"type:text"`
	UploadedAt time.Time
}

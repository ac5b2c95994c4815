package models

import (
	"time"

	"github.com/google/uuid"
)

type JsonLDFeed struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SchemaType       string    `gorm:"type:varchar(50);not null"`
	JsonLDData       string    `gorm:"type:text;not null"`
	IsValid          bool      `gorm:"not null;default:false"`
	ValidationErrors *string   `gorm:"type:text"`
	GeneratedAt      time.Time `gorm:"not null"`
}

func (JsonLDFeed) TableName() string {
	return "jsonld_feed"
}

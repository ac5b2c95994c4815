package models

import (
	"time"

	"github.com/google/uuid"
)

type OperationalInfo struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessID            uuid.UUID `gorm:"type:uuid;not null;index"`
	OpeningHours          string    `gorm:"type:varchar(100);not null"`
	ClosingHours          string    `gorm:"type:varchar(100);not null"`
	OffDays               string    `gorm:"type:jsonb;default:'[]'"`
	DeliveryOptions       *string   `gorm:"type:text"`
	ReservationOptions    *string   `gorm:"type:text"`
	WifiAvailable         bool      `gorm:"default:false"`
	AccessibilityFeatures *string   `gorm:"type:text"`
	NearbyParkingSpot     *string   `gorm:"type:text"`
	SpecialNotes          *string   `gorm:"type:text"`
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}

func (OperationalInfo) TableName() string {
	return "operational_info"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceType string    `gorm:"type:varchar(50);not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Currency    string    `gorm:"type:varchar(10);not null;default:'INR'"`
	IsAvailable bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type RestaurantServiceFields struct {
	ServiceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CuisineType string    `gorm:"type:varchar(100);not null"`
	DietaryTags *string   `gorm:"type:text"`
	PortionSize *string   `gorm:"type:varchar(50)"`
	IsVegan     bool      `gorm:"default:false"`
}

func (RestaurantServiceFields) TableName() string {
	return "restaurant_service_fields"
}

type SalonServiceFields struct {
	ServiceID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	DurationMinutes *int
	StylistRequired bool   `gorm:"default:false"`
	GenderSpecific  string `gorm:"type:varchar(20);not null;default:'unisex'"`
}

func (SalonServiceFields) TableName() string {
	return "salon_service_fields"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Code            string    `gorm:"type:varchar(64);not null"`
	Description     *string   `gorm:"type:text"`
	DiscountValue   string    `gorm:"type:varchar(50);not null"`
	ValidFrom       time.Time `gorm:"not null"`
	ValidUntil      time.Time `gorm:"not null"`
	TermsConditions *string   `gorm:"type:text"`
	// No default tag: gorm drops zero-valued fields that carry one on
	// insert, which would turn isActive:false into true.
	IsActive bool `gorm:"not null"`
}

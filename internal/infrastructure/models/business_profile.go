package models

import (
	"time"

	"github.com/google/uuid"
)

type BusinessProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Description        *string   `gorm:"type:text"`
	BusinessType       *string   `gorm:"type:varchar(50)"`
	Phone              *string   `gorm:"type:varchar(50)"`
	Website            *string   `gorm:"type:varchar(255)"`
	Address            *string   `gorm:"type:text"`
	Latitude           *float64
	Longitude          *float64
	Timezone           *string `gorm:"type:varchar(100)"`
	QuoteSlogan        *string `gorm:"type:text"`
	IdentificationMark *string `gorm:"type:text"`
	// No default tag: gorm drops zero-valued fields that carry one on
	// insert, which would publish a profile created with published:false.
	Published bool `gorm:"not null"`
	Version   int  `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

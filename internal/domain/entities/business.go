package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BusinessType represents the closed set of supported business categories
type BusinessType string

const (
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeSalon      BusinessType = "salon"
	BusinessTypeClinic     BusinessType = "clinic"
)

// ValidBusinessType reports whether t is a recognized category
func ValidBusinessType(t BusinessType) bool {
	switch t {
	case BusinessTypeRestaurant, BusinessTypeSalon, BusinessTypeClinic:
		return true
	}
	return false
}

// BusinessProfile represents a directory listing owned by a user
type BusinessProfile struct {
	ID                 uuid.UUID    `json:"id"`
	OwnerID            uuid.UUID    `json:"ownerId"`
	Name               string       `json:"name"`
	Description        null.String  `json:"description,omitempty"`
	BusinessType       BusinessType `json:"businessType,omitempty"`
	Phone              null.String  `json:"phone,omitempty"`
	Website            null.String  `json:"website,omitempty"`
	Address            null.String  `json:"address,omitempty"`
	Latitude           null.Float64 `json:"latitude,omitempty"`
	Longitude          null.Float64 `json:"longitude,omitempty"`
	Timezone           null.String  `json:"timezone,omitempty"`
	QuoteSlogan        null.String  `json:"quoteSlogan,omitempty"`
	IdentificationMark null.String  `json:"identificationMark,omitempty"`
	Published          bool         `json:"published"`
	Version            int          `json:"version"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          null.Time    `json:"updatedAt,omitempty"`
}

// BusinessCreateInput represents input for creating a business profile
type BusinessCreateInput struct {
	OwnerID            uuid.UUID `json:"ownerId" binding:"required"`
	Name               string    `json:"name" binding:"required,min=1,max=255"`
	Description        string    `json:"description,omitempty"`
	BusinessType       string    `json:"businessType,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Website            string    `json:"website,omitempty"`
	Address            string    `json:"address,omitempty"`
	Latitude           *float64  `json:"latitude,omitempty"`
	Longitude          *float64  `json:"longitude,omitempty"`
	Timezone           string    `json:"timezone,omitempty"`
	QuoteSlogan        string    `json:"quoteSlogan,omitempty"`
	IdentificationMark string    `json:"identificationMark,omitempty"`
	Published          *bool     `json:"published,omitempty"`
}

// BusinessUpdateInput represents a partial update; only non-nil fields are applied
type BusinessUpdateInput struct {
	Name               *string  `json:"name,omitempty"`
	Description        *string  `json:"description,omitempty"`
	BusinessType       *string  `json:"businessType,omitempty"`
	Phone              *string  `json:"phone,omitempty"`
	Website            *string  `json:"website,omitempty"`
	Address            *string  `json:"address,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	Timezone           *string  `json:"timezone,omitempty"`
	QuoteSlogan        *string  `json:"quoteSlogan,omitempty"`
	IdentificationMark *string  `json:"identificationMark,omitempty"`
	Published          *bool    `json:"published,omitempty"`
}

// DirectoryEntry is one business enriched with its related rows for the
// aggregated directory view
type DirectoryEntry struct {
	Business        *BusinessProfile `json:"business"`
	Thumbnail       *MediaAsset      `json:"thumbnail,omitempty"`
	Services        []*Service       `json:"services"`
	Coupons         []*Coupon        `json:"coupons"`
	OperationalInfo *OperationalInfo `json:"operationalInfo,omitempty"`
}

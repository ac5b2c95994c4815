package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OperationalInfo holds hours, off-days and amenities for a business.
// At most one row exists per business.
type OperationalInfo struct {
	ID                    uuid.UUID   `json:"id"`
	BusinessID            uuid.UUID   `json:"businessId"`
	OpeningHours          string      `json:"openingHours"`
	ClosingHours          string      `json:"closingHours"`
	OffDays               []string    `json:"offDays"`
	DeliveryOptions       null.String `json:"deliveryOptions,omitempty"`
	ReservationOptions    null.String `json:"reservationOptions,omitempty"`
	WifiAvailable         bool        `json:"wifiAvailable"`
	AccessibilityFeatures null.String `json:"accessibilityFeatures,omitempty"`
	NearbyParkingSpot     null.String `json:"nearbyParkingSpot,omitempty"`
	SpecialNotes          null.String `json:"specialNotes,omitempty"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             null.Time   `json:"updatedAt,omitempty"`
}

// OperationalInfoCreateInput represents input for creating operational info
type OperationalInfoCreateInput struct {
	BusinessID            uuid.UUID `json:"businessId" binding:"required"`
	OpeningHours          string    `json:"openingHours" binding:"required"`
	ClosingHours          string    `json:"closingHours" binding:"required"`
	OffDays               []string  `json:"offDays,omitempty"`
	DeliveryOptions       string    `json:"deliveryOptions,omitempty"`
	ReservationOptions    string    `json:"reservationOptions,omitempty"`
	WifiAvailable         *bool     `json:"wifiAvailable,omitempty"`
	AccessibilityFeatures string    `json:"accessibilityFeatures,omitempty"`
	NearbyParkingSpot     string    `json:"nearbyParkingSpot,omitempty"`
	SpecialNotes          string    `json:"specialNotes,omitempty"`
}

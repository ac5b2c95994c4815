package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ServiceType mirrors the business categories a service can belong to
type ServiceType string

const (
	ServiceTypeRestaurant ServiceType = "restaurant"
	ServiceTypeSalon      ServiceType = "salon"
	ServiceTypeClinic     ServiceType = "clinic"
)

// ValidServiceType reports whether t is a recognized service type
func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServiceTypeRestaurant, ServiceTypeSalon, ServiceTypeClinic:
		return true
	}
	return false
}

// GenderSpecific is the audience restriction for salon services
type GenderSpecific string

const (
	GenderMale   GenderSpecific = "male"
	GenderFemale GenderSpecific = "female"
	GenderUnisex GenderSpecific = "unisex"
)

// Service represents a single offering of a business
type Service struct {
	ID          uuid.UUID   `json:"id"`
	BusinessID  uuid.UUID   `json:"businessId"`
	ServiceType ServiceType `json:"serviceType"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	Price       float64     `json:"price"`
	Currency    string      `json:"currency"`
	IsAvailable bool        `json:"isAvailable"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   null.Time   `json:"updatedAt,omitempty"`

	RestaurantFields *RestaurantServiceFields `json:"restaurantFields,omitempty"`
	SalonFields      *SalonServiceFields      `json:"salonFields,omitempty"`
}

// RestaurantServiceFields is the restaurant specific 1:1 sub-record
type RestaurantServiceFields struct {
	ServiceID   uuid.UUID   `json:"serviceId"`
	CuisineType string      `json:"cuisineType"`
	DietaryTags null.String `json:"dietaryTags,omitempty"`
	PortionSize null.String `json:"portionSize,omitempty"`
	IsVegan     bool        `json:"isVegan"`
}

// SalonServiceFields is the salon specific 1:1 sub-record
type SalonServiceFields struct {
	ServiceID       uuid.UUID      `json:"serviceId"`
	DurationMinutes null.Int       `json:"durationMinutes,omitempty"`
	StylistRequired bool           `json:"stylistRequired"`
	GenderSpecific  GenderSpecific `json:"genderSpecific"`
}

// ServiceCreateInput represents input for creating a service
type ServiceCreateInput struct {
	BusinessID  uuid.UUID `json:"businessId" binding:"required"`
	ServiceType string    `json:"serviceType" binding:"required"`
	Name        string    `json:"name" binding:"required,min=1,max=255"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" binding:"required,gte=0"`
	Currency    string    `json:"currency,omitempty"`
	IsAvailable *bool     `json:"isAvailable,omitempty"`

	RestaurantFields *RestaurantFieldsInput `json:"restaurantFields,omitempty"`
	SalonFields      *SalonFieldsInput      `json:"salonFields,omitempty"`
}

// RestaurantFieldsInput is the optional restaurant sub-record payload
type RestaurantFieldsInput struct {
	CuisineType string `json:"cuisineType" binding:"required"`
	DietaryTags string `json:"dietaryTags,omitempty"`
	PortionSize string `json:"portionSize,omitempty"`
	IsVegan     *bool  `json:"isVegan,omitempty"`
}

// SalonFieldsInput is the optional salon sub-record payload
type SalonFieldsInput struct {
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
	StylistRequired *bool  `json:"stylistRequired,omitempty"`
	GenderSpecific  string `json:"genderSpecific,omitempty"`
}

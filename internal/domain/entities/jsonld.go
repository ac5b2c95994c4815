package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SchemaType is the schema.org type assigned to a generated document
type SchemaType string

const (
	SchemaTypeRestaurant    SchemaType = "Restaurant"
	SchemaTypeHairSalon     SchemaType = "HairSalon"
	SchemaTypeMedicalClinic SchemaType = "MedicalClinic"
	SchemaTypeLocalBusiness SchemaType = "LocalBusiness"
)

// SchemaTypeForBusiness maps a business category to the closest schema.org
// type, defaulting to LocalBusiness for unrecognized categories.
func SchemaTypeForBusiness(t BusinessType) SchemaType {
	switch t {
	case BusinessTypeRestaurant:
		return SchemaTypeRestaurant
	case BusinessTypeSalon:
		return SchemaTypeHairSalon
	case BusinessTypeClinic:
		return SchemaTypeMedicalClinic
	default:
		return SchemaTypeLocalBusiness
	}
}

// JsonLDFeed is one append-only generated structured-data document
type JsonLDFeed struct {
	ID               uuid.UUID   `json:"id"`
	BusinessID       uuid.UUID   `json:"businessId"`
	SchemaType       SchemaType  `json:"schemaType"`
	JsonLDData       string      `json:"jsonldData"`
	IsValid          bool        `json:"isValid"`
	ValidationErrors null.String `json:"validationErrors,omitempty"`
	GeneratedAt      time.Time   `json:"generatedAt"`
}

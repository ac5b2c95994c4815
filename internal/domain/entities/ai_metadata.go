package entities

import (
	"time"

	"github.com/google/uuid"
)

// AiMetadata holds SEO strings generated for a business. All four content
// fields are flat, comma-joined strings at the point of persistence, never
// structured lists.
type AiMetadata struct {
	ID                uuid.UUID `json:"id"`
	BusinessID        uuid.UUID `json:"businessId"`
	Keywords          string    `json:"keywords"`
	ExtractedInsights string    `json:"extractedInsights"`
	DetectedEntities  string    `json:"detectedEntities"`
	IntentLabels      string    `json:"intentLabels"`
	GeneratedAt       time.Time `json:"generatedAt"`
}

// AiMetadataResponse wraps a generated metadata row with the degraded flag
type AiMetadataResponse struct {
	Metadata *AiMetadata `json:"metadata"`
	Degraded bool        `json:"degraded"`
}

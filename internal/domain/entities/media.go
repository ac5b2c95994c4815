package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MediaType represents the kind of asset stored for a business
type MediaType string

const (
	MediaTypeImage    MediaType = "image"
	MediaTypeVideo    MediaType = "video"
	MediaTypeDocument MediaType = "document"
)

// ValidMediaType reports whether t is a recognized media type
func ValidMediaType(t MediaType) bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo, MediaTypeDocument:
		return true
	}
	return false
}

// MediaAsset represents an uploaded asset belonging to a business
type MediaAsset struct {
	ID         uuid.UUID   `json:"id"`
	BusinessID uuid.UUID   `json:"businessId"`
	MediaType  MediaType   `json:"mediaType"`
	URL        string      `json:"url"`
	AltText    null.String `json:"altText,omitempty"`
	UploadedAt time.Time   `json:"uploadedAt"`
}

// MediaCreateInput represents input for registering a media asset
type MediaCreateInput struct {
	BusinessID uuid.UUID `json:"businessId" binding:"required"`
	MediaType  string    `json:"mediaType" binding:"required"`
	URL        string    `json:"url" binding:"required,url"`
	AltText    string    `json:"altText,omitempty"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CheckType classifies a visibility audit request
type CheckType string

const (
	CheckTypeVisibility         CheckType = "visibility"
	CheckTypeContentEnhancement CheckType = "content_enhancement"
	CheckTypeSchemaCompleteness CheckType = "schema_completeness"
)

// ValidCheckType reports whether t is a recognized check type
func ValidCheckType(t CheckType) bool {
	switch t {
	case CheckTypeVisibility, CheckTypeContentEnhancement, CheckTypeSchemaCompleteness:
		return true
	}
	return false
}

// SuggestionType classifies an improvement suggestion
type SuggestionType string

const (
	SuggestionTypeMetadataEnhancement SuggestionType = "metadata_enhancement"
	SuggestionTypeContentUpdate       SuggestionType = "content_update"
	SuggestionTypeSEO                 SuggestionType = "seo"
)

// ValidSuggestionType reports whether t is a recognized suggestion type
func ValidSuggestionType(t SuggestionType) bool {
	switch t {
	case SuggestionTypeMetadataEnhancement, SuggestionTypeContentUpdate, SuggestionTypeSEO:
		return true
	}
	return false
}

// SuggestionStatus is the lifecycle state of a suggestion
type SuggestionStatus string

const (
	SuggestionStatusPending     SuggestionStatus = "pending"
	SuggestionStatusImplemented SuggestionStatus = "implemented"
	SuggestionStatusRejected    SuggestionStatus = "rejected"
)

// VisibilityCheckRequest is an append-only audit row recording what a
// visibility check inspected
type VisibilityCheckRequest struct {
	ID          uuid.UUID   `json:"id"`
	BusinessID  uuid.UUID   `json:"businessId"`
	CheckType   CheckType   `json:"checkType"`
	InputData   null.String `json:"inputData,omitempty"`
	RequestedAt time.Time   `json:"requestedAt"`
}

// VisibilityCheckResult records the outcome of exactly one check request
type VisibilityCheckResult struct {
	ID              uuid.UUID   `json:"id"`
	RequestID       uuid.UUID   `json:"requestId"`
	BusinessID      uuid.UUID   `json:"businessId"`
	VisibilityScore float64     `json:"visibilityScore"`
	IssuesFound     string      `json:"issuesFound"`
	Recommendations string      `json:"recommendations"`
	OutputSnapshot  null.String `json:"outputSnapshot,omitempty"`
	CompletedAt     time.Time   `json:"completedAt"`
}

// VisibilitySuggestion is an independent improvement suggestion row
type VisibilitySuggestion struct {
	ID             uuid.UUID        `json:"id"`
	BusinessID     uuid.UUID        `json:"businessId"`
	SuggestionType SuggestionType   `json:"suggestionType"`
	Title          string           `json:"title"`
	Status         SuggestionStatus `json:"status"`
	SuggestedAt    time.Time        `json:"suggestedAt"`
	ResolvedAt     null.Time        `json:"resolvedAt,omitempty"`
}

// VisibilityRunResponse wraps a scorer result with the degraded flag
type VisibilityRunResponse struct {
	Result   *VisibilityCheckResult `json:"result"`
	Degraded bool                   `json:"degraded"`
}

// VisibilityCheckRequestCreateInput represents input for logging a check request
type VisibilityCheckRequestCreateInput struct {
	BusinessID uuid.UUID `json:"businessId" binding:"required"`
	CheckType  string    `json:"checkType" binding:"required"`
	InputData  string    `json:"inputData,omitempty"`
}

// VisibilityResultCreateInput represents input for recording a check result
type VisibilityResultCreateInput struct {
	RequestID       uuid.UUID `json:"requestId" binding:"required"`
	BusinessID      uuid.UUID `json:"businessId" binding:"required"`
	VisibilityScore float64   `json:"visibilityScore"`
	IssuesFound     string    `json:"issuesFound,omitempty"`
	Recommendations string    `json:"recommendations,omitempty"`
	OutputSnapshot  string    `json:"outputSnapshot,omitempty"`
}

// VisibilitySuggestionCreateInput represents input for creating a suggestion
type VisibilitySuggestionCreateInput struct {
	BusinessID     uuid.UUID `json:"businessId" binding:"required"`
	SuggestionType string    `json:"suggestionType" binding:"required"`
	Title          string    `json:"title" binding:"required,min=1,max=255"`
}

// ExternalAuditResult is the best-effort report for an arbitrary public URL.
// Error carries the failure reason instead of a non-200 response.
type ExternalAuditResult struct {
	URL             string   `json:"url"`
	Score           int      `json:"score"`
	Title           string   `json:"title,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	HasJSONLD       bool     `json:"hasJsonld"`
	H1Count         int      `json:"h1Count"`
	ImageCount      int      `json:"imageCount"`
	ImagesWithAlt   int      `json:"imagesWithAlt"`
	Issues          []string `json:"issues"`
	Error           string   `json:"error,omitempty"`
}

package repositories

import (
	"context"

	"aivault.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// AiMetadataRepository defines AI metadata data operations
type AiMetadataRepository interface {
	// Upsert updates the existing row for the metadata's business, or inserts
	// one if none exists. Atomic for its own row; concurrent upserts for the
	// same business are last-writer-wins.
	Upsert(ctx context.Context, metadata *entities.AiMetadata) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AiMetadata, error)
	GetByBusinessID(ctx context.Context, businessID uuid.UUID) (*entities.AiMetadata, error)
}

// JsonLDFeedRepository defines structured-data feed operations. Feeds are
// append-only; there is no update.
type JsonLDFeedRepository interface {
	Create(ctx context.Context, feed *entities.JsonLDFeed) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.JsonLDFeed, error)
	LatestByBusinessID(ctx context.Context, businessID uuid.UUID) (*entities.JsonLDFeed, error)
	ExistsForBusiness(ctx context.Context, businessID uuid.UUID) (bool, error)
}

// VisibilityRepository defines the append-only visibility audit trail
type VisibilityRepository interface {
	CreateRequest(ctx context.Context, request *entities.VisibilityCheckRequest) error
	GetRequestByID(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckRequest, error)
	CreateResult(ctx context.Context, result *entities.VisibilityCheckResult) error
	GetResultByID(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckResult, error)
	CreateSuggestion(ctx context.Context, suggestion *entities.VisibilitySuggestion) error
	GetSuggestionByID(ctx context.Context, id uuid.UUID) (*entities.VisibilitySuggestion, error)
}

package repositories

import (
	"context"

	"aivault.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// BusinessRepository defines business profile data operations
type BusinessRepository interface {
	Create(ctx context.Context, business *entities.BusinessProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entities.BusinessProfile, error)
	// Update applies the given column updates, bumps the version counter and
	// returns the updated row.
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*entities.BusinessProfile, error)
	List(ctx context.Context) ([]*entities.BusinessProfile, error)
}

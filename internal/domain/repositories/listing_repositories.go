package repositories

import (
	"context"

	"aivault.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// ServiceRepository defines service data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error)
	GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.Service, error)
	CountByBusinessID(ctx context.Context, businessID uuid.UUID) (int64, error)
}

// MediaRepository defines media asset data operations
type MediaRepository interface {
	Create(ctx context.Context, asset *entities.MediaAsset) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MediaAsset, error)
	GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.MediaAsset, error)
	// FirstImage returns the oldest image asset for a business, or ErrNotFound.
	FirstImage(ctx context.Context, businessID uuid.UUID) (*entities.MediaAsset, error)
	CountByBusinessID(ctx context.Context, businessID uuid.UUID) (int64, error)
}

// CouponRepository defines coupon data operations
type CouponRepository interface {
	Create(ctx context.Context, coupon *entities.Coupon) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Coupon, error)
	GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.Coupon, error)
	GetActiveByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.Coupon, error)
	// DeactivateExpired flips is_active off for coupons whose validity window
	// has passed and returns how many rows changed.
	DeactivateExpired(ctx context.Context) (int64, error)
}

// OperationalInfoRepository defines operational info data operations
type OperationalInfoRepository interface {
	Create(ctx context.Context, info *entities.OperationalInfo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.OperationalInfo, error)
	GetByBusinessID(ctx context.Context, businessID uuid.UUID) (*entities.OperationalInfo, error)
}

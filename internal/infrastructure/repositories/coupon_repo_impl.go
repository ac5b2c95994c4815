package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/infrastructure/models"
)

// CouponRepository implements coupon data operations
type CouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// Create creates a new coupon
func (r *CouponRepository) Create(ctx context.Context, coupon *entities.Coupon) error {
	if coupon.ID == uuid.Nil {
		coupon.ID = uuid.New()
	}
	m := &models.Coupon{
		ID:              coupon.ID,
		BusinessID:      coupon.BusinessID,
		Code:            coupon.Code,
		Description:     coupon.Description.Ptr(),
		DiscountValue:   coupon.DiscountValue,
		ValidFrom:       coupon.ValidFrom,
		ValidUntil:      coupon.ValidUntil,
		TermsConditions: coupon.TermsConditions.Ptr(),
		IsActive:        coupon.IsActive,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a coupon by ID
func (r *CouponRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Coupon, error) {
	var m models.Coupon
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByBusinessID lists all coupons of a business
func (r *CouponRepository) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.Coupon, error) {
	return r.listByBusiness(ctx, businessID, false)
}

// GetActiveByBusinessID lists only active coupons of a business
func (r *CouponRepository) GetActiveByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.Coupon, error) {
	return r.listByBusiness(ctx, businessID, true)
}

// DeactivateExpired flips is_active off for coupons past their window
func (r *CouponRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Coupon{}).
		Where("is_active = ? AND valid_until < ?", true, time.Now().UTC()).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *CouponRepository) listByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*entities.Coupon, error) {
	query := r.db.WithContext(ctx).Where("business_id = ?", businessID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var couponModels []models.Coupon
	if err := query.Order("valid_from ASC").Find(&couponModels).Error; err != nil {
		return nil, err
	}
	coupons := make([]*entities.Coupon, 0, len(couponModels))
	for i := range couponModels {
		coupons = append(coupons, r.toEntity(&couponModels[i]))
	}
	return coupons, nil
}

func (r *CouponRepository) toEntity(m *models.Coupon) *entities.Coupon {
	return &entities.Coupon{
		ID:              m.ID,
		BusinessID:      m.BusinessID,
		Code:            m.Code,
		Description:     null.StringFromPtr(m.Description),
		DiscountValue:   m.DiscountValue,
		ValidFrom:       m.ValidFrom,
		ValidUntil:      m.ValidUntil,
		TermsConditions: null.StringFromPtr(m.TermsConditions),
		IsActive:        m.IsActive,
	}
}

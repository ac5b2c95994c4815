package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ErrInvalidCouponWindow is returned when valid_from does not precede valid_until
var ErrInvalidCouponWindow = errors.New("validFrom must be before validUntil")

// Coupon represents a discount offer with a validity window
type Coupon struct {
	ID              uuid.UUID   `json:"id"`
	BusinessID      uuid.UUID   `json:"businessId"`
	Code            string      `json:"code"`
	Description     null.String `json:"description,omitempty"`
	DiscountValue   string      `json:"discountValue"`
	ValidFrom       time.Time   `json:"validFrom"`
	ValidUntil      time.Time   `json:"validUntil"`
	TermsConditions null.String `json:"termsConditions,omitempty"`
	IsActive        bool        `json:"isActive"`
}

// CouponCreateInput represents input for creating a coupon
type CouponCreateInput struct {
	BusinessID      uuid.UUID `json:"businessId" binding:"required"`
	Code            string    `json:"code" binding:"required,min=1,max=64"`
	Description     string    `json:"description,omitempty"`
	DiscountValue   string    `json:"discountValue" binding:"required"`
	ValidFrom       time.Time `json:"validFrom" binding:"required"`
	ValidUntil      time.Time `json:"validUntil" binding:"required"`
	TermsConditions string    `json:"termsConditions,omitempty"`
	IsActive        *bool     `json:"isActive,omitempty"`
}

// Validate enforces the coupon validity window invariant
func (in *CouponCreateInput) Validate() error {
	if !in.ValidFrom.Before(in.ValidUntil) {
		return ErrInvalidCouponWindow
	}
	return nil
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/infrastructure/models"
)

// OperationalInfoRepository implements operational info data operations
type OperationalInfoRepository struct {
	db *gorm.DB
}

// NewOperationalInfoRepository creates a new operational info repository
func NewOperationalInfoRepository(db *gorm.DB) *OperationalInfoRepository {
	return &OperationalInfoRepository{db: db}
}

// Create creates a new operational info row
func (r *OperationalInfoRepository) Create(ctx context.Context, info *entities.OperationalInfo) error {
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now().UTC()
	}
	offDays, err := json.Marshal(info.OffDays)
	if err != nil {
		return err
	}
	m := &models.OperationalInfo{
		ID:                    info.ID,
		BusinessID:            info.BusinessID,
		OpeningHours:          info.OpeningHours,
		ClosingHours:          info.ClosingHours,
		OffDays:               string(offDays),
		DeliveryOptions:       info.DeliveryOptions.Ptr(),
		ReservationOptions:    info.ReservationOptions.Ptr(),
		WifiAvailable:         info.WifiAvailable,
		AccessibilityFeatures: info.AccessibilityFeatures.Ptr(),
		NearbyParkingSpot:     info.NearbyParkingSpot.Ptr(),
		SpecialNotes:          info.SpecialNotes.Ptr(),
		CreatedAt:             info.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets operational info by ID
func (r *OperationalInfoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.OperationalInfo, error) {
	var m models.OperationalInfo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByBusinessID gets the operational info for a business
func (r *OperationalInfoRepository) GetByBusinessID(ctx context.Context, businessID uuid.UUID) (*entities.OperationalInfo, error) {
	var m models.OperationalInfo
	if err := r.db.WithContext(ctx).Where("business_id = ?", businessID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *OperationalInfoRepository) toEntity(m *models.OperationalInfo) *entities.OperationalInfo {
	var offDays []string
	if m.OffDays != "" {
		// Malformed rows degrade to an empty list rather than failing the read.
		_ = json.Unmarshal([]byte(m.OffDays), &offDays)
	}
	if offDays == nil {
		offDays = []string{}
	}
	return &entities.OperationalInfo{
		ID:                    m.ID,
		BusinessID:            m.BusinessID,
		OpeningHours:          m.OpeningHours,
		ClosingHours:          m.ClosingHours,
		OffDays:               offDays,
		DeliveryOptions:       null.StringFromPtr(m.DeliveryOptions),
		ReservationOptions:    null.StringFromPtr(m.ReservationOptions),
		WifiAvailable:         m.WifiAvailable,
		AccessibilityFeatures: null.StringFromPtr(m.AccessibilityFeatures),
		NearbyParkingSpot:     null.StringFromPtr(m.NearbyParkingSpot),
		SpecialNotes:          null.StringFromPtr(m.SpecialNotes),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             null.TimeFromPtr(m.UpdatedAt),
	}
}

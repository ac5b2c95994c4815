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

// ServiceRepository implements service data operations
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create creates a service together with its optional category sub-record
func (r *ServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	if service.CreatedAt.IsZero() {
		service.CreatedAt = time.Now().UTC()
	}

	m := &models.Service{
		ID:          service.ID,
		BusinessID:  service.BusinessID,
		ServiceType: string(service.ServiceType),
		Name:        service.Name,
		Description: service.Description.Ptr(),
		Price:       service.Price,
		Currency:    service.Currency,
		IsAvailable: service.IsAvailable,
		CreatedAt:   service.CreatedAt,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if rf := service.RestaurantFields; rf != nil {
			rf.ServiceID = service.ID
			rm := &models.RestaurantServiceFields{
				ServiceID:   rf.ServiceID,
				CuisineType: rf.CuisineType,
				DietaryTags: rf.DietaryTags.Ptr(),
				PortionSize: rf.PortionSize.Ptr(),
				IsVegan:     rf.IsVegan,
			}
			if err := tx.Create(rm).Error; err != nil {
				return err
			}
		}
		if sf := service.SalonFields; sf != nil {
			sf.ServiceID = service.ID
			sm := &models.SalonServiceFields{
				ServiceID:       sf.ServiceID,
				DurationMinutes: sf.DurationMinutes.Ptr(),
				StylistRequired: sf.StylistRequired,
				GenderSpecific:  string(sf.GenderSpecific),
			}
			if err := tx.Create(sm).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID gets a service by ID including its category sub-record
func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	var m models.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	service := r.toEntity(&m)
	if err := r.attachSubRecord(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// GetByBusinessID lists all services of a business with their sub-records
func (r *ServiceRepository) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.Service, error) {
	var serviceModels []models.Service
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, err
	}

	services := make([]*entities.Service, 0, len(serviceModels))
	for i := range serviceModels {
		service := r.toEntity(&serviceModels[i])
		if err := r.attachSubRecord(ctx, service); err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

// CountByBusinessID counts services belonging to a business
func (r *ServiceRepository) CountByBusinessID(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	return count, err
}

func (r *ServiceRepository) attachSubRecord(ctx context.Context, service *entities.Service) error {
	switch service.ServiceType {
	case entities.ServiceTypeRestaurant:
		var rm models.RestaurantServiceFields
		err := r.db.WithContext(ctx).Where("service_id = ?", service.ID).First(&rm).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		service.RestaurantFields = &entities.RestaurantServiceFields{
			ServiceID:   rm.ServiceID,
			CuisineType: rm.CuisineType,
			DietaryTags: null.StringFromPtr(rm.DietaryTags),
			PortionSize: null.StringFromPtr(rm.PortionSize),
			IsVegan:     rm.IsVegan,
		}
	case entities.ServiceTypeSalon:
		var sm models.SalonServiceFields
		err := r.db.WithContext(ctx).Where("service_id = ?", service.ID).First(&sm).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		service.SalonFields = &entities.SalonServiceFields{
			ServiceID:       sm.ServiceID,
			DurationMinutes: null.IntFromPtr(sm.DurationMinutes),
			StylistRequired: sm.StylistRequired,
			GenderSpecific:  entities.GenderSpecific(sm.GenderSpecific),
		}
	}
	return nil
}

func (r *ServiceRepository) toEntity(m *models.Service) *entities.Service {
	return &entities.Service{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		ServiceType: entities.ServiceType(m.ServiceType),
		Name:        m.Name,
		Description: null.StringFromPtr(m.Description),
		Price:       m.Price,
		Currency:    m.Currency,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   null.TimeFromPtr(m.UpdatedAt),
	}
}

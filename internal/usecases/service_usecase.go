package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/domain/repositories"
	"aivault.backend/internal/infrastructure/cache"
)

// ServiceUsecase handles service offerings and their category sub-records
type ServiceUsecase struct {
	serviceRepo  repositories.ServiceRepository
	businessRepo repositories.BusinessRepository
	cache        *cache.DirectoryCache
}

// NewServiceUsecase creates a new service usecase
func NewServiceUsecase(
	serviceRepo repositories.ServiceRepository,
	businessRepo repositories.BusinessRepository,
	directoryCache *cache.DirectoryCache,
) *ServiceUsecase {
	return &ServiceUsecase{
		serviceRepo:  serviceRepo,
		businessRepo: businessRepo,
		cache:        directoryCache,
	}
}

// Create creates a service under an existing business
func (u *ServiceUsecase) Create(ctx context.Context, input *entities.ServiceCreateInput) (*entities.Service, error) {
	if _, err := u.businessRepo.GetByID(ctx, input.BusinessID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	serviceType := entities.ServiceType(input.ServiceType)
	if !entities.ValidServiceType(serviceType) {
		return nil, domainerrors.BadRequest("serviceType must be one of restaurant, salon, clinic")
	}
	if input.RestaurantFields != nil && serviceType != entities.ServiceTypeRestaurant {
		return nil, domainerrors.BadRequest("restaurantFields only apply to restaurant services")
	}
	if input.SalonFields != nil && serviceType != entities.ServiceTypeSalon {
		return nil, domainerrors.BadRequest("salonFields only apply to salon services")
	}

	service := &entities.Service{
		BusinessID:  input.BusinessID,
		ServiceType: serviceType,
		Name:        input.Name,
		Price:       input.Price,
		Currency:    input.Currency,
		IsAvailable: true,
	}
	if service.Currency == "" {
		service.Currency = "INR"
	}
	if input.IsAvailable != nil {
		service.IsAvailable = *input.IsAvailable
	}
	if input.Description != "" {
		service.Description.SetValid(input.Description)
	}

	if f := input.RestaurantFields; f != nil {
		fields := &entities.RestaurantServiceFields{
			CuisineType: f.CuisineType,
		}
		if f.DietaryTags != "" {
			fields.DietaryTags.SetValid(f.DietaryTags)
		}
		if f.PortionSize != "" {
			fields.PortionSize.SetValid(f.PortionSize)
		}
		if f.IsVegan != nil {
			fields.IsVegan = *f.IsVegan
		}
		service.RestaurantFields = fields
	}

	if f := input.SalonFields; f != nil {
		fields := &entities.SalonServiceFields{
			GenderSpecific: entities.GenderUnisex,
		}
		if f.DurationMinutes != nil {
			fields.DurationMinutes.SetValid(*f.DurationMinutes)
		}
		if f.StylistRequired != nil {
			fields.StylistRequired = *f.StylistRequired
		}
		if f.GenderSpecific != "" {
			fields.GenderSpecific = entities.GenderSpecific(f.GenderSpecific)
		}
		service.SalonFields = fields
	}

	if err := u.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	u.cache.Invalidate()
	return service, nil
}

// GetByID gets a service by ID
func (u *ServiceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	service, err := u.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Service not found")
		}
		return nil, err
	}
	return service, nil
}

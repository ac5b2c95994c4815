package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/domain/repositories"
)

// JsonLDUsecase builds and stores schema.org structured-data documents
type JsonLDUsecase struct {
	feedRepo     repositories.JsonLDFeedRepository
	businessRepo repositories.BusinessRepository
	serviceRepo  repositories.ServiceRepository
	mediaRepo    repositories.MediaRepository
	couponRepo   repositories.CouponRepository
	opInfoRepo   repositories.OperationalInfoRepository
	metadataRepo repositories.AiMetadataRepository
}

// NewJsonLDUsecase creates a new JSON-LD usecase
func NewJsonLDUsecase(
	feedRepo repositories.JsonLDFeedRepository,
	businessRepo repositories.BusinessRepository,
	serviceRepo repositories.ServiceRepository,
	mediaRepo repositories.MediaRepository,
	couponRepo repositories.CouponRepository,
	opInfoRepo repositories.OperationalInfoRepository,
	metadataRepo repositories.AiMetadataRepository,
) *JsonLDUsecase {
	return &JsonLDUsecase{
		feedRepo:     feedRepo,
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		mediaRepo:    mediaRepo,
		couponRepo:   couponRepo,
		opInfoRepo:   opInfoRepo,
		metadataRepo: metadataRepo,
	}
}

// Generate builds the structured-data document for a business and appends it
// as a new feed row
func (u *JsonLDUsecase) Generate(ctx context.Context, businessID uuid.UUID) (*entities.JsonLDFeed, error) {
	business, err := u.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	doc, err := u.buildDocument(ctx, business)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	feed := &entities.JsonLDFeed{
		BusinessID: businessID,
		SchemaType: entities.SchemaTypeForBusiness(business.BusinessType),
		JsonLDData: string(data),
		IsValid:    true,
	}
	if err := u.feedRepo.Create(ctx, feed); err != nil {
		return nil, err
	}

	return feed, nil
}

// GetByID gets a feed row by ID
func (u *JsonLDUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.JsonLDFeed, error) {
	feed, err := u.feedRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Feed not found")
		}
		return nil, err
	}
	return feed, nil
}

// buildDocument assembles the schema.org map. Keys are only added when the
// underlying value exists, so the document never carries null values.
func (u *JsonLDUsecase) buildDocument(ctx context.Context, business *entities.BusinessProfile) (map[string]interface{}, error) {
	doc := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    string(entities.SchemaTypeForBusiness(business.BusinessType)),
		"name":     business.Name,
	}

	description := ""
	if business.Description.Valid {
		description = business.Description.String
	}
	if metadata, err := u.metadataRepo.GetByBusinessID(ctx, business.ID); err == nil {
		if metadata.ExtractedInsights != "" {
			if description != "" {
				description = description + " " + metadata.ExtractedInsights
			} else {
				description = metadata.ExtractedInsights
			}
		}
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if description != "" {
		doc["description"] = description
	}

	if business.Phone.Valid {
		doc["telephone"] = business.Phone.String
	}
	if business.Website.Valid {
		doc["url"] = business.Website.String
	}
	if business.Address.Valid {
		doc["address"] = business.Address.String
	}
	if business.Latitude.Valid && business.Longitude.Valid {
		doc["geo"] = map[string]interface{}{
			"@type":     "GeoCoordinates",
			"latitude":  business.Latitude.Float64,
			"longitude": business.Longitude.Float64,
		}
	}
	if business.QuoteSlogan.Valid {
		doc["slogan"] = business.QuoteSlogan.String
	}

	image, err := u.mediaRepo.FirstImage(ctx, business.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if image != nil {
		doc["image"] = image.URL
	}

	services, err := u.serviceRepo.GetByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	if len(services) > 0 {
		items := make([]map[string]interface{}, 0, len(services))
		for _, service := range services {
			item := map[string]interface{}{
				"@type":         "Offer",
				"name":          service.Name,
				"price":         fmt.Sprintf("%.2f", service.Price),
				"priceCurrency": service.Currency,
			}
			if service.Description.Valid {
				item["description"] = service.Description.String
			}
			items = append(items, item)
		}
		doc["hasOfferCatalog"] = map[string]interface{}{
			"@type":           "OfferCatalog",
			"name":            "Services",
			"itemListElement": items,
		}
	}

	coupons, err := u.couponRepo.GetActiveByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	if len(coupons) > 0 {
		offers := make([]map[string]interface{}, 0, len(coupons))
		for _, coupon := range coupons {
			offer := map[string]interface{}{
				"@type":        "Offer",
				"name":         coupon.Code,
				"discount":     coupon.DiscountValue,
				"validFrom":    coupon.ValidFrom.Format("2006-01-02"),
				"validThrough": coupon.ValidUntil.Format("2006-01-02"),
			}
			if coupon.Description.Valid {
				offer["description"] = coupon.Description.String
			}
			offers = append(offers, offer)
		}
		doc["makesOffer"] = offers
	}

	opInfo, err := u.opInfoRepo.GetByBusinessID(ctx, business.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if opInfo != nil {
		hours := fmt.Sprintf("%s-%s", opInfo.OpeningHours, opInfo.ClosingHours)
		if len(opInfo.OffDays) > 0 {
			hours = hours + " except " + strings.Join(opInfo.OffDays, ", ")
		}
		doc["openingHours"] = hours
	}

	return doc, nil
}

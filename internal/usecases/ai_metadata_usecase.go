package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/domain/repositories"
	"aivault.backend/internal/infrastructure/ai"
	"aivault.backend/pkg/logger"
)

const metadataSystemPrompt = "You are an SEO assistant for a local-business directory. " +
	"Respond with a single JSON object and nothing else."

// AiMetadataUsecase generates and stores SEO metadata for a business
type AiMetadataUsecase struct {
	metadataRepo repositories.AiMetadataRepository
	businessRepo repositories.BusinessRepository
	serviceRepo  repositories.ServiceRepository
	opInfoRepo   repositories.OperationalInfoRepository
	aiClient     ai.Client
}

// NewAiMetadataUsecase creates a new AI metadata usecase
func NewAiMetadataUsecase(
	metadataRepo repositories.AiMetadataRepository,
	businessRepo repositories.BusinessRepository,
	serviceRepo repositories.ServiceRepository,
	opInfoRepo repositories.OperationalInfoRepository,
	aiClient ai.Client,
) *AiMetadataUsecase {
	return &AiMetadataUsecase{
		metadataRepo: metadataRepo,
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		opInfoRepo:   opInfoRepo,
		aiClient:     aiClient,
	}
}

// Generate builds SEO metadata for a business and upserts its single row.
// On AI failure it degrades to a deterministic keyword heuristic instead of
// failing the request.
func (u *AiMetadataUsecase) Generate(ctx context.Context, businessID uuid.UUID) (*entities.AiMetadataResponse, error) {
	business, err := u.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	services, err := u.serviceRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	// Hours and amenities are optional context; a listing without them
	// still gets metadata.
	opInfo, err := u.opInfoRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		opInfo = nil
	}

	metadata, degraded := u.generate(ctx, business, services, opInfo)
	metadata.BusinessID = businessID

	if err := u.metadataRepo.Upsert(ctx, metadata); err != nil {
		return nil, err
	}

	return &entities.AiMetadataResponse{Metadata: metadata, Degraded: degraded}, nil
}

// GetByID gets a metadata row by ID
func (u *AiMetadataUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.AiMetadata, error) {
	metadata, err := u.metadataRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Metadata not found")
		}
		return nil, err
	}
	return metadata, nil
}

func (u *AiMetadataUsecase) generate(ctx context.Context, business *entities.BusinessProfile, services []*entities.Service, opInfo *entities.OperationalInfo) (*entities.AiMetadata, bool) {
	raw, err := u.aiClient.Complete(ctx, buildMetadataPrompt(business, services, opInfo), metadataSystemPrompt)
	if err != nil {
		logger.Warn(ctx, "metadata generation degraded to heuristic", zap.Error(err))
		return u.fallbackMetadata(business, services), true
	}

	parsed, err := ai.ParseJSONResponse[map[string]interface{}](raw)
	if err != nil {
		logger.Warn(ctx, "metadata response unparseable, degrading to heuristic", zap.Error(err))
		return u.fallbackMetadata(business, services), true
	}

	return &entities.AiMetadata{
		Keywords:          normalizeField(parsed["keywords"]),
		ExtractedInsights: normalizeField(parsed["extracted_insights"]),
		DetectedEntities:  normalizeField(parsed["detected_entities"]),
		IntentLabels:      normalizeField(parsed["intent_labels"]),
	}, false
}

// fallbackMetadata derives keywords from what the profile already says
func (u *AiMetadataUsecase) fallbackMetadata(business *entities.BusinessProfile, services []*entities.Service) *entities.AiMetadata {
	keywords := []string{business.Name}
	if business.BusinessType != "" {
		keywords = append(keywords, string(business.BusinessType))
	}
	if business.Address.Valid {
		keywords = append(keywords, business.Address.String)
	}
	for _, service := range services {
		keywords = append(keywords, service.Name)
	}

	insights := ""
	if business.Description.Valid {
		insights = business.Description.String
	}

	intent := "discover local business"
	if business.BusinessType != "" {
		intent = fmt.Sprintf("find %s nearby", business.BusinessType)
	}

	return &entities.AiMetadata{
		Keywords:          joinList(keywords, ", "),
		ExtractedInsights: insights,
		DetectedEntities:  business.Name,
		IntentLabels:      intent,
	}
}

func buildMetadataPrompt(business *entities.BusinessProfile, services []*entities.Service, opInfo *entities.OperationalInfo) string {
	var b strings.Builder
	b.WriteString("Generate SEO metadata for the following business listing.\n")
	fmt.Fprintf(&b, "Name: %s\n", business.Name)
	if business.BusinessType != "" {
		fmt.Fprintf(&b, "Category: %s\n", business.BusinessType)
	}
	if business.Description.Valid {
		fmt.Fprintf(&b, "Description: %s\n", business.Description.String)
	}
	if business.Address.Valid {
		fmt.Fprintf(&b, "Address: %s\n", business.Address.String)
	}
	if len(services) > 0 {
		names := make([]string, 0, len(services))
		for _, service := range services {
			names = append(names, service.Name)
		}
		fmt.Fprintf(&b, "Services: %s\n", strings.Join(names, ", "))
	}
	if opInfo != nil {
		fmt.Fprintf(&b, "Hours: %s-%s\n", opInfo.OpeningHours, opInfo.ClosingHours)
		if len(opInfo.OffDays) > 0 {
			fmt.Fprintf(&b, "Closed on: %s\n", strings.Join(opInfo.OffDays, ", "))
		}
		if amenities := amenityList(opInfo); amenities != "" {
			fmt.Fprintf(&b, "Amenities: %s\n", amenities)
		}
	}
	b.WriteString("\nReturn a JSON object with keys: keywords, extracted_insights, detected_entities, intent_labels.\n")
	b.WriteString("Each value may be a string or a list of strings.")
	return b.String()
}

func amenityList(opInfo *entities.OperationalInfo) string {
	var amenities []string
	if opInfo.WifiAvailable {
		amenities = append(amenities, "wifi")
	}
	if opInfo.DeliveryOptions.Valid {
		amenities = append(amenities, "delivery: "+opInfo.DeliveryOptions.String)
	}
	if opInfo.ReservationOptions.Valid {
		amenities = append(amenities, "reservations: "+opInfo.ReservationOptions.String)
	}
	if opInfo.AccessibilityFeatures.Valid {
		amenities = append(amenities, opInfo.AccessibilityFeatures.String)
	}
	if opInfo.NearbyParkingSpot.Valid {
		amenities = append(amenities, "parking: "+opInfo.NearbyParkingSpot.String)
	}
	return strings.Join(amenities, ", ")
}

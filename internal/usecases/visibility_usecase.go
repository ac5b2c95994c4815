package usecases

import (
	"context"
	"encoding/json"
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

const scorerSystemPrompt = "You are an AI search-visibility auditor for local-business listings. " +
	"Respond with a single JSON object and nothing else."

// scorerOutput is the JSON shape the rubric prompt asks the model for
type scorerOutput struct {
	VisibilityScore *float64 `json:"visibility_score"`
	ContentAnalysis string   `json:"content_analysis"`
	SchemaAnalysis  string   `json:"schema_analysis"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// VisibilityUsecase runs visibility audits and manages the audit trail
type VisibilityUsecase struct {
	visibilityRepo repositories.VisibilityRepository
	businessRepo   repositories.BusinessRepository
	serviceRepo    repositories.ServiceRepository
	mediaRepo      repositories.MediaRepository
	feedRepo       repositories.JsonLDFeedRepository
	aiClient       ai.Client
}

// NewVisibilityUsecase creates a new visibility usecase
func NewVisibilityUsecase(
	visibilityRepo repositories.VisibilityRepository,
	businessRepo repositories.BusinessRepository,
	serviceRepo repositories.ServiceRepository,
	mediaRepo repositories.MediaRepository,
	feedRepo repositories.JsonLDFeedRepository,
	aiClient ai.Client,
) *VisibilityUsecase {
	return &VisibilityUsecase{
		visibilityRepo: visibilityRepo,
		businessRepo:   businessRepo,
		serviceRepo:    serviceRepo,
		mediaRepo:      mediaRepo,
		feedRepo:       feedRepo,
		aiClient:       aiClient,
	}
}

// Run scores a business profile. It always records the check request first,
// then exactly one result. AI failure degrades to the deterministic rubric
// and never fails the run.
func (u *VisibilityUsecase) Run(ctx context.Context, businessID uuid.UUID) (*entities.VisibilityRunResponse, error) {
	business, err := u.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	serviceCount, err := u.serviceRepo.CountByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	mediaCount, err := u.mediaRepo.CountByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	hasFeed, err := u.feedRepo.ExistsForBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	inputSnapshot, _ := json.Marshal(map[string]interface{}{
		"businessId":   businessID,
		"serviceCount": serviceCount,
		"mediaCount":   mediaCount,
		"hasJsonLD":    hasFeed,
	})

	request := &entities.VisibilityCheckRequest{
		BusinessID: businessID,
		CheckType:  entities.CheckTypeVisibility,
	}
	request.InputData.SetValid(string(inputSnapshot))
	if err := u.visibilityRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	result, degraded := u.score(ctx, business, serviceCount, mediaCount, hasFeed)
	result.RequestID = request.ID
	result.BusinessID = businessID

	if err := u.visibilityRepo.CreateResult(ctx, result); err != nil {
		return nil, err
	}

	return &entities.VisibilityRunResponse{Result: result, Degraded: degraded}, nil
}

func (u *VisibilityUsecase) score(ctx context.Context, business *entities.BusinessProfile, serviceCount, mediaCount int64, hasFeed bool) (*entities.VisibilityCheckResult, bool) {
	raw, err := u.aiClient.Complete(ctx, buildScorerPrompt(business, serviceCount, mediaCount, hasFeed), scorerSystemPrompt)
	if err != nil {
		logger.Warn(ctx, "visibility scoring degraded to rubric", zap.Error(err))
		return u.fallbackScore(business, serviceCount, mediaCount, hasFeed, err.Error()), true
	}

	jsonStr, err := ai.ExtractJSON(raw)
	if err != nil {
		logger.Warn(ctx, "visibility response unparseable, degrading to rubric", zap.Error(err))
		return u.fallbackScore(business, serviceCount, mediaCount, hasFeed, err.Error()), true
	}

	var output scorerOutput
	if err := json.Unmarshal([]byte(jsonStr), &output); err != nil {
		logger.Warn(ctx, "visibility response unparseable, degrading to rubric", zap.Error(err))
		return u.fallbackScore(business, serviceCount, mediaCount, hasFeed, err.Error()), true
	}

	// a response without a score is treated as low-confidence
	score := 25.0
	if output.VisibilityScore != nil {
		score = *output.VisibilityScore
	}

	result := &entities.VisibilityCheckResult{
		VisibilityScore: score,
		IssuesFound:     joinList(output.Issues, "; "),
		Recommendations: joinList(output.Recommendations, "; "),
	}
	result.OutputSnapshot.SetValid(jsonStr)
	return result, false
}

// fallbackScore applies the deterministic rubric when the AI path is
// unavailable
func (u *VisibilityUsecase) fallbackScore(business *entities.BusinessProfile, serviceCount, mediaCount int64, hasFeed bool, reason string) *entities.VisibilityCheckResult {
	score := 0.0
	var issues []string
	var recommendations []string

	if hasFeed {
		score += 30
	} else {
		issues = append(issues, "CRITICAL: Missing JSON-LD presence")
		recommendations = append(recommendations, "Generate a JSON-LD feed for this business")
	}

	if serviceCount >= 3 {
		score += 20
	} else {
		issues = append(issues, "Fewer than 3 services listed")
		recommendations = append(recommendations, "Add more service entries")
	}

	if mediaCount >= 3 {
		score += 20
	} else {
		issues = append(issues, "Fewer than 3 media assets")
		recommendations = append(recommendations, "Upload more photos")
	}

	if business.Description.Valid && len(business.Description.String) >= 50 {
		score += 10
	} else {
		issues = append(issues, "Description missing or too short")
		recommendations = append(recommendations, "Write a description of at least 50 characters")
	}

	// without structured data the ceiling is lower
	if !hasFeed && score > 40 {
		score = 40
	}
	if score > 50 {
		score = 50
	}

	if reason != "" {
		issues = append(issues, fmt.Sprintf("AI scoring unavailable: %s", reason))
	}

	return &entities.VisibilityCheckResult{
		VisibilityScore: score,
		IssuesFound:     joinList(issues, "; "),
		Recommendations: joinList(recommendations, "; "),
	}
}

func buildScorerPrompt(business *entities.BusinessProfile, serviceCount, mediaCount int64, hasFeed bool) string {
	var b strings.Builder
	b.WriteString("Audit the AI-search visibility of this business listing and score it 0-100.\n")
	fmt.Fprintf(&b, "Name: %s\n", business.Name)
	if business.BusinessType != "" {
		fmt.Fprintf(&b, "Category: %s\n", business.BusinessType)
	}
	if business.Description.Valid {
		fmt.Fprintf(&b, "Description: %s\n", business.Description.String)
	}
	fmt.Fprintf(&b, "Services listed: %d\n", serviceCount)
	fmt.Fprintf(&b, "Media assets: %d\n", mediaCount)
	fmt.Fprintf(&b, "Structured data (JSON-LD) present: %t\n", hasFeed)
	b.WriteString("\nReturn a JSON object with keys: visibility_score (number), content_analysis (string), ")
	b.WriteString("schema_analysis (string), issues (list of strings), recommendations (list of strings).")
	return b.String()
}

// CreateCheckRequest logs an audit request row
func (u *VisibilityUsecase) CreateCheckRequest(ctx context.Context, input *entities.VisibilityCheckRequestCreateInput) (*entities.VisibilityCheckRequest, error) {
	if _, err := u.businessRepo.GetByID(ctx, input.BusinessID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	checkType := entities.CheckType(input.CheckType)
	if !entities.ValidCheckType(checkType) {
		return nil, domainerrors.BadRequest("checkType must be one of visibility, content_enhancement, schema_completeness")
	}

	request := &entities.VisibilityCheckRequest{
		BusinessID: input.BusinessID,
		CheckType:  checkType,
	}
	if input.InputData != "" {
		request.InputData.SetValid(input.InputData)
	}

	if err := u.visibilityRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// GetCheckRequest gets a check request by ID
func (u *VisibilityUsecase) GetCheckRequest(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckRequest, error) {
	request, err := u.visibilityRepo.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Check request not found")
		}
		return nil, err
	}
	return request, nil
}

// CreateResult records a check result against an existing request
func (u *VisibilityUsecase) CreateResult(ctx context.Context, input *entities.VisibilityResultCreateInput) (*entities.VisibilityCheckResult, error) {
	if _, err := u.visibilityRepo.GetRequestByID(ctx, input.RequestID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Check request not found")
		}
		return nil, err
	}

	result := &entities.VisibilityCheckResult{
		RequestID:       input.RequestID,
		BusinessID:      input.BusinessID,
		VisibilityScore: input.VisibilityScore,
		IssuesFound:     input.IssuesFound,
		Recommendations: input.Recommendations,
	}
	if input.OutputSnapshot != "" {
		result.OutputSnapshot.SetValid(input.OutputSnapshot)
	}

	if err := u.visibilityRepo.CreateResult(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetResult gets a check result by ID
func (u *VisibilityUsecase) GetResult(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckResult, error) {
	result, err := u.visibilityRepo.GetResultByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Check result not found")
		}
		return nil, err
	}
	return result, nil
}

// CreateSuggestion creates an improvement suggestion row
func (u *VisibilityUsecase) CreateSuggestion(ctx context.Context, input *entities.VisibilitySuggestionCreateInput) (*entities.VisibilitySuggestion, error) {
	if _, err := u.businessRepo.GetByID(ctx, input.BusinessID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Business not found")
		}
		return nil, err
	}

	suggestionType := entities.SuggestionType(input.SuggestionType)
	if !entities.ValidSuggestionType(suggestionType) {
		return nil, domainerrors.BadRequest("suggestionType must be one of metadata_enhancement, content_update, seo")
	}

	suggestion := &entities.VisibilitySuggestion{
		BusinessID:     input.BusinessID,
		SuggestionType: suggestionType,
		Title:          input.Title,
		Status:         entities.SuggestionStatusPending,
	}
	if err := u.visibilityRepo.CreateSuggestion(ctx, suggestion); err != nil {
		return nil, err
	}
	return suggestion, nil
}

// GetSuggestion gets a suggestion by ID
func (u *VisibilityUsecase) GetSuggestion(ctx context.Context, id uuid.UUID) (*entities.VisibilitySuggestion, error) {
	suggestion, err := u.visibilityRepo.GetSuggestionByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Suggestion not found")
		}
		return nil, err
	}
	return suggestion, nil
}

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

// VisibilityRepository implements the append-only visibility audit trail
type VisibilityRepository struct {
	db *gorm.DB
}

// NewVisibilityRepository creates a new visibility repository
func NewVisibilityRepository(db *gorm.DB) *VisibilityRepository {
	return &VisibilityRepository{db: db}
}

// CreateRequest appends a check request row
func (r *VisibilityRepository) CreateRequest(ctx context.Context, request *entities.VisibilityCheckRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	if request.RequestedAt.IsZero() {
		request.RequestedAt = time.Now().UTC()
	}
	m := &models.VisibilityCheckRequest{
		ID:          request.ID,
		BusinessID:  request.BusinessID,
		CheckType:   string(request.CheckType),
		InputData:   request.InputData.Ptr(),
		RequestedAt: request.RequestedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetRequestByID gets a check request by ID
func (r *VisibilityRepository) GetRequestByID(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckRequest, error) {
	var m models.VisibilityCheckRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.VisibilityCheckRequest{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		CheckType:   entities.CheckType(m.CheckType),
		InputData:   null.StringFromPtr(m.InputData),
		RequestedAt: m.RequestedAt,
	}, nil
}

// CreateResult appends a check result row
func (r *VisibilityRepository) CreateResult(ctx context.Context, result *entities.VisibilityCheckResult) error {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now().UTC()
	}
	m := &models.VisibilityCheckResult{
		ID:              result.ID,
		RequestID:       result.RequestID,
		BusinessID:      result.BusinessID,
		VisibilityScore: result.VisibilityScore,
		IssuesFound:     result.IssuesFound,
		Recommendations: result.Recommendations,
		OutputSnapshot:  result.OutputSnapshot.Ptr(),
		CompletedAt:     result.CompletedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetResultByID gets a check result by ID
func (r *VisibilityRepository) GetResultByID(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckResult, error) {
	var m models.VisibilityCheckResult
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.VisibilityCheckResult{
		ID:              m.ID,
		RequestID:       m.RequestID,
		BusinessID:      m.BusinessID,
		VisibilityScore: m.VisibilityScore,
		IssuesFound:     m.IssuesFound,
		Recommendations: m.Recommendations,
		OutputSnapshot:  null.StringFromPtr(m.OutputSnapshot),
		CompletedAt:     m.CompletedAt,
	}, nil
}

// CreateSuggestion appends a suggestion row
func (r *VisibilityRepository) CreateSuggestion(ctx context.Context, suggestion *entities.VisibilitySuggestion) error {
	if suggestion.ID == uuid.Nil {
		suggestion.ID = uuid.New()
	}
	if suggestion.SuggestedAt.IsZero() {
		suggestion.SuggestedAt = time.Now().UTC()
	}
	if suggestion.Status == "" {
		suggestion.Status = entities.SuggestionStatusPending
	}
	m := &models.VisibilitySuggestion{
		ID:             suggestion.ID,
		BusinessID:     suggestion.BusinessID,
		SuggestionType: string(suggestion.SuggestionType),
		Title:          suggestion.Title,
		Status:         string(suggestion.Status),
		SuggestedAt:    suggestion.SuggestedAt,
		ResolvedAt:     suggestion.ResolvedAt.Ptr(),
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetSuggestionByID gets a suggestion by ID
func (r *VisibilityRepository) GetSuggestionByID(ctx context.Context, id uuid.UUID) (*entities.VisibilitySuggestion, error) {
	var m models.VisibilitySuggestion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.VisibilitySuggestion{
		ID:             m.ID,
		BusinessID:     m.BusinessID,
		SuggestionType: entities.SuggestionType(m.SuggestionType),
		Title:          m.Title,
		Status:         entities.SuggestionStatus(m.Status),
		SuggestedAt:    m.SuggestedAt,
		ResolvedAt:     null.TimeFromPtr(m.ResolvedAt),
	}, nil
}

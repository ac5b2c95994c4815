package handlers

import (
	"context"
	"net/http"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VisibilityService interface {
	Run(ctx context.Context, businessID uuid.UUID) (*entities.VisibilityRunResponse, error)
	CreateCheckRequest(ctx context.Context, input *entities.VisibilityCheckRequestCreateInput) (*entities.VisibilityCheckRequest, error)
	GetCheckRequest(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckRequest, error)
	CreateResult(ctx context.Context, input *entities.VisibilityResultCreateInput) (*entities.VisibilityCheckResult, error)
	GetResult(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckResult, error)
	CreateSuggestion(ctx context.Context, input *entities.VisibilitySuggestionCreateInput) (*entities.VisibilitySuggestion, error)
	GetSuggestion(ctx context.Context, id uuid.UUID) (*entities.VisibilitySuggestion, error)
}

type ExternalAuditService interface {
	Audit(ctx context.Context, rawURL string) *entities.ExternalAuditResult
}

// VisibilityHandler handles visibility scoring and audit endpoints
type VisibilityHandler struct {
	visibilityUsecase VisibilityService
	auditUsecase      ExternalAuditService
}

// NewVisibilityHandler creates a new visibility handler
func NewVisibilityHandler(visibilityUsecase VisibilityService, auditUsecase ExternalAuditService) *VisibilityHandler {
	return &VisibilityHandler{
		visibilityUsecase: visibilityUsecase,
		auditUsecase:      auditUsecase,
	}
}

// Run scores a business and persists the request/result pair. AI failures
// degrade to the deterministic rubric, never a 5xx.
// POST /api/v1/visibility/run?business_id=
func (h *VisibilityHandler) Run(c *gin.Context) {
	businessID, err := uuid.Parse(c.Query("business_id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid business ID"))
		return
	}

	runResponse, err := h.visibilityUsecase.Run(c.Request.Context(), businessID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, runResponse)
}

// AuditExternal fetches an arbitrary public URL and reports a best-effort
// SEO score. Fetch and parse failures land in the result body, not an error
// status.
// POST /api/v1/visibility/external
func (h *VisibilityHandler) AuditExternal(c *gin.Context) {
	var input struct {
		URL string `json:"url" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result := h.auditUsecase.Audit(c.Request.Context(), input.URL)
	response.Success(c, http.StatusOK, result)
}

// CreateCheckRequest logs a manual check request
// POST /api/v1/visibility/check
func (h *VisibilityHandler) CreateCheckRequest(c *gin.Context) {
	var input entities.VisibilityCheckRequestCreateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	request, err := h.visibilityUsecase.CreateCheckRequest(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, request)
}

// GetCheckRequest gets a check request by ID
// GET /api/v1/visibility/check/:id
func (h *VisibilityHandler) GetCheckRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid check request ID"))
		return
	}

	request, err := h.visibilityUsecase.GetCheckRequest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, request)
}

// CreateResult records a check result against an existing request
// POST /api/v1/visibility/result
func (h *VisibilityHandler) CreateResult(c *gin.Context) {
	var input entities.VisibilityResultCreateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.visibilityUsecase.CreateResult(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// GetResult gets a check result by ID
// GET /api/v1/visibility/result/:id
func (h *VisibilityHandler) GetResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid check result ID"))
		return
	}

	result, err := h.visibilityUsecase.GetResult(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreateSuggestion records an improvement suggestion
// POST /api/v1/visibility/suggestion
func (h *VisibilityHandler) CreateSuggestion(c *gin.Context) {
	var input entities.VisibilitySuggestionCreateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	suggestion, err := h.visibilityUsecase.CreateSuggestion(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, suggestion)
}

// GetSuggestion gets a suggestion by ID
// GET /api/v1/visibility/suggestion/:id
func (h *VisibilityHandler) GetSuggestion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid suggestion ID"))
		return
	}

	suggestion, err := h.visibilityUsecase.GetSuggestion(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, suggestion)
}

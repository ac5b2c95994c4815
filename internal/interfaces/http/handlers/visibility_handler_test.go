package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type visibilityServiceStub struct {
	runFn              func(ctx context.Context, businessID uuid.UUID) (*entities.VisibilityRunResponse, error)
	createRequestFn    func(ctx context.Context, input *entities.VisibilityCheckRequestCreateInput) (*entities.VisibilityCheckRequest, error)
	getRequestFn       func(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckRequest, error)
	createResultFn     func(ctx context.Context, input *entities.VisibilityResultCreateInput) (*entities.VisibilityCheckResult, error)
	getResultFn        func(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckResult, error)
	createSuggestionFn func(ctx context.Context, input *entities.VisibilitySuggestionCreateInput) (*entities.VisibilitySuggestion, error)
	getSuggestionFn    func(ctx context.Context, id uuid.UUID) (*entities.VisibilitySuggestion, error)
}

func (s visibilityServiceStub) Run(ctx context.Context, businessID uuid.UUID) (*entities.VisibilityRunResponse, error) {
	return s.runFn(ctx, businessID)
}
func (s visibilityServiceStub) CreateCheckRequest(ctx context.Context, input *entities.VisibilityCheckRequestCreateInput) (*entities.VisibilityCheckRequest, error) {
	return s.createRequestFn(ctx, input)
}
func (s visibilityServiceStub) GetCheckRequest(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckRequest, error) {
	return s.getRequestFn(ctx, id)
}
func (s visibilityServiceStub) CreateResult(ctx context.Context, input *entities.VisibilityResultCreateInput) (*entities.VisibilityCheckResult, error) {
	return s.createResultFn(ctx, input)
}
func (s visibilityServiceStub) GetResult(ctx context.Context, id uuid.UUID) (*entities.VisibilityCheckResult, error) {
	return s.getResultFn(ctx, id)
}
func (s visibilityServiceStub) CreateSuggestion(ctx context.Context, input *entities.VisibilitySuggestionCreateInput) (*entities.VisibilitySuggestion, error) {
	return s.createSuggestionFn(ctx, input)
}
func (s visibilityServiceStub) GetSuggestion(ctx context.Context, id uuid.UUID) (*entities.VisibilitySuggestion, error) {
	return s.getSuggestionFn(ctx, id)
}

type externalAuditServiceStub struct {
	auditFn func(ctx context.Context, rawURL string) *entities.ExternalAuditResult
}

func (s externalAuditServiceStub) Audit(ctx context.Context, rawURL string) *entities.ExternalAuditResult {
	return s.auditFn(ctx, rawURL)
}

func TestVisibilityHandler_Run(t *testing.T) {
	gin.SetMode(gin.TestMode)
	businessID := uuid.New()
	degradedBusinessID := uuid.New()

	stub := visibilityServiceStub{
		runFn: func(_ context.Context, id uuid.UUID) (*entities.VisibilityRunResponse, error) {
			switch id {
			case businessID:
				return &entities.VisibilityRunResponse{
					Result: &entities.VisibilityCheckResult{ID: uuid.New(), BusinessID: id, VisibilityScore: 72},
				}, nil
			case degradedBusinessID:
				return &entities.VisibilityRunResponse{
					Result: &entities.VisibilityCheckResult{
						ID:              uuid.New(),
						BusinessID:      id,
						VisibilityScore: 40,
						IssuesFound:     "CRITICAL: Missing JSON-LD presence",
					},
					Degraded: true,
				}, nil
			}
			return nil, domainerrors.NotFound("Business not found")
		},
	}

	h := NewVisibilityHandler(stub, externalAuditServiceStub{})
	r := gin.New()
	r.POST("/visibility/run", h.Run)

	// Run success
	req := httptest.NewRequest(http.MethodPost, "/visibility/run?business_id="+businessID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"visibilityScore":72`) {
		t.Fatalf("expected score in body, got %s", w.Body.String())
	}

	// AI outage still answers 200 with the fallback score
	req = httptest.NewRequest(http.MethodPost, "/visibility/run?business_id="+degradedBusinessID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"degraded":true`) {
		t.Fatalf("expected degraded flag, got %s", w.Body.String())
	}

	// Malformed business_id
	req = httptest.NewRequest(http.MethodPost, "/visibility/run?business_id=abc", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	// Unknown business
	req = httptest.NewRequest(http.MethodPost, "/visibility/run?business_id="+uuid.NewString(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestVisibilityHandler_AuditExternal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := externalAuditServiceStub{
		auditFn: func(_ context.Context, rawURL string) *entities.ExternalAuditResult {
			if strings.Contains(rawURL, "unreachable") {
				return &entities.ExternalAuditResult{URL: rawURL, Error: "fetch failed: connection refused", Issues: []string{}}
			}
			return &entities.ExternalAuditResult{URL: rawURL, Score: 100, Title: "Spice Garden", Issues: []string{}}
		},
	}

	h := NewVisibilityHandler(visibilityServiceStub{}, stub)
	r := gin.New()
	r.POST("/visibility/external", h.AuditExternal)

	// Successful audit
	body := []byte(`{"url":"https://spicegarden.example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/visibility/external", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"score":100`) {
		t.Fatalf("expected score, got %s", w.Body.String())
	}

	// Unreachable target is still a 200 with the error in the report
	body = []byte(`{"url":"https://unreachable.example.com"}`)
	req = httptest.NewRequest(http.MethodPost, "/visibility/external", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "fetch failed") {
		t.Fatalf("expected fetch error in report, got %s", w.Body.String())
	}

	// Missing url field fails binding
	req = httptest.NewRequest(http.MethodPost, "/visibility/external", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestVisibilityHandler_CheckResultSuggestion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	businessID := uuid.New()
	requestID := uuid.New()
	resultID := uuid.New()
	suggestionID := uuid.New()

	stub := visibilityServiceStub{
		createRequestFn: func(_ context.Context, input *entities.VisibilityCheckRequestCreateInput) (*entities.VisibilityCheckRequest, error) {
			if !entities.ValidCheckType(entities.CheckType(input.CheckType)) {
				return nil, domainerrors.BadRequest("Invalid check type: " + input.CheckType)
			}
			return &entities.VisibilityCheckRequest{ID: requestID, BusinessID: input.BusinessID, CheckType: entities.CheckType(input.CheckType)}, nil
		},
		getRequestFn: func(_ context.Context, id uuid.UUID) (*entities.VisibilityCheckRequest, error) {
			if id == requestID {
				return &entities.VisibilityCheckRequest{ID: id, BusinessID: businessID}, nil
			}
			return nil, domainerrors.NotFound("Check request not found")
		},
		createResultFn: func(_ context.Context, input *entities.VisibilityResultCreateInput) (*entities.VisibilityCheckResult, error) {
			if input.RequestID != requestID {
				return nil, domainerrors.NotFound("Check request not found")
			}
			return &entities.VisibilityCheckResult{ID: resultID, RequestID: input.RequestID, BusinessID: input.BusinessID}, nil
		},
		getResultFn: func(_ context.Context, id uuid.UUID) (*entities.VisibilityCheckResult, error) {
			if id == resultID {
				return &entities.VisibilityCheckResult{ID: id, RequestID: requestID, BusinessID: businessID}, nil
			}
			return nil, domainerrors.NotFound("Check result not found")
		},
		createSuggestionFn: func(_ context.Context, input *entities.VisibilitySuggestionCreateInput) (*entities.VisibilitySuggestion, error) {
			if !entities.ValidSuggestionType(entities.SuggestionType(input.SuggestionType)) {
				return nil, domainerrors.BadRequest("Invalid suggestion type: " + input.SuggestionType)
			}
			return &entities.VisibilitySuggestion{
				ID:             suggestionID,
				BusinessID:     input.BusinessID,
				SuggestionType: entities.SuggestionType(input.SuggestionType),
				Title:          input.Title,
				Status:         entities.SuggestionStatusPending,
			}, nil
		},
		getSuggestionFn: func(_ context.Context, id uuid.UUID) (*entities.VisibilitySuggestion, error) {
			if id == suggestionID {
				return &entities.VisibilitySuggestion{ID: id, BusinessID: businessID}, nil
			}
			return nil, domainerrors.NotFound("Suggestion not found")
		},
	}

	h := NewVisibilityHandler(stub, externalAuditServiceStub{})
	r := gin.New()
	r.POST("/visibility/check", h.CreateCheckRequest)
	r.GET("/visibility/check/:id", h.GetCheckRequest)
	r.POST("/visibility/result", h.CreateResult)
	r.GET("/visibility/result/:id", h.GetResult)
	r.POST("/visibility/suggestion", h.CreateSuggestion)
	r.GET("/visibility/suggestion/:id", h.GetSuggestion)

	// Check request create + fetch
	body := []byte(`{"businessId":"` + businessID.String() + `","checkType":"schema_completeness"}`)
	req := httptest.NewRequest(http.MethodPost, "/visibility/check", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	body = []byte(`{"businessId":"` + businessID.String() + `","checkType":"vibes"}`)
	req = httptest.NewRequest(http.MethodPost, "/visibility/check", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/visibility/check/"+requestID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Result against a missing request maps to 404
	body = []byte(`{"requestId":"` + uuid.NewString() + `","businessId":"` + businessID.String() + `","visibilityScore":55}`)
	req = httptest.NewRequest(http.MethodPost, "/visibility/result", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	body = []byte(`{"requestId":"` + requestID.String() + `","businessId":"` + businessID.String() + `","visibilityScore":55}`)
	req = httptest.NewRequest(http.MethodPost, "/visibility/result", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/visibility/result/"+uuid.NewString(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	// Suggestion create + fetch
	body = []byte(`{"businessId":"` + businessID.String() + `","suggestionType":"seo","title":"Add alt text to gallery photos"}`)
	req = httptest.NewRequest(http.MethodPost, "/visibility/suggestion", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status":"pending"`) {
		t.Fatalf("expected pending status, got %s", w.Body.String())
	}

	body = []byte(`{"businessId":"` + businessID.String() + `","suggestionType":"miracle","title":"x"}`)
	req = httptest.NewRequest(http.MethodPost, "/visibility/suggestion", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/visibility/suggestion/"+suggestionID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

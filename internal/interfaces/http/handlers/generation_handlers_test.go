package handlers

import (
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

type aiMetadataServiceStub struct {
	generateFn func(ctx context.Context, businessID uuid.UUID) (*entities.AiMetadataResponse, error)
	getFn      func(ctx context.Context, id uuid.UUID) (*entities.AiMetadata, error)
}

func (s aiMetadataServiceStub) Generate(ctx context.Context, businessID uuid.UUID) (*entities.AiMetadataResponse, error) {
	return s.generateFn(ctx, businessID)
}
func (s aiMetadataServiceStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.AiMetadata, error) {
	return s.getFn(ctx, id)
}

type jsonldServiceStub struct {
	generateFn func(ctx context.Context, businessID uuid.UUID) (*entities.JsonLDFeed, error)
	getFn      func(ctx context.Context, id uuid.UUID) (*entities.JsonLDFeed, error)
}

func (s jsonldServiceStub) Generate(ctx context.Context, businessID uuid.UUID) (*entities.JsonLDFeed, error) {
	return s.generateFn(ctx, businessID)
}
func (s jsonldServiceStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.JsonLDFeed, error) {
	return s.getFn(ctx, id)
}

func TestAiMetadataHandler_Mappings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	businessID := uuid.New()
	degradedBusinessID := uuid.New()
	metadataID := uuid.New()

	stub := aiMetadataServiceStub{
		generateFn: func(_ context.Context, id uuid.UUID) (*entities.AiMetadataResponse, error) {
			switch id {
			case businessID:
				return &entities.AiMetadataResponse{
					Metadata: &entities.AiMetadata{ID: metadataID, BusinessID: id, Keywords: "pizza, italian"},
				}, nil
			case degradedBusinessID:
				return &entities.AiMetadataResponse{
					Metadata: &entities.AiMetadata{ID: metadataID, BusinessID: id, Keywords: "Spice Garden, restaurant"},
					Degraded: true,
				}, nil
			}
			return nil, domainerrors.NotFound("Business not found")
		},
		getFn: func(_ context.Context, id uuid.UUID) (*entities.AiMetadata, error) {
			if id == metadataID {
				return &entities.AiMetadata{ID: id, BusinessID: businessID}, nil
			}
			return nil, domainerrors.NotFound("Metadata not found")
		},
	}

	h := NewAiMetadataHandler(stub)
	r := gin.New()
	r.POST("/ai-metadata/generate", h.Generate)
	r.GET("/ai-metadata/:id", h.GetByID)

	// Generate success
	req := httptest.NewRequest(http.MethodPost, "/ai-metadata/generate?business_id="+businessID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"degraded":false`) {
		t.Fatalf("expected degraded flag false, got %s", w.Body.String())
	}

	// AI outage still answers 200, flagged degraded
	req = httptest.NewRequest(http.MethodPost, "/ai-metadata/generate?business_id="+degradedBusinessID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"degraded":true`) {
		t.Fatalf("expected degraded flag true, got %s", w.Body.String())
	}

	// Missing business_id query param
	req = httptest.NewRequest(http.MethodPost, "/ai-metadata/generate", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	// Unknown business
	req = httptest.NewRequest(http.MethodPost, "/ai-metadata/generate?business_id="+uuid.NewString(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	// Get by ID
	req = httptest.NewRequest(http.MethodGet, "/ai-metadata/"+metadataID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/ai-metadata/"+uuid.NewString(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestJsonLDHandler_Mappings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	businessID := uuid.New()
	feedID := uuid.New()

	stub := jsonldServiceStub{
		generateFn: func(_ context.Context, id uuid.UUID) (*entities.JsonLDFeed, error) {
			if id == businessID {
				return &entities.JsonLDFeed{
					ID:         feedID,
					BusinessID: id,
					SchemaType: entities.SchemaTypeRestaurant,
					JsonLDData: `{"@context":"https://schema.org","@type":"Restaurant"}`,
					IsValid:    true,
				}, nil
			}
			return nil, domainerrors.NotFound("Business not found")
		},
		getFn: func(_ context.Context, id uuid.UUID) (*entities.JsonLDFeed, error) {
			if id == feedID {
				return &entities.JsonLDFeed{ID: id, BusinessID: businessID}, nil
			}
			return nil, domainerrors.NotFound("Feed not found")
		},
	}

	h := NewJsonLDHandler(stub)
	r := gin.New()
	r.POST("/jsonld/generate", h.Generate)
	r.GET("/jsonld/:id", h.GetByID)

	// Generate answers 200 with the persisted feed row
	req := httptest.NewRequest(http.MethodPost, "/jsonld/generate?business_id="+businessID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Restaurant") {
		t.Fatalf("expected schema type, got %s", w.Body.String())
	}

	// Bad business_id
	req = httptest.NewRequest(http.MethodPost, "/jsonld/generate?business_id=nope", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	// Unknown business
	req = httptest.NewRequest(http.MethodPost, "/jsonld/generate?business_id="+uuid.NewString(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	// Get by ID
	req = httptest.NewRequest(http.MethodGet, "/jsonld/"+feedID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/jsonld/"+uuid.NewString(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

package usecases

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"aivault.backend/internal/domain/entities"
	"aivault.backend/pkg/logger"
)

// ExternalAuditUsecase fetches and scores arbitrary public pages for
// AI-search readiness
type ExternalAuditUsecase struct {
	httpClient *http.Client
}

// NewExternalAuditUsecase creates a new external audit usecase
func NewExternalAuditUsecase(timeout time.Duration) *ExternalAuditUsecase {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ExternalAuditUsecase{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Audit fetches the URL and scores the page best-effort. Failures are
// reported through the Error field of the result, never as an error return.
func (u *ExternalAuditUsecase) Audit(ctx context.Context, rawURL string) *entities.ExternalAuditResult {
	result := &entities.ExternalAuditResult{
		URL:    rawURL,
		Issues: []string{},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("invalid URL: %v", err)
		return result
	}
	req.Header.Set("User-Agent", "aivault-visibility-audit/1.0")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		logger.Warn(ctx, "external audit fetch failed", zap.String("url", rawURL), zap.Error(err))
		result.Error = fmt.Sprintf("fetch failed: %v", err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		result.Error = fmt.Sprintf("fetch returned status %d", resp.StatusCode)
		return result
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		result.Error = fmt.Sprintf("parse failed: %v", err)
		return result
	}

	u.scorePage(doc, result)
	return result
}

func (u *ExternalAuditUsecase) scorePage(doc *goquery.Document, result *entities.ExternalAuditResult) {
	score := 0

	result.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if result.Title != "" {
		score += 20
	} else {
		result.Issues = append(result.Issues, "Missing <title>")
	}

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && strings.TrimSpace(desc) != "" {
		result.MetaDescription = strings.TrimSpace(desc)
		score += 20
	} else {
		result.Issues = append(result.Issues, "Missing meta description")
	}

	result.H1Count = doc.Find("h1").Length()
	if result.H1Count > 0 {
		score += 15
	} else {
		result.Issues = append(result.Issues, "No <h1> heading")
	}

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		result.HasJSONLD = true
		return false
	})
	if result.HasJSONLD {
		score += 25
	} else {
		result.Issues = append(result.Issues, "No JSON-LD structured data")
	}

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		result.ImageCount++
		if alt, ok := s.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			result.ImagesWithAlt++
		}
	})
	switch {
	case result.ImageCount == 0:
		// nothing to penalize
		score += 20
	case result.ImagesWithAlt == result.ImageCount:
		score += 20
	default:
		score += 20 * result.ImagesWithAlt / result.ImageCount
		result.Issues = append(result.Issues, "Images missing alt text")
	}

	result.Score = score
}

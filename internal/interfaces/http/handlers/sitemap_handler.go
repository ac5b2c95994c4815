package handlers

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"aivault.backend/internal/domain/entities"
	"aivault.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
)

type SitemapBusinessLister interface {
	List(ctx context.Context) ([]*entities.BusinessProfile, error)
}

// SitemapHandler serves the public XML sitemap of published businesses
type SitemapHandler struct {
	businessUsecase SitemapBusinessLister
	baseURL         string
}

// NewSitemapHandler creates a new sitemap handler
func NewSitemapHandler(businessUsecase SitemapBusinessLister, baseURL string) *SitemapHandler {
	return &SitemapHandler{businessUsecase: businessUsecase, baseURL: baseURL}
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Get renders the sitemap. Unpublished businesses stay out of it.
// GET /public/sitemap.xml
func (h *SitemapHandler) Get(c *gin.Context) {
	businesses, err := h.businessUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: h.baseURL + "/"},
		},
	}

	for _, business := range businesses {
		if !business.Published {
			continue
		}
		lastMod := business.CreatedAt
		if business.UpdatedAt.Valid {
			lastMod = business.UpdatedAt.Time
		}
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/business/%s", h.baseURL, business.ID),
			LastMod: lastMod.Format(time.DateOnly),
		})
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

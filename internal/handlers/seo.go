package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/httpx"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/services"
)

const (
	seoCacheControl     = "public, max-age=300"
	sitemapCacheControl = "public, max-age=3600"
	robotsCacheControl  = "public, max-age=86400"
)

// SEOHandlers exposes page metadata, sitemap.xml and robots.txt.
type SEOHandlers struct {
	seo services.SEOService
}

// NewSEOHandlers constructs SEO handlers.
func NewSEOHandlers(svc services.SEOService) *SEOHandlers {
	return &SEOHandlers{seo: svc}
}

// Routes registers public metadata endpoints.
func (h *SEOHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/seo/products/{slug}", h.productSEO)
	r.Get("/seo/blog/{slug}", h.postSEO)
	r.Get("/seo/pages/{slug}", h.pageSEO)
}

// RootRoutes registers crawler endpoints served outside the API prefix.
func (h *SEOHandlers) RootRoutes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/sitemap.xml", h.sitemap)
	r.Get("/robots.txt", h.robots)
}

// AdminRoutes registers sitemap publishing.
func (h *SEOHandlers) AdminRoutes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/sitemap:publish", h.publishSitemap)
}

func (h *SEOHandlers) productSEO(w http.ResponseWriter, r *http.Request) {
	h.writePageSEO(w, r, "product", services.SEOService.ProductSEO)
}

func (h *SEOHandlers) postSEO(w http.ResponseWriter, r *http.Request) {
	h.writePageSEO(w, r, "post", services.SEOService.PostSEO)
}

func (h *SEOHandlers) pageSEO(w http.ResponseWriter, r *http.Request) {
	h.writePageSEO(w, r, "page", services.SEOService.PageSEO)
}

func (h *SEOHandlers) writePageSEO(w http.ResponseWriter, r *http.Request, resource string, load func(services.SEOService, context.Context, string) (services.PageSEO, error)) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}
	out, err := load(h.seo, ctx, strings.TrimSpace(chi.URLParam(r, "slug")))
	if err != nil {
		writeServiceError(ctx, w, err, resource)
		return
	}
	w.Header().Set("Cache-Control", seoCacheControl)
	writeJSON(w, http.StatusOK, out)
}

func (h *SEOHandlers) sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}
	data, err := h.seo.Sitemap(ctx)
	if err != nil {
		writeServiceError(ctx, w, err, "sitemap")
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", sitemapCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *SEOHandlers) robots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", robotsCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.seo.RobotsTxt(ctx)))
}

func (h *SEOHandlers) publishSitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}
	url, err := h.seo.PublishSitemap(ctx)
	if err != nil {
		writeServiceError(ctx, w, err, "sitemap")
		return
	}
	logAdminAction(ctx, "sitemap publish", url)
	writeJSON(w, http.StatusOK, map[string]any{"url": url})
}

func (h *SEOHandlers) available(ctx context.Context, w http.ResponseWriter) bool {
	if h.seo == nil {
		httpx.WriteError(ctx, w, httpx.NewError("seo_unavailable", "seo service is unavailable", http.StatusServiceUnavailable))
		return false
	}
	return true
}

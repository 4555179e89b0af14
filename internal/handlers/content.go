package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/httpx"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/services"
)

const contentCacheControl = "public, max-age=900"

// ContentHandlers exposes rendered blog posts and static pages.
type ContentHandlers struct {
	content services.ContentService
}

// NewContentHandlers constructs content handlers.
func NewContentHandlers(svc services.ContentService) *ContentHandlers {
	return &ContentHandlers{content: svc}
}

// Routes registers public content endpoints.
func (h *ContentHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/blog/{slug}", h.getPost)
	r.Get("/pages/{slug}", h.getPage)
}

type tocEntryPayload struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

type postPayload struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	Title           string            `json:"title"`
	Summary         string            `json:"summary,omitempty"`
	Author          string            `json:"author,omitempty"`
	Tags            []string          `json:"tags"`
	Categories      []string          `json:"categories"`
	CoverImage      string            `json:"coverImage,omitempty"`
	HTML            string            `json:"html"`
	TableOfContents []tocEntryPayload `json:"tableOfContents"`
	ReadingMinutes  int               `json:"readingMinutes"`
	WordCount       int               `json:"wordCount"`
	PublishedAt     string            `json:"publishedAt,omitempty"`
	UpdatedAt       string            `json:"updatedAt,omitempty"`
}

type pagePayload struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	Title           string            `json:"title"`
	HTML            string            `json:"html"`
	TableOfContents []tocEntryPayload `json:"tableOfContents"`
	UpdatedAt       string            `json:"updatedAt,omitempty"`
}

func (h *ContentHandlers) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		httpx.WriteError(ctx, w, httpx.NewError("content_unavailable", "content service is unavailable", http.StatusServiceUnavailable))
		return
	}
	post, err := h.content.GetPost(ctx, strings.TrimSpace(chi.URLParam(r, "slug")))
	if err != nil {
		writeServiceError(ctx, w, err, "post")
		return
	}
	w.Header().Set("Cache-Control", contentCacheControl)
	writeJSON(w, http.StatusOK, postPayload{
		ID:              post.Post.ID,
		Slug:            post.Post.Slug,
		Title:           post.Post.Title,
		Summary:         post.Post.Summary,
		Author:          post.Post.Author,
		Tags:            nonNilStrings(post.Post.Tags),
		Categories:      nonNilStrings(post.Post.CategoryIDs),
		CoverImage:      post.Post.CoverImage,
		HTML:            post.HTML,
		TableOfContents: tocPayload(post.TableOfContents),
		ReadingMinutes:  post.ReadingMinutes,
		WordCount:       post.WordCount,
		PublishedAt:     formatTime(post.Post.PublishedAt),
		UpdatedAt:       formatTime(post.Post.UpdatedAt),
	})
}

func (h *ContentHandlers) getPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.content == nil {
		httpx.WriteError(ctx, w, httpx.NewError("content_unavailable", "content service is unavailable", http.StatusServiceUnavailable))
		return
	}
	page, err := h.content.GetPage(ctx, strings.TrimSpace(chi.URLParam(r, "slug")))
	if err != nil {
		writeServiceError(ctx, w, err, "page")
		return
	}
	w.Header().Set("Cache-Control", contentCacheControl)
	writeJSON(w, http.StatusOK, pagePayload{
		ID:              page.Page.ID,
		Slug:            page.Page.Slug,
		Title:           page.Page.Title,
		HTML:            page.HTML,
		TableOfContents: tocPayload(page.TableOfContents),
		UpdatedAt:       formatTime(page.Page.UpdatedAt),
	})
}

func tocPayload(entries []domain.TableOfContentsEntry) []tocEntryPayload {
	out := make([]tocEntryPayload, 0, len(entries))
	for _, entry := range entries {
		out = append(out, tocEntryPayload{Level: entry.Level, Text: entry.Text, ID: entry.ID})
	}
	return out
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

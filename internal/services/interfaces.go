package services

import (
	"context"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/nav"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/seo"
)

// MenuSource records where a resolved menu came from.
type MenuSource string

const (
	MenuSourceBackend  MenuSource = "backend"
	MenuSourceFallback MenuSource = "fallback"
)

// MenuResolution is the menu served for a surface. Err carries the failure that triggered the
// fallback, if any.
type MenuResolution struct {
	Menu   domain.NavigationMenu
	Source MenuSource
	Err    error
}

// NavigationService manages stored menus and resolves the menu rendered for each surface.
type NavigationService interface {
	Menus(ctx context.Context, menuType domain.NavigationMenuType) ([]domain.NavigationMenu, error)
	ResolveMenu(ctx context.Context, menuType domain.NavigationMenuType) MenuResolution
	CreateMenu(ctx context.Context, menu domain.NavigationMenu) (domain.NavigationMenu, error)
	ReplaceMenu(ctx context.Context, menuID string, menu domain.NavigationMenu) (domain.NavigationMenu, error)
	DeleteMenu(ctx context.Context, menuID string) error
	ValidateMenu(menu domain.NavigationMenu) nav.Report
}

// PageSEO bundles everything a page head needs.
type PageSEO struct {
	Meta           seo.Meta         `json:"meta"`
	StructuredData []map[string]any `json:"structuredData"`
	Preview        seo.Preview      `json:"preview"`
	Tags           []seo.MetaTag    `json:"tags"`
	Quality        seo.Audit        `json:"quality"`
}

// SEOService derives page metadata, the sitemap and robots.txt from catalog and content data.
type SEOService interface {
	Settings(ctx context.Context) domain.GlobalSEOSettings
	ProductSEO(ctx context.Context, slug string) (PageSEO, error)
	PostSEO(ctx context.Context, slug string) (PageSEO, error)
	PageSEO(ctx context.Context, slug string) (PageSEO, error)
	Sitemap(ctx context.Context) ([]byte, error)
	PublishSitemap(ctx context.Context) (string, error)
	RobotsTxt(ctx context.Context) string
}

// RenderedPost is a published blog post with its sanitized body.
type RenderedPost struct {
	Post            domain.BlogPost
	HTML            string
	TableOfContents []domain.TableOfContentsEntry
	ReadingMinutes  int
	WordCount       int
}

// RenderedPage is a published static page with its sanitized body.
type RenderedPage struct {
	Page            domain.Page
	HTML            string
	TableOfContents []domain.TableOfContentsEntry
}

// ContentService serves rendered blog posts and pages.
type ContentService interface {
	GetPost(ctx context.Context, slug string) (RenderedPost, error)
	GetPage(ctx context.Context, slug string) (RenderedPage, error)
}

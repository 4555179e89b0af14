package repositories

import (
	"context"
	"errors"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

// RepositoryError wraps low-level persistence failures with categorisation used by services.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsConflict() bool
	IsUnavailable() bool
}

// NavigationRepository persists navigation menus.
type NavigationRepository interface {
	// ListMenus returns menus of menuType, or every menu when menuType is empty.
	ListMenus(ctx context.Context, menuType domain.NavigationMenuType) ([]domain.NavigationMenu, error)
	GetMenu(ctx context.Context, id string) (domain.NavigationMenu, error)
	// InsertMenu fails with a conflict when the id is taken.
	InsertMenu(ctx context.Context, menu domain.NavigationMenu) error
	// ReplaceMenu overwrites an existing menu wholesale.
	ReplaceMenu(ctx context.Context, menu domain.NavigationMenu) error
	DeleteMenu(ctx context.Context, id string) error
}

// CatalogRepository reads the product catalog.
type CatalogRepository interface {
	GetProductBySlug(ctx context.Context, slug string) (domain.Product, error)
	ListActiveProducts(ctx context.Context) ([]domain.Product, error)
}

// BlogRepository reads blog posts.
type BlogRepository interface {
	GetPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error)
	ListPublishedPosts(ctx context.Context) ([]domain.BlogPost, error)
}

// PageRepository reads static CMS pages.
type PageRepository interface {
	GetPageBySlug(ctx context.Context, slug string) (domain.Page, error)
}

// SEOSettingsRepository reads the stored global SEO settings document.
type SEOSettingsRepository interface {
	GetSEOSettings(ctx context.Context) (domain.GlobalSEOSettings, error)
}

// IsNotFound reports whether err is a RepositoryError for a missing record.
func IsNotFound(err error) bool {
	var repoErr RepositoryError
	return errors.As(err, &repoErr) && repoErr.IsNotFound()
}

// IsConflict reports whether err is a RepositoryError for a conflicting write.
func IsConflict(err error) bool {
	var repoErr RepositoryError
	return errors.As(err, &repoErr) && repoErr.IsConflict()
}

// IsUnavailable reports whether err is a RepositoryError for a transient outage.
func IsUnavailable(err error) bool {
	var repoErr RepositoryError
	return errors.As(err, &repoErr) && repoErr.IsUnavailable()
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/requestctx"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/storage"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/repositories"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/seo"
)

const (
	defaultSettingsTTL    = 5 * time.Minute
	defaultSitemapObject  = "sitemap.xml"
	sitemapContentType    = "application/xml; charset=utf-8"
	sitemapCacheControl   = "public, max-age=3600"
	sitemapSourceProducts = "products"
	sitemapSourcePosts    = "posts"
)

// SitemapPublisher uploads generated artefacts to public storage.
type SitemapPublisher interface {
	Publish(ctx context.Context, name string, obj storage.Object) (string, error)
}

// SEOServiceDeps groups constructor parameters for the SEO service.
type SEOServiceDeps struct {
	Catalog repositories.CatalogRepository
	Blog    repositories.BlogRepository
	Pages   repositories.PageRepository
	// Settings is optional. Stored values overlay Defaults.
	Settings repositories.SEOSettingsRepository
	Defaults domain.GlobalSEOSettings
	// SettingsTTL bounds how long merged settings are reused. Zero selects five minutes.
	SettingsTTL   time.Duration
	Publisher     SitemapPublisher
	SitemapObject string
	Clock         func() time.Time
	Logger        *zap.Logger
}

var (
	// ErrCatalogRepositoryMissing signals that the catalog repository dependency is absent.
	ErrCatalogRepositoryMissing = errors.New("seo service: catalog repository is not configured")
	// ErrBlogRepositoryMissing signals that the blog repository dependency is absent.
	ErrBlogRepositoryMissing = errors.New("seo service: blog repository is not configured")
	// ErrPageRepositoryMissing signals that the page repository dependency is absent.
	ErrPageRepositoryMissing = errors.New("seo service: page repository is not configured")
	// ErrSitemapPublisherMissing signals that no storage bucket is configured for sitemap uploads.
	ErrSitemapPublisherMissing = errors.New("seo service: sitemap publisher is not configured")
)

type seoService struct {
	catalog       repositories.CatalogRepository
	blog          repositories.BlogRepository
	pages         repositories.PageRepository
	settingsRepo  repositories.SEOSettingsRepository
	defaults      domain.GlobalSEOSettings
	settingsTTL   time.Duration
	publisher     SitemapPublisher
	sitemapObject string
	clock         func() time.Time
	logger        *zap.Logger

	mu        sync.RWMutex
	generator *seo.Generator
	expiresAt time.Time
}

// NewSEOService constructs the SEO service with the supplied dependencies.
func NewSEOService(deps SEOServiceDeps) (SEOService, error) {
	if deps.Catalog == nil {
		return nil, ErrCatalogRepositoryMissing
	}
	if deps.Blog == nil {
		return nil, ErrBlogRepositoryMissing
	}
	if deps.Pages == nil {
		return nil, ErrPageRepositoryMissing
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	defaults := deps.Defaults
	if strings.TrimSpace(defaults.SiteName) == "" {
		defaults = seo.MergeSettings(seo.DefaultSettings(), defaults)
	}
	ttl := deps.SettingsTTL
	if ttl <= 0 {
		ttl = defaultSettingsTTL
	}
	object := strings.TrimSpace(deps.SitemapObject)
	if object == "" {
		object = defaultSitemapObject
	}
	logger := deps.Logger
	if logger == nil {
		logger = requestctx.NoopLogger()
	}
	return &seoService{
		catalog:       deps.Catalog,
		blog:          deps.Blog,
		pages:         deps.Pages,
		settingsRepo:  deps.Settings,
		defaults:      defaults,
		settingsTTL:   ttl,
		publisher:     deps.Publisher,
		sitemapObject: object,
		clock:         func() time.Time { return clock().UTC() },
		logger:        logger,
	}, nil
}

func (s *seoService) Settings(ctx context.Context) domain.GlobalSEOSettings {
	return s.generatorFor(ctx).Settings()
}

func (s *seoService) ProductSEO(ctx context.Context, slug string) (PageSEO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return PageSEO{}, ErrContentNotFound
	}
	product, err := s.catalog.GetProductBySlug(ctx, slug)
	if err != nil {
		return PageSEO{}, err
	}
	if !product.IsActive {
		return PageSEO{}, ErrContentNotFound
	}
	return s.compose(ctx, seo.FromProduct(product)), nil
}

func (s *seoService) PostSEO(ctx context.Context, slug string) (PageSEO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return PageSEO{}, ErrContentNotFound
	}
	post, err := s.blog.GetPostBySlug(ctx, slug)
	if err != nil {
		return PageSEO{}, err
	}
	if !post.Published() {
		return PageSEO{}, ErrContentNotFound
	}
	return s.compose(ctx, seo.FromBlogPost(post)), nil
}

func (s *seoService) PageSEO(ctx context.Context, slug string) (PageSEO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return PageSEO{}, ErrContentNotFound
	}
	page, err := s.pages.GetPageBySlug(ctx, slug)
	if err != nil {
		return PageSEO{}, err
	}
	if !page.IsPublished {
		return PageSEO{}, ErrContentNotFound
	}
	return s.compose(ctx, seo.FromPage(page)), nil
}

func (s *seoService) compose(ctx context.Context, entity seo.Entity) PageSEO {
	gen := s.generatorFor(ctx)
	meta := gen.GenerateSEOData(entity)
	structured := gen.GenerateAllStructuredData(entity)
	return PageSEO{
		Meta:           meta,
		StructuredData: structured,
		Preview:        gen.Preview(entity),
		Tags:           gen.MetaTags(entity),
		Quality:        seo.AuditQuality(meta, structured),
	}
}

// Sitemap renders sitemap.xml. A failing source is logged and contributes no entries.
func (s *seoService) Sitemap(ctx context.Context) ([]byte, error) {
	logger := s.loggerFor(ctx)

	products, err := s.catalog.ListActiveProducts(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Warn("sitemap source failed", zap.String("source", sitemapSourceProducts), zap.Error(err))
		products = nil
	}
	posts, err := s.blog.ListPublishedPosts(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Warn("sitemap source failed", zap.String("source", sitemapSourcePosts), zap.Error(err))
		posts = nil
	}

	settings := s.generatorFor(ctx).Settings()
	entries := seo.BuildSitemapEntries(settings.CanonicalURL, s.clock(), products, posts)
	return seo.Sitemap(entries)
}

func (s *seoService) PublishSitemap(ctx context.Context) (string, error) {
	if s.publisher == nil {
		return "", ErrSitemapPublisherMissing
	}
	data, err := s.Sitemap(ctx)
	if err != nil {
		return "", err
	}
	url, err := s.publisher.Publish(ctx, s.sitemapObject, storage.Object{
		ContentType:  sitemapContentType,
		CacheControl: sitemapCacheControl,
		Data:         data,
	})
	if err != nil {
		return "", fmt.Errorf("seo service: publish sitemap: %w", err)
	}
	s.loggerFor(ctx).Info("sitemap published", zap.String("url", url), zap.Int("bytes", len(data)))
	return url, nil
}

func (s *seoService) RobotsTxt(ctx context.Context) string {
	return seo.RobotsTxt(s.generatorFor(ctx).Settings())
}

// generatorFor returns a generator over the merged settings, refreshing it once the TTL lapses.
// When the stored settings cannot be read the defaults are used and the refresh is retried on the
// next call.
func (s *seoService) generatorFor(ctx context.Context) *seo.Generator {
	now := s.clock()
	s.mu.RLock()
	gen, expiresAt := s.generator, s.expiresAt
	s.mu.RUnlock()
	if gen != nil && now.Before(expiresAt) {
		return gen
	}

	if s.settingsRepo == nil {
		gen = seo.NewGenerator(s.defaults)
		s.remember(gen, now.Add(s.settingsTTL))
		return gen
	}

	stored, err := s.settingsRepo.GetSEOSettings(ctx)
	if err != nil {
		if !repositories.IsNotFound(err) {
			s.loggerFor(ctx).Warn("seo settings unavailable, using defaults", zap.Error(err))
			if gen != nil {
				return gen
			}
			return seo.NewGenerator(s.defaults)
		}
		stored = domain.GlobalSEOSettings{}
	}
	gen = seo.NewGenerator(seo.MergeSettings(s.defaults, stored))
	s.remember(gen, now.Add(s.settingsTTL))
	return gen
}

func (s *seoService) remember(gen *seo.Generator, expiresAt time.Time) {
	s.mu.Lock()
	s.generator = gen
	s.expiresAt = expiresAt
	s.mu.Unlock()
}

func (s *seoService) loggerFor(ctx context.Context) *zap.Logger {
	return loggerFrom(ctx, s.logger)
}

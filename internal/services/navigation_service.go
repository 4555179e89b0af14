package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/nav"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/requestctx"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/repositories"
)

const (
	// DefaultNavigationCacheTTL applies when NavigationServiceDeps.CacheTTL is zero.
	DefaultNavigationCacheTTL = 5 * time.Minute

	menuIDPrefix = "nav_"

	fallbackReasonFetch   = "fetch_error"
	fallbackReasonMissing = "no_active_menu"
	fallbackReasonType    = "invalid_type"
)

// FallbackRecorder observes menu resolutions served from the static fallback.
type FallbackRecorder interface {
	RecordFallback(ctx context.Context, menuType, reason string)
}

// NavigationServiceDeps groups constructor parameters for the navigation service.
type NavigationServiceDeps struct {
	Repository repositories.NavigationRepository
	Clock      func() time.Time
	// CacheTTL bounds how long resolved menus are reused. Zero selects DefaultNavigationCacheTTL and a
	// negative value disables caching.
	CacheTTL    time.Duration
	Fallback    func() domain.NavigationMenu
	Metrics     FallbackRecorder
	Logger      *zap.Logger
	IDGenerator func() string
}

// ErrNavigationRepositoryMissing signals that the navigation repository dependency is absent.
var ErrNavigationRepositoryMissing = errors.New("navigation service: navigation repository is not configured")

type cachedMenu struct {
	menu      domain.NavigationMenu
	expiresAt time.Time
}

type navigationService struct {
	repo     repositories.NavigationRepository
	clock    func() time.Time
	ttl      time.Duration
	fallback func() domain.NavigationMenu
	metrics  FallbackRecorder
	logger   *zap.Logger
	newID    func() string

	// generation advances on every write so reads that started earlier cannot repopulate the cache.
	mu         sync.RWMutex
	cache      map[domain.NavigationMenuType]cachedMenu
	generation uint64
}

// NewNavigationService constructs the navigation service with the supplied dependencies.
func NewNavigationService(deps NavigationServiceDeps) (NavigationService, error) {
	if deps.Repository == nil {
		return nil, ErrNavigationRepositoryMissing
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	ttl := deps.CacheTTL
	if ttl == 0 {
		ttl = DefaultNavigationCacheTTL
	}
	fallback := deps.Fallback
	if fallback == nil {
		fallback = nav.Fallback
	}
	logger := deps.Logger
	if logger == nil {
		logger = requestctx.NoopLogger()
	}
	newID := deps.IDGenerator
	if newID == nil {
		newID = func() string { return menuIDPrefix + strings.ToLower(ulid.Make().String()) }
	}
	return &navigationService{
		repo:     deps.Repository,
		clock:    func() time.Time { return clock().UTC() },
		ttl:      ttl,
		fallback: fallback,
		metrics:  deps.Metrics,
		logger:   logger,
		newID:    newID,
		cache:    make(map[domain.NavigationMenuType]cachedMenu),
	}, nil
}

func (s *navigationService) Menus(ctx context.Context, menuType domain.NavigationMenuType) ([]domain.NavigationMenu, error) {
	if menuType != "" && !menuType.Valid() {
		return nil, ErrInvalidMenuType
	}
	menus, err := s.repo.ListMenus(ctx, menuType)
	if err != nil {
		return nil, &FetchError{MenuType: menuType, Err: err}
	}
	return nav.SortMenus(menus), nil
}

func (s *navigationService) ResolveMenu(ctx context.Context, menuType domain.NavigationMenuType) MenuResolution {
	if !menuType.Valid() {
		return s.fallbackFor(ctx, menuType, fallbackReasonType, ErrInvalidMenuType)
	}
	menu, generation, ok := s.cached(menuType)
	if ok {
		return MenuResolution{Menu: menu, Source: MenuSourceBackend}
	}

	menus, err := s.Menus(ctx, menuType)
	if err != nil {
		return s.fallbackFor(ctx, menuType, fallbackReasonFetch, err)
	}
	menu, ok = nav.Authoritative(menus, menuType)
	if !ok {
		return s.fallbackFor(ctx, menuType, fallbackReasonMissing, ErrNoActiveMenu)
	}

	if !nav.ValidateTreeDepth(menu.Items) {
		s.loggerFor(ctx).Warn("navigation menu exceeds maximum depth",
			zap.String("menuId", menu.ID),
			zap.String("menuType", string(menuType)),
			zap.Int("depth", nav.Depth(menu.Items)),
			zap.Int("maxDepth", nav.MaxDepth),
		)
	}

	s.store(menuType, menu, generation)
	return MenuResolution{Menu: cloneMenu(menu), Source: MenuSourceBackend}
}

func (s *navigationService) CreateMenu(ctx context.Context, menu domain.NavigationMenu) (domain.NavigationMenu, error) {
	menu = normalizeMenu(menu)
	now := s.clock()
	menu.ID = s.newID()
	menu.Version = 1
	menu.CreatedAt = now
	menu.UpdatedAt = now

	if err := s.checkMenu(ctx, menu); err != nil {
		return domain.NavigationMenu{}, err
	}
	if err := s.repo.InsertMenu(ctx, menu); err != nil {
		return domain.NavigationMenu{}, err
	}
	s.invalidate()
	s.loggerFor(ctx).Info("navigation menu created",
		zap.String("menuId", menu.ID),
		zap.String("menuType", string(menu.Type)),
	)
	return menu, nil
}

func (s *navigationService) ReplaceMenu(ctx context.Context, menuID string, menu domain.NavigationMenu) (domain.NavigationMenu, error) {
	menuID = strings.TrimSpace(menuID)
	if menuID == "" {
		return domain.NavigationMenu{}, errors.New("navigation service: menu id is required")
	}
	existing, err := s.repo.GetMenu(ctx, menuID)
	if err != nil {
		return domain.NavigationMenu{}, err
	}

	menu = normalizeMenu(menu)
	menu.ID = menuID
	menu.Version = existing.Version + 1
	menu.CreatedAt = existing.CreatedAt
	menu.UpdatedAt = s.clock()

	if err := s.checkMenu(ctx, menu); err != nil {
		return domain.NavigationMenu{}, err
	}
	if err := s.repo.ReplaceMenu(ctx, menu); err != nil {
		return domain.NavigationMenu{}, err
	}
	s.invalidate()
	s.loggerFor(ctx).Info("navigation menu replaced",
		zap.String("menuId", menu.ID),
		zap.Int("version", menu.Version),
	)
	return menu, nil
}

func (s *navigationService) DeleteMenu(ctx context.Context, menuID string) error {
	menuID = strings.TrimSpace(menuID)
	if menuID == "" {
		return errors.New("navigation service: menu id is required")
	}
	if err := s.repo.DeleteMenu(ctx, menuID); err != nil {
		return err
	}
	s.invalidate()
	s.loggerFor(ctx).Info("navigation menu deleted", zap.String("menuId", menuID))
	return nil
}

func (s *navigationService) ValidateMenu(menu domain.NavigationMenu) nav.Report {
	return nav.Validate(normalizeMenu(menu))
}

// checkMenu rejects invalid trees and names already used by another menu.
func (s *navigationService) checkMenu(ctx context.Context, menu domain.NavigationMenu) error {
	if report := nav.Validate(menu); !report.IsValid {
		return &ValidationError{Report: report}
	}
	existing, err := s.repo.ListMenus(ctx, "")
	if err != nil {
		return &FetchError{Err: err}
	}
	for _, other := range existing {
		if other.ID != menu.ID && strings.EqualFold(other.Name, menu.Name) {
			return ErrMenuNameConflict
		}
	}
	return nil
}

func (s *navigationService) fallbackFor(ctx context.Context, menuType domain.NavigationMenuType, reason string, cause error) MenuResolution {
	menu := s.fallback()
	if menuType.Valid() {
		menu.Type = menuType
	}
	s.loggerFor(ctx).Warn("serving fallback navigation menu",
		zap.String("menuType", string(menuType)),
		zap.String("reason", reason),
		zap.Error(cause),
	)
	if s.metrics != nil {
		s.metrics.RecordFallback(ctx, string(menuType), reason)
	}
	return MenuResolution{Menu: menu, Source: MenuSourceFallback, Err: cause}
}

// cached returns the live entry for menuType and the cache generation observed with it.
func (s *navigationService) cached(menuType domain.NavigationMenuType) (domain.NavigationMenu, uint64, bool) {
	s.mu.RLock()
	entry, ok := s.cache[menuType]
	generation := s.generation
	s.mu.RUnlock()
	if s.ttl < 0 || !ok || !s.clock().Before(entry.expiresAt) {
		return domain.NavigationMenu{}, generation, false
	}
	return cloneMenu(entry.menu), generation, true
}

// store caches menu unless a write has invalidated the cache since generation was observed.
func (s *navigationService) store(menuType domain.NavigationMenuType, menu domain.NavigationMenu, generation uint64) {
	if s.ttl < 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		return
	}
	s.cache[menuType] = cachedMenu{menu: cloneMenu(menu), expiresAt: s.clock().Add(s.ttl)}
}

func (s *navigationService) invalidate() {
	s.mu.Lock()
	s.generation++
	clear(s.cache)
	s.mu.Unlock()
}

func (s *navigationService) loggerFor(ctx context.Context) *zap.Logger {
	return loggerFrom(ctx, s.logger)
}

func normalizeMenu(menu domain.NavigationMenu) domain.NavigationMenu {
	menu.Name = strings.TrimSpace(menu.Name)
	menu.DisplayName = strings.TrimSpace(menu.DisplayName)
	menu.Type = domain.NavigationMenuType(strings.ToLower(strings.TrimSpace(string(menu.Type))))
	if menu.Items == nil {
		menu.Items = []domain.NavigationItem{}
	}
	return menu
}

func cloneMenu(menu domain.NavigationMenu) domain.NavigationMenu {
	menu.Items = nav.CloneItems(menu.Items)
	return menu
}

package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/nav"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/requestctx"
)

func sampleMenu(id, name string, menuType domain.NavigationMenuType) domain.NavigationMenu {
	return domain.NavigationMenu{
		ID:       id,
		Name:     name,
		Type:     menuType,
		IsActive: true,
		Version:  1,
		Items: []domain.NavigationItem{
			{ID: id + "-home", Label: "Home", URL: "/", Type: domain.NavigationItemPage, Order: 1, IsVisible: true},
			{ID: id + "-products", Label: "Products", URL: "/products", Type: domain.NavigationItemPage, Order: 2, IsVisible: true},
		},
	}
}

// deepChain builds a single branch whose deepest item sits at depth.
func deepChain(depth int) []domain.NavigationItem {
	item := domain.NavigationItem{ID: "leaf", Label: "Leaf", URL: "/leaf", Type: domain.NavigationItemPage, IsVisible: true}
	for level := depth - 1; level >= 0; level-- {
		id := "level-" + string(rune('a'+level))
		item = domain.NavigationItem{
			ID:          id,
			Label:       id,
			URL:         "/" + id,
			Type:        domain.NavigationItemPage,
			Description: "branch",
			IsVisible:   true,
			Children:    []domain.NavigationItem{item},
		}
	}
	return []domain.NavigationItem{item}
}

func newTestNavigationService(t *testing.T, repo *stubNavigationRepository, now *time.Time, metrics FallbackRecorder) NavigationService {
	t.Helper()
	service, err := NewNavigationService(NavigationServiceDeps{
		Repository:  repo,
		Clock:       func() time.Time { return *now },
		CacheTTL:    time.Minute,
		Metrics:     metrics,
		IDGenerator: func() string { return "nav_test" },
	})
	if err != nil {
		t.Fatalf("NewNavigationService: %v", err)
	}
	return service
}

func TestNavigationService_RequiresRepository(t *testing.T) {
	if _, err := NewNavigationService(NavigationServiceDeps{}); !errors.Is(err, ErrNavigationRepositoryMissing) {
		t.Fatalf("expected ErrNavigationRepositoryMissing, got %v", err)
	}
}

func TestNavigationService_Menus_SortsAndWrapsErrors(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	repo := newStubNavigationRepository(
		sampleMenu("m3", "zeta", domain.NavigationMenuFooter),
		sampleMenu("m1", "beta", domain.NavigationMenuMain),
		sampleMenu("m2", "alpha", domain.NavigationMenuMain),
	)
	service := newTestNavigationService(t, repo, &now, nil)

	menus, err := service.Menus(context.Background(), "")
	if err != nil {
		t.Fatalf("Menus: %v", err)
	}
	var ids []string
	for _, menu := range menus {
		ids = append(ids, menu.ID)
	}
	if got := strings.Join(ids, ","); got != "m2,m1,m3" {
		t.Fatalf("unexpected order %s", got)
	}

	repo.listErr = errStubUnavailable
	_, err = service.Menus(context.Background(), domain.NavigationMenuMain)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fetchErr.MenuType != domain.NavigationMenuMain {
		t.Fatalf("unexpected menu type %q", fetchErr.MenuType)
	}
	if !errors.Is(err, errStubUnavailable) {
		t.Fatalf("expected wrapped repository error")
	}

	if _, err := service.Menus(context.Background(), "sidebar"); !errors.Is(err, ErrInvalidMenuType) {
		t.Fatalf("expected ErrInvalidMenuType, got %v", err)
	}
}

func TestNavigationService_ResolveMenu_FallsBackOnFetchError(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	repo := newStubNavigationRepository()
	repo.listErr = errStubUnavailable
	metrics := &stubFallbackRecorder{}
	service := newTestNavigationService(t, repo, &now, metrics)

	res := service.ResolveMenu(context.Background(), domain.NavigationMenuMain)

	if res.Source != MenuSourceFallback {
		t.Fatalf("expected fallback source, got %s", res.Source)
	}
	if res.Menu.ID != nav.Fallback().ID {
		t.Fatalf("expected fallback menu, got %s", res.Menu.ID)
	}
	var fetchErr *FetchError
	if !errors.As(res.Err, &fetchErr) {
		t.Fatalf("expected FetchError cause, got %v", res.Err)
	}
	if len(metrics.calls) != 1 || metrics.calls[0] != (recordedFallback{menuType: "main", reason: fallbackReasonFetch}) {
		t.Fatalf("unexpected metrics calls %+v", metrics.calls)
	}
}

func TestNavigationService_ResolveMenu_FallsBackWhenNoActiveMenu(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	inactive := sampleMenu("m1", "footer", domain.NavigationMenuFooter)
	inactive.IsActive = false
	repo := newStubNavigationRepository(inactive)
	metrics := &stubFallbackRecorder{}
	service := newTestNavigationService(t, repo, &now, metrics)

	res := service.ResolveMenu(context.Background(), domain.NavigationMenuFooter)

	if res.Source != MenuSourceFallback {
		t.Fatalf("expected fallback source, got %s", res.Source)
	}
	if !errors.Is(res.Err, ErrNoActiveMenu) {
		t.Fatalf("expected ErrNoActiveMenu, got %v", res.Err)
	}
	if res.Menu.Type != domain.NavigationMenuFooter {
		t.Fatalf("expected fallback to carry requested type, got %s", res.Menu.Type)
	}
	if len(metrics.calls) != 1 || metrics.calls[0].reason != fallbackReasonMissing {
		t.Fatalf("unexpected metrics calls %+v", metrics.calls)
	}
}

func TestNavigationService_ResolveMenu_CachesUntilTTL(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	repo := newStubNavigationRepository(sampleMenu("m1", "main", domain.NavigationMenuMain))
	service := newTestNavigationService(t, repo, &now, nil)
	ctx := context.Background()

	first := service.ResolveMenu(ctx, domain.NavigationMenuMain)
	if first.Source != MenuSourceBackend || first.Menu.ID != "m1" {
		t.Fatalf("unexpected resolution %+v", first)
	}
	first.Menu.Items[0].Label = "mutated"

	second := service.ResolveMenu(ctx, domain.NavigationMenuMain)
	if repo.listCalls() != 1 {
		t.Fatalf("expected cached resolution, got %d list calls", repo.listCalls())
	}
	if second.Menu.Items[0].Label != "Home" {
		t.Fatalf("cached menu was mutated through a previous result")
	}

	now = now.Add(2 * time.Minute)
	service.ResolveMenu(ctx, domain.NavigationMenuMain)
	if repo.listCalls() != 2 {
		t.Fatalf("expected refresh after ttl, got %d list calls", repo.listCalls())
	}
}

func TestNavigationService_ResolveMenu_NegativeTTLDisablesCache(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	repo := newStubNavigationRepository(sampleMenu("m1", "main", domain.NavigationMenuMain))
	service, err := NewNavigationService(NavigationServiceDeps{
		Repository: repo,
		Clock:      func() time.Time { return now },
		CacheTTL:   -1,
	})
	if err != nil {
		t.Fatalf("NewNavigationService: %v", err)
	}

	service.ResolveMenu(context.Background(), domain.NavigationMenuMain)
	service.ResolveMenu(context.Background(), domain.NavigationMenuMain)

	if repo.listCalls() != 2 {
		t.Fatalf("expected every call to hit the repository, got %d", repo.listCalls())
	}
}

func TestNavigationService_ResolveMenu_ServesOverDeepMenuWithWarning(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	menu := sampleMenu("m1", "main", domain.NavigationMenuMain)
	menu.Items = deepChain(nav.MaxDepth + 1)
	repo := newStubNavigationRepository(menu)
	service := newTestNavigationService(t, repo, &now, nil)

	core, logs := observer.New(zapcore.WarnLevel)
	ctx := requestctx.WithLogger(context.Background(), zap.New(core))

	res := service.ResolveMenu(ctx, domain.NavigationMenuMain)

	if res.Source != MenuSourceBackend {
		t.Fatalf("over-deep menu should still be served, got %s", res.Source)
	}
	if nav.Depth(res.Menu.Items) != nav.MaxDepth+1 {
		t.Fatalf("menu should be served unchanged, depth %d", nav.Depth(res.Menu.Items))
	}
	if logs.FilterMessage("navigation menu exceeds maximum depth").Len() != 1 {
		t.Fatalf("expected depth warning, got %v", logs.All())
	}
}

func TestNavigationService_CreateMenu(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	repo := newStubNavigationRepository()
	service := newTestNavigationService(t, repo, &now, nil)

	input := sampleMenu("", "  Main Menu ", " MAIN ")
	input.Version = 7
	created, err := service.CreateMenu(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}

	if created.ID != "nav_test" || created.Version != 1 {
		t.Fatalf("unexpected identity %s v%d", created.ID, created.Version)
	}
	if created.Name != "Main Menu" || created.Type != domain.NavigationMenuMain {
		t.Fatalf("expected normalized name and type, got %q %q", created.Name, created.Type)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps %s %s", created.CreatedAt, created.UpdatedAt)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].ID != "nav_test" {
		t.Fatalf("expected insert call, got %+v", repo.inserted)
	}
}

func TestNavigationService_CreateMenu_GeneratesPrefixedULID(t *testing.T) {
	repo := newStubNavigationRepository()
	service, err := NewNavigationService(NavigationServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("NewNavigationService: %v", err)
	}

	created, err := service.CreateMenu(context.Background(), sampleMenu("", "main", domain.NavigationMenuMain))
	if err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}
	if !strings.HasPrefix(created.ID, "nav_") || len(created.ID) != len("nav_")+26 {
		t.Fatalf("unexpected id %q", created.ID)
	}
}

func TestNavigationService_CreateMenu_RejectsTooDeepTree(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	repo := newStubNavigationRepository()
	service := newTestNavigationService(t, repo, &now, nil)

	menu := sampleMenu("", "main", domain.NavigationMenuMain)
	menu.Items = deepChain(nav.MaxDepth + 1)
	_, err := service.CreateMenu(context.Background(), menu)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Report.IsValid {
		t.Fatalf("expected invalid report")
	}
	if !strings.Contains(validationErr.Error(), "maximum depth") {
		t.Fatalf("unexpected message %q", validationErr.Error())
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("invalid menu must not be stored")
	}

	menu.Items = deepChain(nav.MaxDepth)
	if _, err := service.CreateMenu(context.Background(), menu); err != nil {
		t.Fatalf("menu at max depth should be accepted: %v", err)
	}
}

func TestNavigationService_CreateMenu_RejectsDuplicateName(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	repo := newStubNavigationRepository(sampleMenu("m1", "Main", domain.NavigationMenuMain))
	service := newTestNavigationService(t, repo, &now, nil)

	_, err := service.CreateMenu(context.Background(), sampleMenu("", "main", domain.NavigationMenuFooter))
	if !errors.Is(err, ErrMenuNameConflict) {
		t.Fatalf("expected ErrMenuNameConflict, got %v", err)
	}
}

func TestNavigationService_ReplaceMenu_BumpsVersionAndInvalidatesCache(t *testing.T) {
	created := time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	stored := sampleMenu("m1", "main", domain.NavigationMenuMain)
	stored.Version = 3
	stored.CreatedAt = created
	repo := newStubNavigationRepository(stored)
	service := newTestNavigationService(t, repo, &now, nil)
	ctx := context.Background()

	if res := service.ResolveMenu(ctx, domain.NavigationMenuMain); res.Menu.Items[0].Label != "Home" {
		t.Fatalf("unexpected initial menu %+v", res.Menu)
	}

	update := sampleMenu("ignored", "main", domain.NavigationMenuMain)
	update.Items[0].Label = "Start"
	replaced, err := service.ReplaceMenu(ctx, "m1", update)
	if err != nil {
		t.Fatalf("ReplaceMenu: %v", err)
	}
	if replaced.ID != "m1" || replaced.Version != 4 {
		t.Fatalf("unexpected identity %s v%d", replaced.ID, replaced.Version)
	}
	if !replaced.CreatedAt.Equal(created) || !replaced.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps %s %s", replaced.CreatedAt, replaced.UpdatedAt)
	}

	res := service.ResolveMenu(ctx, domain.NavigationMenuMain)
	if res.Menu.Items[0].Label != "Start" {
		t.Fatalf("expected cache invalidated after replace, got %q", res.Menu.Items[0].Label)
	}
}

func TestNavigationService_ResolveMenu_DoesNotCacheReadOverlappingWrite(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	stored := sampleMenu("m1", "main", domain.NavigationMenuMain)
	stored.Items[0].Label = "Old"
	repo := newStubNavigationRepository(stored)
	service := newTestNavigationService(t, repo, &now, nil)
	ctx := context.Background()

	listed := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	repo.afterList = func(menuType domain.NavigationMenuType) {
		if menuType != domain.NavigationMenuMain {
			return
		}
		once.Do(func() {
			close(listed)
			<-release
		})
	}

	done := make(chan MenuResolution)
	go func() {
		done <- service.ResolveMenu(ctx, domain.NavigationMenuMain)
	}()
	<-listed

	update := sampleMenu("m1", "main", domain.NavigationMenuMain)
	update.Items[0].Label = "New"
	if _, err := service.ReplaceMenu(ctx, "m1", update); err != nil {
		t.Fatalf("ReplaceMenu: %v", err)
	}
	close(release)

	if stale := <-done; stale.Menu.Items[0].Label != "Old" {
		t.Fatalf("expected overlapping read to return the snapshot it listed, got %q", stale.Menu.Items[0].Label)
	}

	res := service.ResolveMenu(ctx, domain.NavigationMenuMain)
	if res.Source != MenuSourceBackend {
		t.Fatalf("expected backend source, got %s", res.Source)
	}
	if res.Menu.Items[0].Label != "New" || res.Menu.Version != 2 {
		t.Fatalf("expected replaced menu after write, got label=%q version=%d", res.Menu.Items[0].Label, res.Menu.Version)
	}
}

func TestNavigationService_ReplaceMenu_MissingMenu(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	repo := newStubNavigationRepository()
	service := newTestNavigationService(t, repo, &now, nil)

	_, err := service.ReplaceMenu(context.Background(), "missing", sampleMenu("", "main", domain.NavigationMenuMain))
	if !errors.Is(err, errStubNotFound) {
		t.Fatalf("expected repository not found, got %v", err)
	}
}

func TestNavigationService_DeleteMenu(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	repo := newStubNavigationRepository(sampleMenu("m1", "main", domain.NavigationMenuMain))
	service := newTestNavigationService(t, repo, &now, nil)
	ctx := context.Background()

	service.ResolveMenu(ctx, domain.NavigationMenuMain)
	if err := service.DeleteMenu(ctx, " m1 "); err != nil {
		t.Fatalf("DeleteMenu: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "m1" {
		t.Fatalf("unexpected delete calls %v", repo.deleted)
	}

	res := service.ResolveMenu(ctx, domain.NavigationMenuMain)
	if res.Source != MenuSourceFallback {
		t.Fatalf("expected fallback after delete, got %s", res.Source)
	}

	if err := service.DeleteMenu(ctx, ""); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestNavigationService_ValidateMenu(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	service := newTestNavigationService(t, newStubNavigationRepository(), &now, nil)

	menu := sampleMenu("m1", "main", domain.NavigationMenuMain)
	menu.Items[1].URL = "products"

	report := service.ValidateMenu(menu)
	if report.IsValid {
		t.Fatalf("expected invalid report")
	}
	if len(report.Errors()) != 1 || report.Errors()[0].ItemID != "m1-products" {
		t.Fatalf("unexpected errors %+v", report.Errors())
	}
}

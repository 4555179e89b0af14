package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/nav"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/services"
)

var errBoom = errors.New("boom")

type stubRepoError struct {
	notFound    bool
	unavailable bool
}

func (e stubRepoError) Error() string       { return "stub repository error" }
func (e stubRepoError) IsNotFound() bool    { return e.notFound }
func (e stubRepoError) IsConflict() bool    { return false }
func (e stubRepoError) IsUnavailable() bool { return e.unavailable }

type stubNavigationService struct {
	resolution services.MenuResolution
	resolved   []domain.NavigationMenuType

	menus    []domain.NavigationMenu
	menusErr error

	created   domain.NavigationMenu
	createErr error

	replacedID string
	replaced   domain.NavigationMenu
	replaceErr error

	deletedID string
	deleteErr error
}

func (s *stubNavigationService) Menus(context.Context, domain.NavigationMenuType) ([]domain.NavigationMenu, error) {
	return s.menus, s.menusErr
}

func (s *stubNavigationService) ResolveMenu(_ context.Context, menuType domain.NavigationMenuType) services.MenuResolution {
	s.resolved = append(s.resolved, menuType)
	res := s.resolution
	res.Menu.Items = nav.CloneItems(res.Menu.Items)
	return res
}

func (s *stubNavigationService) CreateMenu(_ context.Context, menu domain.NavigationMenu) (domain.NavigationMenu, error) {
	if s.createErr != nil {
		return domain.NavigationMenu{}, s.createErr
	}
	menu.ID = "nav_created"
	menu.Version = 1
	s.created = menu
	return menu, nil
}

func (s *stubNavigationService) ReplaceMenu(_ context.Context, menuID string, menu domain.NavigationMenu) (domain.NavigationMenu, error) {
	if s.replaceErr != nil {
		return domain.NavigationMenu{}, s.replaceErr
	}
	menu.ID = menuID
	menu.Version = 2
	s.replacedID = menuID
	s.replaced = menu
	return menu, nil
}

func (s *stubNavigationService) DeleteMenu(_ context.Context, menuID string) error {
	s.deletedID = menuID
	return s.deleteErr
}

func (s *stubNavigationService) ValidateMenu(menu domain.NavigationMenu) nav.Report {
	return nav.Validate(menu)
}

type stubSEOService struct {
	pageSEO    services.PageSEO
	err        error
	slugs      []string
	sitemap    []byte
	sitemapErr error
	publishURL string
	publishErr error
	robots     string
}

func (s *stubSEOService) Settings(context.Context) domain.GlobalSEOSettings {
	return domain.GlobalSEOSettings{}
}

func (s *stubSEOService) ProductSEO(_ context.Context, slug string) (services.PageSEO, error) {
	s.slugs = append(s.slugs, "product:"+slug)
	return s.pageSEO, s.err
}

func (s *stubSEOService) PostSEO(_ context.Context, slug string) (services.PageSEO, error) {
	s.slugs = append(s.slugs, "post:"+slug)
	return s.pageSEO, s.err
}

func (s *stubSEOService) PageSEO(_ context.Context, slug string) (services.PageSEO, error) {
	s.slugs = append(s.slugs, "page:"+slug)
	return s.pageSEO, s.err
}

func (s *stubSEOService) Sitemap(context.Context) ([]byte, error) {
	return s.sitemap, s.sitemapErr
}

func (s *stubSEOService) PublishSitemap(context.Context) (string, error) {
	return s.publishURL, s.publishErr
}

func (s *stubSEOService) RobotsTxt(context.Context) string {
	return s.robots
}

type stubContentService struct {
	post    services.RenderedPost
	page    services.RenderedPage
	err     error
	slugArg string
}

func (s *stubContentService) GetPost(_ context.Context, slug string) (services.RenderedPost, error) {
	s.slugArg = slug
	return s.post, s.err
}

func (s *stubContentService) GetPage(_ context.Context, slug string) (services.RenderedPage, error) {
	s.slugArg = slug
	return s.page, s.err
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return body
}

func testMenu() domain.NavigationMenu {
	return domain.NavigationMenu{
		ID:       "m1",
		Name:     "main",
		Type:     domain.NavigationMenuMain,
		IsActive: true,
		Items: []domain.NavigationItem{
			{ID: "about", Label: "About", URL: "/about", Type: domain.NavigationItemPage, Order: 3, IsVisible: true},
			{ID: "hidden", Label: "Hidden", URL: "/hidden", Type: domain.NavigationItemPage, Order: 0, IsVisible: false},
			{
				ID: "products", Label: "Products", URL: "/products", Type: domain.NavigationItemPage, Order: 1, IsVisible: true,
				Description: "Timber range",
				Children: []domain.NavigationItem{
					{
						ID: "teak", Label: "Teak Wood", URL: "/products/teak", Type: domain.NavigationItemCategory, Order: 1, IsVisible: true,
						Children: []domain.NavigationItem{
							{ID: "burma", Label: "Burma Teak", URL: "/products/teak/burma", Type: domain.NavigationItemPage, Order: 1, IsVisible: true},
						},
					},
					{ID: "ply", Label: "Plywood", URL: "/products/plywood", Type: domain.NavigationItemCategory, Order: 2, IsVisible: true},
				},
			},
			{ID: "blog", Label: "Blog", URL: "/blog", Type: domain.NavigationItemPage, Order: 2, IsVisible: true},
		},
	}
}

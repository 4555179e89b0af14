package services

import (
	"context"
	"errors"
	"sync"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/storage"
)

type stubRepoError struct {
	notFound    bool
	conflict    bool
	unavailable bool
}

func (e stubRepoError) Error() string       { return "stub repository error" }
func (e stubRepoError) IsNotFound() bool    { return e.notFound }
func (e stubRepoError) IsConflict() bool    { return e.conflict }
func (e stubRepoError) IsUnavailable() bool { return e.unavailable }

var (
	errStubNotFound    = stubRepoError{notFound: true}
	errStubUnavailable = stubRepoError{unavailable: true}
)

type stubNavigationRepository struct {
	mu       sync.Mutex
	menus    map[string]domain.NavigationMenu
	listErr  error
	listCall []domain.NavigationMenuType
	inserted []domain.NavigationMenu
	replaced []domain.NavigationMenu
	deleted  []string
	// afterList runs once a listing has been read, outside the lock.
	afterList func(menuType domain.NavigationMenuType)
}

func newStubNavigationRepository(menus ...domain.NavigationMenu) *stubNavigationRepository {
	repo := &stubNavigationRepository{menus: make(map[string]domain.NavigationMenu)}
	for _, menu := range menus {
		repo.menus[menu.ID] = menu
	}
	return repo
}

func (r *stubNavigationRepository) ListMenus(_ context.Context, menuType domain.NavigationMenuType) ([]domain.NavigationMenu, error) {
	r.mu.Lock()
	r.listCall = append(r.listCall, menuType)
	if r.listErr != nil {
		r.mu.Unlock()
		return nil, r.listErr
	}
	var out []domain.NavigationMenu
	for _, menu := range r.menus {
		if menuType == "" || menu.Type == menuType {
			out = append(out, cloneMenu(menu))
		}
	}
	hook := r.afterList
	r.mu.Unlock()
	if hook != nil {
		hook(menuType)
	}
	return out, nil
}

func (r *stubNavigationRepository) GetMenu(_ context.Context, id string) (domain.NavigationMenu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	menu, ok := r.menus[id]
	if !ok {
		return domain.NavigationMenu{}, errStubNotFound
	}
	return menu, nil
}

func (r *stubNavigationRepository) InsertMenu(_ context.Context, menu domain.NavigationMenu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.menus[menu.ID]; ok {
		return stubRepoError{conflict: true}
	}
	r.menus[menu.ID] = menu
	r.inserted = append(r.inserted, menu)
	return nil
}

func (r *stubNavigationRepository) ReplaceMenu(_ context.Context, menu domain.NavigationMenu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.menus[menu.ID]; !ok {
		return errStubNotFound
	}
	r.menus[menu.ID] = menu
	r.replaced = append(r.replaced, menu)
	return nil
}

func (r *stubNavigationRepository) DeleteMenu(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.menus[id]; !ok {
		return errStubNotFound
	}
	delete(r.menus, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubNavigationRepository) listCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listCall)
}

type stubCatalogRepository struct {
	products map[string]domain.Product
	listErr  error
}

func (r *stubCatalogRepository) GetProductBySlug(_ context.Context, slug string) (domain.Product, error) {
	product, ok := r.products[slug]
	if !ok {
		return domain.Product{}, errStubNotFound
	}
	return product, nil
}

func (r *stubCatalogRepository) ListActiveProducts(context.Context) ([]domain.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Product
	for _, product := range r.products {
		if product.IsActive {
			out = append(out, product)
		}
	}
	return out, nil
}

type stubContentRepository struct {
	posts   map[string]domain.BlogPost
	pages   map[string]domain.Page
	listErr error
}

func (r *stubContentRepository) GetPostBySlug(_ context.Context, slug string) (domain.BlogPost, error) {
	post, ok := r.posts[slug]
	if !ok {
		return domain.BlogPost{}, errStubNotFound
	}
	return post, nil
}

func (r *stubContentRepository) ListPublishedPosts(context.Context) ([]domain.BlogPost, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.BlogPost
	for _, post := range r.posts {
		if post.Published() {
			out = append(out, post)
		}
	}
	return out, nil
}

func (r *stubContentRepository) GetPageBySlug(_ context.Context, slug string) (domain.Page, error) {
	page, ok := r.pages[slug]
	if !ok {
		return domain.Page{}, errStubNotFound
	}
	return page, nil
}

type stubSettingsRepository struct {
	settings domain.GlobalSEOSettings
	err      error
	calls    int
}

func (r *stubSettingsRepository) GetSEOSettings(context.Context) (domain.GlobalSEOSettings, error) {
	r.calls++
	if r.err != nil {
		return domain.GlobalSEOSettings{}, r.err
	}
	return r.settings, nil
}

type stubPublisher struct {
	name string
	obj  storage.Object
	err  error
}

func (p *stubPublisher) Publish(_ context.Context, name string, obj storage.Object) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.name = name
	p.obj = obj
	return "https://storage.googleapis.com/timber-public/" + name, nil
}

type recordedFallback struct {
	menuType string
	reason   string
}

type stubFallbackRecorder struct {
	calls []recordedFallback
}

func (r *stubFallbackRecorder) RecordFallback(_ context.Context, menuType, reason string) {
	r.calls = append(r.calls, recordedFallback{menuType: menuType, reason: reason})
}

var errBoom = errors.New("boom")

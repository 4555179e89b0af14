package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/nav"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/auth"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/httpx"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/observability"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/services"
)

const (
	navigationCacheControl = "public, max-age=300"
	fallbackCacheControl   = "public, max-age=60"
	navigationSourceHeader = "X-Navigation-Source"
	defaultFooterColumns   = 4
	maxColumns             = 6
	maxTrailDepth          = nav.MaxDepth + 1
)

// NavigationHandlers exposes menu rendering endpoints and menu administration.
type NavigationHandlers struct {
	navigation services.NavigationService
}

// NewNavigationHandlers constructs navigation handlers.
func NewNavigationHandlers(svc services.NavigationService) *NavigationHandlers {
	return &NavigationHandlers{navigation: svc}
}

// Routes registers public navigation endpoints.
func (h *NavigationHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/navigation/{menuType}", h.getMenu)
	r.Get("/navigation/{menuType}/flat", h.getFlat)
	r.Get("/navigation/{menuType}/levels", h.getLevels)
	r.Get("/navigation/{menuType}/mega", h.getMegaMenu)
	r.Get("/navigation/{menuType}/footer", h.getFooter)
	r.Get("/navigation/{menuType}/mobile", h.getMobile)
	r.Get("/breadcrumbs", h.getBreadcrumbs)
}

// AdminRoutes registers menu administration endpoints.
func (h *NavigationHandlers) AdminRoutes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/navigation", h.listMenus)
	r.Post("/navigation", h.createMenu)
	r.Post("/navigation:validate", h.validateMenu)
	r.Put("/navigation/{menuId}", h.replaceMenu)
	r.Delete("/navigation/{menuId}", h.deleteMenu)
}

type menuResponse struct {
	Menu   domain.NavigationMenu `json:"menu"`
	Source services.MenuSource   `json:"source"`
}

type flatItemPayload struct {
	Depth int                   `json:"depth"`
	Item  domain.NavigationItem `json:"item"`
}

type mobileItemPayload struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Href        string `json:"href"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	External    bool   `json:"external"`
	HasChildren bool   `json:"hasChildren"`
}

type mobileResponse struct {
	Title string              `json:"title"`
	Depth int                 `json:"depth"`
	Path  []mobileItemPayload `json:"path"`
	Items []mobileItemPayload `json:"items"`
}

// resolve loads the menu for the {menuType} parameter and sets cache headers. It writes a 404 and
// returns false for unknown menu types.
func (h *NavigationHandlers) resolve(w http.ResponseWriter, r *http.Request) (services.MenuResolution, bool) {
	menuType := domain.NavigationMenuType(strings.ToLower(strings.TrimSpace(chi.URLParam(r, "menuType"))))
	return h.resolveType(w, r, menuType)
}

func (h *NavigationHandlers) resolveType(w http.ResponseWriter, r *http.Request, menuType domain.NavigationMenuType) (services.MenuResolution, bool) {
	ctx := r.Context()
	if h.navigation == nil {
		httpx.WriteError(ctx, w, httpx.NewError("navigation_unavailable", "navigation service is unavailable", http.StatusServiceUnavailable))
		return services.MenuResolution{}, false
	}
	if !menuType.Valid() {
		httpx.WriteError(ctx, w, httpx.NewError("menu_type_not_found", fmt.Sprintf("unknown menu type %q", menuType), http.StatusNotFound))
		return services.MenuResolution{}, false
	}

	res := h.navigation.ResolveMenu(ctx, menuType)
	res.Menu.Items = nav.SortByOrder(nav.VisibleItems(res.Menu.Items))

	w.Header().Set(navigationSourceHeader, string(res.Source))
	if res.Source == services.MenuSourceFallback {
		w.Header().Set("Cache-Control", fallbackCacheControl)
	} else {
		w.Header().Set("Cache-Control", navigationCacheControl)
	}
	return res, true
}

func (h *NavigationHandlers) getMenu(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, menuResponse{Menu: res.Menu, Source: res.Source})
}

func (h *NavigationHandlers) getFlat(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolve(w, r)
	if !ok {
		return
	}
	flat := nav.Flatten(res.Menu.Items)
	items := make([]flatItemPayload, 0, len(flat))
	for _, entry := range flat {
		items = append(items, flatItemPayload{Depth: entry.Depth, Item: withoutChildren(entry.Item)})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":  items,
		"source": res.Source,
	})
}

func (h *NavigationHandlers) getLevels(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolve(w, r)
	if !ok {
		return
	}
	grouped := nav.GroupByDepth(res.Menu.Items)
	levels := make([][]domain.NavigationItem, 0, len(grouped))
	for _, level := range grouped {
		stripped := make([]domain.NavigationItem, 0, len(level))
		for _, item := range level {
			stripped = append(stripped, withoutChildren(item))
		}
		levels = append(levels, stripped)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"levels": levels,
		"source": res.Source,
	})
}

func (h *NavigationHandlers) getMegaMenu(w http.ResponseWriter, r *http.Request) {
	columns, err := parseColumns(r, nav.DefaultMegaMenuColumns)
	if err != nil {
		writeBadRequest(r.Context(), w, "invalid_columns", err)
		return
	}
	res, ok := h.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": nav.MegaMenu(res.Menu, columns),
		"source":  res.Source,
	})
}

func (h *NavigationHandlers) getFooter(w http.ResponseWriter, r *http.Request) {
	columns, err := parseColumns(r, defaultFooterColumns)
	if err != nil {
		writeBadRequest(r.Context(), w, "invalid_columns", err)
		return
	}
	res, ok := h.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"columns": nav.FooterColumns(res.Menu, columns),
		"source":  res.Source,
	})
}

func (h *NavigationHandlers) getMobile(w http.ResponseWriter, r *http.Request) {
	ids := splitTrail(r.URL.Query().Get("trail"))
	if len(ids) > maxTrailDepth {
		writeBadRequest(r.Context(), w, "invalid_trail", fmt.Errorf("trail may name at most %d items", maxTrailDepth))
		return
	}
	res, ok := h.resolve(w, r)
	if !ok {
		return
	}

	trail := nav.NewTrail(res.Menu.Items)
	trail.Open()
	trail.Replay(ids)

	path := trail.Path()
	items := trail.Items()
	resp := mobileResponse{
		Title: trail.Title(),
		Depth: trail.Depth(),
		Path:  make([]mobileItemPayload, 0, len(path)),
		Items: make([]mobileItemPayload, 0, len(items)),
	}
	for _, item := range path {
		resp.Path = append(resp.Path, mobileItem(item))
	}
	for _, item := range items {
		if item.IsVisible {
			resp.Items = append(resp.Items, mobileItem(item))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *NavigationHandlers) getBreadcrumbs(w http.ResponseWriter, r *http.Request) {
	currentPath := strings.TrimSpace(r.URL.Query().Get("path"))
	if currentPath != "" && !strings.HasPrefix(currentPath, "/") {
		writeBadRequest(r.Context(), w, "invalid_path", errors.New("path must start with '/'"))
		return
	}
	res, ok := h.resolveType(w, r, domain.NavigationMenuMain)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"crumbs": nav.Breadcrumbs(res.Menu.Items, currentPath),
		"source": res.Source,
	})
}

func (h *NavigationHandlers) listMenus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}
	menuType := domain.NavigationMenuType(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type"))))
	menus, err := h.navigation.Menus(ctx, menuType)
	if err != nil {
		writeServiceError(ctx, w, err, "menu")
		return
	}
	if menus == nil {
		menus = []domain.NavigationMenu{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"menus": menus})
}

func (h *NavigationHandlers) createMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}
	var menu domain.NavigationMenu
	if err := decodeJSONBody(r, &menu); err != nil {
		writeBadRequest(ctx, w, "invalid_request", err)
		return
	}
	created, err := h.navigation.CreateMenu(ctx, menu)
	if err != nil {
		writeServiceError(ctx, w, err, "menu")
		return
	}
	logAdminAction(ctx, "navigation menu create", created.ID)
	w.Header().Set("Location", "/api/v1/admin/navigation/"+created.ID)
	writeJSON(w, http.StatusCreated, map[string]any{"menu": created})
}

func (h *NavigationHandlers) replaceMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}
	menuID := strings.TrimSpace(chi.URLParam(r, "menuId"))
	var menu domain.NavigationMenu
	if err := decodeJSONBody(r, &menu); err != nil {
		writeBadRequest(ctx, w, "invalid_request", err)
		return
	}
	if menu.ID != "" && menu.ID != menuID {
		writeBadRequest(ctx, w, "invalid_request", errors.New("menu id in body does not match path"))
		return
	}
	replaced, err := h.navigation.ReplaceMenu(ctx, menuID, menu)
	if err != nil {
		writeServiceError(ctx, w, err, "menu")
		return
	}
	logAdminAction(ctx, "navigation menu replace", replaced.ID)
	writeJSON(w, http.StatusOK, map[string]any{"menu": replaced})
}

func (h *NavigationHandlers) deleteMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}
	menuID := strings.TrimSpace(chi.URLParam(r, "menuId"))
	if err := h.navigation.DeleteMenu(ctx, menuID); err != nil {
		writeServiceError(ctx, w, err, "menu")
		return
	}
	logAdminAction(ctx, "navigation menu delete", menuID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *NavigationHandlers) validateMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}
	var menu domain.NavigationMenu
	if err := decodeJSONBody(r, &menu); err != nil {
		writeBadRequest(ctx, w, "invalid_request", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"report": h.navigation.ValidateMenu(menu)})
}

func (h *NavigationHandlers) available(ctx context.Context, w http.ResponseWriter) bool {
	if h.navigation == nil {
		httpx.WriteError(ctx, w, httpx.NewError("navigation_unavailable", "navigation service is unavailable", http.StatusServiceUnavailable))
		return false
	}
	return true
}

func parseColumns(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("columns"))
	if raw == "" {
		return fallback, nil
	}
	columns, err := strconv.Atoi(raw)
	if err != nil || columns < 1 || columns > maxColumns {
		return 0, fmt.Errorf("columns must be an integer between 1 and %d", maxColumns)
	}
	return columns, nil
}

func splitTrail(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func withoutChildren(item domain.NavigationItem) domain.NavigationItem {
	item.Children = nil
	return item
}

func mobileItem(item domain.NavigationItem) mobileItemPayload {
	return mobileItemPayload{
		ID:          item.ID,
		Label:       item.Label,
		Href:        nav.Href(item),
		Icon:        item.Icon,
		Description: item.Description,
		External:    nav.ShouldOpenExternally(item),
		HasChildren: item.HasChildren(),
	}
}

func logAdminAction(ctx context.Context, action, target string) {
	fields := []zap.Field{zap.String("action", action), zap.String("target", target)}
	if identity, ok := auth.IdentityFromContext(ctx); ok {
		fields = append(fields, zap.String("user_id", observability.SanitizeUserID(identity.UID)))
	}
	observability.FromContext(ctx).Info("admin action", fields...)
}

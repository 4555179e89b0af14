package firestore

import (
	"context"
	"errors"
	"maps"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	pfirestore "github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/firestore"
)

const navigationCollection = "navigationMenus"

// NavigationRepository stores menus in the navigationMenus collection.
type NavigationRepository struct {
	menus *pfirestore.Collection[navigationMenuDocument]
}

// NewNavigationRepository constructs a Firestore-backed navigation repository.
func NewNavigationRepository(provider *pfirestore.Provider) (*NavigationRepository, error) {
	if provider == nil {
		return nil, errors.New("navigation repository requires firestore provider")
	}
	return &NavigationRepository{menus: pfirestore.NewCollection[navigationMenuDocument](provider, navigationCollection)}, nil
}

func (r *NavigationRepository) ListMenus(ctx context.Context, menuType domain.NavigationMenuType) ([]domain.NavigationMenu, error) {
	var menus []domain.NavigationMenu
	err := r.menus.Query(ctx, func(q firestore.Query) firestore.Query {
		if menuType != "" {
			q = q.Where("type", "==", string(menuType))
		}
		return q
	}, func(id string, doc navigationMenuDocument) {
		menus = append(menus, doc.toDomain(id))
	})
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *NavigationRepository) GetMenu(ctx context.Context, id string) (domain.NavigationMenu, error) {
	doc, err := r.menus.Get(ctx, id)
	if err != nil {
		return domain.NavigationMenu{}, err
	}
	return doc.toDomain(id), nil
}

func (r *NavigationRepository) InsertMenu(ctx context.Context, menu domain.NavigationMenu) error {
	return r.menus.Create(ctx, menu.ID, newNavigationMenuDocument(menu))
}

func (r *NavigationRepository) ReplaceMenu(ctx context.Context, menu domain.NavigationMenu) error {
	if _, err := r.menus.Get(ctx, menu.ID); err != nil {
		return err
	}
	return r.menus.Set(ctx, menu.ID, newNavigationMenuDocument(menu))
}

func (r *NavigationRepository) DeleteMenu(ctx context.Context, id string) error {
	return r.menus.Delete(ctx, id)
}

type navigationMenuDocument struct {
	Name        string                   `firestore:"name"`
	DisplayName string                   `firestore:"displayName,omitempty"`
	Type        string                   `firestore:"type"`
	Items       []navigationItemDocument `firestore:"items"`
	Settings    navigationSettingsDoc    `firestore:"settings"`
	IsActive    bool                     `firestore:"isActive"`
	Version     int                      `firestore:"version"`
	CreatedAt   time.Time                `firestore:"createdAt"`
	UpdatedAt   time.Time                `firestore:"updatedAt"`
}

type navigationSettingsDoc struct {
	MaxDepth          int    `firestore:"maxDepth"`
	ShowIcons         bool   `firestore:"showIcons"`
	ShowDescriptions  bool   `firestore:"showDescriptions"`
	MobileCollapsible bool   `firestore:"mobileCollapsible"`
	Theme             string `firestore:"theme,omitempty"`
}

type navigationItemDocument struct {
	ID           string                   `firestore:"id"`
	Label        string                   `firestore:"label"`
	URL          string                   `firestore:"url"`
	Type         string                   `firestore:"type"`
	Icon         string                   `firestore:"icon,omitempty"`
	Description  string                   `firestore:"description,omitempty"`
	Order        int                      `firestore:"order"`
	IsExternal   bool                     `firestore:"isExternal"`
	OpenInNewTab *bool                    `firestore:"openInNewTab,omitempty"`
	IsVisible    bool                     `firestore:"isVisible"`
	Children     []navigationItemDocument `firestore:"children,omitempty"`
	Metadata     map[string]any           `firestore:"metadata,omitempty"`
}

func newNavigationMenuDocument(menu domain.NavigationMenu) navigationMenuDocument {
	return navigationMenuDocument{
		Name:        menu.Name,
		DisplayName: menu.DisplayName,
		Type:        string(menu.Type),
		Items:       newNavigationItemDocuments(menu.Items),
		Settings: navigationSettingsDoc{
			MaxDepth:          menu.Settings.MaxDepth,
			ShowIcons:         menu.Settings.ShowIcons,
			ShowDescriptions:  menu.Settings.ShowDescriptions,
			MobileCollapsible: menu.Settings.MobileCollapsible,
			Theme:             menu.Settings.Theme,
		},
		IsActive:  menu.IsActive,
		Version:   menu.Version,
		CreatedAt: menu.CreatedAt.UTC(),
		UpdatedAt: menu.UpdatedAt.UTC(),
	}
}

func newNavigationItemDocuments(items []domain.NavigationItem) []navigationItemDocument {
	if len(items) == 0 {
		return nil
	}
	out := make([]navigationItemDocument, len(items))
	for i, item := range items {
		out[i] = navigationItemDocument{
			ID:           item.ID,
			Label:        item.Label,
			URL:          item.URL,
			Type:         string(item.Type),
			Icon:         item.Icon,
			Description:  item.Description,
			Order:        item.Order,
			IsExternal:   item.IsExternal,
			OpenInNewTab: item.OpenInNewTab,
			IsVisible:    item.IsVisible,
			Children:     newNavigationItemDocuments(item.Children),
			Metadata:     maps.Clone(item.Metadata),
		}
	}
	return out
}

func (d navigationMenuDocument) toDomain(id string) domain.NavigationMenu {
	return domain.NavigationMenu{
		ID:          id,
		Name:        d.Name,
		DisplayName: d.DisplayName,
		Type:        domain.NavigationMenuType(d.Type),
		Items:       navigationItemsToDomain(d.Items),
		Settings: domain.NavigationSettings{
			MaxDepth:          d.Settings.MaxDepth,
			ShowIcons:         d.Settings.ShowIcons,
			ShowDescriptions:  d.Settings.ShowDescriptions,
			MobileCollapsible: d.Settings.MobileCollapsible,
			Theme:             d.Settings.Theme,
		},
		IsActive:  d.IsActive,
		Version:   d.Version,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func navigationItemsToDomain(docs []navigationItemDocument) []domain.NavigationItem {
	if len(docs) == 0 {
		return nil
	}
	out := make([]domain.NavigationItem, len(docs))
	for i, doc := range docs {
		out[i] = domain.NavigationItem{
			ID:           doc.ID,
			Label:        doc.Label,
			URL:          doc.URL,
			Type:         domain.NavigationItemType(doc.Type),
			Icon:         doc.Icon,
			Description:  doc.Description,
			Order:        doc.Order,
			IsExternal:   doc.IsExternal,
			OpenInNewTab: doc.OpenInNewTab,
			IsVisible:    doc.IsVisible,
			Children:     navigationItemsToDomain(doc.Children),
			Metadata:     doc.Metadata,
		}
	}
	return out
}

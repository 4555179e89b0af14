package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

// DefaultMegaMenuColumns is the column count used by the desktop mega-menu panel.
const DefaultMegaMenuColumns = 3

// Link is a rendered navigation entry.
type Link struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Href        string `json:"href"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	External    bool   `json:"external"`
	Links       []Link `json:"links,omitempty"`
}

// MegaMenuEntry is one top-level entry of the desktop navigation bar. Entries without children
// render as plain links and carry no columns.
type MegaMenuEntry struct {
	Link
	Columns [][]Link `json:"columns,omitempty"`
}

// Crumb is a breadcrumb entry.
type Crumb struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	IsActive bool   `json:"isActive"`
}

// VisibleItems drops hidden items at every level. The result shares no slices with the input.
func VisibleItems(items []domain.NavigationItem) []domain.NavigationItem {
	out := make([]domain.NavigationItem, 0, len(items))
	for _, item := range items {
		if !item.IsVisible {
			continue
		}
		if len(item.Children) > 0 {
			item.Children = VisibleItems(item.Children)
		}
		out = append(out, item)
	}
	return out
}

// SortByOrder stable-sorts every sibling group by Order. The result shares no slices with the input.
func SortByOrder(items []domain.NavigationItem) []domain.NavigationItem {
	sorted := sortedByOrder(items)
	for i := range sorted {
		if len(sorted[i].Children) > 0 {
			sorted[i].Children = SortByOrder(sorted[i].Children)
		}
	}
	return sorted
}

// MegaMenu builds the desktop navigation bar. Each visible top-level item with children gets its
// visible children balanced into columns; grandchildren are listed under their section.
func MegaMenu(menu domain.NavigationMenu, columns int) []MegaMenuEntry {
	if columns <= 0 {
		columns = DefaultMegaMenuColumns
	}
	top := SortByOrder(VisibleItems(menu.Items))
	entries := make([]MegaMenuEntry, 0, len(top))
	for _, item := range top {
		entry := MegaMenuEntry{Link: linkFor(item, false)}
		if item.HasChildren() {
			sections := make([]Link, 0, len(item.Children))
			for _, child := range item.Children {
				sections = append(sections, linkFor(child, true))
			}
			entry.Columns = SplitIntoColumns(sections, columns)
		}
		entries = append(entries, entry)
	}
	return entries
}

// FooterColumns splits the visible top-level items of a footer menu into columns, each carrying
// its direct visible children as links.
func FooterColumns(menu domain.NavigationMenu, columns int) [][]Link {
	top := SortByOrder(VisibleItems(menu.Items))
	links := make([]Link, 0, len(top))
	for _, item := range top {
		links = append(links, linkFor(item, true))
	}
	return SplitIntoColumns(links, columns)
}

func linkFor(item domain.NavigationItem, withChildren bool) Link {
	link := Link{
		ID:          item.ID,
		Label:       item.Label,
		Href:        Href(item),
		Icon:        item.Icon,
		Description: item.Description,
		External:    ShouldOpenExternally(item),
	}
	if withChildren && item.HasChildren() {
		link.Links = make([]Link, 0, len(item.Children))
		for _, child := range item.Children {
			link.Links = append(link.Links, linkFor(child, false))
		}
	}
	return link
}

// Breadcrumbs builds the trail for currentPath. It starts at Home and adds every menu item whose
// URL equals a cumulative prefix of the path. When no menu item matches, the path segments are
// prettified instead.
func Breadcrumbs(items []domain.NavigationItem, currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	clean := path.Clean("/" + strings.TrimPrefix(currentPath, "/"))
	crumbs := []Crumb{{Name: "Home", URL: "/", IsActive: clean == "/"}}
	if clean == "/" {
		return crumbs
	}

	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	prefix := ""
	matched := false
	for _, part := range parts {
		prefix += "/" + part
		if item, ok := FindByURL(items, prefix); ok {
			crumbs = append(crumbs, Crumb{Name: item.Label, URL: item.URL, IsActive: item.URL == clean})
			matched = true
		}
	}
	if matched {
		return crumbs
	}

	prefix = ""
	for i, part := range parts {
		prefix += "/" + part
		crumbs = append(crumbs, Crumb{
			Name:     titleFromSegment(part),
			URL:      prefix,
			IsActive: i == len(parts)-1,
		})
	}
	return crumbs
}

// FindByURL searches the tree in pre-order for the first item whose URL equals target.
func FindByURL(items []domain.NavigationItem, target string) (domain.NavigationItem, bool) {
	for _, flat := range Flatten(items) {
		if flat.Item.URL == target {
			return flat.Item, true
		}
	}
	return domain.NavigationItem{}, false
}

// FindByID searches the tree in pre-order for the item with the given id.
func FindByID(items []domain.NavigationItem, id string) (domain.NavigationItem, bool) {
	for _, flat := range Flatten(items) {
		if flat.Item.ID == id {
			return flat.Item, true
		}
	}
	return domain.NavigationItem{}, false
}

func titleFromSegment(seg string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	// Casers hold state and are not shared between requests.
	return cases.Title(language.English).String(s)
}

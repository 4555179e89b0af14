package nav

import (
	"cmp"
	"slices"
	"strings"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

var menuTypeRank = map[domain.NavigationMenuType]int{
	domain.NavigationMenuMain:   1,
	domain.NavigationMenuMobile: 2,
	domain.NavigationMenuFooter: 3,
	domain.NavigationMenuAdmin:  4,
}

// SortMenus orders menus by type (main, mobile, footer, admin, then unknown types) and by name
// within a type. The input is not modified.
func SortMenus(menus []domain.NavigationMenu) []domain.NavigationMenu {
	sorted := slices.Clone(menus)
	slices.SortStableFunc(sorted, func(a, b domain.NavigationMenu) int {
		if byType := cmp.Compare(typeRank(a.Type), typeRank(b.Type)); byType != 0 {
			return byType
		}
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}

func typeRank(t domain.NavigationMenuType) int {
	if rank, ok := menuTypeRank[t]; ok {
		return rank
	}
	return 99
}

// Authoritative returns the menu rendered for menuType: the first active menu of that type.
func Authoritative(menus []domain.NavigationMenu, menuType domain.NavigationMenuType) (domain.NavigationMenu, bool) {
	for _, menu := range menus {
		if menu.Type == menuType && menu.IsActive {
			return menu, true
		}
	}
	return domain.NavigationMenu{}, false
}

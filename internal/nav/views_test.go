package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

func TestVisibleItemsDropsHiddenAtEveryLevel(t *testing.T) {
	t.Parallel()

	hiddenChild := item("hidden-child", 2)
	hiddenChild.IsVisible = false
	hiddenRoot := item("hidden-root", 3)
	hiddenRoot.IsVisible = false
	tree := []domain.NavigationItem{item("root", 1, item("shown", 1), hiddenChild), hiddenRoot}

	got := VisibleItems(tree)

	require.Equal(t, []string{"root", "shown"}, ids(Flatten(got)))
	require.Len(t, tree[0].Children, 2, "input must not be modified")
}

func TestSortByOrderIsRecursiveAndCopies(t *testing.T) {
	t.Parallel()

	tree := []domain.NavigationItem{item("b", 2, item("b2", 2), item("b1", 1)), item("a", 1)}

	got := SortByOrder(tree)

	require.Equal(t, []string{"a", "b", "b1", "b2"}, ids(Flatten(got)))
	require.Equal(t, "b2", tree[0].Children[0].ID)
}

func TestMegaMenuBalancesChildren(t *testing.T) {
	t.Parallel()

	menu := Fallback()

	entries := MegaMenu(menu, 0)

	require.Len(t, entries, 6)
	require.Equal(t, "Home", entries[0].Label)
	require.Empty(t, entries[0].Columns)

	products := entries[1]
	require.Equal(t, "Products", products.Label)
	require.Len(t, products.Columns, DefaultMegaMenuColumns)
	require.Equal(t, "Teak Wood", products.Columns[0][0].Label)
	require.Equal(t, []string{"Burma Teak", "Ghana Teak"},
		[]string{products.Columns[0][0].Links[0].Label, products.Columns[0][0].Links[1].Label})

	blog := entries[3]
	require.Len(t, blog.Columns[0], 2, "four children over three columns put two in the first")
}

func TestFooterColumns(t *testing.T) {
	t.Parallel()

	menu := domain.NavigationMenu{
		Type:  domain.NavigationMenuFooter,
		Items: []domain.NavigationItem{item("c", 3), item("a", 1, item("a1", 1)), item("b", 2)},
	}

	got := FooterColumns(menu, 2)

	want := [][]Link{
		{
			{ID: "a", Label: "a", Href: "/a", Links: []Link{{ID: "a1", Label: "a1", Href: "/a1"}}},
			{ID: "c", Label: "c", Href: "/c"},
		},
		{
			{ID: "b", Label: "b", Href: "/b"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FooterColumns mismatch (-want +got):\n%s", diff)
	}
}

func TestBreadcrumbsMatchMenuPrefixes(t *testing.T) {
	t.Parallel()

	items := Fallback().Items

	got := Breadcrumbs(items, "/services/delivery")

	want := []Crumb{
		{Name: "Home", URL: "/"},
		{Name: "Services", URL: "/services"},
		{Name: "Delivery", URL: "/services/delivery", IsActive: true},
	}
	require.Equal(t, want, got)
}

func TestBreadcrumbsFallBackToSegments(t *testing.T) {
	t.Parallel()

	got := Breadcrumbs(nil, "/guides/teak-care_tips/")

	want := []Crumb{
		{Name: "Home", URL: "/"},
		{Name: "Guides", URL: "/guides"},
		{Name: "Teak Care Tips", URL: "/guides/teak-care_tips", IsActive: true},
	}
	require.Equal(t, want, got)
}

func TestBreadcrumbsHome(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"", "/"} {
		require.Equal(t, []Crumb{{Name: "Home", URL: "/", IsActive: true}}, Breadcrumbs(nil, p))
	}
}

func TestSortMenusAndAuthoritative(t *testing.T) {
	t.Parallel()

	menus := []domain.NavigationMenu{
		{ID: "x", Name: "legacy", Type: "sidebar", IsActive: true},
		{ID: "f", Name: "footer", Type: domain.NavigationMenuFooter, IsActive: true},
		{ID: "a", Name: "console", Type: domain.NavigationMenuAdmin, IsActive: true},
		{ID: "mob", Name: "drawer", Type: domain.NavigationMenuMobile, IsActive: true},
		{ID: "m2", Name: "main b", Type: domain.NavigationMenuMain, IsActive: true},
		{ID: "m1", Name: "main a", Type: domain.NavigationMenuMain, IsActive: false},
	}

	sorted := SortMenus(menus)

	order := make([]string, 0, len(sorted))
	for _, m := range sorted {
		order = append(order, m.ID)
	}
	require.Equal(t, []string{"m1", "m2", "mob", "f", "a", "x"}, order)
	require.Equal(t, "x", menus[0].ID)

	main, ok := Authoritative(sorted, domain.NavigationMenuMain)
	require.True(t, ok)
	require.Equal(t, "m2", main.ID, "inactive menus are skipped")

	mobile, ok := Authoritative(sorted, domain.NavigationMenuMobile)
	require.True(t, ok)
	require.Equal(t, "mob", mobile.ID)

	_, ok = Authoritative(sorted[:2], domain.NavigationMenuMobile)
	require.False(t, ok)
}

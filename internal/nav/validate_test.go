package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

func TestValidateFallbackMenuIsClean(t *testing.T) {
	t.Parallel()

	report := Validate(Fallback())

	require.True(t, report.IsValid)
	require.Equal(t, 100, report.Score)
	require.Empty(t, report.Issues)
	require.Empty(t, report.Recommendations)
}

func TestValidateReportsFieldErrors(t *testing.T) {
	t.Parallel()

	report := Validate(domain.NavigationMenu{Name: "main/menu!", Type: "sidebar", Settings: domain.NavigationSettings{ShowIcons: true}})

	require.False(t, report.IsValid)
	messages := make([]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		messages = append(messages, issue.Message)
	}
	require.Equal(t, []string{"Menu name contains invalid characters", "Valid menu type is required"}, messages)
	require.Equal(t, 60, report.Score)
	require.Contains(t, report.Recommendations, "Fix all errors before publishing the menu")
	require.Contains(t, report.Recommendations, "Add menu items to make the menu functional")
}

func TestValidateRejectsOverDeepTrees(t *testing.T) {
	t.Parallel()

	menu := domain.NavigationMenu{
		Name:     "main",
		Type:     domain.NavigationMenuMain,
		Settings: domain.NavigationSettings{ShowIcons: true},
		Items:    []domain.NavigationItem{chain(MaxDepth + 1)},
	}
	menu.Items[0].Description = "deep"

	report := Validate(menu)

	require.False(t, report.IsValid)
	require.Len(t, report.Errors(), 1)
	require.Contains(t, report.Errors()[0].Message, "maximum depth of 3")
	require.Equal(t, "level-1", report.Errors()[0].ItemID)
}

func TestValidateChecksURLsAndDuplicates(t *testing.T) {
	t.Parallel()

	external := domain.NavigationItem{ID: "ext", Label: "Ext", URL: "not a url", IsExternal: true, IsVisible: true}
	relative := domain.NavigationItem{ID: "rel", Label: "Rel", URL: "about", IsVisible: true}
	dup := domain.NavigationItem{ID: "rel", Label: "Dup", URL: "/dup", IsVisible: true}
	menu := domain.NavigationMenu{
		Name:     "main",
		Type:     domain.NavigationMenuMain,
		Settings: domain.NavigationSettings{ShowIcons: true},
		Items:    []domain.NavigationItem{external, relative, dup},
	}

	report := Validate(menu)

	require.Len(t, report.Errors(), 3)
	require.Equal(t, "Invalid external URL: not a url", report.Errors()[0].Message)
	require.Equal(t, "Internal URLs must start with '/': about", report.Errors()[1].Message)
	require.Equal(t, "Duplicate item id: rel", report.Errors()[2].Message)
	require.Equal(t, 40, report.Score)
}

func TestValidateWarnings(t *testing.T) {
	t.Parallel()

	parent := item("parent", 1, item("child", 1))
	long := item("long", 2)
	long.Label = strings.Repeat("x", 51)
	items := []domain.NavigationItem{parent, long}
	for i := 0; i < 19; i++ {
		items = append(items, domain.NavigationItem{ID: "filler" + strings.Repeat("i", i+1), Label: "f", URL: "/f", IsVisible: true})
	}
	menu := domain.NavigationMenu{Name: "main", Type: domain.NavigationMenuMain, Items: items}

	report := Validate(menu)

	require.True(t, report.IsValid, "warnings do not invalidate")
	require.Equal(t, 85, report.Score)
	require.Contains(t, report.Recommendations, "Consider splitting large menus into sub-menus")
	require.Contains(t, report.Recommendations, "Consider enabling icons for better visual hierarchy")
}

func TestValidateScoreIsClamped(t *testing.T) {
	t.Parallel()

	items := make([]domain.NavigationItem, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, domain.NavigationItem{ID: "bad", Label: "b", URL: "bad"})
	}

	report := Validate(domain.NavigationMenu{Items: items})

	require.Equal(t, 0, report.Score)
}

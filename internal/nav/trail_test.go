package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

func trailFixture() []domain.NavigationItem {
	hidden := item("hidden", 9)
	hidden.IsVisible = false
	placeholder := item("placeholder", 3)
	placeholder.URL = "#"
	return []domain.NavigationItem{
		item("products", 1,
			item("teak", 1, item("burma", 1), item("ghana", 2)),
			item("plywood", 2),
		),
		item("about", 2),
		placeholder,
		hidden,
	}
}

func TestTrailStartsAtVisibleRoot(t *testing.T) {
	t.Parallel()

	trail := NewTrail(trailFixture())

	require.False(t, trail.IsOpen())
	require.Equal(t, 0, trail.Depth())
	require.Equal(t, RootTitle, trail.Title())
	require.Len(t, trail.Items(), 3, "hidden root items are not shown")
}

func TestTrailDrillInAndBack(t *testing.T) {
	t.Parallel()

	trail := NewTrail(trailFixture())
	trail.Open()

	products := trail.Items()[0]
	sel := trail.Select(products)
	require.Equal(t, SelectDrillIn, sel.Kind)
	require.Equal(t, 1, trail.Depth())
	require.Equal(t, "products", trail.Title())
	require.Equal(t, "teak", trail.Items()[0].ID)

	sel = trail.Select(trail.Items()[0])
	require.Equal(t, SelectDrillIn, sel.Kind)
	require.Equal(t, 2, trail.Depth())
	require.Equal(t, []string{"burma", "ghana"}, []string{trail.Items()[0].ID, trail.Items()[1].ID})

	trail.Back()
	require.Equal(t, 1, trail.Depth())
	require.Equal(t, "products", trail.Title())
	require.True(t, trail.IsOpen())

	trail.Back()
	trail.Back()
	require.Equal(t, 0, trail.Depth(), "back at root is a no-op")
}

func TestTrailCloseResetsFromAnyDepth(t *testing.T) {
	t.Parallel()

	for depth := 0; depth <= 2; depth++ {
		trail := NewTrail(trailFixture())
		trail.Open()
		require.Equal(t, depth, trail.Replay([]string{"products", "teak"}[:depth]))

		trail.Close()

		require.False(t, trail.IsOpen())
		require.Equal(t, 0, trail.Depth())
		require.Equal(t, RootTitle, trail.Title())
	}
}

func TestTrailActivateLeafNavigatesAndResets(t *testing.T) {
	t.Parallel()

	trail := NewTrail(trailFixture())
	trail.Open()
	trail.Replay([]string{"products", "teak"})

	sel := trail.Select(trail.Items()[1])

	require.Equal(t, Selection{Kind: SelectNavigate, Target: "/ghana"}, sel)
	require.False(t, trail.IsOpen())
	require.Equal(t, 0, trail.Depth())
}

func TestTrailPlaceholderLeafOnlyDismisses(t *testing.T) {
	t.Parallel()

	trail := NewTrail(trailFixture())
	trail.Open()

	var placeholder domain.NavigationItem
	for _, it := range trail.Items() {
		if it.ID == "placeholder" {
			placeholder = it
		}
	}
	sel := trail.Select(placeholder)

	require.Equal(t, SelectDismiss, sel.Kind)
	require.Empty(t, sel.Target)
	require.False(t, trail.IsOpen())
}

func TestTrailExternalLeafIsNormalized(t *testing.T) {
	t.Parallel()

	whatsapp := domain.NavigationItem{ID: "chat", URL: "wa.me/91", IsExternal: true, IsVisible: true}
	trail := NewTrail([]domain.NavigationItem{whatsapp})

	sel := trail.Select(whatsapp)

	require.Equal(t, Selection{Kind: SelectNavigate, Target: "https://wa.me/91", External: true}, sel)
}

func TestTrailReplayStopsAtUnknownID(t *testing.T) {
	t.Parallel()

	trail := NewTrail(trailFixture())

	entered := trail.Replay([]string{"products", "missing", "teak"})

	require.Equal(t, 1, entered)
	require.Equal(t, "products", trail.Title())
	require.Len(t, trail.Path(), 1)
}

package nav

import (
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

// RootTitle is shown as the heading of the mobile sheet while no item is drilled into.
const RootTitle = "Navigation"

// SelectKind classifies the effect of selecting an item in the mobile sheet.
type SelectKind int

const (
	// SelectDrillIn pushed the item onto the trail.
	SelectDrillIn SelectKind = iota + 1
	// SelectNavigate closed the sheet and produced a navigation target.
	SelectNavigate
	// SelectDismiss closed the sheet without a target because the item has a placeholder URL.
	SelectDismiss
)

// Selection is the outcome of Trail.Select.
type Selection struct {
	Kind     SelectKind
	Target   string
	External bool
}

// Trail is the drill-down state of the mobile navigation sheet. The zero value is not usable;
// construct one with NewTrail. A Trail is not safe for concurrent use.
type Trail struct {
	root  []domain.NavigationItem
	stack []domain.NavigationItem
	open  bool
}

// NewTrail builds an empty closed trail over the visible top-level items of menu.
func NewTrail(items []domain.NavigationItem) *Trail {
	root := make([]domain.NavigationItem, 0, len(items))
	for _, item := range items {
		if item.IsVisible {
			root = append(root, item)
		}
	}
	return &Trail{root: root}
}

// Open shows the sheet at its current level.
func (t *Trail) Open() {
	t.open = true
}

// Close hides the sheet and resets the trail from any depth.
func (t *Trail) Close() {
	t.open = false
	t.stack = nil
}

// IsOpen reports whether the sheet is showing.
func (t *Trail) IsOpen() bool {
	return t.open
}

// Select applies the sheet's item click behaviour. Items with children are drilled into. Any
// other item closes the sheet, yielding a target unless its URL is a placeholder.
func (t *Trail) Select(item domain.NavigationItem) Selection {
	if item.HasChildren() {
		t.stack = append(t.stack, item)
		return Selection{Kind: SelectDrillIn}
	}
	t.Close()
	if IsPlaceholderURL(item.URL) {
		return Selection{Kind: SelectDismiss}
	}
	return Selection{
		Kind:     SelectNavigate,
		Target:   Href(item),
		External: ShouldOpenExternally(item),
	}
}

// Back pops one level. It is a no-op at the root.
func (t *Trail) Back() {
	if len(t.stack) == 0 {
		return
	}
	t.stack = t.stack[:len(t.stack)-1]
}

// Depth is the number of drilled-into levels.
func (t *Trail) Depth() int {
	return len(t.stack)
}

// Path returns a copy of the visited items, outermost first.
func (t *Trail) Path() []domain.NavigationItem {
	out := make([]domain.NavigationItem, len(t.stack))
	copy(out, t.stack)
	return out
}

// Items returns the entries displayed at the current level.
func (t *Trail) Items() []domain.NavigationItem {
	if len(t.stack) == 0 {
		out := make([]domain.NavigationItem, len(t.root))
		copy(out, t.root)
		return out
	}
	children := t.stack[len(t.stack)-1].Children
	out := make([]domain.NavigationItem, len(children))
	copy(out, children)
	return out
}

// Title is the heading of the current level.
func (t *Trail) Title() string {
	if len(t.stack) == 0 {
		return RootTitle
	}
	return t.stack[len(t.stack)-1].Label
}

// Replay drills through the given item ids from the root, stopping at the first id that does not
// name a drillable item of the current level. It returns the number of levels entered.
func (t *Trail) Replay(ids []string) int {
	entered := 0
	for _, id := range ids {
		next, ok := findDrillable(t.Items(), id)
		if !ok {
			break
		}
		t.Select(next)
		entered++
	}
	return entered
}

func findDrillable(items []domain.NavigationItem, id string) (domain.NavigationItem, bool) {
	for _, item := range items {
		if item.ID == id && item.HasChildren() {
			return item, true
		}
	}
	return domain.NavigationItem{}, false
}

package nav

import (
	"cmp"
	"slices"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

// MaxDepth is the deepest level a navigation item may sit at, counting the root level as 0.
const MaxDepth = 3

// FlatItem pairs an item with its depth in the source tree.
type FlatItem struct {
	Item  domain.NavigationItem
	Depth int
}

// Flatten walks the tree in pre-order. Parents precede their children and siblings keep their
// array order. The returned slice is newly allocated.
func Flatten(items []domain.NavigationItem) []FlatItem {
	out := make([]FlatItem, 0, len(items))
	return flattenInto(out, items, 0)
}

func flattenInto(out []FlatItem, items []domain.NavigationItem, depth int) []FlatItem {
	for _, item := range items {
		out = append(out, FlatItem{Item: item, Depth: depth})
		if item.HasChildren() {
			out = flattenInto(out, item.Children, depth+1)
		}
	}
	return out
}

// GroupByDepth collects items into depth-indexed levels. Each sibling group is stable-sorted by
// Order before it is appended, and groups from different parents interleave in traversal order.
func GroupByDepth(items []domain.NavigationItem) [][]domain.NavigationItem {
	var levels [][]domain.NavigationItem
	var walk func(siblings []domain.NavigationItem, depth int)
	walk = func(siblings []domain.NavigationItem, depth int) {
		if len(siblings) == 0 {
			return
		}
		sorted := sortedByOrder(siblings)
		for len(levels) <= depth {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], sorted...)
		for _, item := range sorted {
			walk(item.Children, depth+1)
		}
	}
	walk(items, 0)
	return levels
}

// SplitIntoColumns distributes items round-robin across count columns, so item i lands in column
// i mod count. A non-positive count returns the input as a single column.
func SplitIntoColumns[T any](items []T, count int) [][]T {
	if count <= 0 {
		return [][]T{slices.Clone(items)}
	}
	columns := make([][]T, count)
	for i := range columns {
		columns[i] = make([]T, 0, len(items)/count+1)
	}
	for i, item := range items {
		columns[i%count] = append(columns[i%count], item)
	}
	return columns
}

// ValidateDepth reports whether item and all of its descendants sit within MaxDepth when item is
// placed at currentDepth. It never modifies the tree.
func ValidateDepth(item domain.NavigationItem, currentDepth int) bool {
	if currentDepth > MaxDepth {
		return false
	}
	for _, child := range item.Children {
		if !ValidateDepth(child, currentDepth+1) {
			return false
		}
	}
	return true
}

// ValidateTreeDepth applies ValidateDepth to every root item.
func ValidateTreeDepth(items []domain.NavigationItem) bool {
	for _, item := range items {
		if !ValidateDepth(item, 0) {
			return false
		}
	}
	return true
}

// Depth returns the deepest level present in the tree, or -1 for an empty tree.
func Depth(items []domain.NavigationItem) int {
	deepest := -1
	for _, flat := range Flatten(items) {
		if flat.Depth > deepest {
			deepest = flat.Depth
		}
	}
	return deepest
}

func sortedByOrder(items []domain.NavigationItem) []domain.NavigationItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.NavigationItem) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return sorted
}

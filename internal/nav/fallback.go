package nav

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

//go:embed fallback.yaml
var fallbackYAML []byte

var fallbackMenu = mustDecodeFallback()

func mustDecodeFallback() domain.NavigationMenu {
	menu, err := DecodeMenu(bytes.NewReader(fallbackYAML))
	if err != nil {
		panic(fmt.Sprintf("nav: embedded fallback menu: %v", err))
	}
	return menu
}

// Fallback returns the static main menu served when the backend cannot provide one. Every call
// returns an independent copy.
func Fallback() domain.NavigationMenu {
	menu := fallbackMenu
	menu.Items = CloneItems(fallbackMenu.Items)
	return menu
}

// DecodeMenu reads a single menu document in YAML (or JSON, which YAML accepts).
func DecodeMenu(r io.Reader) (domain.NavigationMenu, error) {
	var menu domain.NavigationMenu
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&menu); err != nil {
		return domain.NavigationMenu{}, fmt.Errorf("decode navigation menu: %w", err)
	}
	return menu, nil
}

// CloneItems deep-copies a navigation tree.
func CloneItems(items []domain.NavigationItem) []domain.NavigationItem {
	if items == nil {
		return nil
	}
	out := make([]domain.NavigationItem, len(items))
	for i, item := range items {
		if item.OpenInNewTab != nil {
			flag := *item.OpenInNewTab
			item.OpenInNewTab = &flag
		}
		if item.Metadata != nil {
			item.Metadata = maps.Clone(item.Metadata)
		}
		item.Children = CloneItems(item.Children)
		out[i] = item
	}
	return out
}

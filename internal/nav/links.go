package nav

import (
	"strings"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

// ShouldOpenExternally reports whether a link should open in a new browsing context.
// An explicit OpenInNewTab flag wins over IsExternal.
func ShouldOpenExternally(item domain.NavigationItem) bool {
	if item.OpenInNewTab != nil {
		return *item.OpenInNewTab
	}
	return item.IsExternal
}

// NormalizeExternalURL prefixes https:// unless the value already carries an http or https scheme.
// The host is not validated.
func NormalizeExternalURL(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "https://" + raw
}

// Href resolves the link target used by rendered views.
func Href(item domain.NavigationItem) string {
	if item.IsExternal || item.Type == domain.NavigationItemExternal {
		return NormalizeExternalURL(item.URL)
	}
	return item.URL
}

// IsPlaceholderURL reports whether url is empty or the "#" placeholder used by grouping entries.
func IsPlaceholderURL(url string) bool {
	trimmed := strings.TrimSpace(url)
	return trimmed == "" || trimmed == "#"
}

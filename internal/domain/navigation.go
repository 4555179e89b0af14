package domain

import "time"

// NavigationItemType classifies the target of a navigation entry.
type NavigationItemType string

const (
	// NavigationItemPage links to a storefront page.
	NavigationItemPage NavigationItemType = "page"
	// NavigationItemCategory links to a filtered catalog or blog category listing.
	NavigationItemCategory NavigationItemType = "category"
	// NavigationItemExternal links outside the storefront.
	NavigationItemExternal NavigationItemType = "external"
)

// NavigationMenuType identifies the surface a menu is rendered on.
type NavigationMenuType string

const (
	NavigationMenuMain   NavigationMenuType = "main"
	NavigationMenuFooter NavigationMenuType = "footer"
	NavigationMenuMobile NavigationMenuType = "mobile"
	NavigationMenuAdmin  NavigationMenuType = "admin"
)

// NavigationMenuTypes lists the supported menu types in render priority order.
var NavigationMenuTypes = []NavigationMenuType{
	NavigationMenuMain,
	NavigationMenuFooter,
	NavigationMenuMobile,
	NavigationMenuAdmin,
}

// Valid reports whether t is one of the supported menu types.
func (t NavigationMenuType) Valid() bool {
	for _, candidate := range NavigationMenuTypes {
		if t == candidate {
			return true
		}
	}
	return false
}

// NavigationItem is a node of a navigation tree. Children are owned by exactly one parent.
type NavigationItem struct {
	ID           string             `json:"id" yaml:"id"`
	Label        string             `json:"label" yaml:"label"`
	URL          string             `json:"url" yaml:"url"`
	Type         NavigationItemType `json:"type" yaml:"type"`
	Icon         string             `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description  string             `json:"description,omitempty" yaml:"description,omitempty"`
	Order        int                `json:"order" yaml:"order"`
	IsExternal   bool               `json:"isExternal,omitempty" yaml:"isExternal,omitempty"`
	OpenInNewTab *bool              `json:"openInNewTab,omitempty" yaml:"openInNewTab,omitempty"`
	IsVisible    bool               `json:"isVisible" yaml:"isVisible"`
	Children     []NavigationItem   `json:"children,omitempty" yaml:"children,omitempty"`
	Metadata     map[string]any     `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// HasChildren reports whether the item opens a sub-level.
func (i NavigationItem) HasChildren() bool {
	return len(i.Children) > 0
}

// NavigationSettings carries presentation hints stored alongside a menu.
type NavigationSettings struct {
	MaxDepth          int    `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`
	ShowIcons         bool   `json:"showIcons" yaml:"showIcons"`
	ShowDescriptions  bool   `json:"showDescriptions" yaml:"showDescriptions"`
	MobileCollapsible bool   `json:"mobileCollapsible" yaml:"mobileCollapsible"`
	Theme             string `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// NavigationMenu is a complete menu tree. Menus are replaced wholesale on update.
type NavigationMenu struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	DisplayName string             `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Type        NavigationMenuType `json:"type" yaml:"type"`
	Items       []NavigationItem   `json:"items" yaml:"items"`
	Settings    NavigationSettings `json:"settings" yaml:"settings"`
	IsActive    bool               `json:"isActive" yaml:"isActive"`
	Version     int                `json:"version" yaml:"version"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

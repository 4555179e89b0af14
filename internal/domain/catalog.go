package domain

import "time"

// StockStatus describes product availability as surfaced on product pages.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// SEOOverrides holds editor supplied metadata that takes precedence over derived values.
type SEOOverrides struct {
	MetaTitle       string
	MetaDescription string
	Keywords        []string
	CanonicalURL    string
	OGImage         string
	NoIndex         bool
	NoFollow        bool
}

// ProductPricing captures the internal price used for offers. BasePrice is nil for quote-based items.
type ProductPricing struct {
	Type        string
	DisplayText string
	BasePrice   *float64
	Currency    string
	Unit        string
	IsVisible   bool
}

// Product is a catalog entry such as a timber species, plywood grade or hardware item.
type Product struct {
	ID             string
	Slug           string
	Name           string
	Category       string
	Grade          string
	Description    string
	Images         []string
	Tags           []string
	SEO            *SEOOverrides
	Pricing        *ProductPricing
	StockStatus    StockStatus
	Origin         string
	Certifications []string
	Specifications map[string]string
	IsActive       bool
	Featured       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

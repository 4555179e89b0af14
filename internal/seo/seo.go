package seo

// OpenGraph holds og:* values.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	SiteName    string `json:"siteName,omitempty"`
}

// Twitter holds twitter:* card values.
type Twitter struct {
	Card  string `json:"card"`
	Site  string `json:"site,omitempty"`
	Image string `json:"image,omitempty"`
}

// Meta is the presentation-ready metadata of one page.
type Meta struct {
	Title       string    `json:"metaTitle"`
	Description string    `json:"metaDescription"`
	Keywords    []string  `json:"keywords"`
	Canonical   string    `json:"canonicalUrl"`
	Robots      string    `json:"robots"`
	OG          OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
}

// Preview is the search-result snippet shown in the admin editor.
type Preview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
}

// MetaTag is a single <meta> element. Exactly one of Name or Property is set.
type MetaTag struct {
	Name     string `json:"name,omitempty"`
	Property string `json:"property,omitempty"`
	Content  string `json:"content"`
}

package domain

import "time"

// FaviconSet lists favicon asset paths.
type FaviconSet struct {
	ICO      string `yaml:"ico"`
	PNG16    string `yaml:"png16"`
	PNG32    string `yaml:"png32"`
	Apple180 string `yaml:"apple180"`
}

// SocialMediaSettings holds Open Graph and Twitter defaults.
type SocialMediaSettings struct {
	OGImage       string `yaml:"ogImage"`
	OGType        string `yaml:"ogType"`
	TwitterCard   string `yaml:"twitterCard"`
	TwitterSite   string `yaml:"twitterSite"`
	FacebookAppID string `yaml:"facebookAppId"`
}

// PostalAddress is the business address used in Organization schema.
type PostalAddress struct {
	StreetAddress   string `yaml:"streetAddress"`
	AddressLocality string `yaml:"addressLocality"`
	AddressRegion   string `yaml:"addressRegion"`
	PostalCode      string `yaml:"postalCode"`
	AddressCountry  string `yaml:"addressCountry"`
}

// OrganizationProfile feeds the Organization and LocalBusiness schemas.
type OrganizationProfile struct {
	Logo         string        `yaml:"logo"`
	Description  string        `yaml:"description"`
	Telephone    string        `yaml:"telephone"`
	ContactType  string        `yaml:"contactType"`
	AreaServed   string        `yaml:"areaServed"`
	Languages    []string      `yaml:"languages"`
	Address      PostalAddress `yaml:"address"`
	SameAs       []string      `yaml:"sameAs"`
	OpeningHours []string      `yaml:"openingHours"`
	PriceRange   string        `yaml:"priceRange"`
}

// AnalyticsSettings carries verification and measurement identifiers.
type AnalyticsSettings struct {
	GoogleAnalyticsID   string `yaml:"googleAnalyticsId"`
	GoogleSearchConsole string `yaml:"googleSearchConsole"`
	BingWebmasterTools  string `yaml:"bingWebmasterTools"`
}

// GlobalSEOSettings are the site-wide SEO defaults. Built once at start-up and never mutated.
type GlobalSEOSettings struct {
	SiteName           string              `yaml:"siteName"`
	DefaultTitle       string              `yaml:"defaultTitle"`
	TitleSeparator     string              `yaml:"titleSeparator"`
	DefaultDescription string              `yaml:"defaultDescription"`
	DefaultKeywords    []string            `yaml:"defaultKeywords"`
	CanonicalURL       string              `yaml:"canonicalURL"`
	RobotsTxt          string              `yaml:"robotsTxt"`
	Favicon            FaviconSet          `yaml:"favicon"`
	SocialMedia        SocialMediaSettings `yaml:"socialMedia"`
	Organization       OrganizationProfile `yaml:"organization"`
	Analytics          AnalyticsSettings   `yaml:"analytics"`
	UpdatedAt          time.Time           `yaml:"-"`
}

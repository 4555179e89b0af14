package seo

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

const (
	// PagePlaceholder marks where the entity name goes in DefaultTitle.
	PagePlaceholder = "%page%"
	// SeparatorPlaceholder is replaced with TitleSeparator.
	SeparatorPlaceholder = "%sep%"
	// SitePlaceholder is replaced with SiteName.
	SitePlaceholder = "%site%"

	defaultSeparator   = " | "
	defaultTwitterCard = "summary_large_image"
	defaultOGType      = "website"
	defaultCurrency    = "INR"
)

// DefaultSettings returns the built-in site-wide SEO defaults.
func DefaultSettings() domain.GlobalSEOSettings {
	return domain.GlobalSEOSettings{
		SiteName:           "Timber Craft Commerce Hub",
		DefaultTitle:       "%page% | Timber Craft Commerce Hub",
		TitleSeparator:     defaultSeparator,
		DefaultDescription: "Premium timber and woodcraft solutions for all your construction and design needs. Quality materials, expert craftsmanship, and reliable service.",
		DefaultKeywords:    []string{"timber", "wood", "craft", "construction", "premium lumber", "woodcraft"},
		CanonicalURL:       "https://timbercrafthub.com",
		Favicon: domain.FaviconSet{
			ICO:      "/favicon.ico",
			PNG16:    "/favicon-16x16.png",
			PNG32:    "/favicon-32x32.png",
			Apple180: "/apple-touch-icon.png",
		},
		SocialMedia: domain.SocialMediaSettings{
			OGImage:     "/og-image.jpg",
			OGType:      defaultOGType,
			TwitterCard: defaultTwitterCard,
			TwitterSite: "@timbercrafthub",
		},
		Organization: domain.OrganizationProfile{
			Logo:        "/logo.png",
			Description: "Premium timber and wood suppliers in Bangalore, Karnataka",
			Telephone:   "+91-9886033342",
			ContactType: "customer service",
			AreaServed:  "IN-KA",
			Languages:   []string{"English", "Kannada"},
			Address: domain.PostalAddress{
				StreetAddress:   "No. 134/20, 5th Main, HSR Layout Sector 7",
				AddressLocality: "Bangalore",
				AddressRegion:   "Karnataka",
				PostalCode:      "560068",
				AddressCountry:  "IN",
			},
			SameAs: []string{
				"https://www.facebook.com/newindiatimber",
				"https://www.linkedin.com/company/new-india-timber",
			},
			OpeningHours: []string{"Mo-Sa 09:00-18:00"},
			PriceRange:   "$$",
		},
	}
}

// LoadSettings overlays a YAML document on base. Keys absent from the document keep the base value.
func LoadSettings(r io.Reader, base domain.GlobalSEOSettings) (domain.GlobalSEOSettings, error) {
	merged := cloneSettings(base)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&merged); err != nil && !errors.Is(err, io.EOF) {
		return domain.GlobalSEOSettings{}, fmt.Errorf("decode seo settings: %w", err)
	}
	return normalizeSettings(merged), nil
}

func normalizeSettings(s domain.GlobalSEOSettings) domain.GlobalSEOSettings {
	s.SiteName = strings.TrimSpace(s.SiteName)
	s.CanonicalURL = strings.TrimRight(strings.TrimSpace(s.CanonicalURL), "/")
	if s.TitleSeparator == "" {
		s.TitleSeparator = defaultSeparator
	}
	return s
}

func cloneSettings(s domain.GlobalSEOSettings) domain.GlobalSEOSettings {
	s.DefaultKeywords = slices.Clone(s.DefaultKeywords)
	s.Organization.Languages = slices.Clone(s.Organization.Languages)
	s.Organization.SameAs = slices.Clone(s.Organization.SameAs)
	s.Organization.OpeningHours = slices.Clone(s.Organization.OpeningHours)
	return s
}

// MergeSettings overlays the non-empty fields of stored on base. It is used for the settings
// document kept in the data store, where absent fields decode as zero values.
func MergeSettings(base, stored domain.GlobalSEOSettings) domain.GlobalSEOSettings {
	out := cloneSettings(base)
	setString(&out.SiteName, stored.SiteName)
	setString(&out.DefaultTitle, stored.DefaultTitle)
	setString(&out.TitleSeparator, stored.TitleSeparator)
	setString(&out.DefaultDescription, stored.DefaultDescription)
	setSlice(&out.DefaultKeywords, stored.DefaultKeywords)
	setString(&out.CanonicalURL, stored.CanonicalURL)
	setString(&out.RobotsTxt, stored.RobotsTxt)

	setString(&out.Favicon.ICO, stored.Favicon.ICO)
	setString(&out.Favicon.PNG16, stored.Favicon.PNG16)
	setString(&out.Favicon.PNG32, stored.Favicon.PNG32)
	setString(&out.Favicon.Apple180, stored.Favicon.Apple180)

	setString(&out.SocialMedia.OGImage, stored.SocialMedia.OGImage)
	setString(&out.SocialMedia.OGType, stored.SocialMedia.OGType)
	setString(&out.SocialMedia.TwitterCard, stored.SocialMedia.TwitterCard)
	setString(&out.SocialMedia.TwitterSite, stored.SocialMedia.TwitterSite)
	setString(&out.SocialMedia.FacebookAppID, stored.SocialMedia.FacebookAppID)

	setString(&out.Organization.Logo, stored.Organization.Logo)
	setString(&out.Organization.Description, stored.Organization.Description)
	setString(&out.Organization.Telephone, stored.Organization.Telephone)
	setString(&out.Organization.ContactType, stored.Organization.ContactType)
	setString(&out.Organization.AreaServed, stored.Organization.AreaServed)
	setSlice(&out.Organization.Languages, stored.Organization.Languages)
	setString(&out.Organization.Address.StreetAddress, stored.Organization.Address.StreetAddress)
	setString(&out.Organization.Address.AddressLocality, stored.Organization.Address.AddressLocality)
	setString(&out.Organization.Address.AddressRegion, stored.Organization.Address.AddressRegion)
	setString(&out.Organization.Address.PostalCode, stored.Organization.Address.PostalCode)
	setString(&out.Organization.Address.AddressCountry, stored.Organization.Address.AddressCountry)
	setSlice(&out.Organization.SameAs, stored.Organization.SameAs)
	setSlice(&out.Organization.OpeningHours, stored.Organization.OpeningHours)
	setString(&out.Organization.PriceRange, stored.Organization.PriceRange)

	setString(&out.Analytics.GoogleAnalyticsID, stored.Analytics.GoogleAnalyticsID)
	setString(&out.Analytics.GoogleSearchConsole, stored.Analytics.GoogleSearchConsole)
	setString(&out.Analytics.BingWebmasterTools, stored.Analytics.BingWebmasterTools)

	if !stored.UpdatedAt.IsZero() {
		out.UpdatedAt = stored.UpdatedAt
	}
	return normalizeSettings(out)
}

func setString(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}

func setSlice(dst *[]string, value []string) {
	if len(value) > 0 {
		*dst = slices.Clone(value)
	}
}

package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

func TestLoadSettingsOverlaysDefaults(t *testing.T) {
	t.Parallel()

	doc := `
siteName: New India Timber
canonicalURL: https://newindiatimber.com/
defaultKeywords: [teak, plywood]
socialMedia:
  twitterSite: "@NewIndiaTimbers"
`
	s, err := LoadSettings(strings.NewReader(doc), DefaultSettings())

	require.NoError(t, err)
	require.Equal(t, "New India Timber", s.SiteName)
	require.Equal(t, "https://newindiatimber.com", s.CanonicalURL)
	require.Equal(t, []string{"teak", "plywood"}, s.DefaultKeywords)
	require.Equal(t, "@NewIndiaTimbers", s.SocialMedia.TwitterSite)
	require.Equal(t, "/og-image.jpg", s.SocialMedia.OGImage, "unset nested keys keep defaults")
	require.Equal(t, " | ", s.TitleSeparator)
}

func TestLoadSettingsEmptyDocumentKeepsBase(t *testing.T) {
	t.Parallel()

	s, err := LoadSettings(strings.NewReader(""), DefaultSettings())

	require.NoError(t, err)
	require.Equal(t, DefaultSettings().SiteName, s.SiteName)
}

func TestLoadSettingsRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := LoadSettings(strings.NewReader("siteTitle: nope\n"), DefaultSettings())

	require.Error(t, err)
}

func TestLoadSettingsDoesNotAliasBase(t *testing.T) {
	t.Parallel()

	base := DefaultSettings()
	s, err := LoadSettings(strings.NewReader("siteName: X\n"), base)
	require.NoError(t, err)

	s.DefaultKeywords[0] = "changed"

	require.Equal(t, "timber", base.DefaultKeywords[0])
}

func TestMergeSettingsKeepsDefaultsForEmptyFields(t *testing.T) {
	t.Parallel()

	stored := domain.GlobalSEOSettings{
		SiteName:        "New India Timber",
		CanonicalURL:    "https://newindiatimber.com/",
		DefaultKeywords: []string{"teak"},
	}
	stored.SocialMedia.TwitterSite = "@nit"

	merged := MergeSettings(DefaultSettings(), stored)

	require.Equal(t, "New India Timber", merged.SiteName)
	require.Equal(t, "https://newindiatimber.com", merged.CanonicalURL)
	require.Equal(t, []string{"teak"}, merged.DefaultKeywords)
	require.Equal(t, "@nit", merged.SocialMedia.TwitterSite)
	require.Equal(t, DefaultSettings().DefaultDescription, merged.DefaultDescription)
	require.Equal(t, "Bangalore", merged.Organization.Address.AddressLocality)
}

func TestMergeSettingsOverlaysFaviconAndBusinessProfile(t *testing.T) {
	t.Parallel()

	var stored domain.GlobalSEOSettings
	stored.Favicon.PNG32 = "/icons/nit-32.png"
	stored.Organization.ContactType = "sales"
	stored.Organization.AreaServed = "Karnataka"
	stored.Organization.Languages = []string{"en", "kn"}
	stored.Organization.Address.AddressLocality = "Bengaluru"
	stored.Organization.OpeningHours = []string{"Mo-Sa 08:30-19:00"}
	stored.Organization.PriceRange = "$$$"

	base := DefaultSettings()
	merged := MergeSettings(base, stored)

	require.Equal(t, "/icons/nit-32.png", merged.Favicon.PNG32)
	require.Equal(t, base.Favicon.ICO, merged.Favicon.ICO)
	require.Equal(t, "sales", merged.Organization.ContactType)
	require.Equal(t, "Karnataka", merged.Organization.AreaServed)
	require.Equal(t, []string{"en", "kn"}, merged.Organization.Languages)
	require.Equal(t, "Bengaluru", merged.Organization.Address.AddressLocality)
	require.Equal(t, base.Organization.Address.StreetAddress, merged.Organization.Address.StreetAddress)
	require.Equal(t, []string{"Mo-Sa 08:30-19:00"}, merged.Organization.OpeningHours)
	require.Equal(t, "$$$", merged.Organization.PriceRange)
}

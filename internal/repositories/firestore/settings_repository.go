package firestore

import (
	"context"
	"errors"
	"time"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	pfirestore "github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/firestore"
)

const (
	settingsCollection = "settings"
	seoSettingsDocID   = "seo"
)

// SettingsRepository reads the settings/seo document.
type SettingsRepository struct {
	settings *pfirestore.Collection[seoSettingsDocument]
}

// NewSettingsRepository constructs a Firestore-backed settings repository.
func NewSettingsRepository(provider *pfirestore.Provider) (*SettingsRepository, error) {
	if provider == nil {
		return nil, errors.New("settings repository requires firestore provider")
	}
	return &SettingsRepository{settings: pfirestore.NewCollection[seoSettingsDocument](provider, settingsCollection)}, nil
}

func (r *SettingsRepository) GetSEOSettings(ctx context.Context) (domain.GlobalSEOSettings, error) {
	doc, err := r.settings.Get(ctx, seoSettingsDocID)
	if err != nil {
		return domain.GlobalSEOSettings{}, err
	}
	return doc.toDomain(), nil
}

type seoSettingsDocument struct {
	SiteName           string   `firestore:"siteName"`
	DefaultTitle       string   `firestore:"defaultTitle"`
	TitleSeparator     string   `firestore:"titleSeparator"`
	DefaultDescription string   `firestore:"defaultDescription"`
	DefaultKeywords    []string `firestore:"defaultKeywords"`
	CanonicalURL       string   `firestore:"canonicalUrl"`
	RobotsTxt          string   `firestore:"robotsTxt"`
	Favicon            struct {
		ICO      string `firestore:"ico"`
		PNG16    string `firestore:"png16"`
		PNG32    string `firestore:"png32"`
		Apple180 string `firestore:"apple180"`
	} `firestore:"favicon"`
	SocialMedia struct {
		OGImage       string `firestore:"ogImage"`
		OGType        string `firestore:"ogType"`
		TwitterCard   string `firestore:"twitterCard"`
		TwitterSite   string `firestore:"twitterSite"`
		FacebookAppID string `firestore:"facebookAppId"`
	} `firestore:"socialMedia"`
	Organization struct {
		Logo         string           `firestore:"logo"`
		Description  string           `firestore:"description"`
		Telephone    string           `firestore:"telephone"`
		ContactType  string           `firestore:"contactType"`
		AreaServed   string           `firestore:"areaServed"`
		Languages    []string         `firestore:"languages"`
		Address      postalAddressDoc `firestore:"address"`
		SameAs       []string         `firestore:"sameAs"`
		OpeningHours []string         `firestore:"openingHours"`
		PriceRange   string           `firestore:"priceRange"`
	} `firestore:"organization"`
	Analytics struct {
		GoogleAnalyticsID   string `firestore:"googleAnalyticsId"`
		GoogleSearchConsole string `firestore:"googleSearchConsole"`
		BingWebmasterTools  string `firestore:"bingWebmasterTools"`
	} `firestore:"analytics"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type postalAddressDoc struct {
	StreetAddress   string `firestore:"streetAddress"`
	AddressLocality string `firestore:"addressLocality"`
	AddressRegion   string `firestore:"addressRegion"`
	PostalCode      string `firestore:"postalCode"`
	AddressCountry  string `firestore:"addressCountry"`
}

// toDomain returns only the fields present in the stored document; callers overlay it on their
// defaults with seo.MergeSettings.
func (d seoSettingsDocument) toDomain() domain.GlobalSEOSettings {
	return domain.GlobalSEOSettings{
		SiteName:           d.SiteName,
		DefaultTitle:       d.DefaultTitle,
		TitleSeparator:     d.TitleSeparator,
		DefaultDescription: d.DefaultDescription,
		DefaultKeywords:    d.DefaultKeywords,
		CanonicalURL:       d.CanonicalURL,
		RobotsTxt:          d.RobotsTxt,
		Favicon: domain.FaviconSet{
			ICO:      d.Favicon.ICO,
			PNG16:    d.Favicon.PNG16,
			PNG32:    d.Favicon.PNG32,
			Apple180: d.Favicon.Apple180,
		},
		SocialMedia: domain.SocialMediaSettings{
			OGImage:       d.SocialMedia.OGImage,
			OGType:        d.SocialMedia.OGType,
			TwitterCard:   d.SocialMedia.TwitterCard,
			TwitterSite:   d.SocialMedia.TwitterSite,
			FacebookAppID: d.SocialMedia.FacebookAppID,
		},
		Organization: domain.OrganizationProfile{
			Logo:        d.Organization.Logo,
			Description: d.Organization.Description,
			Telephone:   d.Organization.Telephone,
			ContactType: d.Organization.ContactType,
			AreaServed:  d.Organization.AreaServed,
			Languages:   d.Organization.Languages,
			Address: domain.PostalAddress{
				StreetAddress:   d.Organization.Address.StreetAddress,
				AddressLocality: d.Organization.Address.AddressLocality,
				AddressRegion:   d.Organization.Address.AddressRegion,
				PostalCode:      d.Organization.Address.PostalCode,
				AddressCountry:  d.Organization.Address.AddressCountry,
			},
			SameAs:       d.Organization.SameAs,
			OpeningHours: d.Organization.OpeningHours,
			PriceRange:   d.Organization.PriceRange,
		},
		Analytics: domain.AnalyticsSettings{
			GoogleAnalyticsID:   d.Analytics.GoogleAnalyticsID,
			GoogleSearchConsole: d.Analytics.GoogleSearchConsole,
			BingWebmasterTools:  d.Analytics.BingWebmasterTools,
		},
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

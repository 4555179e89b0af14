package seo

import (
	"sort"
	"time"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

const schemaContext = "https://schema.org"

// Organization builds the Organization schema from the site settings.
func Organization(s domain.GlobalSEOSettings) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     s.SiteName,
	}
	if s.CanonicalURL != "" {
		m["url"] = s.CanonicalURL
	}
	org := s.Organization
	if org.Logo != "" {
		m["logo"] = absoluteURL(s.CanonicalURL, org.Logo)
	}
	if org.Description != "" {
		m["description"] = org.Description
	}
	if addr := postalAddress(org.Address); addr != nil {
		m["address"] = addr
	}
	if org.Telephone != "" {
		contact := map[string]any{
			"@type":     "ContactPoint",
			"telephone": org.Telephone,
		}
		if org.ContactType != "" {
			contact["contactType"] = org.ContactType
		}
		if org.AreaServed != "" {
			contact["areaServed"] = org.AreaServed
		}
		if len(org.Languages) > 0 {
			contact["availableLanguage"] = org.Languages
		}
		m["contactPoint"] = contact
	}
	if len(org.SameAs) > 0 {
		m["sameAs"] = org.SameAs
	}
	return m
}

// WebSite builds the WebSite schema with a sitelinks SearchAction.
func WebSite(s domain.GlobalSEOSettings) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     s.SiteName,
	}
	if s.CanonicalURL != "" {
		m["url"] = s.CanonicalURL
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      s.CanonicalURL + "/search?q={search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// LocalBusiness builds the LocalBusiness schema used on the home page.
func LocalBusiness(s domain.GlobalSEOSettings) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "LocalBusiness",
		"name":     s.SiteName,
	}
	org := s.Organization
	if org.Description != "" {
		m["description"] = org.Description
	}
	if s.CanonicalURL != "" {
		m["url"] = s.CanonicalURL
	}
	if org.Logo != "" {
		m["image"] = absoluteURL(s.CanonicalURL, org.Logo)
	}
	if org.Telephone != "" {
		m["telephone"] = org.Telephone
	}
	if addr := postalAddress(org.Address); addr != nil {
		m["address"] = addr
	}
	if len(org.OpeningHours) > 0 {
		m["openingHours"] = org.OpeningHours
	}
	if org.PriceRange != "" {
		m["priceRange"] = org.PriceRange
	}
	if org.AreaServed != "" {
		m["areaServed"] = org.AreaServed
	}
	return m
}

func postalAddress(a domain.PostalAddress) map[string]any {
	fields := map[string]string{
		"streetAddress":   a.StreetAddress,
		"addressLocality": a.AddressLocality,
		"addressRegion":   a.AddressRegion,
		"postalCode":      a.PostalCode,
		"addressCountry":  a.AddressCountry,
	}
	m := map[string]any{"@type": "PostalAddress"}
	for key, value := range fields {
		if value != "" {
			m[key] = value
		}
	}
	if len(m) == 1 {
		return nil
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Product builds a Product schema. The offer is emitted only when facts carry a price.
func Product(name, description, url string, images []string, facts *ProductFacts, seller string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Product",
		"name":     name,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
	}
	if len(images) > 0 {
		m["image"] = images
	}
	if seller != "" {
		m["brand"] = map[string]any{"@type": "Brand", "name": seller}
	}
	if facts == nil {
		return m
	}
	if facts.SKU != "" {
		m["sku"] = facts.SKU
	}
	if facts.Category != "" {
		m["category"] = facts.Category
	}
	if props := additionalProperties(facts); len(props) > 0 {
		m["additionalProperty"] = props
	}
	if facts.Origin != "" {
		m["countryOfOrigin"] = map[string]any{"@type": "Country", "name": facts.Origin}
	}
	if len(facts.Certifications) > 0 {
		certs := make([]map[string]any, 0, len(facts.Certifications))
		for _, cert := range facts.Certifications {
			certs = append(certs, map[string]any{"@type": "Certification", "name": cert})
		}
		m["hasCertification"] = certs
	}
	if offer := offerFor(facts, url, seller); offer != nil {
		m["offers"] = offer
	}
	return m
}

func offerFor(facts *ProductFacts, url, seller string) map[string]any {
	if facts.Price == nil {
		return nil
	}
	currency := facts.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	offer := map[string]any{
		"@type":         "Offer",
		"price":         *facts.Price,
		"priceCurrency": currency,
	}
	if url != "" {
		offer["url"] = url
	}
	if availability := availabilityURL(facts.Availability); availability != "" {
		offer["availability"] = availability
	}
	if facts.Unit != "" {
		offer["priceSpecification"] = map[string]any{
			"@type":         "UnitPriceSpecification",
			"price":         *facts.Price,
			"priceCurrency": currency,
			"unitText":      facts.Unit,
		}
	}
	if seller != "" {
		offer["seller"] = map[string]any{"@type": "Organization", "name": seller}
	}
	return offer
}

func availabilityURL(status domain.StockStatus) string {
	switch status {
	case domain.StockInStock:
		return "https://schema.org/InStock"
	case domain.StockLowStock:
		return "https://schema.org/LimitedAvailability"
	case domain.StockOutOfStock:
		return "https://schema.org/OutOfStock"
	default:
		return ""
	}
}

func additionalProperties(facts *ProductFacts) []map[string]any {
	var props []map[string]any
	if facts.Grade != "" {
		props = append(props, propertyValue("Grade", facts.Grade))
	}
	keys := make([]string, 0, len(facts.Specifications))
	for key := range facts.Specifications {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if value := facts.Specifications[key]; value != "" {
			props = append(props, propertyValue(key, value))
		}
	}
	return props
}

func propertyValue(name, value string) map[string]any {
	return map[string]any{"@type": "PropertyValue", "name": name, "value": value}
}

// Article builds an Article schema.
func Article(headline, description, url string, images []string, facts *ArticleFacts, publisher map[string]any) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Article",
		"headline": headline,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
		m["mainEntityOfPage"] = map[string]any{"@type": "WebPage", "@id": url}
	}
	if len(images) > 0 {
		m["image"] = images
	}
	if publisher != nil {
		m["publisher"] = publisher
	}
	if facts == nil {
		return m
	}
	if facts.Author != "" {
		m["author"] = map[string]any{"@type": "Person", "name": facts.Author}
	}
	if facts.Section != "" {
		m["articleSection"] = facts.Section
	}
	if !facts.PublishedAt.IsZero() {
		m["datePublished"] = facts.PublishedAt.UTC().Format(time.RFC3339)
	}
	if !facts.ModifiedAt.IsZero() {
		m["dateModified"] = facts.ModifiedAt.UTC().Format(time.RFC3339)
	}
	return m
}

// WebPage builds a WebPage schema.
func WebPage(name, description, url, siteName string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "WebPage",
		"name":     name,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
	}
	if siteName != "" {
		m["isPartOf"] = map[string]any{"@type": "WebSite", "name": siteName}
	}
	return m
}

package seo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

// ChangeFreq is a sitemaps.org changefreq value.
type ChangeFreq string

const (
	ChangeDaily   ChangeFreq = "daily"
	ChangeWeekly  ChangeFreq = "weekly"
	ChangeMonthly ChangeFreq = "monthly"
	ChangeYearly  ChangeFreq = "yearly"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapEntry is one <url> element.
type SitemapEntry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq ChangeFreq
	Priority   float64
}

// StaticPage is a fixed storefront route listed in every sitemap.
type StaticPage struct {
	Path       string
	Priority   float64
	ChangeFreq ChangeFreq
}

// StaticPages are always present in the sitemap, highest priority first.
var StaticPages = []StaticPage{
	{Path: "/", Priority: 1.0, ChangeFreq: ChangeWeekly},
	{Path: "/products", Priority: 0.9, ChangeFreq: ChangeDaily},
	{Path: "/blog", Priority: 0.8, ChangeFreq: ChangeDaily},
	{Path: "/bulk-orders", Priority: 0.7, ChangeFreq: ChangeMonthly},
	{Path: "/contact", Priority: 0.6, ChangeFreq: ChangeMonthly},
	{Path: "/about", Priority: 0.6, ChangeFreq: ChangeMonthly},
	{Path: "/compare", Priority: 0.5, ChangeFreq: ChangeMonthly},
	{Path: "/terms-conditions", Priority: 0.3, ChangeFreq: ChangeYearly},
	{Path: "/privacy-policy", Priority: 0.3, ChangeFreq: ChangeYearly},
}

// BuildSitemapEntries lists static pages, active products, published posts and the blog categories
// those posts belong to. Entities without an update time use generated as lastmod.
func BuildSitemapEntries(baseURL string, generated time.Time, products []domain.Product, posts []domain.BlogPost) []SitemapEntry {
	entries := make([]SitemapEntry, 0, len(StaticPages)+len(products)+len(posts))
	for _, page := range StaticPages {
		entries = append(entries, SitemapEntry{
			Loc:        absoluteURL(baseURL, page.Path),
			LastMod:    generated,
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
		})
	}

	for _, product := range products {
		if !product.IsActive {
			continue
		}
		entries = append(entries, SitemapEntry{
			Loc:        absoluteURL(baseURL, ProductPath(product)),
			LastMod:    orDefault(product.UpdatedAt, generated),
			ChangeFreq: ChangeWeekly,
			Priority:   0.8,
		})
	}

	categories := make(map[string]time.Time)
	var categoryOrder []string
	for _, post := range posts {
		if !post.Published() || strings.TrimSpace(post.Slug) == "" {
			continue
		}
		lastMod := orDefault(post.UpdatedAt, generated)
		entries = append(entries, SitemapEntry{
			Loc:        absoluteURL(baseURL, BlogPostPath(post)),
			LastMod:    lastMod,
			ChangeFreq: ChangeMonthly,
			Priority:   0.7,
		})
		for _, category := range post.CategoryIDs {
			category = strings.TrimSpace(category)
			if category == "" {
				continue
			}
			seen, ok := categories[category]
			if !ok {
				categoryOrder = append(categoryOrder, category)
			}
			if !ok || lastMod.After(seen) {
				categories[category] = lastMod
			}
		}
	}
	for _, category := range categoryOrder {
		entries = append(entries, SitemapEntry{
			Loc:        absoluteURL(baseURL, "/blog/category/"+url.PathEscape(category)),
			LastMod:    categories[category],
			ChangeFreq: ChangeWeekly,
			Priority:   0.6,
		})
	}
	return entries
}

func orDefault(t, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders entries as a sitemaps.org 0.9 document.
func Sitemap(entries []SitemapEntry) ([]byte, error) {
	set := urlSet{XMLNS: sitemapNamespace, URLs: make([]urlXML, 0, len(entries))}
	for _, entry := range entries {
		u := urlXML{Loc: entry.Loc, ChangeFreq: string(entry.ChangeFreq)}
		if !entry.LastMod.IsZero() {
			u.LastMod = entry.LastMod.UTC().Format("2006-01-02")
		}
		if entry.Priority > 0 {
			u.Priority = strconv.FormatFloat(entry.Priority, 'f', 1, 64)
		}
		set.URLs = append(set.URLs, u)
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// RobotsTxt returns the configured robots.txt, or a default that keeps crawlers out of private
// areas and points at the sitemap.
func RobotsTxt(s domain.GlobalSEOSettings) string {
	if custom := strings.TrimSpace(s.RobotsTxt); custom != "" {
		return custom + "\n"
	}
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, path := range []string{"/dashboard/", "/admin/", "/login", "/api/"} {
		b.WriteString("Disallow: " + path + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Sitemap: " + absoluteURL(s.CanonicalURL, "/sitemap.xml") + "\n")
	b.WriteString("Crawl-delay: 1\n")
	return b.String()
}

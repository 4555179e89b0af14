package seo

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

const (
	maxDescriptionRunes = 160
	ellipsis            = "..."
)

// Generator derives page metadata from an entity and a fixed settings snapshot. It holds no
// mutable state and is safe for concurrent use.
type Generator struct {
	settings domain.GlobalSEOSettings
}

// NewGenerator snapshots settings. Later changes to the caller's copy are not observed.
func NewGenerator(settings domain.GlobalSEOSettings) *Generator {
	return &Generator{settings: normalizeSettings(cloneSettings(settings))}
}

// Settings returns a copy of the snapshot.
func (g *Generator) Settings() domain.GlobalSEOSettings {
	return cloneSettings(g.settings)
}

// GenerateSEOData computes title, description, keywords, canonical URL and social fields.
func (g *Generator) GenerateSEOData(e Entity) Meta {
	title := g.title(e)
	description := g.description(e)
	canonical := g.canonical(e)
	image := g.ogImage(e)

	return Meta{
		Title:       title,
		Description: description,
		Keywords:    g.keywords(e),
		Canonical:   canonical,
		Robots:      robots(e.SEO),
		OG: OpenGraph{
			Title:       g.ogTitle(e, title),
			Description: description,
			Image:       image,
			Type:        g.ogType(e),
			URL:         canonical,
			SiteName:    g.settings.SiteName,
		},
		Twitter: Twitter{
			Card:  g.twitterCard(),
			Site:  g.settings.SocialMedia.TwitterSite,
			Image: image,
		},
	}
}

// GenerateAllStructuredData returns the Organization and WebSite schemas followed by the entity
// schema when its required fields are present, and a BreadcrumbList when the entity carries one.
// The home page also gets the LocalBusiness schema.
func (g *Generator) GenerateAllStructuredData(e Entity) []map[string]any {
	out := []map[string]any{Organization(g.settings), WebSite(g.settings)}
	if schema := g.entitySchema(e); schema != nil {
		out = append(out, schema)
	}
	if e.Type == EntityPage && e.CanonicalPath == "/" {
		out = append(out, LocalBusiness(g.settings))
	}
	if len(e.Breadcrumbs) > 0 {
		items := make([]BreadcrumbItem, 0, len(e.Breadcrumbs))
		for _, crumb := range e.Breadcrumbs {
			items = append(items, BreadcrumbItem{Name: crumb.Name, Item: g.absolute(crumb.Item)})
		}
		out = append(out, BreadcrumbList(items))
	}
	return out
}

func (g *Generator) entitySchema(e Entity) map[string]any {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return nil
	}
	url := g.canonical(e)
	description := strings.TrimSpace(e.Description)
	switch e.Type {
	case EntityProduct:
		return Product(name, description, url, g.absoluteAll(e.Images), e.Product, g.settings.SiteName)
	case EntityArticle:
		publisher := map[string]any{"@type": "Organization", "name": g.settings.SiteName}
		if logo := g.settings.Organization.Logo; logo != "" {
			publisher["logo"] = map[string]any{"@type": "ImageObject", "url": g.absolute(logo)}
		}
		return Article(name, description, url, g.absoluteAll(e.Images), e.Article, publisher)
	default:
		return WebPage(name, g.description(e), url, g.settings.SiteName)
	}
}

// Preview returns the search snippet for e.
func (g *Generator) Preview(e Entity) Preview {
	meta := g.GenerateSEOData(e)
	return Preview{
		Title:       meta.Title,
		Description: meta.Description,
		URL:         meta.Canonical,
		Image:       meta.OG.Image,
		SiteName:    g.settings.SiteName,
	}
}

// MetaTags renders the <meta> elements for e. Product price tags appear only when priced.
func (g *Generator) MetaTags(e Entity) []MetaTag {
	meta := g.GenerateSEOData(e)
	tags := []MetaTag{
		{Name: "title", Content: meta.Title},
		{Name: "description", Content: meta.Description},
	}
	if len(meta.Keywords) > 0 {
		tags = append(tags, MetaTag{Name: "keywords", Content: strings.Join(meta.Keywords, ", ")})
	}
	tags = append(tags,
		MetaTag{Name: "robots", Content: meta.Robots},
		MetaTag{Property: "og:title", Content: meta.OG.Title},
		MetaTag{Property: "og:description", Content: meta.OG.Description},
		MetaTag{Property: "og:url", Content: meta.OG.URL},
		MetaTag{Property: "og:type", Content: meta.OG.Type},
		MetaTag{Property: "og:site_name", Content: meta.OG.SiteName},
	)
	if meta.OG.Image != "" {
		tags = append(tags, MetaTag{Property: "og:image", Content: meta.OG.Image})
	}
	if appID := g.settings.SocialMedia.FacebookAppID; appID != "" {
		tags = append(tags, MetaTag{Property: "fb:app_id", Content: appID})
	}
	tags = append(tags,
		MetaTag{Name: "twitter:card", Content: meta.Twitter.Card},
		MetaTag{Name: "twitter:title", Content: meta.OG.Title},
		MetaTag{Name: "twitter:description", Content: meta.OG.Description},
	)
	if meta.Twitter.Image != "" {
		tags = append(tags, MetaTag{Name: "twitter:image", Content: meta.Twitter.Image})
	}
	if meta.Twitter.Site != "" {
		tags = append(tags, MetaTag{Name: "twitter:site", Content: meta.Twitter.Site})
	}
	if e.Type == EntityProduct && e.Product != nil && e.Product.Price != nil {
		currency := e.Product.Currency
		if currency == "" {
			currency = defaultCurrency
		}
		tags = append(tags,
			MetaTag{Property: "product:price:amount", Content: strconv.FormatFloat(*e.Product.Price, 'f', -1, 64)},
			MetaTag{Property: "product:price:currency", Content: currency},
		)
		if e.Product.Availability != "" {
			tags = append(tags, MetaTag{Property: "product:availability", Content: string(e.Product.Availability)})
		}
	}
	return tags
}

func (g *Generator) title(e Entity) string {
	if e.SEO != nil {
		if override := strings.TrimSpace(e.SEO.MetaTitle); override != "" {
			return override
		}
	}
	name := strings.TrimSpace(e.Name)
	site := g.settings.SiteName
	if name == "" {
		return site
	}
	sep := g.settings.TitleSeparator
	tmpl := g.settings.DefaultTitle
	if strings.TrimSpace(tmpl) == "" {
		if site == "" {
			return name
		}
		return name + sep + site
	}
	expanded := strings.NewReplacer(SeparatorPlaceholder, sep, SitePlaceholder, site).Replace(tmpl)
	if !strings.Contains(expanded, PagePlaceholder) {
		return name + sep + expanded
	}
	return strings.ReplaceAll(expanded, PagePlaceholder, name)
}

func (g *Generator) description(e Entity) string {
	if e.SEO != nil {
		if override := strings.TrimSpace(e.SEO.MetaDescription); override != "" {
			return override
		}
	}
	if text := strings.Join(strings.Fields(e.Description), " "); text != "" {
		return truncateRunes(text, maxDescriptionRunes)
	}
	return g.settings.DefaultDescription
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	cut := strings.TrimRight(string(runes[:limit-utf8.RuneCountInString(ellipsis)]), " ,.;:")
	return cut + ellipsis
}

func (g *Generator) keywords(e Entity) []string {
	var sources [][]string
	if e.SEO != nil {
		sources = append(sources, e.SEO.Keywords)
	}
	sources = append(sources, e.Keywords, g.settings.DefaultKeywords)

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, source := range sources {
		for _, kw := range source {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			key := strings.ToLower(kw)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}

func (g *Generator) canonical(e Entity) string {
	if e.SEO != nil {
		if override := strings.TrimSpace(e.SEO.CanonicalURL); override != "" {
			return g.absolute(override)
		}
	}
	return g.absolute(e.CanonicalPath)
}

func (g *Generator) ogTitle(e Entity, title string) string {
	if e.SEO != nil && strings.TrimSpace(e.SEO.MetaTitle) != "" {
		return title
	}
	if name := strings.TrimSpace(e.Name); name != "" {
		return name
	}
	return title
}

func (g *Generator) ogImage(e Entity) string {
	if e.SEO != nil && strings.TrimSpace(e.SEO.OGImage) != "" {
		return g.absolute(e.SEO.OGImage)
	}
	for _, img := range e.Images {
		if strings.TrimSpace(img) != "" {
			return g.absolute(img)
		}
	}
	if img := g.settings.SocialMedia.OGImage; img != "" {
		return g.absolute(img)
	}
	return ""
}

func (g *Generator) ogType(e Entity) string {
	switch e.Type {
	case EntityProduct:
		return "product"
	case EntityArticle:
		return "article"
	}
	if t := g.settings.SocialMedia.OGType; t != "" {
		return t
	}
	return defaultOGType
}

func (g *Generator) twitterCard() string {
	if card := g.settings.SocialMedia.TwitterCard; card != "" {
		return card
	}
	return defaultTwitterCard
}

func robots(o *domain.SEOOverrides) string {
	index, follow := "index", "follow"
	if o != nil && o.NoIndex {
		index = "noindex"
	}
	if o != nil && o.NoFollow {
		follow = "nofollow"
	}
	return index + ", " + follow
}

func (g *Generator) absolute(ref string) string {
	return absoluteURL(g.settings.CanonicalURL, ref)
}

func (g *Generator) absoluteAll(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		out = append(out, g.absolute(ref))
	}
	return out
}

// absoluteURL resolves ref against base. References that already carry an http(s) scheme are
// returned unchanged.
func absoluteURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if isAbsolute(ref) {
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}

func isAbsolute(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://")
}

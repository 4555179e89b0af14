package seo

import (
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

// EntityType selects the schema.org type emitted for an entity.
type EntityType string

const (
	EntityProduct EntityType = "product"
	EntityArticle EntityType = "article"
	EntityPage    EntityType = "page"
)

// ProductFacts are the commerce fields of a product entity. Price is nil for quote-only items.
type ProductFacts struct {
	SKU            string
	Category       string
	Grade          string
	Price          *float64
	Currency       string
	Unit           string
	Availability   domain.StockStatus
	Origin         string
	Certifications []string
	Specifications map[string]string
}

// ArticleFacts are the editorial fields of a blog post entity.
type ArticleFacts struct {
	Author      string
	Section     string
	PublishedAt time.Time
	ModifiedAt  time.Time
}

// Entity is the SEO view of a product, blog post or page.
type Entity struct {
	Type          EntityType
	Name          string
	Description   string
	CanonicalPath string
	Images        []string
	Keywords      []string
	SEO           *domain.SEOOverrides
	Product       *ProductFacts
	Article       *ArticleFacts
	Breadcrumbs   []BreadcrumbItem
}

// ProductPath is the public path of a product detail page.
func ProductPath(p domain.Product) string {
	slug := strings.TrimSpace(p.Slug)
	if slug == "" {
		slug = strings.Join(strings.Fields(strings.ToLower(p.Name)), "-")
	}
	return "/products/wood/" + url.PathEscape(slug)
}

// BlogPostPath is the public path of a blog post.
func BlogPostPath(p domain.BlogPost) string {
	return "/blog/" + url.PathEscape(strings.TrimSpace(p.Slug))
}

// HomeSlug is the page slug served at the site root.
const HomeSlug = "home"

// PagePath is the public path of a static page. The home page lives at "/".
func PagePath(p domain.Page) string {
	slug := strings.Trim(strings.TrimSpace(p.Slug), "/")
	if slug == "" || slug == HomeSlug {
		return "/"
	}
	return "/" + slug
}

// FromProduct adapts a catalog product.
func FromProduct(p domain.Product) Entity {
	e := Entity{
		Type:          EntityProduct,
		Name:          p.Name,
		Description:   p.Description,
		CanonicalPath: ProductPath(p),
		Images:        p.Images,
		Keywords:      p.Tags,
		SEO:           p.SEO,
		Product: &ProductFacts{
			SKU:            p.ID,
			Category:       p.Category,
			Grade:          p.Grade,
			Availability:   p.StockStatus,
			Origin:         p.Origin,
			Certifications: p.Certifications,
			Specifications: p.Specifications,
		},
	}
	if p.Pricing != nil {
		e.Product.Price = p.Pricing.BasePrice
		e.Product.Currency = p.Pricing.Currency
		e.Product.Unit = p.Pricing.Unit
	}
	e.Breadcrumbs = []BreadcrumbItem{
		{Name: "Home", Item: "/"},
		{Name: "Products", Item: "/products"},
	}
	if category := strings.TrimSpace(p.Category); category != "" {
		e.Breadcrumbs = append(e.Breadcrumbs, BreadcrumbItem{
			Name: cases.Title(language.English).String(category),
			Item: "/products?category=" + url.QueryEscape(category),
		})
	}
	e.Breadcrumbs = append(e.Breadcrumbs, BreadcrumbItem{Name: p.Name, Item: e.CanonicalPath})
	return e
}

// FromBlogPost adapts a blog post.
func FromBlogPost(p domain.BlogPost) Entity {
	e := Entity{
		Type:          EntityArticle,
		Name:          p.Title,
		Description:   p.Summary,
		CanonicalPath: BlogPostPath(p),
		Keywords:      p.Tags,
		Article: &ArticleFacts{
			Author:      p.Author,
			PublishedAt: p.PublishedAt,
			ModifiedAt:  p.UpdatedAt,
		},
		Breadcrumbs: []BreadcrumbItem{
			{Name: "Home", Item: "/"},
			{Name: "Blog", Item: "/blog"},
			{Name: p.Title, Item: BlogPostPath(p)},
		},
	}
	if len(p.CategoryIDs) > 0 {
		e.Article.Section = p.CategoryIDs[0]
	}
	if p.CoverImage != "" {
		e.Images = []string{p.CoverImage}
	}
	if p.SEOTitle != "" || p.SEODescription != "" || p.CanonicalURL != "" {
		e.SEO = &domain.SEOOverrides{
			MetaTitle:       p.SEOTitle,
			MetaDescription: p.SEODescription,
			CanonicalURL:    p.CanonicalURL,
		}
	}
	return e
}

// FromPage adapts a static content page.
func FromPage(p domain.Page) Entity {
	e := Entity{
		Type:          EntityPage,
		Name:          p.Title,
		CanonicalPath: PagePath(p),
	}
	if p.SEOTitle != "" || p.SEODescription != "" || p.CanonicalURL != "" {
		e.SEO = &domain.SEOOverrides{
			MetaTitle:       p.SEOTitle,
			MetaDescription: p.SEODescription,
			CanonicalURL:    p.CanonicalURL,
		}
	}
	return e
}

package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
	pfirestore "github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/firestore"
)

const productCollection = "products"

// CatalogRepository reads products from the products collection.
type CatalogRepository struct {
	products *pfirestore.Collection[productDocument]
}

// NewCatalogRepository constructs a Firestore-backed catalog repository.
func NewCatalogRepository(provider *pfirestore.Provider) (*CatalogRepository, error) {
	if provider == nil {
		return nil, errors.New("catalog repository requires firestore provider")
	}
	return &CatalogRepository{products: pfirestore.NewCollection[productDocument](provider, productCollection)}, nil
}

func (r *CatalogRepository) GetProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	slug = strings.TrimSpace(slug)
	var found []domain.Product
	err := r.products.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("slug", "==", slug).Limit(1)
	}, func(id string, doc productDocument) {
		found = append(found, doc.toDomain(id))
	})
	if err != nil {
		return domain.Product{}, err
	}
	if len(found) == 0 {
		return domain.Product{}, pfirestore.NotFound("products.bySlug", "product "+slug)
	}
	return found[0], nil
}

func (r *CatalogRepository) ListActiveProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.products.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("isActive", "==", true)
	}, func(id string, doc productDocument) {
		products = append(products, doc.toDomain(id))
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

type productDocument struct {
	Slug           string             `firestore:"slug"`
	Name           string             `firestore:"name"`
	Category       string             `firestore:"category"`
	Grade          string             `firestore:"grade,omitempty"`
	Description    string             `firestore:"description"`
	Images         []string           `firestore:"images"`
	Tags           []string           `firestore:"tags"`
	SEO            *seoOverridesDoc   `firestore:"seo,omitempty"`
	Pricing        *productPricingDoc `firestore:"pricing,omitempty"`
	StockStatus    string             `firestore:"stockStatus"`
	Origin         string             `firestore:"origin,omitempty"`
	Certifications []string           `firestore:"certifications,omitempty"`
	Specifications map[string]string  `firestore:"specifications,omitempty"`
	IsActive       bool               `firestore:"isActive"`
	Featured       bool               `firestore:"featured"`
	CreatedAt      time.Time          `firestore:"createdAt"`
	UpdatedAt      time.Time          `firestore:"updatedAt"`
}

type seoOverridesDoc struct {
	MetaTitle       string   `firestore:"metaTitle"`
	MetaDescription string   `firestore:"metaDescription"`
	Keywords        []string `firestore:"keywords"`
	CanonicalURL    string   `firestore:"canonicalUrl"`
	OGImage         string   `firestore:"ogImage"`
	NoIndex         bool     `firestore:"noIndex"`
	NoFollow        bool     `firestore:"noFollow"`
}

type productPricingDoc struct {
	Type        string   `firestore:"type"`
	DisplayText string   `firestore:"displayText"`
	BasePrice   *float64 `firestore:"basePrice"`
	Currency    string   `firestore:"currency"`
	Unit        string   `firestore:"unit"`
	// IsVisible is nil when the document predates the flag; such prices stay visible.
	IsVisible *bool `firestore:"isVisible"`
}

func (d productDocument) toDomain(id string) domain.Product {
	product := domain.Product{
		ID:             id,
		Slug:           d.Slug,
		Name:           d.Name,
		Category:       d.Category,
		Grade:          d.Grade,
		Description:    d.Description,
		Images:         d.Images,
		Tags:           d.Tags,
		StockStatus:    domain.StockStatus(d.StockStatus),
		Origin:         d.Origin,
		Certifications: d.Certifications,
		Specifications: d.Specifications,
		IsActive:       d.IsActive,
		Featured:       d.Featured,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
	if d.SEO != nil {
		product.SEO = &domain.SEOOverrides{
			MetaTitle:       d.SEO.MetaTitle,
			MetaDescription: d.SEO.MetaDescription,
			Keywords:        d.SEO.Keywords,
			CanonicalURL:    d.SEO.CanonicalURL,
			OGImage:         d.SEO.OGImage,
			NoIndex:         d.SEO.NoIndex,
			NoFollow:        d.SEO.NoFollow,
		}
	}
	// Prices explicitly hidden are dropped here so they never reach offers or meta tags.
	if d.Pricing != nil {
		visible := d.Pricing.IsVisible == nil || *d.Pricing.IsVisible
		pricing := &domain.ProductPricing{
			Type:        d.Pricing.Type,
			DisplayText: d.Pricing.DisplayText,
			Currency:    d.Pricing.Currency,
			Unit:        d.Pricing.Unit,
			IsVisible:   visible,
		}
		if visible {
			pricing.BasePrice = d.Pricing.BasePrice
		}
		product.Pricing = pricing
	}
	return product
}

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

const (
	blogPostCollection = "blogPosts"
	pageCollection     = "pages"
)

// ContentRepository reads blog posts and CMS pages.
type ContentRepository struct {
	posts *pfirestore.Collection[blogPostDocument]
	pages *pfirestore.Collection[pageDocument]
}

// NewContentRepository constructs a Firestore-backed content repository.
func NewContentRepository(provider *pfirestore.Provider) (*ContentRepository, error) {
	if provider == nil {
		return nil, errors.New("content repository requires firestore provider")
	}
	return &ContentRepository{
		posts: pfirestore.NewCollection[blogPostDocument](provider, blogPostCollection),
		pages: pfirestore.NewCollection[pageDocument](provider, pageCollection),
	}, nil
}

func (r *ContentRepository) GetPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	slug = strings.TrimSpace(slug)
	var found []domain.BlogPost
	err := r.posts.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("slug", "==", slug).Limit(1)
	}, func(id string, doc blogPostDocument) {
		found = append(found, doc.toDomain(id))
	})
	if err != nil {
		return domain.BlogPost{}, err
	}
	if len(found) == 0 {
		return domain.BlogPost{}, pfirestore.NotFound("blogPosts.bySlug", "post "+slug)
	}
	return found[0], nil
}

func (r *ContentRepository) ListPublishedPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	err := r.posts.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("status", "==", string(domain.BlogPostPublished)).OrderBy("publishedAt", firestore.Desc)
	}, func(id string, doc blogPostDocument) {
		posts = append(posts, doc.toDomain(id))
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *ContentRepository) GetPageBySlug(ctx context.Context, slug string) (domain.Page, error) {
	slug = strings.TrimSpace(slug)
	var found []domain.Page
	err := r.pages.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("slug", "==", slug).Limit(1)
	}, func(id string, doc pageDocument) {
		found = append(found, doc.toDomain(id))
	})
	if err != nil {
		return domain.Page{}, err
	}
	if len(found) == 0 {
		return domain.Page{}, pfirestore.NotFound("pages.bySlug", "page "+slug)
	}
	return found[0], nil
}

type blogPostDocument struct {
	Slug           string    `firestore:"slug"`
	Title          string    `firestore:"title"`
	Summary        string    `firestore:"excerpt"`
	Content        string    `firestore:"content"`
	Author         string    `firestore:"author"`
	Tags           []string  `firestore:"tags"`
	CategoryIDs    []string  `firestore:"categoryIds"`
	Status         string    `firestore:"status"`
	CoverImage     string    `firestore:"featuredImage"`
	SEOTitle       string    `firestore:"seoTitle"`
	SEODescription string    `firestore:"seoDescription"`
	CanonicalURL   string    `firestore:"canonicalUrl"`
	PublishedAt    time.Time `firestore:"publishedAt"`
	UpdatedAt      time.Time `firestore:"updatedAt"`
}

func (d blogPostDocument) toDomain(id string) domain.BlogPost {
	return domain.BlogPost{
		ID:             id,
		Slug:           d.Slug,
		Title:          d.Title,
		Summary:        d.Summary,
		Content:        d.Content,
		Author:         d.Author,
		Tags:           d.Tags,
		CategoryIDs:    d.CategoryIDs,
		Status:         domain.BlogPostStatus(d.Status),
		CoverImage:     d.CoverImage,
		SEOTitle:       d.SEOTitle,
		SEODescription: d.SEODescription,
		CanonicalURL:   d.CanonicalURL,
		PublishedAt:    d.PublishedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}

type pageDocument struct {
	Slug           string    `firestore:"slug"`
	Title          string    `firestore:"title"`
	Content        string    `firestore:"content"`
	SEOTitle       string    `firestore:"seoTitle"`
	SEODescription string    `firestore:"seoDescription"`
	CanonicalURL   string    `firestore:"canonicalUrl"`
	IsPublished    bool      `firestore:"isPublished"`
	UpdatedAt      time.Time `firestore:"updatedAt"`
}

func (d pageDocument) toDomain(id string) domain.Page {
	return domain.Page{
		ID:             id,
		Slug:           d.Slug,
		Title:          d.Title,
		Content:        d.Content,
		SEOTitle:       d.SEOTitle,
		SEODescription: d.SEODescription,
		CanonicalURL:   d.CanonicalURL,
		IsPublished:    d.IsPublished,
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}

package domain

import "time"

// BlogPostStatus mirrors the editorial workflow of a post.
type BlogPostStatus string

const (
	BlogPostDraft     BlogPostStatus = "draft"
	BlogPostPublished BlogPostStatus = "published"
	BlogPostArchived  BlogPostStatus = "archived"
)

// BlogPost is a markdown article authored in the admin tooling.
type BlogPost struct {
	ID             string
	Slug           string
	Title          string
	Summary        string
	Content        string
	Author         string
	Tags           []string
	CategoryIDs    []string
	Status         BlogPostStatus
	CoverImage     string
	SEOTitle       string
	SEODescription string
	CanonicalURL   string
	PublishedAt    time.Time
	UpdatedAt      time.Time
}

// Published reports whether the post is publicly visible.
func (p BlogPost) Published() bool {
	return p.Status == BlogPostPublished
}

// Page is a static content page such as About or Delivery.
type Page struct {
	ID             string
	Slug           string
	Title          string
	Content        string
	SEOTitle       string
	SEODescription string
	CanonicalURL   string
	IsPublished    bool
	UpdatedAt      time.Time
}

// TableOfContentsEntry is a heading extracted from rendered content.
type TableOfContentsEntry struct {
	Level int
	Text  string
	ID    string
}

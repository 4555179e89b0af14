package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/cms"
	"github.com/newindiatimbers8/new-india-timber-sub003/internal/repositories"
)

// ContentServiceDeps groups constructor parameters for the content service.
type ContentServiceDeps struct {
	Blog     repositories.BlogRepository
	Pages    repositories.PageRepository
	Renderer *cms.Renderer
}

type contentService struct {
	blog     repositories.BlogRepository
	pages    repositories.PageRepository
	renderer *cms.Renderer
}

// ErrContentRepositoryMissing signals that a content repository dependency is absent.
var ErrContentRepositoryMissing = errors.New("content service: content repository is not configured")

// NewContentService constructs the content service with the supplied dependencies.
func NewContentService(deps ContentServiceDeps) (ContentService, error) {
	if deps.Blog == nil || deps.Pages == nil {
		return nil, ErrContentRepositoryMissing
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = cms.NewRenderer()
	}
	return &contentService{
		blog:     deps.Blog,
		pages:    deps.Pages,
		renderer: renderer,
	}, nil
}

func (s *contentService) GetPost(ctx context.Context, slug string) (RenderedPost, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return RenderedPost{}, ErrContentNotFound
	}
	post, err := s.blog.GetPostBySlug(ctx, slug)
	if err != nil {
		return RenderedPost{}, err
	}
	if !post.Published() {
		return RenderedPost{}, ErrContentNotFound
	}
	rendered, err := s.renderer.Render(post.Content)
	if err != nil {
		return RenderedPost{}, fmt.Errorf("content service: render post %s: %w", post.ID, err)
	}
	return RenderedPost{
		Post:            post,
		HTML:            rendered.HTML,
		TableOfContents: rendered.TableOfContents,
		ReadingMinutes:  rendered.ReadingMinutes,
		WordCount:       rendered.WordCount,
	}, nil
}

func (s *contentService) GetPage(ctx context.Context, slug string) (RenderedPage, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return RenderedPage{}, ErrContentNotFound
	}
	page, err := s.pages.GetPageBySlug(ctx, slug)
	if err != nil {
		return RenderedPage{}, err
	}
	if !page.IsPublished {
		return RenderedPage{}, ErrContentNotFound
	}
	rendered, err := s.renderer.Render(page.Content)
	if err != nil {
		return RenderedPage{}, fmt.Errorf("content service: render page %s: %w", page.ID, err)
	}
	return RenderedPage{
		Page:            page,
		HTML:            rendered.HTML,
		TableOfContents: rendered.TableOfContents,
	}, nil
}

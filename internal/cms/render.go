package cms

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/domain"
)

// DefaultWordsPerMinute is the reading speed used for reading time estimates.
const DefaultWordsPerMinute = 200

// Rendered is sanitized article HTML with derived navigation aids.
type Rendered struct {
	HTML            string
	TableOfContents []domain.TableOfContentsEntry
	ReadingMinutes  int
	WordCount       int
}

// Renderer converts editor markdown into safe HTML. It is safe for concurrent use.
type Renderer struct {
	markdown       goldmark.Markdown
	policy         *bluemonday.Policy
	wordsPerMinute int
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithWordsPerMinute overrides the reading speed. Non-positive values are ignored.
func WithWordsPerMinute(wpm int) Option {
	return func(r *Renderer) {
		if wpm > 0 {
			r.wordsPerMinute = wpm
		}
	}
}

// WithPolicy replaces the sanitizer policy.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// NewRenderer builds a renderer with GitHub flavoured markdown and automatic heading ids.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy:         newArticlePolicy(),
		wordsPerMinute: DefaultWordsPerMinute,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func newArticlePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "code")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Render converts markdown, sanitizes the result and collects h2/h3 headings.
func (r *Renderer) Render(markdown string) (Rendered, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(markdown), &buf); err != nil {
		return Rendered{}, fmt.Errorf("cms: convert markdown: %w", err)
	}
	safe := r.policy.SanitizeBytes(buf.Bytes())

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(safe))
	if err != nil {
		return Rendered{}, fmt.Errorf("cms: parse rendered html: %w", err)
	}

	toc := make([]domain.TableOfContentsEntry, 0)
	doc.Find("h2, h3").Each(func(_ int, s *goquery.Selection) {
		level := 2
		if goquery.NodeName(s) == "h3" {
			level = 3
		}
		id, _ := s.Attr("id")
		toc = append(toc, domain.TableOfContentsEntry{
			Level: level,
			Text:  strings.TrimSpace(s.Text()),
			ID:    id,
		})
	})

	words := len(strings.Fields(doc.Text()))
	return Rendered{
		HTML:            string(safe),
		TableOfContents: toc,
		ReadingMinutes:  readingMinutes(words, r.wordsPerMinute),
		WordCount:       words,
	}, nil
}

func readingMinutes(words, wpm int) int {
	if words <= 0 {
		return 1
	}
	minutes := (words + wpm - 1) / wpm
	return max(1, minutes)
}

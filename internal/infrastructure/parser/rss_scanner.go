package parser

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"SecNewsScanner/internal/config"
	"SecNewsScanner/internal/domain"
	"SecNewsScanner/internal/scanner"
)

var whitespaceExpr = regexp.MustCompile(`\s+`)

// RSSScanner fetches and parses RSS/Atom feeds into article records.
type RSSScanner struct {
	parser *gofeed.Parser
}

var _ scanner.Scanner = (*RSSScanner)(nil)

// NewRSSScanner wires an HTTP client; nil falls back to a 20s-timeout default.
func NewRSSScanner(client *http.Client) *RSSScanner {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	fp := gofeed.NewParser()
	fp.Client = client
	fp.UserAgent = "SecNewsScanner/1.0"
	return &RSSScanner{parser: fp}
}

// Name identifies the strategy inside the registry.
func (s *RSSScanner) Name() string {
	return "rss"
}

// Scan downloads one feed and normalizes its items. Items without a link are
// dropped since the link is the identity of an article.
func (s *RSSScanner) Scan(ctx context.Context, feed config.FeedConfig) ([]domain.Article, error) {
	parsed, err := s.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feed.Name, err)
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	seen := map[string]struct{}{}
	for _, item := range parsed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}
		id := domain.LinkID(link)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		articles = append(articles, domain.Article{
			ID:             id,
			Title:          cleanText(item.Title),
			Description:    cleanText(item.Description),
			Link:           link,
			PubDate:        publishedAt(item),
			SourceName:     feed.Name,
			SourceColor:    feed.Color,
			SourceCategory: feed.SourceCategory(),
			Thumbnail:      thumbnail(item),
			Author:         author(item),
			Official:       feed.Official,
		})
	}

	return articles, nil
}

// cleanText strips HTML markup that feeds routinely embed in descriptions
// and collapses runs of whitespace.
func cleanText(html string) string {
	text := html
	if strings.ContainsAny(html, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
			text = doc.Text()
		}
	}
	return strings.TrimSpace(whitespaceExpr.ReplaceAllString(text, " "))
}

func publishedAt(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return time.Now().UTC()
}

func thumbnail(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

func author(item *gofeed.Item) string {
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		return item.Authors[0].Name
	}
	return ""
}

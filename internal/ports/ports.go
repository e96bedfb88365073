package ports

import (
	"context"
	"time"

	"SecNewsScanner/internal/domain"
)

// FeedSource pulls fresh articles from the configured upstream feeds.
type FeedSource interface {
	FetchAll(ctx context.Context) ([]domain.Article, error)
}

// ListQuery narrows repository reads for the API surface.
type ListQuery struct {
	MinRelevanceScore int
	SeverityLevel     string
	OfficialOnly      bool
	Since             time.Time
	Limit             int
}

// ArticleRepository persists enriched articles keyed by link hash.
type ArticleRepository interface {
	AlreadyProcessed(ctx context.Context, ids []string) (map[string]bool, error)
	SaveEnriched(ctx context.Context, article domain.Article) error
	List(ctx context.Context, q ListQuery) ([]domain.Article, error)
}

// Summarizer generates a summary for a bounded prompt and reports the token
// cost of the call.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (text string, tokens int, err error)
}

// UsageStore tracks summarization spend and recently seen links.
type UsageStore interface {
	MonthlyTokens(ctx context.Context, month time.Time) (int, error)
	AddTokens(ctx context.Context, month time.Time, tokens int) error
	SeenRecently(ctx context.Context, articleID string) (bool, error)
	MarkSeen(ctx context.Context, articleID string) error
}

// Notifier streams run digests to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when pipeline runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}

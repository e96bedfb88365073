package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"SecNewsScanner/internal/domain"
	"SecNewsScanner/internal/enrich"
	"SecNewsScanner/internal/feedview"
	"SecNewsScanner/internal/gate"
	"SecNewsScanner/internal/ports"
	"SecNewsScanner/internal/summary"
)

const digestSize = 10

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source            ports.FeedSource
	Repository        ports.ArticleRepository
	Usage             ports.UsageStore
	Summary           *summary.Service
	Notifier          ports.Notifier
	MaxArticlesPerRun int
	Logger            *slog.Logger
}

// Pipeline implements the fetch→enrich→gate→summarize→persist workflow.
type Pipeline struct {
	source      ports.FeedSource
	repository  ports.ArticleRepository
	usage       ports.UsageStore
	summary     *summary.Service
	notifier    ports.Notifier
	maxArticles int
	logger      *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:      deps.Source,
		repository:  deps.Repository,
		usage:       deps.Usage,
		summary:     deps.Summary,
		notifier:    deps.Notifier,
		maxArticles: deps.MaxArticlesPerRun,
		logger:      deps.Logger,
	}
}

// ProcessRun executes one full aggregation pass at the given instant.
func (p *Pipeline) ProcessRun(ctx context.Context, now time.Time) error {
	if p.source == nil {
		return nil
	}

	fetched, err := p.source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch feeds: %w", err)
	}

	fresh, err := p.dropKnown(ctx, fetched)
	if err != nil {
		return err
	}

	if p.maxArticles > 0 && len(fresh) > p.maxArticles {
		p.info("article cap applied", "fetched", len(fresh), "cap", p.maxArticles)
		fresh = fresh[:p.maxArticles]
	}

	var run *summary.Run
	if p.summary != nil {
		run = p.summary.NewRun(now)
	}

	processed := make([]domain.Article, 0, len(fresh))
	for _, article := range fresh {
		enriched := enrich.Enrich(article, now)
		decision := gate.Decide(enriched)

		if run != nil {
			res := run.Summarize(ctx, enriched, decision)
			enriched.Summary = res.Text
			enriched.SummaryOrigin = res.Origin
		}

		if p.repository != nil {
			if err := p.repository.SaveEnriched(ctx, enriched); err != nil {
				return fmt.Errorf("persist article %s: %w", enriched.ID, err)
			}
		}
		if p.usage != nil {
			if err := p.usage.MarkSeen(ctx, enriched.ID); err != nil {
				p.warn("mark seen failed", "article", enriched.ID, "error", err)
			}
		}

		processed = append(processed, enriched)
	}

	if run != nil {
		p.info("run complete",
			"articles", len(processed),
			"paid_calls", run.Calls(),
			"fallbacks", run.Fallbacks())
	} else {
		p.info("run complete", "articles", len(processed))
	}

	if p.notifier == nil || len(processed) == 0 {
		return nil
	}

	feedview.Sort(processed)
	top := processed
	if len(top) > digestSize {
		top = top[:digestSize]
	}

	return p.notifier.PublishDigest(ctx, buildDigestMessage(top))
}

// dropKnown removes articles already seen recently (Redis) or already
// persisted (Postgres).
func (p *Pipeline) dropKnown(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if len(articles) == 0 {
		return nil, nil
	}

	candidates := make([]domain.Article, 0, len(articles))
	if p.usage != nil {
		for _, a := range articles {
			seen, err := p.usage.SeenRecently(ctx, a.ID)
			if err != nil {
				p.warn("seen lookup failed", "article", a.ID, "error", err)
				seen = false
			}
			if !seen {
				candidates = append(candidates, a)
			}
		}
	} else {
		candidates = articles
	}

	if p.repository == nil || len(candidates) == 0 {
		return candidates, nil
	}

	ids := make([]string, len(candidates))
	for i, a := range candidates {
		ids[i] = a.ID
	}
	known, err := p.repository.AlreadyProcessed(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load processed: %w", err)
	}

	fresh := make([]domain.Article, 0, len(candidates))
	for _, a := range candidates {
		if !known[a.ID] {
			fresh = append(fresh, a)
		}
	}
	return fresh, nil
}

func buildDigestMessage(articles []domain.Article) string {
	var b []byte
	for _, a := range articles {
		b = fmt.Appendf(b, "- %s\nRelevance: %d | Severity: %s\n%s\n%s\n\n",
			a.Title,
			a.Metadata.RelevanceScore,
			a.Metadata.SeverityLevel,
			a.Summary,
			a.Link)
	}
	return string(b)
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

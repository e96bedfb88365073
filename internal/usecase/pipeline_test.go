package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"SecNewsScanner/internal/domain"
	"SecNewsScanner/internal/ports"
	"SecNewsScanner/internal/summary"
)

type fakeSource struct {
	articles []domain.Article
}

func (f *fakeSource) FetchAll(context.Context) ([]domain.Article, error) {
	return f.articles, nil
}

type fakeRepository struct {
	known map[string]bool
	saved []domain.Article
}

func (f *fakeRepository) AlreadyProcessed(_ context.Context, ids []string) (map[string]bool, error) {
	out := map[string]bool{}
	for _, id := range ids {
		if f.known[id] {
			out[id] = true
		}
	}
	return out, nil
}

func (f *fakeRepository) SaveEnriched(_ context.Context, article domain.Article) error {
	f.saved = append(f.saved, article)
	return nil
}

func (f *fakeRepository) List(context.Context, ports.ListQuery) ([]domain.Article, error) {
	return nil, nil
}

type fakeUsage struct {
	seen   map[string]bool
	marked []string
}

func (f *fakeUsage) MonthlyTokens(context.Context, time.Time) (int, error) { return 0, nil }

func (f *fakeUsage) AddTokens(context.Context, time.Time, int) error { return nil }

func (f *fakeUsage) SeenRecently(_ context.Context, id string) (bool, error) {
	return f.seen[id], nil
}

func (f *fakeUsage) MarkSeen(_ context.Context, id string) error {
	f.marked = append(f.marked, id)
	return nil
}

type fakeNotifier struct {
	digests []string
}

func (f *fakeNotifier) PublishDigest(_ context.Context, digest string) error {
	f.digests = append(f.digests, digest)
	return nil
}

func TestProcessRunEndToEnd(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	source := &fakeSource{articles: []domain.Article{
		{
			ID:      "fresh",
			Title:   "CVE-2026-11111 actively exploited, CVSS: 9.1",
			Link:    "https://example.com/1",
			PubDate: now.AddDate(0, 0, -1),
		},
		{
			ID:      "in-db",
			Title:   "Already persisted story",
			Link:    "https://example.com/2",
			PubDate: now,
		},
		{
			ID:      "in-cache",
			Title:   "Recently seen story",
			Link:    "https://example.com/3",
			PubDate: now,
		},
	}}
	repo := &fakeRepository{known: map[string]bool{"in-db": true}}
	usage := &fakeUsage{seen: map[string]bool{"in-cache": true}}
	notifier := &fakeNotifier{}
	svc := summary.NewService(nil, usage, summary.Limits{}, nil)

	p := NewPipeline(PipelineDeps{
		Source:     source,
		Repository: repo,
		Usage:      usage,
		Summary:    svc,
		Notifier:   notifier,
	})

	if err := p.ProcessRun(context.Background(), now); err != nil {
		t.Fatalf("ProcessRun error: %v", err)
	}

	// Only the genuinely new article survives dedup.
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved article, got %d", len(repo.saved))
	}
	saved := repo.saved[0]
	if saved.ID != "fresh" {
		t.Fatalf("unexpected saved article %s", saved.ID)
	}
	if !saved.Metadata.Processed {
		t.Fatalf("saved article must carry enrichment")
	}
	if len(saved.Metadata.CVEs) != 1 {
		t.Fatalf("expected extracted cve, got %v", saved.Metadata.CVEs)
	}
	if saved.SummaryOrigin != domain.SummaryExtractive {
		t.Fatalf("nil summarizer must yield extractive origin, got %s", saved.SummaryOrigin)
	}
	if saved.Summary == "" {
		t.Fatalf("summary must never be empty")
	}

	if len(usage.marked) != 1 || usage.marked[0] != "fresh" {
		t.Fatalf("expected fresh article marked seen, got %v", usage.marked)
	}

	if len(notifier.digests) != 1 {
		t.Fatalf("expected one digest, got %d", len(notifier.digests))
	}
	if !strings.Contains(notifier.digests[0], "CVE-2026-11111") {
		t.Fatalf("digest missing headline: %q", notifier.digests[0])
	}
	if !strings.Contains(notifier.digests[0], "https://example.com/1") {
		t.Fatalf("digest missing link: %q", notifier.digests[0])
	}
}

func TestProcessRunAppliesArticleCap(t *testing.T) {
	t.Parallel()

	now := time.Now()
	var articles []domain.Article
	for i := 0; i < 6; i++ {
		articles = append(articles, domain.Article{
			ID:    domain.LinkID(strings.Repeat("x", i+1)),
			Title: "Routine update",
			Link:  "https://example.com",
		})
	}

	repo := &fakeRepository{}
	p := NewPipeline(PipelineDeps{
		Source:            &fakeSource{articles: articles},
		Repository:        repo,
		MaxArticlesPerRun: 4,
	})

	if err := p.ProcessRun(context.Background(), now); err != nil {
		t.Fatalf("ProcessRun error: %v", err)
	}
	if len(repo.saved) != 4 {
		t.Fatalf("expected cap of 4 saved, got %d", len(repo.saved))
	}
}

func TestProcessRunNoNotificationWhenEmpty(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{}
	p := NewPipeline(PipelineDeps{
		Source:   &fakeSource{},
		Notifier: notifier,
	})

	if err := p.ProcessRun(context.Background(), time.Now()); err != nil {
		t.Fatalf("ProcessRun error: %v", err)
	}
	if len(notifier.digests) != 0 {
		t.Fatalf("no digest expected on an empty run")
	}
}

func TestBuildDigestMessage(t *testing.T) {
	t.Parallel()

	msg := buildDigestMessage([]domain.Article{
		{
			Title:   "Headline",
			Link:    "https://example.com/a",
			Summary: "Short summary.",
			Metadata: domain.Metadata{
				RelevanceScore: 75,
				SeverityLevel:  domain.SeverityHigh,
			},
		},
	})

	for _, fragment := range []string{"Headline", "Relevance: 75", "Severity: high", "Short summary.", "https://example.com/a"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("digest missing %q: %q", fragment, msg)
		}
	}
}

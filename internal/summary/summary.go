// Package summary orchestrates article summarization: it gates spend behind
// budget ceilings, bounds prompt sizes, and degrades to a local extractive
// summary whenever the external call is unavailable, failed, or not worth
// paying for. No path here ever surfaces an error to the display layer.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"SecNewsScanner/internal/domain"
	"SecNewsScanner/internal/ports"
)

const (
	maxPromptTitleLen       = 500
	maxPromptDescriptionLen = 2000
	maxSummaryLen           = 1000
)

// Limits caps summarization spend. Zero values disable the corresponding cap.
type Limits struct {
	MonthlyTokenBudget int
	MaxCallsPerRun     int
}

// Service produces summaries for gated articles.
type Service struct {
	summarizer ports.Summarizer
	usage      ports.UsageStore
	limits     Limits
	logger     *slog.Logger
}

// NewService wires the external summarizer and usage accounting. Either
// dependency may be nil; a nil summarizer routes everything to the
// extractive fallback.
func NewService(summarizer ports.Summarizer, usage ports.UsageStore, limits Limits, logger *slog.Logger) *Service {
	return &Service{summarizer: summarizer, usage: usage, limits: limits, logger: logger}
}

// Result is the outcome of summarizing one article.
type Result struct {
	Text         string
	Origin       domain.SummaryOrigin
	FallbackUsed bool
}

// Run tracks per-run call counters. One Run per pipeline execution.
type Run struct {
	svc       *Service
	month     time.Time
	calls     int
	fallbacks int
}

// NewRun starts accounting for a single pipeline execution; now selects the
// month whose token budget applies.
func (s *Service) NewRun(now time.Time) *Run {
	return &Run{svc: s, month: now}
}

// Calls returns how many paid calls this run attempted.
func (r *Run) Calls() int { return r.calls }

// Fallbacks returns how many articles degraded to the extractive summary.
func (r *Run) Fallbacks() int { return r.fallbacks }

// Summarize produces a summary for the article. The paid path is taken only
// when the gate decision allows it and no budget ceiling is exhausted;
// everything else, including any call failure, falls back to the extractive
// summary.
func (r *Run) Summarize(ctx context.Context, article domain.Article, decision domain.FilterDecision) Result {
	s := r.svc

	if !decision.Process || s.summarizer == nil {
		return r.fallback(article)
	}

	if s.limits.MaxCallsPerRun > 0 && r.calls >= s.limits.MaxCallsPerRun {
		return r.fallback(article)
	}

	if s.limits.MonthlyTokenBudget > 0 && s.usage != nil {
		spent, err := s.usage.MonthlyTokens(ctx, r.month)
		if err != nil {
			// Unknown spend means unverifiable budget; don't pay blind.
			s.warn("usage store unavailable", "error", err)
			return r.fallback(article)
		}
		if spent >= s.limits.MonthlyTokenBudget {
			return r.fallback(article)
		}
	}

	r.calls++
	text, tokens, err := s.summarizer.Summarize(ctx, buildPrompt(article))
	if err != nil {
		s.warn("summarization call failed", "article", article.ID, "error", err)
		return r.fallback(article)
	}

	if s.usage != nil && tokens > 0 {
		if err := s.usage.AddTokens(ctx, r.month, tokens); err != nil {
			s.warn("recording token usage failed", "error", err)
		}
	}

	text = truncate(text, maxSummaryLen)
	if text == "" {
		return r.fallback(article)
	}

	return Result{Text: text, Origin: domain.SummaryAI}
}

func (r *Run) fallback(article domain.Article) Result {
	r.fallbacks++
	return Result{
		Text:         ExtractiveSummary(article),
		Origin:       domain.SummaryExtractive,
		FallbackUsed: true,
	}
}

func buildPrompt(article domain.Article) string {
	return fmt.Sprintf("Title: %s\n\nDescription: %s",
		truncate(article.Title, maxPromptTitleLen),
		truncate(article.Description, maxPromptDescriptionLen))
}

func (s *Service) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

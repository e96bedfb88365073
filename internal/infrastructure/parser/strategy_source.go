package parser

import (
	"context"
	"fmt"
	"log/slog"

	"SecNewsScanner/internal/config"
	"SecNewsScanner/internal/domain"
	"SecNewsScanner/internal/ports"
	"SecNewsScanner/internal/scanner"
)

// StrategySource implements FeedSource via registered scanner strategies.
// Individual feeds are independently failable: a broken feed is logged and
// skipped, the rest of the run proceeds.
type StrategySource struct {
	registry *scanner.Registry
	feeds    []config.FeedConfig
	logger   *slog.Logger
}

var _ ports.FeedSource = (*StrategySource)(nil)

// NewStrategySource wires the scanner registry with config-defined feeds.
func NewStrategySource(reg *scanner.Registry, feeds []config.FeedConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		feeds:    feeds,
		logger:   log,
	}
}

// FetchAll iterates over configured feeds and executes their scanners.
func (s *StrategySource) FetchAll(ctx context.Context) ([]domain.Article, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	s.debug("fetch all", "feeds", len(s.feeds))

	var aggregated []domain.Article
	for _, feed := range s.feeds {
		strategy, err := s.registry.Resolve(feed.Scanner)
		if err != nil {
			s.warn("feed skipped", "feed", feed.Name, "error", err)
			continue
		}

		results, err := strategy.Scan(ctx, feed)
		if err != nil {
			s.warn("feed fetch failed", "feed", feed.Name, "error", err)
			continue
		}

		s.debug("feed produced articles", "feed", feed.Name, "count", len(results))
		aggregated = append(aggregated, results...)
	}

	s.debug("strategy source done", "total_articles", len(aggregated))
	return aggregated, nil
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *StrategySource) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

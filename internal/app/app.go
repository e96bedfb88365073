package app

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"SecNewsScanner/internal/config"
	"SecNewsScanner/internal/infrastructure/cache"
	"SecNewsScanner/internal/infrastructure/llm"
	"SecNewsScanner/internal/infrastructure/parser"
	"SecNewsScanner/internal/infrastructure/scheduler"
	"SecNewsScanner/internal/infrastructure/storage"
	"SecNewsScanner/internal/infrastructure/telegram"
	"SecNewsScanner/internal/logging"
	"SecNewsScanner/internal/ports"
	"SecNewsScanner/internal/scanner"
	"SecNewsScanner/internal/summary"
	"SecNewsScanner/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	db       *sql.DB
	redis    *redis.Client
}

// New builds a runnable application instance. Missing collaborators degrade
// rather than abort: without Postgres there is no dedupe/persistence,
// without an API key every summary is extractive.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := scanner.NewRegistry()
	registry.Register(parser.NewRSSScanner(nil))

	source := parser.NewStrategySource(registry, cfg.Feeds, baseLogger.With("component", "source"))

	var db *sql.DB
	var repository ports.ArticleRepository
	if cfg.Database.DSN != "" {
		opened, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			baseLogger.Warn("postgres unavailable, running without persistence", "error", err)
		} else {
			db = opened
			repository = storage.NewPostgresRepository(db)
		}
	}

	var redisClient *redis.Client
	var usage ports.UsageStore
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		usage = cache.NewRedisStore(redisClient)
	}

	var summarizer ports.Summarizer
	if cfg.OpenAI.APIKey != "" {
		summarizer = llm.NewOpenAIClient(cfg.OpenAI)
	}

	summaryService := summary.NewService(summarizer, usage, summary.Limits{
		MonthlyTokenBudget: cfg.Budget.MonthlyTokenBudget,
		MaxCallsPerRun:     cfg.Budget.MaxCallsPerRun,
	}, baseLogger.With("component", "summary"))

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:            source,
		Repository:        repository,
		Usage:             usage,
		Summary:           summaryService,
		Notifier:          notifier,
		MaxArticlesPerRun: cfg.Budget.MaxArticlesPerRun,
		Logger:            baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		pipeline: pipeline,
		db:       db,
		redis:    redisClient,
	}
}

// RunOnce performs a single pipeline execution.
func (a *Application) RunOnce(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	now := time.Now().In(a.cfg.Scheduler.Location())
	return a.pipeline.ProcessRun(ctx, now)
}

// RunScheduled starts the recurring scheduler and blocks until the context
// is cancelled.
func (a *Application) RunScheduled(ctx context.Context) error {
	driver := scheduler.NewCronScheduler(a.cfg.Scheduler.CronExpression)
	sched := usecase.NewScheduler(driver, a.pipeline)

	if err := sched.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return sched.Stop(context.Background())
}

// Close releases held connections.
func (a *Application) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}

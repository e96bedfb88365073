package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"SecNewsScanner/internal/api"
	"SecNewsScanner/internal/config"
	"SecNewsScanner/internal/infrastructure/storage"
	"SecNewsScanner/internal/logging"
	"SecNewsScanner/pkg/logger"
)

func main() {
	startup := logger.New("secnewsapi")

	_ = godotenv.Load()

	cfg := config.Load()
	slogger := logging.New(cfg.Logging.Level)

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		startup.Fatalf("open postgres: %v", err)
	}
	defer db.Close()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewServer(storage.NewPostgresRepository(db), slogger.With("component", "api")).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		slogger.Info("api listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			startup.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slogger.Error("shutdown error", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AbhiSharma69/revenue-rescue/internal/api"
	"github.com/AbhiSharma69/revenue-rescue/internal/config"
	"github.com/AbhiSharma69/revenue-rescue/internal/conversation"
	"github.com/AbhiSharma69/revenue-rescue/internal/gemini"
	"github.com/AbhiSharma69/revenue-rescue/internal/pipeline"
)

func main() {
	// A missing .env is fine; real deployments inject the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("revenue-rescue starting", "port", cfg.Port, "model", cfg.GeminiModel)

	// Session persistence
	store, err := conversation.NewFileStore(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	msgs, err := store.LoadConversation()
	if err != nil {
		slog.Warn("failed to load persisted conversation, starting fresh", "error", err)
	}
	ds, err := store.LoadDataset()
	if err != nil {
		slog.Warn("failed to load persisted dataset, starting without one", "error", err)
	}
	state := conversation.Restore(msgs, ds)
	slog.Info("session restored", "messages", len(msgs), "has_dataset", ds != nil)

	// Gemini client — the key travels only in the request header
	llm := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if cfg.GeminiBaseURL != "" {
		llm.SetBaseURL(cfg.GeminiBaseURL)
	}
	slog.Info("gemini client ready", "model", cfg.GeminiModel)

	p := pipeline.New(llm, store,
		gemini.GenerationConfig{Temperature: cfg.ChatTemperature, MaxOutputTokens: cfg.ChatMaxTokens},
		gemini.GenerationConfig{Temperature: cfg.ReportTemperature, MaxOutputTokens: cfg.ReportMaxTokens},
		cfg.RequestTimeout, slog.Default())

	srv := api.NewServer(cfg.Port, p, state, store, slog.Default())
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("revenue-rescue ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("shutdown did not complete cleanly", "error", err)
	}
	slog.Info("revenue-rescue stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

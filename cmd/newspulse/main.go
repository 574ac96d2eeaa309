package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/collect"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/config"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/dataset"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/sentiment"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/tickers"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	out := flag.String("out", "", "output path (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("starting news sentiment collector", "version", version.Version)

	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *out != "" {
		cfg.News.Output = *out
	}

	universe, err := tickers.Resolve(cfg.News.Tickers, cfg.News.Preset)
	if err != nil {
		logger.Error("failed to resolve tickers", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	collector := collect.NewNewsCollector(collect.NewsConfig{
		FeedURL:      cfg.News.FeedURL,
		LookbackDays: cfg.News.LookbackDays,
	}, sentiment.NewScorer(), logger)

	digest, err := collector.Collect(ctx, universe)
	if err != nil {
		logger.Error("collection failed", "error", err)
		os.Exit(1)
	}

	if err := dataset.WriteJSON(cfg.News.Output, digest); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}

	logger.Info("done",
		"run_id", digest.RunID,
		"reports", len(digest.Reports),
		"output", cfg.News.Output,
	)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

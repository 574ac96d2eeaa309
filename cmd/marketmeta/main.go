package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/collect"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/config"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/dataset"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/tickers"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/version"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/yahoo"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	out := flag.String("out", "", "output path, .json or .csv (overrides config)")
	withHistory := flag.Bool("history", false, "also collect price history")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("starting market metadata collector", "version", version.Version)

	// Pick up a local .env before config env expansion.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *out != "" {
		cfg.Collector.Output = *out
	}
	if *withHistory {
		cfg.Collector.History.Enabled = true
	}

	universe, err := tickers.Resolve(cfg.Collector.Tickers, cfg.Collector.Preset)
	if err != nil {
		logger.Error("failed to resolve tickers", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := yahoo.NewClient(
		cfg.API.BaseURL,
		cfg.API.Token,
		yahoo.WithLogger(logger),
		yahoo.WithTimeout(cfg.API.Timeout),
		yahoo.WithRetries(cfg.API.MaxRetries, time.Second),
	)

	collector := collect.NewCollector(client, logger)
	rows, err := collector.Collect(ctx, universe)
	if err != nil {
		logger.Error("collection failed", "error", err)
		os.Exit(1)
	}

	if err := dataset.WriteRecords(cfg.Collector.Output, rows); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}

	logger.Info("metadata written",
		"rows", len(rows),
		"requested", len(universe),
		"output", cfg.Collector.Output,
	)

	if cfg.Collector.History.Enabled {
		if err := collectHistory(ctx, cfg, client, universe, logger); err != nil {
			logger.Error("history collection failed", "error", err)
			os.Exit(1)
		}
	}
}

// collectHistory fetches per-ticker candles and writes one file per ticker
// under the configured directory.
func collectHistory(ctx context.Context, cfg *config.Config, client *yahoo.Client, universe []string, logger *slog.Logger) error {
	hc := collect.NewHistoryCollector(collect.HistoryConfig{
		Range:       cfg.Collector.History.Range,
		Interval:    cfg.Collector.History.Interval,
		Concurrency: cfg.Collector.History.Concurrency,
	}, client, logger)

	histories, err := hc.Collect(ctx, universe)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Collector.History.OutputDir, 0o755); err != nil {
		return err
	}

	for _, hist := range histories {
		path := filepath.Join(cfg.Collector.History.OutputDir, hist.Ticker+"_price.json")
		if err := dataset.WriteJSON(path, hist); err != nil {
			return err
		}
	}

	logger.Info("history written",
		"tickers", len(histories),
		"dir", cfg.Collector.History.OutputDir,
	)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

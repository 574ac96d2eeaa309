package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/config"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/dataset"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/generate"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/tickers"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	count := flag.Int("count", 0, "number of posts to generate (overrides config)")
	out := flag.String("out", "", "output path (overrides config)")
	seed := flag.Int64("seed", 0, "RNG seed, 0 = time-seeded (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("starting post generator", "version", version.Version)

	// Pick up a local .env before config env expansion.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *count > 0 {
		cfg.Generator.Count = *count
	}
	if *out != "" {
		cfg.Generator.Output = *out
	}
	if seedSet(flag.CommandLine) {
		cfg.Generator.Seed = *seed
	}

	universe, err := tickers.Resolve(cfg.Generator.Tickers, cfg.Generator.Preset)
	if err != nil {
		logger.Error("failed to resolve tickers", "error", err)
		os.Exit(1)
	}

	gen, err := generate.New(generate.Config{
		Count:          cfg.Generator.Count,
		Tickers:        universe,
		LookbackDays:   cfg.Generator.LookbackDays,
		Seed:           cfg.Generator.Seed,
		PositiveWeight: cfg.Generator.Weights.Positive,
		NegativeWeight: cfg.Generator.Weights.Negative,
		NeutralWeight:  cfg.Generator.Weights.Neutral,
	}, logger)
	if err != nil {
		logger.Error("invalid generator configuration", "error", err)
		os.Exit(1)
	}

	posts := gen.Generate()

	if err := dataset.WriteJSON(cfg.Generator.Output, posts); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}

	logger.Info("done",
		"posts", len(posts),
		"output", cfg.Generator.Output,
	)
}

// seedSet reports whether -seed was given on the command line, so that an
// explicit -seed 0 can force time-seeding over a config-pinned seed.
func seedSet(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	return set
}

// loadConfig loads and validates the config file, or falls back to pure
// defaults when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

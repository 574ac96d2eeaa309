package config

import "time"

// Config is the root configuration shared by the dataset commands. Each
// command reads its own section plus the api section.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Generator GeneratorConfig `yaml:"generator"`
	Collector CollectorConfig `yaml:"collector"`
	News      NewsConfig      `yaml:"news"`
}

// APIConfig holds market-data API settings.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Token      string        `yaml:"token"` // Optional credential, usually ${MARKET_API_TOKEN}
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// GeneratorConfig holds synthetic post generator settings.
type GeneratorConfig struct {
	Count        int              `yaml:"count"`
	Tickers      []string         `yaml:"tickers"` // Explicit list; wins over preset
	Preset       string           `yaml:"preset"`  // Named list from internal/tickers
	Output       string           `yaml:"output"`
	Seed         int64            `yaml:"seed"` // 0 = time-seeded
	LookbackDays int              `yaml:"lookback_days"`
	Weights      SentimentWeights `yaml:"sentiment_weights"`
}

// SentimentWeights is the label distribution for generated posts.
// Zero value means uniform.
type SentimentWeights struct {
	Positive float64 `yaml:"positive"`
	Negative float64 `yaml:"negative"`
	Neutral  float64 `yaml:"neutral"`
}

// IsZero reports whether no weight was configured.
func (w SentimentWeights) IsZero() bool {
	return w.Positive == 0 && w.Negative == 0 && w.Neutral == 0
}

// CollectorConfig holds market metadata collector settings.
type CollectorConfig struct {
	Tickers []string      `yaml:"tickers"`
	Preset  string        `yaml:"preset"`
	Output  string        `yaml:"output"` // .json or .csv
	History HistoryConfig `yaml:"history"`
}

// HistoryConfig holds price history collection settings.
type HistoryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Range       string `yaml:"range"`    // e.g. "30d"
	Interval    string `yaml:"interval"` // e.g. "1h"
	OutputDir   string `yaml:"output_dir"`
	Concurrency int    `yaml:"concurrency"`
}

// NewsConfig holds news sentiment collector settings.
type NewsConfig struct {
	Tickers      []string `yaml:"tickers"`
	Preset       string   `yaml:"preset"`
	FeedURL      string   `yaml:"feed_url"` // printf template, %s = ticker
	Output       string   `yaml:"output"`
	LookbackDays int      `yaml:"lookback_days"`
}

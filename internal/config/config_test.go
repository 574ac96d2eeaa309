package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	yaml := `
api:
  base_url: https://finance.example.com
generator:
  count: 500
  tickers: [AAPL, TSLA]
collector:
  output: market.csv
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://finance.example.com" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://finance.example.com")
	}
	if cfg.Generator.Count != 500 {
		t.Errorf("Generator.Count = %d, want %d", cfg.Generator.Count, 500)
	}
	if len(cfg.Generator.Tickers) != 2 || cfg.Generator.Tickers[0] != "AAPL" {
		t.Errorf("Generator.Tickers = %v, want [AAPL TSLA]", cfg.Generator.Tickers)
	}
	if cfg.Collector.Output != "market.csv" {
		t.Errorf("Collector.Output = %q, want %q", cfg.Collector.Output, "market.csv")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_API_TOKEN", "secret123")

	yaml := `
api:
  token: ${TEST_API_TOKEN}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.Token != "secret123" {
		t.Errorf("API.Token = %q, want %q", cfg.API.Token, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
generator:
  preset: tech
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want default %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("API.Timeout = %v, want default %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.Generator.Count != DefaultPostCount {
		t.Errorf("Generator.Count = %d, want default %d", cfg.Generator.Count, DefaultPostCount)
	}
	if cfg.Generator.Output != DefaultPostsOutput {
		t.Errorf("Generator.Output = %q, want default %q", cfg.Generator.Output, DefaultPostsOutput)
	}
	if cfg.Collector.History.Concurrency != DefaultHistoryConcurrency {
		t.Errorf("History.Concurrency = %d, want default %d", cfg.Collector.History.Concurrency, DefaultHistoryConcurrency)
	}
	if cfg.News.FeedURL != DefaultFeedURL {
		t.Errorf("News.FeedURL = %q, want default %q", cfg.News.FeedURL, DefaultFeedURL)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return *Default()
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: "api.base_url is required",
		},
		{
			name:    "non-positive count",
			mutate:  func(c *Config) { c.Generator.Count = 0 },
			wantErr: "generator.count must be >= 1, got 0",
		},
		{
			name:    "negative count",
			mutate:  func(c *Config) { c.Generator.Count = -5 },
			wantErr: "generator.count must be >= 1, got -5",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Generator.Weights.Positive = -1 },
			wantErr: "generator.sentiment_weights must be non-negative",
		},
		{
			name:    "zero history concurrency",
			mutate:  func(c *Config) { c.Collector.History.Concurrency = -1 },
			wantErr: "collector.history.concurrency must be >= 1",
		},
		{
			name:    "feed url without placeholder",
			mutate:  func(c *Config) { c.News.FeedURL = "https://example.com/rss" },
			wantErr: "news.feed_url must contain a %s ticker placeholder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

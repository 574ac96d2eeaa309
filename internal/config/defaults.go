package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL    = "https://query1.finance.yahoo.com"
	DefaultAPITimeout = 30 * time.Second
	DefaultMaxRetries = 3

	DefaultPostCount       = 1000
	DefaultPostsOutput     = "synthetic_posts.json"
	DefaultLookbackDays    = 90
	DefaultCollectorOutput = "market_metadata.json"

	DefaultHistoryRange       = "30d"
	DefaultHistoryInterval    = "1h"
	DefaultHistoryDir         = "price_data"
	DefaultHistoryConcurrency = 5

	DefaultFeedURL          = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"
	DefaultNewsOutput       = "news_sentiment.json"
	DefaultNewsLookbackDays = 7
)

// Default returns a Config with every default applied, for running without
// a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Generator defaults
	if c.Generator.Count == 0 {
		c.Generator.Count = DefaultPostCount
	}
	if c.Generator.Output == "" {
		c.Generator.Output = DefaultPostsOutput
	}
	if c.Generator.LookbackDays == 0 {
		c.Generator.LookbackDays = DefaultLookbackDays
	}

	// Collector defaults
	if c.Collector.Output == "" {
		c.Collector.Output = DefaultCollectorOutput
	}
	if c.Collector.History.Range == "" {
		c.Collector.History.Range = DefaultHistoryRange
	}
	if c.Collector.History.Interval == "" {
		c.Collector.History.Interval = DefaultHistoryInterval
	}
	if c.Collector.History.OutputDir == "" {
		c.Collector.History.OutputDir = DefaultHistoryDir
	}
	if c.Collector.History.Concurrency == 0 {
		c.Collector.History.Concurrency = DefaultHistoryConcurrency
	}

	// News defaults
	if c.News.FeedURL == "" {
		c.News.FeedURL = DefaultFeedURL
	}
	if c.News.Output == "" {
		c.News.Output = DefaultNewsOutput
	}
	if c.News.LookbackDays == 0 {
		c.News.LookbackDays = DefaultNewsLookbackDays
	}
}

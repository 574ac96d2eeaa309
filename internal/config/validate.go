package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.MaxRetries < 0 {
		return errors.New("api.max_retries must be >= 0")
	}

	if c.Generator.Count < 1 {
		return fmt.Errorf("generator.count must be >= 1, got %d", c.Generator.Count)
	}
	if c.Generator.LookbackDays < 1 {
		return fmt.Errorf("generator.lookback_days must be >= 1, got %d", c.Generator.LookbackDays)
	}
	if err := c.Generator.Weights.validate(); err != nil {
		return err
	}

	if c.Collector.History.Concurrency < 1 {
		return errors.New("collector.history.concurrency must be >= 1")
	}

	if c.News.LookbackDays < 1 {
		return fmt.Errorf("news.lookback_days must be >= 1, got %d", c.News.LookbackDays)
	}
	if c.News.FeedURL != "" && !strings.Contains(c.News.FeedURL, "%s") {
		return errors.New("news.feed_url must contain a %s ticker placeholder")
	}

	return nil
}

func (w SentimentWeights) validate() error {
	if w.Positive < 0 || w.Negative < 0 || w.Neutral < 0 {
		return errors.New("generator.sentiment_weights must be non-negative")
	}
	if !w.IsZero() && w.Positive+w.Negative+w.Neutral <= 0 {
		return errors.New("generator.sentiment_weights must sum to a positive value")
	}
	return nil
}

package collect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/model"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/yahoo"
)

// QuoteSource fetches the current quote for one symbol.
type QuoteSource interface {
	GetQuote(ctx context.Context, symbol string) (*yahoo.APIQuote, error)
}

// Collector gathers one metadata row per ticker, sequentially.
type Collector struct {
	source QuoteSource
	logger *slog.Logger
}

// NewCollector creates a metadata collector.
func NewCollector(source QuoteSource, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{source: source, logger: logger}
}

// Collect fetches metadata for each ticker in order. Failed tickers are
// skipped with a warning; the result keeps input order with no duplicates.
func (c *Collector) Collect(ctx context.Context, tickers []string) ([]model.TickerRecord, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("ticker list is empty")
	}

	rows := make([]model.TickerRecord, 0, len(tickers))
	for _, ticker := range tickers {
		quote, err := c.source.GetQuote(ctx, ticker)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("skipping ticker", "ticker", ticker, "error", err)
			continue
		}

		rows = append(rows, quote.ToRecord())
		c.logger.Debug("fetched quote", "ticker", ticker)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("all %d tickers failed", len(tickers))
	}

	return rows, nil
}

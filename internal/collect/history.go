package collect

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/model"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/yahoo"
)

// ChartSource fetches OHLCV history for one symbol.
type ChartSource interface {
	GetChart(ctx context.Context, symbol, rng, interval string) (*yahoo.APIChart, error)
}

// HistoryConfig holds price history collection settings.
type HistoryConfig struct {
	Range       string // e.g. "30d"
	Interval    string // e.g. "1h"
	Concurrency int    // Max in-flight fetches
}

// HistoryCollector gathers per-ticker candle history with bounded
// concurrency and enriches it with rolling indicators.
type HistoryCollector struct {
	cfg    HistoryConfig
	source ChartSource
	logger *slog.Logger
}

// NewHistoryCollector creates a history collector.
func NewHistoryCollector(cfg HistoryConfig, source ChartSource, logger *slog.Logger) *HistoryCollector {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 5
	}
	return &HistoryCollector{cfg: cfg, source: source, logger: logger}
}

// Collect fetches history for every ticker. Results keep input order;
// failed tickers are skipped with a warning.
func (h *HistoryCollector) Collect(ctx context.Context, tickers []string) ([]model.PriceHistory, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("ticker list is empty")
	}

	results := make([]*model.PriceHistory, len(tickers))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.cfg.Concurrency)

	for i, ticker := range tickers {
		i, ticker := i, ticker
		g.Go(func() error {
			chart, err := h.source.GetChart(gctx, ticker, h.cfg.Range, h.cfg.Interval)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				h.logger.Warn("skipping ticker history", "ticker", ticker, "error", err)
				return nil
			}

			candles := chart.ToCandles()
			EnrichIndicators(candles)

			hist := &model.PriceHistory{
				Ticker:   ticker,
				Interval: h.cfg.Interval,
				Candles:  candles,
				Metadata: historyMetadata(h.cfg.Range, candles),
			}

			mu.Lock()
			results[i] = hist
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]model.PriceHistory, 0, len(tickers))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("all %d tickers failed", len(tickers))
	}
	return out, nil
}

func historyMetadata(rng string, candles []model.Candle) model.HistoryMetadata {
	md := model.HistoryMetadata{
		Range:       rng,
		DataPoints:  len(candles),
		CollectedAt: time.Now().UTC(),
	}
	if len(candles) > 0 {
		md.StartTime = candles[0].Timestamp
		md.EndTime = candles[len(candles)-1].Timestamp
	}
	return md
}

// EnrichIndicators computes rolling 5-bar volatility, momentum, and volume
// ratio in place. Series of ten bars or fewer are left untouched, as are
// bars before the window is full.
func EnrichIndicators(candles []model.Candle) {
	const window = 5
	if len(candles) <= 2*window {
		return
	}

	for i := window; i < len(candles); i++ {
		var sum, sumVol float64
		for j := i - window; j < i; j++ {
			sum += candles[j].Close
			sumVol += float64(candles[j].Volume)
		}
		mean := sum / window

		if mean != 0 {
			var variance float64
			for j := i - window; j < i; j++ {
				d := candles[j].Close - mean
				variance += d * d
			}
			v := round2(math.Sqrt(variance/window) / mean * 100)
			candles[i].Volatility5 = &v
		}

		if base := candles[i-window].Close; base != 0 {
			m := round2((candles[i].Close - base) / base * 100)
			candles[i].Momentum5 = &m
		}

		if avgVol := sumVol / window; avgVol > 0 {
			r := round2(float64(candles[i].Volume) / avgVol)
			candles[i].VolumeRatio5 = &r
		}
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

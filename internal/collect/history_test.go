package collect

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/model"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/yahoo"
)

// fakeChartSource serves a fixed two-bar chart per symbol.
type fakeChartSource struct {
	fail map[string]bool

	mu       sync.Mutex
	inflight int32
	maxSeen  int32
	calls    atomic.Int32
}

func (f *fakeChartSource) GetChart(ctx context.Context, symbol, rng, interval string) (*yahoo.APIChart, error) {
	f.calls.Add(1)

	f.mu.Lock()
	f.inflight++
	if f.inflight > f.maxSeen {
		f.maxSeen = f.inflight
	}
	f.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	f.mu.Lock()
	f.inflight--
	f.mu.Unlock()

	if f.fail[symbol] {
		return nil, fmt.Errorf("boom: %s", symbol)
	}

	price := func(v float64) *float64 { return &v }
	vol := func(v int64) *int64 { return &v }
	return &yahoo.APIChart{
		Timestamp: []int64{1700000000, 1700003600},
		Indicators: yahoo.ChartIndicators{Quote: []yahoo.ChartQuote{{
			Open:   []*float64{price(10), price(11)},
			High:   []*float64{price(12), price(12)},
			Low:    []*float64{price(9), price(10)},
			Close:  []*float64{price(11), price(11.5)},
			Volume: []*int64{vol(100), vol(150)},
		}}},
	}, nil
}

func TestHistoryCollect(t *testing.T) {
	t.Run("all succeed in input order", func(t *testing.T) {
		src := &fakeChartSource{}
		hc := NewHistoryCollector(HistoryConfig{Range: "30d", Interval: "1h", Concurrency: 2}, src, nil)

		input := []string{"AAPL", "TSLA", "NVDA"}
		got, err := hc.Collect(context.Background(), input)
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}

		if len(got) != 3 {
			t.Fatalf("histories = %d, want 3", len(got))
		}
		for i, h := range got {
			if h.Ticker != input[i] {
				t.Errorf("history[%d] = %q, want %q", i, h.Ticker, input[i])
			}
			if h.Interval != "1h" {
				t.Errorf("history[%d].Interval = %q, want 1h", i, h.Interval)
			}
			if h.Metadata.DataPoints != len(h.Candles) {
				t.Errorf("history[%d] metadata count mismatch", i)
			}
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		src := &fakeChartSource{}
		hc := NewHistoryCollector(HistoryConfig{Concurrency: 2}, src, nil)

		tickers := []string{"A", "B", "C", "D", "E", "F"}
		if _, err := hc.Collect(context.Background(), tickers); err != nil {
			t.Fatalf("Collect failed: %v", err)
		}
		if src.maxSeen > 2 {
			t.Errorf("max concurrent fetches = %d, want <= 2", src.maxSeen)
		}
	})

	t.Run("skips failed ticker", func(t *testing.T) {
		src := &fakeChartSource{fail: map[string]bool{"TSLA": true}}
		hc := NewHistoryCollector(HistoryConfig{Concurrency: 1}, src, nil)

		got, err := hc.Collect(context.Background(), []string{"AAPL", "TSLA"})
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}
		if len(got) != 1 || got[0].Ticker != "AAPL" {
			t.Errorf("histories = %+v, want only AAPL", got)
		}
	})

	t.Run("all fail", func(t *testing.T) {
		src := &fakeChartSource{fail: map[string]bool{"AAPL": true}}
		hc := NewHistoryCollector(HistoryConfig{Concurrency: 1}, src, nil)

		if _, err := hc.Collect(context.Background(), []string{"AAPL"}); err == nil {
			t.Fatal("expected error when every ticker fails")
		}
	})

	t.Run("empty ticker list", func(t *testing.T) {
		hc := NewHistoryCollector(HistoryConfig{}, &fakeChartSource{}, nil)
		if _, err := hc.Collect(context.Background(), nil); err == nil {
			t.Fatal("expected error for empty ticker list")
		}
	})
}

func TestEnrichIndicators(t *testing.T) {
	mkCandles := func(closes []float64, volumes []int64) []model.Candle {
		candles := make([]model.Candle, len(closes))
		for i := range closes {
			candles[i] = model.Candle{Close: closes[i], Volume: volumes[i]}
		}
		return candles
	}

	t.Run("ten bars or fewer leaves candles untouched", func(t *testing.T) {
		for _, n := range []int{5, 6, 10} {
			closes := make([]float64, n)
			volumes := make([]int64, n)
			for i := range closes {
				closes[i] = float64(i + 1)
				volumes[i] = 1
			}
			candles := mkCandles(closes, volumes)
			EnrichIndicators(candles)
			for i, c := range candles {
				if c.Volatility5 != nil || c.Momentum5 != nil || c.VolumeRatio5 != nil {
					t.Errorf("%d bars: candle[%d] unexpectedly enriched", n, i)
				}
			}
		}
	})

	t.Run("computes five-bar window", func(t *testing.T) {
		// Flat closes: volatility 0, momentum 0, steady volume ratio 1.
		candles := mkCandles(
			[]float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
			[]int64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100},
		)
		EnrichIndicators(candles)

		last := candles[10]
		if last.Volatility5 == nil || *last.Volatility5 != 0 {
			t.Errorf("Volatility5 = %v, want 0", last.Volatility5)
		}
		if last.Momentum5 == nil || *last.Momentum5 != 0 {
			t.Errorf("Momentum5 = %v, want 0", last.Momentum5)
		}
		if last.VolumeRatio5 == nil || *last.VolumeRatio5 != 1 {
			t.Errorf("VolumeRatio5 = %v, want 1", last.VolumeRatio5)
		}

		// Bars before the window stay unset.
		if candles[4].Momentum5 != nil {
			t.Error("candle[4] should not be enriched")
		}
	})

	t.Run("momentum tracks price change", func(t *testing.T) {
		candles := mkCandles(
			[]float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 110},
			[]int64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 200},
		)
		EnrichIndicators(candles)

		last := candles[10]
		if last.Momentum5 == nil || *last.Momentum5 != 10 {
			t.Errorf("Momentum5 = %v, want 10 (pct)", last.Momentum5)
		}
		if last.VolumeRatio5 == nil || *last.VolumeRatio5 != 2 {
			t.Errorf("VolumeRatio5 = %v, want 2", last.VolumeRatio5)
		}
	})
}

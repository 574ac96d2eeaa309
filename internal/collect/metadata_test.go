package collect

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/tickers"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/yahoo"
)

// fakeQuoteSource returns canned quotes and errors per symbol.
type fakeQuoteSource struct {
	fail  map[string]bool
	calls []string
}

func (f *fakeQuoteSource) GetQuote(ctx context.Context, symbol string) (*yahoo.APIQuote, error) {
	f.calls = append(f.calls, symbol)
	if f.fail[symbol] {
		return nil, fmt.Errorf("boom: %s", symbol)
	}
	return &yahoo.APIQuote{
		Symbol:             symbol,
		ShortName:          symbol + " Corp",
		Currency:           "USD",
		RegularMarketPrice: 100,
	}, nil
}

func TestCollect(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		src := &fakeQuoteSource{}
		c := NewCollector(src, nil)

		rows, err := c.Collect(context.Background(), []string{"AAPL", "TSLA", "NVDA"})
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}

		if len(rows) != 3 {
			t.Fatalf("rows = %d, want 3", len(rows))
		}
		seen := make(map[string]bool)
		for i, r := range rows {
			if seen[r.Ticker] {
				t.Errorf("duplicate ticker %q", r.Ticker)
			}
			seen[r.Ticker] = true
			if r.Name == "" || r.Currency != "USD" {
				t.Errorf("row[%d] incomplete: %+v", i, r)
			}
		}
	})

	t.Run("keeps input order", func(t *testing.T) {
		src := &fakeQuoteSource{}
		c := NewCollector(src, nil)

		input := []string{"NVDA", "AAPL", "TSLA"}
		rows, err := c.Collect(context.Background(), input)
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}
		for i, r := range rows {
			if r.Ticker != input[i] {
				t.Errorf("row[%d] = %q, want %q", i, r.Ticker, input[i])
			}
		}
	})

	t.Run("skips failed ticker", func(t *testing.T) {
		src := &fakeQuoteSource{fail: map[string]bool{"TSLA": true}}
		c := NewCollector(src, nil)

		rows, err := c.Collect(context.Background(), []string{"AAPL", "TSLA", "NVDA"})
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("rows = %d, want 2", len(rows))
		}
		for _, r := range rows {
			if r.Ticker == "TSLA" {
				t.Error("failed ticker present in output")
			}
		}
		// The remaining tickers must still have been attempted.
		if len(src.calls) != 3 {
			t.Errorf("calls = %v, want all 3 attempted", src.calls)
		}
	})

	t.Run("all fail", func(t *testing.T) {
		src := &fakeQuoteSource{fail: map[string]bool{"AAPL": true, "TSLA": true}}
		c := NewCollector(src, nil)

		if _, err := c.Collect(context.Background(), []string{"AAPL", "TSLA"}); err == nil {
			t.Fatal("expected error when every ticker fails")
		}
	})

	t.Run("empty ticker list", func(t *testing.T) {
		c := NewCollector(&fakeQuoteSource{}, nil)
		if _, err := c.Collect(context.Background(), nil); err == nil {
			t.Fatal("expected error for empty ticker list")
		}
	})

	t.Run("crypto preset queries USD pairs", func(t *testing.T) {
		universe, err := tickers.Resolve(nil, "crypto-major")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}

		src := &fakeQuoteSource{}
		c := NewCollector(src, nil)

		rows, err := c.Collect(context.Background(), universe)
		if err != nil {
			t.Fatalf("Collect failed: %v", err)
		}
		if len(rows) != len(universe) {
			t.Fatalf("rows = %d, want %d", len(rows), len(universe))
		}
		for _, sym := range src.calls {
			if !strings.HasSuffix(sym, "-USD") {
				t.Errorf("queried bare crypto symbol %q, want a -USD pair", sym)
			}
		}
		if src.calls[0] != "BTC-USD" {
			t.Errorf("first query = %q, want BTC-USD", src.calls[0])
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		src := &fakeQuoteSource{fail: map[string]bool{"AAPL": true}}
		c := NewCollector(src, nil)

		if _, err := c.Collect(ctx, []string{"AAPL", "TSLA"}); err != context.Canceled {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}

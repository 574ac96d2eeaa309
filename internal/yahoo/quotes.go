package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// GetQuotes fetches current quotes for up to a page of symbols.
func (c *Client) GetQuotes(ctx context.Context, symbols []string) ([]APIQuote, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("get quotes: no symbols given")
	}

	query := url.Values{}
	query.Set("symbols", strings.Join(symbols, ","))

	var resp QuoteResponse
	if err := c.get(ctx, "/v7/finance/quote", query, &resp); err != nil {
		return nil, fmt.Errorf("get quotes: %w", err)
	}

	if f := resp.QuoteResponse.Error; f != nil {
		return nil, fmt.Errorf("get quotes: %s: %s", f.Code, f.Description)
	}

	return resp.QuoteResponse.Result, nil
}

// GetQuote fetches the quote for a single symbol. An unknown symbol yields
// an error rather than an empty quote.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*APIQuote, error) {
	quotes, err := c.GetQuotes(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}

	for i := range quotes {
		if strings.EqualFold(quotes[i].Symbol, symbol) {
			return &quotes[i], nil
		}
	}

	return nil, fmt.Errorf("get quote %s: symbol not found in response", symbol)
}

// GetChart fetches OHLCV history for a symbol over the given range and
// interval (e.g. "30d", "1h").
func (c *Client) GetChart(ctx context.Context, symbol, rng, interval string) (*APIChart, error) {
	query := url.Values{}
	if rng != "" {
		query.Set("range", rng)
	}
	if interval != "" {
		query.Set("interval", interval)
	}

	var resp ChartResponse
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query, &resp); err != nil {
		return nil, fmt.Errorf("get chart %s: %w", symbol, err)
	}

	if f := resp.Chart.Error; f != nil {
		return nil, fmt.Errorf("get chart %s: %s: %s", symbol, f.Code, f.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("get chart %s: empty result", symbol)
	}

	return &resp.Chart.Result[0], nil
}

package yahoo

// apiFault is the error object embedded in quote and chart responses.
type apiFault struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// QuoteResponse from GET /v7/finance/quote
type QuoteResponse struct {
	QuoteResponse struct {
		Result []APIQuote `json:"result"`
		Error  *apiFault  `json:"error"`
	} `json:"quoteResponse"`
}

// APIQuote represents one symbol's quote as returned by the API.
type APIQuote struct {
	Symbol           string `json:"symbol"`
	ShortName        string `json:"shortName"`
	LongName         string `json:"longName"`
	Currency         string `json:"currency"`
	FullExchangeName string `json:"fullExchangeName"`
	QuoteType        string `json:"quoteType"`

	RegularMarketPrice  float64 `json:"regularMarketPrice"`
	RegularMarketChange float64 `json:"regularMarketChangePercent"`
	RegularMarketVolume int64   `json:"regularMarketVolume"`
	MarketCap           int64   `json:"marketCap"`

	// Seconds since epoch
	RegularMarketTime int64 `json:"regularMarketTime"`
}

// ChartResponse from GET /v8/finance/chart/{symbol}
type ChartResponse struct {
	Chart struct {
		Result []APIChart `json:"result"`
		Error  *apiFault  `json:"error"`
	} `json:"chart"`
}

// APIChart represents one symbol's OHLCV history. Individual bars may carry
// nulls, hence the pointer slices.
type APIChart struct {
	Meta struct {
		Symbol      string `json:"symbol"`
		Currency    string `json:"currency"`
		Granularity string `json:"dataGranularity"`
		Range       string `json:"range"`
	} `json:"meta"`

	// Seconds since epoch, one entry per bar
	Timestamp []int64 `json:"timestamp"`

	Indicators ChartIndicators `json:"indicators"`
}

// ChartIndicators wraps the indicator arrays of a chart result.
type ChartIndicators struct {
	Quote []ChartQuote `json:"quote"`
}

// ChartQuote holds the parallel OHLCV arrays of a chart result.
type ChartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

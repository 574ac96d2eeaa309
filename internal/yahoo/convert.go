package yahoo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/model"
)

// DisplayName picks the best available company name for a quote.
func (q *APIQuote) DisplayName() string {
	if q.ShortName != "" {
		return q.ShortName
	}
	if q.LongName != "" {
		return q.LongName
	}
	return q.Symbol
}

// ToRecord converts an APIQuote to a model.TickerRecord. The fetch time is
// the source's market time when present, otherwise now.
func (q *APIQuote) ToRecord() model.TickerRecord {
	fetchedAt := time.Now().UTC()
	if q.RegularMarketTime > 0 {
		fetchedAt = time.Unix(q.RegularMarketTime, 0).UTC()
	}

	return model.TickerRecord{
		Ticker:    q.Symbol,
		Name:      q.DisplayName(),
		Price:     decimal.NewFromFloat(q.RegularMarketPrice),
		Currency:  q.Currency,
		FetchedAt: fetchedAt,
	}
}

// ToCandles converts a chart result to model candles. Bars with missing
// OHLC values are dropped; a missing volume becomes zero.
func (ch *APIChart) ToCandles() []model.Candle {
	if len(ch.Indicators.Quote) == 0 {
		return nil
	}
	q := ch.Indicators.Quote[0]

	candles := make([]model.Candle, 0, len(ch.Timestamp))
	for i, ts := range ch.Timestamp {
		if i >= len(q.Open) || i >= len(q.High) || i >= len(q.Low) || i >= len(q.Close) {
			break
		}
		if q.Open[i] == nil || q.High[i] == nil || q.Low[i] == nil || q.Close[i] == nil {
			continue
		}

		var volume int64
		if i < len(q.Volume) && q.Volume[i] != nil {
			volume = *q.Volume[i]
		}

		candles = append(candles, model.Candle{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      *q.Open[i],
			High:      *q.High[i],
			Low:       *q.Low[i],
			Close:     *q.Close[i],
			Volume:    volume,
		})
	}

	return candles
}

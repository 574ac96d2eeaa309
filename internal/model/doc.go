// Package model defines the dataset record types shared by the generator
// and the collectors.
//
// Conventions:
//   - Quote prices: decimal.Decimal (exact, as reported by the source)
//   - Candle prices: float64 (chart data arrives as floats)
//   - Timestamps: time.Time, serialized as RFC 3339 in JSON output
//   - Sentiment labels: one of "positive", "negative", "neutral"
package model

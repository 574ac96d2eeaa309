package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentiment labels attached to synthetic posts and scored headlines.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// SentimentLabels lists the three labels in a fixed order.
var SentimentLabels = []string{SentimentPositive, SentimentNegative, SentimentNeutral}

// -----------------------------------------------------------------------------
// Synthetic Posts
// -----------------------------------------------------------------------------

// SyntheticPost is a generated social-media-style text sample with a
// training label. Records are immutable once generated.
type SyntheticPost struct {
	ID        int64     `json:"id"`        // Sequential, starting at 1
	Ticker    string    `json:"ticker"`    // Symbol the post is about
	Text      string    `json:"text"`      // Rendered template text
	Sentiment string    `json:"sentiment"` // positive / negative / neutral
	Timestamp time.Time `json:"timestamp"` // Synthetic, within the lookback window

	// Simulated engagement
	Author    string `json:"author"`
	Followers int    `json:"followers"`
	Retweets  int    `json:"retweets"`
	Likes     int    `json:"likes"`
}

// -----------------------------------------------------------------------------
// Market Metadata
// -----------------------------------------------------------------------------

// TickerRecord is one row of collected company/market metadata.
// It shares the ticker with SyntheticPost as a downstream join key.
type TickerRecord struct {
	Ticker    string          `json:"ticker"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// -----------------------------------------------------------------------------
// Price History
// -----------------------------------------------------------------------------

// Candle is a single OHLCV bar. The rolling indicators are only set once
// enough preceding bars exist (5-period windows).
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`

	Volatility5  *float64 `json:"volatility_5period,omitempty"`   // Pct volatility over last 5 bars
	Momentum5    *float64 `json:"momentum_5period,omitempty"`     // Pct change over last 5 bars
	VolumeRatio5 *float64 `json:"volume_ratio_5period,omitempty"` // Volume vs 5-bar average
}

// PriceHistory is the per-ticker chart collection result.
type PriceHistory struct {
	Ticker   string          `json:"ticker"`
	Interval string          `json:"interval"`
	Candles  []Candle        `json:"price_data"`
	Metadata HistoryMetadata `json:"metadata"`
}

// HistoryMetadata describes one history collection run.
type HistoryMetadata struct {
	Range       string    `json:"range"`
	DataPoints  int       `json:"data_points"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CollectedAt time.Time `json:"collected_at"`
}

// -----------------------------------------------------------------------------
// News Sentiment
// -----------------------------------------------------------------------------

// SentimentScore holds lexicon-based polarity scores for a piece of text.
type SentimentScore struct {
	Compound float64 `json:"compound"` // Normalized sum, -1..1
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Label    string  `json:"label"` // Derived: compound >= 0.05 positive, <= -0.05 negative
}

// Headline is a scored news item for a single ticker.
type Headline struct {
	Source      string         `json:"source"`
	Title       string         `json:"title"`
	URL         string         `json:"url"`
	PublishedAt time.Time      `json:"published_at"`
	Sentiment   SentimentScore `json:"sentiment"`
}

// DailySentiment aggregates headline sentiment per calendar day.
type DailySentiment struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	Articles      int     `json:"articles_count"`
	AvgCompound   float64 `json:"avg_sentiment"`
	PositiveRatio float64 `json:"positive_ratio"`
	NegativeRatio float64 `json:"negative_ratio"`
	NeutralRatio  float64 `json:"neutral_ratio"`
}

// NewsReport is the per-ticker news sentiment result.
type NewsReport struct {
	Ticker    string           `json:"ticker"`
	Headlines []Headline       `json:"articles"`
	Daily     []DailySentiment `json:"daily_averages"`
}

// NewsDigest is the single output document of a news collection run.
type NewsDigest struct {
	RunID       uuid.UUID    `json:"run_id"`
	CollectedAt time.Time    `json:"collected_at"`
	PeriodDays  int          `json:"period_days"`
	Reports     []NewsReport `json:"reports"`
}

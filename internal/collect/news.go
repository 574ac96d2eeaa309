package collect

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/model"
	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/sentiment"
)

// NewsConfig holds news sentiment collection settings.
type NewsConfig struct {
	FeedURL      string // printf template, %s = ticker
	LookbackDays int    // Drop items older than this
}

// NewsCollector pulls RSS headlines per ticker and scores them.
type NewsCollector struct {
	cfg    NewsConfig
	parser *gofeed.Parser
	scorer *sentiment.Scorer
	logger *slog.Logger
}

// NewNewsCollector creates a news collector.
func NewNewsCollector(cfg NewsConfig, scorer *sentiment.Scorer, logger *slog.Logger) *NewsCollector {
	if logger == nil {
		logger = slog.Default()
	}
	if scorer == nil {
		scorer = sentiment.NewScorer()
	}
	if cfg.LookbackDays < 1 {
		cfg.LookbackDays = 7
	}
	return &NewsCollector{
		cfg:    cfg,
		parser: gofeed.NewParser(),
		scorer: scorer,
		logger: logger,
	}
}

// Collect fetches and scores headlines for every ticker, one feed pull per
// ticker. Failed tickers are skipped with a warning.
func (n *NewsCollector) Collect(ctx context.Context, tickers []string) (*model.NewsDigest, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("ticker list is empty")
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -n.cfg.LookbackDays)

	digest := &model.NewsDigest{
		RunID:       uuid.New(),
		CollectedAt: time.Now().UTC(),
		PeriodDays:  n.cfg.LookbackDays,
	}

	for _, ticker := range tickers {
		report, err := n.collectTicker(ctx, ticker, cutoff)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			n.logger.Warn("skipping ticker news", "ticker", ticker, "error", err)
			continue
		}
		digest.Reports = append(digest.Reports, *report)
	}

	if len(digest.Reports) == 0 {
		return nil, fmt.Errorf("all %d tickers failed", len(tickers))
	}
	return digest, nil
}

func (n *NewsCollector) collectTicker(ctx context.Context, ticker string, cutoff time.Time) (*model.NewsReport, error) {
	feedURL := fmt.Sprintf(n.cfg.FeedURL, ticker)

	feed, err := n.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	report := &model.NewsReport{Ticker: ticker}
	for _, item := range feed.Items {
		published := time.Now().UTC()
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.UTC()
		}
		if published.Before(cutoff) {
			continue
		}

		text := item.Title
		if item.Description != "" {
			text += " " + item.Description
		}

		report.Headlines = append(report.Headlines, model.Headline{
			Source:      feed.Title,
			Title:       item.Title,
			URL:         item.Link,
			PublishedAt: published,
			Sentiment:   n.scorer.Score(text),
		})
	}

	report.Daily = aggregateDaily(report.Headlines)

	n.logger.Debug("fetched news", "ticker", ticker, "articles", len(report.Headlines))
	return report, nil
}

// aggregateDaily groups headlines by calendar day and averages sentiment.
func aggregateDaily(headlines []model.Headline) []model.DailySentiment {
	type bucket struct {
		count    int
		compound float64
		pos, neg int
	}

	buckets := make(map[string]*bucket)
	for _, h := range headlines {
		day := h.PublishedAt.Format("2006-01-02")
		b := buckets[day]
		if b == nil {
			b = &bucket{}
			buckets[day] = b
		}
		b.count++
		b.compound += h.Sentiment.Compound
		switch h.Sentiment.Label {
		case model.SentimentPositive:
			b.pos++
		case model.SentimentNegative:
			b.neg++
		}
	}

	daily := make([]model.DailySentiment, 0, len(buckets))
	for day, b := range buckets {
		neu := b.count - b.pos - b.neg
		daily = append(daily, model.DailySentiment{
			Date:          day,
			Articles:      b.count,
			AvgCompound:   round3(b.compound / float64(b.count)),
			PositiveRatio: round3(float64(b.pos) / float64(b.count)),
			NegativeRatio: round3(float64(b.neg) / float64(b.count)),
			NeutralRatio:  round3(float64(neu) / float64(b.count)),
		})
	}

	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })
	return daily
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// Package generate produces labeled synthetic social-media posts about
// stocks for downstream model training.
package generate

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/model"
)

// Config holds generator parameters.
type Config struct {
	Count        int      // Number of posts to produce (>= 1)
	Tickers      []string // Ticker universe (non-empty)
	LookbackDays int      // Synthetic timestamp window (default 90)
	Seed         int64    // 0 = time-seeded

	// Label distribution weights. All zero = uniform.
	PositiveWeight float64
	NegativeWeight float64
	NeutralWeight  float64
}

// Generator produces SyntheticPost records from a template pool.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	logger *slog.Logger

	labels  []string
	weights []float64
	total   float64
}

// New validates cfg and creates a Generator.
func New(cfg Config, logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Count < 1 {
		return nil, fmt.Errorf("count must be >= 1, got %d", cfg.Count)
	}
	if len(cfg.Tickers) == 0 {
		return nil, fmt.Errorf("ticker set is empty")
	}
	if cfg.PositiveWeight < 0 || cfg.NegativeWeight < 0 || cfg.NeutralWeight < 0 {
		return nil, fmt.Errorf("sentiment weights must be non-negative")
	}
	if cfg.LookbackDays < 1 {
		cfg.LookbackDays = 90
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		labels: model.SentimentLabels,
	}

	weights := []float64{cfg.PositiveWeight, cfg.NegativeWeight, cfg.NeutralWeight}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		// Uniform
		weights = []float64{1, 1, 1}
		total = 3
	}
	g.weights = weights
	g.total = total

	return g, nil
}

// Generate produces exactly Count posts with sequential ids starting at 1.
func (g *Generator) Generate() []model.SyntheticPost {
	now := time.Now().UTC()
	window := time.Duration(g.cfg.LookbackDays) * 24 * time.Hour

	posts := make([]model.SyntheticPost, 0, g.cfg.Count)
	for i := 0; i < g.cfg.Count; i++ {
		ticker := g.cfg.Tickers[g.rng.Intn(len(g.cfg.Tickers))]
		label := g.pickLabel()

		posts = append(posts, model.SyntheticPost{
			ID:        int64(i + 1),
			Ticker:    ticker,
			Text:      g.renderText(label, ticker),
			Sentiment: label,
			Timestamp: now.Add(-time.Duration(g.rng.Int63n(int64(window)))),
			Author:    g.authorName(),
			Followers: 50 + g.rng.Intn(499951),
			Retweets:  g.rng.Intn(2001),
			Likes:     g.rng.Intn(5001),
		})
	}

	g.logger.Info("posts generated",
		"count", len(posts),
		"tickers", len(g.cfg.Tickers),
	)

	return posts
}

// pickLabel draws a sentiment label from the configured distribution.
func (g *Generator) pickLabel() string {
	r := g.rng.Float64() * g.total
	for i, w := range g.weights {
		if r < w {
			return g.labels[i]
		}
		r -= w
	}
	return g.labels[len(g.labels)-1]
}

// renderText fills a random template of the label's group and appends the
// optional hashtag (30%) and cashtag (40%) suffixes.
func (g *Generator) renderText(label, ticker string) string {
	group := postTemplates[label]
	text := group[g.rng.Intn(len(group))]

	text = strings.NewReplacer(
		"{ticker}", ticker,
		"{cashtag}", "$"+ticker,
		"{company}", g.companyName(),
		"{percent}", fmt.Sprintf("%d", 1+g.rng.Intn(15)),
		"{value}", fmt.Sprintf("%.2f", 10+g.rng.Float64()*40),
	).Replace(text)

	if g.rng.Float64() < 0.3 {
		text += " " + strings.Join(g.sampleHashtags(1+g.rng.Intn(3)), " ")
	}
	if g.rng.Float64() < 0.4 {
		text += " $" + ticker
	}

	return text
}

func (g *Generator) sampleHashtags(n int) []string {
	perm := g.rng.Perm(len(hashtagPool))
	if n > len(perm) {
		n = len(perm)
	}
	tags := make([]string, n)
	for i := 0; i < n; i++ {
		tags[i] = hashtagPool[perm[i]]
	}
	return tags
}

func (g *Generator) companyName() string {
	return companyFirst[g.rng.Intn(len(companyFirst))] + " " + companySecond[g.rng.Intn(len(companySecond))]
}

func (g *Generator) authorName() string {
	return fmt.Sprintf("%s_%s%d",
		authorAdjectives[g.rng.Intn(len(authorAdjectives))],
		authorNouns[g.rng.Intn(len(authorNouns))],
		g.rng.Intn(10000),
	)
}

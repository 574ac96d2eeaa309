// Package sentiment implements a lexicon-based polarity scorer tuned for
// financial text.
package sentiment

import (
	"math"
	"strings"
	"unicode"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/model"
)

const (
	// Label thresholds on the compound score.
	positiveThreshold = 0.05
	negativeThreshold = -0.05

	// Compound normalization constant (s / sqrt(s^2 + alpha)).
	normAlpha = 15.0

	// Valence multiplier applied when a negation precedes a scored word.
	negationScalar = -0.74
)

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "without": {}, "cannot": {},
	"isnt": {}, "wasnt": {}, "wont": {}, "doesnt": {}, "didnt": {},
}

// Scorer assigns polarity scores to text using a word valence lexicon.
type Scorer struct {
	lexicon map[string]float64
}

// NewScorer returns a scorer loaded with the base and finance lexicons.
func NewScorer() *Scorer {
	lex := make(map[string]float64, len(baseLexicon)+len(financeLexicon))
	for w, v := range baseLexicon {
		lex[w] = v
	}
	for w, v := range financeLexicon {
		lex[w] = v
	}
	return &Scorer{lexicon: lex}
}

// AddTerms merges extra valence terms, overriding existing entries.
func (s *Scorer) AddTerms(terms map[string]float64) {
	for w, v := range terms {
		s.lexicon[strings.ToLower(w)] = v
	}
}

// Score rates text and derives a three-way label from the compound score.
func (s *Scorer) Score(text string) model.SentimentScore {
	tokens := tokenize(text)

	var sum, posSum, negSum float64
	var neutral int

	for i, tok := range tokens {
		valence, ok := s.lexicon[tok]
		if !ok {
			neutral++
			continue
		}

		// Look back up to two tokens for a negation ("not a bullish setup").
		for j := i - 1; j >= 0 && j >= i-2; j-- {
			if _, neg := negations[tokens[j]]; neg {
				valence *= negationScalar
				break
			}
		}

		sum += valence
		switch {
		case valence > 0:
			posSum += valence
		case valence < 0:
			negSum += -valence
		}
	}

	score := model.SentimentScore{
		Compound: normalize(sum),
	}

	// Proportions over scored mass plus unscored tokens, mirroring the
	// pos/neg/neu split of polarity scorers.
	total := posSum + negSum + float64(neutral)
	if total > 0 {
		score.Positive = round3(posSum / total)
		score.Negative = round3(negSum / total)
		score.Neutral = round3(float64(neutral) / total)
	} else {
		score.Neutral = 1
	}

	switch {
	case score.Compound >= positiveThreshold:
		score.Label = model.SentimentPositive
	case score.Compound <= negativeThreshold:
		score.Label = model.SentimentNegative
	default:
		score.Label = model.SentimentNeutral
	}

	return score
}

// normalize maps an unbounded valence sum into (-1, 1).
func normalize(sum float64) float64 {
	if sum == 0 {
		return 0
	}
	return round3(sum / math.Sqrt(sum*sum+normAlpha))
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// tokenize lowercases and splits on anything that is not a letter or digit,
// dropping apostrophes first so "isn't" matches "isnt".
func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "'", "")
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

package sentiment

// baseLexicon covers common polarity words that show up in financial
// headlines. Scores follow the usual -4..4 valence scale.
var baseLexicon = map[string]float64{
	"good":       1.9,
	"great":      3.1,
	"excellent":  2.7,
	"strong":     2.3,
	"impressive": 2.3,
	"record":     1.5,
	"surge":      2.0,
	"surged":     2.0,
	"soar":       2.2,
	"soared":     2.2,
	"gain":       1.6,
	"gains":      1.6,
	"win":        2.8,
	"success":    2.7,
	"stellar":    2.5,
	"exciting":   2.2,

	"bad":      -2.5,
	"weak":     -1.9,
	"poor":     -2.1,
	"fear":     -2.2,
	"fail":     -2.5,
	"failed":   -2.3,
	"drop":     -1.6,
	"dropped":  -1.6,
	"plunge":   -2.4,
	"plunged":  -2.4,
	"fall":     -1.5,
	"fell":     -1.5,
	"fears":    -2.2,
	"lawsuit":  -1.8,
	"lawsuits": -1.8,
	"layoff":   -2.2,
	"layoffs":  -2.2,
	"concern":  -1.2,
	"concerns": -1.2,
	"pressure": -1.1,
	"tough":    -1.2,
	"rough":    -1.5,
	"risk":     -1.1,
	"risks":    -1.1,
	"warning":  -1.6,
}

// financeLexicon adds finance-specific terms so domain jargon scores the
// way a trader reads it.
var financeLexicon = map[string]float64{
	// Positive financial terms
	"bullish":    2.5,
	"outperform": 2.0,
	"buy":        2.0,
	"upgrade":    2.0,
	"beat":       1.5,
	"exceeded":   1.5,
	"profit":     1.5,
	"growth":     1.5,
	"upside":     1.5,
	"dividend":   1.0,
	"uptrend":    1.5,
	"rally":      1.5,

	// Negative financial terms
	"bearish":      -2.5,
	"underperform": -2.0,
	"sell":         -2.0,
	"downgrade":    -2.0,
	"miss":         -1.5,
	"below":        -1.0,
	"loss":         -2.0,
	"debt":         -1.0,
	"downside":     -1.5,
	"crash":        -3.0,
	"downtrend":    -1.5,
	"bankruptcy":   -3.0,
	"recession":    -2.5,
	"inflation":    -1.0,
	"volatility":   -0.5,
}

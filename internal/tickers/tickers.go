// Package tickers holds the named symbol list presets and resolves the
// ticker universe for a run.
package tickers

import (
	"fmt"
	"sort"
	"strings"
)

// Stock presets. "major" doubles as the default when nothing is configured.
var stockPresets = map[string][]string{
	"major":    {"AAPL", "MSFT", "AMZN", "GOOGL", "META", "TSLA", "NVDA", "JPM", "BAC", "WMT"},
	"tech":     {"AAPL", "MSFT", "GOOGL", "META", "AMZN", "NVDA", "TSLA", "NFLX", "CRM", "ADBE", "INTC", "AMD", "PYPL", "UBER", "ABNB"},
	"finance":  {"JPM", "BAC", "WFC", "C", "GS", "MS", "BLK", "AXP", "V", "MA", "COF", "SCHW"},
	"volatile": {"TSLA", "GME", "AMC", "COIN", "RIVN", "DKNG", "PLTR", "NIO", "SNAP", "RBLX", "HOOD", "SPCE"},
	"meme":     {"GME", "AMC", "BB", "EXPR", "KOSS", "NOK", "BBBY", "WISH", "CLOV", "MVIS", "TLRY", "SNDL"},
}

// Crypto presets hold bare asset symbols. Preset quotes them against USD
// (BTC -> BTC-USD), which is how the finance API names crypto pairs.
var cryptoPresets = map[string][]string{
	"crypto-major": {"BTC", "ETH", "BNB", "SOL", "XRP", "ADA", "DOGE", "DOT", "AVAX", "MATIC"},
	"crypto-meme":  {"DOGE", "SHIB", "PEPE", "FLOKI", "BONK", "ELON", "SAMO", "WIF", "MONA", "BABYDOGE"},
}

const cryptoQuoteSuffix = "-USD"

// DefaultPreset is used when neither an explicit list nor a preset name is
// configured.
const DefaultPreset = "major"

// Preset returns the symbol list for a named preset.
func Preset(name string) ([]string, bool) {
	if list, ok := stockPresets[name]; ok {
		return append([]string(nil), list...), true
	}
	if list, ok := cryptoPresets[name]; ok {
		out := make([]string, len(list))
		for i, sym := range list {
			out[i] = sym + cryptoQuoteSuffix
		}
		return out, true
	}
	return nil, false
}

// Names returns all known preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(stockPresets)+len(cryptoPresets))
	for name := range stockPresets {
		names = append(names, name)
	}
	for name := range cryptoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve picks the ticker universe for a run. An explicit list wins over a
// preset name; an empty preset falls back to DefaultPreset. Symbols are
// upper-cased and de-duplicated preserving first occurrence.
func Resolve(explicit []string, preset string) ([]string, error) {
	var list []string
	switch {
	case len(explicit) > 0:
		list = explicit
	default:
		if preset == "" {
			preset = DefaultPreset
		}
		var ok bool
		list, ok = Preset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown ticker preset %q (known: %s)", preset, strings.Join(Names(), ", "))
		}
	}

	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, t := range list {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("ticker list is empty")
	}
	return out, nil
}

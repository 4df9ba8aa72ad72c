// Package money parses free-form monetary tokens ("$10,000", "12.5k") into
// bounded USD amounts.
package money

import (
	"strconv"
	"strings"
)

// Bounds is the plausibility window for a parsed price. Anything outside it
// is rejected — the primary defense against reading market-cap or vote-count
// figures as price targets.
type Bounds struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the bounds (inclusive).
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// multipliers for accepted magnitude suffixes. Billion and trillion markers
// are deliberately absent: price targets never reach that magnitude, and
// accepting them would conflate price with market cap.
var multipliers = map[string]float64{
	"":  1,
	"k": 1_000,
	"m": 1_000_000,
}

// ParseAmount converts a raw numeric token plus optional magnitude suffix
// into a USD amount. It strips the currency marker and group separators,
// applies the suffix multiplier, and rejects anything non-numeric, any
// unknown suffix, or any result outside the bounds. Pure function; the
// second return is false on rejection.
func ParseAmount(raw, suffix string, b Bounds) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	mult, ok := multipliers[strings.ToLower(strings.TrimSpace(suffix))]
	if !ok {
		return 0, false
	}
	v *= mult

	if !b.Contains(v) {
		return 0, false
	}
	return v, true
}

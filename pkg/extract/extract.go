// Package extract parses monetary price targets out of qualifying sentences.
// Pattern precedence is fixed: "between A and B" phrasing, then a dash/"to"
// separated range, then standalone single amounts. The first pattern that
// succeeds for a sentence wins and later patterns are skipped.
package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/money"
)

const numToken = `\$?\s?\d+(?:,\d{3})*(?:\.\d+)?\s?[kmb]?`

var (
	betweenRe = regexp.MustCompile(`(?i)\bbetween\s+(` + numToken + `)\s+and\s+(` + numToken + `)\s*([kmb])?`)
	rangeRe   = regexp.MustCompile(`(?i)(` + numToken + `)\s*(?:-|–|to)\s*(` + numToken + `)\s*([kmb])?`)
	singleRe  = regexp.MustCompile(`(?i)(` + numToken + `)`)

	// Hedge vocabulary signals that one ceiling value is the intended target,
	// not several independent predictions.
	hedgeRe = regexp.MustCompile(`(?i)\b(at\s+least|up\s+to|possibly|maybe|could\s+(reach|hit|go)|as\s+high\s+as)\b`)

	suffixRe = regexp.MustCompile(`(?i)([kmb])\s*$`)
)

// Extractor turns sentences into predictions, bounded by the configured
// plausibility window.
type Extractor struct {
	Bounds money.Bounds
}

// unbounded is used only for the diagnostic amounts-found trail.
var unbounded = money.Bounds{Min: math.Inf(-1), Max: math.Inf(1)}

// splitSuffix separates a trailing magnitude letter from a numeric token.
func splitSuffix(tok string) (num, suffix string) {
	tok = strings.TrimSpace(tok)
	if m := suffixRe.FindStringSubmatch(tok); m != nil {
		return strings.TrimSpace(tok[:len(tok)-len(m[0])]), strings.ToLower(m[1])
	}
	return tok, ""
}

// hasMoneyMarker reports whether a raw match carries a currency symbol or a
// magnitude-suffix letter. Bare numerals are treated as numeric noise
// (percentages, block numbers, vote counts).
func hasMoneyMarker(raw string) bool {
	return strings.ContainsAny(strings.ToLower(raw), "$kmb")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Extract returns the predictions found in one sentence, plus every numeral
// it managed to parse along the way (for the candidate audit trail, bounds
// not applied). Zero predictions is a normal outcome, never an error.
func (e *Extractor) Extract(sentence string) ([]models.Prediction, []float64) {
	var preds []models.Prediction
	var found []float64

	record := func(raw, suffix string) {
		if v, ok := money.ParseAmount(raw, suffix, unbounded); ok {
			found = append(found, v)
		}
	}

	// rangeFrom resolves one side pair into a RANGE prediction. A per-side
	// embedded suffix wins over the shared one; a lone embedded suffix is
	// shared with the bare side ("10-15k" means 10k to 15k).
	rangeFrom := func(rawA, rawB, shared, rawMatch string) *models.Prediction {
		numA, sufA := splitSuffix(rawA)
		numB, sufB := splitSuffix(rawB)
		if shared == "" {
			if sufA == "" && sufB != "" {
				sufA = sufB
			}
			if sufB == "" && sufA != "" {
				sufB = sufA
			}
		}
		if sufA == "" {
			sufA = shared
		}
		if sufB == "" {
			sufB = shared
		}
		record(numA, sufA)
		record(numB, sufB)

		if !hasMoneyMarker(rawMatch) {
			return nil
		}
		va, okA := money.ParseAmount(numA, sufA, e.Bounds)
		vb, okB := money.ParseAmount(numB, sufB, e.Bounds)
		if !okA || !okB {
			return nil
		}
		low, high := va, vb
		if low > high {
			low, high = high, low
		}
		lo, hi := round2(low), round2(high)
		return &models.Prediction{
			Kind:     models.KindRange,
			Amount:   round2((low + high) / 2),
			Lower:    &lo,
			Upper:    &hi,
			RawMatch: strings.TrimSpace(rawMatch),
			Sentence: sentence,
		}
	}

	// 1) explicit "between A and B" phrasing
	for _, m := range betweenRe.FindAllStringSubmatch(sentence, -1) {
		if p := rangeFrom(m[1], m[2], strings.ToLower(m[3]), m[0]); p != nil {
			preds = append(preds, *p)
		}
	}

	// 2) dash/"to"-separated range, only when no between-phrase matched
	if len(preds) == 0 {
		for _, m := range rangeRe.FindAllStringSubmatch(sentence, -1) {
			if p := rangeFrom(m[1], m[2], strings.ToLower(m[3]), m[0]); p != nil {
				preds = append(preds, *p)
			}
		}
	}

	// 3) standalone single amounts, only when no range was found
	if len(preds) == 0 {
		for _, m := range singleRe.FindAllStringSubmatch(sentence, -1) {
			num, suf := splitSuffix(m[1])
			record(num, suf)
			if !hasMoneyMarker(m[0]) {
				continue
			}
			v, ok := money.ParseAmount(num, suf, e.Bounds)
			if !ok {
				continue
			}
			preds = append(preds, models.Prediction{
				Kind:     models.KindSingle,
				Amount:   round2(v),
				RawMatch: strings.TrimSpace(m[0]),
				Sentence: sentence,
			})
		}
	}

	// Tie-break: under hedge language, several candidates collapse to the
	// single highest amount.
	if len(preds) > 1 && hedgeRe.MatchString(sentence) {
		best := preds[0]
		for _, p := range preds[1:] {
			if p.Amount > best.Amount {
				best = p
			}
		}
		preds = []models.Prediction{best}
	}

	return preds, found
}

package classify

import (
	"regexp"

	"github.com/shanelightowler/crypto-daily-mentions/models"
)

// ExclusionRule disqualifies a sentence regardless of how well its context
// matches. Rules are evaluated in table order before any extraction runs and
// the first match wins, so overlapping reasons resolve deterministically.
type ExclusionRule struct {
	Reason  models.RejectionReason
	Pattern *regexp.Regexp
}

// exclusionRules is the ordered rule table. Each entry is independently
// testable and can be dropped without touching the classifier itself.
var exclusionRules = []ExclusionRule{
	{
		// Market-capitalization talk, not price.
		Reason:  models.ReasonMarketCap,
		Pattern: regexp.MustCompile(`(?i)\b(market\s?cap(italization)?|m\.?cap|mcap|fdv|fully\s+diluted)\b`),
	},
	{
		// A quantity of the asset ("sold my 50 ETH"), not a price.
		Reason:  models.ReasonAssetQuantity,
		Pattern: regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s?(eth|ether|ethereum)\b`),
	},
	{
		// Average-sale-price bookkeeping.
		Reason:  models.ReasonAverageSale,
		Pattern: regexp.MustCompile(`(?i)\b(avg|average)\s+(sale|sell(ing)?|exit|entry|buy(ing)?)?\s*price\b`),
	},
	{
		// Purely historical statements with no forward cue.
		Reason:  models.ReasonHistoricalOnly,
		Pattern: regexp.MustCompile(`(?i)((ath|all[-\s]?time\s+high|top|peak)\s+(was|were)\b|\bback\s+in\s+(19|20)\d\d\b|\bwas\s+\$\s?\d)`),
	},
	{
		// Short-term, time-boxed phrasing describes near-term moves, not
		// cycle-top targets.
		Reason:  models.ReasonShortTerm,
		Pattern: regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|this\s+week(end)?|next\s+week|this\s+month|short[-\s]?term|next\s+leg|pullback|dip|intraday|by\s+(mon|tues|wednes|thurs|fri|satur|sun)day)\b`),
	},
	{
		// Present-tense commentary about where the price "should be".
		Reason:  models.ReasonPresentTense,
		Pattern: regexp.MustCompile(`(?i)\bshould\s+(already\s+)?be\s+(at|trading\s+at|worth)\b`),
	},
	{
		// Negated top/peak statements.
		Reason:  models.ReasonNegatedTop,
		Pattern: regexp.MustCompile(`(?i)\b(won'?t|will\s+not|never|not\s+going\s+to|unlikely\s+to|doubt\s+(it|we|eth)('?ll)?)\s+(top|peak|reach|hit|go|see)\b`),
	},
}

// Exclude runs the sentence through the rule table and returns the first
// matching rule's reason, or ReasonNone.
func Exclude(sentence string) models.RejectionReason {
	for _, r := range exclusionRules {
		if r.Pattern.MatchString(sentence) {
			return r.Reason
		}
	}
	return models.ReasonNone
}

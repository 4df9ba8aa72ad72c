// Package classify decides whether a sentence is a candidate forward-looking
// price statement about the target asset. The heuristics are regular
// expressions with a manually curated exclusion table — cheap, explainable
// and tunable, by no means a trained model.
package classify

import "regexp"

var (
	// Target asset: symbol, full name, or cash-tag alias.
	targetRe = regexp.MustCompile(`(?i)(^|[^\w$])(eth|ethereum|ether|\$eth)\b`)

	// Competing assets that share these threads. A comment that mentions one
	// of these and never the target is about a different market entirely.
	competitorRe = regexp.MustCompile(`(?i)(^|[^\w$])(btc|bitcoin|\$btc|sol|solana|\$sol|xrp|ada|cardano|doge(coin)?)\b`)

	// Forward-looking / cycle-top vocabulary.
	forwardRe = regexp.MustCompile(`(?i)\b(ath|all[-\s]?time\s+high|tops?(\s+out)?|peak|blow[-\s]?off|this\s+cycle|next\s+cycle|bull\s+run|end\s+of\s+cycle|price\s+target|will\s+(go|hit|reach)|could\s+(go|hit|reach)|to\s+\$?\d+[km]?|reach)\b`)
)

// Context carries the cross-sentence state threaded through a comment walk.
// It is the only mutable piece of an otherwise pure per-sentence pipeline, so
// it is passed in explicitly rather than hidden in the classifier.
type Context struct {
	// PriorHadTarget is true when the immediately preceding sentence
	// mentioned the target asset.
	PriorHadTarget bool
	// CommentHadTarget is true when the asset is mentioned anywhere in the
	// same comment (local topic stickiness — predictions are often stated one
	// sentence after the asset is named).
	CommentHadTarget bool
}

// Result is the relevance classification of one sentence. A sentence is a
// prediction candidate only when both fields hold.
type Result struct {
	HasTarget  bool
	HasForward bool
}

// MentionsTarget reports whether the text itself names the target asset.
func MentionsTarget(text string) bool {
	return targetRe.MatchString(text)
}

// MentionsCompetitor reports whether the text names a competing asset.
func MentionsCompetitor(text string) bool {
	return competitorRe.MatchString(text)
}

// CompetitorOnly reports whether an entire comment body is about a competing
// asset and never the target. Such comments are skipped wholesale to prevent
// cross-asset contamination.
func CompetitorOnly(body string) bool {
	return MentionsCompetitor(body) && !MentionsTarget(body)
}

// Classify evaluates one sentence against the accumulated context.
func Classify(sentence string, ctx Context) Result {
	return Result{
		HasTarget:  MentionsTarget(sentence) || ctx.PriorHadTarget || ctx.CommentHadTarget,
		HasForward: forwardRe.MatchString(sentence),
	}
}

package models

// PredictionKind distinguishes point predictions from ranges.
type PredictionKind string

const (
	KindSingle PredictionKind = "single"
	KindRange  PredictionKind = "range"
)

// Prediction is an accepted, structured price forecast extracted from one
// sentence. For ranges, Amount is the midpoint of Lower..Upper; for singles
// Lower and Upper are nil.
type Prediction struct {
	Kind      PredictionKind `json:"type"`
	Amount    float64        `json:"amount_usd"`
	Lower     *float64       `json:"lower_usd"`
	Upper     *float64       `json:"upper_usd"`
	RawMatch  string         `json:"raw_match"`
	Sentence  string         `json:"sentence"`
	CommentID string         `json:"comment_id,omitempty"`
	Author    string         `json:"author,omitempty"`
}

// RejectionReason names the exclusion rule that disqualified a sentence.
type RejectionReason string

const (
	ReasonNone            RejectionReason = ""
	ReasonMarketCap       RejectionReason = "market_cap"
	ReasonAssetQuantity   RejectionReason = "asset_quantity"
	ReasonAverageSale     RejectionReason = "average_sale_price"
	ReasonHistoricalOnly  RejectionReason = "historical_only"
	ReasonShortTerm       RejectionReason = "short_term_timeframe"
	ReasonPresentTense    RejectionReason = "present_tense"
	ReasonNegatedTop      RejectionReason = "negated_top"
	ReasonNoMoneyMarker   RejectionReason = "no_money_marker"
)

// Candidate is the audit record for one evaluated sentence, whether or not it
// produced a prediction. Candidates only feed the optional per-day audit log;
// they never influence aggregation.
type Candidate struct {
	Sentence     string          `json:"sentence"`
	HasTarget    bool            `json:"has_target_context"`
	HasForward   bool            `json:"has_forward_context"`
	AmountsFound []float64       `json:"amounts_found"`
	Accepted     bool            `json:"accepted"`
	Reason       RejectionReason `json:"rejection_reason,omitempty"`
	CommentID    string          `json:"comment_id,omitempty"`
}

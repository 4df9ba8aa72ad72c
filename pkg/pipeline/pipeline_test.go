package pipeline

import (
	"testing"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/money"
)

func newPipeline() *Pipeline {
	bounds := money.Bounds{Min: 100, Max: 1_000_000}
	return New(bounds, []string{"automoderator", "tricky_troll"}, nil)
}

func TestProcessCommentBasic(t *testing.T) {
	p := newPipeline()
	preds, cands := p.ProcessComment(models.Comment{
		ID:     "c1",
		Author: "alice",
		Body:   "I think ETH tops out between $10k and $15k this cycle.",
	})
	if len(preds) != 1 {
		t.Fatalf("got %d predictions, want 1", len(preds))
	}
	p0 := preds[0]
	if p0.Amount != 12500 || p0.CommentID != "c1" || p0.Author != "alice" {
		t.Errorf("got amount=%v comment=%q author=%q", p0.Amount, p0.CommentID, p0.Author)
	}
	if len(cands) != 1 || !cands[0].Accepted {
		t.Errorf("want one accepted candidate, got %+v", cands)
	}
}

func TestProcessCommentExcludedAuthor(t *testing.T) {
	p := newPipeline()
	preds, cands := p.ProcessComment(models.Comment{
		ID:     "c2",
		Author: "AutoModerator",
		Body:   "ETH will reach $10k this cycle.",
	})
	if len(preds) != 0 || len(cands) != 0 {
		t.Errorf("excluded author: got %d predictions, %d candidates, want 0/0", len(preds), len(cands))
	}
}

func TestProcessCommentCompetitorOnly(t *testing.T) {
	p := newPipeline()
	preds, cands := p.ProcessComment(models.Comment{
		ID:     "c3",
		Author: "bob",
		Body:   "BTC will top $150k this cycle. Easy.",
	})
	if len(preds) != 0 || len(cands) != 0 {
		t.Errorf("competitor-only comment: got %d predictions, %d candidates, want 0/0", len(preds), len(cands))
	}
}

func TestProcessCommentExclusionRule(t *testing.T) {
	p := newPipeline()
	tests := []struct {
		name   string
		body   string
		reason models.RejectionReason
	}{
		{"market cap", "ETH mcap could hit $2T", models.ReasonMarketCap},
		{"asset quantity", "I sold my 50 ETH for a profit and will reach my goal", models.ReasonAssetQuantity},
		{"historical only", "ETH ATH was $4800 back in 2021", models.ReasonHistoricalOnly},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds, cands := p.ProcessComment(models.Comment{ID: "c4", Author: "bob", Body: tt.body})
			if len(preds) != 0 {
				t.Fatalf("got %d predictions, want 0", len(preds))
			}
			if len(cands) != 1 {
				t.Fatalf("got %d candidates, want 1", len(cands))
			}
			if cands[0].Reason != tt.reason {
				t.Errorf("reason = %q, want %q", cands[0].Reason, tt.reason)
			}
			if cands[0].Accepted {
				t.Error("excluded candidate must not be accepted")
			}
		})
	}
}

func TestProcessCommentTopicStickiness(t *testing.T) {
	p := newPipeline()
	preds, _ := p.ProcessComment(models.Comment{
		ID:     "c5",
		Author: "carol",
		Body:   "ETH is looking strong. I think it tops out at $8k.",
	})
	if len(preds) != 1 {
		t.Fatalf("got %d predictions, want 1 via carried context", len(preds))
	}
	if preds[0].Amount != 8000 {
		t.Errorf("amount = %v, want 8000", preds[0].Amount)
	}
}

func TestProcessCommentNoMoneyMarker(t *testing.T) {
	p := newPipeline()
	preds, cands := p.ProcessComment(models.Comment{
		ID:     "c6",
		Author: "dave",
		Body:   "ETH will reach 5000 eventually.",
	})
	if len(preds) != 0 {
		t.Fatalf("got %d predictions, want 0 (bare numeral)", len(preds))
	}
	if len(cands) != 1 || cands[0].Reason != models.ReasonNoMoneyMarker {
		t.Errorf("candidates = %+v, want one with reason %q", cands, models.ReasonNoMoneyMarker)
	}
}

func TestProcessCommentDedupIdempotent(t *testing.T) {
	p := newPipeline()
	body := "ETH price target $10k, yes $10k"
	c := models.Comment{ID: "c7", Author: "erin", Body: body}

	once, _ := p.ProcessComment(c)
	twice, _ := p.ProcessComment(c)
	if len(once) != len(twice) {
		t.Fatalf("runs differ: %d vs %d predictions", len(once), len(twice))
	}
	if len(once) != 1 {
		t.Errorf("got %d predictions, want 1 (same figure twice in one sentence dedups)", len(once))
	}
}

func TestProcessCommentQuotedReplyIgnored(t *testing.T) {
	p := newPipeline()
	preds, _ := p.ProcessComment(models.Comment{
		ID:     "c8",
		Author: "frank",
		Body:   "> ETH will reach $100k this cycle\nNo chance.",
	})
	if len(preds) != 0 {
		t.Errorf("quoted prediction attributed to replier: got %d predictions", len(preds))
	}
}

func TestProcessComments(t *testing.T) {
	p := newPipeline()
	comments := []models.Comment{
		{ID: "a", Author: "u1", Body: "ETH tops out between $10k and $15k this cycle."},
		{ID: "b", Author: "u2", Body: "BTC to $200k."},
		{ID: "c", Author: "u3", Body: "eth price target $6k."},
	}
	preds, _ := p.ProcessComments(comments)
	if len(preds) != 2 {
		t.Fatalf("got %d predictions, want 2", len(preds))
	}
	if preds[0].CommentID != "a" || preds[1].CommentID != "c" {
		t.Errorf("prediction order = %q,%q, want a,c", preds[0].CommentID, preds[1].CommentID)
	}
}

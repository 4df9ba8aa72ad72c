// Package pipeline walks a comment's sentences through normalization,
// classification and extraction, deduplicating the resulting predictions
// per comment.
package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/classify"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/extract"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/money"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/textnorm"
)

// Dedup key parameters: amounts are bucketed to $100 and sentences keyed by
// a fixed-length prefix, so the same figure caught twice by overlapping
// pattern matches is only counted once.
const (
	dedupAmountBucket   = 100
	dedupSentencePrefix = 40
)

// LanguageFilter accepts or rejects whole comment bodies before
// classification. A nil filter accepts everything.
type LanguageFilter interface {
	IsEnglish(text string) bool
}

// Pipeline is the comment-level orchestrator.
type Pipeline struct {
	extractor       extract.Extractor
	excludedAuthors map[string]struct{}
	lang            LanguageFilter
}

// New builds a pipeline with the given plausibility bounds and author
// exclusion set (moderation bots, automated daily-summary accounts).
func New(bounds money.Bounds, excludedAuthors []string, lang LanguageFilter) *Pipeline {
	excluded := make(map[string]struct{}, len(excludedAuthors))
	for _, a := range excludedAuthors {
		excluded[strings.ToLower(a)] = struct{}{}
	}
	return &Pipeline{
		extractor:       extract.Extractor{Bounds: bounds},
		excludedAuthors: excluded,
		lang:            lang,
	}
}

func dedupKey(commentID string, amount float64, sentence string) string {
	prefix := sentence
	if len(prefix) > dedupSentencePrefix {
		prefix = prefix[:dedupSentencePrefix]
	}
	bucket := math.Round(amount / dedupAmountBucket)
	return fmt.Sprintf("%s|%.0f|%s", commentID, bucket, prefix)
}

// ProcessComment extracts predictions from one comment. Excluded authors and
// competitor-only comments are skipped wholesale: no predictions, no logged
// candidates. Sentence context carries forward one step — a prediction is
// often stated in the sentence after the asset is named.
func (p *Pipeline) ProcessComment(c models.Comment) ([]models.Prediction, []models.Candidate) {
	if c.Author != "" {
		if _, skip := p.excludedAuthors[strings.ToLower(c.Author)]; skip {
			return nil, nil
		}
	}

	var body string
	if c.BodyHTML != "" {
		body = textnorm.NormalizeHTML(c.BodyHTML)
	} else {
		body = textnorm.Normalize(c.Body)
	}
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	if p.lang != nil && !p.lang.IsEnglish(body) {
		return nil, nil
	}

	// Cross-asset contamination guard: a comment about a competing asset
	// that never names the target is irrelevant in its entirety.
	if classify.CompetitorOnly(body) {
		return nil, nil
	}
	commentHadTarget := classify.MentionsTarget(body)

	var predictions []models.Prediction
	var candidates []models.Candidate
	seen := make(map[string]struct{})

	priorHadTarget := false
	for sentence := range textnorm.Sentences(body) {
		res := classify.Classify(sentence, classify.Context{
			PriorHadTarget:   priorHadTarget,
			CommentHadTarget: commentHadTarget,
		})
		cand := models.Candidate{
			Sentence:   sentence,
			HasTarget:  res.HasTarget,
			HasForward: res.HasForward,
			CommentID:  c.ID,
		}

		// Exclusion rules disqualify regardless of context match.
		if reason := classify.Exclude(sentence); reason != models.ReasonNone {
			cand.Reason = reason
			candidates = append(candidates, cand)
			priorHadTarget = classify.MentionsTarget(sentence)
			continue
		}

		if res.HasTarget && res.HasForward {
			preds, found := p.extractor.Extract(sentence)
			cand.AmountsFound = found
			if len(preds) == 0 {
				cand.Reason = models.ReasonNoMoneyMarker
			} else {
				cand.Accepted = true
				for _, pred := range preds {
					pred.CommentID = c.ID
					pred.Author = c.Author
					key := dedupKey(c.ID, pred.Amount, sentence)
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					predictions = append(predictions, pred)
				}
			}
		}

		candidates = append(candidates, cand)
		priorHadTarget = classify.MentionsTarget(sentence)
	}

	return predictions, candidates
}

// ProcessComments runs every comment through the pipeline, concatenating
// per-comment results in input order.
func (p *Pipeline) ProcessComments(comments []models.Comment) ([]models.Prediction, []models.Candidate) {
	var predictions []models.Prediction
	var candidates []models.Candidate
	for _, c := range comments {
		preds, cands := p.ProcessComment(c)
		predictions = append(predictions, preds...)
		candidates = append(candidates, cands...)
	}
	return predictions, candidates
}

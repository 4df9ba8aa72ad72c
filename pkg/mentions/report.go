package mentions

import (
	"sort"
	"time"

	"github.com/shanelightowler/crypto-daily-mentions/models"
)

// ResultRow is one symbol's tally, carrying the curated display name.
type ResultRow struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// Report is the per-thread mention count output.
type Report struct {
	ThreadTitle string         `json:"thread_title"`
	ThreadURL   string         `json:"thread_url"`
	GeneratedAt string         `json:"generated_at_utc"`
	Results     map[string]int `json:"results"`
	ResultsList []ResultRow    `json:"results_list"`
}

// Tally runs the matcher over every comment, skipping bot-like authors when
// excludeBots is set, and assembles the report sorted by descending count.
func Tally(m *Matcher, thread *models.Thread, comments []models.Comment, excludeBots bool) *Report {
	totals := make(map[string]int)
	for _, c := range comments {
		if excludeBots && SkipAuthor(c.Author) {
			continue
		}
		for sym, n := range m.Count(c.Body) {
			totals[sym] += n
		}
	}

	rows := make([]ResultRow, 0, len(totals))
	for sym, n := range totals {
		rows = append(rows, ResultRow{Symbol: sym, Name: DisplayName(sym), Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Symbol < rows[j].Symbol
	})

	return &Report{
		ThreadTitle: thread.Title,
		ThreadURL:   thread.URL(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Results:     totals,
		ResultsList: rows,
	}
}

// CorpusEntry is one archived comment in a comments-<date>.jsonl corpus.
type CorpusEntry struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Body   string `json:"body"`
}

// AuditRow compares strict and loose counts for one symbol.
type AuditRow struct {
	Symbol string
	Strict int
	Loose  int
}

// Audit runs both matchers over an archived corpus. The strict pass mirrors
// production (bot filter, acceptance rules); the loose pass counts every
// alias hit with no filtering, bounding how much the strict rules cost.
func Audit(coins []Coin, corpus []CorpusEntry, targets []string) []AuditRow {
	strict := NewStrictMatcher(coins, CountOccurrence)
	loose := NewLooseMatcher(coins)

	strictTotals := make(map[string]int)
	looseTotals := make(map[string]int)
	for _, entry := range corpus {
		if !SkipAuthor(entry.Author) {
			for sym, n := range strict.Count(entry.Body) {
				strictTotals[sym] += n
			}
		}
		for sym, n := range loose.Count(entry.Body) {
			looseTotals[sym] += n
		}
	}

	rows := make([]AuditRow, 0, len(targets))
	for _, sym := range targets {
		rows = append(rows, AuditRow{Symbol: sym, Strict: strictTotals[sym], Loose: looseTotals[sym]})
	}
	return rows
}

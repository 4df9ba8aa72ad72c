package mentions

import (
	"strings"
	"unicode"

	"github.com/shanelightowler/crypto-daily-mentions/pkg/textnorm"
)

// CountMode selects how repeated mentions inside one comment tally.
type CountMode string

const (
	// CountOccurrence counts every mention.
	CountOccurrence CountMode = "occurrence"
	// CountPerComment counts each symbol at most once per comment.
	CountPerComment CountMode = "per_comment"
)

type aliasMeta struct {
	Symbol  string
	CashTag bool
}

// Matcher finds coin aliases in free text. Strict matchers apply the
// semi-loose acceptance profile: cash-tags always count, bare symbols only
// from the whitelist, full names only for top coins, and anything else needs
// an ALL-CAPS token.
type Matcher struct {
	aliases  map[string]aliasMeta
	maxWords int
	strict   bool
	Mode     CountMode
}

// NewStrictMatcher builds the production matcher from the coin listing.
// Canonical coins register first so they own contested aliases.
func NewStrictMatcher(coins []Coin, mode CountMode) *Matcher {
	m := &Matcher{
		aliases:  make(map[string]aliasMeta),
		maxWords: 1,
		strict:   true,
		Mode:     mode,
	}

	byID := make(map[string]Coin, len(coins))
	for _, c := range coins {
		if c.ID != "" {
			byID[c.ID] = c
		}
	}
	for sym, canon := range canonicalSymbols {
		if coin, ok := byID[canon.GeckoID]; ok {
			m.addCoin(coin, sym)
		}
	}
	for _, c := range coins {
		m.addCoin(c, strings.ToUpper(strings.TrimSpace(c.Symbol)))
	}
	return m
}

// NewLooseMatcher builds the audit matcher: every coin matches by cash-tag,
// bare symbol and full name, with no acceptance filtering.
func NewLooseMatcher(coins []Coin) *Matcher {
	m := &Matcher{
		aliases:  make(map[string]aliasMeta),
		maxWords: 1,
		strict:   false,
		Mode:     CountOccurrence,
	}
	for _, c := range coins {
		sym := strings.ToLower(strings.TrimSpace(c.Symbol))
		if c.ID == "" || sym == "" {
			continue
		}
		symUp := strings.ToUpper(sym)
		m.add("$"+sym, symUp, true)
		m.add(sym, symUp, false)
		if name := strings.ToLower(strings.TrimSpace(c.Name)); len(name) >= 3 {
			m.add(name, symUp, false)
		}
	}
	return m
}

func (m *Matcher) addCoin(c Coin, symUp string) {
	sym := strings.ToLower(strings.TrimSpace(c.Symbol))
	if c.ID == "" || sym == "" || symUp == "" {
		return
	}
	if len(sym) < 2 || !isAlnum(sym) {
		return
	}

	m.add("$"+sym, symUp, true)

	if _, ok := bareSymbols[symUp]; ok {
		m.add(sym, symUp, false)
	}

	if _, ok := fullNameSymbols[symUp]; ok {
		if name := strings.ToLower(strings.TrimSpace(c.Name)); len(name) >= 3 {
			m.add(name, symUp, false)
		}
		for _, extra := range extraFullNames[symUp] {
			if len(extra) >= 3 {
				m.add(extra, symUp, false)
			}
		}
	}
}

// add registers an alias unless something already claims it.
func (m *Matcher) add(alias, symbol string, cashTag bool) {
	if _, taken := m.aliases[alias]; taken {
		return
	}
	m.aliases[alias] = aliasMeta{Symbol: symbol, CashTag: cashTag}
	if n := strings.Count(alias, " ") + 1; n > m.maxWords {
		m.maxWords = n
	}
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// tokenize splits text into word tokens, keeping a leading $ attached to
// its word and preserving original case for the ALL-CAPS check.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '$' && b.Len() == 0 && i+1 < len(runes) &&
			(unicode.IsLetter(runes[i+1]) || unicode.IsDigit(runes[i+1])):
			b.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// Count tallies accepted mentions in one comment body. Matching is
// case-insensitive, longest alias first, non-overlapping.
func (m *Matcher) Count(text string) map[string]int {
	text = textnorm.Normalize(text)
	tokens := tokenize(text)
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}

	counts := make(map[string]int)
	for i := 0; i < len(tokens); {
		matched := 1
		var hit *aliasMeta
		var hitText string
		for n := m.maxWords; n >= 1; n-- {
			if i+n > len(tokens) {
				continue
			}
			alias := strings.Join(lowered[i:i+n], " ")
			if meta, ok := m.aliases[alias]; ok {
				hit = &meta
				hitText = strings.Join(tokens[i:i+n], " ")
				matched = n
				break
			}
		}
		if hit != nil && m.accept(*hit, hitText) {
			counts[hit.Symbol]++
		}
		i += matched
	}

	if m.Mode == CountPerComment {
		for sym := range counts {
			counts[sym] = 1
		}
	}
	return counts
}

func (m *Matcher) accept(meta aliasMeta, matched string) bool {
	if !m.strict || meta.CashTag {
		return true
	}
	if _, relaxed := bareSymbols[meta.Symbol]; relaxed {
		return true
	}
	// Obscure coins only count when written as a deliberate ticker.
	return len(matched) >= 3 && matched == strings.ToUpper(matched)
}

// SkipAuthor reports whether a username looks like a bot or moderator
// account that should not contribute mentions.
func SkipAuthor(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	if lower == "automoderator" {
		return true
	}
	for _, part := range botNamePatterns {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

// DisplayName returns the curated display name for a symbol, or empty when
// the symbol is not in the canonical table.
func DisplayName(symbol string) string {
	return canonicalSymbols[symbol].Display
}

package mentions

import "testing"

func testCoins() []Coin {
	return []Coin{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
		{ID: "solana", Symbol: "sol", Name: "Solana"},
		{ID: "quant-network", Symbol: "qnt", Name: "Quant"},
		{ID: "bitcoin-cash", Symbol: "bch", Name: "Bitcoin Cash"},
		{ID: "some-obscure-coin", Symbol: "xyzt", Name: "Xyzt Protocol"},
	}
}

func TestStrictMatcherCashTag(t *testing.T) {
	m := NewStrictMatcher(testCoins(), CountOccurrence)
	counts := m.Count("loading up on $eth and $xyzt today")
	if counts["ETH"] != 1 {
		t.Errorf("ETH = %d, want 1", counts["ETH"])
	}
	if counts["XYZT"] != 1 {
		t.Errorf("XYZT = %d, want 1 (cash-tag always counts)", counts["XYZT"])
	}
}

func TestStrictMatcherBareWhitelist(t *testing.T) {
	m := NewStrictMatcher(testCoins(), CountOccurrence)
	counts := m.Count("eth and btc look strong, xyzt too")
	if counts["ETH"] != 1 || counts["BTC"] != 1 {
		t.Errorf("whitelisted bare symbols: ETH=%d BTC=%d, want 1/1", counts["ETH"], counts["BTC"])
	}
	if counts["XYZT"] != 0 {
		t.Errorf("XYZT = %d, want 0 (lowercase, not whitelisted)", counts["XYZT"])
	}
}

func TestStrictMatcherFullNames(t *testing.T) {
	m := NewStrictMatcher(testCoins(), CountOccurrence)
	counts := m.Count("ethereum and bitcoin cash are both up")
	if counts["ETH"] != 1 {
		t.Errorf("ETH = %d, want 1 (full name)", counts["ETH"])
	}
	if counts["BCH"] != 1 {
		t.Errorf("BCH = %d, want 1 (multi-word name)", counts["BCH"])
	}
	if counts["BTC"] != 0 {
		t.Errorf("BTC = %d, want 0 (bitcoin cash must not also count as bitcoin)", counts["BTC"])
	}
}

func TestStrictMatcherOccurrenceVsPerComment(t *testing.T) {
	text := "eth eth eth"
	occ := NewStrictMatcher(testCoins(), CountOccurrence).Count(text)
	if occ["ETH"] != 3 {
		t.Errorf("occurrence mode: ETH = %d, want 3", occ["ETH"])
	}
	per := NewStrictMatcher(testCoins(), CountPerComment).Count(text)
	if per["ETH"] != 1 {
		t.Errorf("per-comment mode: ETH = %d, want 1", per["ETH"])
	}
}

func TestStrictMatcherStripsQuotedText(t *testing.T) {
	m := NewStrictMatcher(testCoins(), CountOccurrence)
	counts := m.Count("> btc to the moon\nI prefer eth")
	if counts["BTC"] != 0 {
		t.Errorf("BTC = %d, want 0 (quoted line)", counts["BTC"])
	}
	if counts["ETH"] != 1 {
		t.Errorf("ETH = %d, want 1", counts["ETH"])
	}
}

func TestLooseMatcherCountsEverything(t *testing.T) {
	m := NewLooseMatcher(testCoins())
	counts := m.Count("xyzt might flip quant")
	if counts["XYZT"] != 1 {
		t.Errorf("XYZT = %d, want 1 (loose mode has no acceptance rules)", counts["XYZT"])
	}
	if counts["QNT"] != 1 {
		t.Errorf("QNT = %d, want 1 (name match)", counts["QNT"])
	}
}

func TestSkipAuthor(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"AutoModerator", true},
		{"coin_price_bot", true},
		{"moonfarmer", true},
		{"tipjar", true},
		{"regular_user", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := SkipAuthor(tt.name); got != tt.want {
			t.Errorf("SkipAuthor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("ETH"); got != "Ethereum" {
		t.Errorf("DisplayName(ETH) = %q, want Ethereum", got)
	}
	if got := DisplayName("NOPE"); got != "" {
		t.Errorf("DisplayName(NOPE) = %q, want empty", got)
	}
}

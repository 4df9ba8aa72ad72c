package money

import "testing"

var testBounds = Bounds{Min: 100, Max: 1_000_000}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		suffix string
		want   float64
		ok     bool
	}{
		{name: "plain number", raw: "5000", suffix: "", want: 5000, ok: true},
		{name: "currency marker", raw: "$5000", suffix: "", want: 5000, ok: true},
		{name: "group separators", raw: "$10,000", suffix: "", want: 10000, ok: true},
		{name: "k suffix", raw: "12", suffix: "k", want: 12000, ok: true},
		{name: "decimal with k", raw: "12.5", suffix: "k", want: 12500, ok: true},
		{name: "m suffix at max", raw: "1", suffix: "m", want: 1_000_000, ok: true},
		{name: "uppercase suffix", raw: "10", suffix: "K", want: 10000, ok: true},
		{name: "below min", raw: "50", suffix: "", ok: false},
		{name: "above max", raw: "2", suffix: "m", ok: false},
		{name: "billion suffix rejected", raw: "2", suffix: "b", ok: false},
		{name: "trillion suffix rejected", raw: "1", suffix: "t", ok: false},
		{name: "non-numeric", raw: "ten", suffix: "k", ok: false},
		{name: "empty", raw: "", suffix: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw, tt.suffix, testBounds)
			if ok != tt.ok {
				t.Fatalf("ParseAmount(%q, %q) ok = %v, want %v", tt.raw, tt.suffix, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAmount(%q, %q) = %v, want %v", tt.raw, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestParseAmountSuffixMonotonic(t *testing.T) {
	wide := Bounds{Min: 0, Max: 1e12}
	base, ok := ParseAmount("5", "", wide)
	if !ok {
		t.Fatal("base parse failed")
	}
	withK, ok := ParseAmount("5", "k", wide)
	if !ok {
		t.Fatal("k parse failed")
	}
	if withK != base*1000 {
		t.Errorf("k suffix: got %v, want %v", withK, base*1000)
	}
	withM, ok := ParseAmount("5", "m", wide)
	if !ok {
		t.Fatal("m parse failed")
	}
	if withM != base*1_000_000 {
		t.Errorf("m suffix: got %v, want %v", withM, base*1_000_000)
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Min: 100, Max: 1000}
	for _, v := range []float64{100, 500, 1000} {
		if !b.Contains(v) {
			t.Errorf("Contains(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{99.99, 1000.01, -5} {
		if b.Contains(v) {
			t.Errorf("Contains(%v) = true, want false", v)
		}
	}
}

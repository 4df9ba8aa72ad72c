package textnorm

import (
	"slices"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "plain text untouched",
			body: "ETH will hit $10k.",
			want: "ETH will hit $10k.",
		},
		{
			name: "quoted lines dropped",
			body: "> someone said eth to $100k\nI disagree.",
			want: "I disagree.",
		},
		{
			name: "inline code removed",
			body: "run `eth --price 5000` to see",
			want: "run   to see",
		},
		{
			name: "fenced code removed",
			body: "look:\n```\neth = 10000\n```\ndone",
			want: "look:\n \ndone",
		},
		{
			name: "urls removed",
			body: "see https://example.com/eth-10000 for details",
			want: "see   for details",
		},
		{
			name: "html entity unescaped",
			body: "BTC &amp; ETH",
			want: "BTC & ETH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.body); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestNormalizeHTMLDropsQuotes(t *testing.T) {
	html := `<div><blockquote><p>eth to $100k</p></blockquote><p>I think $5k max.</p></div>`
	got := NormalizeHTML(html)
	if want := "I think $5k max."; !strings.Contains(got, want) {
		t.Errorf("NormalizeHTML() = %q, want it to contain %q", got, want)
	}
	if strings.Contains(got, "100k") {
		t.Errorf("NormalizeHTML() = %q, quoted content should be dropped", got)
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "split on punctuation",
			text: "First one. Second one! Third one?",
			want: []string{"First one.", "Second one!", "Third one?"},
		},
		{
			name: "split on newlines",
			text: "line one\nline two",
			want: []string{"line one", "line two"},
		},
		{
			name: "decimals survive",
			text: "ETH to $12.5k this cycle. For sure.",
			want: []string{"ETH to $12.5k this cycle.", "For sure."},
		},
		{
			name: "empty segments dropped",
			text: "one.  \n\n two.",
			want: []string{"one.", "two."},
		},
		{
			name: "no trailing punctuation",
			text: "tail sentence",
			want: []string{"tail sentence"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Sentences(tt.text))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Sentences(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentencesRestartable(t *testing.T) {
	seq := Sentences("one. two. three.")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second pass %q differs from first %q", second, first)
	}
}

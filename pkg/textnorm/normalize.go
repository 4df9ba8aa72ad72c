// Package textnorm cleans Reddit comment bodies and segments them into
// sentence-like units for classification.
package textnorm

import (
	"iter"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]*`")
	urlRe        = regexp.MustCompile(`https?://\S+`)
)

// Normalize strips fenced and inline code spans, quoted reply lines and URLs
// from a markdown comment body, so quoted prior statements are never
// misattributed to the current author.
func Normalize(body string) string {
	s := fencedCodeRe.ReplaceAllString(body, " ")
	s = inlineCodeRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			continue
		}
		kept = append(kept, line)
	}
	s = strings.Join(kept, "\n")

	s = urlRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// NormalizeHTML reduces an HTML comment body to plain text, dropping
// blockquote and code subtrees the same way Normalize drops their markdown
// equivalents. Falls back to the raw input when the fragment cannot be parsed.
func NormalizeHTML(bodyHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyHTML))
	if err != nil {
		return bodyHTML
	}
	doc.Find("blockquote, pre, code").Remove()
	// Paragraph breaks become newlines so sentence segmentation still sees them.
	doc.Find("p, br, li").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})
	return urlRe.ReplaceAllString(doc.Text(), " ")
}

// Sentences splits normalized text on sentence-final punctuation or line
// breaks, yielding trimmed non-empty units. The sequence is lazy, finite and
// restartable; ranging over it twice walks the same sentences.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		emit := func(end int) bool {
			s := strings.TrimSpace(text[start:end])
			start = end
			if s == "" {
				return true
			}
			return yield(s)
		}
		for i := 0; i < len(text); i++ {
			switch text[i] {
			case '\n':
				if !emit(i + 1) {
					return
				}
			case '.', '!', '?':
				// Cut only at punctuation followed by whitespace, so "12.5"
				// and "$10.5k" stay intact.
				if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t' || text[i+1] == '\n') {
					if !emit(i + 1) {
						return
					}
				}
			}
		}
		emit(len(text))
	}
}

// Package langdetect provides an optional English check for comment bodies.
// The prediction heuristics are tuned to English idiom, so non-English
// comments can be skipped before classification.
package langdetect

import "github.com/pemistahl/lingua-go"

// Detector wraps a lingua language detector restricted to the languages
// actually seen in these threads; a smaller set keeps detection fast.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	langs := []lingua.Language{
		lingua.English,
		lingua.Spanish,
		lingua.Portuguese,
		lingua.German,
		lingua.French,
		lingua.Russian,
		lingua.Turkish,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			WithMinimumRelativeDistance(0.25).
			Build(),
	}
}

// IsEnglish reports whether the text reads as English. Undetectable text is
// accepted — the downstream heuristics degrade to "no prediction" on their
// own, and dropping short comments outright would cost recall.
func (d *Detector) IsEnglish(text string) bool {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return true
	}
	return lang == lingua.English
}

// Package langdetect guesses the language of article text so the display
// record can report it next to the declared original_language.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// The feed carries European news content; restricting the candidate set
// keeps the detector's model footprint small.
var candidates = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Italian,
	lingua.Polish,
	lingua.Dutch,
	lingua.Portuguese,
}

// Detector wraps a lingua language detector.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a Detector. Construction is expensive; share one instance
// across workers.
func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the most likely language of text and
// a confidence in [0,1]. Empty or undetectable text returns ("", 0).
func (d *Detector) Detect(text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return "", 0
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}

	confidence := d.detector.ComputeLanguageConfidence(text, lang)
	return strings.ToLower(lang.IsoCode639_1().String()), confidence
}

package entities

import (
	"context"
	"regexp"
)

// legalConfidence is the fixed confidence for legal-pattern matches.
const legalConfidence = 0.85

// legalSpecs hold the legal-domain identifier patterns: contract, case, and
// license references plus Indian tax and identity number formats. Declared as
// an ordered slice so detection output is deterministic.
var legalSpecs = []struct {
	entityType string
	pattern    *regexp.Regexp
}{
	{"CONTRACT_ID", regexp.MustCompile(`(?i)Contract\s*(?:No\.?|#|ID)\s*:?\s*[A-Z0-9\-/]+`)},
	{"CASE_NUMBER", regexp.MustCompile(`(?i)Case\s*(?:No\.?|#)\s*:?\s*[A-Z0-9\-/]+`)},
	{"LICENSE_NUMBER", regexp.MustCompile(`(?i)License\s*(?:No\.?|#)\s*:?\s*[A-Z0-9\-/]+`)},
	{"PAN_NUMBER", regexp.MustCompile(`(?i)[A-Z]{5}[0-9]{4}[A-Z]`)},
	{"AADHAR_NUMBER", regexp.MustCompile(`\d{4}\s?\d{4}\s?\d{4}`)},
	{"GST_NUMBER", regexp.MustCompile(`(?i)\d{2}[A-Z]{5}\d{4}[A-Z][A-Z\d]Z[A-Z\d]`)},
}

// LegalDetector matches legal-domain identifier formats.
type LegalDetector struct{}

// NewLegalDetector creates the legal-pattern detector.
func NewLegalDetector() *LegalDetector {
	return &LegalDetector{}
}

// Detect runs every legal pattern over the text.
func (d *LegalDetector) Detect(_ context.Context, text string) ([]Span, error) {
	var spans []Span
	for _, spec := range legalSpecs {
		for _, m := range spec.pattern.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{
				Text:       text[m[0]:m[1]],
				Type:       spec.entityType,
				Start:      m[0],
				End:        m[1],
				Confidence: legalConfidence,
			})
		}
	}
	return spans, nil
}

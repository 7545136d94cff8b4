package entities

import (
	"context"
	"regexp"
)

// localConfidence is the fixed confidence assigned to lexical matches; the
// pass has no statistical scores to report.
const localConfidence = 0.9

// lexicalSpecs pair compiled patterns with entity types for the local
// detection pass. The pass catches structured values and name-shaped text
// that the external service may miss or that runs without it entirely.
var lexicalSpecs = []struct {
	entityType string
	pattern    *regexp.Regexp
}{
	{"EMAIL", regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)},
	{"PHONE_NUMBER", regexp.MustCompile(`\+?\d{1,3}[\s\-.]?\(?\d{3}\)?[\s\-.]\d{3}[\s\-.]\d{4}\b`)},
	{"MONEY", regexp.MustCompile(`[$€£₹]\s?\d[\d,]*(?:\.\d+)?`)},
	{"PERCENT", regexp.MustCompile(`\b\d+(?:\.\d+)?\s?%`)},
	{"DATE", regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`)},
	{"DATE", regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)},
	{"PERSON", regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Dr|Prof)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`)},
	{"ORGANIZATION", regexp.MustCompile(`\b[A-Z][A-Za-z&]*(?:\s+[A-Z][A-Za-z&]*)*\s+(?:Inc|LLC|Ltd|Corp|Corporation|Company)\b\.?`)},
	{"ADDRESS", regexp.MustCompile(`\b\d+\s+[A-Z][A-Za-z\s]*(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr)\b\.?`)},
}

// LexicalDetector is the local statistical stand-in: a fixed pattern pass
// with a constant confidence.
type LexicalDetector struct{}

// NewLexicalDetector creates the local pattern detector.
func NewLexicalDetector() *LexicalDetector {
	return &LexicalDetector{}
}

// Detect runs every lexical pattern over the text.
func (d *LexicalDetector) Detect(_ context.Context, text string) ([]Span, error) {
	var spans []Span
	for _, spec := range lexicalSpecs {
		for _, m := range spec.pattern.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{
				Text:       text[m[0]:m[1]],
				Type:       spec.entityType,
				Start:      m[0],
				End:        m[1],
				Confidence: localConfidence,
			})
		}
	}
	return spans, nil
}

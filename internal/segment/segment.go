// Package segment splits legal document text into an ordered sequence of
// clause strings using layered heuristics: formal structure detection first,
// then legal-sentence extraction, then paragraph splitting.
package segment

import "strings"

const (
	// minSegmentLength is the post-filter floor for any clause.
	minSegmentLength = 15
	// minSentenceLength drops fragments unconditionally in the sentence strategy.
	minSentenceLength = 20
	// longSentenceLength keeps a sentence even without legal indicators.
	longSentenceLength = 50
	// minParagraphLength is the keep threshold for the paragraph fallback.
	minParagraphLength = 30
	// metadataMaxLength bounds how long a line can be and still count as boilerplate.
	metadataMaxLength = 50
	// formalMinimum is the clause count a structural pattern must exceed to win.
	formalMinimum = 3
)

// Segmenter splits raw document text into clauses.
type Segmenter struct{}

// New creates a Segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// Segment splits text into ordered clause strings. Empty or whitespace-only
// input yields an empty slice. The first strategy producing more than three
// clauses wins; otherwise sentence extraction and finally paragraph splitting
// apply. A post-filter drops short segments and metadata lines regardless of
// strategy.
func (s *Segmenter) Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	text = cleanText(text)

	segments := extractFormalStructure(text)
	if len(segments) <= formalMinimum {
		segments = extractLegalSentences(text)
	}
	if len(segments) == 0 {
		segments = extractParagraphs(text)
	}

	return filterSegments(segments)
}

// cleanText normalizes line endings, collapses horizontal whitespace runs,
// and reduces runs of blank lines to a single blank line. Single newlines
// survive so that line-anchored structural patterns still apply.
func cleanText(text string) string {
	text = crlf.ReplaceAllString(text, "\n")
	text = horizontalWS.ReplaceAllString(text, " ")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// extractFormalStructure runs every structural pattern independently and
// keeps the largest match list. Ties resolve to the earliest-declared
// pattern: a later pattern replaces the best list only when strictly longer.
func extractFormalStructure(text string) []string {
	var best []string

	for _, p := range clausePatterns {
		anchors := p.start.FindAllStringIndex(text, -1)
		if len(anchors) <= len(best) {
			continue
		}

		segments := make([]string, 0, len(anchors))
		for i, anchor := range anchors {
			end := len(text)
			if i+1 < len(anchors) {
				end = anchors[i+1][0]
			}
			segments = append(segments, strings.TrimSpace(text[anchor[0]:end]))
		}

		if len(segments) > len(best) {
			best = segments
		}
	}

	return best
}

// extractLegalSentences keeps sentences that carry legal connective language
// or are long enough to be substantive. Fragments under 20 characters are
// dropped unconditionally.
func extractLegalSentences(text string) []string {
	var sentences []string

	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < minSentenceLength {
			continue
		}

		lower := strings.ToLower(sentence)
		if containsAny(lower, legalIndicators) {
			sentences = append(sentences, sentence)
		} else if len(sentence) > longSentenceLength {
			sentences = append(sentences, sentence)
		}
	}

	return sentences
}

// extractParagraphs splits on blank lines as a last resort.
func extractParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if len(p) > minParagraphLength {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// splitSentences cuts text after terminal punctuation followed by whitespace.
func splitSentences(text string) []string {
	bounds := sentenceEnd.FindAllStringIndex(text, -1)
	if bounds == nil {
		return []string{text}
	}

	var sentences []string
	start := 0
	for _, b := range bounds {
		sentences = append(sentences, text[start:b[1]])
		start = b[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// filterSegments drops empty, short, and metadata-only segments.
func filterSegments(segments []string) []string {
	filtered := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if len(segment) < minSegmentLength {
			continue
		}
		if isMetadata(segment) {
			continue
		}
		filtered = append(filtered, segment)
	}
	return filtered
}

// isMetadata reports whether a segment is header/footer boilerplate or a bare
// page number.
func isMetadata(text string) bool {
	if pageNumber.MatchString(strings.TrimSpace(text)) {
		return true
	}
	if len(text) < metadataMaxLength && containsAny(strings.ToLower(text), metadataIndicators) {
		return true
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

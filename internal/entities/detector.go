package entities

import "context"

// Detector yields entity spans for a text. Implementations must report spans
// against the exact text they were given; the anonymizer relies on the
// offsets for replacement.
type Detector interface {
	Detect(ctx context.Context, text string) ([]Span, error)
}

// combine merges span lists in argument order, dropping any span whose exact
// (start, end) pair was already seen from an earlier list. Detection order
// therefore determines which source's label wins for identical spans.
// Overlapping but non-identical spans are all kept.
func combine(lists ...[]Span) []Span {
	type spanKey struct{ start, end int }

	var combined []Span
	seen := make(map[spanKey]struct{})

	for _, list := range lists {
		for _, span := range list {
			key := spanKey{span.Start, span.End}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			combined = append(combined, span)
		}
	}

	return combined
}

package entities

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Anonymizer performs the anonymize/restore round trip. Detection sources
// run in a fixed merge order — external service, lexical pass, legal
// patterns — so exact-span collisions always resolve the same way.
type Anonymizer struct {
	external Detector
	local    Detector
	legal    Detector
	logger   *slog.Logger
}

// New creates an Anonymizer. The external detector may be nil, in which case
// detection relies on the lexical and legal passes alone.
func New(external Detector, logger *slog.Logger) *Anonymizer {
	return &Anonymizer{
		external: external,
		local:    NewLexicalDetector(),
		legal:    NewLegalDetector(),
		logger:   logger.With("system", "anonymizer"),
	}
}

// Anonymize replaces every sensitive-typed span in text with a unique
// placeholder and returns the rewritten text plus the placeholder mapping.
// Detector failures degrade to the remaining sources rather than failing the
// request.
func (a *Anonymizer) Anonymize(ctx context.Context, text string) (string, map[string]Mapping) {
	spans := combine(
		a.detect(ctx, a.external, "external", text),
		a.detect(ctx, a.local, "lexical", text),
		a.detect(ctx, a.legal, "legal", text),
	)

	// Replace right to left so pending (leftward) offsets stay valid.
	slices.SortStableFunc(spans, func(x, y Span) int {
		return y.Start - x.Start
	})

	mappings := make(map[string]Mapping)
	anonymized := text

	for _, span := range spans {
		if _, sensitive := sensitivePlaceholders[span.Type]; !sensitive {
			continue
		}
		if span.Start < 0 || span.End > len(anonymized) || span.Start >= span.End {
			// Overlapping replacements can invalidate a span; skip rather
			// than corrupt the text.
			continue
		}

		placeholder := newPlaceholder(span.Type)
		original := anonymized[span.Start:span.End]
		anonymized = anonymized[:span.Start] + placeholder + anonymized[span.End:]

		mappings[placeholder] = Mapping{
			Original:   original,
			Anonymized: placeholder,
			EntityType: span.Type,
			Confidence: span.Confidence,
			Start:      span.Start,
			End:        span.End,
		}
	}

	return anonymized, mappings
}

// Restore replaces each placeholder with its stored original text. Literal
// substring replacement makes the operation idempotent: placeholders carry
// distinct random suffixes, so no placeholder is a substring of another and
// restored text can never contain a known placeholder.
func (a *Anonymizer) Restore(text string, mappings map[string]Mapping) string {
	ordered := make([]Mapping, 0, len(mappings))
	for _, m := range mappings {
		ordered = append(ordered, m)
	}
	slices.SortFunc(ordered, func(x, y Mapping) int {
		return y.Start - x.Start
	})

	restored := text
	for _, m := range ordered {
		restored = strings.ReplaceAll(restored, m.Anonymized, m.Original)
	}
	return restored
}

func (a *Anonymizer) detect(ctx context.Context, d Detector, source, text string) []Span {
	if d == nil {
		return nil
	}

	spans, err := d.Detect(ctx, text)
	if err != nil {
		a.logger.Warn("entity detection failed", "source", source, "error", err)
		return nil
	}
	return spans
}

// newPlaceholder builds a placeholder from the type's template prefix and a
// random 8-character suffix, unique per occurrence.
func newPlaceholder(entityType string) string {
	prefix, ok := sensitivePlaceholders[entityType]
	if !ok {
		prefix = entityType + "_"
	}
	return prefix + uuid.NewString()[:8]
}

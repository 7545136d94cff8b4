package entities_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/clarity-counsel/counsel/internal/entities"
)

type fakeDetector struct {
	spans []entities.Span
	err   error
}

func (d *fakeDetector) Detect(_ context.Context, _ string) ([]entities.Span, error) {
	return d.spans, d.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnonymizeRestoreRoundTrip(t *testing.T) {
	text := "Contact john.doe@example.com regarding Contract No: ABC-123 and pay $5,000."
	a := entities.New(nil, testLogger())

	anonymized, mappings := a.Anonymize(context.Background(), text)

	if len(mappings) != 3 {
		t.Fatalf("mapping count = %d, want 3: %v", len(mappings), mappings)
	}
	for _, leaked := range []string{"john.doe@example.com", "ABC-123", "$5,000"} {
		if strings.Contains(anonymized, leaked) {
			t.Errorf("anonymized text still contains %q: %s", leaked, anonymized)
		}
	}
	for _, prefix := range []string{"EMAIL_", "CONTRACT_", "AMT_"} {
		if !strings.Contains(anonymized, prefix) {
			t.Errorf("anonymized text missing %s placeholder: %s", prefix, anonymized)
		}
	}

	restored := a.Restore(anonymized, mappings)
	if restored != text {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", restored, text)
	}
}

func TestRestoreIdempotent(t *testing.T) {
	text := "Send payment records to billing@firm.example before the deadline."
	a := entities.New(nil, testLogger())

	anonymized, mappings := a.Anonymize(context.Background(), text)

	once := a.Restore(anonymized, mappings)
	twice := a.Restore(once, mappings)

	if once != twice {
		t.Errorf("restore not idempotent:\n once %q\ntwice %q", once, twice)
	}
}

func TestExactSpanDedupPrefersExternal(t *testing.T) {
	text := "Mr. John Smith signs below."
	start := strings.Index(text, "Mr.")
	end := start + len("Mr. John Smith")

	external := &fakeDetector{spans: []entities.Span{
		{Text: "Mr. John Smith", Type: "ORGANIZATION", Start: start, End: end, Confidence: 0.99},
	}}

	a := entities.New(external, testLogger())
	_, mappings := a.Anonymize(context.Background(), text)

	if len(mappings) != 1 {
		t.Fatalf("mapping count = %d, want 1: %v", len(mappings), mappings)
	}
	for _, m := range mappings {
		if m.EntityType != "ORGANIZATION" {
			t.Errorf("entity type = %s, want ORGANIZATION (external source wins exact-span ties)", m.EntityType)
		}
	}
}

func TestNonSensitiveTypesNotReplaced(t *testing.T) {
	text := "the annual general meeting happened yesterday evening"

	external := &fakeDetector{spans: []entities.Span{
		{Text: "meeting", Type: "EVENT", Start: 19, End: 26, Confidence: 0.9},
	}}

	a := entities.New(external, testLogger())
	anonymized, mappings := a.Anonymize(context.Background(), text)

	if len(mappings) != 0 {
		t.Errorf("mappings = %v, want none", mappings)
	}
	if anonymized != text {
		t.Errorf("text changed: %q", anonymized)
	}
}

func TestExternalFailureDegradesToLocal(t *testing.T) {
	text := "Notices go to legal@company.example only."

	external := &fakeDetector{err: errors.New("service unavailable")}

	a := entities.New(external, testLogger())
	anonymized, mappings := a.Anonymize(context.Background(), text)

	if len(mappings) != 1 {
		t.Fatalf("mapping count = %d, want 1 (local detection should still run)", len(mappings))
	}
	if strings.Contains(anonymized, "legal@company.example") {
		t.Errorf("email survived: %s", anonymized)
	}
}

func TestLegalDetector(t *testing.T) {
	tests := []struct {
		text     string
		wantType string
	}{
		{"per Contract No: ABC-123 dated above", "CONTRACT_ID"},
		{"refer to Case No. 45/2020 in the annex", "CASE_NUMBER"},
		{"holding License # DL-9987 in good standing", "LICENSE_NUMBER"},
		{"PAN ABCDE1234F on record", "PAN_NUMBER"},
		{"Aadhaar 1234 5678 9012 verified", "AADHAR_NUMBER"},
	}

	d := entities.NewLegalDetector()

	for _, tt := range tests {
		spans, err := d.Detect(context.Background(), tt.text)
		if err != nil {
			t.Fatalf("detect %q: %v", tt.text, err)
		}

		found := false
		for _, span := range spans {
			if span.Type == tt.wantType {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: no %s span in %v", tt.text, tt.wantType, spans)
		}
	}
}

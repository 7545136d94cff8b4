package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/clarity-counsel/counsel/internal/analysis"
	"github.com/clarity-counsel/counsel/internal/entities"
	"github.com/clarity-counsel/counsel/internal/ingest"
	"github.com/clarity-counsel/counsel/internal/pipeline"
	"github.com/clarity-counsel/counsel/internal/segment"
)

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("model unreachable")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRuntime() *pipeline.Runtime {
	logger := testLogger()
	return &pipeline.Runtime{
		Ingest:     ingest.New(logger),
		Segmenter:  segment.New(),
		Anonymizer: entities.New(nil, logger),
		Analysis:   analysis.New(failingGenerator{}, logger),
		Logger:     logger,
	}
}

const contractText = `1. The employee shall report to the employer at the office every working day.
2. Salary of $5,000 is payable monthly to the employee by bank transfer.
3. Either party may terminate this employment with thirty days written notice.
4. All disputes shall be referred to arbitration under the governing law clause.`

func TestProcessTextCompletes(t *testing.T) {
	sys := pipeline.New(testRuntime())

	resp := sys.ProcessText(context.Background(), pipeline.Request{
		SessionID:        "session-1",
		DocumentName:     "contract.txt",
		Text:             contractText,
		PreserveEntities: true,
		Depth:            analysis.DepthComprehensive,
	})

	if resp.SessionID != "session-1" {
		t.Errorf("session id = %q", resp.SessionID)
	}
	if resp.Summary.TotalClauses != 4 {
		t.Fatalf("total clauses = %d, want 4", resp.Summary.TotalClauses)
	}
	if len(resp.Clauses) != resp.Summary.TotalClauses {
		t.Errorf("clause list length %d != summary count %d", len(resp.Clauses), resp.Summary.TotalClauses)
	}

	counted := resp.Summary.HighRiskClauses + resp.Summary.MediumRiskClauses + resp.Summary.LowRiskClauses
	if counted != resp.Summary.TotalClauses {
		t.Errorf("severity counts sum to %d, want %d", counted, resp.Summary.TotalClauses)
	}

	// The generator always fails, so the rule-based fallback produced the
	// analysis and flagged it for professional review.
	if len(resp.Summary.KeyConcerns) == 0 || !strings.Contains(resp.Summary.KeyConcerns[0], "professional review") {
		t.Errorf("key concerns = %v", resp.Summary.KeyConcerns)
	}

	if resp.Metadata.Status != "completed" {
		t.Errorf("status = %q, want completed", resp.Metadata.Status)
	}
	wantSteps := []string{"entity_anonymization", "clause_extraction", "ai_risk_analysis", "entity_restoration"}
	if len(resp.Metadata.Steps) != len(wantSteps) {
		t.Fatalf("steps = %v, want %v", resp.Metadata.Steps, wantSteps)
	}
	for i, step := range wantSteps {
		if resp.Metadata.Steps[i] != step {
			t.Errorf("step[%d] = %q, want %q", i, resp.Metadata.Steps[i], step)
		}
	}
}

func TestProcessTextRestoresEntities(t *testing.T) {
	sys := pipeline.New(testRuntime())

	resp := sys.ProcessText(context.Background(), pipeline.Request{
		SessionID:        "session-2",
		DocumentName:     "contract.txt",
		Text:             contractText,
		PreserveEntities: true,
		Depth:            analysis.DepthBasic,
	})

	if len(resp.EntityMappings) == 0 {
		t.Fatal("expected entity mappings for $5,000")
	}

	var found bool
	for _, report := range resp.Clauses {
		if strings.Contains(report.OriginalClause, "$5,000") {
			found = true
			if len(report.EntitiesFound) == 0 {
				t.Error("clause containing a detected entity lists none")
			}
		}
		if strings.Contains(report.OriginalClause, "AMT_") {
			t.Errorf("placeholder leaked into clause text: %q", report.OriginalClause)
		}
	}
	if !found {
		t.Error("restored clause with original amount not found")
	}
}

func TestProcessTextWithoutPreservation(t *testing.T) {
	sys := pipeline.New(testRuntime())

	resp := sys.ProcessText(context.Background(), pipeline.Request{
		SessionID:        "session-3",
		DocumentName:     "contract.txt",
		Text:             contractText,
		PreserveEntities: false,
		Depth:            analysis.DepthComprehensive,
	})

	if len(resp.EntityMappings) != 0 {
		t.Errorf("entity mappings = %v, want none", resp.EntityMappings)
	}
	for _, step := range resp.Metadata.Steps {
		if step == "entity_anonymization" || step == "entity_restoration" {
			t.Errorf("unexpected step %q with preservation disabled", step)
		}
	}
	if resp.Summary.TotalClauses != 4 {
		t.Errorf("total clauses = %d, want 4", resp.Summary.TotalClauses)
	}
}

func TestProcessTextNoClauses(t *testing.T) {
	sys := pipeline.New(testRuntime())

	resp := sys.ProcessText(context.Background(), pipeline.Request{
		SessionID:        "session-4",
		DocumentName:     "empty.txt",
		Text:             "   ",
		PreserveEntities: true,
		Depth:            analysis.DepthComprehensive,
	})

	if resp.Summary.DocumentCategory != "Error" {
		t.Errorf("document category = %q, want Error", resp.Summary.DocumentCategory)
	}
	if resp.Summary.TotalClauses != 0 || len(resp.Clauses) != 0 {
		t.Errorf("error response should carry no clauses: %+v", resp.Summary)
	}
	if len(resp.Summary.KeyConcerns) != 1 || !strings.Contains(resp.Summary.KeyConcerns[0], "no analyzable clauses") {
		t.Errorf("key concerns = %v", resp.Summary.KeyConcerns)
	}
	if resp.Metadata.Status != "error" {
		t.Errorf("status = %q, want error", resp.Metadata.Status)
	}
}

func TestProcessTextDocumentTypeDetected(t *testing.T) {
	sys := pipeline.New(testRuntime())

	resp := sys.ProcessText(context.Background(), pipeline.Request{
		SessionID:        "session-5",
		DocumentName:     "contract.txt",
		Text:             contractText,
		PreserveEntities: false,
		Depth:            analysis.DepthComprehensive,
	})

	if resp.Summary.DocumentType != "Employment Contract" {
		t.Errorf("document type = %q, want Employment Contract", resp.Summary.DocumentType)
	}
}

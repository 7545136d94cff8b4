package analysis_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/clarity-counsel/counsel/internal/analysis"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const modelReply = `{
	"document_summary": {
		"document_type": "Employment Contract",
		"overall_risk_score": 0.6,
		"key_concerns": ["termination terms"],
		"document_category": "Contract"
	},
	"clause_analyses": [
		{
			"clause_id": "CLAUSE_1",
			"severity": "high",
			"risk_score": 0.8,
			"category": "Termination",
			"explanation": "One-sided termination right.",
			"recommendations": ["negotiate notice period"],
			"legal_implications": "Employment may end without recourse."
		}
	]
}`

func TestAnalyzeParsesModelReply(t *testing.T) {
	gen := &stubGenerator{reply: modelReply}
	sys := analysis.New(gen, testLogger())

	clauses := []string{"The employer may terminate employment at any time without notice."}
	result := sys.Analyze(context.Background(), clauses, "Employment Contract", analysis.DepthComprehensive)

	if result.Summary.DocumentType != "Employment Contract" {
		t.Errorf("document type = %q", result.Summary.DocumentType)
	}
	if len(result.Clauses) != 1 {
		t.Fatalf("clause count = %d, want 1", len(result.Clauses))
	}
	if result.Clauses[0].Severity != analysis.SeverityHigh {
		t.Errorf("severity = %s, want high", result.Clauses[0].Severity)
	}
}

func TestAnalyzeRepairsMissingClauses(t *testing.T) {
	gen := &stubGenerator{reply: modelReply}
	sys := analysis.New(gen, testLogger())

	clauses := []string{
		"The employer may terminate employment at any time without notice.",
		"The employee is entitled to twenty days of paid leave per year.",
	}
	result := sys.Analyze(context.Background(), clauses, "Employment Contract", analysis.DepthComprehensive)

	if len(result.Clauses) != 2 {
		t.Fatalf("clause count = %d, want 2 (missing clause default-filled)", len(result.Clauses))
	}

	var filled *analysis.ClauseAnalysis
	for i := range result.Clauses {
		if result.Clauses[i].ClauseID == "CLAUSE_2" {
			filled = &result.Clauses[i]
		}
	}
	if filled == nil {
		t.Fatal("CLAUSE_2 missing after repair")
	}
	if filled.Severity != analysis.SeverityLow || filled.RiskScore != 0.2 {
		t.Errorf("default fill = %s/%g, want low/0.2", filled.Severity, filled.RiskScore)
	}
}

func TestAnalyzeRepairsInvalidValues(t *testing.T) {
	reply := `{
		"document_summary": {
			"document_type": "Contract",
			"overall_risk_score": 3.5,
			"key_concerns": [],
			"document_category": "Contract"
		},
		"clause_analyses": [
			{
				"clause_id": "CLAUSE_1",
				"severity": "critical",
				"risk_score": 0.9,
				"category": "General",
				"explanation": "",
				"recommendations": [],
				"legal_implications": ""
			}
		]
	}`

	gen := &stubGenerator{reply: reply}
	sys := analysis.New(gen, testLogger())

	result := sys.Analyze(context.Background(), []string{"clause text goes here"}, "Contract", analysis.DepthBasic)

	if result.Summary.OverallRiskScore != 1.0 {
		t.Errorf("overall risk = %g, want clamped 1.0", result.Summary.OverallRiskScore)
	}
	if result.Clauses[0].Severity != analysis.SeverityHigh {
		t.Errorf("severity = %s, want high (rederived from 0.9)", result.Clauses[0].Severity)
	}
}

func TestAnalyzeGeneratorFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unreachable")}
	sys := analysis.New(gen, testLogger())

	clauses := []string{"The provider may impose a penalty at its sole discretion on any user."}
	result := sys.Analyze(context.Background(), clauses, "Service Agreement", analysis.DepthComprehensive)

	if len(result.Summary.KeyConcerns) != 1 || !strings.Contains(result.Summary.KeyConcerns[0], "professional review") {
		t.Errorf("expected fallback concern, got %v", result.Summary.KeyConcerns)
	}
	if len(result.Clauses) != 1 {
		t.Errorf("clause count = %d, want 1", len(result.Clauses))
	}
}

func TestAnalyzeUnparseableReplyFallsBack(t *testing.T) {
	gen := &stubGenerator{reply: "I cannot analyze this document."}
	sys := analysis.New(gen, testLogger())

	result := sys.Analyze(context.Background(), []string{"some clause text here"}, "Legal Document", analysis.DepthBasic)

	if len(result.Summary.KeyConcerns) != 1 || !strings.Contains(result.Summary.KeyConcerns[0], "professional review") {
		t.Errorf("expected fallback concern, got %v", result.Summary.KeyConcerns)
	}
}

func TestAnalyzePromptContents(t *testing.T) {
	gen := &stubGenerator{reply: modelReply}
	sys := analysis.New(gen, testLogger())

	clauses := []string{
		"First clause about payment obligations.",
		"Second clause about termination rights.",
	}
	sys.Analyze(context.Background(), clauses, "Service Agreement", analysis.DepthDetailed)

	for _, want := range []string{"CLAUSE_1:", "CLAUSE_2:", "Service Agreement", "JSON format"} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

package analysis

import (
	"context"
	"log/slog"

	"github.com/clarity-counsel/counsel/pkg/formatting"
)

// Default values substituted when the model omits required fields.
const (
	defaultRiskScore        = 0.5
	defaultClauseRiskScore  = 0.2
	defaultClauseCategory   = "Standard"
	defaultSummaryType      = "Legal Document"
	defaultSummaryCategory  = "Contract"
	defaultClauseExplain    = "Standard clause with minimal risk."
	defaultClauseImplicates = "Standard legal provision."
)

// System defines the public contract for clause risk analysis.
type System interface {
	Analyze(ctx context.Context, clauses []string, documentType string, depth Depth) *Result
}

type system struct {
	generator Generator
	logger    *slog.Logger
}

// New creates an analysis System backed by the given generator.
func New(generator Generator, logger *slog.Logger) System {
	return &system{
		generator: generator,
		logger:    logger.With("system", "analysis"),
	}
}

// Analyze sends every clause to the hosted model in one prompt and returns
// the parsed, repaired result. Model or parse failures never surface: the
// keyword fallback produces the result instead.
func (s *system) Analyze(ctx context.Context, clauses []string, documentType string, depth Depth) *Result {
	prompt := buildPrompt(clauses, documentType, depth)

	content, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("model analysis failed, using fallback", "error", err)
		return Fallback(clauses, documentType)
	}

	result, err := formatting.Parse[Result](content)
	if err != nil {
		s.logger.Warn("model reply unparseable, using fallback", "error", err)
		return Fallback(clauses, documentType)
	}

	repair(&result, clauses)
	return &result
}

// repair fills gaps in a parsed model reply: a missing summary gets neutral
// defaults, every clause id absent from the reply gets a low-risk default
// entry, risk scores are clamped to [0, 1], and invalid severities are
// rederived from the clamped score.
func repair(result *Result, clauses []string) {
	if result.Summary.DocumentType == "" && result.Summary.DocumentCategory == "" {
		result.Summary = Summary{
			DocumentType:     defaultSummaryType,
			OverallRiskScore: defaultRiskScore,
			KeyConcerns:      []string{},
			DocumentCategory: defaultSummaryCategory,
		}
	}
	if result.Summary.KeyConcerns == nil {
		result.Summary.KeyConcerns = []string{}
	}
	result.Summary.OverallRiskScore = clamp(result.Summary.OverallRiskScore)

	analyzed := make(map[string]struct{}, len(result.Clauses))
	for i := range result.Clauses {
		clause := &result.Clauses[i]
		clause.RiskScore = clamp(clause.RiskScore)
		if !clause.Severity.Valid() {
			clause.Severity = SeverityForScore(clause.RiskScore)
		}
		if clause.Recommendations == nil {
			clause.Recommendations = []string{}
		}
		analyzed[clause.ClauseID] = struct{}{}
	}

	for i := range clauses {
		id := ClauseID(i)
		if _, ok := analyzed[id]; ok {
			continue
		}
		result.Clauses = append(result.Clauses, ClauseAnalysis{
			ClauseID:          id,
			Severity:          SeverityLow,
			RiskScore:         defaultClauseRiskScore,
			Category:          defaultClauseCategory,
			Explanation:       defaultClauseExplain,
			Recommendations:   []string{},
			LegalImplications: defaultClauseImplicates,
		})
	}
}

func clamp(score float64) float64 {
	return min(max(score, 0), 1)
}

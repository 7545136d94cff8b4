package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// AnalyzeNode returns a state node that submits the anonymized clauses to
// the analysis system. The analysis system never fails outright, so this
// node always stores a complete result.
func AnalyzeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, meta, err := requestState(s)
		if err != nil {
			return s, fmt.Errorf("analyze: %w", err)
		}

		clauses, err := stateClauses(s)
		if err != nil {
			return s, fmt.Errorf("analyze: %w", err)
		}

		documentType, err := stateString(s, KeyDocumentType)
		if err != nil {
			return s, fmt.Errorf("analyze: %w", err)
		}

		result := rt.Analysis.Analyze(ctx, clauses, documentType, req.Depth)
		meta.Step("ai_risk_analysis")

		rt.Logger.InfoContext(
			ctx, "analyze node complete",
			"session_id", req.SessionID,
			"analyses", len(result.Clauses),
			"overall_risk", result.Summary.OverallRiskScore,
		)

		return s.Set(KeyResult, result), nil
	})
}

package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// FinalizeNode returns the exit node. It assembles the Response from the
// accumulated state, or an error Response when segmentation found nothing
// to analyze.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, meta, err := requestState(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		clauses, err := stateClauses(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		if len(clauses) == 0 {
			message := fmt.Sprintf("Processing failed: %s", ErrNoClauses)
			rt.Logger.WarnContext(ctx, "pipeline produced no clauses", "session_id", req.SessionID)
			return s.Set(KeyResponse, errorResponse(req, meta, message)), nil
		}

		mappings, err := stateMappings(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		result, err := stateResult(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		restored, err := stateRestored(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		meta.Status = "completed"
		response := buildResponse(req, clauses, restored, mappings, result, meta)

		rt.Logger.InfoContext(
			ctx, "finalize node complete",
			"session_id", req.SessionID,
			"clauses", response.Summary.TotalClauses,
			"high_risk", response.Summary.HighRiskClauses,
		)

		return s.Set(KeyResponse, response), nil
	})
}

func stateRestored(s state.State) ([]string, error) {
	val, ok := s.Get(KeyRestored)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyRestored)
	}

	restored, ok := val.([]string)
	if !ok {
		return nil, fmt.Errorf("%s is not []string", KeyRestored)
	}

	return restored, nil
}

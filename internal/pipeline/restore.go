package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/clarity-counsel/counsel/internal/analysis"
	"github.com/clarity-counsel/counsel/internal/entities"
)

// RestoreNode returns a state node that substitutes original entity values
// back into the clause texts and into every narrative field of the analysis,
// so placeholders never reach the caller. With no mappings the clauses pass
// through as-is.
func RestoreNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, meta, err := requestState(s)
		if err != nil {
			return s, fmt.Errorf("restore: %w", err)
		}

		clauses, err := stateClauses(s)
		if err != nil {
			return s, fmt.Errorf("restore: %w", err)
		}

		mappings, err := stateMappings(s)
		if err != nil {
			return s, fmt.Errorf("restore: %w", err)
		}

		restored := clauses
		if len(mappings) > 0 {
			restored = make([]string, len(clauses))
			for i, clause := range clauses {
				restored[i] = rt.Anonymizer.Restore(clause, mappings)
			}

			if result, err := stateResult(s); err == nil {
				restoreResult(rt.Anonymizer, result, mappings)
			}

			meta.Step("entity_restoration")

			rt.Logger.InfoContext(
				ctx, "restore node complete",
				"session_id", req.SessionID,
				"entities", len(mappings),
			)
		}

		return s.Set(KeyRestored, restored), nil
	})
}

// restoreResult rewrites the model's narrative output in place. Placeholders
// can leak into any free-text field when the model echoes clause content.
func restoreResult(a *entities.Anonymizer, result *analysis.Result, mappings map[string]entities.Mapping) {
	result.Summary.DocumentType = a.Restore(result.Summary.DocumentType, mappings)
	for i, concern := range result.Summary.KeyConcerns {
		result.Summary.KeyConcerns[i] = a.Restore(concern, mappings)
	}

	for i := range result.Clauses {
		clause := &result.Clauses[i]
		clause.Explanation = a.Restore(clause.Explanation, mappings)
		clause.LegalImplications = a.Restore(clause.LegalImplications, mappings)
		for j, rec := range clause.Recommendations {
			clause.Recommendations[j] = a.Restore(rec, mappings)
		}
	}
}

func stateMappings(s state.State) (map[string]entities.Mapping, error) {
	val, ok := s.Get(KeyMappings)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyMappings)
	}

	mappings, ok := val.(map[string]entities.Mapping)
	if !ok {
		return nil, fmt.Errorf("%s is not map[string]entities.Mapping", KeyMappings)
	}

	return mappings, nil
}

func stateResult(s state.State) (*analysis.Result, error) {
	val, ok := s.Get(KeyResult)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyResult)
	}

	result, ok := val.(*analysis.Result)
	if !ok {
		return nil, fmt.Errorf("%s is not *analysis.Result", KeyResult)
	}

	return result, nil
}

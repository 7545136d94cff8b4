package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// ClausesNode returns a state node that splits the anonymized text into
// clauses and classifies the document type. Type detection runs against the
// original text so placeholder tokens cannot mask category keywords.
func ClausesNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, meta, err := requestState(s)
		if err != nil {
			return s, fmt.Errorf("clauses: %w", err)
		}

		text, err := stateString(s, KeyAnonymized)
		if err != nil {
			return s, fmt.Errorf("clauses: %w", err)
		}

		clauses := rt.Segmenter.Segment(text)
		documentType := DetectDocumentType(req.Text)

		meta.Step("clause_extraction")
		meta.ClausesExtracted = len(clauses)

		rt.Logger.InfoContext(
			ctx, "clauses node complete",
			"session_id", req.SessionID,
			"clauses", len(clauses),
			"document_type", documentType,
		)

		s = s.Set(KeyClauses, clauses)
		s = s.Set(KeyDocumentType, documentType)

		return s, nil
	})
}

func stateString(s state.State, key string) (string, error) {
	val, ok := s.Get(key)
	if !ok {
		return "", fmt.Errorf("missing %s in state", key)
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s is not string", key)
	}

	return str, nil
}

func stateClauses(s state.State) ([]string, error) {
	val, ok := s.Get(KeyClauses)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyClauses)
	}

	clauses, ok := val.([]string)
	if !ok {
		return nil, fmt.Errorf("%s is not []string", KeyClauses)
	}

	return clauses, nil
}

func hasClauses(s state.State) bool {
	clauses, err := stateClauses(s)
	return err == nil && len(clauses) > 0
}

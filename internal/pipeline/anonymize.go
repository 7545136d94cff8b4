package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/clarity-counsel/counsel/internal/entities"
)

// AnonymizeNode returns a state node that replaces sensitive entities in the
// document text with placeholders before anything leaves the process. When
// the request disables entity preservation the text passes through untouched
// and the mapping table stays empty.
func AnonymizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, meta, err := requestState(s)
		if err != nil {
			return s, fmt.Errorf("anonymize: %w", err)
		}

		text := req.Text
		mappings := map[string]entities.Mapping{}

		if req.PreserveEntities {
			text, mappings = rt.Anonymizer.Anonymize(ctx, req.Text)
			meta.Step("entity_anonymization")
			meta.EntitiesAnonymized = len(mappings)

			rt.Logger.InfoContext(
				ctx, "anonymize node complete",
				"session_id", req.SessionID,
				"entities", len(mappings),
			)
		}

		s = s.Set(KeyAnonymized, text)
		s = s.Set(KeyMappings, mappings)

		return s, nil
	})
}

func requestState(s state.State) (Request, *Metadata, error) {
	reqVal, ok := s.Get(KeyRequest)
	if !ok {
		return Request{}, nil, fmt.Errorf("missing %s in state", KeyRequest)
	}

	req, ok := reqVal.(Request)
	if !ok {
		return Request{}, nil, fmt.Errorf("%s is not Request", KeyRequest)
	}

	metaVal, ok := s.Get(KeyMetadata)
	if !ok {
		return Request{}, nil, fmt.Errorf("missing %s in state", KeyMetadata)
	}

	meta, ok := metaVal.(*Metadata)
	if !ok {
		return Request{}, nil, fmt.Errorf("%s is not *Metadata", KeyMetadata)
	}

	return req, meta, nil
}

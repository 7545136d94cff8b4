package pipeline

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// System defines the public contract for document risk review.
type System interface {
	// ProcessDocument ingests a file from disk and runs the full review.
	// The error is non-nil only when ingestion fails; every run that gets
	// past ingestion produces a Response.
	ProcessDocument(ctx context.Context, path string, req Request) (*Response, error)

	// ProcessText runs the full review over raw text. It always returns a
	// well-formed Response; pipeline failures surface inside it.
	ProcessText(ctx context.Context, req Request) *Response
}

type system struct {
	rt *Runtime
}

// New creates a pipeline System from the given runtime.
func New(rt *Runtime) System {
	return &system{rt: rt}
}

func (s *system) ProcessDocument(ctx context.Context, path string, req Request) (*Response, error) {
	text, err := s.rt.Ingest.Read(path)
	if err != nil {
		return nil, err
	}

	req.Text = text
	return s.ProcessText(ctx, req), nil
}

func (s *system) ProcessText(ctx context.Context, req Request) *Response {
	meta := newMetadata(req)

	graph, err := buildGraph(s.rt)
	if err != nil {
		return errorResponse(req, meta, fmt.Sprintf("Processing failed: %v", err))
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRequest, req)
	initialState = initialState.Set(KeyMetadata, meta)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		s.rt.Logger.Error("pipeline execution failed", "session_id", req.SessionID, "error", err)
		return errorResponse(req, meta, fmt.Sprintf("Processing failed: %v", err))
	}

	return extractResponse(req, meta, finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("counsel-review")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("anonymize", AnonymizeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("clauses", ClausesNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("analyze", AnalyzeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("restore", RestoreNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// anonymize → clauses (unconditional)
	if err := graph.AddEdge("anonymize", "clauses", nil); err != nil {
		return nil, err
	}

	// clauses → analyze (when segmentation produced clauses)
	if err := graph.AddEdge("clauses", "analyze", hasClauses); err != nil {
		return nil, err
	}

	// clauses → finalize (when nothing is analyzable)
	if err := graph.AddEdge("clauses", "finalize", state.Not(hasClauses)); err != nil {
		return nil, err
	}

	// analyze → restore → finalize (unconditional)
	if err := graph.AddEdge("analyze", "restore", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("restore", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("anonymize"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResponse(req Request, meta *Metadata, s state.State) *Response {
	val, ok := s.Get(KeyResponse)
	if !ok {
		return errorResponse(req, meta, fmt.Sprintf("Processing failed: missing %s in final state", KeyResponse))
	}

	response, ok := val.(*Response)
	if !ok {
		return errorResponse(req, meta, fmt.Sprintf("Processing failed: %s is not *Response", KeyResponse))
	}

	return response
}

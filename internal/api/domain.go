package api

import (
	"github.com/clarity-counsel/counsel/internal/analysis"
	"github.com/clarity-counsel/counsel/internal/entities"
	"github.com/clarity-counsel/counsel/internal/ingest"
	"github.com/clarity-counsel/counsel/internal/pipeline"
	"github.com/clarity-counsel/counsel/internal/segment"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Pipeline pipeline.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	generator := analysis.NewAgentGenerator(
		runtime.Analysis.Agent(),
		runtime.Analysis.RequestTimeoutDuration(),
	)

	rt := &pipeline.Runtime{
		Ingest:     ingest.New(runtime.Logger),
		Segmenter:  segment.New(),
		Anonymizer: entities.New(runtime.ExternalDetector(), runtime.Logger),
		Analysis:   analysis.New(generator, runtime.Logger),
		Logger:     runtime.Logger,
	}

	return &Domain{
		Pipeline: pipeline.New(rt),
	}
}

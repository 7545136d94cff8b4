package pipeline

import "github.com/clarity-counsel/counsel/internal/analysis"

// Metadata accumulates the step log and counters for one request.
type Metadata struct {
	OriginalTextLength int            `json:"original_text_length"`
	PreserveEntities   bool           `json:"preserve_entities"`
	AnalysisDepth      analysis.Depth `json:"analysis_depth"`
	Steps              []string       `json:"processing_steps"`
	EntitiesAnonymized int            `json:"entities_anonymized"`
	ClausesExtracted   int            `json:"clauses_extracted"`
	Status             string         `json:"status,omitempty"`
	Error              string         `json:"error,omitempty"`
}

func newMetadata(req Request) *Metadata {
	return &Metadata{
		OriginalTextLength: len(req.Text),
		PreserveEntities:   req.PreserveEntities,
		AnalysisDepth:      req.Depth,
		Steps:              []string{},
	}
}

// Step appends a named processing step to the log.
func (m *Metadata) Step(name string) {
	m.Steps = append(m.Steps, name)
}

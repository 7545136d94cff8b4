// Package pipeline orchestrates a full document risk review: anonymize,
// segment, analyze, restore, then assemble the response. The stages run as
// a state graph so the conditional paths (no clauses, entities disabled)
// stay explicit.
package pipeline

import "github.com/clarity-counsel/counsel/internal/analysis"

// State bag keys shared across pipeline nodes.
const (
	KeyRequest      = "request"
	KeyAnonymized   = "anonymized_text"
	KeyMappings     = "entity_mappings"
	KeyClauses      = "clauses"
	KeyDocumentType = "document_type"
	KeyResult       = "analysis_result"
	KeyRestored     = "restored_clauses"
	KeyMetadata     = "metadata"
	KeyResponse     = "response"
)

// Request carries one document through the pipeline.
type Request struct {
	SessionID        string
	DocumentName     string
	Text             string
	PreserveEntities bool
	Depth            analysis.Depth
}

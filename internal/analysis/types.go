// Package analysis builds prompts for a hosted generative model, parses its
// replies into per-clause risk assessments, and falls back to local
// keyword-based scoring when the model is unavailable or unparseable.
package analysis

// ClauseAnalysis is the risk assessment for one clause.
type ClauseAnalysis struct {
	ClauseID          string   `json:"clause_id"`
	Severity          Severity `json:"severity"`
	RiskScore         float64  `json:"risk_score"`
	Category          string   `json:"category"`
	Explanation       string   `json:"explanation,omitempty"`
	Recommendations   []string `json:"recommendations"`
	LegalImplications string   `json:"legal_implications,omitempty"`
}

// Summary is the document-level assessment returned by the model.
type Summary struct {
	DocumentType     string   `json:"document_type"`
	OverallRiskScore float64  `json:"overall_risk_score"`
	KeyConcerns      []string `json:"key_concerns"`
	DocumentCategory string   `json:"document_category"`
}

// Result is a complete analysis: a document summary plus one entry per
// input clause.
type Result struct {
	Summary Summary          `json:"document_summary"`
	Clauses []ClauseAnalysis `json:"clause_analyses"`
}

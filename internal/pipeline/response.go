package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/clarity-counsel/counsel/internal/analysis"
	"github.com/clarity-counsel/counsel/internal/entities"
)

// Summary is the document-level roll-up placed at the top of a Response.
type Summary struct {
	DocumentType      string   `json:"document_type"`
	TotalClauses      int      `json:"total_clauses"`
	HighRiskClauses   int      `json:"high_risk_clauses"`
	MediumRiskClauses int      `json:"medium_risk_clauses"`
	LowRiskClauses    int      `json:"low_risk_clauses"`
	OverallRiskScore  float64  `json:"overall_risk_score"`
	KeyConcerns       []string `json:"key_concerns"`
	DocumentCategory  string   `json:"document_category"`
}

// ClauseReport pairs one clause's risk assessment with its text and the
// entities detected inside it.
type ClauseReport struct {
	analysis.ClauseAnalysis
	OriginalClause string             `json:"original_clause"`
	EntitiesFound  []entities.Mapping `json:"entities_found"`
}

// Response is the complete result of one pipeline run. Every run produces
// one, including failed runs, which carry an error Summary and metadata.
type Response struct {
	SessionID      string                      `json:"session_id"`
	Document       string                      `json:"document"`
	Timestamp      time.Time                   `json:"analysis_timestamp"`
	Summary        Summary                     `json:"summary"`
	Clauses        []ClauseReport              `json:"clauses"`
	EntityMappings map[string]entities.Mapping `json:"entity_mappings"`
	Metadata       *Metadata                   `json:"processing_metadata"`
}

// buildResponse assembles the final report. Clause analyses are paired to
// clauses by id, not by reply order, so a reordered model reply still maps
// each assessment to the right clause text. Severity counts come from the
// paired reports, never from surplus entries the model may have invented.
func buildResponse(
	req Request,
	clauses []string,
	restored []string,
	mappings map[string]entities.Mapping,
	result *analysis.Result,
	meta *Metadata,
) *Response {
	byID := make(map[string]analysis.ClauseAnalysis, len(result.Clauses))
	for _, clause := range result.Clauses {
		if _, ok := byID[clause.ClauseID]; !ok {
			byID[clause.ClauseID] = clause
		}
	}

	reports := make([]ClauseReport, 0, len(clauses))
	counts := map[analysis.Severity]int{}

	for i := range clauses {
		ca, ok := byID[analysis.ClauseID(i)]
		if !ok {
			continue
		}
		counts[ca.Severity]++

		reports = append(reports, ClauseReport{
			ClauseAnalysis: ca,
			OriginalClause: restored[i],
			EntitiesFound:  entitiesIn(clauses[i], mappings),
		})
	}

	if mappings == nil {
		mappings = map[string]entities.Mapping{}
	}

	return &Response{
		SessionID: req.SessionID,
		Document:  req.DocumentName,
		Timestamp: time.Now().UTC(),
		Summary: Summary{
			DocumentType:      result.Summary.DocumentType,
			TotalClauses:      len(reports),
			HighRiskClauses:   counts[analysis.SeverityHigh],
			MediumRiskClauses: counts[analysis.SeverityMedium],
			LowRiskClauses:    counts[analysis.SeverityLow],
			OverallRiskScore:  result.Summary.OverallRiskScore,
			KeyConcerns:       result.Summary.KeyConcerns,
			DocumentCategory:  result.Summary.DocumentCategory,
		},
		Clauses:        reports,
		EntityMappings: mappings,
		Metadata:       meta,
	}
}

// errorResponse produces the structured failure report callers receive when
// the pipeline cannot complete. Shape matches a success Response so clients
// parse both the same way.
func errorResponse(req Request, meta *Metadata, message string) *Response {
	meta.Status = "error"
	meta.Error = message

	return &Response{
		SessionID: req.SessionID,
		Document:  req.DocumentName,
		Timestamp: time.Now().UTC(),
		Summary: Summary{
			DocumentType:     "Unknown",
			KeyConcerns:      []string{message},
			DocumentCategory: "Error",
		},
		Clauses:        []ClauseReport{},
		EntityMappings: map[string]entities.Mapping{},
		Metadata:       meta,
	}
}

// entitiesIn lists the mappings whose placeholders occur in the anonymized
// clause text, ordered by position in the source document.
func entitiesIn(clause string, mappings map[string]entities.Mapping) []entities.Mapping {
	found := []entities.Mapping{}
	for placeholder, mapping := range mappings {
		if strings.Contains(clause, placeholder) {
			found = append(found, mapping)
		}
	}

	slices.SortFunc(found, func(a, b entities.Mapping) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return strings.Compare(a.Anonymized, b.Anonymized)
	})

	return found
}

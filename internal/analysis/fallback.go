package analysis

// fallbackConcern flags summaries produced without the hosted model.
const fallbackConcern = "Automated analysis only - professional review recommended"

// Fallback produces a complete rule-based analysis from the keyword scorer.
// It is the sole recovery path when the hosted model is unreachable or its
// reply cannot be parsed; there is no retry against the model.
func Fallback(clauses []string, documentType string) *Result {
	analyses := make([]ClauseAnalysis, 0, len(clauses))
	total := 0.0

	for i, clause := range clauses {
		score := keywordRiskScore(clause)
		severity := SeverityForScore(score)
		total += score

		analyses = append(analyses, ClauseAnalysis{
			ClauseID:          ClauseID(i),
			Severity:          severity,
			RiskScore:         score,
			Category:          "General",
			Explanation:       fallbackExplanation(severity),
			Recommendations:   []string{},
			LegalImplications: "Manual legal review recommended.",
		})
	}

	overall := 0.0
	if len(analyses) > 0 {
		overall = total / float64(len(analyses))
	}

	return &Result{
		Summary: Summary{
			DocumentType:     documentType,
			OverallRiskScore: overall,
			KeyConcerns:      []string{fallbackConcern},
			DocumentCategory: "Legal Document",
		},
		Clauses: analyses,
	}
}

func fallbackExplanation(severity Severity) string {
	switch severity {
	case SeverityHigh:
		return "This clause contains terms that may be risky or heavily favor one party."
	case SeverityMedium:
		return "This clause contains language that may be unclear or subject to interpretation."
	default:
		return "This appears to be a standard clause with minimal risk."
	}
}

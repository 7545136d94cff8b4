package analysis

import "strings"

// Risk keyword tables for the local fallback scorer. Static configuration:
// adjust the tables, not the scorer.
var (
	highRiskKeywords = []string{
		"penalty", "forfeit", "without notice", "sole discretion",
		"unlimited liability", "irrevocable", "waive", "indemnify",
	}

	mediumRiskKeywords = []string{
		"reasonable discretion", "may be deemed", "including but not limited",
		"minor repairs", "appropriate action", "from time to time",
	}
)

// Scoring weights for the fallback path.
const (
	baseRiskScore    = 0.1
	highRiskWeight   = 0.3
	mediumRiskWeight = 0.15
)

// keywordRiskScore computes a clause's risk from keyword occurrences:
// a 0.1 base, +0.3 per high-risk keyword present, +0.15 per medium-risk
// keyword present, clamped to [0, 1].
func keywordRiskScore(clause string) float64 {
	lower := strings.ToLower(clause)
	score := baseRiskScore

	for _, keyword := range highRiskKeywords {
		if strings.Contains(lower, keyword) {
			score += highRiskWeight
		}
	}
	for _, keyword := range mediumRiskKeywords {
		if strings.Contains(lower, keyword) {
			score += mediumRiskWeight
		}
	}

	return min(score, 1.0)
}

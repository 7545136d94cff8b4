package analysis

import (
	"encoding/json"
	"strings"
)

// Severity is the tri-state risk classification for a clause.
type Severity string

// Severity tiers, ordered from most to least severe.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Fallback thresholds mapping a risk score to a severity tier.
const (
	highRiskThreshold   = 0.7
	mediumRiskThreshold = 0.3
)

// SeverityForScore derives the severity tier from a risk score:
// above 0.7 high, above 0.3 medium, otherwise low.
func SeverityForScore(score float64) Severity {
	switch {
	case score > highRiskThreshold:
		return SeverityHigh
	case score > mediumRiskThreshold:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Valid reports whether s is one of the three known tiers.
func (s Severity) Valid() bool {
	return s == SeverityHigh || s == SeverityMedium || s == SeverityLow
}

// UnmarshalJSON normalizes model output leniently: casing variants and the
// legacy traffic-light emoji map onto tiers, anything unrecognized becomes
// the empty value for the repair pass to fill. A malformed clause entry must
// not fail the whole response parse.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high", "🔴":
		*s = SeverityHigh
	case "medium", "🟡":
		*s = SeverityMedium
	case "low", "🟢":
		*s = SeverityLow
	default:
		*s = ""
	}
	return nil
}

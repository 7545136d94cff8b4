// Package entities detects sensitive spans in legal text, replaces them with
// reversible placeholders, and restores them after analysis. Detection merges
// an external NER service, a local lexical pass, and a legal-pattern table.
package entities

// Span is a detected entity occurrence: half-open byte offsets into the text
// it was detected against, a type tag, the surface text, and a confidence.
type Span struct {
	Text       string
	Type       string
	Start      int
	End        int
	Confidence float64
}

// Mapping records one placeholder substitution. Start and End are the offsets
// at replacement time and are informational only afterwards, since earlier
// replacements change the text length.
type Mapping struct {
	Original   string  `json:"original"`
	Anonymized string  `json:"anonymized"`
	EntityType string  `json:"entity_type"`
	Confidence float64 `json:"confidence"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
}

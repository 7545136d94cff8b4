package pipeline

import "strings"

// DefaultDocumentType is the fallback when no category keywords match.
const DefaultDocumentType = "Legal Document"

// docCategory pairs a document type label with its indicator keywords.
// Declared as an ordered slice: ties resolve to the earliest declaration.
type docCategory struct {
	name     string
	keywords []string
}

var docCategories = []docCategory{
	{"Employment Contract", []string{"employee", "employer", "salary", "termination", "job", "work"}},
	{"Rental Agreement", []string{"tenant", "landlord", "rent", "lease", "property", "premises"}},
	{"Service Agreement", []string{"service", "provider", "client", "deliverables", "scope", "payment"}},
	{"Partnership Agreement", []string{"partner", "partnership", "profit", "loss", "equity", "business"}},
	{"Purchase Agreement", []string{"buyer", "seller", "purchase", "sale", "goods", "delivery"}},
	{"License Agreement", []string{"license", "licensor", "licensee", "intellectual property", "rights"}},
	{"Non-Disclosure Agreement", []string{"confidential", "non-disclosure", "nda", "proprietary", "secret"}},
	{"Terms of Service", []string{"terms", "service", "user", "website", "platform", "account"}},
	{"Privacy Policy", []string{"privacy", "data", "information", "collect", "personal", "cookies"}},
	{"Loan Agreement", []string{"loan", "lender", "borrower", "interest", "repayment", "collateral"}},
}

// DetectDocumentType scores each category by how many of its keywords occur
// in the text (case-insensitive substring match). The highest nonzero score
// wins; a later category must score strictly higher to displace an earlier
// one. No match yields the generic fallback.
func DetectDocumentType(text string) string {
	lower := strings.ToLower(text)

	best := DefaultDocumentType
	bestScore := 0

	for _, category := range docCategories {
		score := 0
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = category.name
			bestScore = score
		}
	}

	return best
}

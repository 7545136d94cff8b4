package analysis

import (
	"fmt"
	"strings"
)

const basicInstructions = `You are a legal document analyzer. Review each clause and identify:
1. Risk level (high, medium, or low)
2. Brief explanation of concerns
3. Overall document risk assessment

Focus on the most important risks that could significantly impact the user.`

const comprehensiveInstructions = `You are an expert legal analyst specializing in contract and legal document review.
Your task is to analyze legal clauses and identify risks, unusual terms, and potential issues.

For each clause, consider:
1. Risk Level: high, medium, or low
2. Risk Score: 0.0 (no risk) to 1.0 (maximum risk)
3. Legal Category: Contract type, obligation type, etc.
4. Plain English Explanation: What does this mean for a regular person?
5. Recommendations: What should the user consider or negotiate?
6. Legal Implications: Potential consequences and legal considerations

Focus on:
- Unfair or one-sided terms
- Unusual penalty clauses
- Vague or ambiguous language
- Terms that limit rights or increase obligations
- Industry-standard vs non-standard clauses
- Financial implications
- Termination and dispute resolution terms`

const detailedInstructions = `You are a senior legal counsel providing detailed contract analysis.
For each clause, provide comprehensive analysis including:

1. Legal precedent and standard practices
2. Negotiation points and alternatives
3. Jurisdiction-specific considerations
4. Risk mitigation strategies
5. Detailed legal implications
6. Cross-references with other clauses
7. Industry-specific considerations

Provide thorough analysis suitable for legal professionals.`

var instructions = map[Depth]string{
	DepthBasic:         basicInstructions,
	DepthComprehensive: comprehensiveInstructions,
	DepthDetailed:      detailedInstructions,
}

const responseFormat = `Provide your analysis *only* in the following JSON format. Do not add any text before or after the JSON object.
{
    "document_summary": {
        "document_type": "detected document type",
        "overall_risk_score": 0.0,
        "key_concerns": ["concern1", "concern2"],
        "document_category": "category"
    },
    "clause_analyses": [
        {
            "clause_id": "CLAUSE_1",
            "severity": "high|medium|low",
            "risk_score": 0.0,
            "category": "legal category",
            "explanation": "plain English explanation",
            "recommendations": ["recommendation1", "recommendation2"],
            "legal_implications": "detailed implications"
        }
    ]
}`

// ClauseID labels the i-th clause (1-based) in the prompt and in model output.
func ClauseID(i int) string {
	return fmt.Sprintf("CLAUSE_%d", i+1)
}

// buildPrompt assembles the full analysis prompt: the depth's instruction
// template, the detected document type, every clause labeled with its id,
// and the required response format.
func buildPrompt(clauses []string, documentType string, depth Depth) string {
	var sb strings.Builder
	sb.WriteString(instructions[depth])
	sb.WriteString("\n\nDOCUMENT TYPE: ")
	sb.WriteString(documentType)
	sb.WriteString("\n\nCLAUSES TO ANALYZE:\n")

	for i, clause := range clauses {
		sb.WriteString(ClauseID(i))
		sb.WriteString(": ")
		sb.WriteString(clause)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(responseFormat)
	return sb.String()
}

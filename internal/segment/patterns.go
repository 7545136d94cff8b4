package segment

import "regexp"

// clausePattern anchors the start of a structural clause. Segments run from
// one anchor match to the next match of the same pattern (or end of text),
// which reproduces lookahead-style "until the next heading" matching without
// lookahead support.
type clausePattern struct {
	name  string
	start *regexp.Regexp
}

// clausePatterns is evaluated in declaration order; when two patterns produce
// match lists of equal length, the earlier declaration wins.
var clausePatterns = []clausePattern{
	{"numbered", regexp.MustCompile(`(?m)^\d+\.?\s+`)},
	{"lettered", regexp.MustCompile(`(?m)^\([a-z]\)\s*`)},
	{"article", regexp.MustCompile(`(?m)^Article\s+\w+`)},
	{"section", regexp.MustCompile(`(?m)^Section\s+\w+`)},
	{"clause", regexp.MustCompile(`(?m)^Clause\s+\w+`)},
	{"paragraph", regexp.MustCompile(`(?m)^\w+\.?\s*\w+`)},
}

// legalIndicators are connective words that mark a sentence as legally
// significant regardless of length.
var legalIndicators = []string{
	"shall", "hereby", "whereas", "therefore", "provided that",
	"subject to", "in accordance with", "notwithstanding",
}

// metadataIndicators flag short lines as header/footer boilerplate.
var metadataIndicators = []string{
	"page", "confidential", "draft", "header", "footer",
	"copyright", "©", "all rights reserved",
}

var (
	pageNumber    = regexp.MustCompile(`^\d+$`)
	sentenceEnd   = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
	crlf          = regexp.MustCompile(`\r\n?`)
	horizontalWS  = regexp.MustCompile(`[ \t]+`)
	blankLineRuns = regexp.MustCompile(`\n{3,}`)
)

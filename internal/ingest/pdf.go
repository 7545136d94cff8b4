package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
)

var (
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	caseBoundary    = regexp.MustCompile(`([a-z])([A-Z])`)
	periodCapital   = regexp.MustCompile(`(\.)([A-Z])`)
	pageBoilerplate = regexp.MustCompile(`Page\s+\d+\s+of\s+\d+`)
)

// readPDF extracts text page by page and applies cleanup passes for common
// extraction artifacts. pdfcpu validates the file up front so that corrupt
// inputs fail with a useful cause instead of a mid-extraction panic.
func (s *system) readPDF(path string) (string, error) {
	pageCount, err := pdfcpu.PageCountFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: validate pdf: %w", ErrRead, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %w", ErrRead, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			s.logger.Warn("pdf page extraction failed", "page", i, "error", err)
			continue
		}

		sb.WriteString(cleanPDFText(text))
		sb.WriteString("\n")
	}

	s.logger.Info("pdf extracted", "path", path, "pages", pageCount)
	return strings.TrimSpace(sb.String()), nil
}

// cleanPDFText repairs common PDF extraction artifacts: collapsed runs of
// whitespace, spaces lost across case boundaries and sentence breaks, and
// "Page N of M" boilerplate.
func cleanPDFText(text string) string {
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = caseBoundary.ReplaceAllString(text, "$1 $2")
	text = periodCapital.ReplaceAllString(text, "$1 $2")
	text = pageBoilerplate.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

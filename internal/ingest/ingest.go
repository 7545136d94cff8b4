// Package ingest extracts raw text from legal document files. It dispatches
// on file extension and supports PDF, DOCX, and plain text inputs.
package ingest

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
)

// Extensions lists the file extensions the ingester accepts.
var Extensions = []string{".pdf", ".docx", ".txt"}

// Supported reports whether the given filename carries a readable extension.
func Supported(filename string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(filename)))
}

// System defines the public contract for document text extraction.
type System interface {
	Read(path string) (string, error)
}

type system struct {
	logger *slog.Logger
}

// New creates an ingestion System.
func New(logger *slog.Logger) System {
	return &system{
		logger: logger.With("system", "ingest"),
	}
}

// Read extracts text from the file at path based on its extension.
// Returns ErrUnsupportedFormat for unknown extensions and ErrRead wrapping
// the underlying cause for extraction failures.
func (s *system) Read(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return s.readPDF(path)
	case ".docx":
		return readDOCX(path)
	case ".txt":
		return readText(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

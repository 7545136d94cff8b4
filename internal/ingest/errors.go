package ingest

import (
	"errors"
	"net/http"
)

// Domain errors for document ingestion.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrRead              = errors.New("failed to read document")
)

// MapHTTPStatus maps ingestion errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnsupportedFormat) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRead) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

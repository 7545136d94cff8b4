package pipeline

import (
	"errors"
	"net/http"
)

var (
	// ErrNoClauses indicates segmentation produced nothing analyzable.
	ErrNoClauses = errors.New("no analyzable clauses found in document")

	// ErrInvalidRequest indicates a malformed request body or form field.
	ErrInvalidRequest = errors.New("invalid analysis request")

	// ErrEmptyText indicates a text analysis request with no content.
	ErrEmptyText = errors.New("text must not be empty")

	// ErrFileTooLarge indicates an upload exceeding the configured limit.
	ErrFileTooLarge = errors.New("uploaded file exceeds size limit")
)

// MapHTTPStatus translates pipeline errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrEmptyText):
		return http.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

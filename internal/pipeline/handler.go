package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/clarity-counsel/counsel/internal/analysis"
	"github.com/clarity-counsel/counsel/internal/ingest"
	"github.com/clarity-counsel/counsel/pkg/handlers"
	"github.com/clarity-counsel/counsel/pkg/routes"
)

// Handler provides HTTP endpoints for document risk analysis.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// TextRequest is the JSON body accepted by the text analysis endpoint.
// PreserveEntities is a pointer so an absent field defaults to true.
type TextRequest struct {
	Text             string `json:"text"`
	DocumentName     string `json:"document_name"`
	PreserveEntities *bool  `json:"preserve_entities"`
	AnalysisDepth    string `json:"analysis_depth"`
}

// NewHandler creates a Handler with the given system, logger, and upload size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "analyze"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analyze",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/document", Handler: h.Document},
			{Method: "POST", Pattern: "/text", Handler: h.Text},
		},
	}
}

// Document processes a multipart upload containing a legal document file.
// The file lands in a temp path for ingestion and is removed afterward.
func (h *Handler) Document(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	defer file.Close()

	if !ingest.Supported(header.Filename) {
		err := fmt.Errorf("%w: %s", ingest.ErrUnsupportedFormat, filepath.Ext(header.Filename))
		handlers.RespondError(w, h.logger, ingest.MapHTTPStatus(err), err)
		return
	}

	preserve, err := formBool(r, "preserve_entities")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	depth, err := formDepth(r, "analysis_depth")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	path, err := saveTemp(file, header.Filename)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	defer os.Remove(path)

	req := Request{
		SessionID:        uuid.NewString(),
		DocumentName:     header.Filename,
		PreserveEntities: preserve,
		Depth:            depth,
	}

	response, err := h.sys.ProcessDocument(r.Context(), path, req)
	if err != nil {
		handlers.RespondError(w, h.logger, ingest.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

// Text processes raw document text supplied as JSON.
func (h *Handler) Text(w http.ResponseWriter, r *http.Request) {
	var body TextRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if strings.TrimSpace(body.Text) == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrEmptyText)
		return
	}

	name := body.DocumentName
	if name == "" {
		name = "Text Document"
	}

	preserve := true
	if body.PreserveEntities != nil {
		preserve = *body.PreserveEntities
	}

	depth := analysis.DepthComprehensive
	if body.AnalysisDepth != "" {
		var err error
		if depth, err = analysis.ParseDepth(body.AnalysisDepth); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	req := Request{
		SessionID:        uuid.NewString(),
		DocumentName:     name,
		Text:             body.Text,
		PreserveEntities: preserve,
		Depth:            depth,
	}

	handlers.RespondJSON(w, http.StatusOK, h.sys.ProcessText(r.Context(), req))
}

func formBool(r *http.Request, field string) (bool, error) {
	value := r.FormValue(field)
	if value == "" {
		return true, nil
	}
	return strconv.ParseBool(value)
}

func formDepth(r *http.Request, field string) (analysis.Depth, error) {
	value := r.FormValue(field)
	if value == "" {
		return analysis.DepthComprehensive, nil
	}
	return analysis.ParseDepth(value)
}

// saveTemp writes the upload to a temp file whose name keeps the original
// extension, which ingestion uses for format dispatch.
func saveTemp(file io.Reader, filename string) (string, error) {
	tmp, err := os.CreateTemp("", "counsel-*"+filepath.Ext(filename))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return tmp.Name(), nil
}

package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clarity-counsel/counsel/internal/analysis"
	"github.com/clarity-counsel/counsel/internal/pipeline"
	"github.com/clarity-counsel/counsel/pkg/routes"
)

type fakeSystem struct {
	lastReq  pipeline.Request
	lastPath string
}

func (f *fakeSystem) ProcessDocument(_ context.Context, path string, req pipeline.Request) (*pipeline.Response, error) {
	f.lastPath = path
	f.lastReq = req
	return &pipeline.Response{SessionID: req.SessionID, Document: req.DocumentName}, nil
}

func (f *fakeSystem) ProcessText(_ context.Context, req pipeline.Request) *pipeline.Response {
	f.lastReq = req
	return &pipeline.Response{SessionID: req.SessionID, Document: req.DocumentName}
}

func newTestMux(sys pipeline.System) *http.ServeMux {
	mux := http.NewServeMux()
	handler := pipeline.NewHandler(sys, testLogger(), 1024*1024)
	routes.Register(mux, handler.Routes())
	return mux
}

func TestTextEndpointDefaults(t *testing.T) {
	sys := &fakeSystem{}
	mux := newTestMux(sys)

	body := `{"text": "The parties shall agree on all terms stated herein."}`
	req := httptest.NewRequest("POST", "/analyze/text", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if sys.lastReq.DocumentName != "Text Document" {
		t.Errorf("document name = %q, want default", sys.lastReq.DocumentName)
	}
	if !sys.lastReq.PreserveEntities {
		t.Error("preserve entities should default to true")
	}
	if sys.lastReq.Depth != analysis.DepthComprehensive {
		t.Errorf("depth = %s, want comprehensive", sys.lastReq.Depth)
	}
	if sys.lastReq.SessionID == "" {
		t.Error("session id should be generated")
	}
}

func TestTextEndpointEmptyText(t *testing.T) {
	mux := newTestMux(&fakeSystem{})

	req := httptest.NewRequest("POST", "/analyze/text", strings.NewReader(`{"text": "   "}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestTextEndpointInvalidDepth(t *testing.T) {
	mux := newTestMux(&fakeSystem{})

	body := `{"text": "some clause text", "analysis_depth": "exhaustive"}`
	req := httptest.NewRequest("POST", "/analyze/text", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestTextEndpointExplicitOptions(t *testing.T) {
	sys := &fakeSystem{}
	mux := newTestMux(sys)

	body := `{"text": "clause body", "document_name": "lease.txt", "preserve_entities": false, "analysis_depth": "detailed"}`
	req := httptest.NewRequest("POST", "/analyze/text", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if sys.lastReq.PreserveEntities {
		t.Error("preserve entities should be false")
	}
	if sys.lastReq.Depth != analysis.DepthDetailed {
		t.Errorf("depth = %s, want detailed", sys.lastReq.Depth)
	}
	if sys.lastReq.DocumentName != "lease.txt" {
		t.Errorf("document name = %q", sys.lastReq.DocumentName)
	}
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	return &buf, writer.FormDataContentType()
}

func TestDocumentEndpoint(t *testing.T) {
	sys := &fakeSystem{}
	mux := newTestMux(sys)

	buf, contentType := multipartBody(t, "agreement.txt", []byte("The parties shall perform their obligations."))

	req := httptest.NewRequest("POST", "/analyze/document", buf)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if sys.lastReq.DocumentName != "agreement.txt" {
		t.Errorf("document name = %q", sys.lastReq.DocumentName)
	}
	if sys.lastPath == "" {
		t.Error("temp file path not passed to the system")
	}

	var resp pipeline.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Document != "agreement.txt" {
		t.Errorf("response document = %q", resp.Document)
	}
}

func TestDocumentEndpointUnsupportedFormat(t *testing.T) {
	mux := newTestMux(&fakeSystem{})

	buf, contentType := multipartBody(t, "agreement.xlsx", []byte("binary"))

	req := httptest.NewRequest("POST", "/analyze/document", buf)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDocumentEndpointMissingFile(t *testing.T) {
	mux := newTestMux(&fakeSystem{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("analysis_depth", "basic")
	writer.Close()

	req := httptest.NewRequest("POST", "/analyze/document", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

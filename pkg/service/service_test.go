package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mermaid/pkg/pipeline"
	"github.com/matzehuels/mermaid/pkg/store"
)

const shopManifest = `
kind = "er"
name = "shop"

[[nodes]]
id = "customer"
label = "Customer"
`

const shopText = "erDiagram\n" +
	"  direction LR\n" +
	"  v0[\"Customer\"]\n"

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	cfg := &Config{Addr: ":0", Timeout: 5 * time.Second, LogLevel: "error"}
	return New(cfg, runner, store.NewMemoryStore(), logger)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doRaw(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, rec, &body)
	return body.Error.Code
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestRender(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/render", map[string]string{
		"manifest": shopManifest,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/render = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Kind      string `json:"kind"`
		Text      string `json:"text"`
		Hash      string `json:"hash"`
		NodeCount int    `json:"node_count"`
		EdgeCount int    `json:"edge_count"`
		RenderHit bool   `json:"render_hit"`
	}
	decodeBody(t, rec, &body)

	if body.Kind != "er" {
		t.Errorf("kind = %q, want er", body.Kind)
	}
	if body.Text != shopText {
		t.Errorf("text = %q, want %q", body.Text, shopText)
	}
	if len(body.Hash) != 64 {
		t.Errorf("hash = %q, want 64 hex chars", body.Hash)
	}
	if body.NodeCount != 1 || body.EdgeCount != 0 {
		t.Errorf("counts = (%d, %d), want (1, 0)", body.NodeCount, body.EdgeCount)
	}
	if body.RenderHit {
		t.Error("render_hit = true, want false with the null cache")
	}
}

func TestRenderErrors(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown kind",
			body:       `{"manifest": "kind = \"sequence\""}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_KIND",
		},
		{
			name:       "unknown field",
			body:       `{"manifest": "kind = \"er\"", "source": "shop.toml"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "missing manifest",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "malformed json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRaw(t, srv.Handler(), http.MethodPost, "/api/render", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if code := errorCode(t, rec); code != tt.wantCode {
				t.Errorf("error code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestDiagramLifecycle(t *testing.T) {
	srv := testServer(t)
	h := srv.Handler()

	// Create.
	rec := doJSON(t, h, http.MethodPost, "/api/diagrams", map[string]string{
		"manifest": shopManifest,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /api/diagrams = %d, body %s", rec.Code, rec.Body.String())
	}

	var created store.Diagram
	decodeBody(t, rec, &created)
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("created id %q is not a uuid: %v", created.ID, err)
	}
	if created.Name != "shop" {
		t.Errorf("name = %q, want shop (taken from the manifest)", created.Name)
	}
	if created.Kind != "er" {
		t.Errorf("kind = %q, want er", created.Kind)
	}
	if created.Format != "toml" {
		t.Errorf("format = %q, want toml", created.Format)
	}
	if created.Text != shopText {
		t.Errorf("text = %q, want %q", created.Text, shopText)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not set on created diagram")
	}

	// List.
	rec = doJSON(t, h, http.MethodGet, "/api/diagrams", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/diagrams = %d", rec.Code)
	}
	var listed []store.Diagram
	decodeBody(t, rec, &listed)
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("list = %+v, want the one created diagram", listed)
	}

	// Fetch.
	rec = doJSON(t, h, http.MethodGet, "/api/diagrams/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/diagrams/%s = %d", created.ID, rec.Code)
	}
	var fetched store.Diagram
	decodeBody(t, rec, &fetched)
	if fetched.Name != "shop" {
		t.Errorf("fetched name = %q, want shop", fetched.Name)
	}

	// Delete.
	rec = doJSON(t, h, http.MethodDelete, "/api/diagrams/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE /api/diagrams/%s = %d", created.ID, rec.Code)
	}

	// Gone.
	rec = doJSON(t, h, http.MethodGet, "/api/diagrams/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET deleted diagram = %d, want 404", rec.Code)
	}
	if code := errorCode(t, rec); code != "DIAGRAM_NOT_FOUND" {
		t.Errorf("error code = %q, want DIAGRAM_NOT_FOUND", code)
	}
}

func TestGetDiagramInvalidID(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/diagrams/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if code := errorCode(t, rec); code != "INVALID_INPUT" {
		t.Errorf("error code = %q, want INVALID_INPUT", code)
	}
}

package pipeline

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mermaid/pkg/cache"
	"github.com/matzehuels/mermaid/pkg/errors"
	"github.com/matzehuels/mermaid/pkg/manifest"
)

const flowchartManifest = `
kind = "flowchart"

[[nodes]]
id = "start"
label = "Start"
`

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	return NewRunner(c, nil, testLogger())
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{
			name:     "empty options",
			opts:     Options{},
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "source and manifest together",
			opts:     Options{Source: "a.toml", Manifest: "kind = \"er\""},
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "bad format",
			opts:     Options{Source: "a.toml", Format: "yaml"},
			wantCode: errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("ValidateAndSetDefaults() code = %q, want %q", errors.GetCode(err), tt.wantCode)
			}
		})
	}

	opts := Options{Source: "a.toml"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Logger == nil {
		t.Error("Logger not defaulted")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults: %v", err)
	}
}

func TestOptionsDecodeFormat(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want manifest.Format
	}{
		{"toml file", Options{Source: "a.toml"}, manifest.FormatTOML},
		{"json file", Options{Source: "a.json"}, manifest.FormatJSON},
		{"inline defaults to toml", Options{Manifest: "kind = \"er\""}, manifest.FormatTOML},
		{"explicit format wins", Options{Source: "a.toml", Format: "json"}, manifest.FormatJSON},
		{"format folds case", Options{Manifest: "{}", Format: "JSON"}, manifest.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.DecodeFormat(); got != tt.want {
				t.Errorf("DecodeFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())

	result, err := runner.Execute(context.Background(), Options{Manifest: flowchartManifest})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "flowchart LR\n" +
		"  v0@{shape: rect, label: \"Start\"}\n"
	if result.Text != want {
		t.Errorf("Text = %q, want %q", result.Text, want)
	}
	if result.Kind != manifest.KindFlowchart {
		t.Errorf("Kind = %q, want %q", result.Kind, manifest.KindFlowchart)
	}
	if result.Manifest == nil || result.Document == nil {
		t.Error("Manifest and Document should be populated")
	}
	if result.Stats.NodeCount != 1 || result.Stats.EdgeCount != 0 {
		t.Errorf("Stats counts = (%d, %d), want (1, 0)", result.Stats.NodeCount, result.Stats.EdgeCount)
	}
	if len(result.Hash) != 64 {
		t.Errorf("Hash length = %d, want 64", len(result.Hash))
	}
	if result.CacheInfo.SourceHit || result.CacheInfo.RenderHit {
		t.Errorf("CacheInfo = %+v, want no hits on first run", result.CacheInfo)
	}
}

func TestExecuteRenderCache(t *testing.T) {
	runner := testRunner(t)
	ctx := context.Background()
	opts := Options{Manifest: flowchartManifest}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss the render cache")
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the render cache")
	}
	if second.Text != first.Text {
		t.Errorf("cached text = %q, want %q", second.Text, first.Text)
	}

	refreshed, err := runner.Execute(ctx, Options{Manifest: flowchartManifest, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if refreshed.CacheInfo.RenderHit {
		t.Error("refresh run should bypass the render cache")
	}
}

func TestExecuteSourceCache(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(flowchartManifest))
	}))
	defer server.Close()

	runner := testRunner(t)
	ctx := context.Background()
	opts := Options{Source: server.URL + "/diagram.toml"}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.SourceHit {
		t.Error("first run should fetch the source")
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.SourceHit {
		t.Error("second run should hit the source cache")
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("server requests = %d, want 1", got)
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	_, err := runner.Execute(context.Background(), Options{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Execute error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestExecuteUnknownKind(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	_, err := runner.Execute(context.Background(), Options{Manifest: `kind = "sequence"`})
	if !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("Execute error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidKind)
	}
}

func TestRunnerStages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.toml")
	if err := os.WriteFile(path, []byte(flowchartManifest), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	runner := NewRunner(nil, nil, testLogger())
	ctx := context.Background()

	m, err := runner.Load(ctx, Options{Source: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Kind != "flowchart" {
		t.Errorf("Kind = %q, want flowchart", m.Kind)
	}

	if err := runner.Validate(ctx, m); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	doc, err := runner.Build(ctx, m)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	text, err := runner.Render(ctx, doc, m, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if text != doc.Text() {
		t.Errorf("Render = %q, want %q", text, doc.Text())
	}
}

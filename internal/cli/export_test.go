package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"shop.toml", "svg", "shop.svg"},
		{"dir/billing.json", "dot", "dir/billing.dot"},
		{"noext", "png", "noext.png"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.input, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func TestValidateExportFormat(t *testing.T) {
	for _, f := range []string{"dot", "svg", "png"} {
		if err := validateExportFormat(f); err != nil {
			t.Errorf("validateExportFormat(%q) = %v, want nil", f, err)
		}
	}
	if err := validateExportFormat("pdf"); err == nil {
		t.Error("validateExportFormat(pdf) succeeded, want error")
	}
}

func TestRunExportDOT(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "checkout.toml")
	if err := os.WriteFile(input, []byte(testManifest), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	opts := &exportOpts{format: formatDOT, noCache: true}
	if err := runExport(testContext(), input, opts); err != nil {
		t.Fatalf("runExport: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "checkout.dot"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "digraph \"checkout\" {") {
		t.Errorf("dot output = %q, want a digraph named after the manifest", data)
	}
	if !strings.Contains(string(data), "label=\"Start\"") {
		t.Errorf("dot output = %q, want the node label", data)
	}
}

package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testManifest = `
kind = "flowchart"
name = "checkout"

[[nodes]]
id = "start"
label = "Start"
`

func testContext() context.Context {
	return withLogger(context.Background(), discardLogger())
}

func TestExecuteOptionsFile(t *testing.T) {
	opts, err := executeOptions(strings.NewReader(""), "shop.toml", "", false, discardLogger())
	if err != nil {
		t.Fatalf("executeOptions: %v", err)
	}
	if opts.Source != "shop.toml" {
		t.Errorf("Source = %q, want shop.toml", opts.Source)
	}
	if opts.Manifest != "" {
		t.Errorf("Manifest = %q, want empty for a file source", opts.Manifest)
	}
}

func TestExecuteOptionsStdin(t *testing.T) {
	for _, source := range []string{"", "-"} {
		opts, err := executeOptions(strings.NewReader(testManifest), source, "toml", true, discardLogger())
		if err != nil {
			t.Fatalf("executeOptions(%q): %v", source, err)
		}
		if opts.Manifest != testManifest {
			t.Errorf("Manifest = %q, want stdin contents", opts.Manifest)
		}
		if opts.Source != "" {
			t.Errorf("Source = %q, want empty for stdin", opts.Source)
		}
		if opts.Format != "toml" || !opts.Refresh {
			t.Errorf("opts = %+v, want format and refresh carried through", opts)
		}
	}
}

func TestRunRenderToFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "checkout.toml")
	if err := os.WriteFile(input, []byte(testManifest), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	output := filepath.Join(dir, "checkout.mmd")
	opts := &renderOpts{output: output, noCache: true}
	if err := runRender(testContext(), strings.NewReader(""), input, opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "flowchart LR\n" +
		"  v0@{shape: rect, label: \"Start\"}\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestRunRenderMissingManifest(t *testing.T) {
	opts := &renderOpts{noCache: true}
	input := filepath.Join(t.TempDir(), "absent.toml")
	if err := runRender(testContext(), strings.NewReader(""), input, opts); err == nil {
		t.Error("runRender succeeded, want error for missing manifest")
	}
}

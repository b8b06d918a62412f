package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaid/pkg/cache"
	"github.com/matzehuels/mermaid/pkg/export"
	"github.com/matzehuels/mermaid/pkg/pipeline"
)

// Export output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// validExportFormats is the set of supported export formats.
var validExportFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true}

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output  string // output file path; "-" means stdout
	format  string // output format: "dot", "svg", or "png"
	refresh bool   // bypass caches and re-export
	noCache bool   // disable the file cache entirely
}

// newExportCmd creates the export command for converting a manifest's
// diagram structure to Graphviz output. SVG and PNG are rendered
// in-process; DOT is emitted as text for external tooling.
func newExportCmd() *cobra.Command {
	opts := exportOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "export <manifest>",
		Short: "Export diagram structure as DOT, SVG, or PNG",
		Long: `Export flattens the diagram described by a manifest into a node-link
graph and renders it through Graphviz. The output shows structure only;
Mermaid styling does not carry over.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateExportFormat(opts.format); err != nil {
				return err
			}
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default derived from the manifest path)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass caches and re-export")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the file cache")

	return cmd
}

// validateExportFormat checks that the format is dot, svg, or png.
func validateExportFormat(f string) error {
	if !validExportFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", f)
	}
	return nil
}

// outputPath derives the output file path from the input path by
// swapping the extension for the export format.
func outputPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runExport builds the diagram, flattens it, and writes the requested
// artifact. Rendered artifacts are cached under a key derived from the
// manifest hash and the format, so repeated exports of an unchanged
// manifest skip Graphviz entirely.
func runExport(ctx context.Context, input string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := newRunner(opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{Source: input, Refresh: opts.refresh, Logger: logger})
	if err != nil {
		return err
	}

	data, cached, err := exportArtifact(ctx, runner, result, opts)
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = outputPath(input, opts.format)
	}
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printSuccess("Exported %s diagram as %s", result.Kind, opts.format)
	printFile(path)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, cached)
	return nil
}

// exportArtifact produces the artifact bytes for the requested format,
// consulting the export cache first. The bool reports whether the bytes
// came from the cache.
func exportArtifact(ctx context.Context, runner *pipeline.Runner, result *pipeline.Result, opts *exportOpts) ([]byte, bool, error) {
	key := runner.Keyer.ExportKey(result.Hash, cache.ExportKeyOpts{Format: opts.format})
	if !opts.refresh {
		if data, ok, err := runner.Cache.Get(ctx, key); err == nil && ok {
			return data, true, nil
		}
	}

	g, err := export.FromDocument(result.Document)
	if err != nil {
		return nil, false, err
	}

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(g.DOT())
	case formatSVG:
		data, err = renderWithSpinner(ctx, "Rendering SVG...", g.SVG)
	case formatPNG:
		data, err = renderWithSpinner(ctx, "Rendering PNG...", g.PNG)
	}
	if err != nil {
		return nil, false, err
	}

	_ = runner.Cache.Set(ctx, key, data, cache.TTLExport)
	return data, false, nil
}

// renderWithSpinner runs a Graphviz render behind a progress spinner.
// Layout can take a moment on large diagrams and emits no log lines of
// its own.
func renderWithSpinner(ctx context.Context, message string, render func(context.Context) ([]byte, error)) ([]byte, error) {
	spinner := newSpinner(ctx, message)
	spinner.Start()
	data, err := render(ctx)
	if err != nil {
		spinner.StopWithError("Export failed")
		return nil, err
	}
	spinner.Stop()
	return data, nil
}

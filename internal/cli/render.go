package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaid/pkg/errors"
	"github.com/matzehuels/mermaid/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; empty means stdout
	format  string // manifest format override: "toml" or "json"
	refresh bool   // bypass caches and re-fetch remote sources
	noCache bool   // disable the file cache entirely
}

// newRenderCmd creates the render command for building Mermaid text.
// The manifest comes from a file path, a URL, or stdin when the
// argument is omitted or "-".
//
// With no --output the text goes to stdout undecorated, so the command
// composes with pipes. With --output the text goes to the file and a
// short status summary is printed instead.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Render a manifest to Mermaid text",
		Long: `Render builds the diagram described by a TOML or JSON manifest and
prints the resulting Mermaid text. The manifest argument is a file path
or an HTTP(S) URL; pass "-" or nothing to read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return runRender(cmd.Context(), cmd.InOrStdin(), source, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "manifest format: toml or json (default from the file extension)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass caches and re-fetch remote sources")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the file cache")

	return cmd
}

// runRender executes the pipeline for the given source and writes the
// Mermaid text to stdout or the requested output file.
func runRender(ctx context.Context, in io.Reader, source string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := newRunner(opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	execOpts, err := executeOptions(in, source, opts.format, opts.refresh, logger)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, execOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s diagram", result.Kind))

	if opts.output == "" {
		fmt.Print(result.Text)
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(result.Text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printSuccess("Rendered %s diagram", result.Kind)
	printFile(opts.output)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	if result.Stats.NodeCount == 0 {
		printWarning("Diagram has no nodes")
	}
	if execOpts.Source != "" && !errors.IsURL(execOpts.Source) {
		printNextStep("Preview live", fmt.Sprintf("%s preview %s", appName, execOpts.Source))
	}
	return nil
}

// executeOptions translates command-line inputs into pipeline options.
// A missing source or the conventional "-" selects stdin, which is read
// eagerly so that the pipeline only ever sees inline manifests or
// addressable sources.
func executeOptions(in io.Reader, source, format string, refresh bool, logger *log.Logger) (pipeline.Options, error) {
	opts := pipeline.Options{Format: format, Refresh: refresh, Logger: logger}
	switch source {
	case "", "-":
		data, err := io.ReadAll(in)
		if err != nil {
			return opts, fmt.Errorf("read stdin: %w", err)
		}
		opts.Manifest = string(data)
	default:
		opts.Source = source
	}
	return opts, nil
}

// Package cli implements the mermaid command-line interface.
//
// This package provides commands for rendering diagram manifests to
// Mermaid text, exporting diagram structure through Graphviz, watching
// manifests with a live terminal preview, and running the HTTP render
// service. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Build a manifest and print or save the Mermaid text
//   - export: Convert diagram structure to DOT, SVG, or PNG
//   - preview: Re-render a manifest in the terminal on every save
//   - serve: Run the HTTP render service
//   - cache: Manage the local render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --quiet (-q) to log errors only. Loggers are passed through
// context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/mermaid/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaid/pkg/buildinfo"
	"github.com/matzehuels/mermaid/pkg/cache"
	"github.com/matzehuels/mermaid/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "mermaid"

// Execute runs the mermaid CLI and returns an error if any command
// fails. The context carries cancellation from signal handling in main;
// a logger configured from the --verbose/--quiet flags is attached to
// it before any command runs.
func Execute(ctx context.Context) error {
	var verbose, quiet bool

	root := &cobra.Command{
		Use:          "mermaid",
		Short:        "Mermaid builds diagram text from typed manifests",
		Long:         `Mermaid renders flowchart, class and ER diagrams as Mermaid text from TOML or JSON manifests, with validation, caching, live preview and an HTTP render service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			if quiet {
				level = charmlog.ErrorLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// newRunner creates a pipeline runner for CLI use.
func newRunner(noCache bool, logger *charmlog.Logger) (*pipeline.Runner, error) {
	c, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(c, nil, logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/mermaid/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

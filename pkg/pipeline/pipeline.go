// Package pipeline provides the core render pipeline for diagram manifests.
//
// This package implements the complete load → validate → build → render
// sequence that can be used by CLI, API, and preview components. By
// centralizing this logic, we ensure consistent behavior across all entry
// points: the same caching, the same hooks, the same error codes.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read the manifest from a file, URL, or stdin and decode it
//  2. Validate: Check the manifest structure and references
//  3. Build: Construct the typed diagram through the builder API
//  4. Render: Produce the Mermaid text
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source: "diagram.toml",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Text)
//
// Run individual stages:
//
//	// Load only
//	m, err := runner.Load(ctx, opts)
//
//	// Build with a loaded manifest
//	doc, err := runner.Build(ctx, m)
//
//	// Render with an existing document
//	text, err := runner.Render(ctx, doc, m, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mermaid/pkg/errors"
	"github.com/matzehuels/mermaid/pkg/manifest"
)

// ValidateFormat checks that a manifest format is valid. An empty format is
// allowed and means the format is detected from the source name.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	if !manifest.ValidFormats[manifest.Format(strings.ToLower(format))] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: toml, json)", format)
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the render pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Source is a manifest file path, URL, or "-" for stdin.
	Source string `json:"source,omitempty"`

	// Manifest is inline manifest text, an alternative to Source.
	Manifest string `json:"manifest,omitempty"`

	// Format forces the manifest format (toml or json). When empty the
	// format is detected from the source name; inline manifests default
	// to TOML.
	Format string `json:"format,omitempty"`

	// Refresh bypasses cache reads, forcing a fresh fetch and render.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Source == "" && o.Manifest == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source or manifest is required")
	}
	if o.Source != "" && o.Manifest != "" {
		return errors.New(errors.ErrCodeInvalidInput, "source and manifest are mutually exclusive")
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SourceLabel names the manifest origin for logs and hooks.
func (o *Options) SourceLabel() string {
	if o.Source != "" {
		return o.Source
	}
	return "inline"
}

// DecodeFormat resolves the manifest format. An explicit Format wins,
// otherwise the format is detected from the source name.
func (o *Options) DecodeFormat() manifest.Format {
	if o.Format != "" {
		return manifest.Format(strings.ToLower(o.Format))
	}
	if o.Source != "" {
		return manifest.DetectFormat(o.Source)
	}
	return manifest.FormatTOML
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Manifest is the decoded manifest.
	Manifest *manifest.Manifest

	// Document is the built diagram.
	Document *manifest.Document

	// Kind is the diagram kind the manifest declared.
	Kind manifest.Kind

	// Text is the rendered Mermaid text.
	Text string

	// Hash is the content hash of the manifest.
	Hash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SourceHit bool // Whether the raw manifest bytes came from cache
	RenderHit bool // Whether the rendered text came from cache
}

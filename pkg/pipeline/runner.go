package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mermaid/pkg/cache"
	"github.com/matzehuels/mermaid/pkg/errors"
	"github.com/matzehuels/mermaid/pkg/manifest"
	"github.com/matzehuels/mermaid/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → validate → build → render pipeline
// with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	m, sourceHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Manifest = m
	result.Stats.LoadTime = time.Since(loadStart)
	result.CacheInfo.SourceHit = sourceHit

	// Compute manifest hash for cache keys and API responses
	if data, err := json.Marshal(m); err == nil {
		result.Hash = cache.Hash(data)
	}

	r.Logger.Info("loaded manifest",
		"source", opts.SourceLabel(),
		"kind", m.Kind,
		"duration", result.Stats.LoadTime)

	// Stages 2 and 3: Validate and Build
	buildStart := time.Now()
	doc, err := r.Build(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Document = doc
	result.Kind = doc.Kind
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount, result.Stats.EdgeCount = doc.Counts()

	r.Logger.Info("built diagram",
		"kind", doc.Kind,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.BuildTime)

	// Stage 4: Render
	renderStart := time.Now()
	text, renderHit, err := r.RenderWithCacheInfo(ctx, doc, m, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Text = text
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered diagram",
		"kind", doc.Kind,
		"bytes", len(text),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo reads and decodes the manifest and returns cache hit info.
// Remote sources are cached by URL; files, stdin, and inline manifests are
// always read fresh.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*manifest.Manifest, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	source := opts.SourceLabel()

	start := time.Now()
	hooks.OnLoadStart(ctx, source)

	data, hit, err := r.readSource(ctx, opts)
	if err != nil {
		hooks.OnLoadComplete(ctx, source, 0, time.Since(start), err)
		return nil, false, err
	}

	m, err := manifest.Decode(data, opts.DecodeFormat())
	hooks.OnLoadComplete(ctx, source, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	return m, hit, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the
// cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*manifest.Manifest, error) {
	m, _, err := r.LoadWithCacheInfo(ctx, opts)
	return m, err
}

// readSource returns the raw manifest bytes, consulting the source cache
// for URL sources.
func (r *Runner) readSource(ctx context.Context, opts Options) ([]byte, bool, error) {
	if opts.Manifest != "" {
		return []byte(opts.Manifest), false, nil
	}
	if !errors.IsURL(opts.Source) {
		data, err := manifest.ReadSource(ctx, opts.Source)
		return data, false, err
	}

	cacheKey := r.Keyer.SourceKey(opts.Source)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "source")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "source")
	}

	data, err := manifest.ReadSource(ctx, opts.Source)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLSource); err == nil {
		observability.Cache().OnCacheSet(ctx, "source", len(data))
	}
	return data, false, nil
}

// Validate checks the manifest structure without building it.
func (r *Runner) Validate(ctx context.Context, m *manifest.Manifest) error {
	hooks := observability.Pipeline()
	kind := manifestKind(m)

	start := time.Now()
	hooks.OnValidateStart(ctx, kind)
	err := manifest.Validate(m)
	hooks.OnValidateComplete(ctx, kind, time.Since(start), err)
	return err
}

// Build validates the manifest and constructs the typed diagram.
func (r *Runner) Build(ctx context.Context, m *manifest.Manifest) (*manifest.Document, error) {
	if err := r.Validate(ctx, m); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	kind := manifestKind(m)

	start := time.Now()
	hooks.OnBuildStart(ctx, kind)
	doc, err := manifest.Build(m)
	if err != nil {
		hooks.OnBuildComplete(ctx, kind, 0, 0, time.Since(start), err)
		return nil, err
	}
	nodes, edges := doc.Counts()
	hooks.OnBuildComplete(ctx, kind, nodes, edges, time.Since(start), nil)
	return doc, nil
}

// RenderWithCacheInfo renders the document to Mermaid text with caching and
// returns cache hit info. The manifest is hashed for the cache key, so two
// identical manifests share one cache entry regardless of their source.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc *manifest.Document, m *manifest.Manifest, opts Options) (string, bool, error) {
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	kind := string(doc.Kind)

	start := time.Now()
	hooks.OnRenderStart(ctx, kind)

	data, err := json.Marshal(m)
	if err != nil {
		hooks.OnRenderComplete(ctx, kind, 0, time.Since(start), err)
		return "", false, fmt.Errorf("serialize manifest for cache key: %w", err)
	}
	cacheKey := r.Keyer.RenderKey(cache.Hash(data))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			hooks.OnRenderComplete(ctx, kind, len(cached), time.Since(start), nil)
			return string(cached), true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	text := doc.Text()
	if err := r.Cache.Set(ctx, cacheKey, []byte(text), cache.TTLRender); err == nil {
		observability.Cache().OnCacheSet(ctx, "render", len(text))
	}

	hooks.OnRenderComplete(ctx, kind, len(text), time.Since(start), nil)
	return text, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, doc *manifest.Document, m *manifest.Manifest, opts Options) (string, error) {
	text, _, err := r.RenderWithCacheInfo(ctx, doc, m, opts)
	return text, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// manifestKind names the manifest kind for hooks, tolerating nil manifests.
func manifestKind(m *manifest.Manifest) string {
	if m == nil {
		return ""
	}
	return m.Kind
}

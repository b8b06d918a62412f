package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when several projects share one Redis instance and need
// separate cache namespaces.
//
// Example usage:
//
//	// Project-specific keys
//	docsKeyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "docs:")
//
//	// Global keys
//	globalKeyer := cache.NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SourceKey generates a prefixed key for a fetched remote manifest.
func (k *ScopedKeyer) SourceKey(source string) string {
	return k.prefix + k.inner.SourceKey(source)
}

// RenderKey generates a prefixed key for rendered Mermaid text.
func (k *ScopedKeyer) RenderKey(manifestHash string) string {
	return k.prefix + k.inner.RenderKey(manifestHash)
}

// ExportKey generates a prefixed key for an exported artifact.
func (k *ScopedKeyer) ExportKey(manifestHash string, opts ExportKeyOpts) string {
	return k.prefix + k.inner.ExportKey(manifestHash, opts)
}

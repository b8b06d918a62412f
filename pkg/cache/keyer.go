package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer generates cache keys for the pipeline's cacheable artifacts.
// Implementations must be deterministic: the same inputs always produce
// the same key, across processes and restarts.
type Keyer interface {
	// SourceKey generates a key for a fetched remote manifest.
	SourceKey(source string) string

	// RenderKey generates a key for rendered Mermaid text.
	// manifestHash is the content hash of the manifest that produced it.
	RenderKey(manifestHash string) string

	// ExportKey generates a key for an exported artifact.
	ExportKey(manifestHash string, opts ExportKeyOpts) string
}

// ExportKeyOpts captures the options that change an exported artifact.
type ExportKeyOpts struct {
	Format string `json:"format"` // dot, svg, or png
}

// DefaultKeyer is the standard Keyer implementation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SourceKey generates a key for a fetched remote manifest.
func (k *DefaultKeyer) SourceKey(source string) string {
	return "source:" + source
}

// RenderKey generates a key for rendered Mermaid text.
func (k *DefaultKeyer) RenderKey(manifestHash string) string {
	return "render:" + manifestHash
}

// ExportKey generates a key for an exported artifact.
// Options are hashed into the key so that different formats never collide.
func (k *DefaultKeyer) ExportKey(manifestHash string, opts ExportKeyOpts) string {
	return hashKey("export", manifestHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

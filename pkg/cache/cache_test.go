package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss on absent key
	_, hit, err := c.Get(ctx, "render:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get on absent key should miss")
	}

	// Set then hit
	text := []byte("flowchart LR\n  v0@{shape: rect, label: \"a\"}\n")
	if err := c.Set(ctx, "render:abc", text, time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "render:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get after Set should hit")
	}
	if string(data) != string(text) {
		t.Errorf("Get data = %q, want %q", data, text)
	}

	// Delete then miss
	if err := c.Delete(ctx, "render:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "render:abc")
	if hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting an absent key is not an error
	if err := c.Delete(ctx, "render:abc"); err != nil {
		t.Errorf("Delete of absent key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(time.Millisecond)

	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheZeroTTL(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// TTL of 0 means no expiration
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Error("entry with zero TTL should not expire")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// SourceKey
	sourceKey := k.SourceKey("https://example.com/diagram.toml")
	if sourceKey != "source:https://example.com/diagram.toml" {
		t.Errorf("SourceKey unexpected: %s", sourceKey)
	}

	// RenderKey
	renderKey := k.RenderKey("abc123")
	if renderKey != "render:abc123" {
		t.Errorf("RenderKey unexpected: %s", renderKey)
	}

	// ExportKey should include options in hash
	ek1 := k.ExportKey("abc123", ExportKeyOpts{Format: "svg"})
	ek2 := k.ExportKey("abc123", ExportKeyOpts{Format: "png"})
	if ek1 == ek2 {
		t.Error("Different ExportKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(ek1, "export:") {
		t.Errorf("ExportKey should carry the export prefix: %s", ek1)
	}

	// Same inputs reproduce the same key
	if ek1 != k.ExportKey("abc123", ExportKeyOpts{Format: "svg"}) {
		t.Error("ExportKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "docs:")

	// All keys should be prefixed
	renderKey := scoped.RenderKey("abc123")
	if renderKey != "docs:render:abc123" {
		t.Errorf("ScopedKeyer RenderKey unexpected: %s", renderKey)
	}

	exportKey := scoped.ExportKey("abc123", ExportKeyOpts{Format: "svg"})
	if !strings.HasPrefix(exportKey, "docs:export:") {
		t.Errorf("ScopedKeyer ExportKey should be prefixed: %s", exportKey)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.SourceKey("s")
	if key != "prefix:source:s" {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

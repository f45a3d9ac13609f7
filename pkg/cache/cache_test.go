package cache

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Empty cache misses
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("empty cache should miss")
	}

	// Set then Get returns the stored bytes
	want := []byte("<svg/>")
	if err := c.Set(ctx, "key", want, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get should hit after Set")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	// Delete removes the entry; deleting again is not an error
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get should miss after Delete")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("second Delete error: %v", err)
	}
}

func TestFileCache_ContentAddressed(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	want := []byte("raw bytes, no wrapper")
	if err := c.Set(ctx, "key", want, time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// The entry is a plain file named by the key hash
	got, err := os.ReadFile(filepath.Join(dir, Hash([]byte("key"))+".bin"))
	if err != nil {
		t.Fatalf("entry file: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("entry file = %q, want %q", got, want)
	}
}

func TestFileCache_StatsAndClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	svg := Scoped(c, "svg")
	png := Scoped(c, "png")
	if err := svg.Set(ctx, "a", []byte("1234"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := svg.Set(ctx, "b", []byte("12"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := png.Set(ctx, "a", []byte("123"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Stats counts entries of every kind in the directory
	count, size, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if count != 3 || size != 9 {
		t.Errorf("Stats = %d entries, %d bytes, want 3 entries, 9 bytes", count, size)
	}

	// Clear empties the directory but keeps it
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	count, size, err = c.Stats()
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if count != 0 || size != 0 {
		t.Errorf("Stats after Clear = %d entries, %d bytes, want 0, 0", count, size)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir should survive Clear: %v", err)
	}
}

func TestFileCache_MissingDirStats(t *testing.T) {
	c := &FileCache{dir: filepath.Join(t.TempDir(), "never-created"), ext: "bin"}

	count, size, err := c.Stats()
	if err != nil || count != 0 || size != 0 {
		t.Errorf("Stats = %d, %d, %v, want 0, 0, nil", count, size, err)
	}
	if err := c.Clear(); err != nil {
		t.Errorf("Clear error: %v", err)
	}
}

func TestScoped(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	// The same key lives independently per render kind
	svg := Scoped(c, "svg")
	png := Scoped(c, "png")
	if err := svg.Set(ctx, "key", []byte("vector"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := png.Get(ctx, "key"); hit {
		t.Error("png scope should not see svg entries")
	}
	got, hit, err := svg.Get(ctx, "key")
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v, want a hit", hit, err)
	}
	if string(got) != "vector" {
		t.Errorf("Get = %q, want %q", got, "vector")
	}

	// File-backed scopes keep the kind as the extension
	if _, err := os.Stat(filepath.Join(dir, Hash([]byte("key"))+".svg")); err != nil {
		t.Errorf("scoped entry file: %v", err)
	}

	// Scoping a null cache still never stores
	null := Scoped(NewNullCache(), "svg")
	if err := null.Set(ctx, "key", []byte("vector"), 0); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ := null.Get(ctx, "key"); hit {
		t.Error("scoped null cache should not store data")
	}
}

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

func TestLookup(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	// Miss surfaces as ErrMiss
	if _, err := Lookup(ctx, c, "key"); !errors.Is(err, ErrMiss) {
		t.Errorf("Lookup on empty cache = %v, want ErrMiss", err)
	}

	// Hit returns the bytes
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, err := Lookup(ctx, c, "key")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Lookup = %q, want %q", got, "value")
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

func TestKey(t *testing.T) {
	body := []byte("sizing_mode: absolute")

	// Deterministic for identical inputs
	if Key(body, "svg", "titled") != Key(body, "svg", "titled") {
		t.Error("Key should be deterministic")
	}

	// Artifact bytes and options both participate
	if Key(body, "svg") == Key([]byte("other"), "svg") {
		t.Error("Different artifacts should produce different keys")
	}
	if Key(body, "svg") == Key(body, "png") {
		t.Error("Different options should produce different keys")
	}

	// Option boundaries do not collide
	if Key(body, "ab", "c") == Key(body, "a", "bc") {
		t.Error("Shifted option boundaries should produce different keys")
	}

	if len(Key(body)) != 64 {
		t.Errorf("Key length should be 64, got %d", len(Key(body)))
	}
}

func TestDir(t *testing.T) {
	dir, err := Dir()
	if err != nil {
		if !errors.Is(err, ErrDisabled) {
			t.Fatalf("Dir error should wrap ErrDisabled: %v", err)
		}
		t.Skipf("no user cache dir on this system: %v", err)
	}
	if filepath.Base(dir) != "previews" {
		t.Errorf("Dir = %q, want a previews directory", dir)
	}
}

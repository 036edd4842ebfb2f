package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit || data != nil {
		t.Errorf("NullCache.Get = (%q, %v), want miss", data, hit)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("different inputs should hash differently")
	}
	if len(h1) != 64 {
		t.Errorf("len(Hash) = %d, want 64", len(h1))
	}
	if want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"; h1 != want {
		t.Errorf("Hash(hello) = %s, want %s", h1, want)
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	k1 := k.StatsKey(Hash([]byte("<graphml/>")))
	k2 := k.StatsKey(Hash([]byte("<graphml></graphml>")))
	if k1 == k2 {
		t.Error("different contents should produce different keys")
	}
	if k1 != k.StatsKey(Hash([]byte("<graphml/>"))) {
		t.Error("StatsKey should be deterministic")
	}
	if !strings.HasPrefix(k1, "graphstats:") {
		t.Errorf("StatsKey = %s, want graphstats: prefix", k1)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "nested", "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set(ctx, "a", []byte(`{"nodes":3}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "a")
	if err != nil || !hit {
		t.Fatalf("Get = (%v, %v), want hit", hit, err)
	}
	if string(data) != `{"nodes":3}` {
		t.Errorf("Get data = %s", data)
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("expected miss after Delete")
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestFileCacheExpired(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should be a miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want clean miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry survived Clear")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("root dir should remain: %v", err)
	}

	n, err = c.Clear()
	if err != nil || n != 0 {
		t.Errorf("Clear on empty cache = (%d, %v)", n, err)
	}
}

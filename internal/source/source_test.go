package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "url",
			src:      "https://example.com/books.xml",
			expected: "https---example.com-books.xml-",
		},
		{
			name:     "query string",
			src:      "https://example.com/feed?id=1&x=2",
			expected: "https---example.com-feed-id-1-x-2-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := CacheKey(tt.src)
			if !strings.HasPrefix(key, tt.expected) {
				t.Errorf("CacheKey(%q) = %q, want prefix %q", tt.src, key, tt.expected)
			}
			if len(key) != len(tt.expected)+8 {
				t.Errorf("CacheKey(%q) = %q, expected an 8 character hash suffix", tt.src, key)
			}
			if strings.ContainsAny(key, `/\:?*"<>|`) {
				t.Errorf("CacheKey(%q) = %q contains invalid file name characters", tt.src, key)
			}
		})
	}

	if CacheKey("a/b") == CacheKey("a:b") {
		t.Error("expected different keys for sources that sanitize the same")
	}
	if long := CacheKey("https://example.com/" + strings.Repeat("x", 500)); len(long) > 200 {
		t.Errorf("expected long sources to be truncated, got %d characters", len(long))
	}
}

func TestCacheDir_Env(t *testing.T) {
	t.Setenv("XMLMAP_CACHE_DIR", "/tmp/xmlmap-cache")
	dir, err := CacheDir()
	if err != nil {
		t.Fatalf("CacheDir failed: %v", err)
	}
	if dir != "/tmp/xmlmap-cache" {
		t.Errorf("expected /tmp/xmlmap-cache, got %s", dir)
	}
}

func TestResolve_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.xml")
	if err := os.WriteFile(path, []byte("<catalog/>"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, hit, err := Resolve(context.Background(), path, t.TempDir())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != path {
		t.Errorf("expected %s, got %s", path, got)
	}
	if hit {
		t.Error("expected no cache hit for a local file")
	}
}

func TestResolve_Directory(t *testing.T) {
	if _, _, err := Resolve(context.Background(), t.TempDir(), t.TempDir()); err == nil {
		t.Error("expected an error for a directory source")
	}
}

func TestResolve_Download(t *testing.T) {
	srcDir := t.TempDir()
	cacheDir := t.TempDir()
	path := filepath.Join(srcDir, "books.xml")
	if err := os.WriteFile(path, []byte("<catalog><book/></catalog>"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	src := "file::" + path
	got, hit, err := Resolve(context.Background(), src, cacheDir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if hit {
		t.Error("expected a cache miss on first download")
	}
	if got != filepath.Join(cacheDir, CacheKey(src)) {
		t.Errorf("unexpected cache path %s", got)
	}
	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("failed to read cached document: %v", err)
	}
	if string(data) != "<catalog><book/></catalog>" {
		t.Errorf("unexpected cached content %q", data)
	}

	_, hit, err = Resolve(context.Background(), src, cacheDir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !hit {
		t.Error("expected a cache hit on second resolve")
	}
}

func TestResolve_DownloadFailure(t *testing.T) {
	cacheDir := t.TempDir()
	src := "file::" + filepath.Join(t.TempDir(), "missing.xml")
	if _, _, err := Resolve(context.Background(), src, cacheDir); err == nil {
		t.Fatal("expected an error for a missing source")
	}
	if _, err := os.Lstat(filepath.Join(cacheDir, CacheKey(src))); !os.IsNotExist(err) {
		t.Errorf("expected no cache entry after a failed download, got %v", err)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.xml")
	if err := os.WriteFile(path, []byte("<catalog/>"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "copies", "books.xml")
	if err := Save(path, dest); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("failed to read copy: %v", err)
	}
	if string(data) != "<catalog/>" {
		t.Errorf("unexpected copy content %q", data)
	}
}

package imagecache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateFilename(t *testing.T) {
	a := generateFilename("https://example.com/image.png")
	b := generateFilename("https://example.com/image.png")
	if a != b {
		t.Errorf("Same URL should map to the same filename: %q vs %q", a, b)
	}

	c := generateFilename("https://example.com/other.png")
	if a == c {
		t.Error("Different URLs should map to different filenames")
	}

	if !strings.HasSuffix(a, ".png") {
		t.Errorf("Extension should be preserved, got %q", a)
	}

	// Query parameters do not leak into the extension.
	d := generateFilename("https://example.com/image.png?width=1920")
	if !strings.HasSuffix(d, ".png") {
		t.Errorf("Query string should be stripped from the extension, got %q", d)
	}

	// URLs without an extension default to .jpg.
	e := generateFilename("https://example.com/image")
	if !strings.HasSuffix(e, ".jpg") {
		t.Errorf("Missing extension should default to .jpg, got %q", e)
	}
}

func TestDownloadAndCacheReusesExisting(t *testing.T) {
	dir := t.TempDir()
	url := "https://example.com/image.png"

	want := filepath.Join(dir, generateFilename(url))
	if err := os.WriteFile(want, []byte("cached"), 0o644); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	// The file exists, so no download happens and the cached path is
	// returned as-is.
	got, err := DownloadAndCache(context.Background(), url, CacheOptions{CacheDir: dir})
	if err != nil {
		t.Fatalf("DownloadAndCache error = %v", err)
	}
	if got != want {
		t.Errorf("Cached path = %q, want %q", got, want)
	}

	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("reading cached file: %v", err)
	}
	if string(data) != "cached" {
		t.Errorf("Cached content was overwritten: %q", data)
	}
}

func TestDownloadAndCacheCustomFilename(t *testing.T) {
	dir := t.TempDir()
	url := "https://example.com/image.png"

	want := filepath.Join(dir, "wallpaper.png")
	if err := os.WriteFile(want, []byte("cached"), 0o644); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	got, err := DownloadAndCache(context.Background(), url, CacheOptions{
		CacheDir: dir,
		Filename: "wallpaper.png",
	})
	if err != nil {
		t.Fatalf("DownloadAndCache error = %v", err)
	}
	if got != want {
		t.Errorf("Cached path = %q, want %q", got, want)
	}
}

func TestDownloadAndCacheRejectsBadScheme(t *testing.T) {
	_, err := DownloadAndCache(context.Background(), "ftp://example.com/image.png", CacheOptions{CacheDir: t.TempDir()})
	if err == nil {
		t.Fatal("Non-HTTP URL should be rejected")
	}
}

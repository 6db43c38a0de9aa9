package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.AddrHTTP != ":8080" {
		t.Errorf("AddrHTTP = %q, want :8080", cfg.AddrHTTP)
	}
	if cfg.Lang != "vi" {
		t.Errorf("Lang = %q, want vi", cfg.Lang)
	}
	if cfg.MaxCacheAge != time.Hour {
		t.Errorf("MaxCacheAge = %v, want 1h", cfg.MaxCacheAge)
	}
	if cfg.ExportDir != "dist" {
		t.Errorf("ExportDir = %q, want dist", cfg.ExportDir)
	}
	if cfg.Dev {
		t.Error("Dev should default to false")
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("BANNER_HTTP", ":9090")
	t.Setenv("BANNER_DEV", "true")
	t.Setenv("BANNER_STYLESHEET", "/styles/app.css")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.AddrHTTP != ":9090" {
		t.Errorf("AddrHTTP = %q, want :9090", cfg.AddrHTTP)
	}
	if !cfg.Dev {
		t.Error("Dev should be true")
	}
	if cfg.Stylesheet != "/styles/app.css" {
		t.Errorf("Stylesheet = %q", cfg.Stylesheet)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configuration.yml")
	data := []byte("http-addr: \":7000\"\ntitle: Promo\nmax-cache-age: 10m\nexport-dir: out\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.AddrHTTP != ":7000" {
		t.Errorf("AddrHTTP = %q, want :7000", cfg.AddrHTTP)
	}
	if cfg.Title != "Promo" {
		t.Errorf("Title = %q, want Promo", cfg.Title)
	}
	if cfg.MaxCacheAge != 10*time.Minute {
		t.Errorf("MaxCacheAge = %v, want 10m", cfg.MaxCacheAge)
	}
	if cfg.ExportDir != "out" {
		t.Errorf("ExportDir = %q, want out", cfg.ExportDir)
	}
	if cfg.Lang != "vi" {
		t.Errorf("Lang = %q, want default vi", cfg.Lang)
	}
}

func TestLoadRejectsNegativeCacheAge(t *testing.T) {
	t.Setenv("BANNER_MAX_CACHE_AGE", "-1m")

	if _, err := Load(""); err == nil {
		t.Error("Expected error for negative cache age")
	}
}

func TestUsage(t *testing.T) {
	usage := Usage()
	if !strings.Contains(usage, "BANNER_HTTP") {
		t.Errorf("Expected BANNER_HTTP in usage, got:\n%s", usage)
	}
}

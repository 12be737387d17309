package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/songeyume/bibli/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("BIBLI_CONFIG", filepath.Join(t.TempDir(), "absent.yml"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library.PageSize != 48 {
		t.Errorf("PageSize = %d, want 48", cfg.Library.PageSize)
	}
	if cfg.Library.QuotesPageSize != 18 {
		t.Errorf("QuotesPageSize = %d, want 18", cfg.Library.QuotesPageSize)
	}
	if cfg.Library.Dataset == "" {
		t.Error("default dataset path should not be empty")
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte(`library:
  dataset: /data/books.json
  page_size: 24
display:
  no_color: true
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BIBLI_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library.Dataset != "/data/books.json" {
		t.Errorf("Dataset = %q", cfg.Library.Dataset)
	}
	if cfg.Library.PageSize != 24 {
		t.Errorf("PageSize = %d", cfg.Library.PageSize)
	}
	if !cfg.Display.NoColor {
		t.Error("NoColor should be true")
	}
	// Values absent from the file fall back to defaults.
	if cfg.Library.QuotesPageSize != 18 {
		t.Errorf("QuotesPageSize = %d", cfg.Library.QuotesPageSize)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BIBLI_CONFIG", filepath.Join(t.TempDir(), "absent.yml"))
	t.Setenv("BIBLI_LIBRARY_PAGE_SIZE", "12")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library.PageSize != 12 {
		t.Errorf("PageSize = %d, want env override 12", cfg.Library.PageSize)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("library: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BIBLI_CONFIG", path)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/books.json"); got != filepath.Join(home, "books.json") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := config.ExpandHome("/abs/books.json"); got != "/abs/books.json" {
		t.Errorf("absolute path changed: %q", got)
	}
}

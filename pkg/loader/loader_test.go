package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/ribbon/pkg/loader"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, loader.ConfigDir, loader.ConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, path, err := loader.LoadConfig(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Width != 700 {
		t.Errorf("Expected default width, got %v", cfg.Width)
	}
	if path != filepath.Join(dir, ".ribbon", "config.yaml") {
		t.Errorf("Unexpected config path %s", path)
	}
}

func TestLoadConfig_ReadsProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "width: 420\nslop: 4\n")

	cfg, _, err := loader.LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Width != 420 || cfg.Slop != 4 {
		t.Errorf("Expected width 420 slop 4, got %v %v", cfg.Width, cfg.Slop)
	}
}

func TestLoadConfigFromFile_InvalidNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "width: -5\n")

	_, err := loader.LoadConfigFromFile(path)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to mention %s, got %v", path, err)
	}
}

func TestLoadConfigFromFile_Missing(t *testing.T) {
	if _, err := loader.LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

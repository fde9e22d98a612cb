package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func buildRibbonBinary(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "ribbon")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("go build failed: %v\n%s", err, out)
	}
	return bin
}

func TestVersion(t *testing.T) {
	bin := buildRibbonBinary(t)
	out, err := exec.Command(bin, "--version").CombinedOutput()
	if err != nil {
		t.Fatalf("--version failed: %v\n%s", err, out)
	}
	if !strings.HasPrefix(string(out), "ribbon version ") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestPrintConfig_Defaults(t *testing.T) {
	bin := buildRibbonBinary(t)
	cmd := exec.Command(bin, "--print-config")
	cmd.Dir = t.TempDir()
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("--print-config failed: %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if got["width"] != 700 {
		t.Errorf("width = %v, want 700", got["width"])
	}
	if got["long_press"] != "500ms" {
		t.Errorf("long_press = %v, want 500ms", got["long_press"])
	}
}

func TestPrintConfig_ProjectOverride(t *testing.T) {
	bin := buildRibbonBinary(t)
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".ribbon"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".ribbon", "config.yaml"), []byte("width: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(bin, "--print-config")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("--print-config failed: %v", err)
	}
	if !strings.Contains(string(out), "width: 900") {
		t.Errorf("override not applied:\n%s", out)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	bin := buildRibbonBinary(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := exec.Command(bin, "--config", path, "--print-config").CombinedOutput()
	if err == nil {
		t.Fatalf("expected failure, got:\n%s", out)
	}
	if !strings.Contains(string(out), "Error loading config") {
		t.Errorf("unhelpful error output: %s", out)
	}
}

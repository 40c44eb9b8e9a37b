package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weightdist.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "containers: 7\noutput: result.csv\nverbose: true\n")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.Containers != 7 {
		t.Errorf("Containers = %d, expected 7", f.Containers)
	}
	if f.Output != "result.csv" {
		t.Errorf("Output = %q, expected result.csv", f.Output)
	}
	if !f.Verbose {
		t.Error("Verbose = false, expected true")
	}
}

func TestLoadPartial(t *testing.T) {
	f, err := Load(writeConfig(t, "containers: 3\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.Containers != 3 || f.Output != "" || f.Verbose {
		t.Errorf("unexpected settings: %+v", f)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "containers: [oops\n")); err == nil {
		t.Fatal("expected a decode error")
	}
}

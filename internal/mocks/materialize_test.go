package mocks

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMaterializeWritesFiles(t *testing.T) {
	dir := t.TempDir()
	resources := map[string]map[string]string{
		"submission": {
			"main.py":       "print()",
			"pkg/helper.py": "def helper(): pass",
		},
		"assignment_assets": {},
	}

	written, err := Materialize(dir, resources)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "submission", "main.py"))
	if err != nil {
		t.Fatalf("reading materialized file: %v", err)
	}
	if string(data) != "print()" {
		t.Errorf("content = %q", data)
	}

	// Nested path created.
	if _, err := os.Stat(filepath.Join(dir, "submission", "pkg", "helper.py")); err != nil {
		t.Errorf("nested mock file not written: %v", err)
	}

	// Empty role gets a placeholder.
	if _, err := os.Stat(filepath.Join(dir, "assignment_assets", PlaceholderFile)); err != nil {
		t.Errorf("placeholder not written for empty role: %v", err)
	}

	if len(written) != 3 {
		t.Errorf("written = %v, want 3 paths", written)
	}
}

func TestMaterializeDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	resources := map[string]map[string]string{
		"b": {"z.txt": "z", "a.txt": "a"},
		"a": {"f.txt": "f"},
	}

	written, err := Materialize(dir, resources)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a", "f.txt"),
		filepath.Join(dir, "b", "a.txt"),
		filepath.Join(dir, "b", "z.txt"),
	}
	for i, p := range want {
		if written[i] != p {
			t.Errorf("written[%d] = %q, want %q", i, written[i], p)
		}
	}
}

func TestMaterializeRejectsEscapingPaths(t *testing.T) {
	dir := t.TempDir()
	resources := map[string]map[string]string{
		"submission": {"../outside.txt": "nope"},
	}
	if _, err := Materialize(dir, resources); err == nil {
		t.Fatal("expected error for path escaping the role directory")
	}
	if _, err := os.Stat(filepath.Join(dir, "outside.txt")); !os.IsNotExist(err) {
		t.Error("escaping file was written")
	}
}

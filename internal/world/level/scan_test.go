package level

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(`{"width": 10, "height": 10}`), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "forest.json"))
	writeFile(t, filepath.Join(dir, "Arena.JSON"))
	writeFile(t, filepath.Join(dir, ".hidden.json"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	levels, err := ScanDirectory(dir)
	if err != nil {
		t.Fatalf("Failed to scan: %v", err)
	}

	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d: %+v", len(levels), levels)
	}
	if levels[0].Name != "Arena" || levels[1].Name != "forest" {
		t.Errorf("Expected [Arena forest], got [%s %s]", levels[0].Name, levels[1].Name)
	}
	if levels[1].Path != filepath.Join(dir, "forest.json") {
		t.Errorf("Unexpected path %s", levels[1].Path)
	}
}

func TestScanDirectoryMissing(t *testing.T) {
	if _, err := ScanDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for a missing directory")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forest.json")
	writeFile(t, path)

	got, err := Resolve(dir, path)
	if err != nil || got != path {
		t.Errorf("Expected existing path to resolve to itself, got %q, %v", got, err)
	}

	got, err = Resolve(dir, "forest")
	if err != nil || got != path {
		t.Errorf("Expected name to resolve to %q, got %q, %v", path, got, err)
	}

	if _, err := Resolve(dir, "desert"); err == nil {
		t.Error("Expected error for an unknown level")
	}
}

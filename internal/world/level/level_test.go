package level

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/groundshadow/internal/core/shadows"
)

func TestLoadLevel(t *testing.T) {
	levelJSON := `{
		"name": "Courtyard",
		"width": 2000,
		"height": 1500,
		"camera": {"x": 100, "y": 50},
		"obstacles": [
			{"x": 100, "y": 200, "width": 64, "height": 32, "id": "crate"},
			{"X": 300, "Y": 400, "w": 10, "h": 90},
			{"x": "500", "y": 600, "displayWidth": 48, "displayHeight": 48, "kind": "tree"}
		]
	}`

	tmpFile, err := os.CreateTemp(t.TempDir(), "level*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpFile.WriteString(levelJSON); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpFile.Close()

	lvl, err := LoadLevel(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to load level: %v", err)
	}

	if lvl.Data.Name != "Courtyard" {
		t.Errorf("Expected name 'Courtyard', got '%s'", lvl.Data.Name)
	}
	if len(lvl.Obstacles) != 3 {
		t.Fatalf("Expected 3 obstacles, got %d", len(lvl.Obstacles))
	}

	want := []shadows.Obstacle{
		{X: 100, Y: 200, Width: 64, Height: 32},
		{X: 300, Y: 400, Width: 10, Height: 90},
		{X: 500, Y: 600, Width: 48, Height: 48},
	}
	for i, w := range want {
		got := lvl.Obstacles[i]
		if got.X != w.X || got.Y != w.Y || got.Width != w.Width || got.Height != w.Height {
			t.Errorf("Obstacle %d: expected %+v, got %+v", i, w, got)
		}
	}
	if lvl.Obstacles[0].Extra["id"] != "crate" {
		t.Errorf("Expected id 'crate' preserved, got %v", lvl.Obstacles[0].Extra["id"])
	}
	if lvl.Obstacles[2].Extra["kind"] != "tree" {
		t.Errorf("Expected kind 'tree' preserved, got %v", lvl.Obstacles[2].Extra["kind"])
	}

	cam := lvl.Camera(800, 600)
	if cam.X != 100 || cam.Y != 50 || cam.Width != 800 || cam.Height != 600 {
		t.Errorf("Unexpected starting camera %+v", cam)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := LoadLevel(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for a missing level file")
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"name": `},
		{"zero width", `{"width": 0, "height": 100}`},
		{"negative height", `{"width": 100, "height": -1}`},
		{"null obstacle", `{"width": 100, "height": 100, "obstacles": [null]}`},
		{"obstacle not an object", `{"width": 100, "height": 100, "obstacles": [42]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevel([]byte(tt.json)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseLevelWithoutObstacles(t *testing.T) {
	lvl, err := ParseLevel([]byte(`{"width": 100, "height": 100}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(lvl.Obstacles) != 0 {
		t.Errorf("Expected no obstacles, got %d", len(lvl.Obstacles))
	}
}

func TestClampCamera(t *testing.T) {
	lvl, err := ParseLevel([]byte(`{"width": 1000, "height": 800}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		in    shadows.CameraInfo
		wantX float64
		wantY float64
	}{
		{"inside", shadows.CameraInfo{X: 100, Y: 100, Width: 400, Height: 300}, 100, 100},
		{"past right and bottom", shadows.CameraInfo{X: 900, Y: 700, Width: 400, Height: 300}, 600, 500},
		{"negative", shadows.CameraInfo{X: -50, Y: -5, Width: 400, Height: 300}, 0, 0},
		{"viewport larger than level", shadows.CameraInfo{X: 10, Y: 10, Width: 2000, Height: 2000}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lvl.ClampCamera(tt.in)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, got.X, got.Y)
			}
			if got.Width != tt.in.Width || got.Height != tt.in.Height {
				t.Error("Expected viewport size to be unchanged")
			}
		})
	}
}

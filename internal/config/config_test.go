package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error: %v", err)
	}
	if cfg.Shadows.Light.Angle != 90 {
		t.Errorf("Expected default angle 90, got %v", cfg.Shadows.Light.Angle)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("Expected default width 1280, got %d", cfg.Window.Width)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"shadows": {
			"light": {"angle": 45, "color": "#336699"},
			"throttle_ms": 50
		},
		"window": {"title": "Test"}
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Shadows.Light.Angle != 45 {
		t.Errorf("Expected angle 45, got %v", cfg.Shadows.Light.Angle)
	}
	if cfg.Shadows.Light.Color != 0x336699 {
		t.Errorf("Expected colour #336699, got %s", cfg.Shadows.Light.Color)
	}
	if cfg.Shadows.Light.MaxLength != 1000 {
		t.Errorf("Expected max length to keep its default, got %v", cfg.Shadows.Light.MaxLength)
	}
	if cfg.Window.Title != "Test" || cfg.Window.Height != 720 {
		t.Errorf("Unexpected window config %+v", cfg.Window)
	}

	lc := cfg.Lighting()
	if lc.Tuning.ThrottleInterval != 50*time.Millisecond {
		t.Errorf("Expected throttle 50ms, got %v", lc.Tuning.ThrottleInterval)
	}
	if lc.Light.Color != 0x336699 {
		t.Errorf("Expected light colour 0x336699, got %#x", lc.Light.Color)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"shadows": `},
		{"zero max length", `{"shadows": {"light": {"max_length": 0}}}`},
		{"alpha out of range", `{"shadows": {"alpha": 2}}`},
		{"negative throttle", `{"shadows": {"throttle_ms": -1}}`},
		{"bad colour", `{"shadows": {"light": {"color": "notacolour"}}}`},
		{"zero window", `{"window": {"width": 0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#000000", 0x000000, false},
		{"#FF8800", 0xff8800, false},
		{"0x102030", 0x102030, false},
		{"  #abcdef ", 0xabcdef, false},
		{"black", 0x000000, false},
		{"MidnightBlue", 0x191970, false},
		{"#fff", 0, true},
		{"#gggggg", 0, true},
		{"not-a-colour", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestColorJSON(t *testing.T) {
	var c Color
	if err := json.Unmarshal([]byte(`16711680`), &c); err != nil {
		t.Fatalf("Failed to decode number: %v", err)
	}
	if c != 0xff0000 {
		t.Errorf("Expected 0xff0000, got %s", c)
	}

	if err := json.Unmarshal([]byte(`-5`), &c); err == nil {
		t.Error("Expected error for a negative colour")
	}
	if err := json.Unmarshal([]byte(`true`), &c); err == nil {
		t.Error("Expected error for a boolean colour")
	}

	out, err := json.Marshal(Color(0x0a0b0c))
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if string(out) != `"#0a0b0c"` {
		t.Errorf("Expected \"#0a0b0c\", got %s", out)
	}
}

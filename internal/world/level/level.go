// Package level loads obstacle layouts for the shadow demo and snapshot tool.
package level

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/groundshadow/internal/core/shadows"
)

// CameraStart is where the camera's top-left corner begins
type CameraStart struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LevelData is the on-disk level format. Obstacle records are loose maps so
// layouts exported by other tools can name their fields differently.
type LevelData struct {
	Name      string           `json:"name"`
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	Camera    CameraStart      `json:"camera"`
	Obstacles []shadows.Record `json:"obstacles"`
}

// Level is a loaded level with its obstacles decoded
type Level struct {
	Data      *LevelData
	Obstacles []shadows.Obstacle
}

// LoadLevel reads and decodes a level from a JSON file
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", path, err)
	}
	return lvl, nil
}

// ParseLevel decodes a level from JSON bytes
func ParseLevel(data []byte) (*Level, error) {
	var levelData LevelData
	if err := json.Unmarshal(data, &levelData); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	if err := validateLevelData(&levelData); err != nil {
		return nil, fmt.Errorf("invalid level data: %w", err)
	}

	obstacles := make([]shadows.Obstacle, len(levelData.Obstacles))
	for i, rec := range levelData.Obstacles {
		obstacles[i] = shadows.DecodeObstacle(rec)
	}

	return &Level{
		Data:      &levelData,
		Obstacles: obstacles,
	}, nil
}

// validateLevelData checks if the level data is usable
func validateLevelData(data *LevelData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid level dimensions: %vx%v", data.Width, data.Height)
	}

	for i, rec := range data.Obstacles {
		if rec == nil {
			return fmt.Errorf("obstacle %d is null", i)
		}
	}

	return nil
}

// Camera returns the starting camera for a viewport of the given size
func (l *Level) Camera(viewWidth, viewHeight float64) shadows.CameraInfo {
	return shadows.CameraInfo{
		X:      l.Data.Camera.X,
		Y:      l.Data.Camera.Y,
		Width:  viewWidth,
		Height: viewHeight,
	}
}

// ClampCamera keeps the camera's top-left corner inside the level. Levels
// smaller than the viewport pin the camera to the origin.
func (l *Level) ClampCamera(camera shadows.CameraInfo) shadows.CameraInfo {
	clamp := func(v, limit float64) float64 {
		if v > limit {
			v = limit
		}
		if v < 0 {
			v = 0
		}
		return v
	}
	camera.X = clamp(camera.X, l.Data.Width-camera.Width)
	camera.Y = clamp(camera.Y, l.Data.Height-camera.Height)
	return camera
}

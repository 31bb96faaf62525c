package lighting

import (
	"testing"

	"chosenoffset.com/groundshadow/internal/core/shadows"
	"chosenoffset.com/groundshadow/internal/render/raster"
)

func TestShadowsOnRasterCanvas(t *testing.T) {
	canvas, err := raster.NewCanvas(200, 200)
	if err != nil {
		t.Fatalf("Failed to create canvas: %v", err)
	}

	r, err := NewShadowRenderer(canvas, DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Destroy()

	camera := shadows.CameraInfo{X: 1000, Y: 1000, Width: 200, Height: 200}
	canvas.SetOrigin(camera.X, camera.Y)
	obstacles := []shadows.Obstacle{{X: 1050, Y: 1020, Width: 40, Height: 20}}
	r.ForceUpdate(obstacles, camera)

	alpha := func(x, y int) uint32 {
		_, _, _, a := canvas.Image().At(x, y).RGBA()
		return a
	}

	// The straight-down shadow covers x 50..90 from y 20 to the bottom edge
	if alpha(70, 150) == 0 {
		t.Error("Expected pixel below the obstacle to be shaded")
	}
	if alpha(20, 150) != 0 {
		t.Error("Expected pixel beside the shadow to stay clear")
	}
	if alpha(70, 10) != 0 {
		t.Error("Expected pixel above the obstacle to stay clear")
	}

	r.SetEnabled(false)
	if alpha(70, 150) != 0 {
		t.Error("Expected disabling to clear the canvas")
	}
}

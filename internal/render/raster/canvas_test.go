package raster

import (
	"os"
	"path/filepath"
	"testing"
)

func alphaAt(t *testing.T, c *Canvas, x, y int) uint32 {
	t.Helper()
	_, _, _, a := c.Image().At(x, y).RGBA()
	return a
}

func fillSquare(c *Canvas, x, y, size float64) error {
	c.BeginPath()
	c.MoveTo(x, y)
	c.LineTo(x+size, y)
	c.LineTo(x+size, y+size)
	c.LineTo(x, y+size)
	c.ClosePath()
	return c.FillPath()
}

func TestCanvasFillsPolygon(t *testing.T) {
	c, err := NewCanvas(100, 100)
	if err != nil {
		t.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Destroy()

	c.SetFillStyle(0x000000, 1)
	if err := fillSquare(c, 20, 20, 40); err != nil {
		t.Fatalf("Failed to fill: %v", err)
	}

	if a := alphaAt(t, c, 40, 40); a == 0 {
		t.Error("Expected pixel inside the square to be painted")
	}
	if a := alphaAt(t, c, 80, 80); a != 0 {
		t.Errorf("Expected pixel outside the square to stay transparent, got alpha %d", a)
	}

	c.Clear()
	if a := alphaAt(t, c, 40, 40); a != 0 {
		t.Errorf("Expected Clear to reset pixels, got alpha %d", a)
	}
}

func TestCanvasOriginFollowsCamera(t *testing.T) {
	c, err := NewCanvas(100, 100)
	if err != nil {
		t.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Destroy()

	c.SetOrigin(1000, 500)
	c.SetFillStyle(0x000000, 1)
	if err := fillSquare(c, 1010, 510, 20); err != nil {
		t.Fatalf("Failed to fill: %v", err)
	}

	if a := alphaAt(t, c, 20, 20); a == 0 {
		t.Error("Expected world (1020, 520) to land on pixel (20, 20)")
	}
}

func TestCanvasRejectsDegeneratePath(t *testing.T) {
	c, err := NewCanvas(10, 10)
	if err != nil {
		t.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Destroy()

	c.BeginPath()
	c.MoveTo(1, 1)
	c.LineTo(2, 2)
	if err := c.FillPath(); err == nil {
		t.Error("Expected error when filling a two-point path")
	}
}

func TestCanvasDestroy(t *testing.T) {
	c, err := NewCanvas(10, 10)
	if err != nil {
		t.Fatalf("Failed to create canvas: %v", err)
	}
	c.Destroy()
	c.Destroy()

	if err := fillSquare(c, 0, 0, 5); err == nil {
		t.Error("Expected fill on a destroyed canvas to fail")
	}
}

func TestCanvasSavePNG(t *testing.T) {
	c, err := NewCanvas(16, 16)
	if err != nil {
		t.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Destroy()

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Expected a non-empty PNG at %s", path)
	}
}

func TestNewCanvasInvalidSize(t *testing.T) {
	if _, err := NewCanvas(0, 10); err == nil {
		t.Error("Expected error for zero width")
	}
}

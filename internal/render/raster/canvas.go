// Package raster provides a headless drawing surface backed by the gg
// software rasterizer. It is used for snapshots and for pixel-level tests.
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"chosenoffset.com/groundshadow/internal/render"
)

var errCanvasDestroyed = errors.New("canvas destroyed")

// Canvas draws shadows straight into a pixel buffer. The buffer covers the
// camera viewport; world coordinates are shifted by the camera origin times
// the scroll factor.
type Canvas struct {
	dc *gg.Context

	originX, originY float64
	scrollX, scrollY float64
	depth            int

	r, g, b, a float64
	points     int
	destroyed  bool
}

var _ render.Surface = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size: %dx%d", width, height)
	}
	return &Canvas{
		dc:      gg.NewContext(width, height),
		scrollX: 1,
		scrollY: 1,
		a:       1,
	}, nil
}

// SetOrigin sets the world position shown at the canvas top-left corner.
// Call it with the camera position before drawing a frame.
func (c *Canvas) SetOrigin(x, y float64) {
	c.originX, c.originY = x, y
}

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	if c.destroyed {
		return
	}
	c.dc.Clear()
	c.dc.ClearPath()
	c.points = 0
}

// SetFillStyle sets the fill colour and alpha.
func (c *Canvas) SetFillStyle(rgb uint32, alpha float64) {
	c.r = float64((rgb>>16)&0xff) / 255
	c.g = float64((rgb>>8)&0xff) / 255
	c.b = float64(rgb&0xff) / 255
	c.a = alpha
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	if c.destroyed {
		return
	}
	c.dc.ClearPath()
	c.points = 0
}

// MoveTo starts a new subpath at a world position.
func (c *Canvas) MoveTo(x, y float64) {
	if c.destroyed {
		return
	}
	c.dc.MoveTo(c.toPixel(x, y))
	c.points++
}

// LineTo adds a line to a world position.
func (c *Canvas) LineTo(x, y float64) {
	if c.destroyed {
		return
	}
	c.dc.LineTo(c.toPixel(x, y))
	c.points++
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if c.destroyed {
		return
	}
	c.dc.ClosePath()
}

// FillPath rasterizes the current path.
func (c *Canvas) FillPath() error {
	if c.destroyed {
		return errCanvasDestroyed
	}
	if n := c.points; n < 3 {
		c.dc.ClearPath()
		c.points = 0
		return fmt.Errorf("path has %d points, need at least 3", n)
	}
	c.points = 0
	c.dc.SetRGBA(c.r, c.g, c.b, c.a)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("failed to fill path: %w", err)
	}
	return nil
}

// SetDepth records the draw-order key. A canvas is a single layer, so the
// value is only reported back through Depth.
func (c *Canvas) SetDepth(depth int) {
	c.depth = depth
}

// Depth returns the draw-order key.
func (c *Canvas) Depth() int {
	return c.depth
}

// SetScrollFactor sets how strongly the canvas follows the origin.
func (c *Canvas) SetScrollFactor(x, y float64) {
	c.scrollX, c.scrollY = x, y
}

// Destroy releases the rasterizer context.
func (c *Canvas) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	_ = c.dc.Close()
}

// Image returns the current pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the current pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.destroyed {
		return errCanvasDestroyed
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	return x - c.originX*c.scrollX, y - c.originY*c.scrollY
}

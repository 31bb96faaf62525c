package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminate is returned from Game.Update to end the game loop normally.
var ErrTerminate = errors.New("render: terminate")

// Surface is a persistent drawing layer that shadows are painted onto.
// Coordinates are world units; the surface applies its own scroll factor
// against the camera when it is composited.
type Surface interface {
	// Clear removes everything drawn so far.
	Clear()

	// SetFillStyle sets the colour (packed 0xRRGGBB) and alpha used by FillPath.
	SetFillStyle(rgb uint32, alpha float64)

	// Path building
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	// FillPath fills the current path with the fill style and starts a new one.
	FillPath() error

	// SetDepth sets the draw-order key; higher depths are drawn later.
	SetDepth(depth int)

	// SetScrollFactor sets how much the surface follows the camera.
	// (1, 1) keeps the surface locked to world space.
	SetScrollFactor(x, y float64)

	// Destroy releases the surface. It must be safe to call more than once.
	Destroy()
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Resource management
	Dispose()
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the demo listens to
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ // Rotate light counter-clockwise
	KeyE // Rotate light clockwise
	KeyL // Shadow toggle key
	KeyEqual
	KeyMinus
	KeyEscape
)

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

package ebiten

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/groundshadow/internal/render"
)

var (
	errLayerDestroyed = errors.New("layer destroyed")
	errVertexBudget   = errors.New("layer vertex budget exhausted")
)

// Stage owns a set of layers and composites them onto the screen in depth order.
type Stage struct {
	layers   []*Layer
	whiteImg *ebiten.Image
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// NewLayer creates a layer registered with this stage.
func (s *Stage) NewLayer() *Layer {
	l := &Layer{stage: s, scrollX: 1, scrollY: 1, colorA: 1}
	s.layers = append(s.layers, l)
	return l
}

// Draw composites every layer onto dst, lowest depth first. Each layer is
// offset by the camera position times its scroll factor.
func (s *Stage) Draw(dst render.Image, cameraX, cameraY float64) {
	if s.whiteImg == nil {
		s.whiteImg = ebiten.NewImage(1, 1)
		s.whiteImg.Fill(color.White)
	}
	target := dst.(*EbitenImage).img

	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].depth < s.layers[j].depth
	})

	for _, l := range s.layers {
		if len(l.indices) == 0 {
			continue
		}
		offX := float32(cameraX * l.scrollX)
		offY := float32(cameraY * l.scrollY)

		vertices := make([]ebiten.Vertex, len(l.vertices))
		for i, v := range l.vertices {
			v.DstX -= offX
			v.DstY -= offY
			vertices[i] = v
		}
		target.DrawTriangles(vertices, l.indices, s.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: false})
	}
}

func (s *Stage) remove(l *Layer) {
	for i, other := range s.layers {
		if other == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

// Layer is a retained, world-space drawing surface. Filled paths are
// tessellated into triangles once and replayed every frame by the Stage.
type Layer struct {
	stage *Stage

	vertices []ebiten.Vertex
	indices  []uint16

	path       vector.Path
	pathPoints int

	colorR, colorG, colorB, colorA float32

	depth            int
	scrollX, scrollY float64
	destroyed        bool
}

var _ render.Surface = (*Layer)(nil)

// Clear removes all retained triangles.
func (l *Layer) Clear() {
	l.vertices = l.vertices[:0]
	l.indices = l.indices[:0]
	l.BeginPath()
}

// SetFillStyle sets the colour used by the next fills.
func (l *Layer) SetFillStyle(rgb uint32, alpha float64) {
	l.colorR = float32((rgb>>16)&0xff) / 255
	l.colorG = float32((rgb>>8)&0xff) / 255
	l.colorB = float32(rgb&0xff) / 255
	l.colorA = float32(alpha)
}

// BeginPath discards the current path.
func (l *Layer) BeginPath() {
	l.path = vector.Path{}
	l.pathPoints = 0
}

// MoveTo starts a new subpath.
func (l *Layer) MoveTo(x, y float64) {
	l.path.MoveTo(float32(x), float32(y))
	l.pathPoints++
}

// LineTo adds a line to the current subpath.
func (l *Layer) LineTo(x, y float64) {
	l.path.LineTo(float32(x), float32(y))
	l.pathPoints++
}

// ClosePath closes the current subpath.
func (l *Layer) ClosePath() {
	l.path.Close()
}

// FillPath tessellates the current path and retains its triangles.
func (l *Layer) FillPath() error {
	defer l.BeginPath()

	if l.destroyed {
		return errLayerDestroyed
	}
	if l.pathPoints < 3 {
		return fmt.Errorf("path has %d points, need at least 3", l.pathPoints)
	}

	vs, is := l.path.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(l.vertices)+len(vs) > math.MaxUint16 {
		return errVertexBudget
	}

	base := uint16(len(l.vertices))
	for i := range vs {
		if math.IsNaN(float64(vs[i].DstX)) || math.IsNaN(float64(vs[i].DstY)) {
			return fmt.Errorf("vertex %d is not a number", i)
		}
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = l.colorR
		vs[i].ColorG = l.colorG
		vs[i].ColorB = l.colorB
		vs[i].ColorA = l.colorA
	}
	for _, idx := range is {
		l.indices = append(l.indices, base+idx)
	}
	l.vertices = append(l.vertices, vs...)
	return nil
}

// SetDepth sets the composite order within the stage.
func (l *Layer) SetDepth(depth int) {
	l.depth = depth
}

// SetScrollFactor sets how strongly the layer follows the camera.
func (l *Layer) SetScrollFactor(x, y float64) {
	l.scrollX, l.scrollY = x, y
}

// Destroy detaches the layer from its stage and drops its geometry.
func (l *Layer) Destroy() {
	if l.destroyed {
		return
	}
	l.destroyed = true
	l.vertices = nil
	l.indices = nil
	if l.stage != nil {
		l.stage.remove(l)
	}
}

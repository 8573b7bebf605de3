package viz

import (
	"math"

	"github.com/san-kum/collide/internal/trajectory"
)

const tickSpacing = 10.0

// Scene is the world box of the 3D view in simulation units. Both particles
// travel along the X axis at y = z = 0.
type Scene struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// DefaultScene spans x in [-10, 30] and y, z in [-5, 5].
func DefaultScene() Scene {
	return Scene{XMin: -10, XMax: 30, YMin: -5, YMax: 5, ZMin: -5, ZMax: 5}
}

func (s Scene) center() Vec3 {
	return Vec3{(s.XMin + s.XMax) / 2, (s.YMin + s.YMax) / 2, (s.ZMin + s.ZMax) / 2}
}

// ToView maps a world point so the X range becomes [-1, 1], keeping aspect.
func (s Scene) ToView(p Vec3) Vec3 {
	span := s.XMax - s.XMin
	if span <= 0 {
		span = 1
	}
	return p.Sub(s.center()).Scale(2 / span)
}

// Wireframe returns the box outline, the dashed X track and tick marks
// every ten units along the front floor edge.
func (s Scene) Wireframe() *Wireframe {
	w := BoxWireframe(s.ToView(Vec3{s.XMin, s.YMin, s.ZMin}), s.ToView(Vec3{s.XMax, s.YMax, s.ZMax}))

	axis := NewWireframe()
	axis.AddDashed(s.ToView(Vec3{s.XMin, 0, 0}), s.ToView(Vec3{s.XMax, 0, 0}))
	tick := (s.YMax - s.YMin) * 0.08
	for x := math.Ceil(s.XMin/tickSpacing) * tickSpacing; x <= s.XMax; x += tickSpacing {
		axis.AddEdge(s.ToView(Vec3{x, s.YMin, s.ZMax}), s.ToView(Vec3{x, s.YMin + tick, s.ZMax}))
	}

	w.Append(axis)
	return w
}

// Markers returns the canvas positions of both particles at p and whether
// each is visible.
func (s Scene) Markers(c *Canvas, cam *Camera, p trajectory.Point) (m1, m2 [2]int, ok1, ok2 bool) {
	cw, ch := c.PixelSize()
	x1, y1, _, ok1 := cam.Project(s.ToView(Vec3{p.Position1, 0, 0}), cw, ch)
	x2, y2, _, ok2 := cam.Project(s.ToView(Vec3{p.Position2, 0, 0}), cw, ch)
	return [2]int{x1, y1}, [2]int{x2, y2}, ok1, ok2
}

// Draw clears c and renders the box with particle 1 as a filled square and
// particle 2 as a diamond.
func (s Scene) Draw(c *Canvas, cam *Camera, p trajectory.Point) {
	c.Clear()
	Render3D(c, s.Wireframe(), cam)
	m1, m2, ok1, ok2 := s.Markers(c, cam, p)
	if ok1 {
		c.FillSquare(m1[0], m1[1], 1)
	}
	if ok2 {
		c.Diamond(m2[0], m2[1], 2)
	}
}

// RenderFrame draws frame i of tr on a fresh w x h canvas.
func RenderFrame(s Scene, cam *Camera, tr trajectory.Trajectory, i, w, h int) *Canvas {
	c := NewCanvas(w, h)
	s.Draw(c, cam, tr.Frame(i))
	return c
}

// RenderAll draws every frame of tr.
func RenderAll(s Scene, cam *Camera, tr trajectory.Trajectory, w, h int) []*Canvas {
	out := make([]*Canvas, len(tr))
	for i := range tr {
		out[i] = RenderFrame(s, cam, tr, i, w, h)
	}
	return out
}

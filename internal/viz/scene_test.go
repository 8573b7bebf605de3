package viz

import (
	"math"
	"testing"

	"github.com/san-kum/collide/internal/trajectory"
)

func TestCameraProjectsOriginToCentre(t *testing.T) {
	cam := NewCamera()
	x, y, _, ok := cam.Project(Vec3{}, 120, 64)
	if !ok || x != 60 || y != 32 {
		t.Errorf("expected (60,32) visible, got (%d,%d) %v", x, y, ok)
	}
}

func TestCameraHidesPointsBehindIt(t *testing.T) {
	cam := &Camera{Distance: 6, Near: 0.1, Zoom: 1}
	if _, _, _, ok := cam.Project(Vec3{0, 0, 10}, 120, 64); ok {
		t.Error("point behind camera should not be visible")
	}
}

func TestCameraZoomBounds(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("zoom exceeded max: %f", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Errorf("zoom below min: %f", cam.Zoom)
	}
	cam.RotateX(1)
	cam.Reset()
	if cam.RotX != defaultRotX || cam.Zoom != 1 {
		t.Error("reset should restore defaults")
	}
}

func TestSceneToViewNormalisesX(t *testing.T) {
	s := DefaultScene()
	lo := s.ToView(Vec3{s.XMin, 0, 0})
	hi := s.ToView(Vec3{s.XMax, 0, 0})
	if math.Abs(lo.X+1) > 1e-12 || math.Abs(hi.X-1) > 1e-12 {
		t.Errorf("expected X in [-1,1], got %f..%f", lo.X, hi.X)
	}
	top := s.ToView(Vec3{10, 5, 0})
	if math.Abs(top.Y-0.25) > 1e-12 {
		t.Errorf("expected aspect preserved, got y=%f", top.Y)
	}
}

func TestSceneWireframeHasBoxTrackAndTicks(t *testing.T) {
	w := DefaultScene().Wireframe()
	// 12 box edges, 1 track, ticks at -10, 0, 10, 20, 30
	if len(w.Edges) != 12+1+5 {
		t.Errorf("expected 18 edges, got %d", len(w.Edges))
	}
	if !w.Edges[12].Dashed {
		t.Error("track should follow the box edges and be dashed")
	}
}

func TestWireframeAppend(t *testing.T) {
	w := BoxWireframe(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	o := NewWireframe()
	o.AddDashed(Vec3{}, Vec3{1, 0, 0})
	w.Append(o)
	if len(w.Edges) != 13 || !w.Edges[12].Dashed {
		t.Errorf("expected appended dashed edge, got %d edges", len(w.Edges))
	}
}

func TestSceneDrawsBothMarkers(t *testing.T) {
	tr, err := trajectory.Animate(5, -3, trajectory.DefaultSamples)
	if err != nil {
		t.Fatal(err)
	}
	s, cam := DefaultScene(), NewCamera()
	c := RenderFrame(s, cam, tr, 0, 60, 16)

	m1, m2, ok1, ok2 := s.Markers(c, cam, tr[0])
	if !ok1 || !ok2 {
		t.Fatal("both particles should be visible at t=0")
	}
	if !c.IsSet(m1[0], m1[1]) || !c.IsSet(m2[0], m2[1]) {
		t.Error("markers not drawn")
	}
	if m1[0] >= m2[0] {
		t.Errorf("particle 1 should start left of particle 2: %v %v", m1, m2)
	}
}

func TestRenderAllMovesMarkers(t *testing.T) {
	tr, err := trajectory.Animate(5, -3, 10)
	if err != nil {
		t.Fatal(err)
	}
	frames := RenderAll(DefaultScene(), NewCamera(), tr, 60, 16)
	if len(frames) != 10 {
		t.Fatalf("expected 10 frames, got %d", len(frames))
	}
	if frames[0].String() == frames[9].String() {
		t.Error("first and last frame should differ")
	}

	again := RenderAll(DefaultScene(), NewCamera(), tr, 60, 16)
	for i := range frames {
		if frames[i].String() != again[i].String() {
			t.Fatalf("frame %d not deterministic", i)
		}
	}
}

func TestPositionsChart(t *testing.T) {
	tr, _ := trajectory.Animate(5, -3, 30)
	if PositionsChart(tr, 40, 5, "x") == "" {
		t.Error("expected chart output")
	}
	if PositionsChart(tr[:1], 40, 5, "x") != "" {
		t.Error("single point should not plot")
	}
	if GapChart(tr, 40, 5) == "" {
		t.Error("expected gap chart output")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nope").Name != ThemeCyberpunk.Name {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != Themes[0].Name {
		t.Error("NextTheme should cycle through all themes")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names length mismatch")
	}
}

package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/collide/internal/trajectory"
)

// Bitmap is a grid of on/off sub-pixels, such as a Braille canvas.
type Bitmap interface {
	PixelSize() (int, int)
	IsSet(x, y int) bool
}

// CanvasToSVG converts a canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(b Bitmap, scale float64) string {
	if b == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}

	pw, ph := b.PixelSize()
	width := float64(pw) * scale
	height := float64(ph) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ffff">
`, width, height, width, height))

	dotRadius := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !b.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectoryToSVG plots both particle positions against time, particle 1 in
// blue and particle 2 in red.
func TrajectoryToSVG(tr trajectory.Trajectory, width, height int) string {
	if len(tr) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	minT, maxT := tr[0].T, tr[len(tr)-1].T
	minX, maxX := tr.Bounds()
	rangeT := maxT - minT
	rangeX := maxX - minX
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeX == 0 {
		rangeX = 1
	}
	minX -= rangeX * 0.1
	rangeX *= 1.2

	path := func(pos func(trajectory.Point) float64) string {
		var sb strings.Builder
		for i, p := range tr {
			x := (p.T - minT) / rangeT * float64(width)
			y := float64(height) - (pos(p)-minX)/rangeX*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#3b82f6" stroke-width="1.5" d="%s"/>
`, path(func(p trajectory.Point) float64 { return p.Position1 })))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#ef4444" stroke-width="1.5" d="%s"/>
`, path(func(p trajectory.Point) float64 { return p.Position2 })))
	sb.WriteString("</svg>")
	return sb.String()
}

// SaveSVG writes svg to path.
func SaveSVG(path, svg string) error {
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/collide/internal/trajectory"
)

// PositionsChart plots both particle positions against frame index.
// Particle 1 is drawn in blue and particle 2 in red.
func PositionsChart(tr trajectory.Trajectory, width, height int, caption string) string {
	if len(tr) < 2 {
		return ""
	}
	x1, x2 := tr.Positions()
	return asciigraph.PlotMany([][]float64{x1, x2},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
	)
}

// GapChart plots the separation x2-x1; it crosses zero where the particles
// meet.
func GapChart(tr trajectory.Trajectory, width, height int) string {
	if len(tr) < 2 {
		return ""
	}
	return asciigraph.Plot(tr.Gap(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("separation x2 - x1"),
	)
}

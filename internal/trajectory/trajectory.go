// Package trajectory generates the frame positions used to replay the
// approach of two particles.
//
// Positions are affine in time: particle 1 starts at the origin and particle
// 2 at [Spec.Offset], each moving with its own pre-collision velocity. The
// post-collision velocities are not used; the replay stops before impact is
// resolved.
package trajectory

import (
	"fmt"
	"math"
)

const (
	DefaultSamples  = 30
	DefaultDuration = 2.0
	DefaultOffset   = 10.0
)

// Point is one sample of the replay.
type Point struct {
	T         float64 `json:"t"`
	Position1 float64 `json:"position1"`
	Position2 float64 `json:"position2"`
}

// Trajectory is a fully materialized, time-ordered sequence of points.
type Trajectory []Point

// Spec fixes the time interval and initial separation of a replay.
type Spec struct {
	Duration float64 `yaml:"duration"`
	Offset   float64 `yaml:"offset"`
}

// DefaultSpec covers [0, 2] with particle 2 starting 10 units away.
var DefaultSpec = Spec{Duration: DefaultDuration, Offset: DefaultOffset}

// Animate samples DefaultSpec.
func Animate(velocity1, velocity2 float64, samples int) (Trajectory, error) {
	return DefaultSpec.Animate(velocity1, velocity2, samples)
}

// Animate returns samples evenly spaced points over [0, s.Duration]. The
// first point is at t=0 and the last at exactly t=s.Duration.
func (s Spec) Animate(velocity1, velocity2 float64, samples int) (Trajectory, error) {
	if samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSampleCount, samples)
	}
	if !(s.Duration > 0) || math.IsInf(s.Duration, 0) || math.IsNaN(s.Offset) || math.IsInf(s.Offset, 0) {
		return nil, fmt.Errorf("%w: duration=%g offset=%g", ErrInvalidSpec, s.Duration, s.Offset)
	}

	step := s.Duration / float64(samples-1)
	traj := make(Trajectory, samples)
	for i := range traj {
		t := float64(i) * step
		if i == samples-1 {
			t = s.Duration
		}
		traj[i] = Point{
			T:         t,
			Position1: velocity1 * t,
			Position2: s.Offset + velocity2*t,
		}
	}
	return traj, nil
}

// Len returns the number of frames.
func (tr Trajectory) Len() int { return len(tr) }

// Frame returns point i, clamped to the valid range. An empty trajectory
// yields the zero Point.
func (tr Trajectory) Frame(i int) Point {
	if len(tr) == 0 {
		return Point{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(tr) {
		i = len(tr) - 1
	}
	return tr[i]
}

// Times returns the sample times.
func (tr Trajectory) Times() []float64 {
	ts := make([]float64, len(tr))
	for i, p := range tr {
		ts[i] = p.T
	}
	return ts
}

// Positions returns the two position series, suitable for plotting.
func (tr Trajectory) Positions() (x1, x2 []float64) {
	x1 = make([]float64, len(tr))
	x2 = make([]float64, len(tr))
	for i, p := range tr {
		x1[i], x2[i] = p.Position1, p.Position2
	}
	return x1, x2
}

// Bounds returns the smallest and largest position reached by either
// particle.
func (tr Trajectory) Bounds() (lo, hi float64) {
	if len(tr) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range tr {
		lo = math.Min(lo, math.Min(p.Position1, p.Position2))
		hi = math.Max(hi, math.Max(p.Position1, p.Position2))
	}
	return lo, hi
}

// Gap returns the signed separation x2-x1 at each sample.
func (tr Trajectory) Gap() []float64 {
	gs := make([]float64, len(tr))
	for i, p := range tr {
		gs[i] = p.Position2 - p.Position1
	}
	return gs
}

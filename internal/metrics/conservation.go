package metrics

import (
	"fmt"
	"math"

	"github.com/san-kum/collide/internal/collision"
)

const (
	UnitMomentum = "kg·m/s"
	UnitEnergy   = "J"

	// DefaultTolerance is the difference, relative to the quantity's scale,
	// below which it counts as conserved.
	DefaultTolerance = 1e-9
)

// Quantity is a conserved quantity observed before and after a collision.
type Quantity struct {
	Name   string  `json:"name"`
	Unit   string  `json:"unit"`
	Before float64 `json:"before"`
	After  float64 `json:"after"`
	// Scale is the sum of the magnitudes of the per-particle terms. Momentum
	// terms can cancel, so rounding error follows Scale rather than Before.
	Scale float64 `json:"scale"`
}

// Conservation returns the momentum and kinetic energy entries of r for the
// incoming pair p1, p2, in that order.
func Conservation(p1, p2 collision.Particle, r collision.Result) []Quantity {
	f1, f2 := r.Final(p1, p2)
	return []Quantity{
		{
			Name: "momentum", Unit: UnitMomentum,
			Before: r.MomentumBefore, After: r.MomentumAfter,
			Scale: math.Max(magnitude(p1, p2), magnitude(f1, f2)),
		},
		{
			Name: "kinetic energy", Unit: UnitEnergy,
			Before: r.EnergyBefore, After: r.EnergyAfter,
			Scale: math.Max(r.EnergyBefore, r.EnergyAfter),
		},
	}
}

func magnitude(ps ...collision.Particle) float64 {
	sum := 0.0
	for _, p := range ps {
		sum += math.Abs(p.Momentum())
	}
	return sum
}

// Delta returns After-Before.
func (q Quantity) Delta() float64 { return q.After - q.Before }

// Drift returns |After-Before|/|Before|, or the absolute difference when
// Before is zero.
func (q Quantity) Drift() float64 {
	d := math.Abs(q.Delta())
	if q.Before == 0 {
		return d
	}
	return d / math.Abs(q.Before)
}

// Conserved reports whether |After-Before| is within tol times the
// quantity's scale, taken as at least 1.
func (q Quantity) Conserved(tol float64) bool {
	scale := math.Max(1, math.Max(q.Scale, math.Max(math.Abs(q.Before), math.Abs(q.After))))
	return math.Abs(q.Delta()) <= tol*scale
}

// FormatBefore renders the pre-collision value with two decimals and unit.
func (q Quantity) FormatBefore() string { return fmt.Sprintf("%.2f %s", q.Before, q.Unit) }

// FormatAfter renders the post-collision value with two decimals and unit.
func (q Quantity) FormatAfter() string { return fmt.Sprintf("%.2f %s", q.After, q.Unit) }

// Lines returns the "before" and "after" display lines for q.
func (q Quantity) Lines() [2]string {
	return [2]string{
		fmt.Sprintf("%s before collision: %s", q.Name, q.FormatBefore()),
		fmt.Sprintf("%s after collision: %s", q.Name, q.FormatAfter()),
	}
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s: %s -> %s (drift %.2e)", q.Name, q.FormatBefore(), q.FormatAfter(), q.Drift())
}

// AllConserved reports whether every quantity in qs is conserved within tol.
func AllConserved(qs []Quantity, tol float64) bool {
	for _, q := range qs {
		if !q.Conserved(tol) {
			return false
		}
	}
	return true
}

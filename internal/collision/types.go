package collision

import "math"

// Particle is the pre-collision state of one body.
type Particle struct {
	Mass     float64 `json:"mass" yaml:"mass"`
	Velocity float64 `json:"velocity" yaml:"velocity"`
}

// Momentum returns m*v.
func (p Particle) Momentum() float64 { return p.Mass * p.Velocity }

// KineticEnergy returns m*v²/2.
func (p Particle) KineticEnergy() float64 { return 0.5 * p.Mass * (p.Velocity * p.Velocity) }

func (p Particle) valid() bool {
	if math.IsNaN(p.Mass) || math.IsInf(p.Mass, 0) || p.Mass <= 0 {
		return false
	}
	return !math.IsNaN(p.Velocity) && !math.IsInf(p.Velocity, 0)
}

// Result holds the outcome of one elastic collision.
type Result struct {
	Velocity1Final float64 `json:"velocity1_final"`
	Velocity2Final float64 `json:"velocity2_final"`
	MomentumBefore float64 `json:"momentum_before"`
	MomentumAfter  float64 `json:"momentum_after"`
	EnergyBefore   float64 `json:"energy_before"`
	EnergyAfter    float64 `json:"energy_after"`
}

// Final returns the two particles as they leave the collision.
func (r Result) Final(p1, p2 Particle) (Particle, Particle) {
	return Particle{Mass: p1.Mass, Velocity: r.Velocity1Final},
		Particle{Mass: p2.Mass, Velocity: r.Velocity2Final}
}

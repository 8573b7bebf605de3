package collision

import "fmt"

// Solve applies the 1-D elastic collision equations to p1 and p2.
func Solve(p1, p2 Particle) (Result, error) {
	if !p1.valid() {
		return Result{}, fmt.Errorf("%w: particle 1 (mass=%g, velocity=%g)", ErrInvalidInput, p1.Mass, p1.Velocity)
	}
	if !p2.valid() {
		return Result{}, fmt.Errorf("%w: particle 2 (mass=%g, velocity=%g)", ErrInvalidInput, p2.Mass, p2.Velocity)
	}

	m1, v1 := p1.Mass, p1.Velocity
	m2, v2 := p2.Mass, p2.Velocity
	total := m1 + m2

	v1f := ((m1-m2)/total)*v1 + (2*m2/total)*v2
	v2f := (2*m1/total)*v1 + ((m2-m1)/total)*v2

	f1, f2 := Particle{Mass: m1, Velocity: v1f}, Particle{Mass: m2, Velocity: v2f}

	return Result{
		Velocity1Final: v1f,
		Velocity2Final: v2f,
		MomentumBefore: Momentum(p1, p2),
		MomentumAfter:  Momentum(f1, f2),
		EnergyBefore:   KineticEnergy(p1, p2),
		EnergyAfter:    KineticEnergy(f1, f2),
	}, nil
}

// Momentum sums m*v over ps.
func Momentum(ps ...Particle) float64 {
	sum := 0.0
	for _, p := range ps {
		sum += p.Momentum()
	}
	return sum
}

// KineticEnergy sums m*v²/2 over ps.
func KineticEnergy(ps ...Particle) float64 {
	sum := 0.0
	for _, p := range ps {
		sum += p.KineticEnergy()
	}
	return sum
}

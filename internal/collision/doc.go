// Package collision solves one-dimensional elastic collisions between two
// particles in closed form.
//
// The package exposes a single pure operation and two summation helpers:
//
//   - [Solve]: post-collision velocities plus momentum and kinetic energy
//     before and after the impact
//   - [Momentum]: sum of m*v over particles
//   - [KineticEnergy]: sum of m*v²/2 over particles
//
// # Example
//
//	res, err := collision.Solve(
//		collision.Particle{Mass: 5, Velocity: 5},
//		collision.Particle{Mass: 5, Velocity: -3},
//	)
//	// res.Velocity1Final == -3, res.Velocity2Final == 5
//
// Both masses must be strictly positive; [Solve] returns [ErrInvalidInput]
// otherwise. Results are plain values and safe to share between goroutines.
package collision

package collision_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collide/internal/collision"
)

func tolerance(scale float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(scale))
}

var _ = Describe("Solve", func() {
	It("reproduces the reference example", func() {
		res, err := collision.Solve(
			collision.Particle{Mass: 5, Velocity: 5},
			collision.Particle{Mass: 5, Velocity: -3},
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Velocity1Final).To(Equal(-3.0))
		Expect(res.Velocity2Final).To(Equal(5.0))
		Expect(res.MomentumBefore).To(Equal(10.0))
		Expect(res.MomentumAfter).To(Equal(10.0))
		Expect(res.EnergyBefore).To(Equal(85.0))
		Expect(res.EnergyAfter).To(Equal(85.0))
	})

	DescribeTable("exchanges velocities for equal masses",
		func(m, v1, v2 float64) {
			res, err := collision.Solve(
				collision.Particle{Mass: m, Velocity: v1},
				collision.Particle{Mass: m, Velocity: v2},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Velocity1Final).To(Equal(v2))
			Expect(res.Velocity2Final).To(Equal(v1))
		},
		Entry("head on", 5.0, 5.0, -3.0),
		Entry("target at rest", 1.0, 2.5, 0.0),
		Entry("chase", 0.1, 7.0, 3.0),
		Entry("heavy", 1000.0, -1.25, 4.75),
	)

	DescribeTable("rejects invalid masses",
		func(m1, m2 float64) {
			_, err := collision.Solve(
				collision.Particle{Mass: m1, Velocity: 1},
				collision.Particle{Mass: m2, Velocity: -1},
			)
			Expect(err).To(MatchError(collision.ErrInvalidInput))
		},
		Entry("zero first", 0.0, 1.0),
		Entry("zero second", 1.0, 0.0),
		Entry("negative", -1.0, 1.0),
		Entry("opposite signs summing to zero", 2.0, -2.0),
		Entry("NaN", math.NaN(), 1.0),
		Entry("Inf", 1.0, math.Inf(1)),
	)

	It("rejects non-finite velocities", func() {
		_, err := collision.Solve(
			collision.Particle{Mass: 1, Velocity: math.Inf(-1)},
			collision.Particle{Mass: 1, Velocity: 0},
		)
		Expect(err).To(MatchError(collision.ErrInvalidInput))
	})

	It("conserves momentum and energy for random inputs", func() {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 1000; i++ {
			p1 := collision.Particle{Mass: 0.1 + rng.Float64()*100, Velocity: rng.Float64()*100 - 50}
			p2 := collision.Particle{Mass: 0.1 + rng.Float64()*100, Velocity: rng.Float64()*100 - 50}

			res, err := collision.Solve(p1, p2)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.MomentumAfter).To(BeNumerically("~", res.MomentumBefore, tolerance(res.MomentumBefore)))
			Expect(res.EnergyAfter).To(BeNumerically("~", res.EnergyBefore, tolerance(res.EnergyBefore)))
		}
	})

	It("bounces a light particle off a much heavier one", func() {
		res, err := collision.Solve(
			collision.Particle{Mass: 0.1, Velocity: 10},
			collision.Particle{Mass: 1e6, Velocity: 0},
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Velocity1Final).To(BeNumerically("~", -10, 1e-5))
		Expect(res.Velocity2Final).To(BeNumerically("~", 0, 1e-5))
	})

	It("is deterministic", func() {
		p1 := collision.Particle{Mass: 3.3, Velocity: 1.7}
		p2 := collision.Particle{Mass: 0.7, Velocity: -9.1}
		a, _ := collision.Solve(p1, p2)
		b, _ := collision.Solve(p1, p2)
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("Result.Final", func() {
	It("keeps masses and swaps in the final velocities", func() {
		p1 := collision.Particle{Mass: 2, Velocity: 3}
		p2 := collision.Particle{Mass: 6, Velocity: -1}
		res, err := collision.Solve(p1, p2)
		Expect(err).NotTo(HaveOccurred())

		f1, f2 := res.Final(p1, p2)
		Expect(f1.Mass).To(Equal(2.0))
		Expect(f2.Mass).To(Equal(6.0))
		Expect(collision.Momentum(f1, f2)).To(BeNumerically("~", res.MomentumAfter, 1e-12))
		Expect(collision.KineticEnergy(f1, f2)).To(BeNumerically("~", res.EnergyAfter, 1e-12))
	})
})

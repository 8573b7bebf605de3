package trajectory_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collide/internal/trajectory"
)

var _ = Describe("Animate", func() {
	DescribeTable("produces exactly the requested number of samples",
		func(samples int) {
			tr, err := trajectory.Animate(5, -3, samples)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr).To(HaveLen(samples))
			Expect(tr.Len()).To(Equal(samples))
		},
		Entry("minimum", 2),
		Entry("reference", trajectory.DefaultSamples),
		Entry("odd", 7),
		Entry("dense", 1001),
	)

	It("starts at the origin and the offset and ends at t=2", func() {
		tr, err := trajectory.Animate(5, -3, trajectory.DefaultSamples)
		Expect(err).NotTo(HaveOccurred())

		first, last := tr[0], tr[len(tr)-1]
		Expect(first.T).To(Equal(0.0))
		Expect(first.Position1).To(Equal(0.0))
		Expect(first.Position2).To(Equal(10.0))
		Expect(last.T).To(Equal(2.0))
		Expect(last.Position1).To(Equal(10.0))
		Expect(last.Position2).To(Equal(4.0))
	})

	It("spaces samples evenly", func() {
		tr, err := trajectory.Animate(1, 1, 30)
		Expect(err).NotTo(HaveOccurred())
		step := 2.0 / 29
		for i := 1; i < len(tr); i++ {
			Expect(tr[i].T - tr[i-1].T).To(BeNumerically("~", step, 1e-12))
		}
	})

	It("keeps positions affine in t", func() {
		v1, v2 := 3.7, -1.9
		tr, err := trajectory.Animate(v1, v2, 50)
		Expect(err).NotTo(HaveOccurred())
		for _, p := range tr {
			Expect(p.Position1).To(BeNumerically("~", v1*p.T, 1e-12))
			Expect(p.Position2).To(BeNumerically("~", 10+v2*p.T, 1e-12))
		}
	})

	It("is deterministic", func() {
		a, _ := trajectory.Animate(2.5, -0.5, 30)
		b, _ := trajectory.Animate(2.5, -0.5, 30)
		Expect(a).To(Equal(b))
	})

	DescribeTable("rejects too few samples",
		func(samples int) {
			_, err := trajectory.Animate(1, 1, samples)
			Expect(err).To(MatchError(trajectory.ErrSampleCount))
		},
		Entry("one", 1),
		Entry("zero", 0),
		Entry("negative", -3),
	)

	It("honours a custom spec", func() {
		spec := trajectory.Spec{Duration: 4, Offset: -2}
		tr, err := spec.Animate(1, 1, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(tr.Times()).To(Equal([]float64{0, 1, 2, 3, 4}))
		Expect(tr[0].Position2).To(Equal(-2.0))
	})

	DescribeTable("rejects invalid specs",
		func(spec trajectory.Spec) {
			_, err := spec.Animate(1, 1, 10)
			Expect(err).To(MatchError(trajectory.ErrInvalidSpec))
		},
		Entry("zero duration", trajectory.Spec{Duration: 0, Offset: 10}),
		Entry("negative duration", trajectory.Spec{Duration: -1, Offset: 10}),
		Entry("NaN duration", trajectory.Spec{Duration: math.NaN(), Offset: 10}),
		Entry("infinite offset", trajectory.Spec{Duration: 2, Offset: math.Inf(1)}),
	)
})

var _ = Describe("Trajectory helpers", func() {
	var tr trajectory.Trajectory

	BeforeEach(func() {
		var err error
		tr, err = trajectory.Animate(5, -3, 3)
		Expect(err).NotTo(HaveOccurred())
	})

	It("clamps frame indices", func() {
		Expect(tr.Frame(-1)).To(Equal(tr[0]))
		Expect(tr.Frame(99)).To(Equal(tr[2]))
		Expect(trajectory.Trajectory(nil).Frame(0)).To(Equal(trajectory.Point{}))
	})

	It("splits positions into two series", func() {
		x1, x2 := tr.Positions()
		Expect(x1).To(Equal([]float64{0, 5, 10}))
		Expect(x2).To(Equal([]float64{10, 7, 4}))
	})

	It("reports bounds across both particles", func() {
		lo, hi := tr.Bounds()
		Expect(lo).To(Equal(0.0))
		Expect(hi).To(Equal(10.0))
	})

	It("reports the gap closing", func() {
		Expect(tr.Gap()).To(Equal([]float64{10, 2, -6}))
	})
})

package amplify_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qpcrsim/internal/amplify"
)

var _ = Describe("Simulate", func() {
	Context("with a noise-free source", func() {
		It("doubles every cycle at full efficiency", func() {
			res, err := amplify.Simulate(amplify.Params{Cycles: 5, Efficiency: 1, Threshold: 10}, amplify.NoNoise{})
			Expect(err).NotTo(HaveOccurred())
			Expect([]float64(res.Curve)).To(Equal([]float64{2, 4, 8, 16, 32}))
			Expect(res.Ct).To(Equal(3))
		})

		It("never crosses a threshold above the curve maximum", func() {
			res, err := amplify.Simulate(amplify.Params{Cycles: 10, Efficiency: 0.9, Threshold: 1e9}, amplify.NoNoise{})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Curve.Max()).To(BeNumerically("<", 1e9))
			Expect(res.Reached()).To(BeFalse())
			Expect(res.Ct).To(Equal(amplify.NotReached))
		})
	})

	DescribeTable("curve length always equals the cycle count",
		func(cycles int, efficiency float64) {
			res, err := amplify.Simulate(amplify.Params{Cycles: cycles, Efficiency: efficiency, Threshold: 5}, amplify.NewSeededUniform(0.1, 1))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Curve).To(HaveLen(cycles))
		},
		Entry("single cycle", 1, 1.0),
		Entry("typical run", 40, 0.95),
		Entry("slow growth", 45, 0.1),
	)

	DescribeTable("rejects out-of-range parameters",
		func(p amplify.Params, want error) {
			res, err := amplify.Simulate(p, amplify.NoNoise{})
			Expect(err).To(MatchError(want))
			Expect(res).To(BeNil())
		},
		Entry("cycles = 0", amplify.Params{Cycles: 0, Efficiency: 0.9, Threshold: 1}, amplify.ErrInvalidCycles),
		Entry("efficiency = 0", amplify.Params{Cycles: 5, Efficiency: 0, Threshold: 1}, amplify.ErrInvalidEfficiency),
		Entry("efficiency > 1", amplify.Params{Cycles: 5, Efficiency: 1.5, Threshold: 1}, amplify.ErrInvalidEfficiency),
		Entry("threshold <= 0", amplify.Params{Cycles: 5, Efficiency: 0.9, Threshold: 0}, amplify.ErrInvalidThreshold),
	)

	It("keeps noisy readings within the noise band of the ideal curve", func() {
		p := amplify.Params{Cycles: 30, Efficiency: 0.95, Threshold: 100}
		res, err := amplify.Simulate(p, amplify.NewSeededUniform(0.1, 2024))
		Expect(err).NotTo(HaveOccurred())
		for i, v := range res.Curve {
			ideal := math.Pow(1+p.Efficiency, float64(i+1))
			Expect(v).To(BeNumerically("~", ideal, 0.1+1e-3))
		}
	})
})

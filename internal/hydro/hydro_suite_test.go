package hydro_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/hydro"
)

func TestHydroSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hydro Engine Suite")
}

var _ = Describe("the hydrostatics engine", func() {
	var p hull.Params

	BeforeEach(func() {
		p = hull.DefaultParams()
	})

	It("satisfies GM = KB + BM - KG across the design space", func() {
		for _, ht := range hull.HullTypes() {
			for _, et := range hull.EngineTypes() {
				p.HullType = ht
				p.EngineType = et
				r := hydro.Compute(p)
				Expect(r.GM).To(BeNumerically("~", r.KB+r.BM-r.KG, 1e-12))
			}
		}
	})

	It("always rights itself at zero heel", func() {
		for _, ht := range hull.HullTypes() {
			p.HullType = ht
			r := hydro.Compute(p)
			Expect(r.Righting[0].GZ).To(BeZero())
		}
	})

	It("keeps the displacement equal to the sum of its parts", func() {
		r := hydro.Compute(p)
		p.CargoWeight += 100
		Expect(hydro.Compute(p).Displacement).To(BeNumerically("~", r.Displacement+100, 1e-9))
	})

	It("starts the resistance curve at rest with zero resistance", func() {
		r := hydro.Compute(p)
		first := r.Resistance[0]
		Expect(first.SpeedKn).To(BeZero())
		Expect(first.Friction).To(BeZero())
		Expect(first.Wave).To(BeZero())
		Expect(first.Total).To(BeZero())
	})

	It("produces a monotonically increasing total resistance", func() {
		r := hydro.Compute(p)
		for i := 1; i < len(r.Resistance); i++ {
			Expect(r.Resistance[i].Total).To(BeNumerically(">", r.Resistance[i-1].Total))
		}
	})

	It("derives effective power from total resistance and speed", func() {
		r := hydro.Compute(p)
		last := r.Resistance[len(r.Resistance)-1]
		Expect(last.Power).To(BeNumerically("~", last.Total*last.SpeedKn*hull.KnotsToMS, 1e-9))
	})
})

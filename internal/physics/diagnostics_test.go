package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/physics"
	"github.com/san-kum/orrery/internal/solar"
	"gonum.org/v1/gonum/spatial/r2"
)

var _ = Describe("Diagnostics", func() {
	It("sums kinetic and potential energy", func() {
		s := sun()
		e := planet("Earth", r2.Vec{X: solar.AU}, 5.9742e24)
		e.Vel = r2.Vec{Y: 29783}

		ke := 0.5 * e.Mass * 29783 * 29783
		pe := -solar.G * s.Mass * e.Mass / solar.AU
		total := physics.Energy([]*solar.Body{s, e})

		Expect(total).To(BeNumerically("~", ke+pe, -(ke+pe)*1e-12))
	})

	It("ignores coincident pairs in the potential", func() {
		a := planet("A", r2.Vec{}, 1)
		b := planet("B", r2.Vec{}, 1)
		Expect(physics.Energy([]*solar.Body{a, b})).To(BeZero())
	})

	It("computes linear and angular momentum", func() {
		e := planet("Earth", r2.Vec{X: 2}, 3)
		e.Vel = r2.Vec{Y: 5}

		Expect(physics.Momentum([]*solar.Body{e})).To(Equal(r2.Vec{Y: 15}))
		Expect(physics.AngularMomentum([]*solar.Body{e})).To(Equal(30.0))
	})

	It("reports relative drift", func() {
		Expect(physics.RelativeDrift(-10, -9)).To(BeNumerically("~", 0.1, 1e-12))
		Expect(physics.RelativeDrift(0, 5)).To(BeZero())
	})
})

package integrators_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/integrators"
	"github.com/san-kum/orrery/internal/physics"
	"github.com/san-kum/orrery/internal/solar"
	"gonum.org/v1/gonum/spatial/r2"
)

const sunMass = 1.98892e30

func twoBody() (*solar.System, *solar.Body) {
	sun := solar.NewBody("Sun", r2.Vec{}, 40, solar.Yellow, sunMass).AsStar()
	earth := solar.NewBody("Earth", r2.Vec{X: solar.AU}, 3, solar.Blue, 5.9742e24)
	sys, err := solar.NewSystem(sun, earth)
	Expect(err).NotTo(HaveOccurred())
	return sys, earth
}

func newEuler(order integrators.UpdateOrder, policy physics.DistancePolicy) *integrators.Euler {
	return integrators.NewEuler(physics.NewAccumulator(physics.DefaultEpsilon, policy), order)
}

var _ = Describe("Euler", func() {
	It("uses a one-day step", func() {
		Expect(newEuler(integrators.Simultaneous, physics.PolicySkip).Dt).To(Equal(86400.0))
	})

	It("matches the closed-form single step from rest at 1 AU", func() {
		sys, earth := twoBody()

		Expect(newEuler(integrators.Simultaneous, physics.PolicyAbort).Step(sys)).To(Succeed())

		expected := solar.G * sunMass / (solar.AU * solar.AU) * solar.Timestep
		Expect(r2.Norm(earth.Vel)).To(BeNumerically("~", expected, expected*1e-12))
		Expect(r2.Norm(earth.Vel)).To(BeNumerically("~", 512.48, 0.01))
		Expect(earth.Vel.X).To(BeNumerically("<", 0))

		Expect(earth.Pos.X).To(Equal(solar.AU + earth.Vel.X*solar.Timestep))
		Expect(earth.Trail).To(Equal([]r2.Vec{earth.Pos}))
		Expect(earth.DistanceToStar).To(Equal(solar.AU))
	})

	It("grows each trail by one point per tick", func() {
		sys := solar.SolarSystem()
		euler := newEuler(integrators.Simultaneous, physics.PolicyAbort)

		const n = 25
		for i := 0; i < n; i++ {
			Expect(euler.Step(sys)).To(Succeed())
		}

		Expect(sys.Tick()).To(Equal(n))
		for _, b := range sys.Bodies() {
			Expect(b.Trail).To(HaveLen(n), b.Name)
			Expect(b.Trail[n-1]).To(Equal(b.Pos), b.Name)
		}
	})

	It("keeps the earth near 1 AU over a year", func() {
		sys := solar.SolarSystem()
		earth, _ := sys.Lookup("Earth")
		euler := newEuler(integrators.Simultaneous, physics.PolicyAbort)

		for i := 0; i < 365; i++ {
			Expect(euler.Step(sys)).To(Succeed())
		}

		Expect(earth.DistanceToStar).To(BeNumerically("~", solar.AU, 0.1*solar.AU))
	})

	Describe("update order", func() {
		It("conserves momentum exactly in one simultaneous tick", func() {
			sys, _ := twoBody()
			Expect(newEuler(integrators.Simultaneous, physics.PolicyAbort).Step(sys)).To(Succeed())

			p := physics.Momentum(sys.Bodies())
			scale := 5.9742e24 * 512.0
			Expect(p.X).To(BeNumerically("~", 0, scale*1e-12))
			Expect(p.Y).To(BeNumerically("~", 0, scale*1e-12))
		})

		It("lets later bodies see moved earlier bodies when sequential", func() {
			simul, _ := twoBody()
			seq, _ := twoBody()
			seq.At(0).Vel = r2.Vec{Y: 1e4}
			simul.At(0).Vel = r2.Vec{Y: 1e4}

			Expect(newEuler(integrators.Simultaneous, physics.PolicyAbort).Step(simul)).To(Succeed())
			Expect(newEuler(integrators.Sequential, physics.PolicyAbort).Step(seq)).To(Succeed())

			Expect(seq.At(0).Pos).To(Equal(simul.At(0).Pos))
			Expect(seq.At(1).Vel).NotTo(Equal(simul.At(1).Vel))
			Expect(seq.At(1).DistanceToStar).To(BeNumerically(">", simul.At(1).DistanceToStar))
		})
	})

	Describe("degenerate distance", func() {
		var sys *solar.System

		BeforeEach(func() {
			sun := solar.NewBody("Sun", r2.Vec{}, 40, solar.Yellow, sunMass).AsStar()
			ghost := solar.NewBody("Ghost", r2.Vec{}, 1, solar.White, 1e20)
			var err error
			sys, err = solar.NewSystem(sun, ghost)
			Expect(err).NotTo(HaveOccurred())
		})

		It("leaves the system untouched on abort", func() {
			err := newEuler(integrators.Simultaneous, physics.PolicyAbort).Step(sys)
			Expect(err).To(MatchError(physics.ErrDegenerateDistance))
			Expect(sys.Tick()).To(BeZero())
			for _, b := range sys.Bodies() {
				Expect(b.Trail).To(BeEmpty())
				Expect(b.Pos).To(Equal(r2.Vec{}))
			}
		})

		It("leaves distances to the star untouched on abort", func() {
			full := solar.SolarSystem()
			mercury, _ := full.Lookup("Mercury")
			venus, _ := full.Lookup("Venus")
			venus.Pos = mercury.Pos

			err := newEuler(integrators.Simultaneous, physics.PolicyAbort).Step(full)
			Expect(err).To(MatchError(physics.ErrDegenerateDistance))
			for _, b := range full.Bodies() {
				Expect(b.DistanceToStar).To(BeZero(), b.Name)
				Expect(b.Trail).To(BeEmpty(), b.Name)
			}
		})

		It("keeps integrating when the pair is skipped", func() {
			Expect(newEuler(integrators.Simultaneous, physics.PolicySkip).Step(sys)).To(Succeed())
			Expect(sys.Tick()).To(Equal(1))
			Expect(sys.At(1).Vel).To(Equal(r2.Vec{}))
		})
	})
})

var _ = DescribeTable("ParseUpdateOrder",
	func(name string, want integrators.UpdateOrder, ok bool) {
		got, err := integrators.ParseUpdateOrder(name)
		if !ok {
			Expect(err).To(MatchError(integrators.ErrUnknownOrder))
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
	},
	Entry("default", "", integrators.Simultaneous, true),
	Entry("simultaneous", "simultaneous", integrators.Simultaneous, true),
	Entry("sequential", "sequential", integrators.Sequential, true),
	Entry("unknown", "leapfrog", integrators.Simultaneous, false),
)

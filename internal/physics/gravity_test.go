package physics_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/physics"
	"github.com/san-kum/orrery/internal/solar"
	"gonum.org/v1/gonum/spatial/r2"
)

func sun() *solar.Body {
	return solar.NewBody("Sun", r2.Vec{}, 40, solar.Yellow, 1.98892e30).AsStar()
}

func planet(name string, pos r2.Vec, mass float64) *solar.Body {
	return solar.NewBody(name, pos, 3, solar.Blue, mass)
}

var _ = Describe("Accumulator", func() {
	var acc *physics.Accumulator

	BeforeEach(func() {
		acc = physics.NewAccumulator(physics.DefaultEpsilon, physics.PolicyAbort)
	})

	It("follows the inverse-square law for every pair", func() {
		bodies := []*solar.Body{
			sun(),
			planet("A", r2.Vec{X: 3e10, Y: -4e10}, 5e24),
			planet("B", r2.Vec{X: -2e11, Y: 7e10}, 2e27),
		}

		for i := range bodies {
			for j := range bodies {
				if i == j {
					continue
				}
				f, d := physics.Attraction(bodies[i], bodies[j])
				expected := solar.G * bodies[i].Mass * bodies[j].Mass / (d * d)
				Expect(r2.Norm(f)).To(BeNumerically("~", expected, expected*1e-12))
			}
		}
	})

	It("points the force from the body toward the other", func() {
		bodies := []*solar.Body{sun(), planet("Earth", r2.Vec{X: solar.AU}, 5.9742e24)}

		f, err := acc.NetForce(bodies, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.X).To(BeNumerically("<", 0))
		Expect(math.Abs(f.Y)).To(BeNumerically("<", math.Abs(f.X)*1e-12))
	})

	It("obeys Newton's third law", func() {
		bodies := []*solar.Body{
			sun(),
			planet("Mars", r2.Vec{X: -1.524 * solar.AU, Y: 0.3 * solar.AU}, 6.39e23),
		}

		fs, err := acc.Forces(bodies)
		Expect(err).NotTo(HaveOccurred())

		mag := r2.Norm(fs[0])
		Expect(mag).To(BeNumerically(">", 0))
		Expect(fs[0].X).To(BeNumerically("~", -fs[1].X, mag*1e-12))
		Expect(fs[0].Y).To(BeNumerically("~", -fs[1].Y, mag*1e-12))
	})

	It("gives an isolated body exactly zero force", func() {
		bodies := []*solar.Body{sun()}

		f, err := acc.NetForce(bodies, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(r2.Vec{}))
	})

	Describe("distance to the reference star", func() {
		It("is recorded against the star only", func() {
			s := sun()
			s.Pos = r2.Vec{X: 1e9}
			earth := planet("Earth", r2.Vec{X: solar.AU}, 5.9742e24)
			jupiter := planet("Jupiter", r2.Vec{X: -5.203 * solar.AU}, 1.898e27)
			bodies := []*solar.Body{earth, s, jupiter}

			_, err := acc.NetForce(bodies, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(earth.DistanceToStar).To(Equal(solar.AU - 1e9))
		})

		It("is left alone when only non-star bodies interact", func() {
			a := planet("A", r2.Vec{}, 1e24)
			b := planet("B", r2.Vec{X: 1e10}, 1e24)
			a.DistanceToStar = 42

			_, err := acc.NetForce([]*solar.Body{a, b}, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.DistanceToStar).To(Equal(42.0))
		})

		It("stays zero on the star itself", func() {
			bodies := []*solar.Body{sun(), planet("Earth", r2.Vec{X: solar.AU}, 5.9742e24)}

			_, err := acc.NetForce(bodies, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(bodies[0].DistanceToStar).To(BeZero())
		})
	})

	Describe("degenerate pairs", func() {
		var bodies []*solar.Body

		BeforeEach(func() {
			bodies = []*solar.Body{
				sun(),
				planet("Ghost", r2.Vec{}, 1e24),
				planet("Earth", r2.Vec{X: solar.AU}, 5.9742e24),
			}
		})

		It("aborts with a typed error", func() {
			_, err := acc.NetForce(bodies, 1)
			Expect(err).To(MatchError(physics.ErrDegenerateDistance))

			var derr *physics.DegenerateDistanceError
			Expect(errors.As(err, &derr)).To(BeTrue())
			Expect(derr.I).To(Equal(1))
			Expect(derr.J).To(Equal(0))
			Expect(derr.Distance).To(BeZero())
		})

		It("still records the star distance before aborting", func() {
			bodies[1].DistanceToStar = 99
			_, _ = acc.NetForce(bodies, 1)
			Expect(bodies[1].DistanceToStar).To(BeZero())
		})

		It("records no star distance when the whole pass aborts", func() {
			earth, star, ghost := bodies[2], bodies[0], bodies[1]
			earth.DistanceToStar = 7
			_, err := acc.Forces([]*solar.Body{earth, star, ghost})
			Expect(err).To(MatchError(physics.ErrDegenerateDistance))
			Expect(earth.DistanceToStar).To(Equal(7.0))
		})

		It("skips the pair and reports it", func() {
			var reported []*physics.DegenerateDistanceError
			acc.Policy = physics.PolicySkip
			acc.OnDegenerate = func(err *physics.DegenerateDistanceError) {
				reported = append(reported, err)
			}

			f, err := acc.NetForce(bodies, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(reported).To(HaveLen(1))

			onlyEarth, _ := physics.Attraction(bodies[1], bodies[2])
			Expect(f).To(Equal(onlyEarth))
		})

		It("clamps the distance to epsilon", func() {
			acc.Policy = physics.PolicyClamp
			acc.Epsilon = 1e6

			f, err := acc.NetForce([]*solar.Body{bodies[0], bodies[1]}, 1)
			Expect(err).NotTo(HaveOccurred())

			expected := solar.G * bodies[0].Mass * bodies[1].Mass / (1e6 * 1e6)
			Expect(r2.Norm(f)).To(BeNumerically("~", expected, expected*1e-12))
		})
	})
})

var _ = Describe("ParsePolicy", func() {
	DescribeTable("known names",
		func(name string, want physics.DistancePolicy) {
			p, err := physics.ParsePolicy(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(want))
			if name != "" {
				Expect(p.String()).To(Equal(name))
			}
		},
		Entry("default", "", physics.PolicySkip),
		Entry("skip", "skip", physics.PolicySkip),
		Entry("clamp", "clamp", physics.PolicyClamp),
		Entry("abort", "abort", physics.PolicyAbort),
	)

	It("rejects unknown names", func() {
		_, err := physics.ParsePolicy("bounce")
		Expect(err).To(MatchError(physics.ErrUnknownPolicy))
	})
})

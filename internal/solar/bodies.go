package solar

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Display colors of the default body set.
var (
	White    = color.RGBA{255, 255, 255, 255}
	Yellow   = color.RGBA{255, 255, 0, 255}
	Blue     = color.RGBA{100, 149, 237, 255}
	Red      = color.RGBA{188, 39, 50, 255}
	DarkGrey = color.RGBA{80, 78, 81, 255}
	Brown    = color.RGBA{131, 87, 60, 255}
	DarkBlue = color.RGBA{2, 28, 61, 255}
	Gold     = color.RGBA{241, 192, 46, 255}
)

// SolarSystem returns the Sun and the eight planets at their starting
// positions on the x axis, each with a tangential starting velocity.
func SolarSystem() *System {
	bodies := []*Body{
		NewBody("Sun", r2.Vec{}, 40, Yellow, 1.98892e30).AsStar(),
		NewBody("Mercury", r2.Vec{X: 0.387 * AU}, 1, DarkGrey, 3.30e23).WithVelocity(r2.Vec{Y: -47.4 * 1000}),
		NewBody("Venus", r2.Vec{X: 0.723 * AU}, 2, White, 4.8685e24).WithVelocity(r2.Vec{Y: -35.02 * 1000}),
		NewBody("Earth", r2.Vec{X: -1 * AU}, 3, Blue, 5.9742e24).WithVelocity(r2.Vec{Y: 29.783 * 1000}),
		NewBody("Mars", r2.Vec{X: -1.524 * AU}, 1.5, Red, 6.39e23).WithVelocity(r2.Vec{Y: 24.077 * 1000}),
		NewBody("Jupiter", r2.Vec{X: -5.203 * AU}, 7, Brown, 1.898e27).WithVelocity(r2.Vec{Y: -13.06 * 1000}),
		NewBody("Saturn", r2.Vec{X: -9.582 * AU}, 5.5, Gold, 5.683e26).WithVelocity(r2.Vec{Y: -9.68 * 1000}),
		NewBody("Uranus", r2.Vec{X: -19.22 * AU}, 4.5, DarkBlue, 8.681e25).WithVelocity(r2.Vec{Y: -6.81 * 1000}),
		NewBody("Neptune", r2.Vec{X: -30.05 * AU}, 4, Blue, 1.024e26).WithVelocity(r2.Vec{Y: -5.43 * 1000}),
	}

	sys, err := NewSystem(bodies...)
	if err != nil {
		panic(err)
	}
	return sys
}

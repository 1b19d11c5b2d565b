// Package solar holds the body registry of the orbit simulation.
//
// The registry is an ordered set of celestial bodies:
//
//   - [Body]: physical constants plus mutable kinematic state and trail
//   - [System]: the ordered registry, with exactly one reference star
//   - [SolarSystem]: the fixed Sun + eight planets set
//
// Positions are meters, velocities meters/second, both as [r2.Vec].
// The package knows nothing about pixels or fonts; [Scale] is exported
// only so renderers share the same meters-to-pixels factor.
//
// # Example
//
//	sys := solar.SolarSystem()
//	earth, _ := sys.Lookup("Earth")
//	fmt.Println(earth.DistanceToStar)
package solar

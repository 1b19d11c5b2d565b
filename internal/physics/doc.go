// Package physics computes Newtonian gravity between registry bodies.
//
// The [Accumulator] sums, for one body, the force exerted by every other
// body in the registry:
//
//	F = G * m1 * m2 / d²,  θ = atan2(dy, dx),  (F cosθ, F sinθ)
//
// Pairs closer than the accumulator epsilon are degenerate. What happens
// to them is chosen by a [DistancePolicy]: drop the pair, clamp the
// distance to epsilon, or abort with a [DegenerateDistanceError].
//
// [Energy], [Momentum] and [AngularMomentum] are read-only diagnostics.
package physics

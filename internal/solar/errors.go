package solar

import "errors"

// Registry construction errors.
var (
	// ErrNoReferenceStar indicates a body set without a reference star.
	ErrNoReferenceStar = errors.New("solar: no body marked as reference star")

	// ErrMultipleReferenceStars indicates more than one reference star.
	ErrMultipleReferenceStars = errors.New("solar: more than one body marked as reference star")

	// ErrNonPositiveMass indicates a body whose mass is zero or negative.
	ErrNonPositiveMass = errors.New("solar: body mass must be positive")

	// ErrEmptyRegistry indicates a registry without bodies.
	ErrEmptyRegistry = errors.New("solar: registry has no bodies")

	// ErrUnknownBody indicates a lookup for a name not in the registry.
	ErrUnknownBody = errors.New("solar: unknown body")
)

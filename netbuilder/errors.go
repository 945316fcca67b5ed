package netbuilder

import "errors"

// Sentinel errors for netbuilder constructors' fail-fast-on-invalid-
// parameters contract.
var (
	// ErrTooFewSections indicates n < 1 was passed to Ladder.
	ErrTooFewSections = errors.New("netbuilder: n must be >= 1")

	// ErrTooFewVertices indicates n < 2 was passed to RandomMesh.
	ErrTooFewVertices = errors.New("netbuilder: n must be >= 2")

	// ErrInvalidProbability indicates p was outside [0,1] in RandomMesh.
	ErrInvalidProbability = errors.New("netbuilder: p must be in [0,1]")
)

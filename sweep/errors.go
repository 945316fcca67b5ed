package sweep

import "errors"

// Sentinel errors for sweep specification validation (§4.7). These are
// fatal to the whole sweep: raised by Expand before any point is
// evaluated, never attached to a per-point record.
var (
	// ErrNoFrequencyEntry indicates the sweep declared no entry named "f".
	ErrNoFrequencyEntry = errors.New("sweep: spec has no frequency entry")

	// ErrMultipleFrequencyEntries indicates more than one entry named "f".
	ErrMultipleFrequencyEntries = errors.New("sweep: spec has more than one frequency entry")

	// ErrInvalidScale indicates a frequency entry's Scale was neither
	// "linear" nor "log".
	ErrInvalidScale = errors.New("sweep: frequency scale must be \"linear\" or \"log\"")

	// ErrInvalidPoints indicates a frequency entry's Points was < 1.
	ErrInvalidPoints = errors.New("sweep: frequency points must be >= 1")

	// ErrInvalidRange indicates a log-scale frequency entry's range
	// included a non-positive endpoint.
	ErrInvalidRange = errors.New("sweep: log-scale frequency range must be strictly positive")

	// ErrEmptyValues indicates a non-frequency entry declared zero values.
	ErrEmptyValues = errors.New("sweep: parameter entry has no values")
)

package core

import "errors"

// Sentinel errors for the core data model (§7 error kinds).
var (
	// ErrDuplicateComponentID indicates two components share an ID.
	ErrDuplicateComponentID = errors.New("core: duplicate component ID")

	// ErrFloatingPort indicates a component port has no connection recorded.
	ErrFloatingPort = errors.New("core: floating port")

	// ErrUndeclaredExternalNet indicates an external port names a net that
	// no connection ever references.
	ErrUndeclaredExternalNet = errors.New("core: external port net is undeclared")

	// ErrDisconnectedGraph indicates the netlist contains a net unreachable
	// from the ground/external reference set.
	ErrDisconnectedGraph = errors.New("core: disconnected graph")

	// ErrComponentEvaluation wraps a failure raised by a Component's
	// Ymatrix, or a non-finite entry in its result.
	ErrComponentEvaluation = errors.New("core: component evaluation failed")

	// ErrMapping indicates a subcircuit's declared external interface
	// names an inner net that does not exist.
	ErrMapping = errors.New("core: subcircuit interface mapping failed")

	// ErrNumeric indicates a sparse factorization failed with no
	// pseudoinverse fallback left to try.
	ErrNumeric = errors.New("core: sparse factorization failed with no pseudoinverse fallback")
)

// TopologyError is fatal to the whole build: it is raised by validation
// before any sweep point is evaluated (§7).
type TopologyError struct {
	Err    error
	Detail string
}

func (e *TopologyError) Error() string {
	if e.Detail == "" {
		return "core: topology: " + e.Err.Error()
	}
	return "core: topology: " + e.Err.Error() + ": " + e.Detail
}

func (e *TopologyError) Unwrap() error { return e.Err }

// ComponentEvaluationError is fatal to a single evaluation point: the
// sweep driver records it against the sample and continues (§4.5, §7).
type ComponentEvaluationError struct {
	ComponentID string
	Err         error
}

func (e *ComponentEvaluationError) Error() string {
	return "core: component " + e.ComponentID + ": " + e.Err.Error()
}

func (e *ComponentEvaluationError) Unwrap() error { return e.Err }

// MappingError surfaces as a ComponentEvaluationError to the outer
// assembler when a subcircuit's interface cannot be resolved (§7).
type MappingError struct {
	SubcircuitID string
	NetName      string
}

func (e *MappingError) Error() string {
	return "core: subcircuit " + e.SubcircuitID + ": interface net " + e.NetName + " does not exist"
}

func (e *MappingError) Unwrap() error { return ErrMapping }

// NumericError reports a failed factorization or solve. cache raises it
// when the direct LU factorization of the internal block fails (Detail
// carries the sparsity fingerprint); convert raises it when its
// regularized solve has run out of fallbacks (Detail is a fixed message).
type NumericError struct {
	Err    error
	Detail string
}

func (e *NumericError) Error() string {
	if e.Detail == "" {
		return "core: numeric: " + e.Err.Error()
	}
	return "core: numeric: " + e.Detail + ": " + e.Err.Error()
}

func (e *NumericError) Unwrap() error { return e.Err }

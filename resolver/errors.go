package resolver

import "errors"

// ErrParseFailed indicates an expression failed to parse.
var ErrParseFailed = errors.New("resolver: expression parse failed")

// ErrUndefinedIdentifier indicates an expression referenced a name that
// is neither a whitelisted function/constant nor a key of the input map.
var ErrUndefinedIdentifier = errors.New("resolver: undefined identifier")

// ErrDependencyCycle indicates the parameter dependency graph has a cycle.
var ErrDependencyCycle = errors.New("resolver: dependency cycle")

// ErrNonFinite indicates a numeric evaluation produced NaN or ±Inf.
var ErrNonFinite = errors.New("resolver: non-finite result")

// ErrEvalFailed wraps a runtime evaluation error from the expression engine.
var ErrEvalFailed = errors.New("resolver: evaluation failed")

// ParameterError is the single error kind §7 assigns to the resolver: it
// carries the offending parameter name alongside the underlying sentinel.
type ParameterError struct {
	Name string
	Err  error
}

func (e *ParameterError) Error() string {
	return "resolver: parameter " + e.Name + ": " + e.Err.Error()
}

func (e *ParameterError) Unwrap() error { return e.Err }

package component

import "errors"

// ErrMissingParam indicates a component's context lacks a required
// resolved parameter at Ymatrix time.
var ErrMissingParam = errors.New("component: missing resolved parameter")

// File: whitelist.go
// Role: the fixed set of pure-math operators, functions and constants an
// expression may reference (§4.1 "Security"). Anything else — host
// runtime, I/O, arbitrary Go identifiers — is simply never placed in the
// evaluation environment, so referencing it fails as an undefined
// identifier rather than silently resolving to zero.
package resolver

import "math"

// mathEnv returns the whitelist of constants and unary functions
// available to every expression, independent of the parameter map.
func mathEnv() map[string]interface{} {
	unary := func(f func(float64) float64) interface{} {
		return func(x float64) float64 { return f(x) }
	}
	return map[string]interface{}{
		"pi": math.Pi,
		"e":  math.E,

		"sin":  unary(math.Sin),
		"cos":  unary(math.Cos),
		"tan":  unary(math.Tan),
		"asin": unary(math.Asin),
		"acos": unary(math.Acos),
		"atan": unary(math.Atan),
		"exp":  unary(math.Exp),
		"log":  unary(math.Log),
		"sqrt": unary(math.Sqrt),
		"abs":  unary(math.Abs),
	}
}

// File: common.go
// Role: small shared helpers for the S-matrix-native components
// (TransmissionLine, DirectionalCoupler, WilkinsonDivider).
package component

import "github.com/Gjild/rfsim/numeric"

func lookupOrDefault(ctx *numeric.Context, name string, def float64) float64 {
	if v, ok := ctx.Lookup(name); ok {
		return v
	}
	return def
}

// qualify prefixes a component-local parameter's short name with the
// component's ID so that every component's locals land in distinct
// slots of the single flat merged scope §4.7 resolves into one
// NumericContext per evaluation point. Without this, two resistors both
// exposing a bare "R" local would silently collide under the "later
// bindings override earlier ones" merge rule (§4.7, §9's Open Question
// on merge order).
func qualify(id, name string) string { return id + "." + name }

func uniformZ0(z0 complex128, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = z0
	}
	return out
}

// Package convert implements Y/S/Z parameter conversions with
// possibly-nonuniform, possibly-complex per-port reference impedances
// (SPEC_FULL.md §4.9). Every inversion is performed as a linear solve
// via csparse.Factorize/Solve rather than an explicit matrix inverse.
package convert

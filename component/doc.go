// Package component implements the built-in core.Component catalog:
// Resistor, Capacitor, Inductor (single-impedance two-ports),
// TransmissionLine, DirectionalCoupler, WilkinsonDivider (S-matrix-native
// elements converted through package convert), and Subcircuit.
//
// Every constructor returns a tagged variant — not a runtime class
// registry — per §9's "dynamic type-tagged components... replace with a
// tagged-union of built-in component variants" redesign note. Each
// variant's Ymatrix reads its already-resolved parameters straight out
// of the numeric.Context passed in; the resolver itself runs upstream,
// in the sweep driver, against the merged global/local/override scope.
package component

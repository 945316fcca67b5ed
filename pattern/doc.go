// Package pattern implements the Stamp Pattern Compiler (§4.3): it walks
// a core.CircuitModel and a netgraph.Graph exactly once and emits the
// flat COO template (rows, cols, per-component slices) that the
// assembler later fills with numeric data on every sweep point.
//
// A StampPattern is a strict function of topology: no parameter values
// are read and no Component.Ymatrix is invoked while compiling it.
package pattern

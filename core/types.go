// File: types.go
// Role: the central data model — Net, Port, the Component contract,
// ExternalPortSpec, and CircuitModel (§3). CircuitModel is built once by
// an external netlist parser and owns components and specs outright;
// ports hold net names rather than pointers, following §9's "cyclic
// references... replace with integer/string indices into arenas"
// redesign note (net_index assignment itself is netgraph's job, §4.2).
package core

import (
	"strings"

	"github.com/Gjild/rfsim/csparse"
	"github.com/Gjild/rfsim/numeric"
)

// IsGround reports whether net is the reference net, matched
// case-insensitively against "gnd" (§3).
func IsGround(net string) bool {
	return strings.EqualFold(net, "gnd")
}

// Port is a named terminal of a Component, bound at netlist-build time
// to exactly one Net.
type Port struct {
	Name string
	Net  string
}

// Connection is one (component, port, net) record as recorded by the
// netlist builder (§4.2, §6).
type Connection struct {
	ComponentID string
	PortName    string
	NetName     string
}

// Component is the contract every circuit element implements (§3, §4.5).
// Ymatrix must be idempotent: identical (freq, resolved params) inputs
// produce numerically identical results.
type Component interface {
	// ID uniquely identifies this component within a CircuitModel.
	ID() string

	// Ports returns the ordered port list; its length is the dimension
	// of the matrix Ymatrix returns.
	Ports() []Port

	// Params returns this component's local parameter expressions,
	// merged over the global scope before resolution.
	Params() map[string]string

	// Ymatrix returns the n×n dense complex admittance submatrix at the
	// given context, n = len(Ports()). ctx's parameters already include merged
	// globals, locals, and sweep overrides.
	Ymatrix(ctx *numeric.Context) (*csparse.Dense, error)
}

// ImpedanceModel returns a complex port reference impedance as a
// function of frequency and resolved parameters (§3, external port
// spec's "reference-impedance model").
type ImpedanceModel interface {
	Impedance(ctx *numeric.Context) (complex128, error)
}

// ConstantImpedance is an ImpedanceModel fixed to a single complex value.
type ConstantImpedance complex128

// Impedance implements ImpedanceModel.
func (c ConstantImpedance) Impedance(*numeric.Context) (complex128, error) {
	return complex128(c), nil
}

// ExpressionImpedance evaluates a real-valued expression per point via
// the resolver and returns it as a real reference impedance. Expr is
// resolved through the same parameter-resolution path as component
// locals; Resolve is injected so this package does not import resolver
// directly (core sits below resolver in the dependency graph).
type ExpressionImpedance struct {
	Expr    string
	Resolve func(expr string, params map[string]float64) (float64, error)
}

// Impedance implements ImpedanceModel.
func (e ExpressionImpedance) Impedance(ctx *numeric.Context) (complex128, error) {
	params := make(map[string]float64, len(ctx.Params()))
	for _, p := range ctx.Params() {
		params[p.Name] = p.Value
	}
	v, err := e.Resolve(e.Expr, params)
	if err != nil {
		return 0, err
	}
	return complex(v, 0), nil
}

// FuncImpedance is a frequency-and-parameter-dependent reference
// impedance supplied directly as a Go function, for callers that do not
// need expression-level indirection.
type FuncImpedance func(ctx *numeric.Context) (complex128, error)

// Impedance implements ImpedanceModel.
func (f FuncImpedance) Impedance(ctx *numeric.Context) (complex128, error) {
	return f(ctx)
}

// ExternalPortSpec names a circuit terminal exposed to the outside world
// (§3, §6).
type ExternalPortSpec struct {
	Name      string
	NetName   string
	Impedance ImpedanceModel
}

// CircuitModel owns every component, external-port spec, connection, and
// global parameter binding. It is built once by the netlist parser and
// never mutated by the core afterward (§3).
type CircuitModel struct {
	Components       []Component
	ExternalPorts    []ExternalPortSpec
	GlobalParameters map[string]string
	Connections      []Connection
}

// ExternalPortNames returns the external port names in declared order.
func (m *CircuitModel) ExternalPortNames() []string {
	names := make([]string, len(m.ExternalPorts))
	for i, p := range m.ExternalPorts {
		names[i] = p.Name
	}
	return names
}

// ComponentByID returns the component with the given ID, or nil.
func (m *CircuitModel) ComponentByID(id string) Component {
	for _, c := range m.Components {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

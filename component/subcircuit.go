// File: subcircuit.go
// Role: Subcircuit, grounded on
// original_source/core/components/subcircuit.py: a component that owns
// a nested core.CircuitModel outright (§9's "subcircuits own their
// inner CircuitModel outright" redesign note), compiles its
// assemble.StaticPackage once at construction, and on every Ymatrix call
// reduces the inner circuit to its declared external interface via the
// same §4.6 algorithm the outer assembler uses — reused directly through
// assemble.ReduceToExternalY rather than duplicated.
package component

import (
	"fmt"
	"strconv"

	"github.com/Gjild/rfsim/assemble"
	"github.com/Gjild/rfsim/cache"
	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/csparse"
	"github.com/Gjild/rfsim/numeric"
	"github.com/Gjild/rfsim/resolver"
)

// Subcircuit is a hierarchical component wrapping a nested CircuitModel.
// Ports are the interface names declared on the inner model's external
// ports, in their declared order; outerPorts binds each of those names
// to an outer net.
type Subcircuit struct {
	id         string
	outerPorts []core.Port
	inner      *core.CircuitModel
	static     *assemble.StaticPackage
	cache      *cache.Cache // one factorization cache per Subcircuit, shared by every goroutine that evaluates it (access serialized by the cache's mutex)
}

// NewSubcircuit builds a Subcircuit from an already-loaded inner model
// and the outer nets each of its external ports attaches to, in the same
// order as inner.ExternalPorts. Loading/parsing the nested netlist file
// itself remains an external collaborator (§1); inner must already be a
// validated core.CircuitModel.
func NewSubcircuit(id string, inner *core.CircuitModel, outerNets []string) (*Subcircuit, error) {
	if len(outerNets) != len(inner.ExternalPorts) {
		return nil, &core.MappingError{SubcircuitID: id, NetName: fmt.Sprintf("%d outer nets for %d interface ports", len(outerNets), len(inner.ExternalPorts))}
	}
	static, err := assemble.Build(inner)
	if err != nil {
		return nil, fmt.Errorf("component %s: compiling inner topology: %w", id, err)
	}

	ports := make([]core.Port, len(inner.ExternalPorts))
	for i, ep := range inner.ExternalPorts {
		ports[i] = core.Port{Name: ep.Name, Net: outerNets[i]}
	}

	return &Subcircuit{
		id:         id,
		outerPorts: ports,
		inner:      inner,
		static:     static,
		cache:      cache.New(),
	}, nil
}

func (s *Subcircuit) ID() string { return s.id }

func (s *Subcircuit) Ports() []core.Port { return s.outerPorts }

// Params returns the inner model's global parameters, qualified by this
// Subcircuit's own ID via qualify (common.go), the same namespacing
// every other built-in applies to its locals. Without it, two instances
// wrapping the same inner template would expose identical unqualified
// keys and silently collide under sweep's flat parameter merge.
func (s *Subcircuit) Params() map[string]string {
	out := make(map[string]string, len(s.inner.GlobalParameters))
	for name, value := range s.inner.GlobalParameters {
		out[qualify(s.id, name)] = value
	}
	return out
}

// Ymatrix resolves the inner model's own parameter scope independently
// of the caller's ctx and reduces it to the external-port Y matrix.
// Resolution is self-contained (globals ⊕ every inner component's
// locals, mirroring sweep.mergeParameters) rather than reusing ctx
// directly, because ctx's qualified keys (this Subcircuit's own ID
// prefix) are meaningless to the inner model's components, which
// address their own locals by their own unqualified or self-qualified
// keys. The one thing pulled from ctx is this instance's resolved
// binding for each inner global Params() exposed, looked up by its
// qualified key, letting sibling instances of the same inner template
// resolve to distinct values.
func (s *Subcircuit) Ymatrix(ctx *numeric.Context) (*csparse.Dense, error) {
	innerRaw := make(map[string]string, len(s.inner.GlobalParameters))
	for name, src := range s.inner.GlobalParameters {
		innerRaw[name] = src
		if v, ok := ctx.Lookup(qualify(s.id, name)); ok {
			innerRaw[name] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	for _, comp := range s.inner.Components {
		for name, src := range comp.Params() {
			innerRaw[name] = src
		}
	}

	resolved, err := resolver.Resolve(innerRaw)
	if err != nil {
		return nil, &core.ComponentEvaluationError{ComponentID: s.id, Err: err}
	}
	innerCtx := numeric.New(ctx.Freq(), resolved)

	y, err := assemble.ReduceToExternalY(s.static, s.inner, innerCtx, s.cache)
	if err != nil {
		return nil, &core.ComponentEvaluationError{ComponentID: s.id, Err: err}
	}
	return y, nil
}

var _ core.Component = (*Subcircuit)(nil)

// File: resolver.go
// Role: Resolve — the §4.1 entry point. Classifies each binding as a
// plain/unit literal or a symbolic expression, builds the dependency
// graph over symbolic entries, topologically sorts it (Kahn's
// algorithm), and evaluates in that order so every expression only ever
// references already-resolved values.
package resolver

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// programCache memoizes compiled expressions by source text. It is the
// "expression lambda cache" of §9's design notes: trivially rebuildable
// and kept per-process as one package-level sync.Map shared by every
// goroutine, so concurrent sweep workers reuse each other's programs.
var programCache sync.Map // string -> *vm.Program

func compile(src string) (*vm.Program, error) {
	if p, ok := programCache.Load(src); ok {
		return p.(*vm.Program), nil
	}
	normalized := strings.ReplaceAll(src, "^", "**") // §4.1 whitelist spells exponentiation "^"; expr-lang spells it "**"
	program, err := expr.Compile(normalized)
	if err != nil {
		return nil, err
	}
	programCache.Store(src, program)
	return program, nil
}

// Resolve evaluates the mapping name->unresolved expression into
// name->finite float64, in dependency order. See §4.1 for the full
// contract; failures are always *ParameterError.
func Resolve(raw map[string]string) (map[string]float64, error) {
	paramNames := make(map[string]bool, len(raw))
	for name := range raw {
		paramNames[name] = true
	}

	literals := make(map[string]float64, len(raw))
	symbolic := make(map[string]string)
	deps := make(map[string]map[string]struct{})

	for name, src := range raw {
		if v, ok := ParseLiteral(src); ok {
			literals[name] = v
			continue
		}
		d, err := freeIdentifiers(src, paramNames)
		if err != nil {
			return nil, &ParameterError{Name: name, Err: err}
		}
		symbolic[name] = src
		deps[name] = d
	}

	order, err := topoSort(symbolic, deps)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]float64, len(raw))
	for name, v := range literals {
		resolved[name] = v
	}

	env := mathEnv()
	for _, name := range order {
		src := symbolic[name]
		program, err := compile(src)
		if err != nil {
			return nil, &ParameterError{Name: name, Err: fmt.Errorf("%w: %v", ErrParseFailed, err)}
		}

		callEnv := make(map[string]interface{}, len(env)+len(resolved))
		for k, v := range env {
			callEnv[k] = v
		}
		for k, v := range resolved {
			callEnv[k] = v
		}

		out, err := expr.Run(program, callEnv)
		if err != nil {
			return nil, &ParameterError{Name: name, Err: fmt.Errorf("%w: %v", ErrEvalFailed, err)}
		}
		value, err := toFloat(out)
		if err != nil {
			return nil, &ParameterError{Name: name, Err: err}
		}
		if !isFinite(value) {
			return nil, &ParameterError{Name: name, Err: ErrNonFinite}
		}
		resolved[name] = value
	}

	for name, v := range literals {
		if !isFinite(v) {
			return nil, &ParameterError{Name: name, Err: ErrNonFinite}
		}
	}

	return resolved, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: non-numeric result %v (%T)", ErrEvalFailed, v, v)
	}
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// topoSort runs Kahn's algorithm over the symbolic-entry dependency
// graph, returning evaluation order. Node in-degree counts only edges
// whose source is itself a symbolic (non-literal) entry — a symbolic
// expression may also reference a literal, which needs no ordering
// since literals are available immediately.
func topoSort(symbolic map[string]string, deps map[string]map[string]struct{}) ([]string, error) {
	indegree := make(map[string]int, len(symbolic))
	dependents := make(map[string][]string) // dep -> names that depend on it
	for name := range symbolic {
		indegree[name] = 0
	}
	for name, ds := range deps {
		for dep := range ds {
			if _, isSymbolic := symbolic[dep]; !isSymbolic {
				continue // literal dependency needs no ordering edge
			}
			indegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for name, d := range indegree {
		if d == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue) // deterministic order among equally-ready nodes

	order := make([]string, 0, len(symbolic))
	for len(queue) > 0 {
		sort.Strings(queue)
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)
		for _, next := range dependents[name] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != len(symbolic) {
		return nil, &ParameterError{Name: firstCyclic(indegree), Err: ErrDependencyCycle}
	}
	return order, nil
}

func firstCyclic(indegree map[string]int) string {
	names := make([]string, 0, len(indegree))
	for name, d := range indegree {
		if d > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

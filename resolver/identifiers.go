// File: identifiers.go
// Role: free-identifier extraction from a parsed expression, used to
// build the dependency graph (§4.1's "extracting free identifiers from
// each parsed expression and keeping those that are also keys of the
// input map").
package resolver

import (
	"fmt"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

type identifierCollector struct {
	names map[string]struct{}
}

// Visit implements ast.Visitor: it records every IdentifierNode it sees.
// Member-access and call-target identifiers (e.g. the "sin" in "sin(x)")
// are also recorded here; freeIdentifiers then keeps the names that are
// parameter keys as dependencies, accepts whitelisted function/constant
// names, and rejects any other name with ErrUndefinedIdentifier.
func (c *identifierCollector) Visit(node *ast.Node) {
	if id, ok := (*node).(*ast.IdentifierNode); ok {
		c.names[id.Value] = struct{}{}
	}
}

// freeIdentifiers parses expr and returns the set of identifiers it
// references that are keys of paramNames, i.e. candidate dependency
// edges within the parameter map (§4.1). A referenced name that is
// neither a key of paramNames nor in the math whitelist is reported as
// ErrUndefinedIdentifier.
func freeIdentifiers(expr string, paramNames map[string]bool) (map[string]struct{}, error) {
	tree, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expr, ErrParseFailed)
	}
	c := &identifierCollector{names: make(map[string]struct{})}
	ast.Walk(&tree.Node, c)

	env := mathEnv()
	deps := make(map[string]struct{})
	for name := range c.names {
		if paramNames[name] {
			deps[name] = struct{}{}
			continue
		}
		if _, ok := env[name]; !ok {
			return nil, fmt.Errorf("%s: %q: %w", expr, name, ErrUndefinedIdentifier)
		}
	}
	return deps, nil
}

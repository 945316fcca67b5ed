// File: pattern.go
// Role: Compile, the §4.3 entry point producing a StampPattern.
package pattern

import (
	"errors"
	"fmt"

	"github.com/Gjild/rfsim/core"
)

// ErrFloatingPort is raised when a component port's net is absent from
// the graph's node index — it never had a recorded connection.
var ErrFloatingPort = errors.New("pattern: floating port")

// Slice is the half-open range [Begin, End) a component's n² stamp
// entries occupy within the pattern's flat Rows/Cols/data arrays.
type Slice struct {
	Begin, End int
}

// StampPattern is the immutable COO template of §3: parallel Rows/Cols
// coordinate arrays plus, per component in declared order, the Slice of
// entries belonging to it.
type StampPattern struct {
	Rows, Cols []int
	Slices     map[string]Slice // keyed by component ID
	Order      []string         // component IDs in declared (stamping) order
	Dim        int              // = netgraph.Graph.Dimension()
}

// Compile walks model's components in declared order and, for each,
// looks up its ports' net indices via index, appending the full n×n
// Cartesian product of (row, col) pairs in row-major order (§4.3, §4.5's
// "reference ordering that the StampPattern must match").
func Compile(model *core.CircuitModel, index map[string]int, dim int) (*StampPattern, error) {
	p := &StampPattern{
		Slices: make(map[string]Slice, len(model.Components)),
		Order:  make([]string, 0, len(model.Components)),
		Dim:    dim,
	}

	cursor := 0
	for _, comp := range model.Components {
		ports := comp.Ports()
		nets := make([]int, len(ports))
		for i, port := range ports {
			idx, ok := index[port.Net]
			if !ok {
				return nil, fmt.Errorf("pattern: component %s port %s: %w", comp.ID(), port.Name, ErrFloatingPort)
			}
			nets[i] = idx
		}

		n := len(ports)
		begin := cursor
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				p.Rows = append(p.Rows, nets[i])
				p.Cols = append(p.Cols, nets[j])
				cursor++
			}
		}
		p.Slices[comp.ID()] = Slice{Begin: begin, End: cursor}
		p.Order = append(p.Order, comp.ID())
	}

	return p, nil
}

// Nnz returns the total number of COO entries in the pattern.
func (p *StampPattern) Nnz() int { return len(p.Rows) }

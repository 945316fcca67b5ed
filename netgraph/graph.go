// File: graph.go
// Role: Graph, the netlist connectivity view of §4.2.
package netgraph

import (
	"sort"
	"sync"

	"github.com/Gjild/rfsim/core"
)

// Graph accumulates connections and derives a net->index map from them.
// AddConnection marks the node-index cache invalid immediately; the
// index itself is recomputed lazily on the next call to NodeIndex, never
// eagerly.
type Graph struct {
	mu          sync.RWMutex
	connections []core.Connection
	netSet      map[string]struct{}

	cacheValid bool
	cacheGnd   string
	cacheIndex map[string]int
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{netSet: make(map[string]struct{})}
}

// AddConnection records one (component, port, net) triple. Duplicates
// are permitted and retained in order (§4.2).
func (g *Graph) AddConnection(componentID, portName, netName string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.connections = append(g.connections, core.Connection{
		ComponentID: componentID,
		PortName:    portName,
		NetName:     netName,
	})
	g.netSet[netName] = struct{}{}
	g.cacheValid = false
}

// BuildFromModel populates a Graph from every connection recorded on a
// core.CircuitModel, in declared order.
func BuildFromModel(m *core.CircuitModel) *Graph {
	g := New()
	for _, c := range m.Connections {
		g.AddConnection(c.ComponentID, c.PortName, c.NetName)
	}
	return g
}

// NodeIndex returns the net->index map. If groundNet is non-empty and
// present among recorded nets, it is assigned index 0; every other net
// is sorted lexicographically and assigned 1..N-1 (or 0..N-1 if no
// ground net applies). The result is cached until the next AddConnection.
func (g *Graph) NodeIndex(groundNet string) map[string]int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cacheValid && g.cacheGnd == groundNet {
		return g.cacheIndex
	}

	_, hasGround := g.netSet[groundNet]
	rest := make([]string, 0, len(g.netSet))
	for net := range g.netSet {
		if groundNet != "" && hasGround && net == groundNet {
			continue
		}
		rest = append(rest, net)
	}
	sort.Strings(rest)

	index := make(map[string]int, len(g.netSet))
	next := 0
	if groundNet != "" && hasGround {
		index[groundNet] = 0
		next = 1
	}
	for _, net := range rest {
		index[net] = next
		next++
	}

	g.cacheValid = true
	g.cacheGnd = groundNet
	g.cacheIndex = index
	return index
}

// Dimension returns the number of distinct nets recorded.
func (g *Graph) Dimension() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.netSet)
}

// Nodes returns every distinct net name, sorted lexicographically.
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nodes := make([]string, 0, len(g.netSet))
	for net := range g.netSet {
		nodes = append(nodes, net)
	}
	sort.Strings(nodes)
	return nodes
}

// Connections returns every recorded (component, port, net) record, in
// insertion order.
func (g *Graph) Connections() []core.Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]core.Connection, len(g.connections))
	copy(out, g.connections)
	return out
}

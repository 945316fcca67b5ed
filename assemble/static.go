// File: static.go
// Role: StaticPackage (§3) — the immutable, worker-shippable bundle
// derived once from a core.CircuitModel's topology: net index, ground
// elimination bookkeeping, the external/internal partition, and the
// compiled pattern.StampPattern. Building it performs every up-front
// topology validation of §7 so no sweep point ever discovers a topology
// error mid-evaluation.
package assemble

import (
	"fmt"
	"sort"

	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/netgraph"
	"github.com/Gjild/rfsim/pattern"
)

// StaticPackage is the immutable per-topology bundle of §3. Safe to
// share by reference across sweep workers: nothing on it is mutated
// after Build returns.
type StaticPackage struct {
	Pattern     *pattern.StampPattern
	Graph       *netgraph.Graph
	NetIndex    map[string]int // pre-ground-drop net -> index
	GroundNet   string         // "" if no ground net present
	GroundIndex int            // -1 if GroundNet == ""
	Dim         int            // pre-ground-drop dimension

	// ExternalIdx / InternalIdx index into the *reduced* (post-ground-drop)
	// space, in external-port declared order / ascending order respectively.
	ExternalIdx []int
	InternalIdx []int
}

// Build validates model's topology and compiles its StaticPackage. Every
// error returned is a *core.TopologyError: fatal to the whole build,
// raised before any evaluation point runs (§7).
func Build(model *core.CircuitModel) (*StaticPackage, error) {
	if err := checkDuplicateIDs(model); err != nil {
		return nil, err
	}

	g := netgraph.BuildFromModel(model)

	groundNet := ""
	for _, net := range g.Nodes() {
		if core.IsGround(net) {
			groundNet = net
			break
		}
	}

	index := g.NodeIndex(groundNet)
	dim := g.Dimension()

	if err := checkUndeclaredExternalNets(model, index); err != nil {
		return nil, err
	}
	if err := checkDisconnected(model, index); err != nil {
		return nil, err
	}

	p, err := pattern.Compile(model, index, dim)
	if err != nil {
		return nil, &core.TopologyError{Err: err}
	}

	groundIdx := -1
	if groundNet != "" {
		groundIdx = index[groundNet]
	}

	externalIdx, err := externalIndices(model, index, groundIdx)
	if err != nil {
		return nil, err
	}
	internalIdx := internalIndices(dim, groundIdx, externalIdx)

	return &StaticPackage{
		Pattern:     p,
		Graph:       g,
		NetIndex:    index,
		GroundNet:   groundNet,
		GroundIndex: groundIdx,
		Dim:         dim,
		ExternalIdx: externalIdx,
		InternalIdx: internalIdx,
	}, nil
}

func checkDuplicateIDs(model *core.CircuitModel) error {
	seen := make(map[string]struct{}, len(model.Components))
	for _, c := range model.Components {
		if _, ok := seen[c.ID()]; ok {
			return &core.TopologyError{Err: core.ErrDuplicateComponentID, Detail: c.ID()}
		}
		seen[c.ID()] = struct{}{}
	}
	return nil
}

func checkUndeclaredExternalNets(model *core.CircuitModel, index map[string]int) error {
	for _, ep := range model.ExternalPorts {
		if _, ok := index[ep.NetName]; !ok {
			return &core.TopologyError{Err: core.ErrUndeclaredExternalNet, Detail: fmt.Sprintf("%s -> %s", ep.Name, ep.NetName)}
		}
	}
	return nil
}

// checkDisconnected verifies every net is reachable from some external
// port's net (or the ground net) by walking component-induced
// adjacency: all ports of a single component are mutually connected.
func checkDisconnected(model *core.CircuitModel, index map[string]int) error {
	adj := make(map[string][]string, len(index))
	for _, c := range model.Components {
		ports := c.Ports()
		for i := range ports {
			for j := range ports {
				if i == j {
					continue
				}
				adj[ports[i].Net] = append(adj[ports[i].Net], ports[j].Net)
			}
		}
	}

	if len(index) == 0 {
		return nil
	}

	var seeds []string
	for _, ep := range model.ExternalPorts {
		seeds = append(seeds, ep.NetName)
	}
	for net := range index {
		if core.IsGround(net) {
			seeds = append(seeds, net)
		}
	}
	if len(seeds) == 0 {
		// Nothing designates a required-reachable set; skip the check
		// rather than guess which component is "the" root.
		return nil
	}

	visited := make(map[string]bool, len(index))
	queue := append([]string(nil), seeds...)
	for _, s := range seeds {
		visited[s] = true
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	nets := make([]string, 0, len(index))
	for net := range index {
		nets = append(nets, net)
	}
	sort.Strings(nets)
	for _, net := range nets {
		if !visited[net] {
			return &core.TopologyError{Err: core.ErrDisconnectedGraph, Detail: net}
		}
	}
	return nil
}

// externalIndices maps each external port to its index in the reduced
// (post-ground-drop) space, in declared order.
func externalIndices(model *core.CircuitModel, index map[string]int, groundIdx int) ([]int, error) {
	out := make([]int, 0, len(model.ExternalPorts))
	for _, ep := range model.ExternalPorts {
		idx, ok := index[ep.NetName]
		if !ok {
			return nil, &core.TopologyError{Err: core.ErrUndeclaredExternalNet, Detail: ep.Name}
		}
		out = append(out, dropRemap(idx, groundIdx))
	}
	return out, nil
}

// internalIndices returns every reduced-space index not claimed by an
// external port, ascending.
func internalIndices(dim, groundIdx int, externalIdx []int) []int {
	isExternal := make(map[int]bool, len(externalIdx))
	for _, idx := range externalIdx {
		isExternal[idx] = true
	}
	var out []int
	for i := 0; i < dim; i++ {
		if i == groundIdx {
			continue
		}
		reduced := dropRemap(i, groundIdx)
		if !isExternal[reduced] {
			out = append(out, reduced)
		}
	}
	sort.Ints(out)
	return out
}

// dropRemap maps a pre-ground-drop index to its post-drop index,
// matching csparse.CSR.DropRowCol's own remap rule.
func dropRemap(idx, groundIdx int) int {
	if groundIdx >= 0 && idx > groundIdx {
		return idx - 1
	}
	return idx
}

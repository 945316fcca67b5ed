package netgraph

import (
	"testing"

	"github.com/Gjild/rfsim/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_NodeIndex_GroundFirst(t *testing.T) {
	g := New()
	g.AddConnection("R1", "p1", "n2")
	g.AddConnection("R1", "p2", "gnd")
	g.AddConnection("R2", "p1", "n1")
	g.AddConnection("R2", "p2", "n2")

	idx := g.NodeIndex("gnd")
	require.Equal(t, 0, idx["gnd"])
	assert.Equal(t, 1, idx["n1"])
	assert.Equal(t, 2, idx["n2"])
	assert.Equal(t, 3, g.Dimension())
}

func TestGraph_NodeIndex_NoGroundPresent(t *testing.T) {
	g := New()
	g.AddConnection("R1", "p1", "b")
	g.AddConnection("R1", "p2", "a")

	idx := g.NodeIndex("gnd")
	assert.Equal(t, 0, idx["a"])
	assert.Equal(t, 1, idx["b"])
}

func TestGraph_NodeIndex_Deterministic(t *testing.T) {
	g := New()
	g.AddConnection("R1", "p1", "zz")
	g.AddConnection("R1", "p2", "aa")
	g.AddConnection("R2", "p1", "mm")

	first := g.NodeIndex("")
	second := g.NodeIndex("")
	assert.Equal(t, first, second)
}

func TestGraph_NodeIndex_CacheInvalidatedOnAdd(t *testing.T) {
	g := New()
	g.AddConnection("R1", "p1", "a")
	idx1 := g.NodeIndex("")
	assert.Equal(t, 1, len(idx1))

	g.AddConnection("R1", "p2", "b")
	idx2 := g.NodeIndex("")
	assert.Equal(t, 2, len(idx2))
}

func TestGraph_Nodes_Sorted(t *testing.T) {
	g := New()
	g.AddConnection("R1", "p1", "zeta")
	g.AddConnection("R1", "p2", "alpha")
	assert.Equal(t, []string{"alpha", "zeta"}, g.Nodes())
}

func TestBuildFromModel(t *testing.T) {
	m := &core.CircuitModel{
		Connections: []core.Connection{
			{ComponentID: "R1", PortName: "p1", NetName: "n1"},
			{ComponentID: "R1", PortName: "p2", NetName: "gnd"},
		},
	}
	g := BuildFromModel(m)
	assert.Equal(t, 2, g.Dimension())
	assert.Len(t, g.Connections(), 2)
}

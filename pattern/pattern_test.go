package pattern

import (
	"testing"

	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/csparse"
	"github.com/Gjild/rfsim/netgraph"
	"github.com/Gjild/rfsim/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubComponent struct {
	id    string
	ports []core.Port
}

func (s *stubComponent) ID() string               { return s.id }
func (s *stubComponent) Ports() []core.Port        { return s.ports }
func (s *stubComponent) Params() map[string]string { return nil }
func (s *stubComponent) Ymatrix(*numeric.Context) (*csparse.Dense, error) {
	return csparse.NewDense(len(s.ports), len(s.ports)), nil
}

func twoPortResistor(id, p1net, p2net string) *stubComponent {
	return &stubComponent{
		id: id,
		ports: []core.Port{
			{Name: "p1", Net: p1net},
			{Name: "p2", Net: p2net},
		},
	}
}

func TestCompile_SeriesResistor(t *testing.T) {
	model := &core.CircuitModel{
		Components: []core.Component{twoPortResistor("R1", "p1", "p2")},
	}
	g := netgraph.New()
	g.AddConnection("R1", "p1", "p1")
	g.AddConnection("R1", "p2", "p2")
	idx := g.NodeIndex("gnd")

	p, err := Compile(model, idx, g.Dimension())
	require.NoError(t, err)
	assert.Equal(t, 4, p.Nnz())
	assert.Equal(t, Slice{Begin: 0, End: 4}, p.Slices["R1"])
	assert.Equal(t, []string{"R1"}, p.Order)
}

func TestCompile_MultipleComponentsAccumulateSlices(t *testing.T) {
	model := &core.CircuitModel{
		Components: []core.Component{
			twoPortResistor("R1", "n1", "n2"),
			twoPortResistor("R2", "n2", "n3"),
		},
	}
	g := netgraph.New()
	g.AddConnection("R1", "p1", "n1")
	g.AddConnection("R1", "p2", "n2")
	g.AddConnection("R2", "p1", "n2")
	g.AddConnection("R2", "p2", "n3")
	idx := g.NodeIndex("")

	p, err := Compile(model, idx, g.Dimension())
	require.NoError(t, err)
	assert.Equal(t, 8, p.Nnz())
	assert.Equal(t, Slice{Begin: 0, End: 4}, p.Slices["R1"])
	assert.Equal(t, Slice{Begin: 4, End: 8}, p.Slices["R2"])
}

func TestCompile_FloatingPort(t *testing.T) {
	model := &core.CircuitModel{
		Components: []core.Component{twoPortResistor("R1", "n1", "n2")},
	}
	// n2 never recorded as a connection -> absent from the index.
	idx := map[string]int{"n1": 0}

	_, err := Compile(model, idx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFloatingPort)
}

func TestCompile_Determinism(t *testing.T) {
	model := &core.CircuitModel{
		Components: []core.Component{twoPortResistor("R1", "n1", "n2")},
	}
	idx := map[string]int{"n1": 0, "n2": 1}

	p1, err := Compile(model, idx, 2)
	require.NoError(t, err)
	p2, err := Compile(model, idx, 2)
	require.NoError(t, err)
	assert.Equal(t, p1.Rows, p2.Rows)
	assert.Equal(t, p1.Cols, p2.Cols)
}

package assemble

import (
	"testing"

	"github.com/Gjild/rfsim/cache"
	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/csparse"
	"github.com/Gjild/rfsim/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seriesResistor is a minimal two-port Y = (1/R)*[[1,-1],[-1,1]] test
// double, matching the stamping rule SUPPLEMENTED FEATURES grounds on
// original_source/components/single_impedance_component.py.
type seriesResistor struct {
	id     string
	p1, p2 string
	r      float64
}

func (s *seriesResistor) ID() string { return s.id }
func (s *seriesResistor) Ports() []core.Port {
	return []core.Port{{Name: "p1", Net: s.p1}, {Name: "p2", Net: s.p2}}
}
func (s *seriesResistor) Params() map[string]string { return nil }
func (s *seriesResistor) Ymatrix(*numeric.Context) (*csparse.Dense, error) {
	y := 1 / complex(s.r, 0)
	m := csparse.NewDense(2, 2)
	m.SetUnchecked(0, 0, y)
	m.SetUnchecked(0, 1, -y)
	m.SetUnchecked(1, 0, -y)
	m.SetUnchecked(1, 1, y)
	return m, nil
}

func twoPortModel(r float64) *core.CircuitModel {
	return &core.CircuitModel{
		Components: []core.Component{&seriesResistor{id: "R1", p1: "p1", p2: "p2", r: r}},
		ExternalPorts: []core.ExternalPortSpec{
			{Name: "p1", NetName: "p1", Impedance: core.ConstantImpedance(complex(50, 0))},
			{Name: "p2", NetName: "p2", Impedance: core.ConstantImpedance(complex(50, 0))},
		},
		Connections: []core.Connection{
			{ComponentID: "R1", PortName: "p1", NetName: "p1"},
			{ComponentID: "R1", PortName: "p2", NetName: "p2"},
		},
	}
}

func TestAssemble_SeriesResistorTextbookResult(t *testing.T) {
	model := twoPortModel(1000)
	static, err := Build(model)
	require.NoError(t, err)

	ctx := numeric.New(1e9, nil)
	res, err := Assemble(static, model, ctx, cache.New())
	require.NoError(t, err)

	s11, err := res.S.At(0, 0)
	require.NoError(t, err)
	s21, err := res.S.At(1, 0)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0/1100.0, real(s11), 1e-9)
	assert.InDelta(t, 0, imag(s11), 1e-9)
	assert.InDelta(t, 2*50.0/1100.0, real(s21), 1e-9)
}

func TestAssemble_TwoResistorsInSeriesEqualsOneDoubled(t *testing.T) {
	model := &core.CircuitModel{
		Components: []core.Component{
			&seriesResistor{id: "R1", p1: "p1", p2: "n1", r: 500},
			&seriesResistor{id: "R2", p1: "n1", p2: "p2", r: 500},
		},
		ExternalPorts: []core.ExternalPortSpec{
			{Name: "p1", NetName: "p1", Impedance: core.ConstantImpedance(complex(50, 0))},
			{Name: "p2", NetName: "p2", Impedance: core.ConstantImpedance(complex(50, 0))},
		},
		Connections: []core.Connection{
			{ComponentID: "R1", PortName: "p1", NetName: "p1"},
			{ComponentID: "R1", PortName: "p2", NetName: "n1"},
			{ComponentID: "R2", PortName: "p1", NetName: "n1"},
			{ComponentID: "R2", PortName: "p2", NetName: "p2"},
		},
	}
	static, err := Build(model)
	require.NoError(t, err)

	ctx := numeric.New(1e9, nil)
	res, err := Assemble(static, model, ctx, cache.New())
	require.NoError(t, err)

	single := twoPortModel(1000)
	singleStatic, err := Build(single)
	require.NoError(t, err)
	wantRes, err := Assemble(singleStatic, single, ctx, cache.New())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, _ := res.S.At(i, j)
			want, _ := wantRes.S.At(i, j)
			assert.InDelta(t, real(want), real(got), 1e-9)
			assert.InDelta(t, imag(want), imag(got), 1e-9)
		}
	}
}

func TestBuild_FloatingPortFailsTopology(t *testing.T) {
	model := &core.CircuitModel{
		Components: []core.Component{&seriesResistor{id: "R1", p1: "p1", p2: "p2", r: 1000}},
		ExternalPorts: []core.ExternalPortSpec{
			{Name: "p1", NetName: "p1", Impedance: core.ConstantImpedance(complex(50, 0))},
		},
		Connections: []core.Connection{
			{ComponentID: "R1", PortName: "p1", NetName: "p1"},
			// p2 never connected -> floating port.
		},
	}
	_, err := Build(model)
	require.Error(t, err)
	var topoErr *core.TopologyError
	require.ErrorAs(t, err, &topoErr)
}

func TestBuild_DuplicateComponentIDFailsTopology(t *testing.T) {
	model := &core.CircuitModel{
		Components: []core.Component{
			&seriesResistor{id: "R1", p1: "p1", p2: "p2", r: 1000},
			&seriesResistor{id: "R1", p1: "p2", p2: "p3", r: 500},
		},
	}
	_, err := Build(model)
	require.Error(t, err)
	var topoErr *core.TopologyError
	require.ErrorAs(t, err, &topoErr)
	assert.ErrorIs(t, topoErr.Err, core.ErrDuplicateComponentID)
}

func TestAssemble_CacheReusedWhenInternalBlockUnchanged(t *testing.T) {
	// Three resistors: p1-n1 (external-only path), n1-n2-p2 forms the
	// internal block; two models built with the same R2 value share that
	// block's sparsity and values.
	build := func(r3 float64) (*core.CircuitModel, *StaticPackage) {
		m := &core.CircuitModel{
			Components: []core.Component{
				&seriesResistor{id: "R1", p1: "p1", p2: "n1", r: 100},
				&seriesResistor{id: "R2", p1: "n1", p2: "n2", r: r3},
				&seriesResistor{id: "R3", p1: "n2", p2: "p2", r: 100},
			},
			ExternalPorts: []core.ExternalPortSpec{
				{Name: "p1", NetName: "p1", Impedance: core.ConstantImpedance(complex(50, 0))},
				{Name: "p2", NetName: "p2", Impedance: core.ConstantImpedance(complex(50, 0))},
			},
			Connections: []core.Connection{
				{ComponentID: "R1", PortName: "p1", NetName: "p1"},
				{ComponentID: "R1", PortName: "p2", NetName: "n1"},
				{ComponentID: "R2", PortName: "p1", NetName: "n1"},
				{ComponentID: "R2", PortName: "p2", NetName: "n2"},
				{ComponentID: "R3", PortName: "p1", NetName: "n2"},
				{ComponentID: "R3", PortName: "p2", NetName: "p2"},
			},
		}
		static, err := Build(m)
		require.NoError(t, err)
		return m, static
	}

	c := cache.New()
	m1, s1 := build(200)
	_, err := Assemble(s1, m1, numeric.New(1e9, nil), c)
	require.NoError(t, err)
	_, err = Assemble(s1, m1, numeric.New(1e9, nil), c)
	require.NoError(t, err)

	hits, misses := c.Stats()
	assert.Equal(t, 1, misses)
	assert.Equal(t, 1, hits)
}

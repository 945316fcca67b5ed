package component

import (
	"testing"

	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func innerSeriesResistorModel(r string) *core.CircuitModel {
	res := NewResistor("R1", "in", "out", r)
	return &core.CircuitModel{
		Components: []core.Component{res},
		ExternalPorts: []core.ExternalPortSpec{
			{Name: "in", NetName: "in", Impedance: core.ConstantImpedance(complex(50, 0))},
			{Name: "out", NetName: "out", Impedance: core.ConstantImpedance(complex(50, 0))},
		},
		Connections: []core.Connection{
			{ComponentID: "R1", PortName: "1", NetName: "in"},
			{ComponentID: "R1", PortName: "2", NetName: "out"},
		},
	}
}

func TestSubcircuit_ReducesToInnerSeriesResistorY(t *testing.T) {
	inner := innerSeriesResistorModel("1000")
	sc, err := NewSubcircuit("SUB1", inner, []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, []core.Port{{Name: "in", Net: "a"}, {Name: "out", Net: "b"}}, sc.Ports())

	// Ymatrix resolves the inner model's own scope itself, so the ctx
	// passed in only needs a frequency; no qualified overrides apply
	// since innerSeriesResistorModel declares no GlobalParameters.
	ctx := numeric.New(1e9, nil)
	y, err := sc.Ymatrix(ctx)
	require.NoError(t, err)

	direct := NewResistor("R1", "a", "b", "1000")
	directCtx := numeric.New(1e9, map[string]float64{"R1.R": 1000})
	wantY, err := direct.Ymatrix(directCtx)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, _ := y.At(i, j)
			want, _ := wantY.At(i, j)
			assert.InDelta(t, real(want), real(got), 1e-9)
			assert.InDelta(t, imag(want), imag(got), 1e-9)
		}
	}
}

func TestSubcircuit_SiblingInstancesDoNotCollideOnGlobalParameters(t *testing.T) {
	// Both siblings are built from the same inner template; template()
	// returns a fresh CircuitModel on each call, so each sibling owns its
	// inner model while sharing the same parameter names.
	template := func() *core.CircuitModel {
		res := NewResistor("R1", "in", "out", "Rval")
		return &core.CircuitModel{
			GlobalParameters: map[string]string{"Rval": "50"},
			Components:       []core.Component{res},
			ExternalPorts: []core.ExternalPortSpec{
				{Name: "in", NetName: "in", Impedance: core.ConstantImpedance(complex(50, 0))},
				{Name: "out", NetName: "out", Impedance: core.ConstantImpedance(complex(50, 0))},
			},
			Connections: []core.Connection{
				{ComponentID: "R1", PortName: "1", NetName: "in"},
				{ComponentID: "R1", PortName: "2", NetName: "out"},
			},
		}
	}

	sc1, err := NewSubcircuit("SUB1", template(), []string{"a", "b"})
	require.NoError(t, err)
	sc2, err := NewSubcircuit("SUB2", template(), []string{"c", "d"})
	require.NoError(t, err)

	p1 := sc1.Params()
	p2 := sc2.Params()
	require.Contains(t, p1, "SUB1.Rval")
	require.Contains(t, p2, "SUB2.Rval")
	assert.NotEqual(t, p1, p2)

	// The outer sweep scope binds each sibling to a distinct resistance;
	// mergeParameters-style flat merge of both keys never collides.
	merged := map[string]float64{"SUB1.Rval": 1000, "SUB2.Rval": 2000}
	ctx := numeric.New(1e9, merged)

	y1, err := sc1.Ymatrix(ctx)
	require.NoError(t, err)
	y2, err := sc2.Ymatrix(ctx)
	require.NoError(t, err)

	want1, err := NewResistor("R", "a", "b", "1000").Ymatrix(numeric.New(1e9, map[string]float64{"R.R": 1000}))
	require.NoError(t, err)
	want2, err := NewResistor("R", "c", "d", "2000").Ymatrix(numeric.New(1e9, map[string]float64{"R.R": 2000}))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got1, _ := y1.At(i, j)
			w1, _ := want1.At(i, j)
			assert.InDelta(t, real(w1), real(got1), 1e-9)
			assert.InDelta(t, imag(w1), imag(got1), 1e-9)

			got2, _ := y2.At(i, j)
			w2, _ := want2.At(i, j)
			assert.InDelta(t, real(w2), real(got2), 1e-9)
			assert.InDelta(t, imag(w2), imag(got2), 1e-9)
		}
	}
}

func TestSubcircuit_MismatchedInterfaceCountErrors(t *testing.T) {
	inner := innerSeriesResistorModel("1000")
	_, err := NewSubcircuit("SUB1", inner, []string{"a"})
	require.Error(t, err)
	var mapErr *core.MappingError
	require.ErrorAs(t, err, &mapErr)
}

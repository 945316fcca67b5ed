package component

import (
	"math"
	"testing"

	"github.com/Gjild/rfsim/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResistor_Ymatrix(t *testing.T) {
	r := NewResistor("R1", "p1", "p2", "1000")
	ctx := numeric.New(1e9, map[string]float64{"R1.R": 1000})
	y, err := r.Ymatrix(ctx)
	require.NoError(t, err)
	v00, _ := y.At(0, 0)
	v01, _ := y.At(0, 1)
	assert.InDelta(t, 1.0/1000.0, real(v00), 1e-12)
	assert.InDelta(t, -1.0/1000.0, real(v01), 1e-12)
	assert.Equal(t, []string{"R1.R"}, keysOf(r.Params()))
}

func TestCapacitor_Ymatrix(t *testing.T) {
	c := NewCapacitor("C1", "p1", "p2", "1e-9")
	freq := 1e9
	ctx := numeric.New(freq, map[string]float64{"C1.C": 1e-9})
	y, err := c.Ymatrix(ctx)
	require.NoError(t, err)
	v00, _ := y.At(0, 0)
	wantY := complex(0, 2*math.Pi*freq*1e-9)
	assert.InDelta(t, real(wantY), real(v00), 1e-9)
	assert.InDelta(t, imag(wantY), imag(v00), 1e-9)
}

func TestInductor_Ymatrix(t *testing.T) {
	l := NewInductor("L1", "p1", "p2", "1e-6")
	freq := 1e9
	ctx := numeric.New(freq, map[string]float64{"L1.L": 1e-6})
	y, err := l.Ymatrix(ctx)
	require.NoError(t, err)
	v00, _ := y.At(0, 0)
	zWant := complex(0, 2*math.Pi*freq*1e-6)
	wantY := 1 / zWant
	assert.InDelta(t, real(wantY), real(v00), 1e-6)
	assert.InDelta(t, imag(wantY), imag(v00), 1e-6)
}

func TestTransmissionLine_QuarterWaveMatched(t *testing.T) {
	tl := NewTransmissionLine("TL1", "p1", "p2", "50", "", "")
	ctx := numeric.New(1e9, map[string]float64{
		"TL1.Z0": 50, "TL1.length": 0.1, "TL1.beta": 2 * math.Pi / 0.4,
	})
	y, err := tl.Ymatrix(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, y.Rows())
	assert.Equal(t, 2, y.Cols())
}

func TestDirectionalCoupler_PowerConservationShape(t *testing.T) {
	dc := NewDirectionalCoupler("DC1", "p1", "p2", "p3", "p4", "10", "0")
	ctx := numeric.New(1e9, map[string]float64{
		"DC1.coupling_dB": 10, "DC1.loss_dB": 0, "Z0": 50,
	})
	y, err := dc.Ymatrix(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, y.Rows())
}

func TestDirectionalCoupler_InvalidCoupling(t *testing.T) {
	dc := NewDirectionalCoupler("DC1", "p1", "p2", "p3", "p4", "", "")
	ctx := numeric.New(1e9, map[string]float64{"DC1.coupling_dB": -10, "DC1.loss_dB": 0})
	_, err := dc.Ymatrix(ctx)
	require.Error(t, err)
}

func TestWilkinsonDivider_Shape(t *testing.T) {
	w := NewWilkinsonDivider("W1", "p1", "p2", "p3", "")
	ctx := numeric.New(1e9, map[string]float64{"W1.loss_dB": 0, "Z0": 50})
	y, err := w.Ymatrix(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, y.Rows())
}

func TestResistor_MissingParamErrors(t *testing.T) {
	r := NewResistor("R1", "p1", "p2", "1000")
	ctx := numeric.New(1e9, nil)
	_, err := r.Ymatrix(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParam)
}

func keysOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

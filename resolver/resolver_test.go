package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Literals(t *testing.T) {
	out, err := Resolve(map[string]string{
		"r": "1k",
		"c": "10n",
		"f": "2.4G",
		"x": "5",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, out["r"], 1e-9)
	assert.InDelta(t, 10e-9, out["c"], 1e-18)
	assert.InDelta(t, 2.4e9, out["f"], 1e-3)
	assert.InDelta(t, 5.0, out["x"], 1e-9)
}

func TestResolve_SymbolicDependency(t *testing.T) {
	out, err := Resolve(map[string]string{
		"base": "2",
		"derived": "base * 3",
		"final":   "derived + 1",
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out["base"], 1e-9)
	assert.InDelta(t, 6.0, out["derived"], 1e-9)
	assert.InDelta(t, 7.0, out["final"], 1e-9)
}

func TestResolve_OrderIndependent(t *testing.T) {
	inputs := map[string]string{
		"a": "b + 1",
		"b": "c * 2",
		"c": "3",
	}
	out1, err := Resolve(inputs)
	require.NoError(t, err)
	out2, err := Resolve(inputs)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
	assert.InDelta(t, 7.0, out1["a"], 1e-9)
}

func TestResolve_Idempotent(t *testing.T) {
	inputs := map[string]string{
		"w": "2 * pi * f",
		"f": "1e9",
	}
	first, err := Resolve(inputs)
	require.NoError(t, err)
	second, err := Resolve(inputs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_DependencyCycle(t *testing.T) {
	_, err := Resolve(map[string]string{
		"a": "b + 1",
		"b": "a - 1",
	})
	require.Error(t, err)
	var pErr *ParameterError
	require.ErrorAs(t, err, &pErr)
	assert.ErrorIs(t, pErr.Err, ErrDependencyCycle)
}

func TestResolve_SelfCycle(t *testing.T) {
	_, err := Resolve(map[string]string{
		"a": "a + 1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDependencyCycle))
}

func TestResolve_NonFiniteResult(t *testing.T) {
	_, err := Resolve(map[string]string{
		"z": "log(-1)",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonFinite))
}

func TestResolve_TrigAndExponent(t *testing.T) {
	out, err := Resolve(map[string]string{
		"w":   "2 * pi * 1e9",
		"val": "sin(w) ^ 2 + cos(w) ^ 2",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out["val"], 1e-6)
}

func TestResolve_UnitSuffixes(t *testing.T) {
	out, err := Resolve(map[string]string{
		"z0": "50ohm",
		"l":  "3.3uH",
	})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, out["z0"], 1e-9)
	assert.InDelta(t, 3.3e-6, out["l"], 1e-12)
}

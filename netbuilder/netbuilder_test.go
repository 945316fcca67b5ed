package netbuilder

import (
	"testing"

	"github.com/Gjild/rfsim/assemble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLadder_TooFewSectionsErrors(t *testing.T) {
	_, err := Ladder(0, "100", "1e-9", complex(50, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooFewSections)
}

func TestLadder_ShapeAndBuildability(t *testing.T) {
	model, err := Ladder(3, "100", "1e-9", complex(50, 0))
	require.NoError(t, err)
	assert.Len(t, model.Components, 3+2) // 3 resistors, 2 shunt capacitors
	assert.Len(t, model.ExternalPorts, 2)

	static, err := assemble.Build(model)
	require.NoError(t, err)
	assert.Equal(t, 2, len(static.ExternalIdx))
}

func TestLadder_SingleSectionHasNoShuntCapacitors(t *testing.T) {
	model, err := Ladder(1, "100", "1e-9", complex(50, 0))
	require.NoError(t, err)
	assert.Len(t, model.Components, 1)
}

func TestRandomMesh_TooFewVerticesErrors(t *testing.T) {
	_, err := RandomMesh(1, 0.5, 1, "100", complex(50, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestRandomMesh_InvalidProbabilityErrors(t *testing.T) {
	_, err := RandomMesh(4, 1.5, 1, "100", complex(50, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProbability)

	_, err = RandomMesh(4, -0.1, 1, "100", complex(50, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProbability)
}

func TestRandomMesh_ProbabilityOneIsFullMesh(t *testing.T) {
	n := 5
	model, err := RandomMesh(n, 1.0, 42, "100", complex(50, 0))
	require.NoError(t, err)
	want := n * (n - 1) / 2
	assert.Len(t, model.Components, want)
}

func TestRandomMesh_ProbabilityZeroHasNoEdges(t *testing.T) {
	model, err := RandomMesh(4, 0.0, 42, "100", complex(50, 0))
	require.NoError(t, err)
	assert.Empty(t, model.Components)
}

func TestRandomMesh_DeterministicForFixedSeed(t *testing.T) {
	m1, err := RandomMesh(10, 0.5, 7, "100", complex(50, 0))
	require.NoError(t, err)
	m2, err := RandomMesh(10, 0.5, 7, "100", complex(50, 0))
	require.NoError(t, err)

	require.Equal(t, len(m1.Components), len(m2.Components))
	for i := range m1.Components {
		assert.Equal(t, m1.Components[i].ID(), m2.Components[i].ID())
		assert.Equal(t, m1.Components[i].Ports(), m2.Components[i].Ports())
	}
}

func TestRandomMesh_DifferentSeedsDiffer(t *testing.T) {
	m1, err := RandomMesh(12, 0.5, 1, "100", complex(50, 0))
	require.NoError(t, err)
	m2, err := RandomMesh(12, 0.5, 2, "100", complex(50, 0))
	require.NoError(t, err)
	assert.NotEqual(t, len(m1.Components), len(m2.Components),
		"seeds 1 and 2 draw different edge counts at n=12, p=0.5 (37 and 39)")
}

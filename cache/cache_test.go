package cache_test

import (
	"testing"

	"github.com/Gjild/rfsim/cache"
	"github.com/Gjild/rfsim/csparse"
	"github.com/stretchr/testify/require"
)

func diagCSR(t *testing.T, vals ...complex128) (*csparse.CSR, *csparse.Dense) {
	t.Helper()
	n := len(vals)
	rows, cols, data := make([]int, n), make([]int, n), make([]complex128, n)
	dense := csparse.NewDense(n, n)
	for i, v := range vals {
		rows[i], cols[i], data[i] = i, i, v
		_ = dense.Set(i, i, v)
	}
	c, err := csparse.BuildCSR(n, rows, cols, data)
	require.NoError(t, err)
	return c, dense
}

func TestCacheHitsWhenDataUnchanged(t *testing.T) {
	calls := 0
	c := cache.New(cache.WithFactorizer(func(a *csparse.Dense) (*csparse.LUFactorization, error) {
		calls++
		return csparse.Factorize(a)
	}))

	yiiCSR, yiiDense := diagCSR(t, 2, 3)
	rhs := csparse.NewDense(2, 1)
	_ = rhs.Set(0, 0, 1)
	_ = rhs.Set(1, 0, 1)

	_, err := c.Solve(yiiCSR, yiiDense, rhs)
	require.NoError(t, err)
	_, err = c.Solve(yiiCSR, yiiDense, rhs)
	require.NoError(t, err)

	require.Equal(t, 1, calls, "second solve with identical sparsity+data must hit the cache")
	hits, misses := c.Stats()
	require.Equal(t, 1, hits)
	require.Equal(t, 1, misses)
}

func TestCacheMissesWhenDataChanges(t *testing.T) {
	calls := 0
	c := cache.New(cache.WithFactorizer(func(a *csparse.Dense) (*csparse.LUFactorization, error) {
		calls++
		return csparse.Factorize(a)
	}))

	rhs := csparse.NewDense(2, 1)
	_ = rhs.Set(0, 0, 1)
	_ = rhs.Set(1, 0, 1)

	csr1, dense1 := diagCSR(t, 2, 3)
	_, err := c.Solve(csr1, dense1, rhs)
	require.NoError(t, err)

	csr2, dense2 := diagCSR(t, 2, 9) // same sparsity, different numeric value
	_, err = c.Solve(csr2, dense2, rhs)
	require.NoError(t, err)

	require.Equal(t, 2, calls, "changed internal value must miss the cache and refactorize")
	require.Equal(t, 1, c.Len(), "still only one entry per sparsity fingerprint")
}

// Package cache implements the factorization cache of SPEC_FULL.md §4.8:
// at most one cached LU factorization per sparsity fingerprint, reused
// whenever a later lookup's data checksum still matches, recomputed and
// replaced otherwise. The cache is process-local (in practice,
// worker-local — §5); no cross-worker sharing is attempted.
package cache

// Package sweep implements the §4.7 Sweep Driver: expanding a sweep
// specification into the Cartesian product of frequency and parameter
// values, dispatching the resulting points across a bounded worker pool
// with golang.org/x/sync/errgroup, and collecting per-point
// {freq, parameters, s_matrix-or-error} records.
//
// Workers are long-lived: each owns a single *cache.Cache for its entire
// lifetime, so repeated points routed to the same worker can still hit
// the factorization cache (§4.8) — a fresh cache per point would defeat
// it entirely. The StaticPackage and CircuitModel are read-only and
// shared by reference across all workers without locking, per §5.
package sweep

// Package numeric defines NumericContext, the immutable, hashable
// (frequency, parameters) value threaded through component evaluation,
// assembly and the factorization cache. See SPEC_FULL.md §4.4.
package numeric

// File: context.go
// Role: immutable (freq, params) evaluation context.
//
// Determinism:
//   - Param pairs are stored sorted by name ascending; Hash and Equal are
//     derived from that canonical order, so two contexts built from the
//     same logical map (regardless of insertion order) compare equal.
//
// Concurrency:
//   - Context is immutable after construction; safe to share by pointer
//     across goroutines without locking.
package numeric

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
)

// Pair is a single resolved (name, value) binding.
type Pair struct {
	Name  string
	Value float64
}

// Context is the immutable value passed to Component.Ymatrix and used as
// the factorization-cache and stamping key. Build one with New; callers
// must not mutate the Pairs slice returned by Params.
type Context struct {
	freq  float64
	pairs []Pair // sorted by Name ascending
}

// New builds a Context from a frequency and an already-resolved parameter
// map. The map is copied into a sorted slice; the input is not retained.
//
// Complexity: O(n log n) for the sort, n = len(params).
func New(freq float64, params map[string]float64) *Context {
	pairs := make([]Pair, 0, len(params))
	for name, value := range params {
		pairs = append(pairs, Pair{Name: name, Value: value})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })

	return &Context{freq: freq, pairs: pairs}
}

// Freq returns the evaluation frequency in Hz.
func (c *Context) Freq() float64 { return c.freq }

// Params returns the sorted (name, value) pairs. The returned slice is
// owned by the Context and must not be mutated by the caller.
func (c *Context) Params() []Pair { return c.pairs }

// Lookup returns the value bound to name, doing an O(log n) binary search
// over the sorted pairs. ok is false if name is not present.
func (c *Context) Lookup(name string) (value float64, ok bool) {
	i := sort.Search(len(c.pairs), func(i int) bool { return c.pairs[i].Name >= name })
	if i < len(c.pairs) && c.pairs[i].Name == name {
		return c.pairs[i].Value, true
	}
	return 0, false
}

// Equal reports whether c and other carry the same frequency and the same
// sorted parameter pairs.
func (c *Context) Equal(other *Context) bool {
	if other == nil || c.freq != other.freq || len(c.pairs) != len(other.pairs) {
		return false
	}
	for i, p := range c.pairs {
		if p != other.pairs[i] {
			return false
		}
	}
	return true
}

// Hash returns a stable 64-bit hash derived from the sorted pairs plus
// freq. Two contexts that are Equal always hash to the same value; it is
// not cryptographic and must not be used across process boundaries.
func (c *Context) Hash() uint64 {
	h := fnv.New64a()
	writeFloat(h, c.freq)
	for _, p := range c.pairs {
		_, _ = h.Write([]byte(p.Name))
		writeFloat(h, p.Value)
	}
	return h.Sum64()
}

func writeFloat(h interface{ Write([]byte) (int, error) }, v float64) {
	// math.Float64bits gives a stable bit pattern for the hash; NaN/Inf
	// are never expected here (resolver rejects non-finite values) but we
	// do not special-case them, following the "fail at the source"
	// discipline used throughout rfsim.
	bits := math.Float64bits(v)
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * i))
	}
	_, _ = h.Write(buf[:])
}

// String renders the context for diagnostics; not used for hashing/equality.
func (c *Context) String() string {
	s := fmt.Sprintf("freq=%g", c.freq)
	for _, p := range c.pairs {
		s += fmt.Sprintf(" %s=%g", p.Name, p.Value)
	}
	return s
}

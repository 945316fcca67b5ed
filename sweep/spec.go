// File: spec.go
// Role: Spec/Entry (§4.7's "sweep specification") and Expand, which
// turns a Spec into the flat Cartesian-product list of evaluation
// Points the driver dispatches.
package sweep

import (
	"fmt"
	"math"
)

// frequencyName is the reserved entry name that selects the frequency
// axis; any other Name is a sweep-overridden parameter.
const frequencyName = "f"

const (
	// ScaleLinear spaces frequency samples evenly.
	ScaleLinear = "linear"
	// ScaleLog spaces frequency samples evenly in base-10 log space.
	ScaleLog = "log"
)

// Entry is one axis of a sweep specification. When Name == "f" it
// describes the frequency axis via Start/End/Points/Scale; for any other
// Name it describes an explicit parameter value list via Values.
type Entry struct {
	Name string

	// Frequency-axis fields, meaningful only when Name == "f".
	Start, End float64
	Points     int
	Scale      string

	// Parameter-axis field, meaningful only when Name != "f".
	Values []float64
}

// Spec is the full sweep specification: exactly one frequency Entry and
// zero or more parameter Entries.
type Spec struct {
	Entries []Entry
}

// Point is one evaluation point of the expanded Cartesian product:
// a frequency sample plus zero or more named parameter overrides.
type Point struct {
	Freq      float64
	Overrides map[string]float64
}

// Expand validates spec and returns the full Cartesian product of its
// frequency samples with each parameter entry's explicit value list
// (§4.7). The order of the returned points is deterministic — frequency
// outermost, then parameter entries in declared order — though the
// driver itself does not preserve this order in its output records.
func Expand(spec Spec) ([]Point, error) {
	freqEntry, paramEntries, err := splitEntries(spec)
	if err != nil {
		return nil, err
	}

	freqs, err := sampleFrequencies(freqEntry)
	if err != nil {
		return nil, err
	}

	combos, err := cartesianParams(paramEntries)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(freqs)*len(combos))
	for _, f := range freqs {
		for _, combo := range combos {
			points = append(points, Point{Freq: f, Overrides: combo})
		}
	}
	return points, nil
}

func splitEntries(spec Spec) (freqEntry *Entry, paramEntries []Entry, err error) {
	for i := range spec.Entries {
		e := &spec.Entries[i]
		if e.Name != frequencyName {
			paramEntries = append(paramEntries, *e)
			continue
		}
		if freqEntry != nil {
			return nil, nil, ErrMultipleFrequencyEntries
		}
		freqEntry = e
	}
	if freqEntry == nil {
		return nil, nil, ErrNoFrequencyEntry
	}
	return freqEntry, paramEntries, nil
}

func sampleFrequencies(e *Entry) ([]float64, error) {
	if e.Points < 1 {
		return nil, fmt.Errorf("sweep: frequency points=%d: %w", e.Points, ErrInvalidPoints)
	}
	switch e.Scale {
	case ScaleLinear:
		return linspace(e.Start, e.End, e.Points), nil
	case ScaleLog:
		if e.Start <= 0 || e.End <= 0 {
			return nil, fmt.Errorf("sweep: range=[%g,%g]: %w", e.Start, e.End, ErrInvalidRange)
		}
		return logspace(e.Start, e.End, e.Points), nil
	default:
		return nil, fmt.Errorf("sweep: scale=%q: %w", e.Scale, ErrInvalidScale)
	}
}

func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = start + step*float64(i)
	}
	return out
}

func logspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	logStart, logEnd := math.Log10(start), math.Log10(end)
	step := (logEnd - logStart) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = math.Pow(10, logStart+step*float64(i))
	}
	return out
}

// cartesianParams expands zero or more explicit-value parameter entries
// into the full Cartesian product of named overrides. Zero entries
// yields a single empty combination, so the frequency axis alone still
// produces one point per frequency sample.
func cartesianParams(entries []Entry) ([]map[string]float64, error) {
	combos := []map[string]float64{{}}
	for _, e := range entries {
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("sweep: parameter %q: %w", e.Name, ErrEmptyValues)
		}
		var next []map[string]float64
		for _, combo := range combos {
			for _, v := range e.Values {
				merged := make(map[string]float64, len(combo)+1)
				for k, val := range combo {
					merged[k] = val
				}
				merged[e.Name] = v
				next = append(next, merged)
			}
		}
		combos = next
	}
	return combos, nil
}

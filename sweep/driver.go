// File: driver.go
// Role: Run, the §4.7 dispatch loop — a bounded pool of long-lived
// workers, each with its own factorization cache, draining a channel of
// expanded Points and producing Records.
package sweep

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Gjild/rfsim/assemble"
	"github.com/Gjild/rfsim/cache"
	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/csparse"
	"github.com/Gjild/rfsim/numeric"
	"github.com/Gjild/rfsim/resolver"
)

// DefaultWorkers is used when Run is not given WithWorkers.
const DefaultWorkers = 4

// Config holds sweep-driver tuning knobs, set via Option.
type Config struct {
	workers int
}

// Option configures a sweep Run.
type Option func(*Config)

// WithWorkers sets the worker-pool size. Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// Record is one evaluation point's outcome: either S is populated and
// Err is nil, or vice versa (§4.7).
type Record struct {
	Freq       float64
	Parameters map[string]float64
	S          *csparse.Dense
	Err        error
}

// Result is the outcome of a full sweep: every retained record, in no
// particular order (§4.7's determinism note).
type Result struct {
	Records []Record
}

// Errors returns the error message of every failed record, for callers
// that want a flat aggregate list (§7: "callers decide whether to treat
// a nonempty error list as failure").
func (r *Result) Errors() []string {
	var out []string
	for _, rec := range r.Records {
		if rec.Err != nil {
			out = append(out, rec.Err.Error())
		}
	}
	return out
}

// Run expands spec, dispatches every point across a worker pool bounded
// by Config.workers, and collects the resulting records. Each worker
// evaluates its points through the shared, read-only static/model pair
// and its own private factorization cache (§5, §4.8).
//
// If ctx is cancelled, in-flight points are abandoned and already-
// completed points are retained in the returned Result; Run then returns
// ctx.Err() alongside that partial Result. A non-nil error from Expand
// (spec validation) is fatal: no point is ever evaluated and Result is nil.
func Run(ctx context.Context, static *assemble.StaticPackage, model *core.CircuitModel, spec Spec, opts ...Option) (*Result, error) {
	cfg := &Config{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(cfg)
	}

	points, err := Expand(spec)
	if err != nil {
		return nil, err
	}

	// §4.7's flow resolves globals once, ahead of Graph/Pattern/Static
	// construction, so a global-scope cycle or parse failure stops the
	// sweep before any point is evaluated rather than failing every
	// point individually.
	if _, err := resolver.Resolve(model.GlobalParameters); err != nil {
		return nil, fmt.Errorf("sweep: resolving global parameters: %w", err)
	}

	jobs := make(chan Point)
	var mu sync.Mutex
	var records []Record

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for w := 0; w < cfg.workers; w++ {
		g.Go(func() error {
			c := cache.New()
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case pt, ok := <-jobs:
					if !ok {
						return nil
					}
					rec := evaluatePoint(static, model, pt, c)
					mu.Lock()
					records = append(records, rec)
					mu.Unlock()
				}
			}
		})
	}

	feedErr := feedJobs(gctx, jobs, points)
	waitErr := g.Wait()

	result := &Result{Records: records}
	if waitErr != nil {
		return result, waitErr
	}
	if feedErr != nil {
		return result, feedErr
	}
	return result, nil
}

func feedJobs(ctx context.Context, jobs chan<- Point, points []Point) error {
	defer close(jobs)
	for _, pt := range points {
		select {
		case jobs <- pt:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// evaluatePoint builds the per-point resolved parameter map (globals
// merged with every component's locals merged with pt's sweep overrides,
// later bindings winning with a logged warning), resolves it, and
// invokes the Assembler+Reducer. Any failure becomes a per-point error,
// never a panic or an aborted sweep (§7).
func evaluatePoint(static *assemble.StaticPackage, model *core.CircuitModel, pt Point, c *cache.Cache) Record {
	raw := mergeParameters(model, pt.Overrides)

	resolved, err := resolver.Resolve(raw)
	if err != nil {
		return Record{Freq: pt.Freq, Parameters: pt.Overrides, Err: fmt.Errorf("sweep: resolving parameters: %w", err)}
	}

	ctx := numeric.New(pt.Freq, resolved)
	result, err := assemble.Assemble(static, model, ctx, c)
	if err != nil {
		return Record{Freq: pt.Freq, Parameters: pt.Overrides, Err: fmt.Errorf("sweep: assembling point: %w", err)}
	}
	return Record{Freq: pt.Freq, Parameters: pt.Overrides, S: result.S}
}

// mergeParameters implements §4.7's "globals ⊕ each component's locals
// ⊕ sweep overrides; later bindings override earlier ones with a
// warning" merge rule, returning unresolved expression sources ready
// for resolver.Resolve. Overrides are already-resolved numbers, folded
// in as literal expression text.
func mergeParameters(model *core.CircuitModel, overrides map[string]float64) map[string]string {
	merged := make(map[string]string, len(model.GlobalParameters))
	for name, src := range model.GlobalParameters {
		merged[name] = src
	}

	for _, comp := range model.Components {
		for name, src := range comp.Params() {
			if _, exists := merged[name]; exists {
				log.Warnf("sweep: component %s parameter %q overrides an existing binding", comp.ID(), name)
			}
			merged[name] = src
		}
	}

	for name, value := range overrides {
		if _, exists := merged[name]; exists {
			log.Warnf("sweep: override %q overrides an existing binding", name)
		}
		merged[name] = strconv.FormatFloat(value, 'g', -1, 64)
	}

	return merged
}

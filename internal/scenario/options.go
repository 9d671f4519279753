package scenario

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/lvmath/internal/logging"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is used when neither the file nor WithTolerance sets one.
	DefaultTolerance = 1e-9

	// DefaultWorkers bounds the number of scenarios evaluated at once.
	DefaultWorkers = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "scenario: WithTolerance: tolerance must be finite, non-negative"
	panicWorkersInvalid   = "scenario: WithWorkers: workers must be ≥ 1"
	panicLoggerNil        = "scenario: WithLogger: logger must not be nil"
)

// Option mutates runner options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective runner configuration.
type Options struct {
	tolerance    float64 // DefaultTolerance
	toleranceSet bool    // WithTolerance overrides the file value
	workers      int     // DefaultWorkers
	logger       logging.Log
	runID        uuid.UUID
}

// WithTolerance overrides the tolerance of the scenario file.
// Panics when tol is NaN, infinite or negative.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tolerance = tol
		o.toleranceSet = true
	}
}

// WithWorkers sets the maximum number of concurrent evaluations.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger sets the logger used for per-scenario and summary entries.
func WithLogger(l logging.Log) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithRunID fixes the run identifier instead of generating a random one.
func WithRunID(id uuid.UUID) Option {
	return func(o *Options) { o.runID = id }
}

// gatherOptions applies setters on top of the defaults (last-writer-wins)
// and fills in what is still unset.
func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance: DefaultTolerance,
		workers:   DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}

	if o.logger == nil {
		o.logger = logging.Nop()
	}
	if o.runID == uuid.Nil {
		o.runID = uuid.New()
	}

	return o
}

// effectiveTolerance resolves the option against the file value.
func (o Options) effectiveTolerance(f *File) float64 {
	if !o.toleranceSet && f.Tolerance != nil {
		return *f.Tolerance
	}
	return o.tolerance
}

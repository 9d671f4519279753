package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmath/internal/logging"
)

// Run validates f and evaluates every scenario, at most WithWorkers at a
// time. Failing expectations are recorded in the report, not returned as
// errors; the error is non-nil only for an invalid file or a cancelled ctx.
func Run(ctx context.Context, f *File, opts ...Option) (*Report, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	tol := o.effectiveTolerance(f)
	log := o.logger.With(logging.String("run_id", o.runID.String()))
	log.Info("run started",
		logging.Int("scenarios", len(f.Scenarios)),
		logging.Int("workers", o.workers),
		logging.Float64("tolerance", tol),
	)

	start := time.Now()
	results := make([]Result, len(f.Scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, s := range f.Scenarios {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(s, tol)
			logResult(log, results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scenario: run: %w", err)
	}

	report := newReport(o.runID, tol, results)
	log.Info("run complete",
		logging.Int("passed", report.Passed),
		logging.Int("failed", report.Failed),
		logging.String("fingerprint", report.Fingerprint),
		logging.Duration("elapsed", time.Since(start)),
	)
	return report, nil
}

func logResult(log logging.Log, r Result) {
	fields := []logging.Field{
		logging.String("name", r.Name),
		logging.String("kind", string(r.Kind)),
		logging.Bool("hit", r.Hit),
	}
	if r.Pass {
		log.Debug("scenario passed", fields...)
		return
	}
	log.Warn("scenario failed", append(fields, logging.String("mismatch", strings.Join(r.Mismatches, "; ")))...)
}

// Package scenario runs what-if sweeps and side-by-side comparisons on top
// of the engine. Points are independent, so they are evaluated in parallel.
package scenario

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pouch-cost/core/engine"
	"pouch-cost/core/types"
	"pouch-cost/internal/errors"
	"pouch-cost/internal/logging"
)

// DefaultWorkers is used when a caller passes a non-positive worker count
const DefaultWorkers = 4

// Param is a job field a sweep can vary
type Param string

const (
	ParamColors         Param = "colors"
	ParamMargin         Param = "margin"
	ParamWastage        Param = "wastage"
	ParamQuantityPieces Param = "quantity_pieces"
	ParamQuantityKg     Param = "quantity_kg"
)

// Params returns the sweepable parameters
func Params() []Param {
	return []Param{ParamColors, ParamMargin, ParamWastage, ParamQuantityPieces, ParamQuantityKg}
}

// ParseParam resolves a parameter name
func ParseParam(name string) (Param, error) {
	for _, p := range Params() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", errors.NotFound("sweep parameter", name)
}

// Apply returns a copy of req with the parameter set to v
func (p Param) Apply(req types.ProductRequirements, v float64) (types.ProductRequirements, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return req, errors.Newf(errors.TypeInput, "%s: value must be finite", p)
	}

	switch p {
	case ParamColors:
		if v != math.Trunc(v) || v < 0 || v > 10 {
			return req, errors.Newf(errors.TypeInput, "colors: %g is not a whole number between 0 and 10", v)
		}
		req.NumberOfColors = int(v)
	case ParamMargin:
		if v < 0 {
			return req, errors.Newf(errors.TypeInput, "margin: %g must not be negative", v)
		}
		req.MarginPercent = v
	case ParamWastage:
		if v < 0 {
			return req, errors.Newf(errors.TypeInput, "wastage: %g must not be negative", v)
		}
		req.WastagePercent = v
	case ParamQuantityPieces:
		if v != math.Trunc(v) || v <= 0 {
			return req, errors.Newf(errors.TypeInput, "quantity_pieces: %g is not a positive whole number", v)
		}
		req.Quantity = types.ByCount{Pieces: int64(v)}
	case ParamQuantityKg:
		if v <= 0 {
			return req, errors.Newf(errors.TypeInput, "quantity_kg: %g must be positive", v)
		}
		req.Quantity = types.ByWeight{Kg: v}
	default:
		return req, errors.NotFound("sweep parameter", string(p))
	}
	return req, nil
}

// Point is one evaluated value of a sweep
type Point struct {
	Value     float64             `json:"value"`
	Breakdown types.CostBreakdown `json:"breakdown"`
}

// Sweep prices base once per value with param replaced. Results follow the
// order of values. All values are checked before any pricing starts.
func Sweep(ctx context.Context, eng *engine.Engine, base types.ProductRequirements, param Param, values []float64, workers int) ([]Point, error) {
	if len(values) == 0 {
		return nil, errors.Input("sweep needs at least one value")
	}

	jobs := make([]types.ProductRequirements, len(values))
	for i, v := range values {
		req, err := param.Apply(base, v)
		if err != nil {
			return nil, err
		}
		jobs[i] = req
	}

	start := time.Now()
	breakdowns, err := run(ctx, eng, jobs, workers)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{Value: v, Breakdown: breakdowns[i]}
	}

	logging.Debug("sweep complete",
		zap.String("param", string(param)),
		zap.Int("points", len(points)),
		zap.Duration("duration", time.Since(start)))

	return points, nil
}

// Named is a job with a caller-chosen name
type Named struct {
	Name         string                    `json:"name"`
	Requirements types.ProductRequirements `json:"requirements"`
}

// Entry is one priced job of a comparison
type Entry struct {
	Name      string              `json:"name"`
	Breakdown types.CostBreakdown `json:"breakdown"`
}

// Comparison lists each job's breakdown and names the cheapest per pouch.
// Ties go to the job listed first.
type Comparison struct {
	Entries  []Entry `json:"entries"`
	Cheapest string  `json:"cheapest"`
}

// Compare prices every job and picks the lowest cost per pouch
func Compare(ctx context.Context, eng *engine.Engine, named []Named, workers int) (Comparison, error) {
	if len(named) == 0 {
		return Comparison{}, errors.Input("compare needs at least one job")
	}

	jobs := make([]types.ProductRequirements, len(named))
	for i, n := range named {
		jobs[i] = n.Requirements
	}

	breakdowns, err := run(ctx, eng, jobs, workers)
	if err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{Entries: make([]Entry, len(named))}
	cheapest := 0
	for i, n := range named {
		cmp.Entries[i] = Entry{Name: n.Name, Breakdown: breakdowns[i]}
		if breakdowns[i].CostPerPouch.LessThan(breakdowns[cheapest].CostPerPouch) {
			cheapest = i
		}
	}
	cmp.Cheapest = named[cheapest].Name

	logging.Debug("comparison complete",
		zap.Int("jobs", len(named)),
		zap.String("cheapest", cmp.Cheapest))

	return cmp, nil
}

// run prices jobs on a bounded pool, writing each result to its own slot
func run(ctx context.Context, eng *engine.Engine, jobs []types.ProductRequirements, workers int) ([]types.CostBreakdown, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]types.CostBreakdown, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = eng.Compute(job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(errors.TypeInternal, "scenario cancelled", err)
	}
	return results, nil
}

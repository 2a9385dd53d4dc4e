package rm

import (
	"errors"
	"fmt"
	"math"

	"github.com/misterclayt0n/rmcalc/internal/models"
)

// MaxReps is the highest rep count the table covers, and the highest one
// accepted as input.
const MaxReps = 10

// MaxWeight bounds the input weight in kg. Far above any real lift, and low
// enough that every estimate stays a small finite number.
const MaxWeight = 1e6

var ErrInvalidInput = errors.New("invalid input")

type Options struct {
	// RejectZeroWeight treats a weight of exactly 0 as "no result".
	RejectZeroWeight bool
}

// Engine turns a (weight, reps) pair into a table of nRM estimates.
// It holds no state besides its options and is safe for concurrent use.
type Engine struct {
	opts Options
}

func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Validate reports why in cannot produce a result, or nil.
func (e *Engine) Validate(in models.Input) error {
	switch {
	case math.IsNaN(in.Weight):
		return fmt.Errorf("%w: weight is not a number", ErrInvalidInput)
	case math.IsInf(in.Weight, 0):
		return fmt.Errorf("%w: weight is not finite", ErrInvalidInput)
	case in.Weight < 0:
		return fmt.Errorf("%w: weight %g is negative", ErrInvalidInput, in.Weight)
	case in.Weight > MaxWeight:
		return fmt.Errorf("%w: weight %g is above %g", ErrInvalidInput, in.Weight, float64(MaxWeight))
	case in.Weight == 0 && e.opts.RejectZeroWeight:
		return fmt.Errorf("%w: weight is zero", ErrInvalidInput)
	case in.Reps < 1:
		return fmt.Errorf("%w: reps must be at least 1", ErrInvalidInput)
	case in.Reps > MaxReps:
		return fmt.Errorf("%w: reps must be at most %d", ErrInvalidInput, MaxReps)
	}
	return nil
}

// OneRM computes the estimated one-rep max for every formula.
// A single rep is its own 1RM and skips the formulas entirely.
func (e *Engine) OneRM(in models.Input) (models.Estimate, error) {
	if err := e.Validate(in); err != nil {
		return models.Estimate{}, err
	}
	if in.Reps == 1 {
		return models.Uniform(in.Weight), nil
	}

	var est models.Estimate
	for _, f := range Formulas {
		est = est.With(f.Key, f.OneRM(in.Weight, in.Reps))
	}
	est.Avg = est.Mean()
	return est, nil
}

// Estimate returns MaxReps rows ordered by target reps, starting at 1RM.
// Invalid input yields nil.
//
// Row 1 is the estimated 1RM itself. Every later row applies each formula's
// inverse to that formula's own 1RM, so a formula is never mixed with
// another's estimate.
func (e *Engine) Estimate(in models.Input) []models.Estimate {
	base, err := e.OneRM(in)
	if err != nil {
		return nil
	}

	rows := make([]models.Estimate, 0, MaxReps)
	rows = append(rows, base)
	for reps := 2; reps <= MaxReps; reps++ {
		rows = append(rows, atReps(base, reps))
	}
	return rows
}

func atReps(base models.Estimate, reps int) models.Estimate {
	var row models.Estimate
	for _, f := range Formulas {
		b, _ := base.Field(f.Key)
		row = row.With(f.Key, f.AtReps(b, reps))
	}
	row.Avg = row.Mean()
	return row
}

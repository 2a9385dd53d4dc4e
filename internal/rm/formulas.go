package rm

import (
	"math"

	"github.com/misterclayt0n/rmcalc/internal/models"
)

// Formula is one published 1RM regression model.
//
// OneRM estimates the one-repetition maximum from a set of reps at weight w.
// AtReps is its inverse: given a 1RM b, the weight liftable for e reps.
type Formula struct {
	Key        string
	Name       string
	Expression string // 1RM from (w, r)
	Inverse    string // nRM from (b, e)
	OneRM      func(w float64, reps int) float64
	AtReps     func(b float64, reps int) float64
}

// Formulas lists every model the engine evaluates, in the order of the
// Estimate fields.
var Formulas = []Formula{
	{
		Key:        models.KeyBrz,
		Name:       "Brzycki",
		Expression: "w * 36 / (37 - r)",
		Inverse:    "b * (37 - e) / 36",
		OneRM: func(w float64, reps int) float64 {
			return w * (36 / (37 - float64(reps)))
		},
		AtReps: func(b float64, reps int) float64 {
			return b * (37 - float64(reps)) / 36
		},
	},
	{
		Key:        models.KeyEpl,
		Name:       "Epley",
		Expression: "w * (1 + r/30)",
		Inverse:    "b / (1 + e/30)",
		OneRM: func(w float64, reps int) float64 {
			return w * (1 + float64(reps)/30)
		},
		AtReps: func(b float64, reps int) float64 {
			return b / (1 + float64(reps)/30)
		},
	},
	{
		Key:        models.KeyLan,
		Name:       "Lander",
		Expression: "w / (1.013 - 0.0267123 * r)",
		Inverse:    "b * (1.013 - 0.0267123 * e)",
		OneRM: func(w float64, reps int) float64 {
			return w / (1.013 - 0.0267123*float64(reps))
		},
		AtReps: func(b float64, reps int) float64 {
			return b * (1.013 - 0.0267123*float64(reps))
		},
	},
	{
		Key:        models.KeyLom,
		Name:       "Lombardi",
		Expression: "w * r^0.10",
		Inverse:    "b / e^0.10",
		OneRM: func(w float64, reps int) float64 {
			return w * math.Pow(float64(reps), 0.10)
		},
		AtReps: func(b float64, reps int) float64 {
			return b / math.Pow(float64(reps), 0.10)
		},
	},
	{
		Key:        models.KeyMay,
		Name:       "Mayhew",
		Expression: "w / (0.522 + 0.419 * e^(-0.055 * r))",
		Inverse:    "b * (0.522 + 0.419 * e^(-0.055 * e))",
		OneRM: func(w float64, reps int) float64 {
			return w / mayhewRatio(reps)
		},
		AtReps: func(b float64, reps int) float64 {
			return b * mayhewRatio(reps)
		},
	},
	{
		Key:        models.KeyOco,
		Name:       "O'Conner",
		Expression: "w * (1 + 0.025 * r)",
		Inverse:    "b / (1 + 0.025 * e)",
		OneRM: func(w float64, reps int) float64 {
			return w * (1 + 0.025*float64(reps))
		},
		AtReps: func(b float64, reps int) float64 {
			return b / (1 + 0.025*float64(reps))
		},
	},
	{
		Key:        models.KeyWat,
		Name:       "Wathan",
		Expression: "w / (0.4880 + 0.538 * e^(-0.075 * r))",
		Inverse:    "b * (0.4880 + 0.538 * e^(-0.075 * e))",
		OneRM: func(w float64, reps int) float64 {
			return w / wathanRatio(reps)
		},
		AtReps: func(b float64, reps int) float64 {
			return b * wathanRatio(reps)
		},
	},
}

func mayhewRatio(reps int) float64 {
	return 0.522 + 0.419*math.Exp(-0.055*float64(reps))
}

func wathanRatio(reps int) float64 {
	return 0.4880 + 0.538*math.Exp(-0.075*float64(reps))
}

package models

import "math"

// Formula keys, in the order the engine evaluates them.
const (
	KeyAvg = "avg"
	KeyBrz = "brz"
	KeyEpl = "epl"
	KeyLan = "lan"
	KeyLom = "lom"
	KeyMay = "may"
	KeyOco = "oco"
	KeyWat = "wat"
)

// Input is what the user typed. A missing weight is NaN, a missing rep count is 0.
type Input struct {
	Weight float64 `json:"weight" toml:"weight" yaml:"weight"`
	Reps   int     `json:"reps" toml:"reps" yaml:"reps"`
}

// NoWeight returns an Input whose weight is absent.
func NoWeight(reps int) Input {
	return Input{Weight: math.NaN(), Reps: reps}
}

// Estimate holds one row of the result table: the weight estimated by each
// formula plus their mean.
type Estimate struct {
	Avg float64 `json:"avg" toml:"avg" yaml:"avg"`
	Brz float64 `json:"brz" toml:"brz" yaml:"brz"`
	Epl float64 `json:"epl" toml:"epl" yaml:"epl"`
	Lan float64 `json:"lan" toml:"lan" yaml:"lan"`
	Lom float64 `json:"lom" toml:"lom" yaml:"lom"`
	May float64 `json:"may" toml:"may" yaml:"may"`
	Oco float64 `json:"oco" toml:"oco" yaml:"oco"`
	Wat float64 `json:"wat" toml:"wat" yaml:"wat"`
}

// Uniform returns an Estimate with every field set to w.
func Uniform(w float64) Estimate {
	return Estimate{Avg: w, Brz: w, Epl: w, Lan: w, Lom: w, May: w, Oco: w, Wat: w}
}

// Mean is the arithmetic mean of the seven formula fields. Avg itself is not included.
func (e Estimate) Mean() float64 {
	return (e.Brz + e.Epl + e.Lan + e.Lom + e.May + e.Oco + e.Wat) / 7
}

// Field returns the value stored under a formula key.
func (e Estimate) Field(key string) (float64, bool) {
	switch key {
	case KeyAvg:
		return e.Avg, true
	case KeyBrz:
		return e.Brz, true
	case KeyEpl:
		return e.Epl, true
	case KeyLan:
		return e.Lan, true
	case KeyLom:
		return e.Lom, true
	case KeyMay:
		return e.May, true
	case KeyOco:
		return e.Oco, true
	case KeyWat:
		return e.Wat, true
	}
	return 0, false
}

// set writes v under key. Unknown keys are ignored.
func (e *Estimate) set(key string, v float64) {
	switch key {
	case KeyAvg:
		e.Avg = v
	case KeyBrz:
		e.Brz = v
	case KeyEpl:
		e.Epl = v
	case KeyLan:
		e.Lan = v
	case KeyLom:
		e.Lom = v
	case KeyMay:
		e.May = v
	case KeyOco:
		e.Oco = v
	case KeyWat:
		e.Wat = v
	}
}

// With returns a copy of e with key set to v.
func (e Estimate) With(key string, v float64) Estimate {
	e.set(key, v)
	return e
}

package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/misterclayt0n/rmcalc/internal/models"
	"github.com/misterclayt0n/rmcalc/internal/rm"
)

type Column struct {
	Key   string `json:"key" toml:"key" yaml:"key"`
	Label string `json:"label" toml:"label" yaml:"label"`
}

// Columns is the display order of the result table.
var Columns = []Column{
	{models.KeyAvg, "Average"},
	{models.KeyEpl, "Epley"},
	{models.KeyBrz, "Brzycki"},
	{models.KeyLan, "Lander"},
	{models.KeyLom, "Lombardi"},
	{models.KeyMay, "Mayhew"},
	{models.KeyOco, "O'Conner"},
	{models.KeyWat, "Wathan"},
}

type Row struct {
	Label string `json:"label" toml:"label" yaml:"label"`
	Reps  int    `json:"reps" toml:"reps" yaml:"reps"`
	Cells []int  `json:"cells" toml:"cells" yaml:"cells"`
}

// Model is everything a view needs to draw the calculator.
type Model struct {
	Weight  string   `json:"weight" toml:"weight" yaml:"weight"`
	Reps    int      `json:"reps" toml:"reps" yaml:"reps"`
	Columns []Column `json:"columns" toml:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" toml:"rows" yaml:"rows"`
	Empty   bool     `json:"empty" toml:"empty" yaml:"empty"`
	Reason  string   `json:"reason,omitempty" toml:"reason,omitempty" yaml:"reason,omitempty"`
}

// Build turns engine state into a Model. Cells are floored, not rounded.
func Build(s rm.State) Model {
	m := Model{
		Weight:  FormatWeight(s.Input.Weight),
		Reps:    s.Input.Reps,
		Columns: Columns,
		Rows:    []Row{},
		Empty:   len(s.Results) == 0,
	}
	if s.Err != nil {
		m.Reason = s.Err.Error()
	}

	for i, est := range s.Results {
		row := Row{
			Label: fmt.Sprintf("%dRM", i+1),
			Reps:  i + 1,
			Cells: make([]int, len(Columns)),
		}
		for j, col := range Columns {
			v, _ := est.Field(col.Key)
			row.Cells[j] = int(math.Floor(v))
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

// FormatWeight renders a weight the way a user would type it back in.
// A missing weight is the empty string.
func FormatWeight(w float64) string {
	if math.IsNaN(w) {
		return ""
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// ParseInput reads the two form fields. An empty or non-numeric weight is
// missing (NaN); a negative weight is clamped to zero. Reps that do not parse
// as an integer become 0, which the engine rejects.
func ParseInput(weight, reps string) models.Input {
	in := models.NoWeight(0)

	if w := strings.TrimSpace(weight); w != "" {
		if v, err := strconv.ParseFloat(w, 64); err == nil && !math.IsNaN(v) {
			in.Weight = math.Max(v, 0)
		}
	}
	if r, err := strconv.Atoi(strings.TrimSpace(reps)); err == nil {
		in.Reps = r
	}
	return in
}

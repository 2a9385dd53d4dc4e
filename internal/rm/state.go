package rm

import "github.com/misterclayt0n/rmcalc/internal/models"

// State is the calculator as a UI sees it: the current input and the table
// it produced. Err is non-nil when Results is empty because of bad input.
type State struct {
	Input   models.Input
	Results []models.Estimate
	Err     error
}

// Recompute returns a fresh State for s.Input. The previous results are
// discarded, never patched.
func (e *Engine) Recompute(s State) State {
	next := State{Input: s.Input}
	if err := e.Validate(s.Input); err != nil {
		next.Err = err
		return next
	}
	next.Results = e.Estimate(s.Input)
	return next
}

// WithInput is a convenience for building the next State from a new input pair.
func (e *Engine) WithInput(in models.Input) State {
	return e.Recompute(State{Input: in})
}

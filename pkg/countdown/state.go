package countdown

import (
	"fmt"
	"time"
)

// State is the derived countdown value for one tick. It is recomputed from
// scratch on every tick and never persisted.
type State struct {
	Now       time.Time
	Remaining Remaining
	Progress  float64
	Done      bool
}

// At computes the State for now.
func (c Countdown) At(now time.Time) State {
	done := c.Done(now)
	s := State{
		Now:      now,
		Progress: c.Progress(now),
		Done:     done,
	}
	if !done {
		s.Remaining = c.Remaining(now)
	}
	return s
}

// Next is the per-tick transition. It returns the new State and whether this
// tick is the one on which the target was crossed.
func (c Countdown) Next(prev State, now time.Time) (State, bool) {
	next := c.At(now)
	return next, next.Done && !prev.Done
}

// ProgressString formats the progress with one decimal, e.g. "80.3%".
func (s State) ProgressString() string {
	return fmt.Sprintf("%.1f%%", s.Progress)
}

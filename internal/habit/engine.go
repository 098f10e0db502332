// Package habit implements the scheduling and streak-computation engine:
// due-ness evaluation for recurrence rules, the completion ledger, streaks,
// completion rates, and the cross-habit heatmap.
//
// Everything here is a pure computation over its inputs and the injected
// clock. Malformed input is reported to the log and answered with a safe
// default; no function panics or returns an error to its caller.
package habit

import (
	"github.com/julianstephens/ritual/internal/clock"
	"github.com/julianstephens/ritual/internal/dates"
)

// Engine evaluates habits against calendar days. It holds no state beyond
// the clock; all derived values are recomputed from the full habit record,
// so results are safe to recompute at any time.
type Engine struct {
	clock clock.Clock
}

func NewEngine(c clock.Clock) *Engine {
	return &Engine{clock: c}
}

// Today returns the current calendar day as seen by the engine's clock.
func (e *Engine) Today() string {
	return dates.Format(e.clock.Now())
}

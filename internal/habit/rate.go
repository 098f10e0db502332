package habit

import (
	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/dates"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/models"
)

// CompletionRate returns the fraction of due days within the trailing
// 30-day window (ending today, inclusive) that were completed, in [0, 1].
//
// A habit with no due days in the window has no defined rate and reports 0.
// Completions on non-due days never raise the rate above 1: the user may
// have marked a day the rule did not select, so the ratio is clamped.
func (e *Engine) CompletionRate(h models.Habit) float64 {
	if h.ID == "" {
		logger.Warn("completion rate requested for habit without id")
		return 0
	}

	today := e.Today()
	window := make(map[string]bool, constants.RateWindowDays)
	dueCount := 0
	for i := 0; i < constants.RateWindowDays; i++ {
		day, err := dates.AddDays(today, -i)
		if err != nil {
			logger.Warn("completion rate window walk failed", "habit", h.ID, "error", err)
			return 0
		}
		window[day] = true
		if e.IsDue(h, day) {
			dueCount++
		}
	}
	if dueCount == 0 {
		return 0
	}

	completedCount := 0
	for day := range completionSet(h) {
		if window[day] {
			completedCount++
		}
	}

	rate := float64(completedCount) / float64(dueCount)
	if rate > 1 {
		rate = 1
	}
	return rate
}

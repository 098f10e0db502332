package habit

import (
	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/dates"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/models"
)

// Heatmap builds a day-to-completion-count map across all habits for the
// trailing 180-day window ending today. Every day in the window is present,
// zero-initialized; completions outside the window are ignored. Counts are
// raw completions, irrespective of due-ness.
//
// Habits without an ID are skipped; storage can hand back malformed records
// and the aggregate must not crash on them.
func (e *Engine) Heatmap(habits []models.Habit) map[string]int {
	counts := make(map[string]int, constants.HeatmapWindowDays)

	today := e.Today()
	for i := 0; i < constants.HeatmapWindowDays; i++ {
		day, err := dates.AddDays(today, -i)
		if err != nil {
			logger.Warn("heatmap window walk failed", "error", err)
			return counts
		}
		counts[day] = 0
	}

	for _, h := range habits {
		if h.ID == "" {
			logger.Warn("skipping habit without id in heatmap")
			continue
		}
		for day := range completionSet(h) {
			if _, inWindow := counts[day]; inWindow {
				counts[day]++
			}
		}
	}

	return counts
}

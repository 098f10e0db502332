package habit

import (
	"sort"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/dates"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/models"
)

// StreakInfo holds current and longest consecutive-completion streaks.
type StreakInfo struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streak computes the habit's current and longest streaks.
//
// A streak counts completed due days. Days the habit was not due on neither
// extend nor break a streak: two completions separated by a gap remain
// consecutive as long as every due day strictly between them was also
// completed.
//
// The current streak is anchored at the most recent completion, which must
// be today, or yesterday while today's due occurrence is still pending
// (due, not yet completed). From the anchor it walks backward day by day,
// bounded at 30 days.
func (e *Engine) Streak(h models.Habit) StreakInfo {
	if h.ID == "" {
		logger.Warn("streak requested for habit without id")
		return StreakInfo{}
	}

	completed := completionSet(h)
	days := make([]string, 0, len(completed))
	for d := range completed {
		days = append(days, d)
	}
	if len(days) == 0 {
		return StreakInfo{}
	}
	sort.Strings(days)

	return StreakInfo{
		Current: e.currentStreak(h, days, completed),
		Longest: e.longestStreak(h, days, completed),
	}
}

// completionSet dedupes the ledger and drops malformed entries so the walk
// below only ever sees canonical days.
func completionSet(h models.Habit) map[string]bool {
	set := make(map[string]bool, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		if !dates.Valid(d) {
			logger.Warn("ignoring malformed completion date", "habit", h.ID, "day", d)
			continue
		}
		set[d] = true
	}
	return set
}

func (e *Engine) longestStreak(h models.Habit, sorted []string, completed map[string]bool) int {
	longest := 1
	run := 1
	for i := 1; i < len(sorted); i++ {
		if e.gapExplained(h, sorted[i-1], sorted[i], completed) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// gapExplained reports whether two completions extend the same streak:
// either they are adjacent calendar days, or both fall on due days and every
// due day strictly between them was also completed. A completion on a day
// the rule never selects chains only by literal adjacency.
func (e *Engine) gapExplained(h models.Habit, prev, next string, completed map[string]bool) bool {
	day, err := dates.AddDays(prev, 1)
	if err != nil {
		return false
	}
	if day == next {
		return true
	}
	if !e.IsDue(h, prev) || !e.IsDue(h, next) {
		return false
	}
	for day != next {
		if e.IsDue(h, day) && !completed[day] {
			return false
		}
		day, err = dates.AddDays(day, 1)
		if err != nil {
			return false
		}
	}
	return true
}

func (e *Engine) currentStreak(h models.Habit, sorted []string, completed map[string]bool) int {
	today := e.Today()
	yesterday, err := dates.AddDays(today, -1)
	if err != nil {
		return 0
	}

	last := sorted[len(sorted)-1]
	pendingToday := last == yesterday && e.IsDue(h, today) && !completed[today]
	if last != today && !pendingToday {
		return 0
	}

	current := 1
	day := last
	for step := 0; step < constants.StreakLookbackDays; step++ {
		day, err = dates.AddDays(day, -1)
		if err != nil {
			break
		}
		if !e.IsDue(h, day) {
			continue
		}
		if !completed[day] {
			break
		}
		current++
	}
	return current
}

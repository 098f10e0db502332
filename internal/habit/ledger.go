package habit

import (
	"github.com/julianstephens/ritual/internal/dates"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/models"
)

// IsCompleted reports whether the habit was marked done on the given day.
func (e *Engine) IsCompleted(h models.Habit, day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// MarkCompleted returns a copy of the habit with day recorded as completed.
// Marking an already-completed day is a no-op, and malformed days leave the
// habit unchanged. The input habit is never mutated; callers persist the
// returned value.
func (e *Engine) MarkCompleted(h models.Habit, day string) models.Habit {
	if !dates.Valid(day) {
		logger.Warn("refusing to mark malformed day", "habit", h.ID, "day", day)
		return h
	}
	if e.IsCompleted(h, day) {
		return h
	}

	updated := make([]string, 0, len(h.CompletedDates)+1)
	updated = append(updated, h.CompletedDates...)
	updated = append(updated, day)
	h.CompletedDates = updated
	return h
}

// Unmark returns a copy of the habit with day removed from the completion
// ledger. Removing an absent day is a no-op.
func (e *Engine) Unmark(h models.Habit, day string) models.Habit {
	if !e.IsCompleted(h, day) {
		return h
	}

	updated := make([]string, 0, len(h.CompletedDates)-1)
	for _, d := range h.CompletedDates {
		if d != day {
			updated = append(updated, d)
		}
	}
	h.CompletedDates = updated
	return h
}

package habit

import (
	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/dates"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/models"
)

// IsDue reports whether the habit's recurrence rule falls on the given day.
// It is pure over arbitrary days, past or future; the "only today can be
// toggled" rule is a separate guard owned by the CLI/TUI layer.
//
// Conventions for an empty CustomDays list:
//   - weekly defaults to Monday
//   - monthly defaults to the 1st
//   - custom is never due (an empty custom selection means "no days")
//
// An unrecognized frequency is never due.
func (e *Engine) IsDue(h models.Habit, day string) bool {
	dayOfWeek, err := dates.DayOfWeek(day)
	if err != nil {
		logger.Warn("due check on malformed day", "habit", h.ID, "day", day, "error", err)
		return false
	}

	switch h.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		if len(h.CustomDays) == 0 {
			return dayOfWeek == constants.DefaultWeeklyDueDay
		}
		return containsDay(h.CustomDays, dayOfWeek)
	case models.FrequencyMonthly:
		dayOfMonth, err := dates.DayOfMonth(day)
		if err != nil {
			return false
		}
		if len(h.CustomDays) == 0 {
			return dayOfMonth == constants.DefaultMonthlyDueDay
		}
		return containsDay(h.CustomDays, dayOfMonth)
	case models.FrequencyCustom:
		return containsDay(h.CustomDays, dayOfWeek)
	default:
		return false
	}
}

// containsDay checks membership without range-checking the values: an
// out-of-range entry can never equal a real weekday or month day, so it is
// ignored for free.
func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

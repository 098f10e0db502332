package constants

// DateFormat is the canonical calendar-day layout used everywhere a day is
// stored or exchanged. Days are always local-timezone, no time component.
const DateFormat = "2006-01-02"

const (
	// StreakLookbackDays bounds the backward walk when computing the current
	// streak. Habits due less often than once per window may undercount; the
	// bound is deliberate and fixed.
	StreakLookbackDays = 30

	// RateWindowDays is the trailing window for completion-rate computation.
	RateWindowDays = 30

	// HeatmapWindowDays is the trailing window aggregated for the heatmap.
	HeatmapWindowDays = 180
)

const (
	// DefaultTimezone resolves to the system timezone.
	DefaultTimezone = "Local"

	// DefaultWeeklyDueDay is the weekday a weekly habit falls on when the
	// user picked none (0=Sunday..6=Saturday, so 1 is Monday).
	DefaultWeeklyDueDay = 1

	// DefaultMonthlyDueDay is the day of month a monthly habit falls on when
	// the user picked none.
	DefaultMonthlyDueDay = 1
)

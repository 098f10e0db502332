package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/ritual/internal/backup"
	"github.com/julianstephens/ritual/internal/clock"
	"github.com/julianstephens/ritual/internal/habit"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// Engine builds a habit engine whose clock follows the stored timezone
// setting, so "today" tracks the user's day rather than the server's.
func (c *Context) Engine() *habit.Engine {
	timezone := ""
	if settings, err := c.Store.GetSettings(); err == nil {
		timezone = settings.Timezone
	}

	sys, err := clock.NewSystem(timezone)
	if err != nil {
		logger.Warn("falling back to system timezone", "timezone", timezone, "error", err)
		sys, _ = clock.NewSystem("Local")
	}
	return habit.NewEngine(sys)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatFrequency renders a habit's recurrence rule as a human-readable string
func FormatFrequency(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		if len(h.CustomDays) > 0 {
			return "weekly on " + joinWeekdays(h.CustomDays)
		}
		return "weekly on Mon"
	case models.FrequencyMonthly:
		if len(h.CustomDays) > 0 {
			var days []string
			for _, d := range h.CustomDays {
				days = append(days, strconv.Itoa(d))
			}
			return "monthly on day " + strings.Join(days, ",")
		}
		return "monthly on day 1"
	case models.FrequencyCustom:
		if len(h.CustomDays) > 0 {
			return "on " + joinWeekdays(h.CustomDays)
		}
		return "no days selected"
	default:
		return "unknown"
	}
}

func joinWeekdays(days []int) string {
	var names []string
	for _, d := range days {
		if d >= 0 && d < len(weekdayNames) {
			names = append(names, weekdayNames[d])
		}
	}
	if len(names) == 0 {
		return "no valid days"
	}
	return strings.Join(names, ",")
}

// MarkGuardMessage returns the refusal shown when the user tries to mark a
// habit for a day other than today. Empty string means the day is fine.
func MarkGuardMessage(day, today string) string {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return fmt.Sprintf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	t, err := time.Parse("2006-01-02", today)
	if err != nil {
		return ""
	}

	if d.Before(t) {
		return "Can't change the past. You can't go back in time, but you can use this moment to build better habits for your future self. Focus on today!"
	}
	if d.After(t) {
		return "The future is not yet written. It is shaped by what you do today. Focus on your present habits, and tomorrow will take care of itself!"
	}
	return ""
}

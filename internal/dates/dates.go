// Package dates provides calendar arithmetic over canonical day strings
// (YYYY-MM-DD). All functions operate at day granularity; time-of-day is
// discarded before any comparison.
package dates

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/ritual/internal/constants"
)

// Format renders a time as a canonical calendar-day string.
func Format(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Parse parses a canonical calendar-day string. Strings that are not exactly
// YYYY-MM-DD are rejected.
func Parse(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar day %q: %w", day, err)
	}
	return t, nil
}

// Valid reports whether day is a well-formed calendar-day string.
func Valid(day string) bool {
	_, err := Parse(day)
	return err == nil
}

// AddDays shifts a day by n calendar days, handling month and year
// boundaries. n may be negative.
func AddDays(day string, n int) (string, error) {
	t, err := Parse(day)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// DayOfWeek returns the weekday of a day, 0=Sunday..6=Saturday.
func DayOfWeek(day string) (int, error) {
	t, err := Parse(day)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// DayOfMonth returns the day-of-month of a day, 1..31.
func DayOfMonth(day string) (int, error) {
	t, err := Parse(day)
	if err != nil {
		return 0, err
	}
	return t.Day(), nil
}

// WeekNumber returns the ISO 8601 week-numbering year and week of a day.
// Week 1 is the week containing the first Thursday of the year, so the
// returned year can differ from the calendar year near year boundaries.
func WeekNumber(day string) (year, week int, err error) {
	t, err := Parse(day)
	if err != nil {
		return 0, 0, err
	}
	year, week = t.ISOWeek()
	return year, week, nil
}

// IsPast reports whether day is strictly before today. Malformed input on
// either side yields false.
func IsPast(day, today string) bool {
	d, err := Parse(day)
	if err != nil {
		return false
	}
	t, err := Parse(today)
	if err != nil {
		return false
	}
	return d.Before(t)
}

// IsFuture reports whether day is strictly after today. Malformed input on
// either side yields false.
func IsFuture(day, today string) bool {
	d, err := Parse(day)
	if err != nil {
		return false
	}
	t, err := Parse(today)
	if err != nil {
		return false
	}
	return d.After(t)
}

// ParseWeekdays parses a comma-separated list of weekdays into 0=Sunday..6
// day numbers. Accepts short names ("mon"), full names ("monday"), and digits.
func ParseWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			days = append(days, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}

	sort.Ints(days)
	return days, nil
}

// ParseMonthDays parses a comma-separated list of day-of-month numbers (1..31)
func ParseMonthDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > 31 {
			return nil, fmt.Errorf("invalid day of month: %s", part)
		}
		days = append(days, num)
	}

	sort.Ints(days)
	return days, nil
}

// IsToday reports whether day names the same calendar day as today.
func IsToday(day, today string) bool {
	d, err := Parse(day)
	if err != nil {
		return false
	}
	t, err := Parse(today)
	if err != nil {
		return false
	}
	return d.Equal(t)
}

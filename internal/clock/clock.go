package clock

import (
	"fmt"
	"time"
)

// Clock supplies "now" so that anything date-dependent can be pinned in
// tests instead of reading the wall clock directly.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in a configured timezone. This ensures that
// "today" is determined by the user's configured timezone, not wherever the
// process happens to run.
type System struct {
	loc *time.Location
}

// NewSystem creates a system clock for the given IANA timezone name.
// "Local" or empty selects the system timezone.
func NewSystem(timezone string) (System, error) {
	if timezone == "" || timezone == "Local" {
		return System{loc: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return System{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return System{loc: loc}, nil
}

func (s System) Now() time.Time {
	return time.Now().In(s.loc)
}

// Fixed always reports the same instant. Test helper.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// FixedDay returns a Fixed clock pinned to noon on the given day, so that
// day arithmetic near midnight cannot flip the date.
func FixedDay(year int, month time.Month, day int) Fixed {
	return Fixed{T: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

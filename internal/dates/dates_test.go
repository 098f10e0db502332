package dates

import (
	"testing"
	"time"
)

func TestAddDays_MonthAndYearBoundaries(t *testing.T) {
	cases := []struct {
		day  string
		n    int
		want string
	}{
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-01-15", 0, "2024-01-15"},
		{"2024-01-15", 30, "2024-02-14"},
		{"2024-01-15", -30, "2023-12-16"},
	}

	for _, tc := range cases {
		got, err := AddDays(tc.day, tc.n)
		if err != nil {
			t.Fatalf("AddDays(%q, %d) failed: %v", tc.day, tc.n, err)
		}
		if got != tc.want {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tc.day, tc.n, got, tc.want)
		}
	}
}

func TestAddDays_MalformedInput(t *testing.T) {
	if _, err := AddDays("not-a-date", 1); err == nil {
		t.Error("Expected error for malformed day")
	}
	if _, err := AddDays("2024-13-01", 1); err == nil {
		t.Error("Expected error for invalid month")
	}
}

func TestDayOfWeek(t *testing.T) {
	// 2024-01-01 is a Monday
	dow, err := DayOfWeek("2024-01-01")
	if err != nil {
		t.Fatalf("DayOfWeek failed: %v", err)
	}
	if dow != 1 {
		t.Errorf("DayOfWeek(2024-01-01) = %d, want 1 (Monday)", dow)
	}

	// 2024-01-07 is a Sunday
	dow, err = DayOfWeek("2024-01-07")
	if err != nil {
		t.Fatalf("DayOfWeek failed: %v", err)
	}
	if dow != 0 {
		t.Errorf("DayOfWeek(2024-01-07) = %d, want 0 (Sunday)", dow)
	}
}

func TestDayOfMonth(t *testing.T) {
	dom, err := DayOfMonth("2024-02-29")
	if err != nil {
		t.Fatalf("DayOfMonth failed: %v", err)
	}
	if dom != 29 {
		t.Errorf("DayOfMonth(2024-02-29) = %d, want 29", dom)
	}
}

func TestWeekNumber_ISOConvention(t *testing.T) {
	cases := []struct {
		day      string
		wantYear int
		wantWeek int
	}{
		// Jan 1 2021 is a Friday; ISO places it in week 53 of 2020.
		{"2021-01-01", 2020, 53},
		// Dec 29 2025 is a Monday in ISO week 1 of 2026.
		{"2025-12-29", 2026, 1},
		{"2024-01-04", 2024, 1}, // first Thursday of 2024
	}

	for _, tc := range cases {
		year, week, err := WeekNumber(tc.day)
		if err != nil {
			t.Fatalf("WeekNumber(%q) failed: %v", tc.day, err)
		}
		if year != tc.wantYear || week != tc.wantWeek {
			t.Errorf("WeekNumber(%q) = (%d, %d), want (%d, %d)",
				tc.day, year, week, tc.wantYear, tc.wantWeek)
		}
	}
}

func TestPastTodayFuture(t *testing.T) {
	today := "2024-06-15"

	if !IsPast("2024-06-14", today) {
		t.Error("Expected 2024-06-14 to be past")
	}
	if IsPast("2024-06-15", today) {
		t.Error("Today is not past")
	}
	if !IsFuture("2024-06-16", today) {
		t.Error("Expected 2024-06-16 to be future")
	}
	if IsFuture("2024-06-15", today) {
		t.Error("Today is not future")
	}
	if !IsToday("2024-06-15", today) {
		t.Error("Expected IsToday for the same day")
	}

	// Malformed input fails closed on every comparison.
	if IsPast("yesterdayish", today) || IsFuture("tomorrowish", today) || IsToday("not-a-date", today) {
		t.Error("Malformed day must compare as neither past, future, nor today")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	want := "2024-03-07"
	parsed, err := Parse(want)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := Format(parsed); got != want {
		t.Errorf("Format(Parse(%q)) = %q", want, got)
	}
	if Format(time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)) != want {
		t.Error("Format must discard time-of-day")
	}
}

func TestParseWeekdays(t *testing.T) {
	cases := []struct {
		input string
		want  []int
	}{
		{"mon", []int{1}},
		{"monday", []int{1}},
		{"Mon,Wed,Fri", []int{1, 3, 5}},
		{"fri, mon", []int{1, 5}}, // sorted, whitespace tolerated
		{"0,6", []int{0, 6}},
		{"sunday,3", []int{0, 3}},
	}

	for _, tc := range cases {
		got, err := ParseWeekdays(tc.input)
		if err != nil {
			t.Fatalf("ParseWeekdays(%q) failed: %v", tc.input, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("ParseWeekdays(%q) = %v, want %v", tc.input, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("ParseWeekdays(%q) = %v, want %v", tc.input, got, tc.want)
				break
			}
		}
	}

	for _, bad := range []string{"", "someday", "7", "-1", "mon,8"} {
		if _, err := ParseWeekdays(bad); err == nil {
			t.Errorf("ParseWeekdays(%q) should fail", bad)
		}
	}
}

func TestParseMonthDays(t *testing.T) {
	got, err := ParseMonthDays("15, 1, 31")
	if err != nil {
		t.Fatalf("ParseMonthDays failed: %v", err)
	}
	want := []int{1, 15, 31}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParseMonthDays = %v, want %v", got, want)
		}
	}

	for _, bad := range []string{"0", "32", "mon", ""} {
		if _, err := ParseMonthDays(bad); err == nil {
			t.Errorf("ParseMonthDays(%q) should fail", bad)
		}
	}
}

func TestValid(t *testing.T) {
	for _, good := range []string{"2024-01-01", "1999-12-31"} {
		if !Valid(good) {
			t.Errorf("Valid(%q) = false, want true", good)
		}
	}
	for _, bad := range []string{"", "not-a-date", "2024-1-1", "2024/01/01", "2024-02-30"} {
		if Valid(bad) {
			t.Errorf("Valid(%q) = true, want false", bad)
		}
	}
}

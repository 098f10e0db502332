package cli

import (
	"strings"
	"testing"

	"github.com/julianstephens/ritual/internal/models"
)

func TestFormatFrequency(t *testing.T) {
	cases := []struct {
		name  string
		habit models.Habit
		want  string
	}{
		{"daily", models.Habit{Frequency: models.FrequencyDaily}, "daily"},
		{"weekly default", models.Habit{Frequency: models.FrequencyWeekly}, "weekly on Mon"},
		{"weekly custom", models.Habit{Frequency: models.FrequencyWeekly, CustomDays: []int{2, 4}}, "weekly on Tue,Thu"},
		{"monthly default", models.Habit{Frequency: models.FrequencyMonthly}, "monthly on day 1"},
		{"monthly custom", models.Habit{Frequency: models.FrequencyMonthly, CustomDays: []int{1, 15}}, "monthly on day 1,15"},
		{"custom", models.Habit{Frequency: models.FrequencyCustom, CustomDays: []int{1, 3, 5}}, "on Mon,Wed,Fri"},
		{"custom empty", models.Habit{Frequency: models.FrequencyCustom}, "no days selected"},
		{"unknown", models.Habit{Frequency: models.Frequency("lunar")}, "unknown"},
	}

	for _, tc := range cases {
		if got := FormatFrequency(tc.habit); got != tc.want {
			t.Errorf("%s: FormatFrequency = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestMarkGuardMessage(t *testing.T) {
	today := "2024-06-15"

	if msg := MarkGuardMessage(today, today); msg != "" {
		t.Errorf("Marking today should be allowed, got %q", msg)
	}
	if msg := MarkGuardMessage("2024-06-14", today); !strings.Contains(msg, "past") {
		t.Errorf("Expected past-day refusal, got %q", msg)
	}
	if msg := MarkGuardMessage("2024-06-16", today); !strings.Contains(msg, "future") {
		t.Errorf("Expected future-day refusal, got %q", msg)
	}
	if msg := MarkGuardMessage("junk", today); !strings.Contains(msg, "invalid date format") {
		t.Errorf("Expected format error, got %q", msg)
	}
}

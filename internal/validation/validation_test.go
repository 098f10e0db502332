package validation

import (
	"testing"
	"time"

	"github.com/julianstephens/ritual/internal/models"
)

func TestValidateHabits_NoConflicts(t *testing.T) {
	v := New()
	habits := []models.Habit{
		{ID: "h1", Name: "Meditate", Frequency: models.FrequencyDaily,
			CompletedDates: []string{"2024-01-14", "2024-01-15"}},
		{ID: "h2", Name: "Run", Frequency: models.FrequencyWeekly, CustomDays: []int{1, 3, 5}},
	}

	result := v.ValidateHabits(habits)
	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateHabits_MissingID(t *testing.T) {
	v := New()
	habits := []models.Habit{
		{Name: "Meditate", Frequency: models.FrequencyDaily},
	}

	result := v.ValidateHabits(habits)
	if !hasConflictType(result, ConflictMissingHabitID) {
		t.Errorf("Expected missing-ID conflict, got: %s", result.FormatReport())
	}
}

func TestValidateHabits_DuplicateIDsAndNames(t *testing.T) {
	v := New()
	habits := []models.Habit{
		{ID: "h1", Name: "Meditate", Frequency: models.FrequencyDaily},
		{ID: "h1", Name: "Run", Frequency: models.FrequencyDaily},
		{ID: "h2", Name: "Meditate", Frequency: models.FrequencyDaily},
	}

	result := v.ValidateHabits(habits)
	if !hasConflictType(result, ConflictDuplicateHabitID) {
		t.Error("Expected duplicate-ID conflict")
	}
	if !hasConflictType(result, ConflictDuplicateHabitName) {
		t.Error("Expected duplicate-name conflict")
	}
}

func TestValidateHabits_DeletedHabitsSkipped(t *testing.T) {
	v := New()
	now := time.Now()
	habits := []models.Habit{
		{ID: "h1", Name: "Meditate", Frequency: models.FrequencyDaily},
		{ID: "h1", Name: "Meditate", Frequency: models.FrequencyDaily, DeletedAt: &now},
	}

	result := v.ValidateHabits(habits)
	if result.HasConflicts() {
		t.Errorf("Soft-deleted duplicate must not conflict, got: %s", result.FormatReport())
	}
}

func TestValidateHabits_InvalidCompletionDate(t *testing.T) {
	v := New()
	habits := []models.Habit{
		{ID: "h1", Name: "Meditate", Frequency: models.FrequencyDaily,
			CompletedDates: []string{"2024-01-15", "garbage", "15/01/2024"}},
	}

	result := v.ValidateHabits(habits)
	count := 0
	for _, c := range result.Conflicts {
		if c.Type == ConflictInvalidDate {
			count++
		}
	}
	if count != 2 {
		t.Errorf("Expected 2 invalid-date conflicts, got %d: %s", count, result.FormatReport())
	}
}

func TestValidateHabits_DuplicateCompletion(t *testing.T) {
	v := New()
	habits := []models.Habit{
		{ID: "h1", Name: "Meditate", Frequency: models.FrequencyDaily,
			CompletedDates: []string{"2024-01-15", "2024-01-15"}},
	}

	result := v.ValidateHabits(habits)
	if !hasConflictType(result, ConflictDuplicateCompletion) {
		t.Errorf("Expected duplicate-completion conflict, got: %s", result.FormatReport())
	}
}

func TestValidateHabits_CustomDayRanges(t *testing.T) {
	v := New()

	weekly := []models.Habit{
		{ID: "h1", Name: "Run", Frequency: models.FrequencyWeekly, CustomDays: []int{0, 6}},
	}
	if result := v.ValidateHabits(weekly); result.HasConflicts() {
		t.Errorf("Weekly days 0 and 6 are valid, got: %s", result.FormatReport())
	}

	weeklyBad := []models.Habit{
		{ID: "h1", Name: "Run", Frequency: models.FrequencyWeekly, CustomDays: []int{7}},
	}
	if result := v.ValidateHabits(weeklyBad); !hasConflictType(result, ConflictInvalidCustomDay) {
		t.Error("Weekly day 7 must conflict")
	}

	monthly := []models.Habit{
		{ID: "h1", Name: "Bills", Frequency: models.FrequencyMonthly, CustomDays: []int{1, 31}},
	}
	if result := v.ValidateHabits(monthly); result.HasConflicts() {
		t.Errorf("Monthly days 1 and 31 are valid, got: %s", result.FormatReport())
	}

	monthlyBad := []models.Habit{
		{ID: "h1", Name: "Bills", Frequency: models.FrequencyMonthly, CustomDays: []int{0}},
	}
	if result := v.ValidateHabits(monthlyBad); !hasConflictType(result, ConflictInvalidCustomDay) {
		t.Error("Monthly day 0 must conflict")
	}
}

func TestValidateHabits_UnknownFrequency(t *testing.T) {
	v := New()
	habits := []models.Habit{
		{ID: "h1", Name: "Meditate", Frequency: "fortnightly"},
	}

	result := v.ValidateHabits(habits)
	if !hasConflictType(result, ConflictUnknownFrequency) {
		t.Errorf("Expected unknown-frequency conflict, got: %s", result.FormatReport())
	}
}

func TestValidateHabits_CompletionBeforeCreation(t *testing.T) {
	v := New()
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{ID: "h1", Name: "Meditate", Frequency: models.FrequencyDaily,
			CreatedAt:      created,
			CompletedDates: []string{"2024-01-05", "2024-01-12"}},
	}

	result := v.ValidateHabits(habits)
	if !hasConflictType(result, ConflictCompletionBeforeBorn) {
		t.Errorf("Expected completion-before-creation conflict, got: %s", result.FormatReport())
	}
}

func TestValidateHabitsAsOf_FutureCompletion(t *testing.T) {
	v := New()
	habits := []models.Habit{
		{ID: "h1", Name: "Meditate", Frequency: models.FrequencyDaily,
			CompletedDates: []string{"2024-01-15", "2024-02-01"}},
	}

	result := v.ValidateHabitsAsOf(habits, "2024-01-15")
	if !hasConflictType(result, ConflictFutureCompletion) {
		t.Errorf("Expected future-completion conflict, got: %s", result.FormatReport())
	}

	clean := v.ValidateHabitsAsOf(habits, "2024-02-01")
	if hasConflictType(clean, ConflictFutureCompletion) {
		t.Error("Completions on or before today must not conflict")
	}
}

func TestFormatReport(t *testing.T) {
	empty := Result{}
	if got := empty.FormatReport(); got != "No problems detected." {
		t.Errorf("FormatReport() = %q", got)
	}

	v := New()
	result := v.ValidateHabits([]models.Habit{{Name: "x", Frequency: models.FrequencyDaily}})
	if got := result.FormatReport(); got == "No problems detected." {
		t.Error("Expected a non-empty report")
	}
}

func hasConflictType(r Result, ct ConflictType) bool {
	for _, c := range r.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}

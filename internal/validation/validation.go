package validation

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/dates"
	"github.com/julianstephens/ritual/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictMissingHabitID       ConflictType = "missing_habit_id"
	ConflictDuplicateHabitID     ConflictType = "duplicate_habit_id"
	ConflictDuplicateHabitName   ConflictType = "duplicate_habit_name"
	ConflictInvalidDate          ConflictType = "invalid_date"
	ConflictDuplicateCompletion  ConflictType = "duplicate_completion"
	ConflictInvalidCustomDay     ConflictType = "invalid_custom_day"
	ConflictUnknownFrequency     ConflictType = "unknown_frequency"
	ConflictFutureCompletion     ConflictType = "future_completion"
	ConflictCompletionBeforeBorn ConflictType = "completion_before_created"
)

// Conflict represents a detected problem in stored habit data
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Items       []string // Habit names involved
	HabitIDs    []string // IDs of habits involved
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks habit records for integrity problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabits checks a set of habit records for integrity problems.
// Soft-deleted habits are skipped; archived habits are still checked since
// they can be restored to the active set at any time.
func (v *Validator) ValidateHabits(habits []models.Habit) Result {
	result := Result{Conflicts: []Conflict{}}

	idCount := make(map[string][]string)
	nameCount := make(map[string][]string)
	for _, h := range habits {
		if h.DeletedAt != nil {
			continue
		}

		if h.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingHabitID,
				Description: fmt.Sprintf("Habit \"%s\" has no ID", h.Name),
				Items:       []string{h.Name},
			})
		} else {
			idCount[h.ID] = append(idCount[h.ID], h.Name)
		}

		if h.Name != "" {
			nameCount[h.Name] = append(nameCount[h.Name], h.ID)
		}
	}

	for id, names := range idCount {
		if len(names) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitID,
				Description: fmt.Sprintf("Duplicate habit ID: %s (names: %v)", id, names),
				Items:       names,
				HabitIDs:    []string{id},
			})
		}
	}

	for name, ids := range nameCount {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("Duplicate habit name: \"%s\" (IDs: %v)", name, ids),
				Items:       []string{name},
				HabitIDs:    ids,
			})
		}
	}

	for _, h := range habits {
		if h.DeletedAt != nil {
			continue
		}
		result.Conflicts = append(result.Conflicts, v.validateHabit(h)...)
	}

	return result
}

func (v *Validator) validateHabit(h models.Habit) []Conflict {
	var conflicts []Conflict

	if !models.KnownFrequency(h.Frequency) {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictUnknownFrequency,
			Description: fmt.Sprintf("Habit \"%s\" has unrecognized frequency %q", h.Name, h.Frequency),
			Items:       []string{h.Name},
			HabitIDs:    []string{h.ID},
		})
	}

	lo, hi := customDayRange(h.Frequency)
	for _, d := range h.CustomDays {
		if d < lo || d > hi {
			conflicts = append(conflicts, Conflict{
				Type: ConflictInvalidCustomDay,
				Description: fmt.Sprintf("Habit \"%s\" has custom day %d outside %d..%d",
					h.Name, d, lo, hi),
				Items:    []string{h.Name},
				HabitIDs: []string{h.ID},
			})
		}
	}

	seen := make(map[string]bool, len(h.CompletedDates))
	for _, day := range h.CompletedDates {
		if !dates.Valid(day) {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Habit \"%s\" has invalid completion date: %q", h.Name, day),
				Date:        day,
				Items:       []string{h.Name},
				HabitIDs:    []string{h.ID},
			})
			continue
		}
		if seen[day] {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateCompletion,
				Description: fmt.Sprintf("Habit \"%s\" has duplicate completion for %s", h.Name, day),
				Date:        day,
				Items:       []string{h.Name},
				HabitIDs:    []string{h.ID},
			})
		}
		seen[day] = true

		if !h.CreatedAt.IsZero() {
			created := h.CreatedAt.Format(constants.DateFormat)
			if day < created {
				conflicts = append(conflicts, Conflict{
					Type: ConflictCompletionBeforeBorn,
					Description: fmt.Sprintf("Habit \"%s\" has completion %s before its creation on %s",
						h.Name, day, created),
					Date:     day,
					Items:    []string{h.Name},
					HabitIDs: []string{h.ID},
				})
			}
		}
	}

	return conflicts
}

// ValidateHabitsAsOf additionally flags completions recorded for days after
// the given day. Future entries never arise through the CLI, which only marks
// today, but an imported or hand-edited store can carry them.
func (v *Validator) ValidateHabitsAsOf(habits []models.Habit, today string) Result {
	result := v.ValidateHabits(habits)
	if !dates.Valid(today) {
		return result
	}

	for _, h := range habits {
		if h.DeletedAt != nil {
			continue
		}
		for _, day := range h.CompletedDates {
			if dates.Valid(day) && day > today {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictFutureCompletion,
					Description: fmt.Sprintf("Habit \"%s\" has completion %s after today (%s)", h.Name, day, today),
					Date:        day,
					Items:       []string{h.Name},
					HabitIDs:    []string{h.ID},
				})
			}
		}
	}

	return result
}

// customDayRange returns the inclusive bounds a custom day entry must fall
// within for the given frequency. Weekday-based frequencies use 0..6 with
// Sunday as 0; monthly uses the day of month 1..31.
func customDayRange(f models.Frequency) (int, int) {
	if f == models.FrequencyMonthly {
		return 1, 31
	}
	return 0, 6
}

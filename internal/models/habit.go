package models

import "time"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyCustom  Frequency = "custom"
)

// KnownFrequency reports whether f is one of the recognized recurrence kinds.
// Habits with an unrecognized frequency are never due (fail closed).
func KnownFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
		return true
	}
	return false
}

// Category groups habits for display only; it never affects scheduling.
type Category string

const (
	CategoryFitness      Category = "fitness"
	CategoryHealth       Category = "health"
	CategoryProductivity Category = "productivity"
	CategoryMindfulness  Category = "mindfulness"
	CategoryLearning     Category = "learning"
	CategorySocial       Category = "social"
	CategoryNutrition    Category = "nutrition"
	CategoryCreativity   Category = "creativity"
	CategorySleep        Category = "sleep"
	CategoryHygiene      Category = "hygiene"
	CategoryFinance      Category = "finance"
	CategoryReading      Category = "reading"
)

// Categories lists the closed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryFitness, CategoryHealth, CategoryProductivity,
		CategoryMindfulness, CategoryLearning, CategorySocial,
		CategoryNutrition, CategoryCreativity, CategorySleep,
		CategoryHygiene, CategoryFinance, CategoryReading,
	}
}

// Habit represents a recurring behavior the user tracks.
//
// CustomDays holds day-of-week values (0=Sunday..6=Saturday) for weekly and
// custom frequencies, and day-of-month values (1..31) for monthly. It is
// empty for daily habits. Out-of-range values are tolerated; they simply
// never match a real date.
//
// CompletedDates holds calendar days (YYYY-MM-DD) the user marked done,
// each at most once, appended in toggle order.
type Habit struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Category       Category   `json:"category,omitempty"`
	Frequency      Frequency  `json:"frequency"`
	CustomDays     []int      `json:"custom_days,omitempty"`
	CompletedDates []string   `json:"completed_dates,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ArchivedAt     *time.Time `json:"archived_at,omitempty"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

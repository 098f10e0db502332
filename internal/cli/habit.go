package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ritual/internal/dates"
	"github.com/julianstephens/ritual/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Show    HabitShowCmd    `cmd:"" help:"Show a habit's details and streaks."`
	Mark    HabitMarkCmd    `cmd:"" help:"Mark a habit as done for today."`
	Unmark  HabitUnmarkCmd  `cmd:"" help:"Remove today's completion for a habit."`
	Today   HabitTodayCmd   `cmd:"" help:"Show today's due habits and their status."`
	Log     HabitLogCmd     `cmd:"" help:"Show habit history as an ASCII grid."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Frequency   string `help:"Recurrence: daily, weekly, monthly, or custom." default:"daily" enum:"daily,weekly,monthly,custom"`
	Days        string `help:"Due days: weekday names or numbers for weekly/custom, day-of-month numbers for monthly (comma separated)." default:""`
	Category    string `help:"Category label (e.g. fitness, mindfulness)." default:""`
	Description string `help:"Optional description." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	frequency := models.Frequency(c.Frequency)

	var customDays []int
	if c.Days != "" {
		var err error
		if frequency == models.FrequencyMonthly {
			customDays, err = dates.ParseMonthDays(c.Days)
		} else {
			customDays, err = dates.ParseWeekdays(c.Days)
		}
		if err != nil {
			return err
		}
	}
	if frequency == models.FrequencyCustom && len(customDays) == 0 {
		return fmt.Errorf("custom frequency requires --days")
	}

	h := models.Habit{
		ID:          uuid.New().String(),
		Name:        c.Name,
		Description: c.Description,
		Category:    models.Category(strings.ToLower(c.Category)),
		Frequency:   frequency,
		CustomDays:  customDays,
		CreatedAt:   time.Now(),
	}

	if err := ctx.Store.AddHabit(h); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", c.Name, FormatFrequency(h))
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	engine := ctx.Engine()
	for _, h := range habits {
		status := ""
		if h.DeletedAt != nil {
			status = " [DELETED]"
		} else if h.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}
		streak := engine.Streak(h)
		fmt.Printf("%-24s %-20s streak %d%s\n", h.Name, FormatFrequency(h), streak.Current, status)
	}

	return nil
}

type HabitShowCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	h, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	engine := ctx.Engine()
	streak := engine.Streak(h)
	rate := engine.CompletionRate(h)

	fmt.Printf("Name:        %s\n", h.Name)
	if h.Description != "" {
		fmt.Printf("Description: %s\n", h.Description)
	}
	if h.Category != "" {
		fmt.Printf("Category:    %s\n", h.Category)
	}
	fmt.Printf("Frequency:   %s\n", FormatFrequency(h))
	fmt.Printf("Created:     %s\n", h.CreatedAt.Format("2006-01-02"))
	if h.ArchivedAt != nil {
		fmt.Printf("Archived:    %s\n", h.ArchivedAt.Format("2006-01-02"))
	}
	fmt.Println()
	fmt.Printf("Current streak: %d\n", streak.Current)
	fmt.Printf("Longest streak: %d\n", streak.Longest)
	fmt.Printf("30-day rate:    %.0f%%\n", rate*100)
	fmt.Printf("Completions:    %d\n", len(h.CompletedDates))

	if engine.IsDue(h, engine.Today()) {
		if engine.IsCompleted(h, engine.Today()) {
			fmt.Println("Due today:      done")
		} else {
			fmt.Println("Due today:      not yet")
		}
	}

	return nil
}

type HabitMarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitMarkCmd) Run(ctx *Context) error {
	h, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	engine := ctx.Engine()
	today := engine.Today()
	day := c.Date
	if day == "" {
		day = today
	}

	// Completions can only be recorded for the current day.
	if msg := MarkGuardMessage(day, today); msg != "" {
		fmt.Println(msg)
		return nil
	}

	if engine.IsCompleted(h, day) {
		fmt.Printf("Habit %q is already marked for %s\n", c.Name, day)
		return nil
	}

	updated := engine.MarkCompleted(h, day)
	if err := ctx.Store.UpdateHabit(updated); err != nil {
		return err
	}

	streak := engine.Streak(updated)
	fmt.Printf("Marked habit %q for %s (streak: %d)\n", c.Name, day, streak.Current)
	return nil
}

type HabitUnmarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitUnmarkCmd) Run(ctx *Context) error {
	h, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	engine := ctx.Engine()
	today := engine.Today()
	day := c.Date
	if day == "" {
		day = today
	}

	if msg := MarkGuardMessage(day, today); msg != "" {
		fmt.Println(msg)
		return nil
	}

	if !engine.IsCompleted(h, day) {
		fmt.Printf("Habit %q is not marked for %s\n", c.Name, day)
		return nil
	}

	updated := engine.Unmark(h, day)
	if err := ctx.Store.UpdateHabit(updated); err != nil {
		return err
	}

	fmt.Printf("Unmarked habit %q for %s\n", c.Name, day)
	return nil
}

type HabitTodayCmd struct {
	All bool `help:"Show all active habits, not only those due today."`
}

func (c *HabitTodayCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	engine := ctx.Engine()
	today := engine.Today()

	fmt.Printf("Habits for %s:\n\n", today)
	done, due := 0, 0
	for _, h := range habits {
		isDue := engine.IsDue(h, today)
		if !isDue && !c.All {
			continue
		}

		status := "[ ]"
		if engine.IsCompleted(h, today) {
			status = "[x]"
		}
		marker := ""
		if !isDue {
			marker = " (not due)"
		} else {
			due++
			if engine.IsCompleted(h, today) {
				done++
			}
		}
		fmt.Printf("%s %s%s\n", status, h.Name, marker)
	}

	if due == 0 {
		fmt.Println("Nothing due today.")
		return nil
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, due)
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}

	var selected []models.Habit
	if c.Habit != "" {
		for _, h := range habits {
			if h.Name == c.Habit {
				selected = []models.Habit{h}
				break
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
	} else {
		selected = habits
	}

	if len(selected) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	engine := ctx.Engine()
	today := engine.Today()
	start, err := dates.AddDays(today, -(c.Days - 1))
	if err != nil {
		return err
	}

	window := make([]string, 0, c.Days)
	day := start
	for i := 0; i < c.Days; i++ {
		window = append(window, day)
		if day, err = dates.AddDays(day, 1); err != nil {
			return err
		}
	}

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const nameWidth = 20
	fmt.Print(padName("Habit", nameWidth))
	for _, d := range window {
		fmt.Printf(" %5s", d[5:7]+"/"+d[8:10])
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+6*len(window)))

	// x done, . due but missed, blank not due.
	for _, h := range selected {
		fmt.Print(padName(h.Name, nameWidth))
		for _, d := range window {
			switch {
			case engine.IsCompleted(h, d):
				fmt.Print("   x  ")
			case engine.IsDue(h, d):
				fmt.Print("   .  ")
			default:
				fmt.Print("      ")
			}
		}
		fmt.Println()
	}

	return nil
}

func padName(name string, width int) string {
	if len(name) > width {
		return name[:width-3] + "..."
	}
	return name + strings.Repeat(" ", width-len(name))
}

type HabitArchiveCmd struct {
	Name      string `arg:"" help:"Habit name to archive."`
	Unarchive bool   `help:"Unarchive the habit instead."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	h, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.Unarchive {
		if err := ctx.Store.UnarchiveHabit(h.ID); err != nil {
			return err
		}
		fmt.Printf("Unarchived habit: %s\n", c.Name)
		return nil
	}

	if err := ctx.Store.ArchiveHabit(h.ID); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s\n", c.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	h, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteHabit(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(This is a soft delete. Use 'ritual habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}

	var target *models.Habit
	for i := range habits {
		if habits[i].Name == c.Name && habits[i].DeletedAt != nil {
			target = &habits[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("deleted habit %q not found", c.Name)
	}

	if err := ctx.Store.RestoreHabit(target.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.Name)
	return nil
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/ritual/internal/dates"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Frequency: "daily"}
		m.form = newHabitForm(m.habitForm)
		m.formError = ""
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.toggleHabit(msg.ID)
		return m, nil

	case habitlist.ArchiveHabitMsg:
		m.habitToAct = msg.ID
		m.state = StateConfirmArchive
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToAct = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case habitlist.RestoreHabitMsg:
		if err := m.store.RestoreHabit(msg.ID); err == nil {
			m.refreshHabits()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveComponent(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateAddHabit:
		if msg.String() == "esc" {
			m.state = StateHabits
			return m, nil
		}
		return m.updateActiveComponent(msg)

	case StateConfirmDelete:
		switch msg.String() {
		case "y", "Y":
			if err := m.store.DeleteHabit(m.habitToAct); err == nil {
				m.refreshHabits()
			}
			m.state = StateHabits
		case "n", "N", "esc":
			m.state = StateHabits
		}
		return m, nil

	case StateConfirmArchive:
		switch msg.String() {
		case "y", "Y":
			if err := m.store.ArchiveHabit(m.habitToAct); err == nil {
				m.refreshHabits()
			}
			m.state = StateHabits
		case "n", "N", "esc":
			m.state = StateHabits
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.state = nextMainState(m.state, 1)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = nextMainState(m.state, -1)
		return m, nil
	}

	return m.updateActiveComponent(msg)
}

func nextMainState(s SessionState, delta int) SessionState {
	const mainStates = 3 // habits, heatmap, stats
	next := (int(s) + delta + mainStates) % mainStates
	return SessionState(next)
}

func (m Model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd

	case StateAddHabit:
		form, formCmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		if m.form.State == huh.StateCompleted {
			if err := m.createHabit(); err != nil {
				m.formError = err.Error()
				m.form = newHabitForm(m.habitForm)
				return m, m.form.Init()
			}
			m.refreshHabits()
			m.state = StateHabits
			return m, nil
		}
		return m, formCmd
	}

	return m, nil
}

// toggleHabit flips today's completion for the habit and persists it.
func (m *Model) toggleHabit(id string) {
	h, err := m.store.GetHabit(id)
	if err != nil {
		return
	}

	today := m.engine.Today()
	if m.engine.IsCompleted(h, today) {
		h = m.engine.Unmark(h, today)
	} else {
		h = m.engine.MarkCompleted(h, today)
	}

	if err := m.store.UpdateHabit(h); err != nil {
		return
	}
	m.refreshHabits()
}

func (m *Model) createHabit() error {
	name := strings.TrimSpace(m.habitForm.Name)
	if _, err := m.store.GetHabitByName(name); err == nil {
		return fmt.Errorf("habit %q already exists", name)
	}

	frequency := models.Frequency(m.habitForm.Frequency)

	var customDays []int
	if strings.TrimSpace(m.habitForm.Days) != "" {
		var err error
		if frequency == models.FrequencyMonthly {
			customDays, err = dates.ParseMonthDays(m.habitForm.Days)
		} else {
			customDays, err = dates.ParseWeekdays(m.habitForm.Days)
		}
		if err != nil {
			return err
		}
	}

	return m.store.AddHabit(models.Habit{
		ID:         uuid.New().String(),
		Name:       name,
		Category:   models.Category(strings.ToLower(strings.TrimSpace(m.habitForm.Category))),
		Frequency:  frequency,
		CustomDays: customDays,
		CreatedAt:  time.Now(),
	})
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Monthly", "monthly"),
					huh.NewOption("Custom days", "custom"),
				).
				Value(&fm.Frequency),
			huh.NewInput().
				Title("Days").
				Description("Weekly/custom: mon,wed,fri · Monthly: 1,15 · Daily: leave empty").
				Value(&fm.Days),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

func categoryOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("None", "")}
	for _, c := range models.Categories() {
		opts = append(opts, huh.NewOption(capitalize(string(c)), string(c)))
	}
	return opts
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

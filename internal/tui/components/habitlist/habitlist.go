// Package habitlist renders the interactive habit list: due and completion
// markers for today, streak counts, and key bindings that emit messages for
// the parent model to act on.
package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/ritual/internal/habit"
	"github.com/julianstephens/ritual/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type ArchiveHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type RestoreHabitMsg struct {
	ID string
}

type Item struct {
	Habit     models.Habit
	IsDue     bool
	IsMarked  bool
	IsDeleted bool
	Streak    habit.StreakInfo
}

func (i Item) Title() string {
	title := i.Habit.Name
	switch {
	case i.IsDeleted:
		title = "[DELETED] " + title
	case i.Habit.ArchivedAt != nil:
		title = "[ARCHIVED] " + title
	case i.IsMarked:
		title = "✓ " + title
	case i.IsDue:
		title = "○ " + title
	default:
		title = "  " + title
	}
	return title
}

func (i Item) Description() string {
	if i.IsDeleted {
		return "can restore with 'r'"
	}
	if i.Habit.ArchivedAt != nil {
		return "archived"
	}

	status := "not due today"
	if i.IsMarked {
		status = "done today"
	} else if i.IsDue {
		status = "due today"
	}
	return fmt.Sprintf("%s · streak %d (best %d)", status, i.Streak.Current, i.Streak.Longest)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add     key.Binding
	Toggle  key.Binding
	Archive key.Binding
	Delete  key.Binding
	Restore key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle done"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, engine *habit.Engine, width, height int) Model {
	l := list.New(buildItems(habits, engine), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	bindings := func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Archive, keys.Delete, keys.Restore}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	return Model{list: l, keys: keys}
}

func buildItems(habits []models.Habit, engine *habit.Engine) []list.Item {
	today := engine.Today()
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		isDeleted := h.DeletedAt != nil
		items[i] = Item{
			Habit:     h,
			IsDue:     !isDeleted && h.ArchivedAt == nil && engine.IsDue(h, today),
			IsMarked:  !isDeleted && h.ArchivedAt == nil && engine.IsCompleted(h, today),
			IsDeleted: isDeleted,
			Streak:    engine.Streak(h),
		}
	}
	return items
}

func (m *Model) SetHabits(habits []models.Habit, engine *habit.Engine) {
	m.list.SetItems(buildItems(habits, engine))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if !i.IsDeleted && i.Habit.ArchivedAt == nil {
					return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Archive):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if !i.IsDeleted && i.Habit.ArchivedAt == nil {
					return m, func() tea.Msg { return ArchiveHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if !i.IsDeleted {
					return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.IsDeleted {
					return m, func() tea.Msg { return RestoreHabitMsg{ID: i.Habit.ID} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

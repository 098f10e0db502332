// Package tui implements the interactive terminal interface: the habit list
// with today's due markers, the aggregate heatmap, and per-habit stats.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ritual/internal/habit"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/storage"
	"github.com/julianstephens/ritual/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateHeatmap
	StateStats
	StateAddHabit
	StateConfirmDelete
	StateConfirmArchive
)

type HabitFormModel struct {
	Name      string
	Frequency string
	Days      string
	Category  string
}

type Model struct {
	store  storage.Provider
	engine *habit.Engine

	state         SessionState
	keys          KeyMap
	help          help.Model
	habits        []models.Habit
	habitList     habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	formError     string
	habitToAct    string
	quitting      bool
	width, height int
}

func NewModel(store storage.Provider, engine *habit.Engine) Model {
	habits, err := store.GetAllHabits(false, true)
	if err != nil {
		habits = nil
	}

	return Model{
		store:     store,
		engine:    engine,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habits:    habits,
		habitList: habitlist.New(habits, engine, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab},
		{m.keys.Help, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshHabits reloads the habit list from the store after a mutation.
func (m *Model) refreshHabits() {
	habits, err := m.store.GetAllHabits(false, true)
	if err != nil {
		return
	}
	m.habits = habits
	m.habitList.SetHabits(habits, m.engine)
}

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ritual/internal/dates"
	"github.com/julianstephens/ritual/internal/models"
)

const heatmapWeeks = 12

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = m.habitList.View()
	case StateHeatmap:
		content = m.viewHeatmap()
	case StateStats:
		content = m.viewStats()
	case StateAddHabit:
		content = m.viewAddHabit()
	case StateConfirmDelete:
		return m.viewConfirm("Delete habit %q?", "Completions are kept and the habit can be restored later.")
	case StateConfirmArchive:
		return m.viewConfirm("Archive habit %q?", "Archived habits stop appearing in the daily list.")
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		"",
		content,
		"",
		m.help.View(m),
	))
}

func (m Model) viewTabs() string {
	tabs := []struct {
		label string
		state SessionState
	}{
		{"Habits", StateHabits},
		{"Heatmap", StateHeatmap},
		{"Stats", StateStats},
	}

	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		style := inactiveTabStyle
		if m.state == t.state {
			style = activeTabStyle
		}
		rendered[i] = style.Render(t.label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewAddHabit() string {
	if m.form == nil {
		return ""
	}
	view := m.form.View()
	if m.formError != "" {
		view = dangerStyle.Render(m.formError) + "\n\n" + view
	}
	return view
}

func (m Model) viewConfirm(question, note string) string {
	name := m.habitToAct
	for _, h := range m.habits {
		if h.ID == m.habitToAct {
			name = h.Name
			break
		}
	}

	dialog := lipgloss.JoinVertical(
		lipgloss.Center,
		dangerStyle.Render(fmt.Sprintf(question, name)),
		dimStyle.Render(note),
		"",
		"(y)es · (n)o",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

// viewHeatmap renders the aggregate completion grid, oldest week on the left,
// in the style of a contribution graph.
func (m Model) viewHeatmap() string {
	counts := m.engine.Heatmap(m.habits)
	today := m.engine.Today()

	weekday, err := dates.DayOfWeek(today)
	if err != nil {
		return dangerStyle.Render(err.Error())
	}

	days := heatmapWeeks*7 - (6 - weekday)
	start, err := dates.AddDays(today, -(days - 1))
	if err != nil {
		return dangerStyle.Render(err.Error())
	}

	labels := [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var b strings.Builder
	for row := 0; row < 7; row++ {
		b.WriteString(dimStyle.Render(labels[row]) + " ")
		day, err := dates.AddDays(start, row)
		if err != nil {
			return dangerStyle.Render(err.Error())
		}
		for col := 0; col < heatmapWeeks; col++ {
			if dates.IsFuture(day, today) {
				break
			}
			b.WriteString(heatCell(counts[day]) + " ")
			if day, err = dates.AddDays(day, 7); err != nil {
				return dangerStyle.Render(err.Error())
			}
		}
		b.WriteString("\n")
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("\n%d completions in the last %d days", total, len(counts))))
	return b.String()
}

func heatCell(count int) string {
	level := 0
	switch {
	case count == 0:
		level = 0
	case count == 1:
		level = 1
	case count <= 3:
		level = 2
	case count <= 5:
		level = 3
	default:
		level = 4
	}
	return heatStyles[level].Render("■")
}

func (m Model) viewStats() string {
	active := make([]models.Habit, 0, len(m.habits))
	for _, h := range m.habits {
		if h.DeletedAt == nil && h.ArchivedAt == nil {
			active = append(active, h)
		}
	}
	if len(active) == 0 {
		return dimStyle.Render("No habits yet.")
	}

	type row struct {
		name    string
		current int
		longest int
		rate    float64
	}

	rows := make([]row, 0, len(active))
	for _, h := range active {
		streak := m.engine.Streak(h)
		rows = append(rows, row{
			name:    h.Name,
			current: streak.Current,
			longest: streak.Longest,
			rate:    m.engine.CompletionRate(h),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].current != rows[j].current {
			return rows[i].current > rows[j].current
		}
		return rows[i].rate > rows[j].rate
	})

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-24s %8s %8s %10s", "Habit", "Streak", "Longest", "30d rate")))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-24s %8d %8d %9.0f%%\n", r.name, r.current, r.longest, r.rate*100))
	}
	return b.String()
}

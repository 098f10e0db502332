package cli

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/dates"
)

type HeatmapCmd struct {
	Weeks int `help:"Number of trailing weeks to render." default:"12"`
}

// Run renders the aggregate completion heatmap as a weekday-by-week grid,
// oldest week on the left, in the style of a contribution graph.
func (cmd *HeatmapCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}

	engine := ctx.Engine()
	counts := engine.Heatmap(habits)
	today := engine.Today()

	weekday, err := dates.DayOfWeek(today)
	if err != nil {
		return err
	}

	// The grid ends on the current week's Saturday column; days after today
	// simply have no cell.
	days := cmd.Weeks*7 - (6 - weekday)
	start, err := dates.AddDays(today, -(days - 1))
	if err != nil {
		return err
	}

	labels := [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for row := 0; row < 7; row++ {
		fmt.Printf("%s ", labels[row])
		day, err := dates.AddDays(start, row)
		if err != nil {
			return err
		}
		for col := 0; col < cmd.Weeks; col++ {
			if dates.IsFuture(day, today) {
				break
			}
			fmt.Printf("%s ", heatCell(counts[day]))
			if day, err = dates.AddDays(day, 7); err != nil {
				return err
			}
		}
		fmt.Println()
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Printf("\n%d completions in the last %d days\n", total, len(counts))
	return nil
}

func heatCell(count int) string {
	switch {
	case count == 0:
		return "·"
	case count == 1:
		return "░"
	case count <= 3:
		return "▒"
	case count <= 5:
		return "▓"
	default:
		return "█"
	}
}

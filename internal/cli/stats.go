package cli

import (
	"fmt"
	"sort"
)

type StatsCmd struct {
	Archived bool `help:"Include archived habits."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived, false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	engine := ctx.Engine()

	type row struct {
		name    string
		current int
		longest int
		rate    float64
	}

	rows := make([]row, 0, len(habits))
	totalCompletions := 0
	for _, h := range habits {
		streak := engine.Streak(h)
		rows = append(rows, row{
			name:    h.Name,
			current: streak.Current,
			longest: streak.Longest,
			rate:    engine.CompletionRate(h),
		})
		totalCompletions += len(h.CompletedDates)
	}

	// Best current streak first; rate breaks ties.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].current != rows[j].current {
			return rows[i].current > rows[j].current
		}
		return rows[i].rate > rows[j].rate
	})

	fmt.Printf("%-24s %8s %8s %10s\n", "Habit", "Streak", "Longest", "30d rate")
	for _, r := range rows {
		fmt.Printf("%-24s %8d %8d %9.0f%%\n", r.name, r.current, r.longest, r.rate*100)
	}

	fmt.Printf("\n%d habits, %d completions recorded\n", len(habits), totalCompletions)
	return nil
}

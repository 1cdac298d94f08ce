package cli

import "fmt"

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	stats := ctx.Engine.Stats()
	level := ctx.Engine.LevelInfo()

	fmt.Printf("Level %d  %s %.0f%%\n", level.Level, progressBar(stats.XP-level.CurrentLevelFloor, level.NextLevelFloor-level.CurrentLevelFloor), level.ProgressPct)
	fmt.Printf("XP:            %d (next level at %d)\n", stats.XP, level.NextLevelFloor)
	fmt.Printf("Coins:         %d\n", stats.Coins)
	fmt.Printf("Streak freezes: %d\n", stats.StreakFreezes)
	fmt.Printf("Badges:        %d unlocked\n", len(ctx.Engine.Badges()))
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	statuses := ctx.Engine.TodayStatus()
	today := ctx.Engine.Today()

	fmt.Printf("Habits for %s:\n\n", today)
	if len(statuses) == 0 {
		fmt.Println("No habits yet. Add one with 'habitquest habit add'.")
		return nil
	}

	done := 0
	scheduled := 0
	for _, s := range statuses {
		if !s.Scheduled {
			fmt.Printf(" ⊘  %s (not scheduled today)\n", s.Habit.Name)
			continue
		}
		scheduled++
		marker := "[ ]"
		if s.Completed {
			marker = "[x]"
			done++
		}
		progress := ""
		if s.Habit.Target > 1 {
			progress = fmt.Sprintf(" (%d/%d %s)", s.Value, s.Habit.Target, s.Habit.Unit)
		}
		streak := ""
		if s.Habit.Streak > 0 {
			streak = fmt.Sprintf("  🔥%d", s.Habit.Streak)
		}
		fmt.Printf("%s %s%s%s\n", marker, s.Habit.Name, progress, streak)
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, scheduled)
	if rating, ok := ctx.Engine.MoodFor(today); ok {
		fmt.Printf("Mood: %d/5\n", rating)
	} else {
		fmt.Println("Mood: not logged yet ('habitquest mood <1-5>')")
	}
	return nil
}

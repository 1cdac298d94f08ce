package cli

import "fmt"

type CheckinCmd struct {
	Name string `arg:"" help:"Habit name to check in."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	habit, err := ctx.Engine.HabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	date := c.Date
	if date == "" {
		date = ctx.Engine.Today()
	}

	notices, err := ctx.Engine.CheckIn(habit.ID, date)
	if err != nil {
		return err
	}
	if len(notices) == 0 {
		fmt.Printf("%s is already done for %s.\n", c.Name, date)
		return nil
	}
	PrintNotices(notices)
	return nil
}

type MoodCmd struct {
	Rating int `arg:"" help:"Mood rating, 1 (rough) to 5 (great)."`
}

func (c *MoodCmd) Run(ctx *Context) error {
	notices, err := ctx.Engine.LogMood(c.Rating)
	if err != nil {
		return err
	}
	PrintNotices(notices)
	return nil
}

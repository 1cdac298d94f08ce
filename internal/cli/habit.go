package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitquest/internal/engine"
	"github.com/julianstephens/habitquest/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit a habit interactively."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive or unarchive a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit permanently."`
	Move    HabitMoveCmd    `cmd:"" help:"Change a habit's display position."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name. Omit for an interactive form."`
	Description string `help:"Optional description."`
	Category    string `help:"Category for quests and insights (e.g. Fitness)."`
	Type        string `help:"positive or negative." default:"positive"`
	Frequency   string `help:"daily, weekly, or specific_days." default:"daily"`
	Days        string `help:"Weekdays for specific_days (e.g. mon,wed,fri)."`
	Target      int    `help:"Completions per day to count as done." default:"1"`
	Unit        string `help:"Unit of progress (e.g. glasses, pages)." default:"times"`
	Start       string `help:"First active date (YYYY-MM-DD)."`
	End         string `help:"Last active date (YYYY-MM-DD)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	params := engine.HabitParams{
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Type:        models.HabitType(c.Type),
		Frequency:   models.HabitFrequency(c.Frequency),
		Target:      c.Target,
		Unit:        c.Unit,
		StartDate:   c.Start,
		EndDate:     c.End,
	}
	if c.Days != "" {
		days, err := ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		params.Days = days
	}

	if c.Name == "" {
		if err := runHabitForm(&params); err != nil {
			return err
		}
	}

	if _, err := ctx.Engine.HabitByName(params.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", params.Name)
	}

	habit, err := ctx.Engine.AddHabit(params)
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (%s)\n", habit.Name, FormatFrequency(habit))
	return nil
}

// runHabitForm fills habit params through an interactive form.
func runHabitForm(p *engine.HabitParams) error {
	var daysField, targetField string
	if p.Target > 0 {
		targetField = strconv.Itoa(p.Target)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&p.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&p.Description),
			huh.NewInput().
				Title("Category").
				Description("Used for quests and mood insights. Optional.").
				Value(&p.Category),
			huh.NewSelect[models.HabitType]().
				Title("Type").
				Options(
					huh.NewOption("Build (positive)", models.HabitPositive),
					huh.NewOption("Break (negative)", models.HabitNegative),
				).
				Value(&p.Type),
			huh.NewSelect[models.HabitFrequency]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", models.FrequencyDaily),
					huh.NewOption("Weekly", models.FrequencyWeekly),
					huh.NewOption("Specific days", models.FrequencySpecificDays),
				).
				Value(&p.Frequency),
			huh.NewInput().
				Title("Days").
				Description("For specific days: comma-separated (mon,wed,fri)").
				Value(&daysField).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := ParseWeekdays(s)
					return err
				}),
			huh.NewInput().
				Title("Daily target").
				Value(&targetField).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 1 {
						return fmt.Errorf("target must be at least 1")
					}
					return nil
				}),
			huh.NewInput().
				Title("Unit").
				Value(&p.Unit),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	if daysField != "" {
		days, err := ParseWeekdays(daysField)
		if err != nil {
			return err
		}
		p.Days = days
	}
	target, err := strconv.Atoi(targetField)
	if err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}
	p.Target = target
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Engine.Habits(c.Archived)
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range habits {
		status := ""
		if h.Archived {
			status = " [ARCHIVED]"
		}
		streak := ""
		if h.Streak > 0 {
			streak = fmt.Sprintf("  🔥%d", h.Streak)
		}
		category := ""
		if h.Category != "" {
			category = fmt.Sprintf(" (%s)", h.Category)
		}
		fmt.Printf("%s%s — %s, %d %s/day%s%s\n", h.Name, category, FormatFrequency(h), h.Target, h.Unit, streak, status)
	}
	return nil
}

type HabitEditCmd struct {
	Name string `arg:"" help:"Habit name to edit."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := ctx.Engine.HabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	params := engine.HabitParams{
		Name:        habit.Name,
		Description: habit.Description,
		Category:    habit.Category,
		Type:        habit.Type,
		Frequency:   habit.Frequency,
		Days:        habit.Days,
		Target:      habit.Target,
		Unit:        habit.Unit,
		StartDate:   habit.StartDate,
		EndDate:     habit.EndDate,
	}
	if err := runHabitForm(&params); err != nil {
		return err
	}

	if _, err := ctx.Engine.EditHabit(habit.ID, params); err != nil {
		return err
	}
	fmt.Printf("Updated habit: %s\n", params.Name)
	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit name to archive or unarchive."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	habit, err := ctx.Engine.HabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	archived, err := ctx.Engine.ToggleArchive(habit.ID)
	if err != nil {
		return err
	}
	if archived {
		fmt.Printf("Archived habit: %s\n", c.Name)
	} else {
		fmt.Printf("Unarchived habit: %s\n", c.Name)
	}
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
	Yes  bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.Engine.HabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q permanently? Its check history is kept.", habit.Name)).
				Value(&confirmed),
		)).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Engine.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}

type HabitMoveCmd struct {
	Name     string `arg:"" help:"Habit name to move."`
	Position int    `arg:"" help:"New display position (0-based)."`
}

func (c *HabitMoveCmd) Run(ctx *Context) error {
	habit, err := ctx.Engine.HabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if err := ctx.Engine.ReorderHabit(habit.ID, c.Position); err != nil {
		return err
	}
	fmt.Printf("Moved habit %q to position %d\n", c.Name, c.Position)
	return nil
}

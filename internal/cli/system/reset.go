package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitquest/internal/cli"
)

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (cmd *ResetCmd) Run(ctx *cli.Context) error {
	if !cmd.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Erase all habits, progress, XP, coins, and badges?").
				Description("This cannot be undone.").
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

	notices := ctx.Engine.Reset()
	cli.PrintNotices(notices)
	return nil
}

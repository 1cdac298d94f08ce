package system

import (
	"fmt"

	"github.com/julianstephens/habitquest/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (cmd *InitCmd) Run(ctx *cli.Context) error {
	if cmd.Force {
		// Init refuses to clobber; a forced reinit goes through Save with a
		// fresh state instead.
		notices := ctx.Engine.Reset()
		cli.PrintNotices(notices)
		return nil
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habitquest storage at %s\n", ctx.Store.Path())
	return nil
}

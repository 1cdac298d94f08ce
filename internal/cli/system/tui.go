package system

import (
	"github.com/julianstephens/habitquest/internal/cli"
	"github.com/julianstephens/habitquest/internal/tui"
)

type TuiCmd struct{}

func (cmd *TuiCmd) Run(ctx *cli.Context) error {
	return tui.Run(ctx.Engine)
}

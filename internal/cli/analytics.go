package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitquest/internal/clock"
)

type HeatmapCmd struct {
	Weeks int `help:"Number of trailing weeks to show." default:"26"`
}

// heatStyles maps completion levels 0-4 to shaded cells.
var heatStyles = [5]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

func (c *HeatmapCmd) Run(ctx *Context) error {
	cells := ctx.Engine.Heatmap()
	if c.Weeks < 1 {
		c.Weeks = 1
	}
	if limit := len(cells) / 7; c.Weeks > limit {
		c.Weeks = limit
	}
	cells = cells[len(cells)-c.Weeks*7:]

	// Trim the front so columns start on a Sunday and the weekday rows line
	// up.
	for len(cells) > 0 {
		wd, err := clock.Weekday(cells[0].Date)
		if err != nil || wd == 0 {
			break
		}
		cells = cells[1:]
	}

	fmt.Printf("Completion heatmap (last %d weeks):\n\n", c.Weeks)

	// One row per weekday, columns are weeks, oldest on the left.
	labels := [7]string{"   ", "Mon", "   ", "Wed", "   ", "Fri", "   "}
	for row := 0; row < 7; row++ {
		var b strings.Builder
		b.WriteString(labels[row] + " ")
		for i := row; i < len(cells); i += 7 {
			b.WriteString(heatStyles[cells[i].Level].Render("■") + " ")
		}
		fmt.Println(b.String())
	}

	fmt.Println()
	fmt.Printf("Less %s%s%s%s%s More\n",
		heatStyles[0].Render("■ "), heatStyles[1].Render("■ "),
		heatStyles[2].Render("■ "), heatStyles[3].Render("■ "),
		heatStyles[4].Render("■ "))
	return nil
}

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *Context) error {
	for _, line := range ctx.Engine.Insights() {
		fmt.Printf("• %s\n", line)
	}
	return nil
}

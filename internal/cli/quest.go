package cli

import (
	"fmt"
	"strings"
)

type QuestCmd struct {
	List QuestListCmd `cmd:"" help:"Show the active quest batch." default:"1"`
}

type QuestListCmd struct{}

func (c *QuestListCmd) Run(ctx *Context) error {
	quests := ctx.Engine.Quests()
	if len(quests) == 0 {
		fmt.Println("No active quests. They regenerate on your next daily login.")
		return nil
	}

	fmt.Println("Daily quests:")
	fmt.Println()
	for _, q := range quests {
		marker := "[ ]"
		if q.Completed {
			marker = "[x]"
		}
		fmt.Printf("%s %s  %s\n", marker, q.Title, progressBar(q.Current, q.Target))
		fmt.Printf("    %d/%d — reward: +%d XP, +%d coins\n", q.Current, q.Target, q.Reward.XP, q.Reward.Coins)
	}
	return nil
}

// progressBar renders a 10-cell text progress bar.
func progressBar(current, target int) string {
	if target < 1 {
		target = 1
	}
	filled := current * 10 / target
	if filled > 10 {
		filled = 10
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}

type BadgeCmd struct {
	List BadgeListCmd `cmd:"" help:"Show badges and their unlock status." default:"1"`
}

type BadgeListCmd struct{}

func (c *BadgeListCmd) Run(ctx *Context) error {
	unlocked := make(map[string]bool)
	for _, id := range ctx.Engine.Badges() {
		unlocked[id] = true
	}

	for _, b := range ctx.Engine.Catalog().Badges {
		marker := "🔒"
		if unlocked[b.ID] {
			marker = "🏅"
		}
		fmt.Printf("%s %s — %s\n", marker, b.Name, b.Description)
	}
	return nil
}

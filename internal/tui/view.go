package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderStatsBar())
	b.WriteString("\n\n")

	switch m.view {
	case viewToday:
		b.WriteString(m.renderToday())
	case viewQuests:
		b.WriteString(m.renderQuests())
	case viewBadges:
		b.WriteString(m.renderBadges())
	case viewShop:
		b.WriteString(m.renderShop())
	}

	if len(m.notices) > 0 {
		b.WriteString("\n")
		for _, n := range m.notices {
			b.WriteString(noticeStyle.Render(n.Message) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m))
	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	var tabs []string
	for v := view(0); v < viewCount; v++ {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(viewNames[v]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(viewNames[v]))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderStatsBar() string {
	stats := m.engine.Stats()
	level := m.engine.LevelInfo()
	return statsBarStyle.Render(fmt.Sprintf(
		"Lv %d  ·  %d XP (%.0f%% to next)  ·  %d coins  ·  %d freezes",
		level.Level, stats.XP, level.ProgressPct, stats.Coins, stats.StreakFreezes))
}

func (m Model) renderToday() string {
	statuses := m.engine.TodayStatus()
	if len(statuses) == 0 {
		return dimStyle.Render("No habits yet. Add one with 'habitquest habit add'.")
	}

	var b strings.Builder
	for i, s := range statuses {
		line := s.Habit.Name
		switch {
		case !s.Scheduled:
			line = "⊘ " + line + dimStyle.Render(" (not today)")
		case s.Completed:
			line = doneStyle.Render("✓ " + line)
		default:
			line = "○ " + line
			if s.Habit.Target > 1 {
				line += fmt.Sprintf(" (%d/%d %s)", s.Value, s.Habit.Target, s.Habit.Unit)
			}
		}
		if s.Habit.Streak > 0 {
			line += fmt.Sprintf("  🔥%d", s.Habit.Streak)
		}
		if i == m.cursor {
			line = selectedStyle.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if rating, ok := m.engine.MoodFor(m.engine.Today()); ok {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\nMood today: %d/5", rating)))
	} else {
		b.WriteString(dimStyle.Render("\nMood not logged (press 1-5)"))
	}
	return b.String()
}

func (m Model) renderQuests() string {
	quests := m.engine.Quests()
	if len(quests) == 0 {
		return dimStyle.Render("No active quests.")
	}

	var b strings.Builder
	for _, q := range quests {
		marker := "○"
		title := q.Title
		if q.Completed {
			marker = "✓"
			title = doneStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", marker, title))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d · +%d XP, +%d coins\n", q.Current, q.Target, q.Reward.XP, q.Reward.Coins)))
	}
	return b.String()
}

func (m Model) renderBadges() string {
	unlocked := make(map[string]bool)
	for _, id := range m.engine.Badges() {
		unlocked[id] = true
	}

	var b strings.Builder
	for _, badge := range m.engine.Catalog().Badges {
		if unlocked[badge.ID] {
			b.WriteString(doneStyle.Render("🏅 "+badge.Name) + dimStyle.Render(" — "+badge.Description) + "\n")
		} else {
			b.WriteString(dimStyle.Render("🔒 "+badge.Name+" — "+badge.Description) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderShop() string {
	stats := m.engine.Stats()
	var b strings.Builder
	for i, item := range m.engine.Catalog().Shop {
		line := fmt.Sprintf("%s — %d coins", item.Name, item.Cost)
		if stats.Coins < item.Cost {
			line = dimStyle.Render(line)
		}
		if i == m.cursor {
			line = selectedStyle.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		b.WriteString(dimStyle.Render("    "+item.Description) + "\n")
	}
	return b.String()
}

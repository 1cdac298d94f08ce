package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitquest/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.engine.Logout()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.view = (m.view + 1) % viewCount
			m.cursor = 0
			m.notices = nil
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.view = (m.view + viewCount - 1) % viewCount
			m.cursor = 0
			m.notices = nil
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.cursorMax()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			return m.handleSelect(), nil

		case key.Matches(msg, m.keys.Mood):
			if m.view != viewToday {
				return m, nil
			}
			rating, err := strconv.Atoi(msg.String())
			if err != nil {
				return m, nil
			}
			notices, err := m.engine.LogMood(rating)
			if err != nil {
				logger.Warn("Mood log failed", "error", err)
				return m, nil
			}
			m.notices = notices
			return m, nil
		}
	}

	return m, nil
}

// handleSelect acts on the row under the cursor: a check-in on the Today view,
// a purchase on the Shop view.
func (m Model) handleSelect() Model {
	switch m.view {
	case viewToday:
		statuses := m.engine.TodayStatus()
		if m.cursor >= len(statuses) {
			return m
		}
		s := statuses[m.cursor]
		if !s.Scheduled || s.Completed {
			return m
		}
		notices, err := m.engine.CheckIn(s.Habit.ID, m.engine.Today())
		if err != nil {
			logger.Warn("Check-in failed", "habit", s.Habit.Name, "error", err)
			return m
		}
		m.notices = notices

	case viewShop:
		items := m.engine.Catalog().Shop
		if m.cursor >= len(items) {
			return m
		}
		_, notices, err := m.engine.Purchase(items[m.cursor].ID)
		if err != nil {
			logger.Warn("Purchase failed", "item", items[m.cursor].ID, "error", err)
			return m
		}
		m.notices = notices
	}
	return m
}

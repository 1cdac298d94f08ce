// Package tui is an interactive dashboard over the habit engine: today's
// habits, the quest batch, badges, and the shop, with check-ins, mood logs,
// and purchases handled in place.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitquest/internal/engine"
)

type view int

const (
	viewToday view = iota
	viewQuests
	viewBadges
	viewShop
	viewCount
)

var viewNames = [viewCount]string{"Today", "Quests", "Badges", "Shop"}

type Model struct {
	engine   *engine.Engine
	view     view
	cursor   int
	keys     KeyMap
	help     help.Model
	notices  []engine.Notice
	quitting bool
	width    int
	height   int
}

func NewModel(eng *engine.Engine) Model {
	return Model{
		engine: eng,
		view:   viewToday,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.view {
	case viewToday:
		keys = append(keys, m.keys.Enter, m.keys.Mood)
	case viewShop:
		keys = append(keys, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	actions := []key.Binding{m.keys.Mood}
	return [][]key.Binding{global, navigation, actions}
}

// cursorMax is the number of selectable rows in the current view.
func (m Model) cursorMax() int {
	switch m.view {
	case viewToday:
		return len(m.engine.TodayStatus())
	case viewShop:
		return len(m.engine.Catalog().Shop)
	default:
		return 0
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

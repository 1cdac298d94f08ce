package models

// UserStats is the user's progression wallet. XP and coins never go negative;
// purchases that would overdraw coins are rejected before mutation.
type UserStats struct {
	XP            int `json:"xp"`
	Coins         int `json:"coins"`
	StreakFreezes int `json:"streak_freezes"`
}

// State is the single application snapshot every engine operation reads and
// mutates. It is serialized whole to the snapshot store after each mutation.
type State struct {
	Version int       `json:"version"`
	Stats   UserStats `json:"stats"`
	Habits  []Habit   `json:"habits"`
	// Checks is keyed by CheckKey(habitID, date).
	Checks map[string]Check `json:"checks"`
	Quests []Quest          `json:"quests"`
	// Badges holds unlocked badge ids, append-only in unlock order.
	Badges []string `json:"badges"`
	// Moods maps YYYY-MM-DD to a 1-5 rating; one entry per date.
	Moods map[string]int `json:"moods"`
	// LastVisit is the YYYY-MM-DD date of the last login, used for the daily
	// quest rollover.
	LastVisit string `json:"last_visit,omitempty"`
}

const StateVersion = 1

// DefaultState returns the empty first-run state.
func DefaultState() *State {
	return &State{
		Version: StateVersion,
		Checks:  make(map[string]Check),
		Moods:   make(map[string]int),
	}
}

// Normalize repairs nil maps after deserialization so callers can index
// without guards.
func (s *State) Normalize() {
	if s.Checks == nil {
		s.Checks = make(map[string]Check)
	}
	if s.Moods == nil {
		s.Moods = make(map[string]int)
	}
}

// HabitByID returns a pointer into the habit slice, or nil if absent.
func (s *State) HabitByID(id string) *Habit {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i]
		}
	}
	return nil
}

// ActiveHabits returns the non-archived habits.
func (s *State) ActiveHabits() []Habit {
	var out []Habit
	for _, h := range s.Habits {
		if !h.Archived {
			out = append(out, h)
		}
	}
	return out
}

// Categories returns the distinct non-empty categories of active habits.
func (s *State) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, h := range s.Habits {
		if h.Archived || h.Category == "" || seen[h.Category] {
			continue
		}
		seen[h.Category] = true
		out = append(out, h.Category)
	}
	return out
}

// MaxStreak returns the highest current streak across all habits.
func (s *State) MaxStreak() int {
	max := 0
	for _, h := range s.Habits {
		if h.Streak > max {
			max = h.Streak
		}
	}
	return max
}

// HasBadge reports whether a badge id has been unlocked.
func (s *State) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b == id {
			return true
		}
	}
	return false
}

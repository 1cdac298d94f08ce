package models

// HabitType distinguishes habits that reward completion from habits that
// represent restraint (tracked for streaks only, never rewarded).
type HabitType string

const (
	HabitPositive HabitType = "positive"
	HabitNegative HabitType = "negative"
)

// HabitFrequency controls which days a habit is scheduled on.
type HabitFrequency string

const (
	FrequencyDaily        HabitFrequency = "daily"
	FrequencyWeekly       HabitFrequency = "weekly"
	FrequencySpecificDays HabitFrequency = "specific_days"
)

// Habit is a recurring practice with a per-period unit target.
type Habit struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Type        HabitType      `json:"type"`
	Frequency   HabitFrequency `json:"frequency"`
	// Days holds weekday indices (0=Sunday .. 6=Saturday); required iff
	// Frequency is specific_days.
	Days   []int  `json:"days,omitempty"`
	Target int    `json:"target"`
	Unit   string `json:"unit"`
	// Streak counts consecutive scheduled days on which the habit reached its
	// target. Zero until the first completion.
	Streak int `json:"streak"`
	// LastChecked is the last YYYY-MM-DD date the habit reached its target,
	// empty if never.
	LastChecked string `json:"last_checked,omitempty"`
	Archived    bool   `json:"archived"`
	Order       int    `json:"order"`
	// StartDate/EndDate bound the habit's active window (YYYY-MM-DD, empty =
	// unbounded on that side).
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// ActiveOn reports whether the given YYYY-MM-DD date falls inside the habit's
// [StartDate, EndDate] window. String comparison is safe for the fixed format.
func (h Habit) ActiveOn(date string) bool {
	if h.StartDate != "" && date < h.StartDate {
		return false
	}
	if h.EndDate != "" && date > h.EndDate {
		return false
	}
	return true
}

// ScheduledOn reports whether the habit is scheduled on the given weekday
// index (0=Sunday .. 6=Saturday). Daily and weekly habits are always
// schedulable.
func (h Habit) ScheduledOn(weekday int) bool {
	if h.Frequency != FrequencySpecificDays {
		return true
	}
	for _, d := range h.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// Check records accumulated progress units for one habit on one date. There is
// exactly one Check per (habit, date); checks are never deleted.
type Check struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
	Value   int    `json:"value"`
	Note    string `json:"note,omitempty"`
}

// CheckKey builds the state map key for a (habit, date) pair.
func CheckKey(habitID, date string) string {
	return habitID + "|" + date
}

package models

// QuestType selects which events advance a quest.
type QuestType string

const (
	QuestHabitCompletion QuestType = "habit_completion"
	QuestStreak          QuestType = "streak"
	QuestMood            QuestType = "mood"
	QuestCategory        QuestType = "category"
	QuestXP              QuestType = "xp"
)

// Reward is the payout for completing a quest.
type Reward struct {
	XP    int `json:"xp"`
	Coins int `json:"coins"`
}

// Quest is one active mini-goal. Completion is terminal until the batch
// regenerates.
type Quest struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      QuestType `json:"type"`
	Target    int       `json:"target"`
	Current   int       `json:"current"`
	Completed bool      `json:"completed"`
	Reward    Reward    `json:"reward"`
	// Category binds category-type quests to one habit category.
	Category string `json:"category,omitempty"`
}

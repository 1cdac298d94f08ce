package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/habitquest/internal/constants"
	"github.com/julianstephens/habitquest/internal/models"
)

// questEvent is one progress signal routed to the active batch.
type questEvent struct {
	kind        models.QuestType
	amount      int    // xp events
	category    string // category events
	streakLevel int    // streak events: a level, not an increment
}

// regenerateQuests draws a fresh batch from the template pool: category
// templates are skipped when the user has no categories, the pool is shuffled,
// and the first QuestBatchSize templates become quests with fresh ids and
// zeroed progress. Callers hold the engine lock.
func (e *Engine) regenerateQuests() {
	categories := e.state.Categories()

	var pool []int
	for i, t := range e.cat.Quests {
		if t.Type == models.QuestCategory && len(categories) == 0 {
			continue
		}
		pool = append(pool, i)
	}
	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > constants.QuestBatchSize {
		pool = pool[:constants.QuestBatchSize]
	}

	active := len(e.state.ActiveHabits())

	quests := make([]models.Quest, 0, len(pool))
	for _, idx := range pool {
		t := e.cat.Quests[idx]

		target := t.Target.Fixed
		if t.Target.AllActive {
			// Resolved at generation time; floored at 1 so an empty habit
			// list cannot mint an instantly-complete quest.
			target = active
			if target < 1 {
				target = 1
			}
		}

		q := models.Quest{
			ID:     uuid.New().String(),
			Title:  t.Title,
			Type:   t.Type,
			Target: target,
			Reward: t.Reward,
		}
		if t.Type == models.QuestCategory {
			q.Category = categories[e.rng.Intn(len(categories))]
			if strings.Contains(q.Title, "%s") {
				q.Title = fmt.Sprintf(t.Title, q.Category)
			}
		}
		quests = append(quests, q)
	}
	e.state.Quests = quests
}

// applyQuestProgress advances every incomplete quest the event matches,
// granting rewards the moment a quest completes. When the whole batch is
// complete a new one generates immediately so the user is never questless.
// Callers hold the engine lock.
func (e *Engine) applyQuestProgress(ev questEvent) {
	if ev.kind == models.QuestXP && ev.amount == 0 {
		return
	}
	if len(e.state.Quests) == 0 {
		return
	}

	for i := range e.state.Quests {
		q := &e.state.Quests[i]
		if q.Completed || q.Type != ev.kind {
			continue
		}

		switch ev.kind {
		case models.QuestHabitCompletion, models.QuestMood:
			q.Current++
		case models.QuestCategory:
			if q.Category != ev.category {
				continue
			}
			q.Current++
		case models.QuestStreak:
			level := ev.streakLevel
			if level > q.Target {
				level = q.Target
			}
			q.Current = level
		case models.QuestXP:
			q.Current += ev.amount
		}

		if q.Current >= q.Target {
			q.Current = q.Target
			q.Completed = true
			e.state.Stats.XP += q.Reward.XP
			e.state.Stats.Coins += q.Reward.Coins
			e.notify(NoticeSuccess, fmt.Sprintf("Quest complete: %s! +%d XP, +%d coins", q.Title, q.Reward.XP, q.Reward.Coins))
			e.evaluateBadges()
		}
	}

	allDone := true
	for _, q := range e.state.Quests {
		if !q.Completed {
			allDone = false
			break
		}
	}
	if allDone {
		e.regenerateQuests()
		if len(e.state.Quests) > 0 {
			e.notify(NoticeInfo, "New quests have arrived.")
		}
	}
}

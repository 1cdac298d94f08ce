package engine

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitquest/internal/catalog"
	"github.com/julianstephens/habitquest/internal/constants"
)

// evaluateBadges checks the progression unlock conditions against the current
// state and appends newly earned badges in evaluation order. Already-held
// badges are skipped, so the badge set only grows. Callers hold the engine
// lock.
func (e *Engine) evaluateBadges() {
	maxStreak := e.state.MaxStreak()

	anyQuestCompleted := false
	for _, q := range e.state.Quests {
		if q.Completed {
			anyQuestCompleted = true
			break
		}
	}

	e.unlock([]badgeCondition{
		{catalog.BadgeStreak7, maxStreak >= constants.StreakBadgeTier1},
		{catalog.BadgeStreak30, maxStreak >= constants.StreakBadgeTier2},
		{catalog.BadgeFirstQuest, anyQuestCompleted},
	})
}

// evaluateTimeOfDayBadges rewards the hour a check-in lands. Only check-ins
// count; a late-night purchase is not a night-owl feat.
func (e *Engine) evaluateTimeOfDayBadges() {
	hour := e.clock.Now().Hour()
	e.unlock([]badgeCondition{
		{catalog.BadgeEarlyBird, hour < constants.EarlyBirdBeforeHour},
		{catalog.BadgeNightOwl, hour > constants.NightOwlAfterHour},
	})
}

type badgeCondition struct {
	id  string
	met bool
}

func (e *Engine) unlock(conditions []badgeCondition) {
	var unlocked []string
	for _, c := range conditions {
		if !c.met || e.state.HasBadge(c.id) {
			continue
		}
		e.state.Badges = append(e.state.Badges, c.id)
		name := c.id
		if b, ok := e.cat.BadgeByID(c.id); ok {
			name = b.Name
		}
		unlocked = append(unlocked, name)
	}

	if len(unlocked) > 0 {
		e.notify(NoticeSuccess, fmt.Sprintf("Badge unlocked: %s!", strings.Join(unlocked, ", ")))
	}
}

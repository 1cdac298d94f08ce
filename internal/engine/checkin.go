package engine

import (
	"fmt"

	"github.com/julianstephens/habitquest/internal/clock"
	"github.com/julianstephens/habitquest/internal/constants"
	"github.com/julianstephens/habitquest/internal/models"
)

// CheckIn records one unit of progress for a habit on a date. Rejections
// (unknown habit, date outside the active window, unscheduled weekday) leave
// the state untouched. A check-in on an already-completed day succeeds as a
// no-op.
//
// When the increment reaches the habit's target for the first time that day,
// positive habits grant XP and coins, the streak updates against the last
// completion date, and the quest and badge engines run. The XP quest always
// sees the XP granted by this action, which is zero for partial progress and
// for negative-type habits.
func (e *Engine) CheckIn(habitID, date string) ([]Notice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notices = nil

	h := e.state.HabitByID(habitID)
	if h == nil {
		return nil, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}
	weekday, err := clock.Weekday(date)
	if err != nil {
		return nil, err
	}
	if !h.ActiveOn(date) {
		return nil, fmt.Errorf("%w: %s", ErrDateOutOfRange, date)
	}
	if !h.ScheduledOn(weekday) {
		return nil, fmt.Errorf("%w: %s", ErrNotScheduled, h.Name)
	}

	key := models.CheckKey(habitID, date)
	check, ok := e.state.Checks[key]
	if !ok {
		check = models.Check{HabitID: habitID, Date: date}
	}
	if check.Value >= h.Target {
		// Already completed for this date; idempotent success, no effects.
		return e.notices, nil
	}

	check.Value++
	e.state.Checks[key] = check

	xpGained := 0
	if check.Value >= h.Target {
		// Just completed: rewards are gated on habit type, streak updates for
		// both types.
		if h.Type == models.HabitPositive {
			xpGained = constants.CheckInBaseXP + min(h.Streak, constants.CheckInStreakXPCap)
			e.state.Stats.XP += xpGained
			e.state.Stats.Coins += constants.CheckInCoins
			e.notify(NoticeSuccess, fmt.Sprintf("%s completed! +%d XP, +%d coins", h.Name, xpGained, constants.CheckInCoins))
		} else {
			e.notify(NoticeSuccess, fmt.Sprintf("%s completed!", h.Name))
		}

		e.updateStreak(h, date)
		h.LastChecked = date

		e.applyQuestProgress(questEvent{kind: models.QuestHabitCompletion})
		if h.Category != "" {
			e.applyQuestProgress(questEvent{kind: models.QuestCategory, category: h.Category})
		}
		e.applyQuestProgress(questEvent{kind: models.QuestStreak, streakLevel: e.state.MaxStreak()})
		e.evaluateBadges()
		e.evaluateTimeOfDayBadges()
	} else {
		e.notify(NoticeInfo, fmt.Sprintf("%s: %d/%d %s", h.Name, check.Value, h.Target, h.Unit))
	}

	e.applyQuestProgress(questEvent{kind: models.QuestXP, amount: xpGained})

	e.persist()
	return e.notices, nil
}

// updateStreak settles a habit's streak for a completion on date. A
// completion exactly one day after the last one continues the streak; the
// same day leaves it alone; a longer gap consumes a streak freeze when one is
// in stock (preserving the streak without incrementing it) or resets to 1.
func (e *Engine) updateStreak(h *models.Habit, date string) {
	if h.LastChecked == "" {
		h.Streak = 1
		return
	}
	if h.LastChecked == date {
		return
	}

	gap, err := clock.DaysBetween(h.LastChecked, date)
	if err != nil {
		h.Streak = 1
		return
	}
	switch {
	case gap == constants.StreakBreakGapDays:
		h.Streak++
	case gap > constants.StreakBreakGapDays && e.state.Stats.StreakFreezes > 0:
		e.state.Stats.StreakFreezes--
		e.notify(NoticeInfo, fmt.Sprintf("A streak freeze saved your %d-day streak on %s.", h.Streak, h.Name))
	default:
		h.Streak = 1
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

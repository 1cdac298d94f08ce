package engine

import (
	"fmt"

	"github.com/julianstephens/habitquest/internal/constants"
	"github.com/julianstephens/habitquest/internal/models"
)

// LogMood records a 1-5 mood rating for today. Logging again on the same day
// overwrites the rating rather than adding an entry; both count as mood
// actions for quest progress.
func (e *Engine) LogMood(rating int) ([]Notice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notices = nil

	if rating < constants.MoodRatingMin || rating > constants.MoodRatingMax {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}

	today := e.clock.Today()
	_, overwrote := e.state.Moods[today]
	e.state.Moods[today] = rating

	if overwrote {
		e.notify(NoticeInfo, fmt.Sprintf("Mood for today updated to %d/%d.", rating, constants.MoodRatingMax))
	} else {
		e.notify(NoticeSuccess, fmt.Sprintf("Mood logged: %d/%d.", rating, constants.MoodRatingMax))
	}

	e.applyQuestProgress(questEvent{kind: models.QuestMood})
	e.evaluateBadges()
	e.persist()
	return e.notices, nil
}

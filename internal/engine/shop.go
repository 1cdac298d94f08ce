package engine

import (
	"fmt"

	"github.com/julianstephens/habitquest/internal/catalog"
)

// Purchase spends coins on a catalog item. It returns false without any state
// change when the wallet cannot cover the cost; there are no partial or
// overdraft purchases. The only error is an unknown item id.
func (e *Engine) Purchase(itemID string) (bool, []Notice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notices = nil

	item, ok := e.cat.ItemByID(itemID)
	if !ok {
		return false, nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	if e.state.Stats.Coins < item.Cost {
		e.notify(NoticeError, fmt.Sprintf("Not enough coins for %s (need %d, have %d).", item.Name, item.Cost, e.state.Stats.Coins))
		return false, e.notices, nil
	}

	e.state.Stats.Coins -= item.Cost
	switch item.Effect {
	case catalog.EffectStreakFreeze:
		e.state.Stats.StreakFreezes++
	case catalog.EffectCosmetic:
		// No stateful effect.
	}

	e.notify(NoticeSuccess, fmt.Sprintf("Purchased %s for %d coins.", item.Name, item.Cost))
	e.evaluateBadges()
	e.persist()
	return true, e.notices, nil
}

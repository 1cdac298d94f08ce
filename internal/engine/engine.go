// Package engine implements the habit state engine: the domain logic that
// mutates the single application snapshot in response to user actions
// (check-ins, mood logs, purchases, habit edits, login) and derives analytical
// views from it. Mutations run one at a time under a mutex; each one is
// all-or-nothing and is followed by a snapshot write that never fails the
// operation itself.
package engine

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/julianstephens/habitquest/internal/catalog"
	"github.com/julianstephens/habitquest/internal/clock"
	"github.com/julianstephens/habitquest/internal/logger"
	"github.com/julianstephens/habitquest/internal/models"
	"github.com/julianstephens/habitquest/internal/storage"
)

var (
	ErrHabitNotFound  = errors.New("habit not found")
	ErrDateOutOfRange = errors.New("date is outside the habit's active window")
	ErrNotScheduled   = errors.New("habit is not scheduled on that day")
	ErrInvalidHabit   = errors.New("invalid habit")
	ErrInvalidRating  = errors.New("mood rating must be between 1 and 5")
	ErrItemNotFound   = errors.New("shop item not found")
)

// NoticeKind is the semantic category of a user-facing notice. The
// presentation layer decides its visual form.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeError   NoticeKind = "error"
)

// Notice is a user-facing message emitted during a transaction.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Engine owns the application state. All mutating operations lock, validate
// before touching anything, then mutate, settle derived systems
// (quests, badges), and persist.
type Engine struct {
	mu      sync.Mutex
	state   *models.State
	store   storage.Provider
	clock   clock.Clock
	cat     *catalog.Catalog
	rng     *rand.Rand
	notices []Notice
}

// New loads the snapshot from the store, falling back to the default empty
// state on first run.
func New(store storage.Provider, cat *catalog.Catalog, clk clock.Clock) (*Engine, error) {
	state, err := store.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrNotInitialized) {
			return nil, err
		}
		state = models.DefaultState()
	}
	return &Engine{
		state: state,
		store: store,
		clock: clk,
		cat:   cat,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SeedRNG pins the quest shuffle order, for tests.
func (e *Engine) SeedRNG(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// Login applies the daily rollover: on the first visit of a calendar day the
// quest batch regenerates. Idempotent within a day.
func (e *Engine) Login() []Notice {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notices = nil

	today := e.clock.Today()
	if e.state.LastVisit != today {
		e.state.LastVisit = today
		e.regenerateQuests()
		if len(e.state.Quests) > 0 {
			e.notify(NoticeInfo, "New daily quests are ready.")
		}
		e.persist()
	}
	return e.notices
}

// Logout flushes the snapshot at the end of a session. Mutations already
// persist as they happen; this is a final write for good measure.
func (e *Engine) Logout() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.persist()
}

// Reset wipes all data back to the first-run state ("fresh start").
func (e *Engine) Reset() []Notice {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notices = nil

	e.state = models.DefaultState()
	e.state.LastVisit = e.clock.Today()
	e.regenerateQuests()
	e.notify(NoticeSuccess, "All data has been reset. Fresh start!")
	e.persist()
	return e.notices
}

func (e *Engine) notify(kind NoticeKind, msg string) {
	e.notices = append(e.notices, Notice{Kind: kind, Message: msg})
}

// persist writes the snapshot after a mutation. The in-memory state is
// authoritative; a failed write is logged and the operation still succeeds.
func (e *Engine) persist() {
	if err := e.store.Save(e.state); err != nil {
		logger.Warn("Snapshot write failed", "error", err)
	}
}

// Stats returns the current user stats.
func (e *Engine) Stats() models.UserStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Stats
}

// Badges returns the unlocked badge ids in unlock order.
func (e *Engine) Badges() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.state.Badges))
	copy(out, e.state.Badges)
	return out
}

// Quests returns the active quest batch.
func (e *Engine) Quests() []models.Quest {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Quest, len(e.state.Quests))
	copy(out, e.state.Quests)
	return out
}

// MoodFor returns the mood rating logged for a date, if any.
func (e *Engine) MoodFor(date string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rating, ok := e.state.Moods[date]
	return rating, ok
}

// CheckFor returns the check recorded for a habit on a date, if any.
func (e *Engine) CheckFor(habitID, date string) (models.Check, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.state.Checks[models.CheckKey(habitID, date)]
	return c, ok
}

// Catalog exposes the static content catalog the engine draws from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Today returns the engine clock's current date.
func (e *Engine) Today() string {
	return e.clock.Today()
}

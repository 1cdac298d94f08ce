package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/habitquest/internal/clock"
	"github.com/julianstephens/habitquest/internal/models"
)

// HabitParams carries the user-editable fields of a habit. Add assigns the id
// and zeroes progress; Edit replaces these fields wholesale and preserves
// streak bookkeeping.
type HabitParams struct {
	Name        string
	Description string
	Category    string
	Type        models.HabitType
	Frequency   models.HabitFrequency
	Days        []int
	Target      int
	Unit        string
	StartDate   string
	EndDate     string
}

func validateHabitParams(p HabitParams) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidHabit)
	}
	switch p.Type {
	case models.HabitPositive, models.HabitNegative:
	default:
		return fmt.Errorf("%w: type must be positive or negative", ErrInvalidHabit)
	}
	switch p.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly:
		if len(p.Days) > 0 {
			return fmt.Errorf("%w: days are only valid with specific_days frequency", ErrInvalidHabit)
		}
	case models.FrequencySpecificDays:
		if len(p.Days) == 0 {
			return fmt.Errorf("%w: specific_days frequency requires at least one day", ErrInvalidHabit)
		}
		for _, d := range p.Days {
			if d < 0 || d > 6 {
				return fmt.Errorf("%w: weekday index %d out of range 0-6", ErrInvalidHabit, d)
			}
		}
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidHabit, p.Frequency)
	}
	if p.Target < 1 {
		return fmt.Errorf("%w: target must be at least 1", ErrInvalidHabit)
	}
	for _, d := range []string{p.StartDate, p.EndDate} {
		if d == "" {
			continue
		}
		if _, err := clock.ParseDate(d); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidHabit, err)
		}
	}
	if p.StartDate != "" && p.EndDate != "" && p.EndDate < p.StartDate {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidHabit)
	}
	return nil
}

// AddHabit creates a new habit at the end of the display order.
func (e *Engine) AddHabit(p HabitParams) (models.Habit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := validateHabitParams(p); err != nil {
		return models.Habit{}, err
	}

	order := 0
	for _, h := range e.state.Habits {
		if h.Order >= order {
			order = h.Order + 1
		}
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Type:        p.Type,
		Frequency:   p.Frequency,
		Days:        append([]int(nil), p.Days...),
		Target:      p.Target,
		Unit:        p.Unit,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Order:       order,
	}
	e.state.Habits = append(e.state.Habits, habit)
	e.persist()
	return habit, nil
}

// EditHabit replaces a habit's user-editable fields. Streak, last-checked
// date, archive flag, and display order are preserved.
func (e *Engine) EditHabit(id string, p HabitParams) (models.Habit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.state.HabitByID(id)
	if h == nil {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	if err := validateHabitParams(p); err != nil {
		return models.Habit{}, err
	}

	h.Name = p.Name
	h.Description = p.Description
	h.Category = p.Category
	h.Type = p.Type
	h.Frequency = p.Frequency
	h.Days = append([]int(nil), p.Days...)
	h.Target = p.Target
	h.Unit = p.Unit
	h.StartDate = p.StartDate
	h.EndDate = p.EndDate

	e.persist()
	return *h, nil
}

// ToggleArchive flips a habit's archived flag and returns the new value.
func (e *Engine) ToggleArchive(id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.state.HabitByID(id)
	if h == nil {
		return false, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	h.Archived = !h.Archived
	e.persist()
	return h.Archived, nil
}

// DeleteHabit removes a habit permanently. Its historical checks are kept;
// checks are never deleted.
func (e *Engine) DeleteHabit(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Habits {
		if e.state.Habits[i].ID == id {
			e.state.Habits = append(e.state.Habits[:i], e.state.Habits[i+1:]...)
			e.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
}

// ReorderHabit assigns a habit a new display position.
func (e *Engine) ReorderHabit(id string, order int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.state.HabitByID(id)
	if h == nil {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	h.Order = order
	e.persist()
	return nil
}

// Habits returns all habits sorted by display order.
func (e *Engine) Habits(includeArchived bool) []models.Habit {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.Habit
	for _, h := range e.state.Habits {
		if !includeArchived && h.Archived {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// HabitByName finds a non-archived habit by exact name, for the CLI surface
// where names are friendlier than ids.
func (e *Engine) HabitByName(name string) (models.Habit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, h := range e.state.Habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, name)
}

// HabitStatus is a habit's progress toward today's target.
type HabitStatus struct {
	Habit     models.Habit
	Value     int
	Scheduled bool
	Completed bool
}

// TodayStatus reports each active habit's progress for the engine's current
// date.
func (e *Engine) TodayStatus() []HabitStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.clock.Today()
	weekday, err := clock.Weekday(today)
	if err != nil {
		return nil
	}

	var out []HabitStatus
	for _, h := range e.state.Habits {
		if h.Archived {
			continue
		}
		check := e.state.Checks[models.CheckKey(h.ID, today)]
		out = append(out, HabitStatus{
			Habit:     h,
			Value:     check.Value,
			Scheduled: h.ActiveOn(today) && h.ScheduledOn(weekday),
			Completed: check.Value >= h.Target,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Habit.Order < out[j].Habit.Order })
	return out
}

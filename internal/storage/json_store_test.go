package storage

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/habitquest/internal/models"
)

func sampleState() *models.State {
	s := models.DefaultState()
	s.Stats.XP = 150
	s.Stats.Coins = 42
	s.Stats.StreakFreezes = 1
	s.Habits = append(s.Habits, models.Habit{
		ID: "h1", Name: "Read", Type: models.HabitPositive,
		Frequency: models.FrequencyDaily, Target: 1, Unit: "chapters",
		Streak: 3, LastChecked: "2025-06-18",
	})
	s.Checks[models.CheckKey("h1", "2025-06-18")] = models.Check{HabitID: "h1", Date: "2025-06-18", Value: 1}
	s.Moods["2025-06-18"] = 4
	s.Badges = append(s.Badges, "first_quest")
	s.LastVisit = "2025-06-18"
	return s
}

func assertRoundTrip(t *testing.T, loaded, want *models.State) {
	t.Helper()
	if loaded.Stats != want.Stats {
		t.Errorf("stats = %+v, want %+v", loaded.Stats, want.Stats)
	}
	if len(loaded.Habits) != len(want.Habits) {
		t.Fatalf("habits = %d, want %d", len(loaded.Habits), len(want.Habits))
	}
	if len(want.Habits) > 0 && !reflect.DeepEqual(loaded.Habits[0], want.Habits[0]) {
		t.Errorf("habit = %+v, want %+v", loaded.Habits[0], want.Habits[0])
	}
	if got := loaded.Checks[models.CheckKey("h1", "2025-06-18")]; got != want.Checks[models.CheckKey("h1", "2025-06-18")] {
		t.Errorf("check = %+v", got)
	}
	if loaded.Moods["2025-06-18"] != want.Moods["2025-06-18"] {
		t.Errorf("mood = %d, want %d", loaded.Moods["2025-06-18"], want.Moods["2025-06-18"])
	}
	if len(loaded.Badges) != len(want.Badges) {
		t.Errorf("badges = %v, want %v", loaded.Badges, want.Badges)
	}
	if loaded.LastVisit != want.LastVisit {
		t.Errorf("lastVisit = %s, want %s", loaded.LastVisit, want.LastVisit)
	}
}

func TestJSONStoreLoadBeforeInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitquest.json"))
	if _, err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Load() before init error = %v, want %v", err, ErrNotInitialized)
	}
}

func TestJSONStoreInitAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "habitquest.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init() should refuse to clobber existing storage")
	}

	fresh, err := store.Load()
	if err != nil {
		t.Fatalf("Load() after init error = %v", err)
	}
	if fresh.Version != models.StateVersion {
		t.Errorf("fresh state version = %d, want %d", fresh.Version, models.StateVersion)
	}

	want := sampleState()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertRoundTrip(t, loaded, want)
}

func TestJSONStoreNormalizesOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitquest.json")
	store := NewJSONStore(path)

	// Maps absent from the serialized form must come back allocated.
	s := models.DefaultState()
	s.Checks = nil
	s.Moods = nil
	if err := store.Save(s); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Checks == nil || loaded.Moods == nil {
		t.Error("Load() returned nil maps")
	}
}

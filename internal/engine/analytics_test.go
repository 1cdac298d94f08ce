package engine

import (
	"strings"
	"testing"

	"github.com/julianstephens/habitquest/internal/constants"
	"github.com/julianstephens/habitquest/internal/models"
)

func TestHeatmapLevelBuckets(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{0, 0},
		{-0.5, 0},
		{0.1, 1},
		{0.24, 1},
		{0.25, 2},
		{0.49, 2},
		{0.5, 3},
		{0.74, 3},
		{0.75, 4},
		{1, 4},
		{1.5, 4},
	}
	for _, tt := range tests {
		if got := heatmapLevel(tt.ratio); got != tt.want {
			t.Errorf("heatmapLevel(%v) = %d, want %d", tt.ratio, got, tt.want)
		}
	}
}

func TestHeatmapWindow(t *testing.T) {
	e, _ := newTestEngine(t, testDay)
	h := addDailyHabit(t, e, "Read")
	if _, err := e.CheckIn(h.ID, e.Today()); err != nil {
		t.Fatal(err)
	}

	cells := e.Heatmap()
	if len(cells) != constants.HeatmapWindowDays {
		t.Fatalf("heatmap has %d cells, want %d", len(cells), constants.HeatmapWindowDays)
	}

	last := cells[len(cells)-1]
	if last.Date != e.Today() {
		t.Errorf("last cell date = %s, want today %s", last.Date, e.Today())
	}
	if last.Completed != 1 || last.Level != 4 {
		t.Errorf("today's cell = %+v, want completed 1 level 4", last)
	}
	for _, c := range cells[:len(cells)-1] {
		if c.Completed != 0 || c.Level != 0 {
			t.Errorf("idle day %s = %+v, want empty", c.Date, c)
		}
	}
	if cells[0].Date >= cells[1].Date {
		t.Error("cells not in oldest-first order")
	}
}

func TestHeatmapPartialDay(t *testing.T) {
	e, _ := newTestEngine(t, testDay)
	h := addDailyHabit(t, e, "Read")
	addDailyHabit(t, e, "Run")
	addDailyHabit(t, e, "Write")
	addDailyHabit(t, e, "Stretch")
	if _, err := e.CheckIn(h.ID, e.Today()); err != nil {
		t.Fatal(err)
	}

	cells := e.Heatmap()
	today := cells[len(cells)-1]
	// 1 of 4 habits checked: ratio 0.25 lands in level 2.
	if today.Level != 2 {
		t.Errorf("today's level = %d, want 2", today.Level)
	}
}

func TestInsightsPlaceholderGates(t *testing.T) {
	t.Run("too few moods", func(t *testing.T) {
		e, _ := newTestEngine(t, testDay)
		addDailyHabit(t, e, "Read")
		e.state.Moods["2025-06-17"] = 4
		e.state.Moods["2025-06-18"] = 3

		got := e.Insights()
		if len(got) != 1 || got[0] != insightsPlaceholder {
			t.Errorf("Insights() = %v, want placeholder", got)
		}
	})

	t.Run("no habits", func(t *testing.T) {
		e, _ := newTestEngine(t, testDay)
		for i, d := range []string{"2025-06-15", "2025-06-16", "2025-06-17"} {
			e.state.Moods[d] = i + 2
		}
		got := e.Insights()
		if len(got) != 1 || got[0] != insightsPlaceholder {
			t.Errorf("Insights() = %v, want placeholder", got)
		}
	})

	t.Run("no strong pattern", func(t *testing.T) {
		e, _ := newTestEngine(t, testDay)
		h, err := e.AddHabit(HabitParams{
			Name: "Gym", Category: "Fitness", Type: models.HabitPositive,
			Frequency: models.FrequencyDaily, Target: 1, Unit: "sessions",
		})
		if err != nil {
			t.Fatal(err)
		}
		// Same rating everywhere: no category can deviate.
		for _, d := range []string{"2025-06-15", "2025-06-16", "2025-06-17", "2025-06-18"} {
			e.state.Moods[d] = 3
			if _, err := e.CheckIn(h.ID, d); err != nil {
				t.Fatal(err)
			}
		}
		got := e.Insights()
		if len(got) != 1 || got[0] != insightsNoPattern {
			t.Errorf("Insights() = %v, want no-pattern message", got)
		}
	})
}

func TestInsightsDetectsMoodLift(t *testing.T) {
	e, _ := newTestEngine(t, testDay)
	h, err := e.AddHabit(HabitParams{
		Name: "Gym", Category: "Fitness", Type: models.HabitPositive,
		Frequency: models.FrequencyDaily, Target: 1, Unit: "sessions",
	})
	if err != nil {
		t.Fatal(err)
	}

	// High moods on gym days, low moods on the rest.
	gymDays := []string{"2025-06-14", "2025-06-15", "2025-06-16"}
	for _, d := range gymDays {
		e.state.Moods[d] = 5
		if _, err := e.CheckIn(h.ID, d); err != nil {
			t.Fatal(err)
		}
	}
	e.state.Moods["2025-06-17"] = 1
	e.state.Moods["2025-06-18"] = 1

	got := e.Insights()
	if len(got) != 1 {
		t.Fatalf("Insights() = %v, want one sentence", got)
	}
	if !strings.Contains(got[0], "Fitness") || !strings.Contains(got[0], "higher") {
		t.Errorf("Insights() = %q, want a Fitness mood-lift sentence", got[0])
	}
}

func TestInsightsIgnoresThinCategories(t *testing.T) {
	e, _ := newTestEngine(t, testDay)
	h, err := e.AddHabit(HabitParams{
		Name: "Gym", Category: "Fitness", Type: models.HabitPositive,
		Frequency: models.FrequencyDaily, Target: 1, Unit: "sessions",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Only two completed samples: below the reporting minimum.
	for _, d := range []string{"2025-06-15", "2025-06-16"} {
		e.state.Moods[d] = 5
		if _, err := e.CheckIn(h.ID, d); err != nil {
			t.Fatal(err)
		}
	}
	e.state.Moods["2025-06-17"] = 1
	e.state.Moods["2025-06-18"] = 1

	got := e.Insights()
	if len(got) != 1 || got[0] != insightsNoPattern {
		t.Errorf("Insights() = %v, want no-pattern message for thin category", got)
	}
}

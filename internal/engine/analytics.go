package engine

import (
	"fmt"
	"sort"

	"github.com/julianstephens/habitquest/internal/constants"
	"github.com/julianstephens/habitquest/internal/models"
)

// HeatmapCell is one day of the contribution heatmap: the number of habits
// checked that day and the discretized completion level 0-4.
type HeatmapCell struct {
	Date      string
	Completed int
	Level     int
}

const (
	insightsPlaceholder = "Keep tracking your moods and habits to unlock personalized insights."
	insightsNoPattern   = "No strong patterns yet. Keep tracking to reveal them."
)

// heatmapLevel buckets a completion ratio into 5 discrete levels.
func heatmapLevel(ratio float64) int {
	switch {
	case ratio <= 0:
		return 0
	case ratio < 0.25:
		return 1
	case ratio < 0.5:
		return 2
	case ratio < 0.75:
		return 3
	default:
		return 4
	}
}

// Heatmap derives the trailing-year contribution calendar, oldest day first.
// Each day's ratio is the count of distinct habits with any recorded progress
// that day over the count of habits whose active window includes the day
// (floored at 1 to avoid dividing by zero).
func (e *Engine) Heatmap() []HeatmapCell {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Index checked habit ids by date once instead of probing every
	// (habit, day) pair across the whole window.
	checkedByDate := make(map[string]map[string]bool)
	for _, c := range e.state.Checks {
		if c.Value <= 0 {
			continue
		}
		if checkedByDate[c.Date] == nil {
			checkedByDate[c.Date] = make(map[string]bool)
		}
		checkedByDate[c.Date][c.HabitID] = true
	}

	today := e.clock.Now()
	cells := make([]HeatmapCell, 0, constants.HeatmapWindowDays)
	for i := constants.HeatmapWindowDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(constants.DateFormat)

		active := 0
		for _, h := range e.state.Habits {
			if h.ActiveOn(date) {
				active++
			}
		}
		if active < 1 {
			active = 1
		}

		completed := len(checkedByDate[date])
		ratio := float64(completed) / float64(active)
		cells = append(cells, HeatmapCell{
			Date:      date,
			Completed: completed,
			Level:     heatmapLevel(ratio),
		})
	}
	return cells
}

// Insights correlates mood ratings with habit-category completions. For each
// day carrying both a mood log and at least one completed habit, the day's
// rating is attributed to every category completed that day; categories whose
// average deviates from the overall mood average by more than the reporting
// threshold produce a sentence each.
func (e *Engine) Insights() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.state.Moods) < constants.InsightsMinMoodLogs || len(e.state.Habits) < 1 {
		return []string{insightsPlaceholder}
	}

	overallSum, overallCount := 0, 0
	for _, rating := range e.state.Moods {
		overallSum += rating
		overallCount++
	}
	overallAvg := float64(overallSum) / float64(overallCount)

	type tally struct {
		sum   int
		count int
	}
	byCategory := make(map[string]*tally)

	for date, rating := range e.state.Moods {
		for _, h := range e.state.Habits {
			if h.Category == "" {
				continue
			}
			check, ok := e.state.Checks[models.CheckKey(h.ID, date)]
			if !ok || check.Value < h.Target {
				continue
			}
			t := byCategory[h.Category]
			if t == nil {
				t = &tally{}
				byCategory[h.Category] = t
			}
			t.sum += rating
			t.count++
		}
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var insights []string
	for _, cat := range categories {
		t := byCategory[cat]
		if t.count <= constants.InsightsMinCategorySamples {
			continue
		}
		catAvg := float64(t.sum) / float64(t.count)
		deviation := (catAvg - overallAvg) / overallAvg * 100
		if deviation > constants.InsightsDeviationPct {
			insights = append(insights, fmt.Sprintf(
				"On days you complete %s habits, your mood is %.0f%% higher than average.", cat, deviation))
		} else if deviation < -constants.InsightsDeviationPct {
			insights = append(insights, fmt.Sprintf(
				"On days you complete %s habits, your mood is %.0f%% lower than average.", cat, -deviation))
		}
	}

	if len(insights) == 0 {
		return []string{insightsNoPattern}
	}
	return insights
}

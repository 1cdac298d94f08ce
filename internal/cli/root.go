package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/habitquest/internal/engine"
	"github.com/julianstephens/habitquest/internal/models"
	"github.com/julianstephens/habitquest/internal/storage"
)

type Context struct {
	Engine    *engine.Engine
	Store     storage.Provider
	ConfigDir string
}

// PrintNotices renders a transaction's notices to stdout.
func PrintNotices(notices []engine.Notice) {
	for _, n := range notices {
		switch n.Kind {
		case engine.NoticeSuccess:
			fmt.Printf("✓ %s\n", n.Message)
		case engine.NoticeError:
			fmt.Printf("❌ %s\n", n.Message)
		default:
			fmt.Printf("ℹ %s\n", n.Message)
		}
	}
}

// ParseWeekdays parses a comma-separated list of weekdays into indices
// (0=Sunday .. 6=Saturday). Accepts names, abbreviations, and numbers.
func ParseWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if d, ok := dayMap[part]; ok {
			days = append(days, d)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return days, nil
}

// FormatFrequency formats a habit's schedule into a human-readable string.
func FormatFrequency(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		return "weekly"
	case models.FrequencySpecificDays:
		names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
		var days []string
		for _, d := range h.Days {
			if d >= 0 && d < len(names) {
				days = append(days, names[d])
			}
		}
		return strings.Join(days, ",")
	default:
		return string(h.Frequency)
	}
}

package clock

import (
	"testing"
	"time"
)

func TestFixedToday(t *testing.T) {
	c := &Fixed{T: time.Date(2025, 6, 18, 23, 59, 0, 0, time.UTC)}
	if got := c.Today(); got != "2025-06-18" {
		t.Errorf("Today() = %s, want 2025-06-18", got)
	}
}

func TestNewSystem(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{"empty uses local", "", false},
		{"explicit local", "Local", false},
		{"valid iana zone", "America/New_York", false},
		{"garbage zone", "Mars/Olympus_Mons", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewSystem(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSystem(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
			if err == nil && len(c.Today()) != 10 {
				t.Errorf("Today() = %q, not a YYYY-MM-DD date", c.Today())
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2025-06-17", "2025-06-18", 1},
		{"2025-06-18", "2025-06-18", 0},
		{"2025-06-14", "2025-06-18", 4},
		{"2025-06-18", "2025-06-14", -4},
		{"2025-12-31", "2026-01-01", 1},
		{"2024-02-28", "2024-03-01", 2}, // leap year
	}

	for _, tt := range tests {
		got, err := DaysBetween(tt.from, tt.to)
		if err != nil {
			t.Fatalf("DaysBetween(%s, %s) error = %v", tt.from, tt.to, err)
		}
		if got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDaysBetweenMalformed(t *testing.T) {
	if _, err := DaysBetween("18-06-2025", "2025-06-19"); err == nil {
		t.Error("expected error for malformed from date")
	}
	if _, err := DaysBetween("2025-06-18", "not-a-date"); err == nil {
		t.Error("expected error for malformed to date")
	}
}

func TestWeekday(t *testing.T) {
	// 2025-06-18 is a Wednesday.
	got, err := Weekday("2025-06-18")
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("Weekday(2025-06-18) = %d, want 3", got)
	}

	got, err = Weekday("2025-06-15")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Weekday(2025-06-15) = %d, want 0 (Sunday)", got)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2025-06-18", 1, "2025-06-19"},
		{"2025-06-18", -1, "2025-06-17"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2025-06-18", 0, "2025-06-18"},
	}
	for _, tt := range tests {
		got, err := AddDays(tt.date, tt.n)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("AddDays(%s, %d) = %s, want %s", tt.date, tt.n, got, tt.want)
		}
	}
}

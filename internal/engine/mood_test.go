package engine

import (
	"errors"
	"testing"
)

func TestLogMood(t *testing.T) {
	e, _ := newTestEngine(t, testDay)

	notices, err := e.LogMood(4)
	if err != nil {
		t.Fatalf("LogMood() error = %v", err)
	}
	if len(notices) == 0 || notices[0].Kind != NoticeSuccess {
		t.Errorf("LogMood() notices = %v, want a success notice", notices)
	}
	if rating, ok := e.MoodFor(e.Today()); !ok || rating != 4 {
		t.Errorf("MoodFor(today) = %d, %v, want 4, true", rating, ok)
	}
}

func TestLogMoodOverwritesSameDay(t *testing.T) {
	e, _ := newTestEngine(t, testDay)

	if _, err := e.LogMood(2); err != nil {
		t.Fatal(err)
	}
	notices, err := e.LogMood(5)
	if err != nil {
		t.Fatal(err)
	}
	if rating, _ := e.MoodFor(e.Today()); rating != 5 {
		t.Errorf("mood = %d, want overwritten to 5", rating)
	}
	if len(notices) == 0 || notices[0].Kind != NoticeInfo {
		t.Errorf("overwrite notices = %v, want an info notice", notices)
	}
}

func TestLogMoodRejectsOutOfRange(t *testing.T) {
	e, store := newTestEngine(t, testDay)

	for _, rating := range []int{0, 6, -1} {
		if _, err := e.LogMood(rating); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("LogMood(%d) error = %v, want %v", rating, err, ErrInvalidRating)
		}
	}
	if _, ok := e.MoodFor(e.Today()); ok {
		t.Error("rejected rating was recorded")
	}
	if store.saves != 0 {
		t.Error("rejected rating persisted")
	}
}

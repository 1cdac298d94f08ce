package clock

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitquest/internal/constants"
)

// Clock abstracts "now" so temporal logic (streak continuation, rollover,
// time-of-day badges) can be frozen in tests.
type Clock interface {
	Now() time.Time
	// Today returns the current date as YYYY-MM-DD.
	Today() string
}

// System is the wall-clock implementation, optionally pinned to an IANA
// timezone so "today" follows the user's configured zone rather than the host.
type System struct {
	loc *time.Location
}

// NewSystem returns a system clock in the given timezone. An empty or "Local"
// timezone uses the host's local zone.
func NewSystem(timezone string) (*System, error) {
	if timezone == "" || timezone == "Local" {
		return &System{loc: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &System{loc: loc}, nil
}

func (c *System) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *System) Today() string {
	return c.Now().Format(constants.DateFormat)
}

// Fixed is a test clock frozen at a single instant.
type Fixed struct {
	T time.Time
}

func (c *Fixed) Now() time.Time {
	return c.T
}

func (c *Fixed) Today() string {
	return c.T.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD date string at midnight UTC.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

// DaysBetween returns the whole-day difference to - from, where both are
// YYYY-MM-DD strings. Returns an error if either date is malformed.
func DaysBetween(from, to string) (int, error) {
	a, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	b, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	return int(b.Sub(a).Hours() / 24), nil
}

// Weekday returns the weekday index (0=Sunday .. 6=Saturday) of a YYYY-MM-DD
// date string.
func Weekday(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// AddDays shifts a YYYY-MM-DD date string by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

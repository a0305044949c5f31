package entity

import (
	"fmt"
	"time"
)

// Show is one recurring screening of a movie. It repeats every day of the
// week; bookings are tracked per weekday in Inventory.
type Show struct {
	Room            int
	StartOffset     time.Duration // from midnight
	DurationMinutes int
	Seats           []Seat
	Inventory       Inventory
}

// NewShow creates a show with the default 5x5 layout and an empty inventory.
func NewShow(room int, start time.Duration, durationMinutes int) *Show {
	return &Show{
		Room:            room,
		StartOffset:     start,
		DurationMinutes: durationMinutes,
		Seats:           DefaultSeatLayout(),
	}
}

func (s *Show) EndOffset() time.Duration {
	return s.StartOffset + time.Duration(s.DurationMinutes)*time.Minute
}

// StartLabel formats the start as HH:MM.
func (s *Show) StartLabel() string {
	return FormatClock(s.StartOffset)
}

// EndLabel formats the end as HH:MM, wrapping past midnight.
func (s *Show) EndLabel() string {
	return FormatClock(s.EndOffset())
}

// StartOn returns the start of the show on the calendar date of day. The
// offset is applied as wall clock, so the stamp reads the same HH:MM on
// daylight-saving transition dates.
func (s *Show) StartOn(day time.Time) time.Time {
	y, month, d := day.Date()
	h, m, sec := clockFields(s.StartOffset)
	return time.Date(y, month, d, h, m, sec, 0, day.Location())
}

func clockFields(offset time.Duration) (int, int, int) {
	seconds := int(offset / time.Second)
	return seconds / 3600, seconds / 60 % 60, seconds % 60
}

// FormatClock renders an offset from midnight as HH:MM (24h, wrapping).
func FormatClock(offset time.Duration) string {
	minutes := int(offset/time.Minute) % (24 * 60)
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// OffsetOf returns the time-of-day part of t.
func OffsetOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

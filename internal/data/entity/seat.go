package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	SeatRows     = "ABCDE"
	SeatsPerRow  = 5
	SeatsPerShow = len(SeatRows) * SeatsPerRow
	DaysInWeek   = 7
)

// SeatCode is a row letter followed by a seat number, e.g. "A1".
type SeatCode string

// Seat is the descriptive layout entry of a show. It is not used for booking.
type Seat struct {
	Row    string
	Number int
}

// ParseSeatCode canonicalizes operator input ("a05" -> "A5").
func ParseSeatCode(s string) (SeatCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return "", fmt.Errorf("seat code %q too short", s)
	}
	row := s[:1]
	if !strings.Contains(SeatRows, row) {
		return "", fmt.Errorf("seat code %q: unknown row %s", s, row)
	}
	num, err := strconv.Atoi(s[1:])
	if err != nil || num < 1 || num > SeatsPerRow {
		return "", fmt.Errorf("seat code %q: number must be 1-%d", s, SeatsPerRow)
	}
	return SeatCode(row + strconv.Itoa(num)), nil
}

// IsSeatCodeValid reports whether s parses as a seat code.
func IsSeatCodeValid(s string) bool {
	_, err := ParseSeatCode(s)
	return err == nil
}

// index returns the row-major position of the seat, or -1.
func (c SeatCode) index() int {
	if len(c) < 2 {
		return -1
	}
	row := strings.IndexByte(SeatRows, c[0])
	num, err := strconv.Atoi(string(c[1:]))
	if row < 0 || err != nil || num < 1 || num > SeatsPerRow {
		return -1
	}
	return row*SeatsPerRow + num - 1
}

func seatCodeAt(i int) SeatCode {
	return SeatCode(fmt.Sprintf("%c%d", SeatRows[i/SeatsPerRow], i%SeatsPerRow+1))
}

// AllSeatCodes returns the 25 codes in row-major order.
func AllSeatCodes() []SeatCode {
	codes := make([]SeatCode, 0, SeatsPerShow)
	for i := 0; i < SeatsPerShow; i++ {
		codes = append(codes, seatCodeAt(i))
	}
	return codes
}

// DefaultSeatLayout builds the descriptive seat list for a room.
func DefaultSeatLayout() []Seat {
	seats := make([]Seat, 0, SeatsPerShow)
	for _, row := range SeatRows {
		for n := 1; n <= SeatsPerRow; n++ {
			seats = append(seats, Seat{Row: string(row), Number: n})
		}
	}
	return seats
}

// WeekdaysMondayFirst is the order days are offered to the operator.
var WeekdaysMondayFirst = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

func ValidWeekday(d time.Weekday) bool {
	return d >= time.Sunday && d <= time.Saturday
}

// ParseWeekday accepts English day names (any case, 3-letter prefix ok) or 0-6 with Sunday = 0.
func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(key); err == nil {
		if ValidWeekday(time.Weekday(n)) {
			return time.Weekday(n), nil
		}
		return 0, fmt.Errorf("day %d out of range", n)
	}
	if len(key) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), key) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown day %q", s)
}

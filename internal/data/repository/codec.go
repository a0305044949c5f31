package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cinema-seating/internal/data/entity"
)

// Records mirror the movies.json / bookings.json layout written by the
// first console release, so existing files keep loading.

type seatRecord struct {
	Row    string `json:"Row"`
	Number int    `json:"Number"`
}

type showRecord struct {
	Room             int                            `json:"Room"`
	Time             string                         `json:"Time"`
	Duration         int                            `json:"Duration"`
	Seats            []seatRecord                   `json:"Seats"`
	DailyBookedSeats map[string]map[string][]string `json:"DailyBookedSeats"`
}

type movieRecord struct {
	Title string       `json:"Title"`
	Shows []showRecord `json:"Shows"`
}

type bookingRecord struct {
	MovieTitle   string            `json:"MovieTitle"`
	Room         int               `json:"Room"`
	ShowTime     string            `json:"ShowTime"`
	TicketType   flexInt           `json:"TicketType"`
	Day          flexInt           `json:"Day"`
	SeatsWithIDs map[string]string `json:"SeatsWithIds"`
	TotalPrice   float64           `json:"TotalPrice"`
	Discount     float64           `json:"Discount"`
}

// flexInt decodes an enum stored either as a number or as its name.
type flexInt struct {
	raw string
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.raw = s
		return nil
	}
	f.raw = string(b)
	return nil
}

func (f flexInt) MarshalJSON() ([]byte, error) {
	if _, err := strconv.Atoi(f.raw); err == nil {
		return []byte(f.raw), nil
	}
	return json.Marshal(f.raw)
}

func intField(n int) flexInt {
	return flexInt{raw: strconv.Itoa(n)}
}

var showTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
}

func parseShowTime(s string) (time.Time, error) {
	for _, layout := range showTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid show time %q", s)
}

// legacy TimeSpan values look like "10:00:00"
func formatTimeSpan(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

func encodeCatalog(movies []*entity.Movie) ([]byte, error) {
	records := make([]movieRecord, len(movies))
	for i, m := range movies {
		shows := make([]showRecord, len(m.Shows))
		for j, s := range m.Shows {
			shows[j] = encodeShow(s)
		}
		records[i] = movieRecord{Title: m.Title, Shows: shows}
	}
	return json.MarshalIndent(records, "", "  ")
}

// encodeShow writes all 7 days x 4 classes; both variants of a pool carry
// the same list.
func encodeShow(s *entity.Show) showRecord {
	seats := make([]seatRecord, len(s.Seats))
	for i, seat := range s.Seats {
		seats[i] = seatRecord{Row: seat.Row, Number: seat.Number}
	}

	daily := make(map[string]map[string][]string, entity.DaysInWeek)
	for day := time.Sunday; day <= time.Saturday; day++ {
		byClass := make(map[string][]string, len(entity.TicketClasses))
		for _, class := range entity.TicketClasses {
			booked := s.Inventory.Booked(class, day)
			codes := make([]string, len(booked))
			for k, code := range booked {
				codes[k] = string(code)
			}
			byClass[class.LegacyName()] = codes
		}
		daily[day.String()] = byClass
	}

	return showRecord{
		Room:             s.Room,
		Time:             formatTimeSpan(s.StartOffset),
		Duration:         s.DurationMinutes,
		Seats:            seats,
		DailyBookedSeats: daily,
	}
}

func decodeCatalog(data []byte) ([]*entity.Movie, error) {
	var records []movieRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	movies := make([]*entity.Movie, len(records))
	for i, rec := range records {
		movie := &entity.Movie{Title: rec.Title, Shows: make([]*entity.Show, 0, len(rec.Shows))}
		for _, sr := range rec.Shows {
			show, err := decodeShow(sr)
			if err != nil {
				return nil, fmt.Errorf("movie %q: %w", rec.Title, err)
			}
			movie.Shows = append(movie.Shows, show)
		}
		movies[i] = movie
	}
	return movies, nil
}

// decodeShow unions the variant lists of each pool. A show without
// DailyBookedSeats decodes to an empty inventory.
func decodeShow(rec showRecord) (*entity.Show, error) {
	start, err := entity.ParseClock(rec.Time)
	if err != nil {
		return nil, fmt.Errorf("room %d: %w", rec.Room, err)
	}

	show := &entity.Show{
		Room:            rec.Room,
		StartOffset:     start,
		DurationMinutes: rec.Duration,
		Seats:           make([]entity.Seat, len(rec.Seats)),
	}
	for i, seat := range rec.Seats {
		show.Seats[i] = entity.Seat{Row: strings.ToUpper(seat.Row), Number: seat.Number}
	}

	for dayKey, byClass := range rec.DailyBookedSeats {
		day, err := entity.ParseWeekday(dayKey)
		if err != nil {
			return nil, fmt.Errorf("room %d at %s: %w", rec.Room, rec.Time, err)
		}
		for classKey, codes := range byClass {
			class, err := entity.ParseTicketClass(classKey)
			if err != nil {
				return nil, fmt.Errorf("room %d at %s: %w", rec.Room, rec.Time, err)
			}
			for _, raw := range codes {
				code, err := entity.ParseSeatCode(raw)
				if err != nil {
					return nil, fmt.Errorf("room %d at %s: %w", rec.Room, rec.Time, err)
				}
				show.Inventory.Reserve(class, day, code)
			}
		}
	}
	return show, nil
}

func encodeLedger(bookings []*entity.Booking) ([]byte, error) {
	records := make([]bookingRecord, len(bookings))
	for i, b := range bookings {
		seats := make(map[string]string, len(b.SeatsWithIDs))
		for code, id := range b.SeatsWithIDs {
			seats[string(code)] = id
		}
		records[i] = bookingRecord{
			MovieTitle:   b.MovieTitle,
			Room:         b.Room,
			ShowTime:     b.ShowTime.Format(time.RFC3339),
			TicketType:   intField(int(b.TicketClass)),
			Day:          intField(int(b.Day)),
			SeatsWithIDs: seats,
			TotalPrice:   b.TotalPrice,
			Discount:     b.Discount,
		}
	}
	return json.MarshalIndent(records, "", "  ")
}

func decodeLedger(data []byte) ([]*entity.Booking, error) {
	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}

	bookings := make([]*entity.Booking, 0, len(records))
	for i, rec := range records {
		b, err := decodeBooking(rec)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", i, err)
		}
		// an empty booking would violate the ledger invariant
		if len(b.SeatsWithIDs) == 0 {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func decodeBooking(rec bookingRecord) (*entity.Booking, error) {
	showTime, err := parseShowTime(rec.ShowTime)
	if err != nil {
		return nil, err
	}
	class, err := entity.ParseTicketClass(rec.TicketType.raw)
	if err != nil {
		return nil, err
	}
	day, err := entity.ParseWeekday(rec.Day.raw)
	if err != nil {
		return nil, err
	}

	seats := make(map[entity.SeatCode]string, len(rec.SeatsWithIDs))
	for raw, id := range rec.SeatsWithIDs {
		code, err := entity.ParseSeatCode(raw)
		if err != nil {
			return nil, err
		}
		seats[code] = id
	}

	return &entity.Booking{
		MovieTitle:   rec.MovieTitle,
		Room:         rec.Room,
		StartOffset:  entity.OffsetOf(showTime),
		ShowTime:     showTime,
		TicketClass:  class,
		Day:          day,
		SeatsWithIDs: seats,
		TotalPrice:   rec.TotalPrice,
		Discount:     rec.Discount,
	}, nil
}

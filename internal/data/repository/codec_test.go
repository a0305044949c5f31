package repository

import (
	"encoding/json"
	"testing"
	"time"

	"cinema-seating/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyCatalog = `[
  {
    "Title": "Avengers",
    "Shows": [
      {
        "Room": 1,
        "Time": "10:00:00",
        "Duration": 120,
        "Seats": [{"Row": "A", "Number": 1}, {"Row": "a", "Number": 2}],
        "DailyBookedSeats": {
          "Monday": {"Regular": ["A1"], "AllDayRegular": ["A1", "B2"], "Deluxe": [], "AllDayDeluxe": []},
          "5": {"1": ["e5"]}
        }
      },
      {
        "Room": 2,
        "Time": "11:00:00",
        "Duration": 90,
        "Seats": []
      }
    ]
  }
]`

func TestDecodeCatalog_Legacy(t *testing.T) {
	movies, err := decodeCatalog([]byte(legacyCatalog))
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Len(t, movies[0].Shows, 2)

	show := movies[0].Shows[0]
	assert.Equal(t, 1, show.Room)
	assert.Equal(t, 10*time.Hour, show.StartOffset)
	assert.Equal(t, 120, show.DurationMinutes)
	assert.Equal(t, []entity.Seat{{Row: "A", Number: 1}, {Row: "A", Number: 2}}, show.Seats)

	// variants of a pool are unioned
	assert.Equal(t, []entity.SeatCode{"A1", "B2"}, show.Inventory.Booked(entity.TicketStandard, time.Monday))
	assert.Equal(t, []entity.SeatCode{"A1", "B2"}, show.Inventory.Booked(entity.TicketStandardAllDay, time.Monday))
	assert.Empty(t, show.Inventory.Booked(entity.TicketPremium, time.Monday))

	// numeric day and class keys
	assert.True(t, show.Inventory.IsBooked(entity.TicketPremiumAllDay, time.Friday, "E5"))

	missing := movies[0].Shows[1]
	assert.True(t, missing.Inventory.Empty())
	assert.Equal(t, 90, missing.DurationMinutes)
}

func TestDecodeCatalog_Errors(t *testing.T) {
	tests := map[string]string{
		"not json":  `{`,
		"bad time":  `[{"Title":"X","Shows":[{"Room":1,"Time":"late","Duration":1}]}]`,
		"bad day":   `[{"Title":"X","Shows":[{"Room":1,"Time":"10:00:00","DailyBookedSeats":{"Caturday":{}}}]}]`,
		"bad class": `[{"Title":"X","Shows":[{"Room":1,"Time":"10:00:00","DailyBookedSeats":{"Monday":{"Gold":[]}}}]}]`,
		"bad seat":  `[{"Title":"X","Shows":[{"Room":1,"Time":"10:00:00","DailyBookedSeats":{"Monday":{"Regular":["Z1"]}}}]}]`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestEncodeCatalog_WritesEveryDayAndClass(t *testing.T) {
	show := entity.NewShow(3, 21*time.Hour, 120)
	show.Inventory.Reserve(entity.TicketPremium, time.Sunday, "C3")
	movies := []*entity.Movie{{Title: "Joker", Shows: []*entity.Show{show}}}

	data, err := encodeCatalog(movies)
	require.NoError(t, err)

	var records []movieRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	rec := records[0].Shows[0]

	assert.Equal(t, "21:00:00", rec.Time)
	assert.Len(t, rec.Seats, entity.SeatsPerShow)
	require.Len(t, rec.DailyBookedSeats, entity.DaysInWeek)
	for day, byClass := range rec.DailyBookedSeats {
		assert.Len(t, byClass, 4, day)
	}
	assert.Equal(t, []string{"C3"}, rec.DailyBookedSeats["Sunday"]["Deluxe"])
	assert.Equal(t, []string{"C3"}, rec.DailyBookedSeats["Sunday"]["AllDayDeluxe"])
	assert.Empty(t, rec.DailyBookedSeats["Sunday"]["Regular"])

	decoded, err := decodeCatalog(data)
	require.NoError(t, err)
	assert.Equal(t, show.Inventory, decoded[0].Shows[0].Inventory)
}

func TestDecodeLedger_Legacy(t *testing.T) {
	doc := `[
  {
    "MovieTitle": "Avengers",
    "Room": 1,
    "ShowTime": "2025-06-02T10:00:00+07:00",
    "TicketType": 1,
    "Day": 1,
    "SeatsWithIds": {"A1": "id-1", "a2": "id-2"},
    "TotalPrice": 15000,
    "Discount": 1000
  },
  {
    "MovieTitle": "Joker",
    "Room": 2,
    "ShowTime": "2025-06-02T14:00:00",
    "TicketType": "AllDayRegular",
    "Day": "Saturday",
    "SeatsWithIds": {},
    "TotalPrice": 0,
    "Discount": 0
  },
  {
    "MovieTitle": "Inception",
    "Room": 3,
    "ShowTime": "2025-06-02T15:00:00.0000000",
    "TicketType": "3",
    "Day": 0,
    "SeatsWithIds": {"E5": "id-3"},
    "TotalPrice": 15000,
    "Discount": 0
  }
]`

	bookings, err := decodeLedger([]byte(doc))
	require.NoError(t, err)
	require.Len(t, bookings, 2, "empty booking dropped")

	first := bookings[0]
	assert.Equal(t, entity.TicketPremium, first.TicketClass)
	assert.Equal(t, time.Monday, first.Day)
	assert.Equal(t, 10*time.Hour, first.ShowStart())
	assert.Equal(t, map[entity.SeatCode]string{"A1": "id-1", "A2": "id-2"}, first.SeatsWithIDs)
	assert.Equal(t, 15000.0, first.TotalPrice)
	assert.Equal(t, 1000.0, first.Discount)

	assert.Equal(t, entity.TicketPremiumAllDay, bookings[1].TicketClass)
	assert.Equal(t, time.Sunday, bookings[1].Day)
	assert.Equal(t, 15*time.Hour, bookings[1].ShowStart())
}

func TestLedger_EncodeDecode(t *testing.T) {
	booking := &entity.Booking{
		MovieTitle:   "Spider-Man",
		Room:         2,
		StartOffset:  14 * time.Hour,
		ShowTime:     time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC),
		TicketClass:  entity.TicketStandardAllDay,
		Day:          time.Thursday,
		SeatsWithIDs: map[entity.SeatCode]string{"D4": "abc"},
		TotalPrice:   -500,
		Discount:     10500,
	}

	data, err := encodeLedger([]*entity.Booking{booking})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"TicketType": 2`)
	assert.Contains(t, string(data), `"Day": 4`)
	assert.Contains(t, string(data), `"SeatsWithIds"`)

	decoded, err := decodeLedger(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, booking.SeatsWithIDs, decoded[0].SeatsWithIDs)
	assert.True(t, booking.ShowTime.Equal(decoded[0].ShowTime))
	assert.Equal(t, 14*time.Hour, decoded[0].ShowStart())
	assert.Equal(t, booking.TotalPrice, decoded[0].TotalPrice)
}

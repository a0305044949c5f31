package adaptor

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type menuFixture struct {
	menu  *MenuHandler
	state *entity.State
	repo  *repository.Repository
}

func newMenuFixture(t *testing.T) *menuFixture {
	t.Helper()
	dir := t.TempDir()
	log := zaptest.NewLogger(t)
	repo := repository.NewFileRepository(filepath.Join(dir, "movies.json"), filepath.Join(dir, "bookings.json"), log)

	n := 0
	booking := usecase.NewBookingService(usecase.DefaultPriceTable(), nil, log,
		usecase.WithTicketIDGenerator(func() string {
			n++
			return []string{"", "id-one", "id-two", "id-three"}[n]
		}),
	)
	catalog := usecase.NewCatalogService(repo, log)

	state, err := catalog.LoadState(context.Background())
	require.NoError(t, err)

	return &menuFixture{
		menu:  NewMenuHandler(booking, catalog, state, "Test Cinema", log),
		state: state,
		repo:  repo,
	}
}

func (f *menuFixture) run(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	err := f.menu.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, err)
	return out.String()
}

func TestMenu_BookAndCancel(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t,
		"1",     // new booking
		"1",     // Avengers
		"2",     // Premium
		"1",     // Monday
		"1",     // room 1 at 10:00
		"2",     // two seats
		"a1",    // seat 1
		"A1",    // already picked
		"Z9",    // invalid
		"A2",    // seat 2
		"y",     // discount
		"2",     // fixed
		"1000",  // amount
		"2",     // cancel
		"id-one",
		"2",
		"nope",
		"0",
	)

	assert.Contains(t, out, "Welcome to Test Cinema!")
	assert.Contains(t, out, "2. Premium - Price: 8000")
	assert.Contains(t, out, "1. Monday")
	assert.Contains(t, out, "7. Sunday")
	assert.Contains(t, out, "1. Room 1 - Start: 10:00 - End: 12:00")
	assert.Contains(t, out, "Available seats: 25")
	assert.Contains(t, out, "[✓] [✓] [P]")
	assert.Contains(t, out, "Booking completed! Total Price: 15000 (Discount: 1000)")
	assert.Contains(t, out, "Seat A1 - Ticket ID: id-one")
	assert.Contains(t, out, "Seat A2 - Ticket ID: id-two")
	assert.Contains(t, out, "Booking cancelled successfully!")
	assert.Contains(t, out, "Ticket ID not found!")
	assert.Contains(t, out, "All bookings saved. Goodbye!")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice!"))

	require.Equal(t, 1, f.state.Ledger.Len())
	booking := f.state.Ledger.Bookings[0]
	assert.Equal(t, map[entity.SeatCode]string{"A2": "id-two"}, booking.SeatsWithIDs)
	assert.Equal(t, time.Monday, booking.Day)

	show := f.state.Catalog.FindShow("Avengers", 1, 10*time.Hour)
	require.NotNil(t, show)
	assert.Equal(t, []entity.SeatCode{"A2"}, show.Inventory.Booked(entity.TicketPremiumAllDay, time.Monday))

	stored, err := f.repo.Ledger.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "id-two", stored[0].SeatsWithIDs["A2"])

	movies, err := f.repo.Catalog.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, movies[0].Shows[0].Inventory.IsBooked(entity.TicketPremium, time.Monday, "A2"))
	assert.False(t, movies[0].Shows[0].Inventory.IsBooked(entity.TicketPremium, time.Monday, "A1"))
}

func TestMenu_DayNumberSelectsListedDay(t *testing.T) {
	f := newMenuFixture(t)

	f.run(t,
		"1", "5", "1", // Joker, Standard
		"7",           // Sunday, the last listed day
		"12",          // room 3 at 21:00
		"1", "E5",
		"n",
	)

	require.Equal(t, 1, f.state.Ledger.Len())
	booking := f.state.Ledger.Bookings[0]
	assert.Equal(t, time.Sunday, booking.Day)
	assert.Equal(t, "Joker", booking.MovieTitle)
	assert.Equal(t, 3, booking.Room)
	assert.Equal(t, 5000.0, booking.TotalPrice)
}

func TestMenu_GoBackKeepsPickedSeats(t *testing.T) {
	f := newMenuFixture(t)

	f.run(t,
		"1", "1", "1", "1", "1",
		"3",  // three seats
		"B2", // only one picked
		"0",  // back
		"n",
		"0",
	)

	require.Equal(t, 1, f.state.Ledger.Len())
	assert.Len(t, f.state.Ledger.Bookings[0].SeatsWithIDs, 1)
}

func TestMenu_BackOutOfEveryStep(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t,
		"9",           // invalid option
		"1", "0",      // back from movie
		"1", "1", "0", // back from class
		"1", "1", "1", "x", "0", // invalid day, then back
		"1", "1", "1", "1", "0", // back from show
		"1", "1", "1", "1", "1", "26", "0", // too many seats, back
		"1", "1", "1", "1", "1", "1", "0", // back before any seat
		"0",
	)

	assert.Zero(t, f.state.Ledger.Len())
	assert.Contains(t, out, "Invalid choice! Please try again.")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_PercentageDiscountRetry(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t,
		"1", "1", "3", "2", "1", // Avengers, StandardAllDay, Tuesday, room 1
		"2", "C1", "C2",
		"y",
		"3",          // not a discount type
		"1", "150",   // out of range
		"1 Percentage", "25",
		"0",
	)

	assert.Equal(t, 2, strings.Count(out, "Invalid choice! Write '1 Percentage' or '2 Fixed'."))
	require.Equal(t, 1, f.state.Ledger.Len())
	booking := f.state.Ledger.Bookings[0]
	assert.Equal(t, 5000.0, booking.Discount)
	assert.Equal(t, 15000.0, booking.TotalPrice)
	assert.Equal(t, time.Tuesday, booking.Day)
}

func TestMenu_EndOfInputSavesLedger(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "1", "1", "1", "1", "1", "1", "D4", "n")

	assert.Contains(t, out, "All bookings saved. Goodbye!")
	stored, err := f.repo.Ledger.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory_ZeroValueIsEmpty(t *testing.T) {
	var inv Inventory

	assert.True(t, inv.Empty())
	for _, class := range TicketClasses {
		for d := time.Sunday; d <= time.Saturday; d++ {
			assert.Equal(t, SeatsPerShow, inv.Available(class, d))
			assert.Empty(t, inv.Booked(class, d))
		}
	}
}

func TestInventory_ReserveThenReleaseRestores(t *testing.T) {
	var inv Inventory

	for _, class := range TicketClasses {
		for _, seat := range AllSeatCodes() {
			inv.Reserve(class, time.Wednesday, seat)
			require.True(t, inv.IsBooked(class, time.Wednesday, seat))

			inv.Release(class, time.Wednesday, seat)
			assert.False(t, inv.IsBooked(class, time.Wednesday, seat), "%s %s", class, seat)
		}
	}
	assert.True(t, inv.Empty())
}

func TestInventory_VariantsOfAPoolShareSeats(t *testing.T) {
	tests := []struct {
		reserveAs TicketClass
		alias     TicketClass
	}{
		{TicketStandard, TicketStandardAllDay},
		{TicketStandardAllDay, TicketStandard},
		{TicketPremium, TicketPremiumAllDay},
		{TicketPremiumAllDay, TicketPremium},
	}

	for _, tt := range tests {
		t.Run(tt.reserveAs.String(), func(t *testing.T) {
			var inv Inventory
			inv.Reserve(tt.reserveAs, time.Friday, "C3")

			assert.True(t, inv.IsBooked(tt.alias, time.Friday, "C3"))

			inv.Release(tt.alias, time.Friday, "C3")
			assert.False(t, inv.IsBooked(tt.reserveAs, time.Friday, "C3"))
		})
	}
}

func TestInventory_PoolsAreIndependent(t *testing.T) {
	var inv Inventory

	inv.Reserve(TicketStandard, time.Monday, "A1")

	assert.True(t, inv.IsBooked(TicketStandard, time.Monday, "A1"))
	assert.True(t, inv.IsBooked(TicketStandardAllDay, time.Monday, "A1"))
	assert.False(t, inv.IsBooked(TicketPremium, time.Monday, "A1"))
	assert.False(t, inv.IsBooked(TicketPremiumAllDay, time.Monday, "A1"))

	// the premium pool can still sell the same physical seat
	inv.Reserve(TicketPremium, time.Monday, "A1")
	assert.True(t, inv.IsBooked(TicketPremium, time.Monday, "A1"))
}

func TestInventory_DaysAreIndependent(t *testing.T) {
	var inv Inventory

	inv.Reserve(TicketStandard, time.Monday, "A1")

	assert.False(t, inv.IsBooked(TicketStandard, time.Tuesday, "A1"))
	assert.Equal(t, SeatsPerShow-1, inv.Available(TicketStandard, time.Monday))
	assert.Equal(t, SeatsPerShow, inv.Available(TicketStandard, time.Tuesday))
}

func TestInventory_ReserveIsIdempotent(t *testing.T) {
	var inv Inventory

	inv.Reserve(TicketPremium, time.Sunday, "E5")
	inv.Reserve(TicketPremiumAllDay, time.Sunday, "E5")

	assert.Equal(t, []SeatCode{"E5"}, inv.Booked(TicketPremium, time.Sunday))
	assert.Equal(t, SeatsPerShow-1, inv.Available(TicketPremium, time.Sunday))
}

func TestInventory_ReleaseUnbookedIsNoop(t *testing.T) {
	var inv Inventory
	inv.Reserve(TicketStandard, time.Monday, "B2")

	inv.Release(TicketStandard, time.Monday, "B3")

	assert.Equal(t, []SeatCode{"B2"}, inv.Booked(TicketStandard, time.Monday))
}

func TestInventory_BookedIsRowMajor(t *testing.T) {
	var inv Inventory
	for _, seat := range []SeatCode{"E1", "A5", "C2", "A1"} {
		inv.Reserve(TicketStandard, time.Thursday, seat)
	}

	assert.Equal(t, []SeatCode{"A1", "A5", "C2", "E1"}, inv.Booked(TicketStandard, time.Thursday))
}

func TestInventory_IgnoresInvalidInput(t *testing.T) {
	var inv Inventory

	inv.Reserve(TicketClass(9), time.Monday, "A1")
	inv.Reserve(TicketStandard, time.Weekday(7), "A1")
	inv.Reserve(TicketStandard, time.Monday, "Z9")

	assert.True(t, inv.Empty())
	assert.False(t, inv.IsBooked(TicketStandard, time.Monday, "Z9"))
	assert.Zero(t, inv.Available(TicketClass(-1), time.Monday))
	assert.Nil(t, inv.Booked(TicketStandard, time.Weekday(-1)))
}

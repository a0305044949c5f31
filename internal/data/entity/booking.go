package entity

import (
	"sort"
	"time"
)

// Booking is a batch of seats bought together for one show, class and day.
// SeatsWithIDs maps each seat to its ticket id and is never empty while the
// booking is held by a Ledger. StartOffset is the catalog key of the show;
// ShowTime is the stamped date and is only descriptive.
type Booking struct {
	MovieTitle   string
	Room         int
	StartOffset  time.Duration
	ShowTime     time.Time
	TicketClass  TicketClass
	Day          time.Weekday
	SeatsWithIDs map[SeatCode]string
	TotalPrice   float64
	Discount     float64
}

// SeatCodes returns the booked seats in row-major order.
func (b *Booking) SeatCodes() []SeatCode {
	codes := make([]SeatCode, 0, len(b.SeatsWithIDs))
	for code := range b.SeatsWithIDs {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return codes[i].index() < codes[j].index()
	})
	return codes
}

// SeatForTicket returns the seat a ticket id was minted for.
func (b *Booking) SeatForTicket(ticketID string) (SeatCode, bool) {
	for code, id := range b.SeatsWithIDs {
		if id == ticketID {
			return code, true
		}
	}
	return "", false
}

// ShowStart is the time-of-day key used to find the show in the catalog.
func (b *Booking) ShowStart() time.Duration {
	return b.StartOffset
}

package entity

// Ledger holds bookings in the order they were made.
type Ledger struct {
	Bookings []*Booking
}

func (l *Ledger) Add(b *Booking) {
	l.Bookings = append(l.Bookings, b)
}

// FindTicket scans bookings in order and returns the first one holding
// ticketID, its index and the seat the ticket belongs to.
func (l *Ledger) FindTicket(ticketID string) (*Booking, int, SeatCode, bool) {
	if ticketID == "" {
		return nil, -1, "", false
	}
	for i, b := range l.Bookings {
		if seat, ok := b.SeatForTicket(ticketID); ok {
			return b, i, seat, true
		}
	}
	return nil, -1, "", false
}

// RemoveSeat drops one seat from the booking at index i and deletes the
// booking once it has no seats left. It reports whether the booking was deleted.
func (l *Ledger) RemoveSeat(i int, seat SeatCode) bool {
	if i < 0 || i >= len(l.Bookings) {
		return false
	}
	b := l.Bookings[i]
	delete(b.SeatsWithIDs, seat)
	if len(b.SeatsWithIDs) > 0 {
		return false
	}
	l.Bookings = append(l.Bookings[:i], l.Bookings[i+1:]...)
	return true
}

// Len returns the number of active bookings.
func (l *Ledger) Len() int {
	return len(l.Bookings)
}

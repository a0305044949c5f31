package entity

// State owns everything the booking service mutates. It is created once at
// startup and handed to every operation; nothing else keeps a reference.
type State struct {
	Catalog *Catalog
	Ledger  *Ledger
}

func NewState(movies []*Movie, bookings []*Booking) *State {
	return &State{
		Catalog: &Catalog{Movies: movies},
		Ledger:  &Ledger{Bookings: bookings},
	}
}

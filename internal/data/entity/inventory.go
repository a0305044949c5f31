package entity

import (
	"math/bits"
	"time"
)

// seatMask holds one bit per seat code, row-major.
type seatMask uint32

// Inventory is the booked-seat table of a show, indexed by weekday and pool.
// Lookups resolve the ticket class to its pool, so both variants of a pool
// always see the same seats. The zero value is an empty inventory.
type Inventory struct {
	booked [DaysInWeek][numPools]seatMask
}

func (inv *Inventory) slot(class TicketClass, day time.Weekday) *seatMask {
	if !class.Valid() || !ValidWeekday(day) {
		return nil
	}
	return &inv.booked[day][class.Pool()]
}

// IsBooked reports whether seat is taken in the pool of class on day.
func (inv *Inventory) IsBooked(class TicketClass, day time.Weekday, seat SeatCode) bool {
	slot, idx := inv.slot(class, day), seat.index()
	if slot == nil || idx < 0 {
		return false
	}
	return *slot&(1<<idx) != 0
}

// Reserve marks seat as booked for every class in the pool of class.
// Callers check IsBooked first; reserving a booked seat leaves it booked.
func (inv *Inventory) Reserve(class TicketClass, day time.Weekday, seat SeatCode) {
	slot, idx := inv.slot(class, day), seat.index()
	if slot == nil || idx < 0 {
		return
	}
	*slot |= 1 << idx
}

// Release frees seat in the pool of class. No-op when not booked.
func (inv *Inventory) Release(class TicketClass, day time.Weekday, seat SeatCode) {
	slot, idx := inv.slot(class, day), seat.index()
	if slot == nil || idx < 0 {
		return
	}
	*slot &^= 1 << idx
}

// Booked lists the taken seats in row-major order.
func (inv *Inventory) Booked(class TicketClass, day time.Weekday) []SeatCode {
	slot := inv.slot(class, day)
	if slot == nil {
		return nil
	}
	var seats []SeatCode
	for i := 0; i < SeatsPerShow; i++ {
		if *slot&(1<<i) != 0 {
			seats = append(seats, seatCodeAt(i))
		}
	}
	return seats
}

// Available counts the seats still free for class on day.
func (inv *Inventory) Available(class TicketClass, day time.Weekday) int {
	slot := inv.slot(class, day)
	if slot == nil {
		return 0
	}
	return SeatsPerShow - bits.OnesCount32(uint32(*slot))
}

// Empty reports whether no seat is booked on any day in any pool.
func (inv *Inventory) Empty() bool {
	for _, day := range inv.booked {
		for _, mask := range day {
			if mask != 0 {
				return false
			}
		}
	}
	return true
}

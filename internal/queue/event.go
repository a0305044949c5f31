// Package queue publishes booking lifecycle events to the message broker.
package queue

const (
	BookingCreatedQueue  = "booking.created"
	TicketCancelledQueue = "ticket.cancelled"
)

// TicketEntry pairs a seat with the ticket id minted for it.
type TicketEntry struct {
	Seat     string `json:"seat"`
	TicketID string `json:"ticket_id"`
}

// BookingCreatedEvent is published once per successful booking.
type BookingCreatedEvent struct {
	MovieTitle  string        `json:"movie_title"`
	Room        int           `json:"room"`
	ShowTime    string        `json:"show_time"`
	Day         string        `json:"day"`
	TicketClass string        `json:"ticket_class"`
	Tickets     []TicketEntry `json:"tickets"`
	TotalPrice  float64       `json:"total_price"`
	Discount    float64       `json:"discount"`
	CreatedAt   string        `json:"created_at"`
}

// TicketCancelledEvent is published when a single ticket is cancelled.
// InventoryReleased is false when the show could no longer be found.
type TicketCancelledEvent struct {
	TicketID          string `json:"ticket_id"`
	MovieTitle        string `json:"movie_title"`
	Room              int    `json:"room"`
	Day               string `json:"day"`
	Seat              string `json:"seat"`
	BookingRemoved    bool   `json:"booking_removed"`
	InventoryReleased bool   `json:"inventory_released"`
	CancelledAt       string `json:"cancelled_at"`
}

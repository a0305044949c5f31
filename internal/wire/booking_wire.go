package wire

import (
	"cinema-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Post("/api/bookings", bookingHandler.CreateBooking)
	r.Get("/api/bookings", bookingHandler.GetBookings)

	// Tickets are addressed by the id printed on them
	r.Get("/api/tickets/{id}", bookingHandler.GetTicket)
	r.Delete("/api/tickets/{id}", bookingHandler.CancelTicket)
}

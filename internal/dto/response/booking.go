package response

import (
	"time"

	"cinema-seating/internal/data/entity"
)

type TicketResponse struct {
	Seat     string `json:"seat"`
	TicketID string `json:"ticket_id"`
}

type BookingResponse struct {
	MovieTitle  string           `json:"movie_title"`
	Room        int              `json:"room"`
	ShowDate    string           `json:"show_date"`
	ShowTime    string           `json:"show_time"`
	Day         string           `json:"day"`
	TicketClass string           `json:"ticket_class"`
	Pool        string           `json:"pool"`
	Tickets     []TicketResponse `json:"tickets"`
	TotalPrice  float64          `json:"total_price"`
	Discount    float64          `json:"discount"`
}

type TicketLookupResponse struct {
	TicketID string          `json:"ticket_id"`
	Seat     string          `json:"seat"`
	Booking  BookingResponse `json:"booking"`
}

type CancelResponse struct {
	TicketID          string `json:"ticket_id"`
	Seat              string `json:"seat"`
	MovieTitle        string `json:"movie_title"`
	BookingRemoved    bool   `json:"booking_removed"`
	InventoryReleased bool   `json:"inventory_released"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	codes := b.SeatCodes()
	tickets := make([]TicketResponse, len(codes))
	for i, code := range codes {
		tickets[i] = TicketResponse{Seat: string(code), TicketID: b.SeatsWithIDs[code]}
	}

	return BookingResponse{
		MovieTitle:  b.MovieTitle,
		Room:        b.Room,
		ShowDate:    b.ShowTime.Format(time.DateOnly),
		ShowTime:    entity.FormatClock(b.ShowStart()),
		Day:         b.Day.String(),
		TicketClass: b.TicketClass.String(),
		Pool:        b.TicketClass.Pool().String(),
		Tickets:     tickets,
		TotalPrice:  b.TotalPrice,
		Discount:    b.Discount,
	}
}

package request

type DiscountRequest struct {
	Type  string  `json:"type" validate:"required,oneof=percentage fixed"`
	Value float64 `json:"value" validate:"min=0"`
}

type CreateBookingRequest struct {
	MovieTitle  string           `json:"movie_title" validate:"required"`
	Room        int              `json:"room" validate:"required,min=1"`
	StartTime   string           `json:"start_time" validate:"required,clock"`
	TicketClass string           `json:"ticket_class" validate:"required,ticketclass"`
	Day         string           `json:"day" validate:"required,weekday"`
	Seats       []string         `json:"seats" validate:"required,min=1,max=25,dive,seatcode"`
	Discount    *DiscountRequest `json:"discount,omitempty" validate:"omitempty"`
}

type SeatMapRequest struct {
	TicketClass string `validate:"required,ticketclass"`
	Day         string `validate:"required,weekday"`
}

package response

type SeatResponse struct {
	SeatNumber  string `json:"seat_number"`
	SeatRow     string `json:"seat_row"`
	SeatColumn  int    `json:"seat_column"`
	IsAvailable bool   `json:"is_available"`
}

type SeatMapResponse struct {
	MovieTitle  string         `json:"movie_title"`
	Room        int            `json:"room"`
	StartTime   string         `json:"start_time"`
	Day         string         `json:"day"`
	TicketClass string         `json:"ticket_class"`
	Pool        string         `json:"pool"`
	Available   int            `json:"available"`
	Seats       []SeatResponse `json:"seats"`
}

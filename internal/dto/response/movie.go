package response

import "cinema-seating/internal/data/entity"

type ShowResponse struct {
	Room            int    `json:"room"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

type MovieResponse struct {
	Title     string `json:"title"`
	ShowCount int    `json:"show_count"`
}

type MovieDetailResponse struct {
	Title string         `json:"title"`
	Shows []ShowResponse `json:"shows"`
}

type PriceResponse struct {
	TicketClass string  `json:"ticket_class"`
	Pool        string  `json:"pool"`
	UnitPrice   float64 `json:"unit_price"`
}

func MovieToResponse(m *entity.Movie) MovieResponse {
	return MovieResponse{Title: m.Title, ShowCount: len(m.Shows)}
}

func MovieToDetailResponse(m *entity.Movie) MovieDetailResponse {
	shows := make([]ShowResponse, len(m.Shows))
	for i, s := range m.Shows {
		shows[i] = ShowToResponse(s)
	}
	return MovieDetailResponse{Title: m.Title, Shows: shows}
}

func ShowToResponse(s *entity.Show) ShowResponse {
	return ShowResponse{
		Room:            s.Room,
		StartTime:       s.StartLabel(),
		EndTime:         s.EndLabel(),
		DurationMinutes: s.DurationMinutes,
	}
}

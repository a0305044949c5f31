package adaptor

import (
	"fmt"
	"net/http"
	"strconv"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/dto/request"
	"cinema-seating/internal/dto/response"
	"cinema-seating/internal/usecase"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	booking usecase.BookingService
	catalog usecase.CatalogService
	state   *entity.State
	log     *zap.Logger
}

func NewMovieHandler(booking usecase.BookingService, catalog usecase.CatalogService, state *entity.State, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		booking: booking,
		catalog: catalog,
		state:   state,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies?page=&per_page=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	movies := h.catalog.ListMovies(h.state)
	items := make([]response.MovieResponse, len(movies))
	for i, m := range movies {
		items[i] = response.MovieToResponse(m)
	}

	utils.ResponseSuccess(w, "success", response.Paginate(items, req.Page, req.Limit()))
}

// GetMovieShows handles GET /api/movies/{title}/shows
func (h *MovieHandler) GetMovieShows(w http.ResponseWriter, r *http.Request) {
	title := pathParam(r, "title")

	movie, err := h.catalog.FindMovie(h.state, title)
	if err != nil {
		handleServiceError(h.log, w, err, "get movie shows")
		return
	}

	utils.ResponseSuccess(w, "success", response.MovieToDetailResponse(movie))
}

// GetSeatMap handles GET /api/movies/{title}/shows/{room}/{time}/seats?class=&day=
func (h *MovieHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	title := pathParam(r, "title")

	room, err := strconv.Atoi(pathParam(r, "room"))
	if err != nil || room < 1 {
		utils.ResponseBadRequest(w, "Room must be a positive number", nil)
		return
	}
	start, err := entity.ParseClock(pathParam(r, "time"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	query := r.URL.Query()
	req := request.SeatMapRequest{
		TicketClass: query.Get("class"),
		Day:         query.Get("day"),
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}
	class, _ := entity.ParseTicketClass(req.TicketClass)
	day, _ := entity.ParseWeekday(req.Day)

	seatMap, err := h.booking.SeatMap(h.state, title, room, start, class, day)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat map")
		return
	}

	seats := make([]response.SeatResponse, len(seatMap.Seats))
	for i, s := range seatMap.Seats {
		column, _ := strconv.Atoi(string(s.Code[1:]))
		seats[i] = response.SeatResponse{
			SeatNumber:  string(s.Code),
			SeatRow:     string(s.Code[:1]),
			SeatColumn:  column,
			IsAvailable: !s.Booked,
		}
	}

	utils.ResponseSuccess(w, "success", response.SeatMapResponse{
		MovieTitle:  seatMap.Movie.Title,
		Room:        seatMap.Show.Room,
		StartTime:   seatMap.Show.StartLabel(),
		Day:         seatMap.Day.String(),
		TicketClass: seatMap.Class.String(),
		Pool:        seatMap.Class.Pool().String(),
		Available:   seatMap.Available,
		Seats:       seats,
	})
}

// GetPrices handles GET /api/prices
func (h *MovieHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	prices := h.booking.Prices()
	items := make([]response.PriceResponse, 0, len(entity.TicketClasses))
	for _, class := range entity.TicketClasses {
		items = append(items, response.PriceResponse{
			TicketClass: class.String(),
			Pool:        class.Pool().String(),
			UnitPrice:   prices.UnitPrice(class),
		})
	}

	utils.ResponseSuccess(w, fmt.Sprintf("%d ticket classes", len(items)), items)
}

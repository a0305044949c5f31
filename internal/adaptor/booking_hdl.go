package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/dto/request"
	"cinema-seating/internal/dto/response"
	"cinema-seating/internal/usecase"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	booking usecase.BookingService
	catalog usecase.CatalogService
	state   *entity.State
	log     *zap.Logger
}

func NewBookingHandler(booking usecase.BookingService, catalog usecase.CatalogService, state *entity.State, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		booking: booking,
		catalog: catalog,
		state:   state,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.booking.BookSeats(r.Context(), h.state, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	if err := h.catalog.Persist(r.Context(), h.state); err != nil {
		handleServiceError(h.log, w, err, "persist booking")
		return
	}

	utils.ResponseCreated(w, "Booking completed", response.BookingToResponse(booking))
}

// GetBookings handles GET /api/bookings?page=&per_page=
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	items := make([]response.BookingResponse, h.state.Ledger.Len())
	for i, b := range h.state.Ledger.Bookings {
		items[i] = response.BookingToResponse(b)
	}

	utils.ResponseSuccess(w, "success", response.Paginate(items, req.Page, req.Limit()))
}

// GetTicket handles GET /api/tickets/{id}
func (h *BookingHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := pathParam(r, "id")

	booking, seat, err := h.booking.FindTicket(h.state, ticketID)
	if err != nil {
		handleServiceError(h.log, w, err, "get ticket")
		return
	}

	utils.ResponseSuccess(w, "success", response.TicketLookupResponse{
		TicketID: ticketID,
		Seat:     string(seat),
		Booking:  response.BookingToResponse(booking),
	})
}

// CancelTicket handles DELETE /api/tickets/{id}
func (h *BookingHandler) CancelTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := pathParam(r, "id")

	result := h.booking.CancelByTicketID(r.Context(), h.state, ticketID)
	if result.Status == usecase.CancelNotFound {
		utils.ResponseNotFound(w, "Ticket ID not found")
		return
	}

	if err := h.catalog.Persist(r.Context(), h.state); err != nil {
		handleServiceError(h.log, w, err, "persist cancellation")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled successfully", response.CancelResponse{
		TicketID:          ticketID,
		Seat:              string(result.Seat),
		MovieTitle:        result.Booking.MovieTitle,
		BookingRemoved:    result.BookingRemoved,
		InventoryReleased: result.InventoryReleased,
	})
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/dto/request"
	"cinema-seating/internal/queue"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Core operations
	CreateBooking(ctx context.Context, state *entity.State, in CreateBookingInput) *entity.Booking
	CancelByTicketID(ctx context.Context, state *entity.State, ticketID string) CancelResult

	// Entry point for remote callers; request struct tags are checked by the handler
	BookSeats(ctx context.Context, state *entity.State, req *request.CreateBookingRequest) (*entity.Booking, error)

	// Queries
	ResolveShow(state *entity.State, title string, room int, start time.Duration) (*entity.Movie, *entity.Show, error)
	SeatMap(state *entity.State, title string, room int, start time.Duration, class entity.TicketClass, day time.Weekday) (*SeatMap, error)
	FindTicket(state *entity.State, ticketID string) (*entity.Booking, entity.SeatCode, error)
	Prices() PriceTable
}

// CreateBookingInput carries a seat selection that was already checked
// seat by seat against the inventory.
type CreateBookingInput struct {
	Movie    *entity.Movie
	Show     *entity.Show
	Class    entity.TicketClass
	Day      time.Weekday
	Seats    []entity.SeatCode
	Discount Discount
}

type CancelStatus int

const (
	CancelNotFound CancelStatus = iota
	CancelFound
)

// CancelResult reports what a cancellation touched. InventoryReleased is
// false when the booking's show is no longer in the catalog.
type CancelResult struct {
	Status            CancelStatus
	TicketID          string
	Booking           *entity.Booking
	Seat              entity.SeatCode
	BookingRemoved    bool
	InventoryReleased bool
}

// SeatStatus is one cell of a seat map.
type SeatStatus struct {
	Code   entity.SeatCode
	Booked bool
}

// SeatMap is the availability of one show for a class and day.
type SeatMap struct {
	Movie     *entity.Movie
	Show      *entity.Show
	Class     entity.TicketClass
	Day       time.Weekday
	Seats     []SeatStatus
	Available int
}

type bookingService struct {
	prices    PriceTable
	publisher queue.Publisher
	newID     func() string
	now       func() time.Time
	log       *zap.Logger
}

type BookingServiceOption func(*bookingService)

// WithTicketIDGenerator replaces the uuid based ticket id generator.
func WithTicketIDGenerator(fn func() string) BookingServiceOption {
	return func(s *bookingService) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the clock used to stamp show dates.
func WithClock(fn func() time.Time) BookingServiceOption {
	return func(s *bookingService) {
		if fn != nil {
			s.now = fn
		}
	}
}

func NewBookingService(prices PriceTable, publisher queue.Publisher, log *zap.Logger, opts ...BookingServiceOption) BookingService {
	if publisher == nil {
		publisher = queue.NewNopPublisher()
	}
	s := &bookingService{
		prices:    prices,
		publisher: publisher,
		newID:     utils.GenerateTicketID,
		now:       time.Now,
		log:       log.With(zap.String("service", "booking")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *bookingService) Prices() PriceTable {
	return s.prices
}

func (s *bookingService) CreateBooking(ctx context.Context, state *entity.State, in CreateBookingInput) *entity.Booking {
	seatsWithIDs := make(map[entity.SeatCode]string, len(in.Seats))
	for _, seat := range in.Seats {
		seatsWithIDs[seat] = s.newID()
		in.Show.Inventory.Reserve(in.Class, in.Day, seat)
	}

	subtotal := s.prices.ComputeTotal(len(in.Seats), in.Class, 0)
	discount := in.Discount.Amount(subtotal)

	booking := &entity.Booking{
		MovieTitle:   in.Movie.Title,
		Room:         in.Show.Room,
		StartOffset:  in.Show.StartOffset,
		ShowTime:     in.Show.StartOn(s.now()),
		TicketClass:  in.Class,
		Day:          in.Day,
		SeatsWithIDs: seatsWithIDs,
		TotalPrice:   s.prices.ComputeTotal(len(in.Seats), in.Class, discount),
		Discount:     discount,
	}
	state.Ledger.Add(booking)

	s.log.Info("Booking created",
		zap.String("movie", booking.MovieTitle),
		zap.Int("room", booking.Room),
		zap.String("show_time", in.Show.StartLabel()),
		zap.String("day", booking.Day.String()),
		zap.String("ticket_class", booking.TicketClass.String()),
		zap.Int("seat_count", len(in.Seats)),
		zap.Float64("total_price", booking.TotalPrice),
		zap.Float64("discount", booking.Discount),
	)

	s.publish(ctx, queue.BookingCreatedQueue, bookingCreatedEvent(booking, s.now()))
	return booking
}

func (s *bookingService) CancelByTicketID(ctx context.Context, state *entity.State, ticketID string) CancelResult {
	result := CancelResult{Status: CancelNotFound, TicketID: ticketID}

	booking, idx, seat, ok := state.Ledger.FindTicket(ticketID)
	if !ok {
		s.log.Warn("Ticket not found", zap.String("ticket_id", ticketID))
		return result
	}

	show := state.Catalog.FindShow(booking.MovieTitle, booking.Room, booking.ShowStart())
	if show != nil {
		show.Inventory.Release(booking.TicketClass, booking.Day, seat)
		result.InventoryReleased = true
	} else {
		// Seat stays marked in whatever show still carries it.
		s.log.Warn("Show for cancelled ticket no longer in catalog",
			zap.String("ticket_id", ticketID),
			zap.String("movie", booking.MovieTitle),
			zap.Int("room", booking.Room),
			zap.String("show_time", entity.FormatClock(booking.ShowStart())),
		)
	}

	result.Status = CancelFound
	result.Booking = booking
	result.Seat = seat
	result.BookingRemoved = state.Ledger.RemoveSeat(idx, seat)

	s.log.Info("Ticket cancelled",
		zap.String("ticket_id", ticketID),
		zap.String("movie", booking.MovieTitle),
		zap.String("seat", string(seat)),
		zap.Bool("booking_removed", result.BookingRemoved),
		zap.Bool("inventory_released", result.InventoryReleased),
	)

	s.publish(ctx, queue.TicketCancelledQueue, queue.TicketCancelledEvent{
		TicketID:          ticketID,
		MovieTitle:        booking.MovieTitle,
		Room:              booking.Room,
		Day:               booking.Day.String(),
		Seat:              string(seat),
		BookingRemoved:    result.BookingRemoved,
		InventoryReleased: result.InventoryReleased,
		CancelledAt:       s.now().UTC().Format(time.RFC3339),
	})
	return result
}

func (s *bookingService) BookSeats(ctx context.Context, state *entity.State, req *request.CreateBookingRequest) (*entity.Booking, error) {
	if len(req.Seats) == 0 {
		return nil, fmt.Errorf("%w: no seats selected", ErrValidation)
	}

	class, err := entity.ParseTicketClass(req.TicketClass)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	day, err := entity.ParseWeekday(req.Day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	start, err := entity.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	discount := Discount{}
	if req.Discount != nil {
		discount = Discount{Kind: DiscountKind(req.Discount.Type), Value: req.Discount.Value}
	}
	if err := discount.Validate(); err != nil {
		return nil, err
	}

	movie, show, err := s.ResolveShow(state, req.MovieTitle, req.Room, start)
	if err != nil {
		return nil, err
	}

	seats := make([]entity.SeatCode, 0, len(req.Seats))
	seen := make(map[entity.SeatCode]bool, len(req.Seats))
	for _, raw := range req.Seats {
		seat, err := entity.ParseSeatCode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if seen[seat] {
			return nil, fmt.Errorf("%w: seat %s selected twice", ErrValidation, seat)
		}
		if show.Inventory.IsBooked(class, day, seat) {
			s.log.Warn("Seat already booked",
				zap.String("movie", movie.Title),
				zap.String("seat", string(seat)),
				zap.String("pool", class.Pool().String()),
				zap.String("day", day.String()),
			)
			return nil, fmt.Errorf("%w: %s on %s (%s)", ErrConflict, seat, day, class.Pool())
		}
		seen[seat] = true
		seats = append(seats, seat)
	}

	return s.CreateBooking(ctx, state, CreateBookingInput{
		Movie:    movie,
		Show:     show,
		Class:    class,
		Day:      day,
		Seats:    seats,
		Discount: discount,
	}), nil
}

func (s *bookingService) ResolveShow(state *entity.State, title string, room int, start time.Duration) (*entity.Movie, *entity.Show, error) {
	movie := state.Catalog.FindMovie(title)
	if movie == nil {
		return nil, nil, fmt.Errorf("%w: movie %q", ErrNotFound, title)
	}
	show := state.Catalog.FindShow(title, room, start)
	if show == nil {
		return nil, nil, fmt.Errorf("%w: show of %q in room %d at %s", ErrNotFound, title, room, entity.FormatClock(start))
	}
	return movie, show, nil
}

func (s *bookingService) SeatMap(state *entity.State, title string, room int, start time.Duration, class entity.TicketClass, day time.Weekday) (*SeatMap, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("%w: ticket class %d", ErrValidation, int(class))
	}
	if !entity.ValidWeekday(day) {
		return nil, fmt.Errorf("%w: day %d", ErrValidation, int(day))
	}

	movie, show, err := s.ResolveShow(state, title, room, start)
	if err != nil {
		return nil, err
	}

	codes := entity.AllSeatCodes()
	seats := make([]SeatStatus, len(codes))
	for i, code := range codes {
		seats[i] = SeatStatus{Code: code, Booked: show.Inventory.IsBooked(class, day, code)}
	}

	return &SeatMap{
		Movie:     movie,
		Show:      show,
		Class:     class,
		Day:       day,
		Seats:     seats,
		Available: show.Inventory.Available(class, day),
	}, nil
}

func (s *bookingService) FindTicket(state *entity.State, ticketID string) (*entity.Booking, entity.SeatCode, error) {
	booking, _, seat, ok := state.Ledger.FindTicket(ticketID)
	if !ok {
		return nil, "", fmt.Errorf("%w: ticket %s", ErrNotFound, ticketID)
	}
	return booking, seat, nil
}

// publish never fails the caller; broker trouble is only logged.
func (s *bookingService) publish(ctx context.Context, queueName string, event any) {
	if err := s.publisher.Publish(ctx, queueName, event); err != nil {
		s.log.Warn("Failed to publish event",
			zap.String("queue", queueName),
			zap.Error(err),
		)
	}
}

func bookingCreatedEvent(b *entity.Booking, now time.Time) queue.BookingCreatedEvent {
	codes := b.SeatCodes()
	tickets := make([]queue.TicketEntry, len(codes))
	for i, code := range codes {
		tickets[i] = queue.TicketEntry{Seat: string(code), TicketID: b.SeatsWithIDs[code]}
	}
	return queue.BookingCreatedEvent{
		MovieTitle:  b.MovieTitle,
		Room:        b.Room,
		ShowTime:    entity.FormatClock(b.ShowStart()),
		Day:         b.Day.String(),
		TicketClass: b.TicketClass.String(),
		Tickets:     tickets,
		TotalPrice:  b.TotalPrice,
		Discount:    b.Discount,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}
}

package adaptor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/usecase"

	"go.uber.org/zap"
)

// errInputClosed ends the session when the operator's input runs out.
var errInputClosed = errors.New("input closed")

// MenuHandler drives the interactive terminal session. Every selection is
// numeric with 0 meaning back; seats are typed as codes like A1.
type MenuHandler struct {
	booking usecase.BookingService
	catalog usecase.CatalogService
	state   *entity.State
	banner  string
	log     *zap.Logger

	in  *bufio.Scanner
	out io.Writer
}

func NewMenuHandler(booking usecase.BookingService, catalog usecase.CatalogService, state *entity.State, banner string, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		booking: booking,
		catalog: catalog,
		state:   state,
		banner:  banner,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// Run reads commands from in until the operator exits, the input ends or
// ctx is cancelled. The ledger is saved before returning.
func (h *MenuHandler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	h.in = bufio.NewScanner(in)
	h.out = out

	err := h.loop(ctx)
	if errors.Is(err, errInputClosed) {
		err = nil
	}

	// the session may end because ctx was cancelled; the final save still runs
	if saveErr := h.catalog.SaveLedger(context.WithoutCancel(ctx), h.state); saveErr != nil {
		h.log.Error("Failed to save ledger at exit", zap.Error(saveErr))
		return errors.Join(err, saveErr)
	}
	h.println("All bookings saved. Goodbye!")
	return err
}

func (h *MenuHandler) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.println()
		h.println("Welcome to " + h.banner + "!")
		h.println("1. Make a new booking")
		h.println("2. Cancel a booking")
		h.println("0. Exit")
		h.print("Choose an option: ")

		option, err := h.readLine()
		if err != nil {
			return err
		}

		switch option {
		case "0":
			return nil
		case "1":
			err = h.bookingFlow(ctx)
		case "2":
			err = h.cancelFlow(ctx)
		default:
			h.println("Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (h *MenuHandler) bookingFlow(ctx context.Context) error {
	movie, err := h.chooseMovie()
	if err != nil || movie == nil {
		return err
	}
	class, ok, err := h.chooseTicketClass()
	if err != nil || !ok {
		return err
	}
	day, ok, err := h.chooseDay()
	if err != nil || !ok {
		return err
	}
	show, err := h.chooseShow(movie)
	if err != nil || show == nil {
		return err
	}
	count, err := h.chooseSeatCount(show, class, day)
	if err != nil || count == 0 {
		return err
	}

	seats, err := h.chooseSeats(movie, show, class, day, count)
	if err != nil || len(seats) == 0 {
		return err
	}

	subtotal := h.booking.Prices().ComputeTotal(len(seats), class, 0)
	discount, err := h.askDiscount(subtotal)
	if err != nil {
		return err
	}

	booking := h.booking.CreateBooking(ctx, h.state, usecase.CreateBookingInput{
		Movie:    movie,
		Show:     show,
		Class:    class,
		Day:      day,
		Seats:    seats,
		Discount: discount,
	})

	h.println()
	h.printf("Booking completed! Total Price: %s (Discount: %s)\n", formatMoney(booking.TotalPrice), formatMoney(booking.Discount))
	for _, code := range booking.SeatCodes() {
		h.printf("Seat %s - Ticket ID: %s\n", code, booking.SeatsWithIDs[code])
	}

	h.persist(ctx)
	return nil
}

func (h *MenuHandler) cancelFlow(ctx context.Context) error {
	h.println()
	h.print("Enter the Ticket ID to cancel: ")
	ticketID, err := h.readLine()
	if err != nil {
		return err
	}

	result := h.booking.CancelByTicketID(ctx, h.state, ticketID)
	if result.Status == usecase.CancelNotFound {
		h.println("Ticket ID not found!")
		return nil
	}

	h.println("Booking cancelled successfully!")
	h.persist(ctx)
	return nil
}

// persist reports save failures to the operator but keeps the session alive.
func (h *MenuHandler) persist(ctx context.Context) {
	if err := h.catalog.Persist(ctx, h.state); err != nil {
		h.printf("Warning: changes could not be saved: %v\n", err)
	}
}

func (h *MenuHandler) chooseMovie() (*entity.Movie, error) {
	movies := h.catalog.ListMovies(h.state)
	for {
		h.println()
		h.println("Please choose a movie from the list below")
		for i, m := range movies {
			h.printf("%d. %s\n", i+1, m.Title)
		}
		h.println("0. Go Back")

		choice, err := h.readChoice()
		if err != nil {
			return nil, err
		}
		if choice == 0 {
			return nil, nil
		}
		if choice >= 1 && choice <= len(movies) {
			return movies[choice-1], nil
		}
		h.println("Invalid choice!")
	}
}

func (h *MenuHandler) chooseTicketClass() (entity.TicketClass, bool, error) {
	prices := h.booking.Prices()
	for {
		h.println()
		h.println("Choose your ticket type:")
		for i, class := range entity.TicketClasses {
			h.printf("%d. %s - Price: %s\n", i+1, class, formatMoney(prices.UnitPrice(class)))
		}
		h.println("0. Go Back")

		choice, err := h.readChoice()
		if err != nil {
			return 0, false, err
		}
		if choice == 0 {
			return 0, false, nil
		}
		if choice >= 1 && choice <= len(entity.TicketClasses) {
			return entity.TicketClasses[choice-1], true, nil
		}
		h.println("Invalid choice!")
	}
}

// chooseDay lists Monday..Sunday; the number picks the day shown next to it.
func (h *MenuHandler) chooseDay() (time.Weekday, bool, error) {
	for {
		h.println()
		h.println("Choose a day to book:")
		for i, d := range entity.WeekdaysMondayFirst {
			h.printf("%d. %s\n", i+1, d)
		}
		h.println("0. Go Back")

		choice, err := h.readChoice()
		if err != nil {
			return 0, false, err
		}
		if choice == 0 {
			return 0, false, nil
		}
		if choice >= 1 && choice <= len(entity.WeekdaysMondayFirst) {
			return entity.WeekdaysMondayFirst[choice-1], true, nil
		}
		h.println("Invalid choice! Please try again.")
	}
}

func (h *MenuHandler) chooseShow(movie *entity.Movie) (*entity.Show, error) {
	for {
		h.println()
		h.println("Please choose a show time from the list below:")
		for i, s := range movie.Shows {
			h.printf("%d. Room %d - Start: %s - End: %s\n", i+1, s.Room, s.StartLabel(), s.EndLabel())
		}
		h.println("0. Go Back")

		choice, err := h.readChoice()
		if err != nil {
			return nil, err
		}
		if choice == 0 {
			return nil, nil
		}
		if choice >= 1 && choice <= len(movie.Shows) {
			return movie.Shows[choice-1], nil
		}
		h.println("Invalid choice!")
	}
}

func (h *MenuHandler) chooseSeatCount(show *entity.Show, class entity.TicketClass, day time.Weekday) (int, error) {
	for {
		available := show.Inventory.Available(class, day)
		h.println()
		h.printf("Available seats: %d\n", available)
		h.print("How many seats do you want? (0 to go back): ")

		choice, err := h.readChoice()
		if err != nil {
			return 0, err
		}
		if choice == 0 {
			return 0, nil
		}
		if choice >= 1 && choice <= available {
			return choice, nil
		}
		h.println("Invalid choice!")
	}
}

// chooseSeats collects up to count seats. Going back keeps the seats picked
// so far.
func (h *MenuHandler) chooseSeats(movie *entity.Movie, show *entity.Show, class entity.TicketClass, day time.Weekday, count int) ([]entity.SeatCode, error) {
	h.println()
	h.println("Choose your seats:")

	selected := make([]entity.SeatCode, 0, count)
	for len(selected) < count {
		h.renderRoom(movie, show, class, day, selected)
		h.printf("\nChoose seat %d of %d (e.g., A1) (0 to go back): ", len(selected)+1, count)

		input, err := h.readLine()
		if err != nil {
			return nil, err
		}
		if input == "0" {
			break
		}

		seat, err := entity.ParseSeatCode(input)
		if err != nil || show.Inventory.IsBooked(class, day, seat) || containsSeat(selected, seat) {
			h.println("Invalid choice!")
			continue
		}
		selected = append(selected, seat)
	}

	if len(selected) > 0 {
		h.renderRoom(movie, show, class, day, selected)
	}
	return selected, nil
}

func (h *MenuHandler) renderRoom(movie *entity.Movie, show *entity.Show, class entity.TicketClass, day time.Weekday, selected []entity.SeatCode) {
	free := "[S]"
	if class.Pool() == entity.PoolPremium {
		free = "[P]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n %s\n", movie.Title)
	fmt.Fprintf(&b, "Room: %d, Time: %s\n", show.Room, show.StartLabel())
	fmt.Fprintf(&b, "Day: %s, Ticket: %s\n\n", day, class)

	b.WriteString("   ")
	for n := 1; n <= entity.SeatsPerRow; n++ {
		fmt.Fprintf(&b, " %d  ", n)
	}
	b.WriteString("\n")

	for _, row := range entity.SeatRows {
		b.WriteString(string(row) + "  ")
		for n := 1; n <= entity.SeatsPerRow; n++ {
			code := entity.SeatCode(string(row) + strconv.Itoa(n))
			switch {
			case containsSeat(selected, code):
				b.WriteString("[✓]")
			case show.Inventory.IsBooked(class, day, code):
				b.WriteString("[X]")
			default:
				b.WriteString(free)
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n[✓] Selected, [X] Booked, [S] Standard, [P] Premium\n")

	h.print(b.String())
}

func (h *MenuHandler) askDiscount(subtotal float64) (usecase.Discount, error) {
	h.println()
	h.print("Do you want a discount? (y/n): ")
	answer, err := h.readLine()
	if err != nil {
		return usecase.Discount{}, err
	}
	if strings.ToLower(answer) != "y" {
		return usecase.Discount{}, nil
	}

	for {
		h.println("Discount type: 1. Percentage  2. Fixed amount")
		input, err := h.readLine()
		if err != nil {
			return usecase.Discount{}, err
		}

		var discount usecase.Discount
		switch firstField(input) {
		case "1":
			discount.Kind = usecase.DiscountPercentage
			h.print("Enter discount percentage (0-100): ")
		case "2":
			discount.Kind = usecase.DiscountFixed
			h.print("Enter fixed discount amount: ")
		default:
			h.println("Invalid choice! Write '1 Percentage' or '2 Fixed'.")
			continue
		}

		raw, err := h.readLine()
		if err != nil {
			return usecase.Discount{}, err
		}
		value, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr == nil {
			discount.Value = value
			if discount.Validate() == nil {
				h.log.Debug("Discount applied",
					zap.String("kind", string(discount.Kind)),
					zap.Float64("value", value),
					zap.Float64("amount", discount.Amount(subtotal)),
				)
				return discount, nil
			}
		}
		h.println("Invalid choice! Write '1 Percentage' or '2 Fixed'.")
	}
}

func (h *MenuHandler) readLine() (string, error) {
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(h.in.Text()), nil
}

// readChoice returns -1 for anything that is not a number.
func (h *MenuHandler) readChoice() (int, error) {
	line, err := h.readLine()
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil {
		return -1, nil
	}
	return n, nil
}

func (h *MenuHandler) print(s string) {
	fmt.Fprint(h.out, s)
}

func (h *MenuHandler) println(a ...any) {
	fmt.Fprintln(h.out, a...)
}

func (h *MenuHandler) printf(format string, a ...any) {
	fmt.Fprintf(h.out, format, a...)
}

func containsSeat(seats []entity.SeatCode, seat entity.SeatCode) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

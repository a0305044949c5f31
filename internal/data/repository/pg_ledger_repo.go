package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type pgLedgerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPgLedgerRepository(db database.PgxIface, log *zap.Logger) LedgerRepository {
	return &pgLedgerRepository{
		db:  db,
		log: log.With(zap.String("repository", "pg_ledger")),
	}
}

func (r *pgLedgerRepository) Load(ctx context.Context) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT position, movie_title, room, show_start, show_time, ticket_class, day, total_price, discount
		FROM bookings
		ORDER BY position
	`)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}

	var bookings []*entity.Booking
	byPosition := make(map[int]*entity.Booking)
	for rows.Next() {
		var position int
		var startSeconds int
		var class, day int16
		b := &entity.Booking{SeatsWithIDs: make(map[entity.SeatCode]string)}
		if err := rows.Scan(&position, &b.MovieTitle, &b.Room, &startSeconds, &b.ShowTime, &class, &day, &b.TotalPrice, &b.Discount); err != nil {
			rows.Close()
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		b.StartOffset = time.Duration(startSeconds) * time.Second
		b.TicketClass = entity.TicketClass(class)
		b.Day = time.Weekday(day)
		bookings = append(bookings, b)
		byPosition[position] = b
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	seatRows, err := r.db.Query(ctx, `SELECT booking_position, seat_code, ticket_id FROM booking_seats`)
	if err != nil {
		r.log.Error("Failed to query booking seats", zap.Error(err))
		return nil, fmt.Errorf("query booking seats: %w", err)
	}
	defer seatRows.Close()

	for seatRows.Next() {
		var position int
		var raw, ticketID string
		if err := seatRows.Scan(&position, &raw, &ticketID); err != nil {
			r.log.Error("Failed to scan booking seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booking seat row: %w", err)
		}
		b, ok := byPosition[position]
		if !ok {
			continue
		}
		code, err := entity.ParseSeatCode(raw)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", position, err)
		}
		b.SeatsWithIDs[code] = ticketID
	}
	if err := seatRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking seats: %w", err)
	}

	result := bookings[:0]
	for _, b := range bookings {
		if len(b.SeatsWithIDs) > 0 {
			result = append(result, b)
		}
	}

	r.log.Debug("Ledger loaded", zap.Int("bookings", len(result)))
	return result, nil
}

// Save replaces the stored ledger in one transaction.
func (r *pgLedgerRepository) Save(ctx context.Context, bookings []*entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin ledger tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bookings`); err != nil {
		r.log.Error("Failed to clear bookings", zap.Error(err))
		return fmt.Errorf("clear bookings: %w", err)
	}

	var bookingRows, seatRows [][]any
	for i, b := range bookings {
		bookingRows = append(bookingRows, []any{
			i, b.MovieTitle, b.Room, int(b.StartOffset / time.Second), b.ShowTime, int16(b.TicketClass), int16(b.Day), b.TotalPrice, b.Discount,
		})
		for _, code := range b.SeatCodes() {
			seatRows = append(seatRows, []any{i, string(code), b.SeatsWithIDs[code]})
		}
	}

	if len(bookingRows) > 0 {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"bookings"},
			[]string{"position", "movie_title", "room", "show_start", "show_time", "ticket_class", "day", "total_price", "discount"},
			pgx.CopyFromRows(bookingRows),
		); err != nil {
			r.log.Error("Failed to copy bookings", zap.Error(err), zap.Int("count", len(bookingRows)))
			return fmt.Errorf("copy bookings: %w", err)
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"booking_seats"},
			[]string{"booking_position", "seat_code", "ticket_id"},
			pgx.CopyFromRows(seatRows),
		); err != nil {
			r.log.Error("Failed to copy booking seats", zap.Error(err), zap.Int("count", len(seatRows)))
			return fmt.Errorf("copy booking seats: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit ledger tx: %w", err)
	}

	r.log.Debug("Ledger saved", zap.Int("bookings", len(bookingRows)))
	return nil
}

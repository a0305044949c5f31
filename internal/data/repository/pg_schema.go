package repository

import (
	"context"
	"fmt"

	"cinema-seating/pkg/database"
)

// Positions keep catalog and ledger order, which natural keys alone do not.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		position INT PRIMARY KEY,
		title    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		movie_position   INT NOT NULL REFERENCES movies(position) ON DELETE CASCADE,
		position         INT NOT NULL,
		room             INT NOT NULL,
		start_seconds    INT NOT NULL,
		duration_minutes INT NOT NULL,
		PRIMARY KEY (movie_position, position)
	)`,
	`CREATE TABLE IF NOT EXISTS show_booked_seats (
		movie_position INT NOT NULL,
		show_position  INT NOT NULL,
		day            SMALLINT NOT NULL CHECK (day BETWEEN 0 AND 6),
		pool           SMALLINT NOT NULL CHECK (pool IN (0, 1)),
		seat_code      TEXT NOT NULL,
		PRIMARY KEY (movie_position, show_position, day, pool, seat_code),
		FOREIGN KEY (movie_position, show_position) REFERENCES shows(movie_position, position) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		position     INT PRIMARY KEY,
		movie_title  TEXT NOT NULL,
		room         INT NOT NULL,
		show_start   INT NOT NULL,
		show_time    TIMESTAMPTZ NOT NULL,
		ticket_class SMALLINT NOT NULL,
		day          SMALLINT NOT NULL,
		total_price  DOUBLE PRECISION NOT NULL,
		discount     DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS booking_seats (
		booking_position INT NOT NULL REFERENCES bookings(position) ON DELETE CASCADE,
		seat_code        TEXT NOT NULL,
		ticket_id        TEXT NOT NULL UNIQUE,
		PRIMARY KEY (booking_position, seat_code)
	)`,
}

// EnsureSchema creates the catalog and ledger tables when missing.
func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}

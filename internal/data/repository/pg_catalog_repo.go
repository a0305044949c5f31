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

type pgCatalogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPgCatalogRepository(db database.PgxIface, log *zap.Logger) CatalogRepository {
	return &pgCatalogRepository{
		db:  db,
		log: log.With(zap.String("repository", "pg_catalog")),
	}
}

func (r *pgCatalogRepository) Load(ctx context.Context) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, `SELECT position, title FROM movies ORDER BY position`)
	if err != nil {
		r.log.Error("Failed to query movies", zap.Error(err))
		return nil, fmt.Errorf("query movies: %w", err)
	}

	var movies []*entity.Movie
	byPosition := make(map[int]*entity.Movie)
	for rows.Next() {
		var position int
		var m entity.Movie
		if err := rows.Scan(&position, &m.Title); err != nil {
			rows.Close()
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &m)
		byPosition[position] = &m
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	if len(movies) == 0 {
		return nil, ErrEmptyStore
	}

	shows, err := r.loadShows(ctx, byPosition)
	if err != nil {
		return nil, err
	}
	if err := r.loadBookedSeats(ctx, shows); err != nil {
		return nil, err
	}

	r.log.Debug("Catalog loaded", zap.Int("movies", len(movies)))
	return movies, nil
}

type showKey struct {
	movie, show int
}

func (r *pgCatalogRepository) loadShows(ctx context.Context, movies map[int]*entity.Movie) (map[showKey]*entity.Show, error) {
	rows, err := r.db.Query(ctx, `
		SELECT movie_position, position, room, start_seconds, duration_minutes
		FROM shows
		ORDER BY movie_position, position
	`)
	if err != nil {
		r.log.Error("Failed to query shows", zap.Error(err))
		return nil, fmt.Errorf("query shows: %w", err)
	}
	defer rows.Close()

	shows := make(map[showKey]*entity.Show)
	for rows.Next() {
		var key showKey
		var room, startSeconds, duration int
		if err := rows.Scan(&key.movie, &key.show, &room, &startSeconds, &duration); err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}

		movie, ok := movies[key.movie]
		if !ok {
			continue
		}
		// seat layout is not stored; every room uses the default grid
		show := entity.NewShow(room, time.Duration(startSeconds)*time.Second, duration)
		movie.Shows = append(movie.Shows, show)
		shows[key] = show
	}
	return shows, rows.Err()
}

func (r *pgCatalogRepository) loadBookedSeats(ctx context.Context, shows map[showKey]*entity.Show) error {
	rows, err := r.db.Query(ctx, `SELECT movie_position, show_position, day, pool, seat_code FROM show_booked_seats`)
	if err != nil {
		r.log.Error("Failed to query booked seats", zap.Error(err))
		return fmt.Errorf("query booked seats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key showKey
		var day, pool int16
		var raw string
		if err := rows.Scan(&key.movie, &key.show, &day, &pool, &raw); err != nil {
			r.log.Error("Failed to scan booked seat row", zap.Error(err))
			return fmt.Errorf("scan booked seat row: %w", err)
		}

		show, ok := shows[key]
		if !ok {
			continue
		}
		code, err := entity.ParseSeatCode(raw)
		if err != nil {
			return fmt.Errorf("booked seat of show %d/%d: %w", key.movie, key.show, err)
		}
		class := entity.Pool(pool).Classes()[0]
		show.Inventory.Reserve(class, time.Weekday(day), code)
	}
	return rows.Err()
}

// Save replaces the stored catalog in one transaction.
func (r *pgCatalogRepository) Save(ctx context.Context, movies []*entity.Movie) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM movies`); err != nil {
		r.log.Error("Failed to clear movies", zap.Error(err))
		return fmt.Errorf("clear movies: %w", err)
	}

	var movieRows, showRows, seatRows [][]any
	for mi, m := range movies {
		movieRows = append(movieRows, []any{mi, m.Title})
		for si, s := range m.Shows {
			showRows = append(showRows, []any{mi, si, s.Room, int(s.StartOffset / time.Second), s.DurationMinutes})
			for day := time.Sunday; day <= time.Saturday; day++ {
				for _, pool := range []entity.Pool{entity.PoolStandard, entity.PoolPremium} {
					for _, code := range s.Inventory.Booked(pool.Classes()[0], day) {
						seatRows = append(seatRows, []any{mi, si, int16(day), int16(pool), string(code)})
					}
				}
			}
		}
	}

	copies := []struct {
		table   string
		columns []string
		rows    [][]any
	}{
		{"movies", []string{"position", "title"}, movieRows},
		{"shows", []string{"movie_position", "position", "room", "start_seconds", "duration_minutes"}, showRows},
		{"show_booked_seats", []string{"movie_position", "show_position", "day", "pool", "seat_code"}, seatRows},
	}
	for _, c := range copies {
		if len(c.rows) == 0 {
			continue
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{c.table}, c.columns, pgx.CopyFromRows(c.rows)); err != nil {
			r.log.Error("Failed to copy rows", zap.Error(err), zap.String("table", c.table), zap.Int("count", len(c.rows)))
			return fmt.Errorf("copy %s: %w", c.table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog tx: %w", err)
	}

	r.log.Debug("Catalog saved", zap.Int("movies", len(movieRows)), zap.Int("booked_seats", len(seatRows)))
	return nil
}

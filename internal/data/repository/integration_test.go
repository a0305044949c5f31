package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/pkg/database"
	"cinema-seating/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Run with: INTEGRATION_TEST=true TEST_REDIS_ADDR=localhost:6379 TEST_POSTGRES_HOST=localhost go test ./internal/data/repository/...

func skipUnlessIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sampleSnapshot() ([]*entity.Movie, []*entity.Booking) {
	first := entity.NewShow(1, 10*time.Hour, 120)
	second := entity.NewShow(2, 11*time.Hour, 120)
	first.Inventory.Reserve(entity.TicketPremium, time.Monday, "A1")
	first.Inventory.Reserve(entity.TicketPremium, time.Monday, "A2")
	second.Inventory.Reserve(entity.TicketStandardAllDay, time.Sunday, "E5")

	movies := []*entity.Movie{
		{Title: "Avengers", Shows: []*entity.Show{first, second}},
		{Title: "Joker"},
	}
	bookings := []*entity.Booking{
		{
			MovieTitle:   "Avengers",
			Room:         1,
			StartOffset:  10 * time.Hour,
			ShowTime:     time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC),
			TicketClass:  entity.TicketPremium,
			Day:          time.Monday,
			SeatsWithIDs: map[entity.SeatCode]string{"A1": "t-1", "A2": "t-2"},
			TotalPrice:   15000,
			Discount:     1000,
		},
		{
			MovieTitle:   "Avengers",
			Room:         2,
			StartOffset:  11 * time.Hour,
			ShowTime:     time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC),
			TicketClass:  entity.TicketStandardAllDay,
			Day:          time.Sunday,
			SeatsWithIDs: map[entity.SeatCode]string{"E5": "t-3"},
			TotalPrice:   10000,
		},
	}
	return movies, bookings
}

func assertSnapshot(t *testing.T, repo *Repository) {
	t.Helper()
	ctx := context.Background()
	movies, bookings := sampleSnapshot()

	require.NoError(t, repo.Catalog.Save(ctx, movies))
	require.NoError(t, repo.Ledger.Save(ctx, bookings))

	loadedMovies, err := repo.Catalog.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loadedMovies, 2)
	assert.Equal(t, "Avengers", loadedMovies[0].Title)
	require.Len(t, loadedMovies[0].Shows, 2)
	assert.Equal(t, movies[0].Shows[0].Inventory, loadedMovies[0].Shows[0].Inventory)
	assert.Equal(t, movies[0].Shows[1].Inventory, loadedMovies[0].Shows[1].Inventory)
	assert.Empty(t, loadedMovies[1].Shows)

	loadedBookings, err := repo.Ledger.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loadedBookings, 2)
	assert.Equal(t, bookings[0].SeatsWithIDs, loadedBookings[0].SeatsWithIDs)
	assert.Equal(t, bookings[1].TicketClass, loadedBookings[1].TicketClass)
	assert.Equal(t, bookings[1].Day, loadedBookings[1].Day)
	assert.True(t, bookings[0].ShowTime.Equal(loadedBookings[0].ShowTime))
	assert.Equal(t, bookings[1].ShowStart(), loadedBookings[1].ShowStart())

	// a second save replaces the snapshot
	require.NoError(t, repo.Ledger.Save(ctx, bookings[1:]))
	loadedBookings, err = repo.Ledger.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loadedBookings, 1)
}

func TestRedisRepository_Integration(t *testing.T) {
	skipUnlessIntegration(t)
	ctx := context.Background()

	client, err := database.InitRedis(ctx, utils.RedisConfig{Addr: envOr("TEST_REDIS_ADDR", "localhost:6379")})
	if err != nil {
		t.Skipf("Skipping test: redis not available: %v", err)
	}
	defer client.Close()

	prefix := "cinema-test-" + time.Now().Format("150405.000")
	defer client.Del(ctx, prefix+":catalog", prefix+":ledger")

	repo := NewRedisRepository(client, prefix, zaptest.NewLogger(t))

	_, err = repo.Catalog.Load(ctx)
	assert.ErrorIs(t, err, ErrEmptyStore)

	assertSnapshot(t, repo)
}

func TestPostgresRepository_Integration(t *testing.T) {
	skipUnlessIntegration(t)
	ctx := context.Background()

	db, err := database.InitDB(ctx, utils.DatabaseConfig{
		Host:     envOr("TEST_POSTGRES_HOST", "localhost"),
		Port:     envOr("TEST_POSTGRES_PORT", "5432"),
		Name:     envOr("TEST_POSTGRES_DATABASE", "cinema_test"),
		User:     envOr("TEST_POSTGRES_USER", "postgres"),
		Password: envOr("TEST_POSTGRES_PASSWORD", "postgres"),
		MaxConns: 2,
	})
	if err != nil {
		t.Skipf("Skipping test: database not available: %v", err)
	}
	defer db.Close()

	repo, err := NewPostgresRepository(ctx, db, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = db.Exec(ctx, `TRUNCATE movies, shows, show_booked_seats, bookings, booking_seats`)
	require.NoError(t, err)

	_, err = repo.Catalog.Load(ctx)
	assert.ErrorIs(t, err, ErrEmptyStore)

	assertSnapshot(t, repo)
}

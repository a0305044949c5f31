package usecase

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/queue"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap/zaptest"
)

type publishedEvent struct {
	queue string
	event any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, q string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{queue: q, event: event})
	return nil
}

func (p *fakePublisher) Close() error { return nil }

type memCatalogRepo struct {
	movies  []*entity.Movie
	saves   int
	loadErr error
	saveErr error
}

func (r *memCatalogRepo) Load(context.Context) ([]*entity.Movie, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.movies == nil {
		return nil, repository.ErrEmptyStore
	}
	return r.movies, nil
}

func (r *memCatalogRepo) Save(_ context.Context, movies []*entity.Movie) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.movies = movies
	return nil
}

type memLedgerRepo struct {
	bookings []*entity.Booking
	saves    int
	saveErr  error
}

func (r *memLedgerRepo) Load(context.Context) ([]*entity.Booking, error) {
	return r.bookings, nil
}

func (r *memLedgerRepo) Save(_ context.Context, bookings []*entity.Booking) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.bookings = bookings
	return nil
}

func testConfig() *utils.Config {
	return &utils.Config{
		Pricing: utils.PricingConfig{
			Standard:       5000,
			Premium:        8000,
			StandardAllDay: 10000,
			PremiumAllDay:  15000,
		},
	}
}

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

// sequentialIDs mints t-1, t-2, ... so tests can refer to tickets by name.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "t-" + strconv.Itoa(n)
	}
}

func newTestBookingService(t *testing.T, pub queue.Publisher) BookingService {
	t.Helper()
	return NewBookingService(DefaultPriceTable(), pub, zaptest.NewLogger(t),
		WithTicketIDGenerator(sequentialIDs()),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func newTestState() *entity.State {
	return entity.NewState(DefaultCatalog(), nil)
}

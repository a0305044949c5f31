package repository

import (
	"context"
	"errors"

	"cinema-seating/internal/data/entity"
)

// ErrEmptyStore is returned by CatalogRepository.Load when nothing was saved yet.
var ErrEmptyStore = errors.New("store is empty")

type CatalogRepository interface {
	Load(ctx context.Context) ([]*entity.Movie, error)
	Save(ctx context.Context, movies []*entity.Movie) error
}

type LedgerRepository interface {
	// Load returns an empty ledger when nothing was saved yet.
	Load(ctx context.Context) ([]*entity.Booking, error)
	Save(ctx context.Context, bookings []*entity.Booking) error
}

type Repository struct {
	Catalog CatalogRepository
	Ledger  LedgerRepository
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-seating/internal/data/entity"

	"go.uber.org/zap"
)

type ledgerRepository struct {
	doc document
	log *zap.Logger
}

func newLedgerRepository(doc document, log *zap.Logger) LedgerRepository {
	return &ledgerRepository{
		doc: doc,
		log: log.With(zap.String("repository", "ledger"), zap.String("document", doc.Name())),
	}
}

func (r *ledgerRepository) Load(ctx context.Context) ([]*entity.Booking, error) {
	data, err := r.doc.Read(ctx)
	if errors.Is(err, ErrEmptyStore) {
		return []*entity.Booking{}, nil
	}
	if err != nil {
		r.log.Error("Failed to read ledger", zap.Error(err))
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	bookings, err := decodeLedger(data)
	if err != nil {
		r.log.Error("Failed to decode ledger", zap.Error(err))
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	r.log.Debug("Ledger loaded", zap.Int("bookings", len(bookings)))
	return bookings, nil
}

func (r *ledgerRepository) Save(ctx context.Context, bookings []*entity.Booking) error {
	data, err := encodeLedger(bookings)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	if err := r.doc.Write(ctx, data); err != nil {
		r.log.Error("Failed to write ledger", zap.Error(err))
		return fmt.Errorf("save ledger: %w", err)
	}

	r.log.Debug("Ledger saved", zap.Int("bookings", len(bookings)))
	return nil
}

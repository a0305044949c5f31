package repository

import (
	"context"
	"fmt"

	"cinema-seating/pkg/database"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewFileRepository keeps catalog and ledger in two JSON files.
func NewFileRepository(catalogPath, ledgerPath string, log *zap.Logger) *Repository {
	return &Repository{
		Catalog: newCatalogRepository(newFileDocument(catalogPath), log),
		Ledger:  newLedgerRepository(newFileDocument(ledgerPath), log),
	}
}

// NewRedisRepository keeps the same JSON documents under <prefix>:catalog and <prefix>:ledger.
func NewRedisRepository(client redis.Cmdable, prefix string, log *zap.Logger) *Repository {
	return &Repository{
		Catalog: newCatalogRepository(newRedisDocument(client, prefix+":catalog"), log),
		Ledger:  newLedgerRepository(newRedisDocument(client, prefix+":ledger"), log),
	}
}

// NewPostgresRepository creates the tables if needed and returns table-backed stores.
func NewPostgresRepository(ctx context.Context, db database.PgxIface, log *zap.Logger) (*Repository, error) {
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Repository{
		Catalog: NewPgCatalogRepository(db, log),
		Ledger:  NewPgLedgerRepository(db, log),
	}, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-seating/internal/data/entity"

	"go.uber.org/zap"
)

type catalogRepository struct {
	doc document
	log *zap.Logger
}

func newCatalogRepository(doc document, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		doc: doc,
		log: log.With(zap.String("repository", "catalog"), zap.String("document", doc.Name())),
	}
}

func (r *catalogRepository) Load(ctx context.Context) ([]*entity.Movie, error) {
	data, err := r.doc.Read(ctx)
	if errors.Is(err, ErrEmptyStore) {
		return nil, ErrEmptyStore
	}
	if err != nil {
		r.log.Error("Failed to read catalog", zap.Error(err))
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	movies, err := decodeCatalog(data)
	if err != nil {
		r.log.Error("Failed to decode catalog", zap.Error(err))
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	r.log.Debug("Catalog loaded", zap.Int("movies", len(movies)))
	return movies, nil
}

func (r *catalogRepository) Save(ctx context.Context, movies []*entity.Movie) error {
	data, err := encodeCatalog(movies)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := r.doc.Write(ctx, data); err != nil {
		r.log.Error("Failed to write catalog", zap.Error(err))
		return fmt.Errorf("save catalog: %w", err)
	}

	r.log.Debug("Catalog saved", zap.Int("movies", len(movies)), zap.Int("bytes", len(data)))
	return nil
}

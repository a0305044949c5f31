package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/data/repository"

	"go.uber.org/zap"
)

type CatalogService interface {
	// LoadState reads catalog and ledger, seeding the catalog on first run.
	LoadState(ctx context.Context) (*entity.State, error)

	SaveCatalog(ctx context.Context, state *entity.State) error
	SaveLedger(ctx context.Context, state *entity.State) error
	// Persist writes catalog and ledger, in that order.
	Persist(ctx context.Context, state *entity.State) error

	ListMovies(state *entity.State) []*entity.Movie
	FindMovie(state *entity.State, title string) (*entity.Movie, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) LoadState(ctx context.Context) (*entity.State, error) {
	movies, err := s.repo.Catalog.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrEmptyStore):
		movies = DefaultCatalog()
		s.log.Info("Catalog store empty, seeding default catalog", zap.Int("movies", len(movies)))
		if err := s.repo.Catalog.Save(ctx, movies); err != nil {
			return nil, fmt.Errorf("save seeded catalog: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	bookings, err := s.repo.Ledger.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	s.log.Info("State loaded",
		zap.Int("movies", len(movies)),
		zap.Int("bookings", len(bookings)),
	)
	return entity.NewState(movies, bookings), nil
}

func (s *catalogService) SaveCatalog(ctx context.Context, state *entity.State) error {
	if err := s.repo.Catalog.Save(ctx, state.Catalog.Movies); err != nil {
		s.log.Error("Failed to save catalog", zap.Error(err))
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

func (s *catalogService) SaveLedger(ctx context.Context, state *entity.State) error {
	if err := s.repo.Ledger.Save(ctx, state.Ledger.Bookings); err != nil {
		s.log.Error("Failed to save ledger", zap.Error(err))
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

func (s *catalogService) Persist(ctx context.Context, state *entity.State) error {
	if err := s.SaveCatalog(ctx, state); err != nil {
		return err
	}
	return s.SaveLedger(ctx, state)
}

func (s *catalogService) ListMovies(state *entity.State) []*entity.Movie {
	return state.Catalog.Movies
}

func (s *catalogService) FindMovie(state *entity.State, title string) (*entity.Movie, error) {
	movie := state.Catalog.FindMovie(title)
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %q", ErrNotFound, title)
	}
	return movie, nil
}

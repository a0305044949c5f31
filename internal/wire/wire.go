package wire

import (
	"context"
	"net/http"

	"cinema-seating/internal/adaptor"
	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/queue"
	"cinema-seating/internal/usecase"
	"cinema-seating/pkg/middleware"
	"cinema-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds everything main needs after wiring.
type App struct {
	Service *usecase.Service
	State   *entity.State
	Router  *chi.Mux
	Menu    *adaptor.MenuHandler
}

// Wiring builds services, loads state from the store and sets up both
// the HTTP router and the terminal menu on top of it.
func Wiring(
	ctx context.Context,
	repo *repository.Repository,
	config *utils.Config,
	publisher queue.Publisher,
	logger *zap.Logger,
	opts ...usecase.BookingServiceOption,
) (*App, error) {
	service := usecase.NewService(repo, config, publisher, logger, opts...)

	state, err := service.Catalog.LoadState(ctx)
	if err != nil {
		return nil, err
	}

	handler := adaptor.NewHandler(service, state, logger)

	return &App{
		Service: service,
		State:   state,
		Router:  setupRouter(handler, logger),
		Menu:    adaptor.NewMenuHandler(service.Booking, service.Catalog, state, config.App.Name, logger),
	}, nil
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Serialize())

	wireMovie(r, handler.Movie)
	wireBooking(r, handler.Booking)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

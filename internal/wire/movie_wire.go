package wire

import (
	"cinema-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Get("/api/prices", movieHandler.GetPrices)

	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)
		r.Get("/{title}/shows", movieHandler.GetMovieShows)

		// GET /api/movies/{title}/shows/{room}/{time}/seats?class=Premium&day=Monday
		r.Get("/{title}/shows/{room}/{time}/seats", movieHandler.GetSeatMap)
	})
}

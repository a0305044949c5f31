package usecase

import (
	"time"

	"cinema-seating/internal/data/entity"
)

var defaultTitles = []string{"Avengers", "The Batman", "Spider-Man", "Inception", "Joker"}

const (
	defaultRooms        = 3
	defaultShowsPerRoom = 4
	defaultShowMinutes  = 120
)

// DefaultCatalog builds the catalog used when the store is empty: every
// movie plays in rooms 1-3, four times a day, starting at 10:00 plus one hour
// per room, three hours apart.
func DefaultCatalog() []*entity.Movie {
	movies := make([]*entity.Movie, 0, len(defaultTitles))
	for _, title := range defaultTitles {
		movie := &entity.Movie{Title: title}
		for room := 1; room <= defaultRooms; room++ {
			for i := 0; i < defaultShowsPerRoom; i++ {
				start := time.Duration(10+(room-1)+3*i) * time.Hour
				movie.Shows = append(movie.Shows, entity.NewShow(room, start, defaultShowMinutes))
			}
		}
		movies = append(movies, movie)
	}
	return movies
}

package entity

import "time"

type Movie struct {
	Title string
	Shows []*Show
}

// Catalog is the ordered list of movies on offer.
type Catalog struct {
	Movies []*Movie
}

// FindMovie returns the first movie with the given title.
func (c *Catalog) FindMovie(title string) *Movie {
	for _, m := range c.Movies {
		if m.Title == title {
			return m
		}
	}
	return nil
}

// FindShow resolves a show by its natural key (title, room, start).
func (c *Catalog) FindShow(title string, room int, start time.Duration) *Show {
	for _, m := range c.Movies {
		if m.Title != title {
			continue
		}
		for _, s := range m.Shows {
			if s.Room == room && s.StartOffset == start {
				return s
			}
		}
	}
	return nil
}

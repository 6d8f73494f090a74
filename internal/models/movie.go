package models

import "strings"

// Genre describes a movie genre.
type Genre struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// Director describes a movie director.
type Director struct {
	Name  string `json:"Name"`
	Bio   string `json:"Bio"`
	Birth string `json:"Birth,omitempty"`
	Death string `json:"Death,omitempty"`
}

// Movie is a catalog entry. Description holds the synopsis.
type Movie struct {
	ID          string   `json:"_id"`
	Title       string   `json:"Title"`
	Description string   `json:"Description"`
	Genre       Genre    `json:"Genre"`
	Director    Director `json:"Director"`
	ImagePath   string   `json:"ImagePath,omitempty"`
	Featured    bool     `json:"Featured,omitempty"`
}

// FindMovie returns the movie matching key by id, or by title ignoring case.
func FindMovie(movies []Movie, key string) (Movie, bool) {
	for _, m := range movies {
		if m.ID == key {
			return m, true
		}
	}
	for _, m := range movies {
		if strings.EqualFold(m.Title, key) {
			return m, true
		}
	}
	return Movie{}, false
}

// Catalog is a named list of movies prepared for export.
type Catalog struct {
	Name        string   `json:"name"`
	Username    string   `json:"username,omitempty"`
	Movies      []Movie  `json:"movies"`
	FavoriteIDs []string `json:"favorite_ids,omitempty"`
}

// IsFavorite reports whether id is among the catalog's favorites.
func (c *Catalog) IsFavorite(id string) bool {
	for _, f := range c.FavoriteIDs {
		if f == id {
			return true
		}
	}
	return false
}

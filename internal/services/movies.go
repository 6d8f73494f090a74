package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/desertthunder/myflix/internal/models"
)

// ListMovies retrieves the full catalog.
//
// Calls GET /movies.
func (c *Client) ListMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	err := c.do(ctx, call{op: OpListMovies, method: http.MethodGet, path: "/movies", auth: true}, &movies)
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovie retrieves a movie by title.
//
// Calls GET /movies/{title}.
func (c *Client) GetMovie(ctx context.Context, title string) (*models.Movie, error) {
	var movie models.Movie
	path := "/movies/" + url.PathEscape(title)
	if err := c.do(ctx, call{op: OpGetMovie, method: http.MethodGet, path: path, auth: true}, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetDirector retrieves director details by name.
//
// Calls GET /movies/directors/{name}.
func (c *Client) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	var director models.Director
	path := "/movies/directors/" + url.PathEscape(name)
	if err := c.do(ctx, call{op: OpGetDirector, method: http.MethodGet, path: path, auth: true}, &director); err != nil {
		return nil, err
	}
	return &director, nil
}

// GetGenre retrieves genre details by name.
//
// Calls GET /movies/genres/{name}.
func (c *Client) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	var genre models.Genre
	path := "/movies/genres/" + url.PathEscape(name)
	if err := c.do(ctx, call{op: OpGetGenre, method: http.MethodGet, path: path, auth: true}, &genre); err != nil {
		return nil, err
	}
	return &genre, nil
}

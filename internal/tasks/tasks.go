// package tasks composes gateway calls into the loads the views need.
package tasks

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/desertthunder/myflix/internal/favorites"
	"github.com/desertthunder/myflix/internal/formatter"
	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/services"
)

// CatalogResult is the state of the movie list view.
type CatalogResult struct {
	Movies    []models.Movie
	Favorites *favorites.List
	// FavoritesErr is set when the user record could not be loaded. The
	// movie list still renders, with no favorites marked.
	FavoritesErr error
}

// LoadCatalog fetches the movie list and the user's favorites concurrently.
// The user record is skipped when username is empty.
//
// Only a movie list failure fails the load.
func LoadCatalog(ctx context.Context, api services.MovieService, username string) (*CatalogResult, error) {
	result := &CatalogResult{Favorites: favorites.New(nil)}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		movies, err := api.ListMovies(gctx)
		if err != nil {
			return err
		}
		result.Movies = movies
		return nil
	})

	var user *models.User
	var userErr error
	if username != "" {
		g.Go(func() error {
			user, userErr = api.GetUser(gctx, username)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if userErr != nil {
		result.FavoritesErr = userErr
	} else if user != nil {
		result.Favorites = favorites.New(user.FavoriteMovies)
	}
	return result, nil
}

// ProfileResult is the state of the profile view.
type ProfileResult struct {
	User      *models.User
	Movies    []models.Movie
	Favorites []models.Movie
}

// LoadProfile loads the user record, then the movie list, then filters the
// favorites. Each step starts only after the previous one succeeds.
func LoadProfile(ctx context.Context, api services.MovieService, username string) (*ProfileResult, error) {
	user, err := api.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	movies, err := api.ListMovies(ctx)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{
		User:      user,
		Movies:    movies,
		Favorites: favorites.Filter(movies, favorites.New(user.FavoriteMovies)),
	}, nil
}

// MovieDetails holds the three detail lookups for one movie.
type MovieDetails struct {
	Movie    *models.Movie
	Director *models.Director
	Genre    *models.Genre
}

// LoadMovieDetails fetches the movie by title, then its director and genre
// records concurrently. Lookups for an empty name are skipped.
func LoadMovieDetails(ctx context.Context, api services.MovieService, title string) (*MovieDetails, error) {
	movie, err := api.GetMovie(ctx, title)
	if err != nil {
		return nil, err
	}

	details := &MovieDetails{Movie: movie}
	g, gctx := errgroup.WithContext(ctx)

	if name := movie.Director.Name; name != "" {
		g.Go(func() (err error) {
			details.Director, err = api.GetDirector(gctx, name)
			return err
		})
	}
	if name := movie.Genre.Name; name != "" {
		g.Go(func() (err error) {
			details.Genre, err = api.GetGenre(gctx, name)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// ExportOpts configures [ExportCatalog].
type ExportOpts struct {
	Format        formatter.Format
	Path          string
	FavoritesOnly bool
}

// LoadExportCatalog loads the catalog for username, narrowed to the user's
// favorites when favoritesOnly is set.
func LoadExportCatalog(ctx context.Context, api services.MovieService, username string, favoritesOnly bool) (*models.Catalog, error) {
	loaded, err := LoadCatalog(ctx, api, username)
	if err != nil {
		return nil, err
	}

	catalog := &models.Catalog{
		Name:        "All Movies",
		Username:    username,
		Movies:      loaded.Movies,
		FavoriteIDs: loaded.Favorites.IDs(),
	}
	if favoritesOnly {
		if loaded.FavoritesErr != nil {
			return nil, loaded.FavoritesErr
		}
		catalog.Name = fmt.Sprintf("Favorites of %s", username)
		catalog.Movies = favorites.Filter(loaded.Movies, loaded.Favorites)
	}
	return catalog, nil
}

// ExportCatalog loads the catalog for username and writes it to disk.
func ExportCatalog(ctx context.Context, api services.MovieService, username string, opts ExportOpts) (*formatter.ExportResult, error) {
	catalog, err := LoadExportCatalog(ctx, api, username, opts.FavoritesOnly)
	if err != nil {
		return nil, err
	}
	return formatter.WriteExport(catalog, opts.Format, opts.Path)
}

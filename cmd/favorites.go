package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/desertthunder/myflix/internal/tasks"
	"github.com/urfave/cli/v3"
)

// FavoritesList prints the logged in user's favorite movies in catalog order.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	username, err := r.requireUser()
	if err != nil {
		return err
	}

	profile, err := tasks.LoadProfile(ctx, r.api, username)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return r.writeJSON(profile.Favorites, true)
	}

	r.writePlainHeader(fmt.Sprintf("Favorites of %s", username))
	if len(profile.Favorites) == 0 {
		return r.writePlain("No favorite movies yet\n")
	}
	for i, m := range profile.Favorites {
		r.writePlain("%2d. %s (%s) • id %s\n", i+1, m.Title, m.Genre.Name, m.ID)
	}
	return nil
}

// FavoritesAdd adds a movie to the user's favorites.
func (r *Runner) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	movie, _, err := r.resolveMovie(ctx, cmd.StringArg("movie"))
	if err != nil {
		return err
	}
	return r.setFavorite(ctx, movie, true)
}

// FavoritesRemove removes a movie from the user's favorites.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	movie, _, err := r.resolveMovie(ctx, cmd.StringArg("movie"))
	if err != nil {
		return err
	}
	return r.setFavorite(ctx, movie, false)
}

// FavoritesToggle adds or removes a movie depending on its current state.
func (r *Runner) FavoritesToggle(ctx context.Context, cmd *cli.Command) error {
	movie, loaded, err := r.resolveMovie(ctx, cmd.StringArg("movie"))
	if err != nil {
		return err
	}
	if loaded.FavoritesErr != nil {
		return loaded.FavoritesErr
	}
	return r.setFavorite(ctx, movie, !loaded.Favorites.Contains(movie.ID))
}

// resolveMovie finds key in the catalog by id or title.
func (r *Runner) resolveMovie(ctx context.Context, key string) (models.Movie, *tasks.CatalogResult, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return models.Movie{}, nil, fmt.Errorf("%w: movie id or title", shared.ErrMissingArgument)
	}
	username, err := r.requireUser()
	if err != nil {
		return models.Movie{}, nil, err
	}

	loaded, err := tasks.LoadCatalog(ctx, r.api, username)
	if err != nil {
		return models.Movie{}, nil, err
	}
	movie, ok := models.FindMovie(loaded.Movies, key)
	if !ok {
		return models.Movie{}, nil, fmt.Errorf("%w: %s", shared.ErrMovieMissing, key)
	}
	return movie, loaded, nil
}

func (r *Runner) setFavorite(ctx context.Context, movie models.Movie, add bool) error {
	if add {
		if _, err := r.api.AddFavorite(ctx, movie.ID); err != nil {
			return err
		}
		r.logger.Info("favorite added", "movie", movie.ID)
		return r.notify(shared.MsgFavoriteAdded)
	}

	if _, err := r.api.RemoveFavorite(ctx, movie.ID); err != nil {
		return err
	}
	r.logger.Info("favorite removed", "movie", movie.ID)
	return r.notify(fmt.Sprintf(shared.MsgFavoriteRemovedOf, movie.Title))
}

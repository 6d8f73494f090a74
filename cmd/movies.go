package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/myflix/internal/favorites"
	"github.com/desertthunder/myflix/internal/formatter"
	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/desertthunder/myflix/internal/tasks"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

// MoviesList prints the catalog, or exports it when a format other than table is chosen.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
	favoritesOnly := cmd.Bool("favorites")
	format := strings.ToLower(strings.TrimSpace(cmd.String("format")))
	output := cmd.String("output")

	username := r.session.Username()
	if favoritesOnly {
		var err error
		if username, err = r.requireUser(); err != nil {
			return err
		}
	}

	if format == "" || format == "table" {
		if output != "" {
			return fmt.Errorf("%w: --output needs --format csv, markdown, text or json", shared.ErrInvalidFlag)
		}
		return r.printCatalog(ctx, username, favoritesOnly)
	}

	f, err := formatter.ParseFormat(format)
	if err != nil {
		return err
	}

	if output != "" {
		result, err := tasks.ExportCatalog(ctx, r.api, username, tasks.ExportOpts{Format: f, Path: output, FavoritesOnly: favoritesOnly})
		if err != nil {
			return err
		}
		r.logger.Info("catalog exported", "file", result.File, "metadata", result.MetadataFile)
		r.writePlain("✓ Exported to %s\n", result.File)
		return r.writePlain("Metadata: %s\n", result.MetadataFile)
	}

	catalog, err := tasks.LoadExportCatalog(ctx, r.api, username, favoritesOnly)
	if err != nil {
		return err
	}

	data, err := formatter.Export(catalog, f)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) printCatalog(ctx context.Context, username string, favoritesOnly bool) error {
	loaded, err := tasks.LoadCatalog(ctx, r.api, username)
	if err != nil {
		return err
	}
	if loaded.FavoritesErr != nil {
		if favoritesOnly {
			return loaded.FavoritesErr
		}
		r.logger.Warn("favorites unavailable", "err", loaded.FavoritesErr)
	}

	movies := loaded.Movies
	title := "Movies"
	if favoritesOnly {
		movies = favorites.Filter(movies, loaded.Favorites)
		title = "Favorite Movies"
	}

	r.writePlainHeader(fmt.Sprintf("%s (%s)", title, humanize.Comma(int64(len(movies)))))
	if len(movies) == 0 {
		return r.writePlain("No movies found\n")
	}
	for i, m := range movies {
		marker := " "
		if loaded.Favorites.Contains(m.ID) {
			marker = "★"
		}
		r.writePlain("%s %2d. %s\n", marker, i+1, m.Title)
		r.writePlain("      %s • dir. %s • id %s\n", m.Genre.Name, m.Director.Name, m.ID)
	}
	return nil
}

// MoviesShow prints a movie with its synopsis, director and genre.
func (r *Runner) MoviesShow(ctx context.Context, cmd *cli.Command) error {
	title := strings.TrimSpace(cmd.StringArg("title"))
	if title == "" {
		return fmt.Errorf("%w: movie title", shared.ErrMissingArgument)
	}

	details, err := tasks.LoadMovieDetails(ctx, r.api, title)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return r.writeJSON(details, true)
	}

	movie := details.Movie
	r.writePlainHeader(movie.Title)
	if movie.Featured {
		r.writePlain("Featured\n")
	}
	r.writePlain("%s\n", movie.Description)

	genre := movie.Genre
	if details.Genre != nil {
		genre = *details.Genre
	}
	r.writePlainln("Genre: %s", genre.Name)
	r.writePlain("%s\n", genre.Description)

	director := movie.Director
	if details.Director != nil {
		director = *details.Director
	}
	r.writePlainln("Director: %s", director.Name)
	return r.printDirector(director)
}

// MoviesGenre prints the description of a genre.
func (r *Runner) MoviesGenre(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(cmd.StringArg("name"))
	if name == "" {
		return fmt.Errorf("%w: genre name", shared.ErrMissingArgument)
	}

	genre, err := r.api.GetGenre(ctx, name)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return r.writeJSON(genre, true)
	}

	r.writePlainHeader(genre.Name)
	return r.writePlain("%s\n", genre.Description)
}

// MoviesDirector prints the biography of a director.
func (r *Runner) MoviesDirector(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(cmd.StringArg("name"))
	if name == "" {
		return fmt.Errorf("%w: director name", shared.ErrMissingArgument)
	}

	director, err := r.api.GetDirector(ctx, name)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return r.writeJSON(director, true)
	}

	r.writePlainHeader(director.Name)
	return r.printDirector(*director)
}

func (r *Runner) printDirector(d models.Director) error {
	if d.Bio != "" {
		r.writePlain("%s\n", d.Bio)
	}
	if d.Birth != "" {
		r.writePlain("Born: %s\n", d.Birth)
	}
	if d.Death != "" {
		r.writePlain("Died: %s\n", d.Death)
	}
	return nil
}

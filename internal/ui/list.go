package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/myflix/internal/favorites"
	"github.com/desertthunder/myflix/internal/models"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = favoriteItem{}
)

// movieItem wraps [models.Movie] to implement [list.Item] in the catalog view.
type movieItem struct {
	movie    models.Movie
	favorite bool
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string {
	if i.favorite {
		return fmt.Sprintf("%s %s", i.movie.Title, styles.fav.Render("★"))
	}
	return i.movie.Title
}
func (i movieItem) Description() string {
	return fmt.Sprintf("%s • dir. %s", i.movie.Genre.Name, i.movie.Director.Name)
}

// favoriteItem wraps [models.Movie] to implement [list.Item] in the profile view.
type favoriteItem struct {
	movie models.Movie
}

func (i favoriteItem) FilterValue() string { return i.movie.Title }
func (i favoriteItem) Title() string       { return i.movie.Title }
func (i favoriteItem) Description() string { return i.movie.Description }

func movieItems(movies []models.Movie, favs *favorites.List) []list.Item {
	items := make([]list.Item, len(movies))
	for i, m := range movies {
		items[i] = movieItem{movie: m, favorite: favs.Contains(m.ID)}
	}
	return items
}

func favoriteItems(movies []models.Movie) []list.Item {
	items := make([]list.Item, len(movies))
	for i, m := range movies {
		items[i] = favoriteItem{movie: m}
	}
	return items
}

// newList builds a [list.Model] whose own quit binding is disabled so that
// esc and q reach the view handlers.
func newList(title string, items []list.Item, width, height int) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	return l
}

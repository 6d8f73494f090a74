package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/desertthunder/myflix/internal/tasks"
)

// detailKind selects what the detail dialog shows for a movie.
type detailKind int

const (
	genreDetail detailKind = iota
	directorDetail
	synopsisDetail
)

func (m *Model) openMovies() tea.Cmd {
	m.view = MoviesView
	m.loading = true
	return m.fetchCatalog()
}

func (m *Model) fetchCatalog() tea.Cmd {
	ctx, api, username := m.ctx, m.api, m.session.Username()
	return func() tea.Msg {
		result, err := tasks.LoadCatalog(ctx, api, username)
		return catalogLoadedMsg(result, err)
	}
}

func (m *Model) catalogLoaded(done catalogLoaded) (tea.Model, tea.Cmd) {
	m.loading = false
	if done.err != nil {
		return m, m.failure(done.err)
	}
	m.movies = done.result.Movies
	m.favs = done.result.Favorites
	m.refreshMovieList()
	if done.result.FavoritesErr != nil {
		return m, m.failure(done.result.FavoritesErr)
	}
	return m, nil
}

// refreshMovieList rebuilds the catalog items from the local favorites,
// keeping the cursor in place.
func (m *Model) refreshMovieList() {
	idx := m.movieList.Index()
	w, h := m.listSize()
	m.movieList = newList("Movies", movieItems(m.movies, m.favs), w, h)
	if idx > 0 && idx < len(m.movies) {
		m.movieList.Select(idx)
	}
}

func (m *Model) selectedMovie() (models.Movie, bool) {
	item, ok := m.movieList.SelectedItem().(movieItem)
	if !ok {
		return models.Movie{}, false
	}
	return item.movie, true
}

func (m *Model) handleMoviesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.movieList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.movieList, cmd = m.movieList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.profile):
		return m, m.openProfile()
	case key.Matches(msg, m.keys.logout):
		return m, m.logout()
	case key.Matches(msg, m.keys.genre):
		return m, m.openDetail(genreDetail)
	case key.Matches(msg, m.keys.director):
		return m, m.openDetail(directorDetail)
	case key.Matches(msg, m.keys.synopsis):
		return m, m.openDetail(synopsisDetail)
	case key.Matches(msg, m.keys.favorite):
		if movie, ok := m.selectedMovie(); ok {
			return m, m.setFavorite(movie, !m.favs.Contains(movie.ID), false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

// openDetail shows the data embedded in the selected movie right away and
// asks the API for the current record, which replaces the body when it arrives.
func (m *Model) openDetail(kind detailKind) tea.Cmd {
	movie, ok := m.selectedMovie()
	if !ok {
		return nil
	}

	m.detailSeq++
	seq := m.detailSeq
	ctx, api := m.ctx, m.api

	var cmd tea.Cmd
	switch kind {
	case genreDetail:
		m.detail = detail{seq: seq, title: "Genre: " + movie.Genre.Name, body: movie.Genre.Description}
		cmd = func() tea.Msg {
			g, err := api.GetGenre(ctx, movie.Genre.Name)
			if err != nil {
				return detailLoadedMsg(seq, "", err)
			}
			return detailLoadedMsg(seq, g.Description, nil)
		}
	case directorDetail:
		m.detail = detail{seq: seq, title: "Director: " + movie.Director.Name, body: directorBody(movie.Director)}
		cmd = func() tea.Msg {
			d, err := api.GetDirector(ctx, movie.Director.Name)
			if err != nil {
				return detailLoadedMsg(seq, "", err)
			}
			return detailLoadedMsg(seq, directorBody(*d), nil)
		}
	case synopsisDetail:
		m.detail = detail{seq: seq, title: movie.Title, body: movie.Description}
		cmd = func() tea.Msg {
			mv, err := api.GetMovie(ctx, movie.Title)
			if err != nil {
				return detailLoadedMsg(seq, "", err)
			}
			return detailLoadedMsg(seq, mv.Description, nil)
		}
	}

	m.returnTo = m.view
	m.view = DetailView
	return cmd
}

func directorBody(d models.Director) string {
	var b strings.Builder
	b.WriteString(d.Bio)
	if d.Birth != "" {
		fmt.Fprintf(&b, "\n\nBorn: %s", d.Birth)
	}
	if d.Death != "" {
		fmt.Fprintf(&b, "\nDied: %s", d.Death)
	}
	return strings.TrimSpace(b.String())
}

func (m *Model) detailLoaded(done detailLoaded) (tea.Model, tea.Cmd) {
	if done.seq != m.detail.seq {
		return m, nil
	}
	if done.err != nil {
		return m, m.failure(done.err)
	}
	if done.body != "" {
		m.detail.body = done.body
	}
	return m, nil
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.submit):
		m.view = m.returnTo
	}
	return m, nil
}

// setFavorite adds or removes movie on the server. The local list is only
// changed once the call succeeds.
func (m *Model) setFavorite(movie models.Movie, add, fromProfile bool) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		var ids []string
		var err error
		if add {
			ids, err = api.AddFavorite(ctx, movie.ID)
		} else {
			ids, err = api.RemoveFavorite(ctx, movie.ID)
		}
		return favoriteDoneMsg(favoriteDone{movie: movie, added: add, ids: ids, fromProfile: fromProfile, err: err})
	}
}

func (m *Model) favoriteDone(done favoriteDone) (tea.Model, tea.Cmd) {
	if done.err != nil {
		return m, m.failure(done.err)
	}

	switch {
	case done.ids != nil:
		m.favs.Replace(done.ids)
	case done.added:
		m.favs.Add(done.movie.ID)
	default:
		m.favs.Remove(done.movie.ID)
	}
	m.refreshMovieList()

	if done.fromProfile {
		msg := fmt.Sprintf(shared.MsgFavoriteRemovedOf, done.movie.Title)
		return m, tea.Batch(m.info(msg), m.reloadAfter(m.notifier.TTL()))
	}
	if done.added {
		return m, m.info(shared.MsgFavoriteAdded)
	}
	return m, m.info(shared.MsgFavoriteRemoved)
}

func (m *Model) renderMovies() string {
	if m.loading && len(m.movies) == 0 {
		return "Loading movies..."
	}
	helpView := m.renderHelp(m.keys.genre, m.keys.director, m.keys.synopsis, m.keys.favorite, m.keys.profile, m.keys.logout, m.keys.quit)
	return fmt.Sprintf("%s\n\n%s", m.movieList.View(), helpView)
}

func (m *Model) renderDetail() string {
	title := styles.title.Render(m.detail.title)
	body := m.detail.body
	if body == "" {
		body = styles.help.Render("No details available.")
	}
	width, _ := m.listSize()
	return fmt.Sprintf("%s\n%s\n\n%s", title, styles.box.Width(width).Render(body), m.renderHelp(m.keys.back))
}

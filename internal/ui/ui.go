package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/myflix/internal/favorites"
	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/services"
	"github.com/desertthunder/myflix/internal/session"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/desertthunder/myflix/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	WelcomeView ViewState = iota
	LoginView
	RegisterView
	MoviesView
	DetailView
	ProfileView
	EditView
	ConfirmDeleteView
)

func (v ViewState) String() string {
	switch v {
	case WelcomeView:
		return "Welcome"
	case LoginView:
		return "Login"
	case RegisterView:
		return "Register"
	case MoviesView:
		return "Movies"
	case DetailView:
		return "Details"
	case ProfileView:
		return "Profile"
	case EditView:
		return "Edit Profile"
	case ConfirmDeleteView:
		return "Delete Account"
	default:
		return ""
	}
}

// DefaultReloadDelay is how long the profile waits before reloading after an edit or failed delete.
const DefaultReloadDelay = time.Second

// Options holds the dependencies of a [Model].
type Options struct {
	API           services.MovieService
	Session       session.Store
	Notifier      shared.Notifier
	GuestUsername string
	Logger        *log.Logger
	ReloadDelay   time.Duration
}

// detail is the payload of the detail dialog.
type detail struct {
	seq   int
	title string
	body  string
}

// Model represents the TUI application state.
type Model struct {
	ctx         context.Context
	view        ViewState
	api         services.MovieService
	session     session.Store
	notifier    shared.Notifier
	guest       string
	logger      *log.Logger
	reloadDelay time.Duration

	width    int
	height   int
	loading  bool
	deleting bool

	movies    []models.Movie
	favs      *favorites.List
	movieList list.Model

	profile      *tasks.ProfileResult
	favoriteList list.Model

	form      *form
	detail    detail
	detailSeq int
	returnTo  ViewState

	notice    *notice
	noticeSeq int

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ReloadDelay <= 0 {
		opts.ReloadDelay = DefaultReloadDelay
	}
	if opts.Notifier.TTL() <= 0 {
		opts.Notifier = shared.NewNotifier(shared.NotificationConfig{})
	}
	m := &Model{
		ctx:         ctx,
		view:        WelcomeView,
		api:         opts.API,
		session:     opts.Session,
		notifier:    opts.Notifier,
		guest:       opts.GuestUsername,
		logger:      opts.Logger,
		reloadDelay: opts.ReloadDelay,
		favs:        favorites.New(nil),
		help:        help.New(),
		keys:        newKeyMap(),
	}
	m.resetLists()
	return m
}

// ViewState reports the active view.
func (m *Model) ViewState() ViewState {
	return m.view
}

// Init opens the movie list when a session is already present.
func (m *Model) Init() tea.Cmd {
	if !session.Authenticated(m.session) {
		return nil
	}
	return m.openMovies()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := m.listSize()
		m.movieList.SetSize(w, h)
		m.favoriteList.SetSize(w, h)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.handleNoticeKeys(msg) {
			return m, nil
		}
		switch m.view {
		case WelcomeView:
			return m.handleWelcomeKeys(msg)
		case LoginView, RegisterView, EditView:
			return m.handleFormKeys(msg)
		case MoviesView:
			return m.handleMoviesKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case ProfileView:
			return m.handleProfileKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateLists(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgCatalogLoaded:
		return m.catalogLoaded(msg.data.(catalogLoaded))
	case MsgProfileLoaded:
		return m.profileLoaded(msg.data.(profileLoaded))
	case MsgLoginDone:
		return m.loginDone(msg.data.(loginDone))
	case MsgRegisterDone:
		return m.registerDone(msg.data.(registerDone))
	case MsgFavoriteDone:
		return m.favoriteDone(msg.data.(favoriteDone))
	case MsgDetailLoaded:
		return m.detailLoaded(msg.data.(detailLoaded))
	case MsgEditDone:
		return m.editDone(msg.data.(editDone))
	case MsgDeleteDone:
		err, _ := msg.data.(error)
		return m.deleteDone(err)
	case MsgReloadProfile:
		if m.view != ProfileView || !session.Authenticated(m.session) {
			return m, nil
		}
		m.loading = true
		return m, m.fetchProfile()
	case MsgDismiss:
		m.dismiss(msg.data.(int))
	}
	return m, nil
}

// handleNoticeKeys lets esc, or enter outside of forms, dismiss the
// notification. It reports whether the key was consumed.
func (m *Model) handleNoticeKeys(msg tea.KeyMsg) bool {
	if m.notice == nil {
		return false
	}
	switch msg.Type {
	case tea.KeyEsc:
		if m.filtering() {
			return false
		}
	case tea.KeyEnter:
		if m.form != nil || m.filtering() {
			return false
		}
	default:
		return false
	}
	m.dismiss(m.notice.id)
	return true
}

func (m *Model) filtering() bool {
	switch m.view {
	case MoviesView:
		return m.movieList.FilterState() == list.Filtering
	case ProfileView:
		return m.favoriteList.FilterState() == list.Filtering
	}
	return false
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case MoviesView:
		m.movieList, cmd = m.movieList.Update(msg)
	case ProfileView:
		m.favoriteList, cmd = m.favoriteList.Update(msg)
	}
	return m, cmd
}

func (m *Model) listSize() (int, int) {
	w, h := m.width-4, m.height-12
	if w <= 0 {
		w = 76
	}
	if h <= 0 {
		h = 20
	}
	return w, h
}

func (m *Model) isGuest() bool {
	return m.guest != "" && strings.EqualFold(m.session.Username(), m.guest)
}

// reset drops everything loaded for the previous user.
func (m *Model) reset() {
	m.movies = nil
	m.favs = favorites.New(nil)
	m.profile = nil
	m.form = nil
	m.loading = false
	m.deleting = false
	m.resetLists()
}

func (m *Model) resetLists() {
	w, h := m.listSize()
	m.movieList = newList("Movies", nil, w, h)
	m.favoriteList = newList("Favorite Movies", nil, w, h)
}

func (m *Model) logout() tea.Cmd {
	if err := m.session.Clear(); err != nil {
		return m.failure(err)
	}
	m.reset()
	m.view = WelcomeView
	return m.info(shared.MsgLoggedOut)
}

func (m *Model) reloadAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return reloadProfileMsg() })
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case WelcomeView:
		body = m.renderWelcome()
	case LoginView, RegisterView, EditView:
		body = m.renderForm()
	case MoviesView:
		body = m.renderMovies()
	case DetailView:
		body = m.renderDetail()
	case ProfileView:
		body = m.renderProfile()
	case ConfirmDeleteView:
		body = m.renderConfirm()
	}

	parts := []string{m.renderNav(), body}
	if n := m.renderNotice(); n != "" {
		parts = append(parts, n)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderNav() string {
	user := m.session.Username()
	if user == "" {
		user = "not logged in"
	}
	return fmt.Sprintf("%s %s • %s\n", styles.nav.Render("myFlix"), styles.help.Render(user), m.view)
}

func (m *Model) renderHelp(keys ...key.Binding) string {
	return m.help.ShortHelpView(keys)
}

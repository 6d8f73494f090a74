package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/myflix/internal/favorites"
	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/desertthunder/myflix/internal/tasks"
)

func (m *Model) openProfile() tea.Cmd {
	m.view = ProfileView
	m.loading = true
	return m.fetchProfile()
}

func (m *Model) fetchProfile() tea.Cmd {
	ctx, api, username := m.ctx, m.api, m.session.Username()
	return func() tea.Msg {
		result, err := tasks.LoadProfile(ctx, api, username)
		return profileLoadedMsg(result, err)
	}
}

func (m *Model) profileLoaded(done profileLoaded) (tea.Model, tea.Cmd) {
	m.loading = false
	if done.err != nil {
		return m, m.failure(done.err)
	}
	if done.result.User == nil {
		done.result.User = &models.User{Username: m.session.Username()}
	}
	m.profile = done.result
	m.movies = done.result.Movies
	m.favs = favorites.New(done.result.User.FavoriteMovies)
	m.refreshMovieList()

	idx := m.favoriteList.Index()
	w, h := m.listSize()
	m.favoriteList = newList("Favorite Movies", favoriteItems(done.result.Favorites), w, h)
	if idx > 0 && idx < len(done.result.Favorites) {
		m.favoriteList.Select(idx)
	}
	return m, nil
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.favoriteList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.favoriteList, cmd = m.favoriteList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = MoviesView
		return m, nil
	case key.Matches(msg, m.keys.logout):
		return m, m.logout()
	case key.Matches(msg, m.keys.remove):
		if item, ok := m.favoriteList.SelectedItem().(favoriteItem); ok {
			return m, m.setFavorite(item.movie, false, true)
		}
		return m, nil
	case key.Matches(msg, m.keys.edit):
		if m.isGuest() {
			return m, m.failure(shared.ErrGuestAccount)
		}
		return m, m.openEdit()
	case key.Matches(msg, m.keys.delete):
		if m.isGuest() {
			return m, m.failure(shared.ErrGuestAccount)
		}
		m.view = ConfirmDeleteView
		return m, nil
	}

	var cmd tea.Cmd
	m.favoriteList, cmd = m.favoriteList.Update(msg)
	return m, cmd
}

// openEdit opens the edit form prefilled from the loaded profile. The
// password is always entered again since the record is replaced whole.
func (m *Model) openEdit() tea.Cmd {
	user := models.User{Username: m.session.Username()}
	if m.profile != nil && m.profile.User != nil {
		user = *m.profile.User
	}
	m.form = newForm("Edit Profile",
		field{label: "Username", placeholder: "username", value: user.Username},
		field{label: "Password", placeholder: "new password", secret: true},
		field{label: "Email", placeholder: "you@example.com", value: user.Email},
		field{label: "Birthday", placeholder: "YYYY-MM-DD", value: user.BirthdayDate()},
	)
	m.form.setFocus(1)
	m.view = EditView
	return nil
}

func (m *Model) editProfile(details models.UserDetails) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		user, err := api.EditUser(ctx, details)
		return editDoneMsg(details, user, err)
	}
}

// editDone returns to the profile, which reloads after the fixed delay
// whether or not the edit succeeded.
func (m *Model) editDone(done editDone) (tea.Model, tea.Cmd) {
	m.form = nil
	m.view = ProfileView
	m.loading = true
	reload := m.reloadAfter(m.reloadDelay)

	if done.err != nil {
		return m, tea.Batch(m.failure(done.err), reload)
	}

	username := done.details.Username
	if done.user != nil && done.user.Username != "" {
		username = done.user.Username
	}
	if err := m.session.SetUsername(username); err != nil {
		return m, tea.Batch(m.failure(err), reload)
	}
	m.logger.Info("profile updated", "username", username)
	return m, tea.Batch(m.info(shared.MsgProfileUpdated), reload)
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deleting {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.yes):
		m.deleting = true
		return m, m.deleteAccount()
	case key.Matches(msg, m.keys.no):
		m.view = ProfileView
	}
	return m, nil
}

func (m *Model) deleteAccount() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		return deleteDoneMsg(api.DeleteUser(ctx))
	}
}

func (m *Model) deleteDone(err error) (tea.Model, tea.Cmd) {
	m.deleting = false
	if err != nil {
		m.view = ProfileView
		return m, tea.Batch(m.failure(err), m.reloadAfter(m.reloadDelay))
	}

	username := m.session.Username()
	if err := m.session.Clear(); err != nil {
		m.view = ProfileView
		return m, m.failure(err)
	}
	m.logger.Info("account deleted", "username", username)
	m.reset()
	m.view = WelcomeView
	return m, m.info(shared.MsgAccountDeleted)
}

func (m *Model) renderProfile() string {
	if m.profile == nil {
		if m.loading {
			return "Loading profile..."
		}
		return styles.warn.Render("Profile unavailable.") + "\n\n" + m.renderHelp(m.keys.back, m.keys.quit)
	}

	user := m.profile.User
	var b strings.Builder
	b.WriteString(styles.title.Render("Profile"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%s\n", styles.label.Render("Username"), user.Username)
	fmt.Fprintf(&b, "%s%s\n", styles.label.Render("Email"), user.Email)
	if user.Birthday != "" {
		fmt.Fprintf(&b, "%s%s\n", styles.label.Render("Birthday"), user.BirthdayDate())
	}
	if m.isGuest() {
		b.WriteString(styles.warn.Render("Guest account: editing and deletion are disabled."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.profile.Favorites) == 0 {
		b.WriteString(styles.help.Render("No favorite movies yet."))
	} else {
		b.WriteString(m.favoriteList.View())
	}

	keys := []key.Binding{m.keys.remove, m.keys.back, m.keys.logout, m.keys.quit}
	if !m.isGuest() {
		keys = append([]key.Binding{m.keys.edit, m.keys.delete}, keys...)
	}
	return fmt.Sprintf("%s\n\n%s", b.String(), m.renderHelp(keys...))
}

func (m *Model) renderConfirm() string {
	if m.deleting {
		return "Deleting account..."
	}
	title := styles.title.Render(fmt.Sprintf("Delete account '%s'?", m.session.Username()))
	info := styles.warn.Render("Your profile and favorites will be removed. This cannot be undone.")
	return fmt.Sprintf("%s\n%s\n\n%s", title, info, m.renderHelp(m.keys.yes, m.keys.no))
}

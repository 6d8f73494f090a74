package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/shared"
)

func (m *Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.login):
		return m, m.openLogin("")
	case key.Matches(msg, m.keys.register):
		return m, m.openRegister()
	}
	return m, nil
}

func (m *Model) openLogin(username string) tea.Cmd {
	m.form = newForm("Login",
		field{label: "Username", placeholder: "username", value: username},
		field{label: "Password", placeholder: "password", secret: true},
	)
	if username != "" {
		m.form.setFocus(1)
	}
	m.view = LoginView
	return nil
}

func (m *Model) openRegister() tea.Cmd {
	m.form = newForm("Register",
		field{label: "Username", placeholder: "username"},
		field{label: "Password", placeholder: "password", secret: true},
		field{label: "Email", placeholder: "you@example.com"},
		field{label: "Birthday", placeholder: "YYYY-MM-DD"},
	)
	m.view = RegisterView
	return nil
}

// handleFormKeys serves the login, registration and profile edit forms.
func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.form = nil
		if m.view == EditView {
			m.view = ProfileView
		} else {
			m.view = WelcomeView
		}
		return m, nil
	case key.Matches(msg, m.keys.submit):
		return m, m.submitForm()
	}
	return m, m.form.Update(msg, m.keys)
}

func (m *Model) submitForm() tea.Cmd {
	switch m.view {
	case LoginView:
		creds := models.Credentials{Username: m.form.Value(0), Password: m.form.Value(1)}
		if err := creds.Validate(); err != nil {
			return m.failure(fmt.Errorf("%w: %v", shared.ErrInvalidInput, err))
		}
		return m.login(creds)
	case RegisterView, EditView:
		details := models.UserDetails{
			Username: m.form.Value(0),
			Password: m.form.Value(1),
			Email:    m.form.Value(2),
			Birthday: m.form.Value(3),
		}
		if err := details.Validate(); err != nil {
			return m.failure(fmt.Errorf("%w: %v", shared.ErrInvalidInput, err))
		}
		if m.view == EditView {
			return m.editProfile(details)
		}
		return m.register(details)
	}
	return nil
}

func (m *Model) login(creds models.Credentials) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		result, err := api.Login(ctx, creds)
		return loginDoneMsg(result, err)
	}
}

func (m *Model) register(details models.UserDetails) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		user, err := api.Register(ctx, details)
		return registerDoneMsg(user, err)
	}
}

func (m *Model) loginDone(done loginDone) (tea.Model, tea.Cmd) {
	if done.err != nil {
		return m, m.failure(done.err)
	}
	if err := m.session.Set(done.result.Token, done.result.User.Username); err != nil {
		return m, m.failure(err)
	}
	m.logger.Info("logged in", "username", done.result.User.Username)
	m.form = nil
	return m, tea.Batch(m.info(shared.MsgLoggedIn), m.openMovies())
}

func (m *Model) registerDone(done registerDone) (tea.Model, tea.Cmd) {
	if done.err != nil {
		return m, m.failure(done.err)
	}
	var username string
	if done.user != nil {
		username = done.user.Username
	}
	if username == "" && m.form != nil {
		username = m.form.Value(0)
	}
	m.logger.Info("registered", "username", username)
	return m, tea.Batch(m.info(shared.MsgRegistered), m.openLogin(username))
}

func (m *Model) renderWelcome() string {
	title := styles.title.Render("Welcome to myFlix")
	info := "Browse the movie catalog and keep a list of favorites.\nLog in to an existing account or register a new one."
	return fmt.Sprintf("%s\n%s\n\n%s", title, info, m.renderHelp(m.keys.login, m.keys.register, m.keys.quit))
}

func (m *Model) renderForm() string {
	if m.form == nil {
		return ""
	}
	return fmt.Sprintf("%s\n%s", m.form.View(), m.renderHelp(m.keys.submit, m.keys.next, m.keys.back))
}

package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	next     key.Binding
	prev     key.Binding
	submit   key.Binding
	back     key.Binding
	yes      key.Binding
	no       key.Binding
	login    key.Binding
	register key.Binding
	genre    key.Binding
	director key.Binding
	synopsis key.Binding
	favorite key.Binding
	profile  key.Binding
	logout   key.Binding
	remove   key.Binding
	edit     key.Binding
	delete   key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		login:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "login")),
		register: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "register")),
		genre:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "genre")),
		director: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "director")),
		synopsis: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "synopsis")),
		favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		profile:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		logout:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "logout")),
		remove:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remove favorite")),
		edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete account")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.submit, k.back},
		{k.genre, k.director, k.synopsis, k.favorite},
		{k.profile, k.remove, k.edit, k.delete},
		{k.login, k.register, k.logout, k.quit},
	}
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/tasks"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgCatalogLoaded MsgKind = iota
	MsgProfileLoaded
	MsgLoginDone
	MsgRegisterDone
	MsgFavoriteDone
	MsgDetailLoaded
	MsgEditDone
	MsgDeleteDone
	MsgReloadProfile
	MsgDismiss
)

type catalogLoaded struct {
	result *tasks.CatalogResult
	err    error
}

type profileLoaded struct {
	result *tasks.ProfileResult
	err    error
}

type loginDone struct {
	result *models.LoginResult
	err    error
}

type registerDone struct {
	user *models.User
	err  error
}

// favoriteDone reports the outcome of one add or remove call. ids is the
// server's list after the change, nil when it was not returned.
type favoriteDone struct {
	movie       models.Movie
	added       bool
	ids         []string
	fromProfile bool
	err         error
}

type detailLoaded struct {
	seq  int
	body string
	err  error
}

type editDone struct {
	details models.UserDetails
	user    *models.User
	err     error
}

// catalogLoadedMsg is the constructor for [MsgCatalogLoaded]
func catalogLoadedMsg(result *tasks.CatalogResult, err error) Msg {
	return Msg{kind: MsgCatalogLoaded, data: catalogLoaded{result, err}}
}

// profileLoadedMsg is the constructor for [MsgProfileLoaded]
func profileLoadedMsg(result *tasks.ProfileResult, err error) Msg {
	return Msg{kind: MsgProfileLoaded, data: profileLoaded{result, err}}
}

// loginDoneMsg is the constructor for [MsgLoginDone]
func loginDoneMsg(result *models.LoginResult, err error) Msg {
	return Msg{kind: MsgLoginDone, data: loginDone{result, err}}
}

// registerDoneMsg is the constructor for [MsgRegisterDone]
func registerDoneMsg(user *models.User, err error) Msg {
	return Msg{kind: MsgRegisterDone, data: registerDone{user, err}}
}

// favoriteDoneMsg is the constructor for [MsgFavoriteDone]
func favoriteDoneMsg(done favoriteDone) Msg {
	return Msg{kind: MsgFavoriteDone, data: done}
}

// detailLoadedMsg is the constructor for [MsgDetailLoaded]
func detailLoadedMsg(seq int, body string, err error) Msg {
	return Msg{kind: MsgDetailLoaded, data: detailLoaded{seq, body, err}}
}

// editDoneMsg is the constructor for [MsgEditDone]
func editDoneMsg(details models.UserDetails, user *models.User, err error) Msg {
	return Msg{kind: MsgEditDone, data: editDone{details, user, err}}
}

// deleteDoneMsg is the constructor for [MsgDeleteDone]
func deleteDoneMsg(err error) Msg {
	return Msg{kind: MsgDeleteDone, data: err}
}

// reloadProfileMsg is the constructor for [MsgReloadProfile]
func reloadProfileMsg() Msg {
	return Msg{kind: MsgReloadProfile}
}

// dismissMsg is the constructor for [MsgDismiss]. id identifies the
// notification the timer was started for.
func dismissMsg(id int) Msg {
	return Msg{kind: MsgDismiss, data: id}
}

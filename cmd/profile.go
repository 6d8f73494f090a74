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

// ProfileShow prints the account record and favorite movies.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	username, err := r.requireUser()
	if err != nil {
		return err
	}

	profile, err := tasks.LoadProfile(ctx, r.api, username)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return r.writeJSON(struct {
			User      *models.User   `json:"user"`
			Favorites []models.Movie `json:"favorites"`
		}{profile.User, profile.Favorites}, true)
	}

	user := profile.User
	r.writePlainHeader("Profile")
	r.writePlain("Username: %s\n", user.Username)
	r.writePlain("Email:    %s\n", user.Email)
	if user.Birthday != "" {
		r.writePlain("Birthday: %s\n", user.BirthdayDate())
	}
	if r.isGuest(username) {
		r.writePlain("Guest account: editing and deletion are disabled\n")
	}

	r.writePlainln("Favorite movies (%d)", len(profile.Favorites))
	for i, m := range profile.Favorites {
		r.writePlain("%2d. %s\n", i+1, m.Title)
	}
	return nil
}

// ProfileEdit replaces the account record. Fields not given as flags keep
// their current value; the password is prompted for when omitted.
func (r *Runner) ProfileEdit(ctx context.Context, cmd *cli.Command) error {
	username, err := r.requireUser()
	if err != nil {
		return err
	}
	if r.isGuest(username) {
		return shared.ErrGuestAccount
	}

	current, err := r.api.GetUser(ctx, username)
	if err != nil {
		return err
	}
	details := models.UserDetails{
		Username: current.Username,
		Email:    current.Email,
		Birthday: current.BirthdayDate(),
	}
	for name, dst := range map[string]*string{
		"username": &details.Username,
		"password": &details.Password,
		"email":    &details.Email,
		"birthday": &details.Birthday,
	} {
		if v := cmd.String(name); v != "" {
			*dst = v
		}
	}

	if details.Password == "" {
		if err := r.prompter.Details("Edit your profile", &details); err != nil {
			return err
		}
	}
	if err := details.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	user, err := r.api.EditUser(ctx, details)
	if err != nil {
		return err
	}

	newName := details.Username
	if user != nil && user.Username != "" {
		newName = user.Username
	}
	if err := r.session.SetUsername(newName); err != nil {
		return err
	}

	r.logger.Info("profile updated", "username", newName)
	return r.notify(shared.MsgProfileUpdated)
}

// ProfileDelete deletes the account and clears the session.
func (r *Runner) ProfileDelete(ctx context.Context, cmd *cli.Command) error {
	username, err := r.requireUser()
	if err != nil {
		return err
	}
	if r.isGuest(username) {
		return shared.ErrGuestAccount
	}

	if !cmd.Bool("yes") {
		ok, err := r.prompter.Confirm(fmt.Sprintf("Delete account %s? This cannot be undone.", username))
		if err != nil {
			return err
		}
		if !ok {
			return r.writePlain("Aborted\n")
		}
	}

	if err := r.api.DeleteUser(ctx); err != nil {
		return err
	}
	if err := r.session.Clear(); err != nil {
		return err
	}

	r.logger.Info("account deleted", "username", username)
	return r.notify(shared.MsgAccountDeleted)
}

func (r *Runner) isGuest(username string) bool {
	guest := r.config.Profile.GuestUsername
	return guest != "" && strings.EqualFold(username, guest)
}

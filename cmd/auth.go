package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/session"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthRegister creates an account. It does not log in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	details := models.UserDetails{
		Username: cmd.String("username"),
		Password: cmd.String("password"),
		Email:    cmd.String("email"),
		Birthday: cmd.String("birthday"),
	}
	if details.Username == "" || details.Password == "" || details.Email == "" {
		if err := r.prompter.Details("Register a myFlix account", &details); err != nil {
			return err
		}
	}
	if err := details.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	r.logger.Info("registering", "username", details.Username)
	if _, err := r.api.Register(ctx, details); err != nil {
		return err
	}
	return r.notify(shared.MsgRegistered)
}

// AuthLogin exchanges credentials for a token and stores the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	creds := models.Credentials{
		Username: cmd.String("username"),
		Password: cmd.String("password"),
	}
	if err := r.prompter.Credentials(&creds); err != nil {
		return err
	}
	if err := creds.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	result, err := r.api.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err := r.session.Set(result.Token, result.User.Username); err != nil {
		return err
	}

	r.logger.Info("logged in", "username", result.User.Username)
	return r.notify(shared.MsgLoggedIn)
}

// AuthLogout clears the stored session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.session.Clear(); err != nil {
		return err
	}
	return r.notify(shared.MsgLoggedOut)
}

// AuthStatus prints the stored session and what the token claims, without verifying it.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	status := session.Describe(r.session)
	if cmd.Bool("json") {
		return r.writeJSON(status, true)
	}

	r.writePlainHeader("Session")
	for _, line := range status.Lines(time.Now()) {
		r.writePlain("%s\n", line)
	}
	return nil
}

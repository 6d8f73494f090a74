package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/shared"
)

// Prompter asks the user for values missing from flags.
type Prompter interface {
	// Credentials fills empty fields of c.
	Credentials(c *models.Credentials) error
	// Details fills empty fields of d. Every field is offered, prefilled with its current value.
	Details(title string, d *models.UserDetails) error
	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)
}

// huhPrompter prompts on the terminal with [huh] forms.
type huhPrompter struct{}

func (huhPrompter) Credentials(c *models.Credentials) error {
	var fields []huh.Field
	if c.Username == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(&c.Username).Validate(required("username")))
	}
	if c.Password == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&c.Password).Validate(required("password")))
	}
	if len(fields) == 0 {
		return nil
	}
	return run(huh.NewForm(huh.NewGroup(fields...).Title("Login to myFlix")))
}

func (huhPrompter) Details(title string, d *models.UserDetails) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(&d.Username).Validate(required("username")),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&d.Password).Validate(required("password")),
			huh.NewInput().Title("Email").Value(&d.Email).Validate(required("email")),
			huh.NewInput().Title("Birthday").Placeholder("YYYY-MM-DD").Value(&d.Birthday).Validate(optionalDate),
		).Title(title),
	)
	return run(form)
}

func (huhPrompter) Confirm(question string) (bool, error) {
	var ok bool
	err := run(huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(question).Affirmative("Yes").Negative("No").Value(&ok),
	)))
	return ok, err
}

func run(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("%w: aborted", shared.ErrInvalidInput)
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func optionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

package models

import (
	"fmt"
	"strings"
	"time"
)

// User is an account record as returned by the API.
type User struct {
	ID             string   `json:"_id,omitempty"`
	Username       string   `json:"Username"`
	Password       string   `json:"Password,omitempty"`
	Email          string   `json:"Email"`
	Birthday       string   `json:"Birthday,omitempty"`
	FavoriteMovies []string `json:"movieFav"`
}

// BirthdayDate formats the birthday as YYYY-MM-DD when the API returns a timestamp.
func (u User) BirthdayDate() string {
	if t, err := time.Parse(time.RFC3339, u.Birthday); err == nil {
		return t.Format(time.DateOnly)
	}
	return u.Birthday
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// Validate checks that both fields are present.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// UserDetails is the body for registration and whole-record profile updates.
type UserDetails struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
	Email    string `json:"Email"`
	Birthday string `json:"Birthday,omitempty"`
}

// Validate checks the required form fields. The birthday is optional but must
// be a YYYY-MM-DD date when given.
func (d UserDetails) Validate() error {
	if strings.TrimSpace(d.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if d.Password == "" {
		return fmt.Errorf("password is required")
	}
	if strings.TrimSpace(d.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if d.Birthday != "" {
		if _, err := time.Parse(time.DateOnly, d.Birthday); err != nil {
			return fmt.Errorf("birthday must be formatted as YYYY-MM-DD")
		}
	}
	return nil
}

// LoginResult is the login response.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// package services implements the client for the myFlix REST API
package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/desertthunder/myflix/internal/models"
)

// MovieService is the set of myFlix API operations used by the views.
//
// Every failed call returns a [*RequestError] whose message is ready to show to the user.
type MovieService interface {
	// ListMovies returns the full catalog.
	ListMovies(ctx context.Context) ([]models.Movie, error)

	// GetMovie returns a single movie by title.
	GetMovie(ctx context.Context, title string) (*models.Movie, error)

	// GetDirector returns director details by name.
	GetDirector(ctx context.Context, name string) (*models.Director, error)

	// GetGenre returns genre details by name.
	GetGenre(ctx context.Context, name string) (*models.Genre, error)

	// Register creates an account. It does not log in.
	Register(ctx context.Context, details models.UserDetails) (*models.User, error)

	// Login exchanges credentials for a bearer token and user record.
	Login(ctx context.Context, credentials models.Credentials) (*models.LoginResult, error)

	// GetUser returns the account record for username.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// AddFavorite adds a movie to the session user's favorites. The returned
	// list is the server's favorites after the change, nil when the response
	// did not include one.
	AddFavorite(ctx context.Context, movieID string) ([]string, error)

	// RemoveFavorite removes a movie from the session user's favorites. See
	// AddFavorite for the returned list.
	RemoveFavorite(ctx context.Context, movieID string) ([]string, error)

	// EditUser replaces the session user's record.
	EditUser(ctx context.Context, details models.UserDetails) (*models.User, error)

	// DeleteUser deletes the session user's account.
	DeleteUser(ctx context.Context) error
}

// Operation names a gateway call for logging and failure messages.
type Operation string

const (
	OpListMovies     Operation = "listMovies"
	OpGetMovie       Operation = "getMovie"
	OpGetDirector    Operation = "getDirector"
	OpGetGenre       Operation = "getGenre"
	OpRegister       Operation = "register"
	OpLogin          Operation = "login"
	OpGetUser        Operation = "getUser"
	OpAddFavorite    Operation = "addFavorite"
	OpRemoveFavorite Operation = "removeFavorite"
	OpEditUser       Operation = "editUser"
	OpDeleteUser     Operation = "deleteUser"
	OpRaw            Operation = "raw"
)

var failureMessages = map[Operation]string{
	OpListMovies:     "Error extracting movie data, please contact the developer.",
	OpGetMovie:       "Error retrieving movie synopsis, please contact the developer.",
	OpGetDirector:    "Error retrieving director info, please contact the developer.",
	OpGetGenre:       "Error retrieving genre info, please contact the developer.",
	OpRegister:       "Error registering user, please check all required fields",
	OpLogin:          "Error logging in, please try again!",
	OpGetUser:        "Error retrieving user account data, please contact the developer.",
	OpAddFavorite:    "Error adding movie to favorites list, please contact the developer.",
	OpRemoveFavorite: "Error removing movie from favorites list, please contact the developer.",
	OpEditUser:       "Error editing user info, please contact the developer.",
	OpDeleteUser:     "Error deleting profile, please contact the developer.",
	OpRaw:            "Error contacting the API, please try again.",
}

// FailureMessage returns the message shown when op fails with the given
// status and response body. A status of zero means no response was received.
func FailureMessage(op Operation, status int, body string) string {
	if op == OpRegister && status == http.StatusBadRequest {
		return fmt.Sprintf("Username %s. Please login to your account", serverText(body))
	}
	if msg, ok := failureMessages[op]; ok {
		return msg
	}
	return failureMessages[OpRaw]
}

// serverText extracts a readable message from an error body, which the API
// sends as plain text, a JSON string, or a JSON object.
func serverText(body string) string {
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, `"`) && strings.HasSuffix(body, `"`) && len(body) > 1 {
		return body[1 : len(body)-1]
	}
	if text, ok := objectMessage(body); ok {
		return text
	}
	return body
}

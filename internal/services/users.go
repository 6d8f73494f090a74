package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/desertthunder/myflix/internal/models"
)

// Register creates an account.
//
// Calls POST /users without credentials.
func (c *Client) Register(ctx context.Context, details models.UserDetails) (*models.User, error) {
	var user models.User
	req := call{op: OpRegister, method: http.MethodPost, path: "/users", body: details}
	if err := c.do(ctx, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a token. The caller stores the result in the session.
//
// Calls POST /login without credentials.
func (c *Client) Login(ctx context.Context, credentials models.Credentials) (*models.LoginResult, error) {
	var result models.LoginResult
	req := call{op: OpLogin, method: http.MethodPost, path: "/login", body: credentials}
	if err := c.do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUser retrieves an account record.
//
// Calls GET /users/{username}.
func (c *Client) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	req := call{op: OpGetUser, method: http.MethodGet, path: userPath(username), auth: true}
	if err := c.do(ctx, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AddFavorite adds movieID to the session user's favorites.
//
// Calls PATCH /users/{user}/Movies/{id}.
func (c *Client) AddFavorite(ctx context.Context, movieID string) ([]string, error) {
	return c.favorite(ctx, OpAddFavorite, http.MethodPatch, movieID)
}

// RemoveFavorite removes movieID from the session user's favorites.
//
// Calls DELETE /users/{user}/Movies/{id}.
func (c *Client) RemoveFavorite(ctx context.Context, movieID string) ([]string, error) {
	return c.favorite(ctx, OpRemoveFavorite, http.MethodDelete, movieID)
}

func (c *Client) favorite(ctx context.Context, op Operation, method, movieID string) ([]string, error) {
	var ids favoriteIDs
	path := userPath(c.session.Username()) + "/Movies/" + url.PathEscape(movieID)
	if err := c.do(ctx, call{op: op, method: method, path: path, auth: true}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// EditUser replaces the session user's record with details.
//
// Calls PUT /users/{user}.
func (c *Client) EditUser(ctx context.Context, details models.UserDetails) (*models.User, error) {
	var user models.User
	req := call{op: OpEditUser, method: http.MethodPut, path: userPath(c.session.Username()), auth: true, body: details}
	if err := c.do(ctx, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes the session user's account. The response body, usually
// plain text, is ignored.
//
// Calls DELETE /users/{user}.
func (c *Client) DeleteUser(ctx context.Context) error {
	return c.do(ctx, call{op: OpDeleteUser, method: http.MethodDelete, path: userPath(c.session.Username()), auth: true}, nil)
}

func userPath(username string) string {
	return "/users/" + url.PathEscape(username)
}

// favoriteIDs decodes a favorites mutation response, which is either the
// updated user record or a bare array of ids.
type favoriteIDs []string

func (f *favoriteIDs) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return err
		}
		*f = ids
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return err
	}
	*f = user.FavoriteMovies
	return nil
}

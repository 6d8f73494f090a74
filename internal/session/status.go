package session

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang-jwt/jwt/v5"
)

// Status summarizes the session for display.
type Status struct {
	Username      string
	Authenticated bool
	HasToken      bool
	Subject       string
	IssuedAt      time.Time
	ExpiresAt     time.Time
	// Decodable is false when the token is not a JWT.
	Decodable bool
}

// Expired reports whether the token carries an expiry in the past relative to now.
func (s Status) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Describe inspects the store's token without verifying its signature. The
// result is informational; requests are never gated on it.
func Describe(s Store) Status {
	st := Status{
		Username:      s.Username(),
		Authenticated: Authenticated(s),
		HasToken:      s.Token() != "",
	}
	if !st.HasToken {
		return st
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token(), claims); err != nil {
		return st
	}
	st.Decodable = true

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		st.Subject = sub
	} else if name, ok := claims["Username"].(string); ok {
		st.Subject = name
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		st.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		st.ExpiresAt = exp.Time
	}
	return st
}

// Lines renders the status as human readable lines relative to now.
func (s Status) Lines(now time.Time) []string {
	if !s.HasToken {
		return []string{"Not logged in"}
	}

	user := s.Username
	if user == "" {
		user = "(unknown)"
	}
	lines := []string{fmt.Sprintf("Logged in as %s", user)}

	if !s.Decodable {
		return append(lines, "Token: opaque")
	}
	if s.Subject != "" {
		lines = append(lines, fmt.Sprintf("Token subject: %s", s.Subject))
	}
	if !s.IssuedAt.IsZero() {
		lines = append(lines, fmt.Sprintf("Issued: %s", humanize.RelTime(s.IssuedAt, now, "ago", "from now")))
	}
	switch {
	case s.ExpiresAt.IsZero():
		lines = append(lines, "Expires: never")
	case s.Expired(now):
		lines = append(lines, fmt.Sprintf("Expired: %s", humanize.RelTime(s.ExpiresAt, now, "ago", "from now")))
	default:
		lines = append(lines, fmt.Sprintf("Expires: %s", humanize.RelTime(s.ExpiresAt, now, "ago", "from now")))
	}
	return lines
}

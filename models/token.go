package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token issued to a cyclist after login or registration.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. SignedString is the compact form sent in the
// Authorization header; UserID caches the profile id carried in "sub".
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// GetUserID returns the profile id stored in the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", errors.New("empty subject in token")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// AuthResponse is returned by the login and registration endpoints.
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	Profile     Profile `json:"profile"`
}

// Session is the client's persisted login for one API server.
type Session struct {
	ServerURL   string
	UserID      string
	Pseudo      string
	AccessToken string
	SavedAt     time.Time
}

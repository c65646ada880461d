// internal/session/session.go
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is the identity the backend encodes into the session token.
type User struct {
	ID    string
	Name  string
	Email string
}

// Session is the explicit session-context object passed to components that
// need authentication state. The zero value is the logged-out variant; there
// is no nil to null-parse around.
type Session struct {
	Token string
	User  User
}

func LoggedOut() Session {
	return Session{}
}

func (s Session) LoggedIn() bool {
	return s.Token != "" && s.User.ID != ""
}

// Claims matches the token payload the storefront backend issues.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

var (
	ErrMalformedToken = errors.New("malformed session token")
	ErrExpiredToken   = errors.New("session token has expired")
)

// FromToken builds a Session from a bearer token by decoding its claims.
// Signature verification is the backend's job; the client only needs the
// identity and expiry, so the token is parsed unverified. An expired token
// yields the logged-out session and ErrExpiredToken.
func FromToken(token string) (Session, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return LoggedOut(), ErrMalformedToken
	}
	if claims.UserID == "" {
		return LoggedOut(), ErrMalformedToken
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return LoggedOut(), ErrExpiredToken
	}
	return Session{
		Token: token,
		User: User{
			ID:    claims.UserID,
			Name:  claims.Username,
			Email: claims.Email,
		},
	}, nil
}

// internal/session/session_test.go
package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoggedOutZeroValue(t *testing.T) {
	assert.False(t, LoggedOut().LoggedIn())
	assert.False(t, Session{}.LoggedIn())
	assert.False(t, Session{Token: "tok"}.LoggedIn(), "token without identity is not logged in")
}

func TestFromTokenDecodesIdentity(t *testing.T) {
	tok := signToken(t, Claims{
		UserID:   "user-1",
		Username: "Demo Shopper",
		Email:    "demo@trendyshop.test",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	sess, err := FromToken(tok)
	require.NoError(t, err)
	assert.True(t, sess.LoggedIn())
	assert.Equal(t, "user-1", sess.User.ID)
	assert.Equal(t, "Demo Shopper", sess.User.Name)
	assert.Equal(t, "demo@trendyshop.test", sess.User.Email)
	assert.Equal(t, tok, sess.Token)
}

func TestFromTokenExpired(t *testing.T) {
	tok := signToken(t, Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	sess, err := FromToken(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.False(t, sess.LoggedIn())
}

func TestFromTokenMalformed(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b"} {
		sess, err := FromToken(tok)
		assert.ErrorIs(t, err, ErrMalformedToken)
		assert.False(t, sess.LoggedIn())
	}
}

func TestFromTokenMissingIdentity(t *testing.T) {
	tok := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := FromToken(tok)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

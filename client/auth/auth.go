package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// NewTokenSource returns a static bearer token source
func NewTokenSource(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: strings.TrimSpace(token),
		TokenType:   "Bearer",
	})
}

// Expiry returns the exp claim of a JWT token. Opaque tokens report false.
func Expiry(token string) (time.Time, bool) {
	var claims jwt.MapClaims
	if _, _, err := new(jwt.Parser).ParseUnverified(strings.TrimSpace(token), &claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired returns true if token is a JWT that expired before now
func Expired(token string, now time.Time) bool {
	exp, ok := Expiry(token)
	return ok && !exp.After(now)
}

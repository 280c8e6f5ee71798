package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims reads the claims of an access token without verifying its
// signature; the gateway never holds the upstream signing key.
// ok is false for tokens that are not JWTs.
func tokenClaims(token string) (jwt.MapClaims, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// tokenExpired reports whether token carries an exp claim at or before now.
// Opaque tokens and tokens without exp never expire client-side.
func tokenExpired(token string, now time.Time) bool {
	claims, ok := tokenClaims(token)
	if !ok {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}

// tokenName returns the profile name claim, "" when absent
func tokenName(token string) string {
	claims, ok := tokenClaims(token)
	if !ok {
		return ""
	}
	name, _ := claims["name"].(string)
	return name
}

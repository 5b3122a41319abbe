package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry reads the exp claim of a bearer token without verifying its
// signature. The second result is false when the token is not a JWT or has
// no expiry.
func TokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// TokenTTL returns how long token stays valid, minus skew, or fallback when
// the expiry cannot be read.
func TokenTTL(token string, now time.Time, skew, fallback time.Duration) time.Duration {
	expiresAt, ok := TokenExpiry(token)
	if !ok {
		return fallback
	}
	ttl := expiresAt.Sub(now) - skew
	if ttl <= 0 {
		return 0
	}
	return ttl
}

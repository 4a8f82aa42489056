package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionTokens signs session ids for the cookie so a client cannot forge or
// enumerate them. The session store stays the authority on validity.
type sessionTokens struct {
	secret []byte
}

func newSessionTokens(secret string) *sessionTokens {
	return &sessionTokens{secret: []byte(secret)}
}

func (t *sessionTokens) sign(sessionID, userID string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// parse verifies the signature and expiry and returns the session id.
func (t *sessionTokens) parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !tkn.Valid || claims.ID == "" {
		return "", errors.New("session token carries no session id")
	}
	return claims.ID, nil
}

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenIssuer is the "iss" claim embedded in every session token. Tokens
// signed by other services (or older deployments with a different issuer)
// are rejected during parsing.
const tokenIssuer = "bitquest-server"

// signSessionToken wraps a session ID in a signed HMAC-SHA256 JWT.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies this service
//   - Subject   (sub): the opaque session ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// The identity bound to the session ID lives only server-side; the token
// itself carries no player data.
func signSessionToken(sessionID, signKey string, ttl time.Duration) (string, error) {
	if sessionID == "" || signKey == "" || ttl == 0 {
		return "", errors.New("invalid params for signing session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, nil
}

// parseSessionToken validates a raw session token and extracts the session ID.
//
// Validation includes signature verification against signKey, the issuer
// claim, and the expiration claim. Any failure is returned as an error; the
// caller normalises it to [ErrNoSession].
func parseSessionToken(tokenString, signKey string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	sessionID, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from session token: %w", err)
	}
	if sessionID == "" {
		return "", errors.New("empty subject in session token")
	}

	return sessionID, nil
}

package authenticating

import "github.com/pkg/errors"

var (
	// ErrInvalidCredentials means the POS ledger rejected the username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken means the console session token failed signature or shape checks.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrSessionNotFound means the token was valid but the session is no longer cached.
	ErrSessionNotFound = errors.New("session not found")
)

package domain

import "errors"

var (
	// ErrInvalidCredentials is the single login failure, whatever the cause.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken   = errors.New("username already taken")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidInput    = errors.New("invalid input")
	ErrTooManyAttempts = errors.New("too many login attempts")

	// ErrNotFound covers both a missing record and one owned by another account.
	ErrNotFound = errors.New("not found")

	// Internal only: callers observe these as ErrUnauthenticated or
	// ErrInvalidCredentials.
	ErrInvalidToken    = errors.New("invalid token")
	ErrAccountNotFound = errors.New("account not found")
)

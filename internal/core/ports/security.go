package ports

import "time"

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenCodec issues and validates bearer tokens.
type TokenCodec interface {
	// Issue returns a signed token for subject and its expiry.
	Issue(subject string) (token string, expiresAt time.Time, err error)
	// Validate returns the subject of a valid token. Any failure is reported
	// as an error wrapping domain.ErrInvalidToken; it never panics.
	Validate(token string) (subject string, err error)
}

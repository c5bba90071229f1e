package domain

import "time"

// AuthEventKind classifies entries of the authentication audit trail.
type AuthEventKind string

const (
	AuthEventRegistered     AuthEventKind = "registered"
	AuthEventLoginSucceeded AuthEventKind = "login_succeeded"
	AuthEventLoginFailed    AuthEventKind = "login_failed"
	AuthEventLoginThrottled AuthEventKind = "login_throttled"
)

// AuthEvent records one authentication outcome.
type AuthEvent struct {
	ID        string
	Kind      AuthEventKind
	Username  string
	AccountID int64 // zero when no account was resolved
	RemoteIP  string
	Reason    string
	At        time.Time
}

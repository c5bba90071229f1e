package ports

import (
	"context"
	"time"

	"github.com/clearview/jobtracker/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *domain.Account
}

// Identity is the public view of the current principal.
type Identity struct {
	ID       int64
	Username string
}

type AuthService interface {
	Register(ctx context.Context, username, password, remoteIP string) (*domain.Account, error)
	Login(ctx context.Context, username, password, remoteIP string) (*LoginResult, error)
	Me(ctx context.Context) (*Identity, error)
}

// LoginThrottle limits login attempts per username.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) (bool, error)
}

// AuditRecorder accepts authentication events for asynchronous persistence.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}

// AuditRepository persists authentication events.
type AuditRepository interface {
	InsertAuthEvent(ctx context.Context, event *domain.AuthEvent) error
}

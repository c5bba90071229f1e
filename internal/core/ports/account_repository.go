package ports

import (
	"context"

	"github.com/clearview/jobtracker/internal/core/domain"
)

// AccountDirectory resolves a token subject to the account it names.
// FindByUsername returns domain.ErrAccountNotFound when no account matches.
type AccountDirectory interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// AccountRepository defines persistence for accounts.
type AccountRepository interface {
	AccountDirectory
	// Create inserts the account and assigns its ID. It must be atomic with
	// respect to username uniqueness: a duplicate returns
	// domain.ErrUsernameTaken and stores nothing.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

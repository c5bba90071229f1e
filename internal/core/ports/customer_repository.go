package ports

import (
	"context"

	"github.com/clearview/jobtracker/internal/core/domain"
)

// CustomerRepository defines persistence for customers. Every method is
// scoped to ownerID; a record owned by another account behaves as missing
// and yields domain.ErrNotFound.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	FindByID(ctx context.Context, ownerID, id int64) (*domain.Customer, error)
	List(ctx context.Context, ownerID int64) ([]*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, ownerID, id int64) error
}

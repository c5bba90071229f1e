package ports

import (
	"context"

	"github.com/clearview/jobtracker/internal/core/domain"
)

// CustomerInput carries the writable fields of a customer.
type CustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// CustomerService defines owner-scoped customer use cases. The owner is the
// principal bound to ctx.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, input CustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

package ports

import (
	"context"

	"github.com/clearview/jobtracker/internal/core/domain"
)

// CreateJobInput carries the data for a new job. When CustomerID is set the
// customer's name and address are used; otherwise CustomerName and Address
// are taken as entered.
type CreateJobInput struct {
	Service      string
	JobDate      string
	Price        float64
	Notes        string
	CustomerID   *int64
	CustomerName string
	Address      string
	Paid         bool
}

// UpdateJobInput carries the editable fields of an existing job.
type UpdateJobInput struct {
	Service      string
	JobDate      string
	Price        float64
	Notes        string
	CustomerName string
	Address      string
}

// JobService defines owner-scoped job use cases. The owner is the principal
// bound to ctx.
type JobService interface {
	ListJobs(ctx context.Context) ([]*domain.Job, error)
	GetJob(ctx context.Context, id int64) (*domain.Job, error)
	CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	UpdateJob(ctx context.Context, id int64, input UpdateJobInput) (*domain.Job, error)
	DeleteJob(ctx context.Context, id int64) error
	MarkJobPaid(ctx context.Context, id int64) (*domain.Job, error)
	Revenue(ctx context.Context) ([]domain.RevenueMonth, error)
}

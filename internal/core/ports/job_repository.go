package ports

import (
	"context"

	"github.com/clearview/jobtracker/internal/core/domain"
)

// JobRepository defines persistence for jobs. Every method is scoped to
// ownerID; a record owned by another account behaves as missing and yields
// domain.ErrNotFound.
type JobRepository interface {
	// Create assigns j.ID, and the invoice number when j is paid, in one write.
	Create(ctx context.Context, j *domain.Job) error
	FindByID(ctx context.Context, ownerID, id int64) (*domain.Job, error)
	List(ctx context.Context, ownerID int64) ([]*domain.Job, error)
	// Update replaces the mutable fields of the job matching j.ID and j.OwnerID.
	Update(ctx context.Context, j *domain.Job) error
	Delete(ctx context.Context, ownerID, id int64) error
	// MonthlyRevenue sums job prices per month of job_date, split by paid state.
	MonthlyRevenue(ctx context.Context, ownerID int64) ([]domain.RevenueMonth, error)
}

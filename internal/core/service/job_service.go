package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clearview/jobtracker/internal/core/domain"
	"github.com/clearview/jobtracker/internal/core/ports"
)

type JobService struct {
	jobs      ports.JobRepository
	customers ports.CustomerRepository
	logger    zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, customers ports.CustomerRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, customers: customers, logger: logger}
}

func (s *JobService) ListJobs(ctx context.Context) ([]*domain.Job, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	return s.jobs.List(ctx, owner.ID)
}

func (s *JobService) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	return s.jobs.FindByID(ctx, owner.ID, id)
}

// CreateJob stores a job owned by the current principal. A linked customer
// must belong to the same principal.
func (s *JobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateJobFields(input.JobDate, input.Price); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job := &domain.Job{
		OwnerID:      owner.ID,
		Service:      input.Service,
		JobDate:      input.JobDate,
		Price:        input.Price,
		Notes:        input.Notes,
		CustomerName: input.CustomerName,
		Address:      input.Address,
		Paid:         input.Paid,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if strings.TrimSpace(job.Service) == "" {
		job.Service = domain.DefaultJobService
	}

	if input.CustomerID != nil {
		customer, err := s.customers.FindByID(ctx, owner.ID, *input.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("job customer: %w", err)
		}
		id := customer.ID
		job.CustomerID = &id
		job.CustomerName = customer.Name
		job.Address = customer.Address
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Int64("owner_id", owner.ID).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Int64("job_id", job.ID).Int64("owner_id", owner.ID).Str("service", job.Service).Msg("job created")
	return job, nil
}

// UpdateJob replaces the editable fields of a job the principal owns.
func (s *JobService) UpdateJob(ctx context.Context, id int64, input ports.UpdateJobInput) (*domain.Job, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateJobFields(input.JobDate, input.Price); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, owner.ID, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Service) != "" {
		job.Service = input.Service
	}
	job.JobDate = input.JobDate
	job.Price = input.Price
	job.Notes = input.Notes
	job.CustomerName = input.CustomerName
	job.Address = input.Address
	job.UpdatedAt = time.Now().UTC()

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) DeleteJob(ctx context.Context, id int64) error {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, owner.ID, id); err != nil {
		return err
	}
	s.logger.Info().Int64("job_id", id).Int64("owner_id", owner.ID).Msg("job deleted")
	return nil
}

// MarkJobPaid flags a job as paid and assigns its invoice number. Marking an
// already paid job is a no-op.
func (s *JobService) MarkJobPaid(ctx context.Context, id int64) (*domain.Job, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, owner.ID, id)
	if err != nil {
		return nil, err
	}
	if job.Paid && job.InvoiceNumber != "" {
		return job, nil
	}

	job.MarkPaid()
	job.UpdatedAt = time.Now().UTC()
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("job_id", job.ID).Str("invoice", job.InvoiceNumber).Msg("job marked paid")
	return job, nil
}

// Revenue returns the principal's monthly paid/unpaid totals.
func (s *JobService) Revenue(ctx context.Context) ([]domain.RevenueMonth, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	return s.jobs.MonthlyRevenue(ctx, owner.ID)
}

func validateJobFields(jobDate string, price float64) error {
	if _, err := time.Parse(domain.JobDateLayout, jobDate); err != nil {
		return fmt.Errorf("job date %q: %w", jobDate, domain.ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("job price: %w", domain.ErrInvalidInput)
	}
	return nil
}

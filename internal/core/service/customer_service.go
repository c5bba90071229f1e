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

type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, owner.ID)
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, owner.ID, id)
}

// CreateCustomer stores a customer owned by the current principal.
func (s *CustomerService) CreateCustomer(ctx context.Context, input ports.CustomerInput) (*domain.Customer, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("customer name: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	c := &domain.Customer{
		OwnerID:   owner.ID,
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Int64("owner_id", owner.ID).Msg("failed to create customer")
		return nil, err
	}

	s.logger.Info().Int64("customer_id", c.ID).Int64("owner_id", owner.ID).Msg("customer created")
	return c, nil
}

// UpdateCustomer replaces the writable fields of a customer the principal owns.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, input ports.CustomerInput) (*domain.Customer, error) {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("customer name: %w", domain.ErrInvalidInput)
	}

	c, err := s.repo.FindByID(ctx, owner.ID, id)
	if err != nil {
		return nil, err
	}
	c.Name = input.Name
	c.Phone = input.Phone
	c.Email = input.Email
	c.Address = input.Address
	c.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	owner, err := domain.RequirePrincipal(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, owner.ID, id); err != nil {
		return err
	}
	s.logger.Info().Int64("customer_id", id).Int64("owner_id", owner.ID).Msg("customer deleted")
	return nil
}

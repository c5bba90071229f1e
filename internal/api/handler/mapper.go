package handler

import (
	"github.com/clearview/jobtracker/internal/core/domain"
	"github.com/clearview/jobtracker/internal/core/ports"
)

// --- Request → Service input ---

func toCustomerInput(r customerRequest) ports.CustomerInput {
	return ports.CustomerInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

func toCreateJobInput(r createJobRequest) ports.CreateJobInput {
	return ports.CreateJobInput{
		Service:      r.Service,
		JobDate:      r.JobDate,
		Price:        r.Price,
		Notes:        r.Notes,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Address:      r.Address,
		Paid:         r.Paid,
	}
}

func toUpdateJobInput(r updateJobRequest) ports.UpdateJobInput {
	return ports.UpdateJobInput{
		Service:      r.Service,
		JobDate:      r.JobDate,
		Price:        r.Price,
		Notes:        r.Notes,
		CustomerName: r.CustomerName,
		Address:      r.Address,
	}
}

// --- Domain → HTTP response ---

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}

func toCustomerResponses(cs []*domain.Customer) []customerResponse {
	out := make([]customerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCustomerResponse(c))
	}
	return out
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:            j.ID,
		Service:       j.Service,
		CustomerID:    j.CustomerID,
		CustomerName:  j.CustomerName,
		Address:       j.Address,
		JobDate:       j.JobDate,
		Price:         j.Price,
		Notes:         j.Notes,
		Paid:          j.Paid,
		InvoiceNumber: j.InvoiceNumber,
	}
}

func toJobResponses(js []*domain.Job) []jobResponse {
	out := make([]jobResponse, 0, len(js))
	for _, j := range js {
		out = append(out, toJobResponse(j))
	}
	return out
}

func toRevenueResponses(ms []domain.RevenueMonth) []revenueResponse {
	out := make([]revenueResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, revenueResponse{Month: m.Month, Paid: m.Paid, Unpaid: m.Unpaid})
	}
	return out
}

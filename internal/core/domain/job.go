package domain

import (
	"fmt"
	"time"
)

// DefaultJobService is applied when a job is created without a service name.
const DefaultJobService = "Window Cleaning"

// JobDateLayout is the wire and storage format of Job.JobDate.
const JobDateLayout = "2006-01-02"

// Job is a single piece of work carried out for a customer.
type Job struct {
	ID      int64   `bson:"_id"`
	OwnerID int64   `bson:"owner_id"`
	Service string  `bson:"service"`
	JobDate string  `bson:"job_date"`
	Price   float64 `bson:"price"`
	Notes   string  `bson:"notes,omitempty"`

	// CustomerID is set when the job was created against a stored customer.
	// CustomerName and Address are then copied from that customer.
	CustomerID   *int64 `bson:"customer_id,omitempty"`
	CustomerName string `bson:"customer_name,omitempty"`
	Address      string `bson:"address,omitempty"`

	Paid          bool   `bson:"paid"`
	InvoiceNumber string `bson:"invoice_number,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MarkPaid flags the job as paid and assigns its invoice number.
func (j *Job) MarkPaid() {
	j.Paid = true
	j.InvoiceNumber = InvoiceNumber(j.ID)
}

// InvoiceNumber derives the invoice number of a job id.
func InvoiceNumber(jobID int64) string {
	return fmt.Sprintf("INV-%d", jobID)
}

// RevenueMonth sums job prices of one calendar month, split by paid state.
type RevenueMonth struct {
	Month  string  `bson:"_id"`
	Paid   float64 `bson:"paid"`
	Unpaid float64 `bson:"unpaid"`
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/clearview/jobtracker/internal/core/domain"
	"github.com/clearview/jobtracker/internal/core/ports"
)

func jobInput(date string, price float64) ports.CreateJobInput {
	return ports.CreateJobInput{
		JobDate:      date,
		Price:        price,
		Notes:        "test job",
		CustomerName: "John Doe",
		Address:      "123 Main St",
	}
}

func TestJobService_Create_Defaults(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, newStubCustomerRepo(), discardLogger)

	job, err := svc.CreateJob(ctxAs(1, "alice"), jobInput("2025-09-01", 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Service != domain.DefaultJobService {
		t.Errorf("expected default service, got %q", job.Service)
	}
	if job.Paid || job.InvoiceNumber != "" {
		t.Errorf("new job must be unpaid without invoice: %+v", job)
	}
	if repo.byID[job.ID].OwnerID != 1 {
		t.Errorf("expected owner 1, got %d", repo.byID[job.ID].OwnerID)
	}
}

func TestJobService_Create_PaidAssignsInvoice(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, newStubCustomerRepo(), discardLogger)

	in := jobInput("2025-09-01", 80)
	in.Paid = true
	job, err := svc.CreateJob(ctxAs(1, "alice"), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.byID[job.ID].InvoiceNumber != domain.InvoiceNumber(job.ID) {
		t.Fatalf("expected stored invoice %q, got %q", domain.InvoiceNumber(job.ID), repo.byID[job.ID].InvoiceNumber)
	}
	if job.InvoiceNumber != domain.InvoiceNumber(job.ID) {
		t.Fatalf("expected returned invoice %q, got %q", domain.InvoiceNumber(job.ID), job.InvoiceNumber)
	}
}

func TestJobService_Create_PaidIsSingleWrite(t *testing.T) {
	repo := newStubJobRepo()
	repo.updateErr = errStore
	svc := NewJobService(repo, newStubCustomerRepo(), discardLogger)

	in := jobInput("2025-09-01", 80)
	in.Paid = true
	job, err := svc.CreateJob(ctxAs(1, "alice"), in)
	if err != nil {
		t.Fatalf("create must not depend on a follow-up update: %v", err)
	}
	if repo.writes != 1 || len(repo.byID) != 1 {
		t.Fatalf("expected one stored job from one write, got %d writes and %d jobs", repo.writes, len(repo.byID))
	}
	if !repo.byID[job.ID].Paid || repo.byID[job.ID].InvoiceNumber == "" {
		t.Fatalf("stored job must be paid with an invoice: %+v", repo.byID[job.ID])
	}
}

func TestJobService_Create_Validation(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), newStubCustomerRepo(), discardLogger)

	for _, in := range []ports.CreateJobInput{
		jobInput("", 10),
		jobInput("01/09/2025", 10),
		jobInput("2025-13-01", 10),
		jobInput("2025-09-01", -1),
	} {
		if _, err := svc.CreateJob(ctxAs(1, "alice"), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestJobService_Create_LinksOwnCustomerOnly(t *testing.T) {
	customers := newStubCustomerRepo()
	jobs := newStubJobRepo()
	svc := NewJobService(jobs, customers, discardLogger)

	own := &domain.Customer{OwnerID: 1, Name: "Jane", Address: "1 Elm St"}
	foreign := &domain.Customer{OwnerID: 2, Name: "Bob's client", Address: "9 Oak St"}
	_ = customers.Create(context.Background(), own)
	_ = customers.Create(context.Background(), foreign)

	in := jobInput("2025-09-01", 50)
	in.CustomerID = &own.ID
	job, err := svc.CreateJob(ctxAs(1, "alice"), in)
	if err != nil {
		t.Fatalf("create linked: %v", err)
	}
	if job.CustomerID == nil || *job.CustomerID != own.ID {
		t.Fatalf("expected customer link %d, got %v", own.ID, job.CustomerID)
	}
	if job.CustomerName != "Jane" || job.Address != "1 Elm St" {
		t.Fatalf("expected customer details copied, got %q / %q", job.CustomerName, job.Address)
	}

	in.CustomerID = &foreign.ID
	if _, err := svc.CreateJob(ctxAs(1, "alice"), in); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound linking a foreign customer, got %v", err)
	}
	if len(jobs.byID) != 1 {
		t.Fatalf("expected no job stored for the foreign link, have %d", len(jobs.byID))
	}
}

func TestJobService_Create_RepoError(t *testing.T) {
	repo := newStubJobRepo()
	repo.createErr = errStore
	svc := NewJobService(repo, newStubCustomerRepo(), discardLogger)

	if _, err := svc.CreateJob(ctxAs(1, "alice"), jobInput("2025-09-01", 1)); !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestJobService_OwnershipIsolation(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, newStubCustomerRepo(), discardLogger)
	alice, bob := ctxAs(1, "alice"), ctxAs(2, "bob")

	var aliceIDs, bobIDs []int64
	for _, d := range []string{"2025-09-01", "2025-09-02", "2025-10-01"} {
		j, err := svc.CreateJob(alice, jobInput(d, 10))
		if err != nil {
			t.Fatalf("create alice job: %v", err)
		}
		aliceIDs = append(aliceIDs, j.ID)
	}
	for _, d := range []string{"2025-09-03", "2025-09-04"} {
		j, err := svc.CreateJob(bob, jobInput(d, 20))
		if err != nil {
			t.Fatalf("create bob job: %v", err)
		}
		bobIDs = append(bobIDs, j.ID)
	}

	list, err := svc.ListJobs(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != len(aliceIDs) {
		t.Fatalf("expected %d jobs, got %d", len(aliceIDs), len(list))
	}
	for i, j := range list {
		if j.ID != aliceIDs[i] || j.OwnerID != 1 {
			t.Fatalf("unexpected job in alice's list: %+v", j)
		}
	}

	_, foreignErr := svc.GetJob(alice, bobIDs[0])
	_, missingErr := svc.GetJob(alice, 12345)
	if !errors.Is(foreignErr, domain.ErrNotFound) || !errors.Is(missingErr, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for both, got %v and %v", foreignErr, missingErr)
	}
	if foreignErr.Error() != missingErr.Error() {
		t.Fatalf("foreign and missing errors differ: %q vs %q", foreignErr, missingErr)
	}

	if _, err := svc.UpdateJob(alice, bobIDs[0], ports.UpdateJobInput{JobDate: "2025-09-09", Price: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("update foreign: expected ErrNotFound, got %v", err)
	}
	if repo.byID[bobIDs[0]].Price != 20 {
		t.Fatal("foreign job was modified")
	}
	if _, err := svc.MarkJobPaid(alice, bobIDs[0]); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("mark paid foreign: expected ErrNotFound, got %v", err)
	}
	if repo.byID[bobIDs[0]].Paid {
		t.Fatal("foreign job was marked paid")
	}
	if err := svc.DeleteJob(alice, bobIDs[0]); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete foreign: expected ErrNotFound, got %v", err)
	}
	if _, ok := repo.byID[bobIDs[0]]; !ok {
		t.Fatal("foreign job was deleted")
	}
}

func TestJobService_RequiresPrincipal(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), newStubCustomerRepo(), discardLogger)
	ctx := domain.WithPrincipal(context.Background(), domain.Anonymous())

	if _, err := svc.ListJobs(ctx); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("list: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.GetJob(ctx, 1); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("get: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.CreateJob(ctx, jobInput("2025-09-01", 1)); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("create: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.UpdateJob(ctx, 1, ports.UpdateJobInput{JobDate: "2025-09-01"}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("update: expected ErrUnauthenticated, got %v", err)
	}
	if err := svc.DeleteJob(ctx, 1); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("delete: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.MarkJobPaid(ctx, 1); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("mark paid: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Revenue(ctx); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("revenue: expected ErrUnauthenticated, got %v", err)
	}
}

func TestJobService_Update(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, newStubCustomerRepo(), discardLogger)
	alice := ctxAs(1, "alice")

	job, _ := svc.CreateJob(alice, jobInput("2025-09-01", 100))
	updated, err := svc.UpdateJob(alice, job.ID, ports.UpdateJobInput{
		JobDate:      "2025-09-15",
		Price:        120,
		Notes:        "moved",
		CustomerName: "John Doe",
		Address:      "124 Main St",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Service != domain.DefaultJobService {
		t.Errorf("blank service must keep existing value, got %q", updated.Service)
	}
	stored := repo.byID[job.ID]
	if stored.JobDate != "2025-09-15" || stored.Price != 120 || stored.Address != "124 Main St" {
		t.Fatalf("unexpected stored job: %+v", stored)
	}
}

func TestJobService_MarkPaid(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, newStubCustomerRepo(), discardLogger)
	alice := ctxAs(1, "alice")

	job, _ := svc.CreateJob(alice, jobInput("2025-09-01", 100))
	paid, err := svc.MarkJobPaid(alice, job.ID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if !paid.Paid || paid.InvoiceNumber != domain.InvoiceNumber(job.ID) {
		t.Fatalf("unexpected job: %+v", paid)
	}

	again, err := svc.MarkJobPaid(alice, job.ID)
	if err != nil {
		t.Fatalf("mark paid twice: %v", err)
	}
	if again.InvoiceNumber != paid.InvoiceNumber {
		t.Fatalf("invoice changed on second call: %q", again.InvoiceNumber)
	}
}

func TestJobService_Revenue(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, newStubCustomerRepo(), discardLogger)
	alice, bob := ctxAs(1, "alice"), ctxAs(2, "bob")

	paidIn := jobInput("2025-09-10", 100)
	paidIn.Paid = true
	_, _ = svc.CreateJob(alice, paidIn)
	_, _ = svc.CreateJob(alice, jobInput("2025-09-20", 40))
	_, _ = svc.CreateJob(alice, jobInput("2025-10-01", 25))
	_, _ = svc.CreateJob(bob, jobInput("2025-09-01", 999))

	months, err := svc.Revenue(alice)
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	want := []domain.RevenueMonth{
		{Month: "2025-09", Paid: 100, Unpaid: 40},
		{Month: "2025-10", Paid: 0, Unpaid: 25},
	}
	if len(months) != len(want) {
		t.Fatalf("expected %d months, got %+v", len(want), months)
	}
	for i := range want {
		if months[i] != want[i] {
			t.Fatalf("month %d: expected %+v, got %+v", i, want[i], months[i])
		}
	}
}

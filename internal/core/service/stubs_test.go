package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clearview/jobtracker/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	mu      sync.Mutex
	nextID  int64
	byName  map[string]*domain.Account
	findErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byName: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[a.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	r.nextID++
	clone := *a
	clone.ID = r.nextID
	r.byName[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byName[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byName)
}

// countingHasher is a reversible fake that counts Verify calls.
type countingHasher struct {
	mu       sync.Mutex
	n        int
	verifies int
}

func (h *countingHasher) Hash(plaintext string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.n++
	return "hashed:" + plaintext + ":" + string(rune('a'+h.n%26)), nil
}

func (h *countingHasher) Verify(plaintext, digest string) bool {
	h.mu.Lock()
	h.verifies++
	h.mu.Unlock()
	return strings.HasPrefix(digest, "hashed:"+plaintext+":")
}

func (h *countingHasher) verifyCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.verifies
}

type stubCodec struct{}

func (stubCodec) Issue(subject string) (string, time.Time, error) {
	return "token-for:" + subject, time.Now().Add(time.Hour), nil
}

func (stubCodec) Validate(token string) (string, error) {
	if sub, ok := strings.CutPrefix(token, "token-for:"); ok && sub != "" {
		return sub, nil
	}
	return "", domain.ErrInvalidToken
}

type stubThrottle struct {
	allow bool
	err   error
	calls int
}

func (t *stubThrottle) Allow(context.Context, string) (bool, error) {
	t.calls++
	return t.allow, t.err
}

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (a *recordingAudit) Record(e domain.AuthEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *recordingAudit) kinds() []domain.AuthEventKind {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.AuthEventKind, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Kind)
	}
	return out
}

// ---------------------------------------------------------------------------
// Customers and jobs
// ---------------------------------------------------------------------------

type stubCustomerRepo struct {
	nextID int64
	byID   map[int64]*domain.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{byID: make(map[int64]*domain.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

// FindByID mirrors the Mongo filter {_id, owner_id}.
func (r *stubCustomerRepo) FindByID(_ context.Context, ownerID, id int64) (*domain.Customer, error) {
	c, ok := r.byID[id]
	if !ok || c.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) List(_ context.Context, ownerID int64) ([]*domain.Customer, error) {
	var out []*domain.Customer
	for _, c := range r.byID {
		if c.OwnerID == ownerID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	existing, ok := r.byID[c.ID]
	if !ok || existing.OwnerID != c.OwnerID {
		return domain.ErrNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, ownerID, id int64) error {
	c, ok := r.byID[id]
	if !ok || c.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubJobRepo struct {
	nextID    int64
	byID      map[int64]*domain.Job
	createErr error
	updateErr error
	writes    int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{byID: make(map[int64]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.writes++
	r.nextID++
	j.ID = r.nextID
	if j.Paid && j.InvoiceNumber == "" {
		j.InvoiceNumber = domain.InvoiceNumber(j.ID)
	}
	clone := *j
	r.byID[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, ownerID, id int64) (*domain.Job, error) {
	j, ok := r.byID[id]
	if !ok || j.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context, ownerID int64) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.byID {
		if j.OwnerID == ownerID {
			clone := *j
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, j *domain.Job) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.writes++
	existing, ok := r.byID[j.ID]
	if !ok || existing.OwnerID != j.OwnerID {
		return domain.ErrNotFound
	}
	clone := *j
	r.byID[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) Delete(_ context.Context, ownerID, id int64) error {
	j, ok := r.byID[id]
	if !ok || j.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubJobRepo) MonthlyRevenue(_ context.Context, ownerID int64) ([]domain.RevenueMonth, error) {
	byMonth := map[string]*domain.RevenueMonth{}
	for _, j := range r.byID {
		if j.OwnerID != ownerID {
			continue
		}
		month := j.JobDate[:7]
		m, ok := byMonth[month]
		if !ok {
			m = &domain.RevenueMonth{Month: month}
			byMonth[month] = m
		}
		if j.Paid {
			m.Paid += j.Price
		} else {
			m.Unpaid += j.Price
		}
	}
	out := make([]domain.RevenueMonth, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Month < out[k].Month })
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ctxAs(id int64, username string) context.Context {
	return domain.WithPrincipal(context.Background(), domain.Authenticated(domain.Account{
		ID:       id,
		Username: username,
		Roles:    []string{domain.RoleUser},
	}))
}

var errStore = errors.New("store unavailable")

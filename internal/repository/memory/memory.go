package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/lifecycle"
	"marketplace/internal/service/negotiation"
)

// Store is an in-process implementation of the job and offer repositories
// with the same conditional-update semantics as the SQL layer. One mutex
// guards both tables so the TxManager below gives real atomicity.
type Store struct {
	mu     sync.Mutex
	jobs   map[string]*entities.Job
	offers map[string]*entities.Offer
}

func NewStore() *Store {
	return &Store{
		jobs:   make(map[string]*entities.Job),
		offers: make(map[string]*entities.Offer),
	}
}

func (s *Store) Jobs() *JobRepo {
	return &JobRepo{store: s}
}

func (s *Store) Offers() *OfferRepo {
	return &OfferRepo{store: s}
}

// TxManager runs fn while holding the store lock, making the enclosed reads
// and writes atomic relative to other store calls.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

type txKey struct{}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type JobRepo struct {
	store *Store
}

func (r *JobRepo) Create(ctx context.Context, job *entities.Job) error {
	defer r.store.lock(ctx)()

	r.store.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *JobRepo) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	defer r.store.lock(ctx)()

	j, ok := r.store.jobs[id]
	if !ok {
		return nil, lifecycle.ErrJobNotFound
	}
	return cloneJob(j), nil
}

func (r *JobRepo) UpdateStatus(ctx context.Context, jobID string, from, to entities.JobStatus) error {
	defer r.store.lock(ctx)()

	j, ok := r.store.jobs[jobID]
	if !ok || j.Status != from {
		return lifecycle.ErrStatusConflict
	}
	j.Status = to
	j.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *JobRepo) WriteAssignment(ctx context.Context, jobID string, from, to entities.JobStatus, a entities.Assignment, otp string) error {
	defer r.store.lock(ctx)()

	j, ok := r.store.jobs[jobID]
	if !ok || j.Status != from || j.Assignment != nil {
		return lifecycle.ErrStatusConflict
	}

	assignment := a
	j.Assignment = &assignment
	j.Status = to
	j.FinalPrice = a.Amount
	if otp != "" {
		j.OTP = otp
	}
	j.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *JobRepo) AppendTimeline(ctx context.Context, jobID string, entry entities.TimelineEntry) error {
	defer r.store.lock(ctx)()

	j, ok := r.store.jobs[jobID]
	if !ok {
		return lifecycle.ErrJobNotFound
	}
	j.Timeline = append(j.Timeline, entry)
	return nil
}

func (r *JobRepo) SetCancelReason(ctx context.Context, jobID, reason string) error {
	defer r.store.lock(ctx)()

	j, ok := r.store.jobs[jobID]
	if !ok {
		return lifecycle.ErrJobNotFound
	}
	j.CancelReason = reason
	j.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *JobRepo) SetBiddingWindow(ctx context.Context, jobID string, closesAt time.Time) error {
	defer r.store.lock(ctx)()

	j, ok := r.store.jobs[jobID]
	if !ok {
		return lifecycle.ErrJobNotFound
	}
	t := closesAt
	j.BiddingClosesAt = &t
	j.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *JobRepo) CountActiveByKind(ctx context.Context, kind entities.JobKind) (int, error) {
	defer r.store.lock(ctx)()

	count := 0
	for _, j := range r.store.jobs {
		if j.Kind == kind && !entities.IsTerminal(j.Status) {
			count++
		}
	}
	return count, nil
}

func (r *JobRepo) ListBiddingExpired(ctx context.Context, now time.Time) ([]entities.Job, error) {
	defer r.store.lock(ctx)()

	var out []entities.Job
	for _, j := range r.store.jobs {
		if j.Status != entities.StatusBiddingOpen || j.Assignment != nil {
			continue
		}
		if j.BiddingClosesAt == nil || j.BiddingClosesAt.After(now) {
			continue
		}
		out = append(out, *cloneJob(j))
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

type OfferRepo struct {
	store *Store
}

func (r *OfferRepo) Create(ctx context.Context, offer entities.Offer) error {
	defer r.store.lock(ctx)()

	for _, o := range r.store.offers {
		if o.JobID == offer.JobID && o.BidderID == offer.BidderID && o.Status == entities.OfferPending {
			return negotiation.ErrDuplicateBidder
		}
	}

	cp := offer
	r.store.offers[offer.ID] = &cp
	return nil
}

func (r *OfferRepo) GetByID(ctx context.Context, id string) (*entities.Offer, error) {
	defer r.store.lock(ctx)()

	o, ok := r.store.offers[id]
	if !ok {
		return nil, negotiation.ErrOfferNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *OfferRepo) ListByJob(ctx context.Context, jobID string) ([]entities.Offer, error) {
	defer r.store.lock(ctx)()

	var out []entities.Offer
	for _, o := range r.store.offers {
		if o.JobID == jobID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		if out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].ID < out[k].ID
		}
		return out[i].CreatedAt.Before(out[k].CreatedAt)
	})
	return out, nil
}

func (r *OfferRepo) UpdateStatus(ctx context.Context, offerID string, from, to entities.OfferStatus) error {
	defer r.store.lock(ctx)()

	o, ok := r.store.offers[offerID]
	if !ok || o.Status != from {
		return negotiation.ErrOfferResolved
	}
	o.Status = to
	return nil
}

func (r *OfferRepo) RejectPendingByJob(ctx context.Context, jobID, exceptOfferID string) (int64, error) {
	defer r.store.lock(ctx)()

	var n int64
	for _, o := range r.store.offers {
		if o.JobID == jobID && o.ID != exceptOfferID && o.Status == entities.OfferPending {
			o.Status = entities.OfferRejected
			n++
		}
	}
	return n, nil
}

func (r *OfferRepo) ExpireDue(ctx context.Context, now time.Time) ([]entities.Offer, error) {
	defer r.store.lock(ctx)()

	var out []entities.Offer
	for _, o := range r.store.offers {
		if o.Status == entities.OfferPending && !o.ExpiresAt.IsZero() && !now.Before(o.ExpiresAt) {
			o.Status = entities.OfferExpired
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (r *OfferRepo) CountPendingByJob(ctx context.Context, jobID string) (int, error) {
	defer r.store.lock(ctx)()

	count := 0
	for _, o := range r.store.offers {
		if o.JobID == jobID && o.Status == entities.OfferPending {
			count++
		}
	}
	return count, nil
}

func cloneJob(j *entities.Job) *entities.Job {
	cp := *j
	if j.Assignment != nil {
		a := *j.Assignment
		cp.Assignment = &a
	}
	if j.BiddingClosesAt != nil {
		t := *j.BiddingClosesAt
		cp.BiddingClosesAt = &t
	}
	cp.Timeline = append([]entities.TimelineEntry(nil), j.Timeline...)
	return &cp
}

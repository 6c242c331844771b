package store

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"petjobs-engine/internal/domain"
)

// Store owns the ordered request collection and the single active draft.
// It is not safe for concurrent use; app.Session serialises access.
type Store struct {
	requests []domain.JobRequest
	draft    domain.Draft

	newID func() string
	now   func() time.Time
}

type Option func(*Store)

// WithIDFunc replaces the uuid generator.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

func New(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Submit validates d and appends it as a new request. On success the draft is
// cleared; on failure nothing changes and the error wraps
// domain.ErrMissingRequiredField.
func (s *Store) Submit(d domain.Draft) (domain.JobRequest, error) {
	if err := d.Validate(); err != nil {
		return domain.JobRequest{}, err
	}

	r := domain.JobRequest{
		ID:          s.uniqueID(),
		Job:         d.Job,
		Date:        d.Date,
		Location:    d.Location,
		Details:     d.Details,
		TimeSlot:    d.TimeSlot,
		SubmittedAt: s.now(),
	}
	s.requests = append(s.requests, r)
	s.draft = domain.Draft{}
	return r, nil
}

// SubmitDraft submits the store's own draft.
func (s *Store) SubmitDraft() (domain.JobRequest, error) {
	return s.Submit(s.draft)
}

// Remove drops the request with the given id. It reports whether an entry was
// removed; an unknown id is not an error.
func (s *Store) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.requests = slices.Delete(s.requests, i, i+1)
	return true
}

func (s *Store) UpdateDraftField(f domain.Field, value string) error {
	d, err := s.draft.With(f, value)
	if err != nil {
		return err
	}
	s.draft = d
	return nil
}

func (s *Store) ResetDraft() {
	s.draft = domain.Draft{}
}

func (s *Store) Draft() domain.Draft {
	return s.draft
}

// List returns a copy of the requests in insertion order.
func (s *Store) List() []domain.JobRequest {
	return slices.Clone(s.requests)
}

func (s *Store) Get(id string) (domain.JobRequest, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.JobRequest{}, false
	}
	return s.requests[i], true
}

func (s *Store) Len() int {
	return len(s.requests)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.requests, func(r domain.JobRequest) bool { return r.ID == id })
}

// uniqueID retries the generator until it yields an id not already in use.
// With uuids the loop body runs once; injected generators may repeat.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.index(id) < 0 {
			return id
		}
	}
}

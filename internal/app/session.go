package app

import (
	"errors"
	"sync"

	"petjobs-engine/internal/domain"
	"petjobs-engine/internal/logging"
	"petjobs-engine/internal/store"
	"petjobs-engine/internal/view"
)

// Session is the single owner of the request store and the panel state.
// Every operation runs to completion under one lock.
type Session struct {
	mu      sync.Mutex
	store   *store.Store
	panel   view.PanelState
	catalog domain.Catalog
	log     *logging.Logger
}

// Transition describes what a panel event did.
type Transition struct {
	Event        view.Event      `json:"event"`
	From         view.PanelState `json:"from"`
	To           view.PanelState `json:"to"`
	DraftCleared bool            `json:"draftCleared"`
}

func (t Transition) Changed() bool { return t.From != t.To || t.DraftCleared }

type Snapshot struct {
	Requests []domain.JobRequest `json:"requests"`
	Draft    domain.Draft        `json:"draft"`
	Panel    view.PanelState     `json:"panel"`
	Layout   view.Layout         `json:"layout"`
	Catalog  domain.Catalog      `json:"catalog"`
}

func NewSession(catalog domain.Catalog, log *logging.Logger, opts ...store.Option) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{
		store:   store.New(opts...),
		panel:   view.Collapsed,
		catalog: catalog,
		log:     log.With("component", "session"),
	}
}

// Seed appends sample requests without touching the draft.
func (s *Session) Seed(drafts []domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.store.Draft()
	defer func() { s.loadDraft(saved) }()

	var errs []error
	for _, d := range drafts {
		if _, err := s.store.Submit(d); err != nil {
			errs = append(errs, err)
		}
	}
	s.log.Info("seeded requests", "count", len(drafts)-len(errs))
	return errors.Join(errs...)
}

func (s *Session) loadDraft(d domain.Draft) {
	for _, f := range domain.Fields {
		_ = s.store.UpdateDraftField(f, d.Get(f))
	}
}

// Apply feeds a panel event through the state machine.
func (s *Session) Apply(ev view.Event) Transition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ev)
}

func (s *Session) apply(ev view.Event) Transition {
	t := Transition{Event: ev, From: s.panel, To: view.Next(s.panel, ev)}

	discard := view.ClearsDraft(t.From, t.To)
	if ev == view.EventCancel {
		// cancel always discards the draft
		discard = true
	}
	if discard && !s.store.Draft().IsEmpty() {
		s.store.ResetDraft()
		t.DraftCleared = true
	}
	s.panel = t.To

	s.log.Debug("panel event", "event", ev, "from", t.From, "to", t.To, "draft_cleared", t.DraftCleared)
	return t
}

func (s *Session) NewRequest() Transition { return s.Apply(view.EventNewRequest) }
func (s *Session) Toggle() Transition     { return s.Apply(view.EventToggle) }
func (s *Session) Cancel() Transition     { return s.Apply(view.EventCancel) }

func (s *Session) SetField(f domain.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.UpdateDraftField(f, value)
}

// SetDraft replaces every draft field at once, as a form post does.
func (s *Session) SetDraft(d domain.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadDraft(d)
}

func (s *Session) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.ResetDraft()
}

// Submit promotes the current draft. On success the panel collapses; on a
// validation error the panel, form and draft stay as they were.
func (s *Session) Submit() (domain.JobRequest, Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submit()
}

// SubmitDraft loads d into the draft and submits it in one step.
func (s *Session) SubmitDraft(d domain.Draft) (domain.JobRequest, Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadDraft(d)
	return s.submit()
}

func (s *Session) submit() (domain.JobRequest, Transition, error) {
	r, err := s.store.SubmitDraft()
	if err != nil {
		s.log.Info("submit rejected", "err", err)
		return domain.JobRequest{}, Transition{Event: view.EventSubmitted, From: s.panel, To: s.panel}, err
	}
	s.log.Info("request submitted", "id", r.ID, "job", r.Job, "date", r.Date, "time_slot", r.TimeSlot)
	return r, s.apply(view.EventSubmitted), nil
}

func (s *Session) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.store.Remove(id)
	if removed {
		s.log.Info("request deleted", "id", id)
	}
	return removed
}

func (s *Session) Get(id string) (domain.JobRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(id)
}

func (s *Session) Requests() []domain.JobRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}

func (s *Session) Draft() domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Draft()
}

func (s *Session) Panel() view.PanelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

func (s *Session) Catalog() domain.Catalog {
	return s.catalog
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Requests: s.store.List(),
		Draft:    s.store.Draft(),
		Panel:    s.panel,
		Layout:   view.LayoutFor(s.panel),
		Catalog:  s.catalog,
	}
}

// Page builds the view model for the renderer.
func (snap Snapshot) Page() view.Page {
	return view.Page{
		Requests: snap.Requests,
		Draft:    snap.Draft,
		Catalog:  snap.Catalog,
		State:    snap.Panel,
		Layout:   snap.Layout,
	}
}

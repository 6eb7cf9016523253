package service

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Eyob-T295/summit-connect/model"
	"github.com/Eyob-T295/summit-connect/store"
)

// ErrLeadNotFound is returned for operations on an unknown registry ID.
var ErrLeadNotFound = errors.New("lead not found")

// LeadService holds the lead collection in memory and writes through to the
// persistence port. The collection is newest-first: submissions prepend.
// Concurrent writers against the same underlying store race last-write-wins;
// this is a single-operator tool.
type LeadService struct {
	mu     sync.RWMutex
	leads  []model.LeadRecord
	port   store.Store
	cancel func()
}

// NewLeadService loads the collection from the port and subscribes to
// external changes so another writer's updates show up without a restart.
func NewLeadService(port store.Store) *LeadService {
	s := &LeadService{port: port}
	s.leads = port.Load()
	s.cancel = port.Subscribe(s.reload)
	slog.Info("lead registry initialized", "count", len(s.leads))
	return s
}

func (s *LeadService) reload() {
	s.mu.Lock()
	s.leads = s.port.Load()
	count := len(s.leads)
	s.mu.Unlock()
	slog.Info("lead registry reloaded after external change", "count", count)
}

// Submit validates the questionnaire and, on success, prepends the new record
// to the collection and persists it. On failure the full ordered list of
// validation errors is returned and nothing is persisted.
func (s *LeadService) Submit(form model.LeadForm) (model.LeadRecord, []error) {
	if errs := form.Validate(); len(errs) > 0 {
		return model.LeadRecord{}, errs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	taken := make(map[string]bool, len(s.leads))
	for _, l := range s.leads {
		taken[l.ID] = true
	}

	lead := form.Build(model.NewLeadID(taken), time.Now())
	s.leads = append([]model.LeadRecord{lead}, s.leads...)
	s.port.Save(s.leads)

	slog.Info("lead submitted",
		"lead_id", lead.ID,
		"price", lead.Price,
		"can_invest", lead.CanInvest,
	)
	return lead, nil
}

// List returns the collection, newest first.
func (s *LeadService) List() []model.LeadRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.LeadRecord(nil), s.leads...)
}

// Get returns the record with the given registry ID.
func (s *LeadService) Get(id string) (model.LeadRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return model.LeadRecord{}, false
}

// Count returns the number of registered leads.
func (s *LeadService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// update applies fn to the record with the given ID and persists the whole
// collection.
func (s *LeadService) update(id string, fn func(*model.LeadRecord) error) (model.LeadRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID != id {
			continue
		}
		if err := fn(&s.leads[i]); err != nil {
			return model.LeadRecord{}, err
		}
		s.port.Save(s.leads)
		return s.leads[i], nil
	}
	return model.LeadRecord{}, ErrLeadNotFound
}

// UpdateStatus moves a lead to the given pipeline state.
func (s *LeadService) UpdateStatus(id string, status model.LeadStatus) (model.LeadRecord, error) {
	lead, err := s.update(id, func(l *model.LeadRecord) error {
		return l.SetStatus(status, time.Now())
	})
	if err == nil {
		slog.Info("lead status updated", "lead_id", id, "status", status)
	}
	return lead, err
}

// MarkNoShow is the dashboard's fast-path transition to No Show.
func (s *LeadService) MarkNoShow(id string) (model.LeadRecord, error) {
	return s.UpdateStatus(id, model.StatusNoShow)
}

// UpdateNotes replaces the strategist notes on a lead.
func (s *LeadService) UpdateNotes(id, notes string) (model.LeadRecord, error) {
	return s.update(id, func(l *model.LeadRecord) error {
		l.Notes = notes
		return nil
	})
}

// AssignOwner sets the staff owner label on a lead.
func (s *LeadService) AssignOwner(id, owner string) (model.LeadRecord, error) {
	return s.update(id, func(l *model.LeadRecord) error {
		l.Owner = owner
		return nil
	})
}

// ClearAll empties the collection. Individual records are never deleted; this
// is the only destructive operation.
func (s *LeadService) ClearAll() {
	s.mu.Lock()
	count := len(s.leads)
	s.leads = []model.LeadRecord{}
	s.port.Clear()
	s.mu.Unlock()
	slog.Info("lead registry cleared", "removed", count)
}

// Stats computes the dashboard summary for the current collection.
func (s *LeadService) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeStats(s.leads, time.Now())
}

// Close cancels the external-change subscription.
func (s *LeadService) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

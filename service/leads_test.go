package service

import (
	"testing"
	"time"

	"github.com/Eyob-T295/summit-connect/model"
	"github.com/Eyob-T295/summit-connect/store"
)

func validForm() model.LeadForm {
	return model.LeadForm{
		FullName:       "Jane Doe",
		Email:          "jane@x.com",
		Phone:          "555-0100",
		PriceRange:     model.PriceThreeToTen,
		ClosingMethods: []model.SalesClosingMethod{model.ClosingBookedCalls},
		Breakdowns:     []model.SettingBreakdown{model.BreakdownNoShows},
		LeadCapacity:   model.FlowFiftyPlus,
		GenMethods:     []model.LeadGenMethod{model.GenPaidAds},
		CanInvest:      "Yes",
	}
}

func newTestService(t *testing.T) (*LeadService, *store.MemStore) {
	t.Helper()
	mem := store.NewMemStore()
	svc := NewLeadService(mem)
	t.Cleanup(svc.Close)
	return svc, mem
}

func TestSubmitPersistsNewLead(t *testing.T) {
	svc, mem := newTestService(t)
	start := time.Now().UTC()

	lead, errs := svc.Submit(validForm())
	if len(errs) != 0 {
		t.Fatalf("Unexpected validation errors: %v", errs)
	}

	if lead.Status != model.StatusAuditSubmitted {
		t.Errorf("Expected status Audit Submitted, got %s", lead.Status)
	}
	auditAt, err := time.Parse(time.RFC3339, lead.AuditAt)
	if err != nil {
		t.Fatalf("Expected valid auditAt timestamp, got %q: %v", lead.AuditAt, err)
	}
	if auditAt.Before(start.Truncate(time.Second)) {
		t.Errorf("Expected auditAt >= submission start, got %v < %v", auditAt, start)
	}
	if !lead.CanInvest {
		t.Error("Expected canInvest true")
	}

	// Exactly one record persisted through the port
	persisted := mem.Load()
	if len(persisted) != 1 {
		t.Fatalf("Expected 1 persisted record, got %d", len(persisted))
	}
	if persisted[0].ID != lead.ID {
		t.Errorf("Expected persisted ID %s, got %s", lead.ID, persisted[0].ID)
	}

	// A fresh Audit Submitted lead does not move the booked or qualified stats
	stats := svc.Stats()
	if stats.CallsBooked != 0 {
		t.Errorf("Expected callsBooked 0, got %d", stats.CallsBooked)
	}
	if stats.QualifiedPercent != 0 {
		t.Errorf("Expected qualifiedPercent 0, got %d", stats.QualifiedPercent)
	}
	if stats.NewToday != 1 {
		t.Errorf("Expected newToday 1, got %d", stats.NewToday)
	}
}

func TestSubmitPrepends(t *testing.T) {
	svc, _ := newTestService(t)

	first, _ := svc.Submit(validForm())
	form := validForm()
	form.FullName = "John Smith"
	second, _ := svc.Submit(form)

	leads := svc.List()
	if len(leads) != 2 {
		t.Fatalf("Expected 2 leads, got %d", len(leads))
	}
	if leads[0].ID != second.ID || leads[1].ID != first.ID {
		t.Errorf("Expected newest-first order, got %s then %s", leads[0].ID, leads[1].ID)
	}
}

func TestSubmitInvalidPersistsNothing(t *testing.T) {
	svc, mem := newTestService(t)

	_, errs := svc.Submit(model.LeadForm{})
	if len(errs) != 5 {
		t.Errorf("Expected all 5 validation errors, got %d: %v", len(errs), errs)
	}
	if got := mem.Load(); len(got) != 0 {
		t.Errorf("Expected nothing persisted, got %d records", len(got))
	}
	if svc.Count() != 0 {
		t.Errorf("Expected empty registry, got %d", svc.Count())
	}
}

func TestUpdateStatusWritesThrough(t *testing.T) {
	svc, mem := newTestService(t)
	lead, _ := svc.Submit(validForm())

	updated, err := svc.UpdateStatus(lead.ID, model.StatusCallBooked)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated.Status != model.StatusCallBooked {
		t.Errorf("Expected status Call Booked, got %s", updated.Status)
	}
	if updated.BookedAt == "" {
		t.Error("Expected bookedAt stamped")
	}

	// Persisted collection reflects the new status on reload
	persisted := mem.Load()
	if persisted[0].Status != model.StatusCallBooked {
		t.Errorf("Expected persisted status Call Booked, got %s", persisted[0].Status)
	}
}

func TestUpdateStatusUnknownLead(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.UpdateStatus("SC-999", model.StatusQualified); err != ErrLeadNotFound {
		t.Errorf("Expected ErrLeadNotFound, got %v", err)
	}
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	svc, _ := newTestService(t)
	lead, _ := svc.Submit(validForm())

	if _, err := svc.UpdateStatus(lead.ID, "Vanished"); err == nil {
		t.Error("Expected error for unknown status")
	}
	got, _ := svc.Get(lead.ID)
	if got.Status != model.StatusAuditSubmitted {
		t.Errorf("Expected status unchanged, got %s", got.Status)
	}
}

func TestMarkNoShowRaisesAtRisk(t *testing.T) {
	svc, mem := newTestService(t)
	lead, _ := svc.Submit(validForm())

	before := svc.Stats().AtRisk

	if _, err := svc.MarkNoShow(lead.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	after := svc.Stats().AtRisk
	if after != before+1 {
		t.Errorf("Expected atRisk to increase by 1, got %d -> %d", before, after)
	}
	if persisted := mem.Load(); persisted[0].Status != model.StatusNoShow {
		t.Errorf("Expected persisted status No Show, got %s", persisted[0].Status)
	}
}

func TestUpdateNotesAndOwner(t *testing.T) {
	svc, _ := newTestService(t)
	lead, _ := svc.Submit(validForm())

	updated, err := svc.UpdateNotes(lead.ID, "High intent, follow up Monday")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated.Notes != "High intent, follow up Monday" {
		t.Errorf("Unexpected notes: %q", updated.Notes)
	}

	updated, err = svc.AssignOwner(lead.ID, "Alex Thompson")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated.Owner != "Alex Thompson" {
		t.Errorf("Unexpected owner: %q", updated.Owner)
	}
}

func TestClearAll(t *testing.T) {
	svc, mem := newTestService(t)
	svc.Submit(validForm())
	svc.Submit(validForm())

	svc.ClearAll()

	if svc.Count() != 0 {
		t.Errorf("Expected empty registry, got %d", svc.Count())
	}
	if got := mem.Load(); len(got) != 0 {
		t.Errorf("Expected empty persisted collection, got %d", len(got))
	}
}

func TestExternalChangeReloads(t *testing.T) {
	mem := store.NewMemStore()
	svc := NewLeadService(mem)
	defer svc.Close()

	// Another context writes a record directly to the shared store
	mem.Save([]model.LeadRecord{{ID: "SC-500", Name: "External", Status: model.StatusQualified}})
	mem.NotifyExternal()

	leads := svc.List()
	if len(leads) != 1 || leads[0].ID != "SC-500" {
		t.Errorf("Expected reloaded external record, got %+v", leads)
	}
}

func TestSubmitGeneratesUniqueIDs(t *testing.T) {
	svc, _ := newTestService(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		lead, errs := svc.Submit(validForm())
		if len(errs) != 0 {
			t.Fatalf("Unexpected errors: %v", errs)
		}
		if seen[lead.ID] {
			t.Fatalf("Duplicate lead ID: %s", lead.ID)
		}
		seen[lead.ID] = true
	}
}

package service

import (
	"testing"
	"time"

	"github.com/Eyob-T295/summit-connect/model"
)

func leadWithStatus(id string, status model.LeadStatus, auditAt string) model.LeadRecord {
	return model.LeadRecord{ID: id, Status: status, AuditAt: auditAt}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())

	if stats.Total != 0 {
		t.Errorf("Expected total 0, got %d", stats.Total)
	}
	if stats.QualifiedPercent != 0 {
		t.Errorf("Expected qualifiedPercent 0 on empty collection, got %d", stats.QualifiedPercent)
	}
	if stats.RevenueEstimate != "$0.0k" {
		t.Errorf("Expected $0.0k, got %s", stats.RevenueEstimate)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	leads := []model.LeadRecord{
		leadWithStatus("SC-1", model.StatusAuditSubmitted, "2025-06-01T09:00:00Z"),
		leadWithStatus("SC-2", model.StatusQualified, "2025-06-01T10:00:00Z"),
		leadWithStatus("SC-3", model.StatusCallBooked, "2025-05-30T10:00:00Z"),
		leadWithStatus("SC-4", model.StatusNoShow, "2025-05-29T10:00:00Z"),
		leadWithStatus("SC-5", model.StatusDisqualified, "2025-05-28T10:00:00Z"),
	}

	stats := ComputeStats(leads, now)

	if stats.Total != 5 {
		t.Errorf("Expected total 5, got %d", stats.Total)
	}
	if stats.NewToday != 2 {
		t.Errorf("Expected newToday 2, got %d", stats.NewToday)
	}
	if stats.CallsBooked != 1 {
		t.Errorf("Expected callsBooked 1, got %d", stats.CallsBooked)
	}
	if stats.AtRisk != 1 {
		t.Errorf("Expected atRisk 1, got %d", stats.AtRisk)
	}
	// 2 of 5 qualified (Qualified + Call Booked) = 40%
	if stats.QualifiedPercent != 40 {
		t.Errorf("Expected qualifiedPercent 40, got %d", stats.QualifiedPercent)
	}
	// 2 qualified x 12.5 = $25.0k
	if stats.RevenueEstimate != "$25.0k" {
		t.Errorf("Expected $25.0k, got %s", stats.RevenueEstimate)
	}
}

func TestComputeStatsPercentRounding(t *testing.T) {
	leads := []model.LeadRecord{
		leadWithStatus("SC-1", model.StatusQualified, "2025-06-01T09:00:00Z"),
		leadWithStatus("SC-2", model.StatusAuditSubmitted, "2025-06-01T09:00:00Z"),
		leadWithStatus("SC-3", model.StatusAuditSubmitted, "2025-06-01T09:00:00Z"),
	}

	stats := ComputeStats(leads, time.Now())
	// 1/3 rounds to 33
	if stats.QualifiedPercent != 33 {
		t.Errorf("Expected 33, got %d", stats.QualifiedPercent)
	}

	leads = append(leads, leadWithStatus("SC-4", model.StatusQualified, "2025-06-01T09:00:00Z"),
		leadWithStatus("SC-5", model.StatusQualified, "2025-06-01T09:00:00Z"))
	stats = ComputeStats(leads, time.Now())
	// 3/5 = 60
	if stats.QualifiedPercent != 60 {
		t.Errorf("Expected 60, got %d", stats.QualifiedPercent)
	}
}

func TestComputeStatsPercentBounds(t *testing.T) {
	all := []model.LeadRecord{
		leadWithStatus("SC-1", model.StatusQualified, "2025-06-01T09:00:00Z"),
		leadWithStatus("SC-2", model.StatusCallBooked, "2025-06-01T09:00:00Z"),
	}
	stats := ComputeStats(all, time.Now())
	if stats.QualifiedPercent != 100 {
		t.Errorf("Expected 100, got %d", stats.QualifiedPercent)
	}

	none := []model.LeadRecord{
		leadWithStatus("SC-3", model.StatusDisqualified, "2025-06-01T09:00:00Z"),
	}
	stats = ComputeStats(none, time.Now())
	if stats.QualifiedPercent != 0 {
		t.Errorf("Expected 0, got %d", stats.QualifiedPercent)
	}

	if stats.QualifiedPercent < 0 || stats.QualifiedPercent > 100 {
		t.Errorf("Percent out of bounds: %d", stats.QualifiedPercent)
	}
}

func TestComputeStatsHalfKilo(t *testing.T) {
	leads := []model.LeadRecord{
		leadWithStatus("SC-1", model.StatusQualified, "2025-06-01T09:00:00Z"),
		leadWithStatus("SC-2", model.StatusQualified, "2025-06-01T09:00:00Z"),
		leadWithStatus("SC-3", model.StatusCallBooked, "2025-06-01T09:00:00Z"),
	}
	stats := ComputeStats(leads, time.Now())
	// 3 x 12.5 = 37.5, one decimal with k suffix
	if stats.RevenueEstimate != "$37.5k" {
		t.Errorf("Expected $37.5k, got %s", stats.RevenueEstimate)
	}
}

package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Eyob-T295/summit-connect/model"
)

// revenuePerQualified is the illustrative projection factor: thousands of
// dollars per qualified lead. Not a real computation.
const revenuePerQualified = 12.5

// Stats is the dashboard summary bar, derived from the full collection.
type Stats struct {
	Total            int    `json:"total"`
	NewToday         int    `json:"newToday"`
	CallsBooked      int    `json:"callsBooked"`
	AtRisk           int    `json:"atRisk"`
	QualifiedPercent int    `json:"qualifiedPercent"`
	RevenueEstimate  string `json:"revenueEstimate"`
}

// ComputeStats derives the summary statistics from the collection.
func ComputeStats(leads []model.LeadRecord, now time.Time) Stats {
	total := len(leads)
	today := now.UTC().Format("2006-01-02")

	var newToday, booked, atRisk, qualified int
	for _, l := range leads {
		if strings.HasPrefix(l.AuditAt, today) {
			newToday++
		}
		switch l.Status {
		case model.StatusCallBooked:
			booked++
			qualified++
		case model.StatusQualified:
			qualified++
		case model.StatusNoShow:
			atRisk++
		}
	}

	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(qualified) / float64(total) * 100))
	}

	return Stats{
		Total:            total,
		NewToday:         newToday,
		CallsBooked:      booked,
		AtRisk:           atRisk,
		QualifiedPercent: percent,
		RevenueEstimate:  fmt.Sprintf("$%.1fk", float64(qualified)*revenuePerQualified),
	}
}

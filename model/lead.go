package model

import (
	"fmt"
	"math/rand"
	"time"
)

// PriceRange is the price band of the offer the lead sells.
type PriceRange string

const (
	PriceThreeToTen    PriceRange = "3k - 10k"
	PriceTenToThirty   PriceRange = "10k - 30k"
	PriceThirtyToFifty PriceRange = "30k - 50k"
)

// SalesClosingMethod is how the lead currently closes sales.
type SalesClosingMethod string

const (
	ClosingBookedCalls SalesClosingMethod = "Booked sales calls"
	ClosingDMsChat     SalesClosingMethod = "DMs / Chat"
	ClosingInboundOnly SalesClosingMethod = "Inbound only"
	ClosingOther       SalesClosingMethod = "Other"
)

// SettingBreakdown is the lead's biggest appointment-setting obstacle.
type SettingBreakdown string

const (
	BreakdownSlowFollowup SettingBreakdown = "Missed or slow lead follow-up"
	BreakdownUnqualified  SettingBreakdown = "Unqualified prospects booking calls"
	BreakdownNoShows      SettingBreakdown = "No-shows"
	BreakdownTurnover     SettingBreakdown = "Setter turnover or inconsistency"
	BreakdownNoSystem     SettingBreakdown = "No clear system or tracking"
)

// LeadFlowStatus is the lead-volume capacity answer.
type LeadFlowStatus string

const (
	FlowFiftyPlus    LeadFlowStatus = "Yes (50+ leads/month)"
	FlowInconsistent LeadFlowStatus = "Some leads, inconsistent"
	FlowNone         LeadFlowStatus = "No consistent lead flow"
)

// LeadGenMethod is a lead-generation channel.
type LeadGenMethod string

const (
	GenPaidAds   LeadGenMethod = "Paid ads (Meta, Google, YouTube, etc.)"
	GenOrganic   LeadGenMethod = "Organic content (YouTube, Instagram, TikTok, SEO)"
	GenReferrals LeadGenMethod = "Referrals / partnerships"
	GenEmailSMS  LeadGenMethod = "Email or SMS list"
	GenOutbound  LeadGenMethod = "Outbound / cold outreach"
	GenMultiple  LeadGenMethod = "Multiple channels"
	GenNone      LeadGenMethod = "No consistent lead source yet"
)

// LeadStatus is the pipeline state of a lead. The intended flow is
// Audit Submitted -> {Qualified, Disqualified} -> Call Booked -> {Completed, No Show},
// but the dashboard may set any status directly.
type LeadStatus string

const (
	StatusAuditSubmitted LeadStatus = "Audit Submitted"
	StatusQualified      LeadStatus = "Qualified"
	StatusCallBooked     LeadStatus = "Call Booked"
	StatusCompleted      LeadStatus = "Completed"
	StatusNoShow         LeadStatus = "No Show"
	StatusDisqualified   LeadStatus = "Disqualified"
)

// Ordered option lists for rendering the intake form. Order matches the
// original questionnaire.
func PriceRangeOptions() []PriceRange {
	return []PriceRange{PriceThreeToTen, PriceTenToThirty, PriceThirtyToFifty}
}

func ClosingMethodOptions() []SalesClosingMethod {
	return []SalesClosingMethod{ClosingBookedCalls, ClosingDMsChat, ClosingInboundOnly, ClosingOther}
}

func BreakdownOptions() []SettingBreakdown {
	return []SettingBreakdown{
		BreakdownSlowFollowup,
		BreakdownUnqualified,
		BreakdownNoShows,
		BreakdownTurnover,
		BreakdownNoSystem,
	}
}

func LeadFlowOptions() []LeadFlowStatus {
	return []LeadFlowStatus{FlowFiftyPlus, FlowInconsistent, FlowNone}
}

func GenMethodOptions() []LeadGenMethod {
	return []LeadGenMethod{GenPaidAds, GenOrganic, GenReferrals, GenEmailSMS, GenOutbound, GenMultiple, GenNone}
}

func StatusOptions() []LeadStatus {
	return []LeadStatus{
		StatusAuditSubmitted,
		StatusQualified,
		StatusCallBooked,
		StatusCompleted,
		StatusNoShow,
		StatusDisqualified,
	}
}

// ValidStatus reports whether s is one of the known pipeline states.
func ValidStatus(s LeadStatus) bool {
	for _, v := range StatusOptions() {
		if v == s {
			return true
		}
	}
	return false
}

// Defaults applied at record creation.
const (
	DefaultOwner    = "Unassigned"
	DefaultNotes    = "Submitted via website audit form."
	DefaultTimezone = "Auto-detected"
)

// LeadRecord is one submitted qualification audit. The JSON shape matches the
// collection the original site persisted, except that the full breakdown and
// closing-method selections are kept instead of only the first one.
type LeadRecord struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	Timezone       string               `json:"timezone"`
	Price          PriceRange           `json:"price"`
	Breakdowns     []SettingBreakdown   `json:"breakdowns"`
	Flow           LeadFlowStatus       `json:"flow"`
	ClosingMethods []SalesClosingMethod `json:"closingMethods"`
	Status         LeadStatus           `json:"status"`
	AuditAt        string               `json:"auditAt"`
	BookedAt       string               `json:"bookedAt,omitempty"`
	CanInvest      bool                 `json:"canInvest"`
	Notes          string               `json:"notes"`
	Owner          string               `json:"owner"`
	GenMethods     []LeadGenMethod      `json:"genMethods"`
}

// Breakdown returns the primary (first selected) breakdown signal.
func (l *LeadRecord) Breakdown() SettingBreakdown {
	if len(l.Breakdowns) == 0 {
		return ""
	}
	return l.Breakdowns[0]
}

// Closing returns the primary (first selected) closing method.
func (l *LeadRecord) Closing() SalesClosingMethod {
	if len(l.ClosingMethods) == 0 {
		return ""
	}
	return l.ClosingMethods[0]
}

// SetStatus moves the record to the given pipeline state. Any known status is
// accepted; bookedAt is stamped the first time the record enters Call Booked.
func (l *LeadRecord) SetStatus(s LeadStatus, now time.Time) error {
	if !ValidStatus(s) {
		return fmt.Errorf("unknown lead status: %q", s)
	}
	if s == StatusCallBooked && l.BookedAt == "" {
		l.BookedAt = now.UTC().Format(time.RFC3339)
	}
	l.Status = s
	return nil
}

// NewLeadID generates a short human-readable registry ID. The taken set holds
// IDs already present in the collection so duplicates are regenerated.
func NewLeadID(taken map[string]bool) string {
	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("SC-%d", rand.Intn(900)+100)
		if !taken[id] {
			return id
		}
	}

	// Short suffix space exhausted, widen it
	for {
		id := fmt.Sprintf("SC-%d", rand.Intn(900000)+100000)
		if !taken[id] {
			return id
		}
	}
}

package model

import (
	"errors"
	"time"
)

// Validation messages, in the order the form reports them.
var (
	ErrContactRequired   = errors.New("Basic contact details are required.")
	ErrClosingRequired   = errors.New("Please select at least one sales closing method.")
	ErrBreakdownRequired = errors.New("Please select your biggest appointment setting breakdown.")
	ErrGenRequired       = errors.New("Please select your lead generation sources.")
	ErrInvestRequired    = errors.New("Please indicate your ability to invest.")
)

// LeadForm is the state of the multi-step qualification questionnaire.
type LeadForm struct {
	FullName       string               `json:"fullName"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	PriceRange     PriceRange           `json:"priceRange"`
	ClosingMethods []SalesClosingMethod `json:"closingMethods"`
	Breakdowns     []SettingBreakdown   `json:"breakdowns"`
	LeadCapacity   LeadFlowStatus       `json:"leadCapacity"`
	GenMethods     []LeadGenMethod      `json:"genMethods"`
	CanInvest      string               `json:"canInvest"`
}

// toggle adds item to the selection, or removes it when already selected.
func toggle[T comparable](arr []T, item T) []T {
	for i, v := range arr {
		if v == item {
			return append(arr[:i:i], arr[i+1:]...)
		}
	}
	return append(arr, item)
}

// ToggleClosingMethod flips membership of m in the closing-method selection.
func (f *LeadForm) ToggleClosingMethod(m SalesClosingMethod) {
	f.ClosingMethods = toggle(f.ClosingMethods, m)
}

// ToggleBreakdown flips membership of b in the breakdown selection.
func (f *LeadForm) ToggleBreakdown(b SettingBreakdown) {
	f.Breakdowns = toggle(f.Breakdowns, b)
}

// ToggleGenMethod flips membership of m in the generation-method selection.
func (f *LeadForm) ToggleGenMethod(m LeadGenMethod) {
	f.GenMethods = toggle(f.GenMethods, m)
}

// Validate checks the questionnaire and returns every failure, not just the
// first, so the form can display all problems at once.
func (f *LeadForm) Validate() []error {
	var errs []error
	if f.FullName == "" || f.Email == "" || f.Phone == "" {
		errs = append(errs, ErrContactRequired)
	}
	if len(f.ClosingMethods) == 0 {
		errs = append(errs, ErrClosingRequired)
	}
	if len(f.Breakdowns) == 0 {
		errs = append(errs, ErrBreakdownRequired)
	}
	if len(f.GenMethods) == 0 {
		errs = append(errs, ErrGenRequired)
	}
	if f.CanInvest == "" {
		errs = append(errs, ErrInvestRequired)
	}
	return errs
}

// Build constructs a new lead record from a validated form. The caller chooses
// the ID so uniqueness can be checked against the existing collection.
func (f *LeadForm) Build(id string, now time.Time) LeadRecord {
	return LeadRecord{
		ID:             id,
		Name:           f.FullName,
		Email:          f.Email,
		Phone:          f.Phone,
		Timezone:       DefaultTimezone,
		Price:          f.PriceRange,
		Breakdowns:     append([]SettingBreakdown(nil), f.Breakdowns...),
		Flow:           f.LeadCapacity,
		ClosingMethods: append([]SalesClosingMethod(nil), f.ClosingMethods...),
		Status:         StatusAuditSubmitted,
		AuditAt:        now.UTC().Format(time.RFC3339),
		CanInvest:      f.CanInvest == "Yes",
		Notes:          DefaultNotes,
		Owner:          DefaultOwner,
		GenMethods:     append([]LeadGenMethod(nil), f.GenMethods...),
	}
}

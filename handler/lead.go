package handler

import (
	"errors"
	"net/http"

	"github.com/Eyob-T295/summit-connect/model"
	"github.com/Eyob-T295/summit-connect/service"
	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	leads *service.LeadService
}

func NewLeadHandler(leads *service.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// Submit handles the public intake form submission. Validation failures are
// returned as a complete ordered list so the form can show every problem at
// once.
func (h *LeadHandler) Submit(c *gin.Context) {
	var form model.LeadForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	lead, errs := h.leads.Submit(form)
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// Options returns the enumerated questionnaire choices in display order.
func (h *LeadHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"priceRanges":    model.PriceRangeOptions(),
		"closingMethods": model.ClosingMethodOptions(),
		"breakdowns":     model.BreakdownOptions(),
		"leadFlow":       model.LeadFlowOptions(),
		"genMethods":     model.GenMethodOptions(),
		"statuses":       model.StatusOptions(),
		"investAnswers":  []string{"Yes", "No"},
	})
}

// List returns the full registry, newest first
func (h *LeadHandler) List(c *gin.Context) {
	leads := h.leads.List()
	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"total": len(leads),
	})
}

// Get returns a single lead
func (h *LeadHandler) Get(c *gin.Context) {
	id := c.Param("id")

	lead, ok := h.leads.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

type UpdateLeadRequest struct {
	Status *model.LeadStatus `json:"status"`
	Notes  *string           `json:"notes"`
	Owner  *string           `json:"owner"`
}

// Update edits a lead's status, notes and/or owner. Each write goes through
// the full collection immediately.
func (h *LeadHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Status == nil && req.Notes == nil && req.Owner == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	var lead model.LeadRecord
	var err error

	if req.Status != nil {
		lead, err = h.leads.UpdateStatus(id, *req.Status)
		if h.abortOnUpdateError(c, err) {
			return
		}
	}
	if req.Notes != nil {
		lead, err = h.leads.UpdateNotes(id, *req.Notes)
		if h.abortOnUpdateError(c, err) {
			return
		}
	}
	if req.Owner != nil {
		lead, err = h.leads.AssignOwner(id, *req.Owner)
		if h.abortOnUpdateError(c, err) {
			return
		}
	}

	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) abortOnUpdateError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrLeadNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
	return true
}

// MarkNoShow is the fast-path transition to No Show
func (h *LeadHandler) MarkNoShow(c *gin.Context) {
	id := c.Param("id")

	lead, err := h.leads.MarkNoShow(id)
	if errors.Is(err, service.ErrLeadNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

type ClearRequest struct {
	Confirm bool `json:"confirm"`
}

// Clear empties the whole registry. The destructive step requires an explicit
// confirmation flag in the body.
func (h *LeadHandler) Clear(c *gin.Context) {
	var req ClearRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Confirmation required to clear all lead data"})
		return
	}

	h.leads.ClearAll()

	c.JSON(http.StatusOK, gin.H{"message": "All lead data cleared"})
}

// Stats returns the dashboard summary bar
func (h *LeadHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.leads.Stats())
}

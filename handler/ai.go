package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Eyob-T295/summit-connect/pkg/logger"
	"github.com/Eyob-T295/summit-connect/service"
	"github.com/gin-gonic/gin"
)

// AIService is the upstream generative-AI collaborator.
type AIService interface {
	GenerateOutreach(ctx context.Context, industry, product string) (*service.OutreachStrategy, error)
	AnalyzeLeads(ctx context.Context, leadsJSON string) (*service.LeadAnalysis, error)
}

type AIHandler struct {
	ai AIService
}

func NewAIHandler(ai AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

type OutreachRequest struct {
	Industry string `json:"industry"`
	Product  string `json:"product"`
}

// GenerateOutreach proxies a cold-calling strategy request to the upstream
// model.
func (h *AIHandler) GenerateOutreach(c *gin.Context) {
	var req OutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Industry == "" || req.Product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing industry or product in request body"})
		return
	}

	strategy, err := h.ai.GenerateOutreach(c.Request.Context(), req.Industry, req.Product)
	if err != nil {
		logger.Error(c.Request.Context(), "generate-outreach failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, strategy)
}

type AnalyzeRequest struct {
	// Leads is the JSON-encoded lead collection; the original client sends it
	// as a string, so both a string and a raw array are accepted.
	Leads json.RawMessage `json:"leads"`
}

// AnalyzeLeads proxies a registry analysis request to the upstream model.
func (h *AIHandler) AnalyzeLeads(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Leads) == 0 || string(req.Leads) == "null" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing leads in request body"})
		return
	}

	leadsJSON := string(req.Leads)
	var unquoted string
	if err := json.Unmarshal(req.Leads, &unquoted); err == nil {
		leadsJSON = unquoted
	}
	if leadsJSON == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing leads in request body"})
		return
	}

	analysis, err := h.ai.AnalyzeLeads(c.Request.Context(), leadsJSON)
	if err != nil {
		logger.Error(c.Request.Context(), "analyze-leads failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

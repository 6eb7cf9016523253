package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Eyob-T295/summit-connect/config"
	"google.golang.org/genai"
)

// ErrEmptyResponse indicates the model returned no text.
var ErrEmptyResponse = errors.New("empty response from AI model")

// OutreachStrategy is the structured answer to a cold-calling strategy request.
type OutreachStrategy struct {
	Strategy      string   `json:"strategy"`
	PainPoints    []string `json:"painPoints"`
	ScriptSnippet string   `json:"scriptSnippet"`
}

// LeadAnalysis is the structured answer to a registry analysis request.
type LeadAnalysis struct {
	Summary            string   `json:"summary"`
	CommonPainPoints   []string `json:"commonPainPoints"`
	RevenueOpportunity string   `json:"revenueOpportunity"`
	ActionableSteps    []string `json:"actionableSteps"`
}

// GeminiService talks to the upstream Gemini API. The credential is held
// server-side; its absence is a construction error, not a per-request one.
type GeminiService struct {
	config *config.GeminiConfig
	client *genai.Client
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiService{config: cfg, client: client}, nil
}

func outreachPrompt(industry, product string) string {
	return fmt.Sprintf("Generate a brief, professional cold calling strategy and a high-impact opening script for the following:\nIndustry: %s\nProduct/Service: %s\n\nProvide the response in a structured JSON format with 'strategy', 'painPoints' (array), and 'scriptSnippet' fields.", industry, product)
}

func analysisPrompt(leadsJSON string) string {
	return fmt.Sprintf("You are an expert sales operations consultant. Analyze the following lead data and provide a strategic summary:\nLeads: %s\n\nFormat your response as JSON with:\n- 'summary': A high-level overview of lead quality.\n- 'commonPainPoints': Top 3 patterns found in the breakdowns.\n- 'revenueOpportunity': Estimation of scale potential.\n- 'actionableSteps': 3 specific things the sales team should do this week.", leadsJSON)
}

// GenerateOutreach asks the model for a cold-calling strategy for the given
// industry and product.
func (s *GeminiService) GenerateOutreach(ctx context.Context, industry, product string) (*OutreachStrategy, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"strategy":      {Type: genai.TypeString},
				"painPoints":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"scriptSnippet": {Type: genai.TypeString},
			},
			Required: []string{"strategy", "painPoints", "scriptSnippet"},
		},
	}

	text, err := s.generate(ctx, outreachPrompt(industry, product), cfg)
	if err != nil {
		return nil, err
	}

	var result OutreachStrategy
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	return &result, nil
}

// AnalyzeLeads asks the model for a strategic summary of the serialized lead
// collection.
func (s *GeminiService) AnalyzeLeads(ctx context.Context, leadsJSON string) (*LeadAnalysis, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary":            {Type: genai.TypeString},
				"commonPainPoints":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"revenueOpportunity": {Type: genai.TypeString},
				"actionableSteps":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
		},
	}

	text, err := s.generate(ctx, analysisPrompt(leadsJSON), cfg)
	if err != nil {
		return nil, err
	}

	var result LeadAnalysis
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	return &result, nil
}

func (s *GeminiService) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.config.Model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Package ai isolates the LLM collaborator behind a narrow interface so the
// rest of the system never depends on a specific model vendor. Prompt text
// and response parsing stay inside this package; any failure degrades to a
// hard-coded offline recommendation.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"smartstock/models"
)

// Supported recommendation kinds.
const (
	KindReorderStrategy     = "reorder_strategy"
	KindPricingOptimization = "pricing_optimization"
	KindSeasonalPlanning    = "seasonal_planning"
)

// Generator produces structured recommendations for a kind and context.
type Generator interface {
	Generate(ctx context.Context, kind string, reqContext map[string]interface{}) (*models.Recommendation, error)
}

// GeminiGenerator talks to the Gemini API. A missing API key means every
// call serves the offline fallback.
type GeminiGenerator struct {
	apiKey string
	model  string
}

// NewGeminiGenerator builds a generator for the given API key.
func NewGeminiGenerator(apiKey string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey: apiKey,
		model:  "gemini-1.5-pro",
	}
}

// Generate requests a recommendation from Gemini. Unknown kinds are
// rejected; every other failure path returns the kind's fallback instead of
// an error so callers always get a usable recommendation.
func (g *GeminiGenerator) Generate(ctx context.Context, kind string, reqContext map[string]interface{}) (*models.Recommendation, error) {
	if _, ok := fallbackRecommendations[kind]; !ok {
		return nil, fmt.Errorf("unknown recommendation kind %q", kind)
	}
	if g.apiKey == "" {
		return FallbackRecommendation(kind), nil
	}

	rec, err := g.generate(ctx, kind, reqContext)
	if err != nil {
		log.Printf("AI generation for %s failed, serving fallback: %v", kind, err)
		return FallbackRecommendation(kind), nil
	}
	return rec, nil
}

func (g *GeminiGenerator) generate(ctx context.Context, kind string, reqContext map[string]interface{}) (*models.Recommendation, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	prompt, err := buildPrompt(kind, reqContext)
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendation: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	text := fmt.Sprint(resp.Candidates[0].Content.Parts[0])
	return parseRecommendation(kind, text)
}

var promptSubjects = map[string]string{
	KindReorderStrategy:     "an inventory reorder strategy covering which products to reorder first and in what quantity",
	KindPricingOptimization: "a pricing optimization plan covering markdowns, margin protection and competitor response",
	KindSeasonalPlanning:    "a seasonal demand plan covering stock build-up and promotion timing for the next quarter",
}

func buildPrompt(kind string, reqContext map[string]interface{}) (string, error) {
	contextJSON, err := json.Marshal(reqContext)
	if err != nil {
		return "", fmt.Errorf("failed to serialize context: %w", err)
	}

	return fmt.Sprintf(
		`You are a retail inventory advisor. Based on the data below, produce %s.
Respond with JSON only, in this exact shape:
{"summary": "...", "items": [{"title": "...", "detail": "...", "priority": "high|medium|low"}]}

Data: %s`,
		promptSubjects[kind],
		string(contextJSON),
	), nil
}

// parseRecommendation extracts the structured JSON from the model output,
// tolerating surrounding prose or markdown fences.
func parseRecommendation(kind, text string) (*models.Recommendation, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var parsed struct {
		Summary string                      `json:"summary"`
		Items   []models.RecommendationItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	if parsed.Summary == "" {
		return nil, fmt.Errorf("model response missing summary")
	}

	return &models.Recommendation{
		Kind:    kind,
		Summary: parsed.Summary,
		Items:   parsed.Items,
	}, nil
}

package models

// AIInsightRequest is the body for the AI insights endpoint.
type AIInsightRequest struct {
	Kind    string                 `json:"kind"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// RecommendationItem is a single actionable step inside a recommendation.
type RecommendationItem struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Priority string `json:"priority"`
}

// Recommendation is the structured output of the insights generator.
// IsFallback marks recommendations served from the built-in offline set.
type Recommendation struct {
	Kind       string               `json:"kind"`
	Summary    string               `json:"summary"`
	Items      []RecommendationItem `json:"items"`
	IsFallback bool                 `json:"is_fallback"`
}

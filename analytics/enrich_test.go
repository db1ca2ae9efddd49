package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smartstock/models"
)

func TestStoreStatus(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "excellent"},
		{85, "excellent"},
		{84.9, "good"},
		{70, "good"},
		{69, "warning"},
		{50, "warning"},
		{49.5, "critical"},
		{0, "critical"},
	}
	for _, c := range cases {
		if got := StoreStatus(c.score); got != c.want {
			t.Fatalf("StoreStatus(%v) = %q; want %q", c.score, got, c.want)
		}
	}
}

func TestStockStatus(t *testing.T) {
	cases := []struct {
		current, reorder, max int
		want                  string
	}{
		{40, 80, 400, "critical"},  // at half the reorder point
		{41, 80, 400, "low"},       // above half but under reorder
		{80, 80, 400, "low"},       // exactly at reorder point
		{200, 80, 400, "normal"},   // healthy middle band
		{320, 80, 400, "high"},     // at 80% of max stock
		{100, 0, 400, "normal"},    // no reorder anchor
	}
	for _, c := range cases {
		if got := StockStatus(c.current, c.reorder, c.max); got != c.want {
			t.Fatalf("StockStatus(%d, %d, %d) = %q; want %q", c.current, c.reorder, c.max, got, c.want)
		}
	}
}

func TestConfidenceLevel(t *testing.T) {
	assert.Equal(t, "very_high", ConfidenceLevel(0.95))
	assert.Equal(t, "very_high", ConfidenceLevel(0.9))
	assert.Equal(t, "high", ConfidenceLevel(0.85))
	assert.Equal(t, "medium", ConfidenceLevel(0.7))
	assert.Equal(t, "low", ConfidenceLevel(0.69))
}

func TestActionPriority(t *testing.T) {
	// score = revenue/1_000_000 + confidence*10 + (critical ? 5 : 2.5)
	assert.Equal(t, "immediate", ActionPriority(11_000_000, 0.9, "critical")) // 25
	assert.Equal(t, "immediate", ActionPriority(2_000_000, 0.9, "critical")) // 16 > 15
	assert.Equal(t, "high", ActionPriority(500_000, 0.8, "critical"))       // 13.5
	assert.Equal(t, "medium", ActionPriority(500_000, 0.5, "medium"))       // 8
	assert.Equal(t, "low", ActionPriority(0, 0.2, "low"))                   // 4.5
}

// Increasing revenue impact with confidence and priority held constant must
// never lower the action priority tier.
func TestActionPriorityMonotonicInRevenue(t *testing.T) {
	rank := map[string]int{"low": 0, "medium": 1, "high": 2, "immediate": 3}

	prev := -1
	for revenue := int64(0); revenue <= 25_000_000; revenue += 250_000 {
		tier := ActionPriority(revenue, 0.75, "high")
		if rank[tier] < prev {
			t.Fatalf("tier dropped to %q at revenue %d", tier, revenue)
		}
		prev = rank[tier]
	}
}

func TestUrgencyScore(t *testing.T) {
	// Scenario from the dashboard: a critical alert 45 minutes old.
	// round((max(0,100-45) + 100)/2) = round(155/2) = 78
	assert.Equal(t, 78, UrgencyScore(45, "critical"))

	// Bounds: every combination stays within [0, 100].
	for _, priority := range []string{"critical", "high", "medium", "low"} {
		for age := 0; age <= 100_000; age += 97 {
			score := UrgencyScore(age, priority)
			if score < 0 || score > 100 {
				t.Fatalf("UrgencyScore(%d, %q) = %d out of bounds", age, priority, score)
			}
		}
	}
}

func TestBusinessImpactScore(t *testing.T) {
	assert.InDelta(t, 14.5, BusinessImpactScore(500_000, 45), 0.001) // 10 + 4.5
	assert.Equal(t, 100.0, BusinessImpactScore(50_000_000, 0))      // capped
}

func TestEstimatedResolution(t *testing.T) {
	assert.Equal(t, "2-4 hours", EstimatedResolution("stockout_imminent"))
	assert.Equal(t, "2-5 days", EstimatedResolution("supplier_delay"))
	assert.Equal(t, "unknown", EstimatedResolution("something_else"))
}

func TestEnrichAlert(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	alert := models.Alert{
		Type:                 "stockout_imminent",
		Priority:             "critical",
		CreatedAt:            now.Add(-45 * time.Minute),
		EstimatedLostRevenue: 500_000,
	}
	EnrichAlert(&alert, now)

	assert.Equal(t, 45, alert.AgeMinutes)
	assert.Equal(t, 78, alert.UrgencyScore)
	assert.Equal(t, "2-4 hours", alert.EstimatedResolution)
	assert.InDelta(t, 14.5, alert.BusinessImpactScore, 0.001)

	// A created_at in the future must not yield a negative age.
	future := models.Alert{Priority: "low", CreatedAt: now.Add(10 * time.Minute)}
	EnrichAlert(&future, now)
	assert.Equal(t, 0, future.AgeMinutes)
}

func TestEnrichPrediction(t *testing.T) {
	p := models.Prediction{
		Confidence:           0.93,
		Priority:             "critical",
		EstimatedLostRevenue: 1_850_000,
		ProductForecasts:     []models.ProductForecast{{ProductID: "PRD-1001"}, {ProductID: "PRD-1005"}},
	}
	EnrichPrediction(&p)

	assert.Equal(t, "very_high", p.ConfidenceLevel)
	assert.Equal(t, "immediate", p.ActionPriority) // 1.85 + 9.3 + 5 = 16.15
	if assert.NotNil(t, p.Risk) {
		assert.Equal(t, "high", p.Risk.Level)
		assert.Contains(t, p.Risk.Factors, "critical base priority")
	}
	if assert.NotNil(t, p.Impact) {
		assert.Equal(t, int64(1_850_000), p.Impact.LostRevenue)
		assert.Equal(t, 2, p.Impact.AffectedProducts)
	}
}

func TestJoinCategory(t *testing.T) {
	categories := map[string]models.Category{
		"CAT-01": {ID: "CAT-01", Name: "Electronics", MarginPercentage: 18.5},
	}

	known := models.Product{CategoryID: "CAT-01"}
	JoinCategory(&known, categories)
	assert.Equal(t, "Electronics", known.CategoryName)
	assert.Equal(t, 18.5, known.CategoryMargin)

	unknown := models.Product{CategoryID: "CAT-99"}
	JoinCategory(&unknown, categories)
	assert.Equal(t, "Unknown", unknown.CategoryName)
	assert.Equal(t, 0.0, unknown.CategoryMargin)
}

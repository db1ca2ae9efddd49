package analytics

import (
	"fmt"
	"math"
	"time"

	"smartstock/models"
)

// StoreStatus classifies a health score into a qualitative band.
func StoreStatus(healthScore float64) string {
	switch {
	case healthScore >= 85:
		return "excellent"
	case healthScore >= 70:
		return "good"
	case healthScore >= 50:
		return "warning"
	default:
		return "critical"
	}
}

// StockStatus classifies the current stock level of a product relative to
// its reorder point and maximum stock. A non-positive reorder point cannot
// anchor the comparison and degrades to "normal".
func StockStatus(current, reorderPoint, maxStock int) string {
	if reorderPoint <= 0 {
		return "normal"
	}
	switch {
	case float64(current) <= 0.5*float64(reorderPoint):
		return "critical"
	case current <= reorderPoint:
		return "low"
	case maxStock > 0 && float64(current) >= 0.8*float64(maxStock):
		return "high"
	default:
		return "normal"
	}
}

// ConfidenceLevel buckets a 0.0-1.0 confidence value.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return "very_high"
	case confidence >= 0.8:
		return "high"
	case confidence >= 0.7:
		return "medium"
	default:
		return "low"
	}
}

// ActionPriority computes the urgency tier for a prediction from its revenue
// impact, confidence and base priority:
//
//	score = revenue/1_000_000 + confidence*10 + (critical ? 5 : 2.5)
//	score > 15 → immediate, > 10 → high, > 5 → medium, else low
func ActionPriority(revenueImpact int64, confidence float64, priority string) string {
	criticality := 2.5
	if priority == "critical" {
		criticality = 5
	}
	score := float64(revenueImpact)/1_000_000 + confidence*10 + criticality

	switch {
	case score > 15:
		return "immediate"
	case score > 10:
		return "high"
	case score > 5:
		return "medium"
	default:
		return "low"
	}
}

// priorityWeights feed the urgency score blend.
var priorityWeights = map[string]float64{
	"critical": 100,
	"high":     75,
	"medium":   50,
	"low":      25,
}

// UrgencyScore blends alert age and priority into a 0-100 score:
// round((max(0, 100-ageMinutes) + priorityWeight) / 2).
func UrgencyScore(ageMinutes int, priority string) int {
	freshness := math.Max(0, 100-float64(ageMinutes))
	return int(math.Round((freshness + priorityWeights[priority]) / 2))
}

// BusinessImpactScore estimates how much an unresolved alert costs, capped
// at 100: min(100, revenue/50000 + ageMinutes/10).
func BusinessImpactScore(lostRevenue int64, ageMinutes int) float64 {
	return math.Min(100, float64(lostRevenue)/50000+float64(ageMinutes)/10)
}

// resolutionTimes is a fixed lookup of expected resolution windows per alert type.
var resolutionTimes = map[string]string{
	"stockout_imminent":      "2-4 hours",
	"overstock_alert":        "1-2 days",
	"demand_surge_predicted": "4-8 hours",
	"competitor_price_alert": "1-2 hours",
	"supplier_delay":         "2-5 days",
	"quality_issue":          "1-3 days",
}

// EstimatedResolution returns the expected resolution window for an alert type.
func EstimatedResolution(alertType string) string {
	if window, ok := resolutionTimes[alertType]; ok {
		return window
	}
	return "unknown"
}

// EnrichAlert fills the derived alert fields relative to now.
func EnrichAlert(alert *models.Alert, now time.Time) {
	age := int(now.Sub(alert.CreatedAt).Minutes())
	if age < 0 {
		age = 0
	}
	alert.AgeMinutes = age
	alert.UrgencyScore = UrgencyScore(age, alert.Priority)
	alert.EstimatedResolution = EstimatedResolution(alert.Type)
	alert.BusinessImpactScore = BusinessImpactScore(alert.EstimatedLostRevenue, age)
}

// EnrichPrediction fills the derived prediction fields.
func EnrichPrediction(p *models.Prediction) {
	p.ConfidenceLevel = ConfidenceLevel(p.Confidence)
	p.ActionPriority = ActionPriority(p.EstimatedLostRevenue, p.Confidence, p.Priority)
	p.Risk = assessRisk(p)
	p.Impact = estimateImpact(p)
}

// assessRisk derives a qualitative risk record from confidence and exposure.
func assessRisk(p *models.Prediction) *models.RiskAssessment {
	level := "low"
	switch {
	case p.EstimatedLostRevenue >= 1_000_000 && p.Confidence >= 0.8:
		level = "high"
	case p.EstimatedLostRevenue >= 250_000 || p.Confidence >= 0.8:
		level = "medium"
	}

	factors := []string{fmt.Sprintf("confidence %s", ConfidenceLevel(p.Confidence))}
	if p.Priority == "critical" {
		factors = append(factors, "critical base priority")
	}
	if len(p.ProductForecasts) > 0 {
		factors = append(factors, fmt.Sprintf("%d products affected", len(p.ProductForecasts)))
	}

	return &models.RiskAssessment{Level: level, Factors: factors}
}

// estimateImpact projects the cost of taking no action on the prediction.
func estimateImpact(p *models.Prediction) *models.EstimatedImpact {
	recovery := "1 week"
	switch ActionPriority(p.EstimatedLostRevenue, p.Confidence, p.Priority) {
	case "immediate":
		recovery = "2-3 weeks"
	case "high":
		recovery = "1-2 weeks"
	}
	return &models.EstimatedImpact{
		LostRevenue:      p.EstimatedLostRevenue,
		AffectedProducts: len(p.ProductForecasts),
		RecoveryTime:     recovery,
	}
}

// JoinCategory attaches category name and margin to product, degrading to
// "Unknown"/0 when the category id has no match. A single bad reference must
// never fail a whole listing.
func JoinCategory(product *models.Product, categories map[string]models.Category) {
	if cat, ok := categories[product.CategoryID]; ok {
		product.CategoryName = cat.Name
		product.CategoryMargin = cat.MarginPercentage
		return
	}
	product.CategoryName = "Unknown"
	product.CategoryMargin = 0
}

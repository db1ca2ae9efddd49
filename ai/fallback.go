package ai

import "smartstock/models"

// fallbackRecommendations is the offline set served whenever the model is
// unavailable or returns something unparseable.
var fallbackRecommendations = map[string]models.Recommendation{
	KindReorderStrategy: {
		Kind:    KindReorderStrategy,
		Summary: "Prioritise replenishment of fast movers below their reorder point before expanding slow-moving lines.",
		Items: []models.RecommendationItem{
			{Title: "Reorder critical SKUs", Detail: "Place purchase orders for every product flagged critical, sized to 60% of max stock.", Priority: "high"},
			{Title: "Stagger low-stock orders", Detail: "Batch low-status products into weekly orders to reduce freight cost.", Priority: "medium"},
			{Title: "Review overstock", Detail: "Pause reorders for products above 80% of max stock until turnover recovers.", Priority: "low"},
		},
	},
	KindPricingOptimization: {
		Kind:    KindPricingOptimization,
		Summary: "Protect margin on high performers and clear overstock with targeted markdowns.",
		Items: []models.RecommendationItem{
			{Title: "Hold price on top sellers", Detail: "Products with popularity above 8 sustain current pricing; avoid blanket discounts.", Priority: "high"},
			{Title: "Markdown overstock", Detail: "Apply 10-15% markdowns to high-stock, low-turnover products for two weeks.", Priority: "medium"},
			{Title: "Match competitor alerts", Detail: "Re-price only SKUs named in competitor price alerts, not whole categories.", Priority: "medium"},
		},
	},
	KindSeasonalPlanning: {
		Kind:    KindSeasonalPlanning,
		Summary: "Build stock ahead of peak-season months indicated by seasonal demand multipliers.",
		Items: []models.RecommendationItem{
			{Title: "Pre-build peak stock", Detail: "Raise orders 6 weeks ahead for categories with seasonal factor above 1.2.", Priority: "high"},
			{Title: "Schedule promotions", Detail: "Align promotion windows with months whose demand multiplier exceeds 1.1.", Priority: "medium"},
			{Title: "Plan post-season drawdown", Detail: "Taper final orders so peak categories land near reorder point as multipliers fall.", Priority: "low"},
		},
	},
}

// FallbackRecommendation returns a copy of the offline recommendation for
// kind, flagged as a fallback. Unknown kinds return nil.
func FallbackRecommendation(kind string) *models.Recommendation {
	rec, ok := fallbackRecommendations[kind]
	if !ok {
		return nil
	}
	rec.IsFallback = true
	items := make([]models.RecommendationItem, len(rec.Items))
	copy(items, rec.Items)
	rec.Items = items
	return &rec
}

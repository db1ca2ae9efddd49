package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartstock/models"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{120000000, "₹12.0Cr"},
		{10000000, "₹1.0Cr"},
		{5000000, "₹50.0L"},
		{100000, "₹1.0L"},
		{99999, "₹99,999"},
		{50000, "₹50,000"},
		{1234567, "₹12.3L"},
		{500, "₹500"},
		{0, "₹0"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.amount); got != c.want {
			t.Fatalf("FormatCurrency(%d) = %q; want %q", c.amount, got, c.want)
		}
	}
}

func TestGroupIndian(t *testing.T) {
	// Indian grouping: last three digits, then pairs.
	assert.Equal(t, "1,00,000", groupIndian(100000))
	assert.Equal(t, "12,34,56,789", groupIndian(123456789))
	assert.Equal(t, "999", groupIndian(999))
	assert.Equal(t, "1,000", groupIndian(1000))
}

func TestPerformanceGrade(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "A+"}, {90, "A+"}, {89.9, "A"}, {85, "A"},
		{84, "B+"}, {80, "B+"}, {79, "B"}, {75, "B"},
		{74, "C+"}, {70, "C+"}, {69.9, "C"}, {0, "C"},
	}
	for _, c := range cases {
		if got := PerformanceGrade(c.score); got != c.want {
			t.Fatalf("PerformanceGrade(%v) = %q; want %q", c.score, got, c.want)
		}
	}
}

func TestRegionalComparisonSingleStore(t *testing.T) {
	stores := []models.Store{{
		ID:                "ST-001",
		Region:            "south",
		HealthScore:       88,
		MonthlyRevenue:    50000000,
		StockoutIncidents: 4,
		InventoryTurnover: 9.0,
	}}

	summaries := RegionalComparison(stores)
	if len(summaries) != 1 {
		t.Fatalf("expected 1 region, got %d", len(summaries))
	}

	south := summaries[0]
	assert.Equal(t, "south", south.Region)
	assert.Equal(t, 1, south.StoreCount)
	assert.Equal(t, int64(50000000), south.TotalRevenue)
	assert.Equal(t, 88, south.AvgHealthScore)
	assert.Equal(t, 4, south.TotalStockouts)
	assert.Equal(t, int64(50000000), south.RevenuePerStore)
	assert.Equal(t, "A", south.PerformanceGrade)
}

func TestRegionalComparisonGrouping(t *testing.T) {
	stores := []models.Store{
		{Region: "north", HealthScore: 92, MonthlyRevenue: 10_000_000, StockoutIncidents: 1},
		{Region: "north", HealthScore: 88, MonthlyRevenue: 20_000_000, StockoutIncidents: 2},
		{Region: "east", HealthScore: 60, MonthlyRevenue: 5_000_000, StockoutIncidents: 9},
	}

	summaries := RegionalComparison(stores)
	assert.Len(t, summaries, 2)

	// Sorted by total revenue descending.
	assert.Equal(t, "north", summaries[0].Region)
	assert.Equal(t, 2, summaries[0].StoreCount)
	assert.Equal(t, 90, summaries[0].AvgHealthScore)
	assert.Equal(t, "A+", summaries[0].PerformanceGrade)
	assert.Equal(t, int64(15_000_000), summaries[0].RevenuePerStore)

	assert.Equal(t, "east", summaries[1].Region)
	assert.Equal(t, "C", summaries[1].PerformanceGrade)
}

func TestCategoryDistribution(t *testing.T) {
	products := []models.Product{
		{CategoryID: "CAT-01", CategoryName: "Electronics", Price: 100, CurrentStock: 30},
		{CategoryID: "CAT-02", CategoryName: "Groceries", Price: 10, CurrentStock: 100},
		{CategoryID: "CAT-01", CategoryName: "Electronics", Price: 50, CurrentStock: 20},
	}

	slices := CategoryDistribution(products)
	assert.Len(t, slices, 2)

	// Electronics 4000 of 5000 total.
	assert.Equal(t, "CAT-01", slices[0].CategoryID)
	assert.Equal(t, 4000.0, slices[0].Value)
	assert.Equal(t, 80.0, slices[0].Percentage)
	assert.Equal(t, 20.0, slices[1].Percentage)
}

func TestCategoryDistributionZeroTotal(t *testing.T) {
	products := []models.Product{
		{CategoryID: "CAT-01", CategoryName: "Electronics", Price: 100, CurrentStock: 0},
	}
	slices := CategoryDistribution(products)
	assert.Len(t, slices, 1)
	assert.Equal(t, 0.0, slices[0].Percentage)
}

func TestTurnoverStatus(t *testing.T) {
	assert.Equal(t, "excellent", TurnoverStatus(10.1))
	assert.Equal(t, "good", TurnoverStatus(9))
	assert.Equal(t, "average", TurnoverStatus(7))
	assert.Equal(t, "poor", TurnoverStatus(5))
	assert.Equal(t, "critical", TurnoverStatus(4))
}

func TestTurnoverAnalysis(t *testing.T) {
	products := []models.Product{
		{ID: "PRD-1", Name: "Speaker", TurnoverRate: 10, UnitsSold: 2400, CurrentStock: 100, MaxStock: 300},
		{ID: "PRD-2", Name: "Empty", TurnoverRate: 0, UnitsSold: 0, CurrentStock: 0, MaxStock: 0},
	}

	entries := TurnoverAnalysis(products)
	assert.Len(t, entries, 2)

	// avg inventory (100+300)/2 = 200, calculated = 12, variance +20%.
	assert.Equal(t, 12.0, entries[0].CalculatedTurnover)
	assert.Equal(t, 20.0, entries[0].VariancePercent)
	assert.Equal(t, "good", entries[0].Status)

	assert.Equal(t, 0.0, entries[1].CalculatedTurnover)
	assert.Equal(t, "critical", entries[1].Status)
}

func TestAlertPriorityMatrix(t *testing.T) {
	alerts := []models.Alert{
		{ID: "A1", Priority: "critical", UrgencyScore: 90, BusinessImpactScore: 40},
		{ID: "A2", Priority: "critical", UrgencyScore: 95, BusinessImpactScore: 80},
		{ID: "A3", Priority: "critical", UrgencyScore: 50, BusinessImpactScore: 10},
		{ID: "A4", Priority: "low", UrgencyScore: 30, BusinessImpactScore: 5},
		{ID: "A5", Priority: "whatever", UrgencyScore: 99, BusinessImpactScore: 99},
	}

	matrix := AlertPriorityMatrix(alerts)

	// All eight buckets exist even when empty.
	assert.Len(t, matrix, 8)
	assert.Empty(t, matrix["medium_urgent"])

	urgent := matrix["critical_urgent"]
	if assert.Len(t, urgent, 2) {
		// Sorted descending by business impact.
		assert.Equal(t, "A2", urgent[0].ID)
		assert.Equal(t, "A1", urgent[1].ID)
	}
	assert.Len(t, matrix["critical_normal"], 1)
	assert.Len(t, matrix["low_normal"], 1)
}

func TestCalculateROI(t *testing.T) {
	result := CalculateROI(1_200_000, 100_000)
	assert.Equal(t, 12.0, result.PaybackMonths)
	assert.Equal(t, 100.0, result.AnnualROI)

	// Zero savings never pay back.
	zero := CalculateROI(1_200_000, 0)
	assert.Equal(t, 0.0, zero.PaybackMonths)
	assert.Equal(t, 0.0, zero.AnnualROI)
}

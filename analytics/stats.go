package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"smartstock/models"
)

// Pure view helpers over already-fetched collections. No I/O happens here.

// CategorySlice is one category's share of total inventory value.
type CategorySlice struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// CategoryDistribution allocates inventory value across categories with a
// percentage-of-total share. A zero total yields 0% everywhere.
func CategoryDistribution(products []models.Product) []CategorySlice {
	type bucket struct {
		name  string
		value float64
	}
	buckets := make(map[string]*bucket)
	order := make([]string, 0)
	var total float64

	for _, product := range products {
		value := product.Price * float64(product.CurrentStock)
		total += value
		b, ok := buckets[product.CategoryID]
		if !ok {
			b = &bucket{name: product.CategoryName}
			buckets[product.CategoryID] = b
			order = append(order, product.CategoryID)
		}
		b.value += value
	}

	slices := make([]CategorySlice, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		percentage := 0.0
		if total > 0 {
			percentage = roundTo(b.value/total*100, 1)
		}
		slices = append(slices, CategorySlice{
			CategoryID: id,
			Name:       b.name,
			Value:      roundTo(b.value, 2),
			Percentage: percentage,
		})
	}
	sort.Slice(slices, func(i, j int) bool { return slices[i].Value > slices[j].Value })
	return slices
}

// RegionSummary aggregates the stores of one region.
type RegionSummary struct {
	Region           string  `json:"region"`
	StoreCount       int     `json:"store_count"`
	TotalRevenue     int64   `json:"total_revenue"`
	AvgHealthScore   int     `json:"avg_health_score"`
	TotalStockouts   int     `json:"total_stockouts"`
	RevenuePerStore  int64   `json:"revenue_per_store"`
	PerformanceGrade string  `json:"performance_grade"`
	AvgTurnover      float64 `json:"avg_turnover"`
}

// PerformanceGrade maps an average health score onto a letter grade.
func PerformanceGrade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "B+"
	case score >= 75:
		return "B"
	case score >= 70:
		return "C+"
	default:
		return "C"
	}
}

// RegionalComparison groups stores by region and grades each region by its
// average health score.
func RegionalComparison(stores []models.Store) []RegionSummary {
	grouped := make(map[string][]models.Store)
	order := make([]string, 0)
	for _, store := range stores {
		if _, ok := grouped[store.Region]; !ok {
			order = append(order, store.Region)
		}
		grouped[store.Region] = append(grouped[store.Region], store)
	}

	summaries := make([]RegionSummary, 0, len(order))
	for _, region := range order {
		members := grouped[region]
		summary := RegionSummary{Region: region, StoreCount: len(members)}
		var healthSum, turnoverSum float64
		for _, store := range members {
			summary.TotalRevenue += store.MonthlyRevenue
			summary.TotalStockouts += store.StockoutIncidents
			healthSum += store.HealthScore
			turnoverSum += store.InventoryTurnover
		}
		avgHealth := healthSum / float64(len(members))
		summary.AvgHealthScore = int(math.Round(avgHealth))
		summary.AvgTurnover = roundTo(turnoverSum/float64(len(members)), 2)
		summary.RevenuePerStore = summary.TotalRevenue / int64(len(members))
		summary.PerformanceGrade = PerformanceGrade(avgHealth)
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].TotalRevenue > summaries[j].TotalRevenue })
	return summaries
}

// TurnoverEntry compares a product's reported turnover against the turnover
// implied by its sales volume and average inventory.
type TurnoverEntry struct {
	ProductID          string  `json:"product_id"`
	Name               string  `json:"name"`
	ActualTurnover     float64 `json:"actual_turnover"`
	CalculatedTurnover float64 `json:"calculated_turnover"`
	VariancePercent    float64 `json:"variance_percent"`
	Status             string  `json:"status"`
}

// TurnoverStatus bands a turnover ratio.
func TurnoverStatus(turnover float64) string {
	switch {
	case turnover > 10:
		return "excellent"
	case turnover > 8:
		return "good"
	case turnover > 6:
		return "average"
	case turnover > 4:
		return "poor"
	default:
		return "critical"
	}
}

// TurnoverAnalysis computes per-product turnover entries. Calculated turnover
// is units sold divided by average inventory ((current+max)/2); products with
// no inventory denominator report 0.
func TurnoverAnalysis(products []models.Product) []TurnoverEntry {
	entries := make([]TurnoverEntry, 0, len(products))
	for _, product := range products {
		entry := TurnoverEntry{
			ProductID:      product.ID,
			Name:           product.Name,
			ActualTurnover: product.TurnoverRate,
			Status:         TurnoverStatus(product.TurnoverRate),
		}
		avgInventory := (float64(product.CurrentStock) + float64(product.MaxStock)) / 2
		if avgInventory > 0 {
			entry.CalculatedTurnover = roundTo(float64(product.UnitsSold)/avgInventory, 2)
		}
		if entry.ActualTurnover > 0 {
			entry.VariancePercent = roundTo((entry.CalculatedTurnover-entry.ActualTurnover)/entry.ActualTurnover*100, 1)
		}
		entries = append(entries, entry)
	}
	return entries
}

// PriorityMatrix cross-tabulates alerts by priority and urgency. Keys are
// "{priority}_{urgent|normal}"; urgent means urgency score above 70. Every
// bucket is sorted descending by business impact.
type PriorityMatrix map[string][]models.Alert

// AlertPriorityMatrix builds the 8-bucket matrix over enriched alerts.
func AlertPriorityMatrix(alerts []models.Alert) PriorityMatrix {
	matrix := make(PriorityMatrix, 8)
	for _, priority := range []string{"critical", "high", "medium", "low"} {
		matrix[priority+"_urgent"] = []models.Alert{}
		matrix[priority+"_normal"] = []models.Alert{}
	}

	for _, alert := range alerts {
		tier := "normal"
		if alert.UrgencyScore > 70 {
			tier = "urgent"
		}
		key := alert.Priority + "_" + tier
		if _, ok := matrix[key]; !ok {
			continue // unknown priority value in the fixture
		}
		matrix[key] = append(matrix[key], alert)
	}

	for key := range matrix {
		bucket := matrix[key]
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].BusinessImpactScore > bucket[j].BusinessImpactScore
		})
	}
	return matrix
}

// FormatCurrency renders an amount in the Indian three-tier notation:
// crores at and above 1,00,00,000, lakhs at and above 1,00,000, otherwise a
// grouped integer.
func FormatCurrency(amount int64) string {
	switch {
	case amount >= 10_000_000:
		return fmt.Sprintf("₹%.1fCr", float64(amount)/10_000_000)
	case amount >= 100_000:
		return fmt.Sprintf("₹%.1fL", float64(amount)/100_000)
	default:
		return "₹" + groupIndian(amount)
	}
}

// groupIndian inserts Indian-style digit separators: the last three digits,
// then groups of two.
func groupIndian(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		tail := digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		digits = strings.Join(parts, ",") + "," + tail
	}
	if negative {
		return "-" + digits
	}
	return digits
}

// ROIResult summarises a simple return-on-investment projection.
type ROIResult struct {
	Investment     int64   `json:"investment"`
	MonthlySavings int64   `json:"monthly_savings"`
	PaybackMonths  float64 `json:"payback_months"`
	AnnualROI      float64 `json:"annual_roi_percent"`
}

// CalculateROI projects payback time and annualised return for an
// investment with a fixed monthly saving. Zero savings never pay back.
func CalculateROI(investment, monthlySavings int64) ROIResult {
	result := ROIResult{Investment: investment, MonthlySavings: monthlySavings}
	if investment <= 0 || monthlySavings <= 0 {
		return result
	}
	result.PaybackMonths = roundTo(float64(investment)/float64(monthlySavings), 1)
	result.AnnualROI = roundTo(float64(monthlySavings)*12/float64(investment)*100, 1)
	return result
}

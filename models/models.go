package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- Custom JSON Type for database/sql ---

// JSONB allows storing JSON data in a PostgreSQL jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, &j)
}

// --- JWT & Auth ---

type JwtClaims struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Fixture Entities ---

// Store is a retail location snapshot from the stores fixture.
// Status is derived from HealthScore on enrichment; it never appears in the
// fixture itself.
type Store struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Region            string  `json:"region"` // north/south/east/west
	HealthScore       float64 `json:"health_score"`
	MonthlyRevenue    int64   `json:"monthly_revenue"` // smallest currency unit
	InventoryTurnover float64 `json:"inventory_turnover"`
	StockoutIncidents int     `json:"stockout_incidents"`
	RiskLevel         string  `json:"risk_level"` // low/medium/high
	Manager           string  `json:"manager"`
	Status            string  `json:"status,omitempty"`
}

// Category groups products and carries the margin used for joined products.
type Category struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	MarginPercentage float64 `json:"margin_percentage"`
	SeasonalFactor   float64 `json:"seasonal_factor"`
}

// Product is an inventory item snapshot. CurrentStock and UnitsSold come from
// the fixture; StockStatus, CategoryName and CategoryMargin are derived.
type Product struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	CategoryID      string             `json:"category_id"`
	Price           float64            `json:"price"`
	Cost            float64            `json:"cost"`
	PopularityScore float64            `json:"popularity_score"` // 0-10
	MaxStock        int                `json:"max_stock"`
	ReorderPoint    int                `json:"reorder_point"`
	CurrentStock    int                `json:"current_stock"`
	UnitsSold       int                `json:"units_sold"`
	TurnoverRate    float64            `json:"turnover_rate"`
	SeasonalDemand  map[string]float64 `json:"seasonal_demand,omitempty"`
	StockStatus     string             `json:"stock_status,omitempty"` // critical/low/normal/high
	CategoryName    string             `json:"category_name,omitempty"`
	CategoryMargin  float64            `json:"category_margin,omitempty"`
}

// ProductForecast is one per-product forecast row inside a Prediction.
type ProductForecast struct {
	ProductID        string `json:"product_id"`
	ProductName      string `json:"product_name"`
	PredictedDemand  int    `json:"predicted_demand"`
	CurrentStock     int    `json:"current_stock"`
	RecommendedOrder int    `json:"recommended_order"`
}

// RiskAssessment qualifies how severe a prediction is if ignored.
type RiskAssessment struct {
	Level   string   `json:"level"`
	Factors []string `json:"factors"`
}

// EstimatedImpact projects the cost of inaction on a prediction.
type EstimatedImpact struct {
	LostRevenue      int64  `json:"lost_revenue"`
	AffectedProducts int    `json:"affected_products"`
	RecoveryTime     string `json:"recovery_time"`
}

// Prediction is a forecasted event for one store. ConfidenceLevel,
// ActionPriority, Risk and Impact are derived on enrichment.
type Prediction struct {
	ID                   string            `json:"id"`
	StoreID              string            `json:"store_id"`
	StoreName            string            `json:"store_name"`
	PredictionType       string            `json:"prediction_type"`
	PredictedEvent       string            `json:"predicted_event"`
	Confidence           float64           `json:"confidence"` // 0.0-1.0
	Priority             string            `json:"priority"`   // critical/high/medium/low
	EstimatedLostRevenue int64             `json:"estimated_lost_revenue"`
	ProductForecasts     []ProductForecast `json:"product_forecasts,omitempty"`
	ConfidenceLevel      string            `json:"confidence_level,omitempty"` // very_high/high/medium/low
	ActionPriority       string            `json:"action_priority,omitempty"`  // immediate/high/medium/low
	Risk                 *RiskAssessment   `json:"risk_assessment,omitempty"`
	Impact               *EstimatedImpact  `json:"estimated_impact,omitempty"`
}

// Alert is an operational alert snapshot. AgeMinutes, UrgencyScore,
// EstimatedResolution and BusinessImpactScore are derived on enrichment.
type Alert struct {
	ID                   string    `json:"id"`
	StoreID              string    `json:"store_id"`
	StoreName            string    `json:"store_name"`
	Type                 string    `json:"type"`
	Priority             string    `json:"priority"` // critical/high/medium/low
	CreatedAt            time.Time `json:"created_at"`
	EstimatedLostRevenue int64     `json:"estimated_lost_revenue"`
	AffectedProducts     []string  `json:"affected_products,omitempty"`
	AgeMinutes           int       `json:"age_minutes,omitempty"`
	UrgencyScore         int       `json:"urgency_score,omitempty"`
	EstimatedResolution  string    `json:"estimated_resolution,omitempty"`
	BusinessImpactScore  float64   `json:"business_impact_score,omitempty"`
}

// --- Sales history series ---

type MonthlySales struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
	Units   int    `json:"units"`
}

type DailySales struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
	Units   int    `json:"units"`
}

type RegionalSales struct {
	Region  string `json:"region"`
	Revenue int64  `json:"revenue"`
	Units   int    `json:"units"`
}

// SalesTrend is a descriptive summary attached to sales history responses.
type SalesTrend struct {
	Direction     string  `json:"direction"`
	ChangePercent float64 `json:"change_percent"`
	Description   string  `json:"description"`
}

// SalesForecast is a naive projection attached to sales history responses.
type SalesForecast struct {
	NextMonthRevenue int64  `json:"next_month_revenue"`
	NextMonthUnits   int    `json:"next_month_units"`
	Method           string `json:"method"`
}

package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"smartstock/models"
)

// Service is the data access and derivation layer. It fetches fixture
// documents, caches them with a TTL, enriches them with derived fields and
// serves filtered views plus aggregate metrics. One instance is shared by
// all consumers; concurrent fetches for the same key are coalesced.
type Service struct {
	fetcher   Fetcher
	cache     *Cache
	flight    singleflight.Group
	fallbacks map[string]json.RawMessage
	now       func() time.Time
}

// NewService builds a service around fetcher with the given cache TTL.
func NewService(fetcher Fetcher, ttl time.Duration) *Service {
	return &Service{
		fetcher:   fetcher,
		cache:     NewCache(ttl, nil),
		fallbacks: defaultFallbacks(),
		now:       time.Now,
	}
}

// Meta carries the fetch metadata of a served result.
type Meta struct {
	Endpoint    string    `json:"endpoint"`
	LastUpdated time.Time `json:"last_updated"`
	FromCache   bool      `json:"from_cache"`
	IsFailover  bool      `json:"is_failover"`
	Error       string    `json:"error,omitempty"`
}

func metaOf(doc Document) Meta {
	return Meta{
		Endpoint:    doc.Endpoint,
		LastUpdated: doc.LastUpdated,
		FromCache:   doc.FromCache,
		IsFailover:  doc.IsFailover,
		Error:       doc.Error,
	}
}

// FetchData retrieves the named document, serving from cache inside the TTL
// window. On a failed fetch it returns the registered fallback document
// flagged is_failover; endpoints without a fallback propagate the error.
func (s *Service) FetchData(ctx context.Context, endpoint string, opts map[string]string) (Document, error) {
	key := cacheKey(endpoint, opts)

	if doc, ok := s.cache.Get(key); ok {
		doc.FromCache = true
		return doc, nil
	}

	v, err, _ := s.flight.Do(key, func() (interface{}, error) {
		raw, err := s.fetcher.Fetch(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		if !json.Valid(raw) {
			return nil, fmt.Errorf("fixture %s is not valid JSON", endpoint)
		}
		doc := Document{Endpoint: endpoint, LastUpdated: s.now(), Raw: raw}
		s.cache.Set(key, doc)
		return doc, nil
	})
	if err != nil {
		fallback, ok := s.fallbacks[endpoint]
		if !ok {
			return Document{}, err
		}
		// Fallbacks are never cached so the next call retries upstream.
		return Document{
			Endpoint:    endpoint,
			LastUpdated: s.now(),
			IsFailover:  true,
			Error:       err.Error(),
			Raw:         fallback,
		}, nil
	}
	return v.(Document), nil
}

// --- Stores ---

// StoreFilters are conjunctive: a store must satisfy every supplied filter.
type StoreFilters struct {
	Region         string
	MinHealthScore float64
	RiskLevel      string
}

// StoreMetrics aggregates a filtered store list.
type StoreMetrics struct {
	StoreCount     int            `json:"store_count"`
	AvgHealthScore float64        `json:"avg_health_score"`
	TotalRevenue   int64          `json:"total_revenue"`
	AvgTurnover    float64        `json:"avg_turnover"`
	TotalStockouts int            `json:"total_stockouts"`
	RiskBreakdown  map[string]int `json:"risk_breakdown"`
}

// StoresResult is the enriched stores view served to consumers.
type StoresResult struct {
	Meta    Meta           `json:"meta"`
	Stores  []models.Store `json:"stores"`
	Metrics StoreMetrics   `json:"metrics"`
}

// GetStores returns enriched stores matching every supplied filter, plus
// aggregate metrics over the filtered set.
func (s *Service) GetStores(ctx context.Context, filters StoreFilters) (*StoresResult, error) {
	doc, err := s.FetchData(ctx, EndpointStores, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Stores []models.Store `json:"stores"`
	}
	if err := json.Unmarshal(doc.Raw, &payload); err != nil {
		return nil, fmt.Errorf("decode stores document: %w", err)
	}

	filtered := make([]models.Store, 0, len(payload.Stores))
	for _, store := range payload.Stores {
		store.Status = StoreStatus(store.HealthScore)
		if filters.Region != "" && store.Region != filters.Region {
			continue
		}
		if filters.MinHealthScore > 0 && store.HealthScore < filters.MinHealthScore {
			continue
		}
		if filters.RiskLevel != "" && store.RiskLevel != filters.RiskLevel {
			continue
		}
		filtered = append(filtered, store)
	}

	return &StoresResult{
		Meta:    metaOf(doc),
		Stores:  filtered,
		Metrics: CalculateStoreMetrics(filtered),
	}, nil
}

// CalculateStoreMetrics aggregates health, revenue, turnover, stockouts and
// the risk histogram over a store list.
func CalculateStoreMetrics(stores []models.Store) StoreMetrics {
	metrics := StoreMetrics{
		StoreCount:    len(stores),
		RiskBreakdown: map[string]int{"low": 0, "medium": 0, "high": 0},
	}
	if len(stores) == 0 {
		return metrics
	}

	var healthSum, turnoverSum float64
	for _, store := range stores {
		healthSum += store.HealthScore
		turnoverSum += store.InventoryTurnover
		metrics.TotalRevenue += store.MonthlyRevenue
		metrics.TotalStockouts += store.StockoutIncidents
		metrics.RiskBreakdown[store.RiskLevel]++
	}
	count := float64(len(stores))
	metrics.AvgHealthScore = roundTo(healthSum/count, 1)
	metrics.AvgTurnover = roundTo(turnoverSum/count, 2)
	return metrics
}

// --- Products ---

// ProductFilters are conjunctive, matching the store filter semantics.
type ProductFilters struct {
	CategoryID  string
	StockStatus string
}

// ProductMetrics aggregates a filtered product list.
type ProductMetrics struct {
	ProductCount   int     `json:"product_count"`
	TotalValue     float64 `json:"total_value"`
	AvgMargin      float64 `json:"avg_margin"`
	NeedingReorder int     `json:"needing_reorder"`
	HighPerformers int     `json:"high_performers"`
}

// ProductsResult is the enriched products view served to consumers.
type ProductsResult struct {
	Meta       Meta              `json:"meta"`
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
	Metrics    ProductMetrics    `json:"metrics"`
}

// GetProducts joins products to their categories, derives stock status from
// the fixture's current stock level, filters conjunctively and aggregates.
func (s *Service) GetProducts(ctx context.Context, filters ProductFilters) (*ProductsResult, error) {
	doc, err := s.FetchData(ctx, EndpointProducts, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Products   []models.Product  `json:"products"`
		Categories []models.Category `json:"categories"`
	}
	if err := json.Unmarshal(doc.Raw, &payload); err != nil {
		return nil, fmt.Errorf("decode products document: %w", err)
	}

	categories := make(map[string]models.Category, len(payload.Categories))
	for _, cat := range payload.Categories {
		categories[cat.ID] = cat
	}

	filtered := make([]models.Product, 0, len(payload.Products))
	for _, product := range payload.Products {
		JoinCategory(&product, categories)
		product.StockStatus = StockStatus(product.CurrentStock, product.ReorderPoint, product.MaxStock)
		if filters.CategoryID != "" && product.CategoryID != filters.CategoryID {
			continue
		}
		if filters.StockStatus != "" && product.StockStatus != filters.StockStatus {
			continue
		}
		filtered = append(filtered, product)
	}

	return &ProductsResult{
		Meta:       metaOf(doc),
		Products:   filtered,
		Categories: payload.Categories,
		Metrics:    CalculateProductMetrics(filtered),
	}, nil
}

// CalculateProductMetrics aggregates inventory value, margin and reorder
// pressure over a product list.
func CalculateProductMetrics(products []models.Product) ProductMetrics {
	metrics := ProductMetrics{ProductCount: len(products)}
	if len(products) == 0 {
		return metrics
	}

	var marginSum float64
	for _, product := range products {
		metrics.TotalValue += product.Price * float64(product.CurrentStock)
		if product.Price > 0 {
			marginSum += (product.Price - product.Cost) / product.Price * 100
		}
		if product.StockStatus == "critical" || product.StockStatus == "low" {
			metrics.NeedingReorder++
		}
		if product.PopularityScore >= 8 {
			metrics.HighPerformers++
		}
	}
	metrics.TotalValue = roundTo(metrics.TotalValue, 2)
	metrics.AvgMargin = roundTo(marginSum/float64(len(products)), 1)
	return metrics
}

// --- Sales history ---

// SalesHistoryResult passes through the fixture series and attaches the
// trend/forecast summaries. The summaries are illustrative placeholders, not
// data-driven models.
type SalesHistoryResult struct {
	Meta     Meta                   `json:"meta"`
	Period   string                 `json:"period"`
	Monthly  []models.MonthlySales  `json:"monthly"`
	Daily    []models.DailySales    `json:"daily"`
	Regional []models.RegionalSales `json:"regional"`
	Trend    models.SalesTrend      `json:"trend"`
	Forecast models.SalesForecast   `json:"forecast"`
}

// GetSalesHistory returns the sales series for the requested period plus a
// trend descriptor and a naive next-month projection.
func (s *Service) GetSalesHistory(ctx context.Context, period string) (*SalesHistoryResult, error) {
	doc, err := s.FetchData(ctx, EndpointSalesHistory, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Monthly  []models.MonthlySales  `json:"monthly"`
		Daily    []models.DailySales    `json:"daily"`
		Regional []models.RegionalSales `json:"regional"`
	}
	if err := json.Unmarshal(doc.Raw, &payload); err != nil {
		return nil, fmt.Errorf("decode sales history document: %w", err)
	}

	if period == "" {
		period = "monthly"
	}

	result := &SalesHistoryResult{
		Meta:     metaOf(doc),
		Period:   period,
		Monthly:  payload.Monthly,
		Daily:    payload.Daily,
		Regional: payload.Regional,
		Trend: models.SalesTrend{
			Direction:     "upward",
			ChangePercent: 12.5,
			Description:   "Steady growth across the trailing two quarters",
		},
	}

	forecast := models.SalesForecast{Method: "naive"}
	if len(payload.Monthly) > 0 {
		last := payload.Monthly[len(payload.Monthly)-1]
		forecast.NextMonthRevenue = int64(float64(last.Revenue) * 1.08)
		forecast.NextMonthUnits = int(float64(last.Units) * 1.05)
	}
	result.Forecast = forecast

	return result, nil
}

// --- Predictions ---

// PredictionsResult is the enriched predictions view served to consumers.
type PredictionsResult struct {
	Meta        Meta                `json:"meta"`
	Predictions []models.Prediction `json:"predictions"`
}

// GetPredictions returns enriched predictions, optionally for one store.
func (s *Service) GetPredictions(ctx context.Context, storeID string) (*PredictionsResult, error) {
	doc, err := s.FetchData(ctx, EndpointPredictions, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Predictions []models.Prediction `json:"predictions"`
	}
	if err := json.Unmarshal(doc.Raw, &payload); err != nil {
		return nil, fmt.Errorf("decode predictions document: %w", err)
	}

	filtered := make([]models.Prediction, 0, len(payload.Predictions))
	for _, prediction := range payload.Predictions {
		if storeID != "" && prediction.StoreID != storeID {
			continue
		}
		EnrichPrediction(&prediction)
		filtered = append(filtered, prediction)
	}

	return &PredictionsResult{Meta: metaOf(doc), Predictions: filtered}, nil
}

// --- Alerts ---

// AlertsResult is the enriched alerts view served to consumers.
type AlertsResult struct {
	Meta   Meta           `json:"meta"`
	Alerts []models.Alert `json:"alerts"`
}

// GetAlerts returns enriched alerts for one priority tier, or the union of
// critical and high when no priority is supplied.
func (s *Service) GetAlerts(ctx context.Context, priority string) (*AlertsResult, error) {
	doc, err := s.FetchData(ctx, EndpointAlerts, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Alerts []models.Alert `json:"alerts"`
	}
	if err := json.Unmarshal(doc.Raw, &payload); err != nil {
		return nil, fmt.Errorf("decode alerts document: %w", err)
	}

	now := s.now()
	filtered := make([]models.Alert, 0, len(payload.Alerts))
	for _, alert := range payload.Alerts {
		if priority != "" {
			if alert.Priority != priority {
				continue
			}
		} else if alert.Priority != "critical" && alert.Priority != "high" {
			continue
		}
		EnrichAlert(&alert, now)
		filtered = append(filtered, alert)
	}

	return &AlertsResult{Meta: metaOf(doc), Alerts: filtered}, nil
}

// --- Dashboard ---

// DashboardResult joins all five resources into one overview. Per-resource
// failover is surfaced through each result's meta, never fatal to the join.
type DashboardResult struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Stores      *StoresResult       `json:"stores"`
	Products    *ProductsResult     `json:"products"`
	Sales       *SalesHistoryResult `json:"sales"`
	Predictions *PredictionsResult  `json:"predictions"`
	Alerts      *AlertsResult       `json:"alerts"`
}

// GetDashboard fans out the five independent fetches concurrently and joins
// them once all have settled.
func (s *Service) GetDashboard(ctx context.Context) (*DashboardResult, error) {
	result := &DashboardResult{GeneratedAt: s.now()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Stores, err = s.GetStores(ctx, StoreFilters{})
		return err
	})
	g.Go(func() (err error) {
		result.Products, err = s.GetProducts(ctx, ProductFilters{})
		return err
	})
	g.Go(func() (err error) {
		result.Sales, err = s.GetSalesHistory(ctx, "monthly")
		return err
	})
	g.Go(func() (err error) {
		result.Predictions, err = s.GetPredictions(ctx, "")
		return err
	})
	g.Go(func() (err error) {
		result.Alerts, err = s.GetAlerts(ctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

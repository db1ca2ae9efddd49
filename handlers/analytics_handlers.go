package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"smartstock/analytics"
	"smartstock/models"
)

// loadFailed is the terminal error surface for analytics reads: the caller
// may retry, there is no partial-success state.
func loadFailed(c *fiber.Ctx, resource string, err error) error {
	log.Printf("Error loading %s: %v", resource, err)
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"status":    "error",
		"message":   "Failed to load " + resource,
		"retryable": true,
	})
}

// HandleGetStores returns the filtered store list with aggregate metrics.
// GET /api/v1/analytics/stores?region=&min_health=&risk_level=
func HandleGetStores(c *fiber.Ctx) error {
	filters := analytics.StoreFilters{
		Region:    c.Query("region"),
		RiskLevel: c.Query("risk_level"),
	}
	if raw := c.Query("min_health"); raw != "" {
		minHealth, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "min_health must be a number"})
		}
		filters.MinHealthScore = minHealth
	}

	result, err := Analytics.GetStores(c.Context(), filters)
	if err != nil {
		return loadFailed(c, "stores", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": result})
}

// HandleGetProducts returns the enriched product list with category join.
// GET /api/v1/analytics/products?category_id=&stock_status=
func HandleGetProducts(c *fiber.Ctx) error {
	result, err := Analytics.GetProducts(c.Context(), analytics.ProductFilters{
		CategoryID:  c.Query("category_id"),
		StockStatus: c.Query("stock_status"),
	})
	if err != nil {
		return loadFailed(c, "products", err)
	}
	return c.JSON(fiber.Map{
		"status":       "success",
		"data":         result,
		"distribution": analytics.CategoryDistribution(result.Products),
	})
}

// HandleGetSalesHistory returns the sales series plus trend and forecast.
// GET /api/v1/analytics/sales-history?period=
func HandleGetSalesHistory(c *fiber.Ctx) error {
	result, err := Analytics.GetSalesHistory(c.Context(), c.Query("period"))
	if err != nil {
		return loadFailed(c, "sales history", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": result})
}

// HandleGetPredictions returns enriched predictions, optionally per store.
// GET /api/v1/analytics/predictions?store_id=
func HandleGetPredictions(c *fiber.Ctx) error {
	result, err := Analytics.GetPredictions(c.Context(), c.Query("store_id"))
	if err != nil {
		return loadFailed(c, "predictions", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": result})
}

// HandleGetAlerts returns enriched alerts for a priority tier.
// GET /api/v1/analytics/alerts?priority=
func HandleGetAlerts(c *fiber.Ctx) error {
	result, err := Analytics.GetAlerts(c.Context(), c.Query("priority"))
	if err != nil {
		return loadFailed(c, "alerts", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": result})
}

// HandleGetDashboard joins all five resources into one overview.
// GET /api/v1/analytics/dashboard
func HandleGetDashboard(c *fiber.Ctx) error {
	result, err := Analytics.GetDashboard(c.Context())
	if err != nil {
		return loadFailed(c, "dashboard", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": result})
}

// HandleGetRegionalComparison groups stores by region with a letter grade.
// GET /api/v1/analytics/regional-comparison
func HandleGetRegionalComparison(c *fiber.Ctx) error {
	stores, err := Analytics.GetStores(c.Context(), analytics.StoreFilters{})
	if err != nil {
		return loadFailed(c, "stores", err)
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"meta":    stores.Meta,
			"regions": analytics.RegionalComparison(stores.Stores),
		},
	})
}

// HandleGetAlertMatrix cross-tabulates alerts by priority and urgency.
// GET /api/v1/analytics/alert-matrix
func HandleGetAlertMatrix(c *fiber.Ctx) error {
	// The matrix spans all four tiers, so fetch each priority explicitly
	// rather than the default critical+high union.
	var meta analytics.Meta
	var all []models.Alert
	for i, priority := range []string{"critical", "high", "medium", "low"} {
		result, err := Analytics.GetAlerts(c.Context(), priority)
		if err != nil {
			return loadFailed(c, "alerts", err)
		}
		if i == 0 {
			meta = result.Meta
		}
		all = append(all, result.Alerts...)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"meta": meta, "matrix": analytics.AlertPriorityMatrix(all)},
	})
}

// HandleGetTurnover returns the per-product turnover analysis.
// GET /api/v1/analytics/turnover
func HandleGetTurnover(c *fiber.Ctx) error {
	products, err := Analytics.GetProducts(c.Context(), analytics.ProductFilters{})
	if err != nil {
		return loadFailed(c, "products", err)
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"meta":     products.Meta,
			"turnover": analytics.TurnoverAnalysis(products.Products),
		},
	})
}

// HandleCalculateROI projects payback for an investment scenario.
// GET /api/v1/analytics/roi?investment=&monthly_savings=
func HandleCalculateROI(c *fiber.Ctx) error {
	investment, err := strconv.ParseInt(c.Query("investment"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "investment must be an integer"})
	}
	savings, err := strconv.ParseInt(c.Query("monthly_savings"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "monthly_savings must be an integer"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": analytics.CalculateROI(investment, savings)})
}

package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"smartstock/database"
	"smartstock/models"
	"smartstock/utils"
)

// HandleListPricing lists pricing records, newest first.
// GET /api/v1/pricing?page=&page_size=
func HandleListPricing(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 10)

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM pricing_records`).Scan(&total); err != nil {
		log.Printf("Error counting pricing records: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	pagination := utils.CreatePagination(total, page, pageSize)

	rows, err := db.Query(ctx, `
		SELECT id, product_name, base_price, discount_percent, effective_price, currency, attributes, created_at
		FROM pricing_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, pagination.PageSize, pagination.Offset())
	if err != nil {
		log.Printf("Error querying pricing records: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	defer rows.Close()

	records := []models.PricingRecord{}
	for rows.Next() {
		var record models.PricingRecord
		if err := rows.Scan(&record.ID, &record.ProductName, &record.BasePrice, &record.DiscountPercent,
			&record.EffectivePrice, &record.Currency, &record.Attributes, &record.CreatedAt); err != nil {
			log.Printf("Error scanning pricing record: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
		}
		records = append(records, record)
	}

	return c.JSON(fiber.Map{"status": "success", "data": records, "pagination": pagination})
}

// HandleCreatePricing creates a pricing record. The effective price is
// computed server-side from the base price and discount.
// POST /api/v1/pricing
func HandleCreatePricing(c *fiber.Ctx) error {
	var req models.CreatePricingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	if req.BasePrice.IsNegative() || req.DiscountPercent.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "base_price and discount_percent must be non-negative"})
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	hundred := decimal.NewFromInt(100)
	effective := req.BasePrice.Mul(hundred.Sub(req.DiscountPercent)).Div(hundred).Round(2)

	record := models.PricingRecord{
		ID:              uuid.NewString(),
		ProductName:     req.ProductName,
		BasePrice:       req.BasePrice,
		DiscountPercent: req.DiscountPercent,
		EffectivePrice:  effective,
		Currency:        currency,
		Attributes:      req.Attributes,
	}

	err := database.GetDB().QueryRow(context.Background(), `
		INSERT INTO pricing_records (id, product_name, base_price, discount_percent, effective_price, currency, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		record.ID, record.ProductName, record.BasePrice, record.DiscountPercent,
		record.EffectivePrice, record.Currency, record.Attributes,
	).Scan(&record.CreatedAt)
	if err != nil {
		log.Printf("Error creating pricing record: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": record})
}

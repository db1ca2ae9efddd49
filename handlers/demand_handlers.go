package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartstock/database"
	"smartstock/models"
	"smartstock/utils"
)

// HandleListDemand lists demand records, newest first.
// GET /api/v1/demand?page=&page_size=
func HandleListDemand(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 10)

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM demand_records`).Scan(&total); err != nil {
		log.Printf("Error counting demand records: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	pagination := utils.CreatePagination(total, page, pageSize)

	rows, err := db.Query(ctx, `
		SELECT id, product_name, store_id, period, forecast_units, actual_units, attributes, created_at
		FROM demand_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, pagination.PageSize, pagination.Offset())
	if err != nil {
		log.Printf("Error querying demand records: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	defer rows.Close()

	records := []models.DemandRecord{}
	for rows.Next() {
		var record models.DemandRecord
		if err := rows.Scan(&record.ID, &record.ProductName, &record.StoreID, &record.Period,
			&record.ForecastUnits, &record.ActualUnits, &record.Attributes, &record.CreatedAt); err != nil {
			log.Printf("Error scanning demand record: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
		}
		records = append(records, record)
	}

	return c.JSON(fiber.Map{"status": "success", "data": records, "pagination": pagination})
}

// HandleCreateDemand creates a demand record.
// POST /api/v1/demand
func HandleCreateDemand(c *fiber.Ctx) error {
	var req models.CreateDemandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	record := models.DemandRecord{
		ID:            uuid.NewString(),
		ProductName:   req.ProductName,
		StoreID:       req.StoreID,
		Period:        req.Period,
		ForecastUnits: req.ForecastUnits,
		ActualUnits:   req.ActualUnits,
		Attributes:    req.Attributes,
	}

	err := database.GetDB().QueryRow(context.Background(), `
		INSERT INTO demand_records (id, product_name, store_id, period, forecast_units, actual_units, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		record.ID, record.ProductName, record.StoreID, record.Period,
		record.ForecastUnits, record.ActualUnits, record.Attributes,
	).Scan(&record.CreatedAt)
	if err != nil {
		log.Printf("Error creating demand record: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": record})
}

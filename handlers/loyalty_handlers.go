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

// HandleListLoyalty lists loyalty records, newest first.
// GET /api/v1/loyalty?page=&page_size=
func HandleListLoyalty(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 10)

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM loyalty_records`).Scan(&total); err != nil {
		log.Printf("Error counting loyalty records: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	pagination := utils.CreatePagination(total, page, pageSize)

	rows, err := db.Query(ctx, `
		SELECT id, customer_name, tier, points, attributes, created_at
		FROM loyalty_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, pagination.PageSize, pagination.Offset())
	if err != nil {
		log.Printf("Error querying loyalty records: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	defer rows.Close()

	records := []models.LoyaltyRecord{}
	for rows.Next() {
		var record models.LoyaltyRecord
		if err := rows.Scan(&record.ID, &record.CustomerName, &record.Tier,
			&record.Points, &record.Attributes, &record.CreatedAt); err != nil {
			log.Printf("Error scanning loyalty record: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
		}
		records = append(records, record)
	}

	return c.JSON(fiber.Map{"status": "success", "data": records, "pagination": pagination})
}

// HandleCreateLoyalty creates a loyalty record.
// POST /api/v1/loyalty
func HandleCreateLoyalty(c *fiber.Ctx) error {
	var req models.CreateLoyaltyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	record := models.LoyaltyRecord{
		ID:           uuid.NewString(),
		CustomerName: req.CustomerName,
		Tier:         req.Tier,
		Points:       req.Points,
		Attributes:   req.Attributes,
	}

	err := database.GetDB().QueryRow(context.Background(), `
		INSERT INTO loyalty_records (id, customer_name, tier, points, attributes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		record.ID, record.CustomerName, record.Tier, record.Points, record.Attributes,
	).Scan(&record.CreatedAt)
	if err != nil {
		log.Printf("Error creating loyalty record: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": record})
}

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

// HandleListSuppliers lists suppliers, newest first.
// GET /api/v1/supplier?page=&page_size=
func HandleListSuppliers(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 10)

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&total); err != nil {
		log.Printf("Error counting suppliers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	pagination := utils.CreatePagination(total, page, pageSize)

	rows, err := db.Query(ctx, `
		SELECT id, name, contact_name, contact_email, contact_phone, address, notes, created_at
		FROM suppliers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, pagination.PageSize, pagination.Offset())
	if err != nil {
		log.Printf("Error querying suppliers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	for rows.Next() {
		var supplier models.Supplier
		if err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.ContactName, &supplier.ContactEmail,
			&supplier.ContactPhone, &supplier.Address, &supplier.Notes, &supplier.CreatedAt); err != nil {
			log.Printf("Error scanning supplier row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
		}
		suppliers = append(suppliers, supplier)
	}

	return c.JSON(fiber.Map{"status": "success", "data": suppliers, "pagination": pagination})
}

// HandleCreateSupplier creates a supplier.
// POST /api/v1/supplier
func HandleCreateSupplier(c *fiber.Ctx) error {
	var req models.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	supplier := models.Supplier{
		ID:           uuid.NewString(),
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		Notes:        req.Notes,
	}

	err := database.GetDB().QueryRow(context.Background(), `
		INSERT INTO suppliers (id, name, contact_name, contact_email, contact_phone, address, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		supplier.ID, supplier.Name, supplier.ContactName, supplier.ContactEmail,
		supplier.ContactPhone, supplier.Address, supplier.Notes,
	).Scan(&supplier.CreatedAt)
	if err != nil {
		log.Printf("Error creating supplier: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": supplier})
}

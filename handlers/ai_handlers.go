package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"smartstock/models"
)

// HandleGenerateInsight produces a structured recommendation for a kind and
// caller-supplied context.
// POST /api/v1/ai/insights
func HandleGenerateInsight(c *fiber.Ctx) error {
	var req models.AIInsightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.Kind == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "kind is required"})
	}

	rec, err := Insights.Generate(c.Context(), req.Kind, req.Context)
	if err != nil {
		log.Printf("Rejecting insight request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "success", "data": rec})
}

package handlers

import (
	"github.com/go-playground/validator/v10"

	"smartstock/ai"
	"smartstock/analytics"
)

// Shared collaborators for the handler package, wired once from main so
// handler signatures stay plain fiber.Handler.
var (
	Analytics *analytics.Service
	Insights  ai.Generator
	validate  = validator.New()
)

// Init wires the handler package's collaborators.
func Init(service *analytics.Service, generator ai.Generator) {
	Analytics = service
	Insights = generator
}

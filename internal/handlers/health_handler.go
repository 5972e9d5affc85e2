package handlers

import (
	"time"

	"github.com/ansdud923/fairytale-app/internal/database"
	"github.com/ansdud923/fairytale-app/internal/dto"
	"github.com/ansdud923/fairytale-app/internal/services"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	lullabyService *services.LullabyService
}

func NewHealthHandler(lullabyService *services.LullabyService) *HealthHandler {
	return &HealthHandler{lullabyService: lullabyService}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	pythonStatus := "ok"
	if !h.lullabyService.IsHealthy() {
		pythonStatus = "unreachable"
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		PythonAPI: pythonStatus,
	})
}

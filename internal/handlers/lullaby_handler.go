package handlers

import (
	"github.com/ansdud923/fairytale-app/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LullabyHandler struct {
	lullabyService *services.LullabyService
}

func NewLullabyHandler(lullabyService *services.LullabyService) *LullabyHandler {
	return &LullabyHandler{lullabyService: lullabyService}
}

// SearchMusic handles GET /lullaby/music?theme=. The adapter is fail-soft,
// so this always answers 200 with a possibly empty array.
func (h *LullabyHandler) SearchMusic(c *fiber.Ctx) error {
	theme := c.Query("theme")
	if theme == "" {
		return badRequest(c, "theme query parameter is required")
	}

	return c.JSON(h.lullabyService.SearchMusicByTheme(theme))
}

// SearchVideos handles GET /lullaby/video?theme=.
func (h *LullabyHandler) SearchVideos(c *fiber.Ctx) error {
	theme := c.Query("theme")
	if theme == "" {
		return badRequest(c, "theme query parameter is required")
	}

	return c.JSON(h.lullabyService.SearchVideosByTheme(theme))
}

// Health handles GET /lullaby/health.
func (h *LullabyHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"healthy": h.lullabyService.IsHealthy()})
}

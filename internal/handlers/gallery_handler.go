package handlers

import (
	"errors"

	"github.com/ansdud923/fairytale-app/internal/dto"
	"github.com/ansdud923/fairytale-app/internal/middleware"
	"github.com/ansdud923/fairytale-app/internal/services"
	"github.com/gofiber/fiber/v2"
)

type GalleryHandler struct {
	galleryService *services.GalleryService
}

func NewGalleryHandler(galleryService *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// GetUserGalleryImages handles GET /gallery/images.
func (h *GalleryHandler) GetUserGalleryImages(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	images, err := h.galleryService.GetUserGalleryImages(username)
	if err != nil {
		return notFoundOrInternal(c, err, "Failed to fetch gallery images")
	}

	return c.JSON(images)
}

// GetStoryGalleryImage handles GET /gallery/images/:storyId.
func (h *GalleryHandler) GetStoryGalleryImage(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	storyID, err := c.ParamsInt("storyId")
	if err != nil || storyID < 1 {
		return badRequest(c, "Invalid story ID")
	}

	image, err := h.galleryService.GetStoryGalleryImage(uint(storyID), username)
	if err != nil {
		return notFoundOrInternal(c, err, "Failed to fetch gallery image")
	}

	return c.JSON(image)
}

// UpdateColoringImage handles POST /gallery/coloring/:storyId.
func (h *GalleryHandler) UpdateColoringImage(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	storyID, err := c.ParamsInt("storyId")
	if err != nil || storyID < 1 {
		return badRequest(c, "Invalid story ID")
	}

	var req dto.ColoringImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, "coloringImageUrl must be a valid URL")
	}

	image, err := h.galleryService.UpdateColoringImage(uint(storyID), req.ColoringImageURL, username)
	if err != nil {
		return notFoundOrInternal(c, err, "Failed to update coloring image")
	}

	return c.JSON(image)
}

// DeleteGalleryImage handles DELETE /gallery/images/:storyId.
func (h *GalleryHandler) DeleteGalleryImage(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	storyID, err := c.ParamsInt("storyId")
	if err != nil || storyID < 1 {
		return badRequest(c, "Invalid story ID")
	}

	deleted, err := h.galleryService.DeleteGalleryImage(uint(storyID), username)
	if err != nil {
		return notFoundOrInternal(c, err, "Failed to delete gallery image")
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No gallery image to delete",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Gallery image deleted"})
}

// GetGalleryStats handles GET /gallery/stats.
func (h *GalleryHandler) GetGalleryStats(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := h.galleryService.GetGalleryStats(username)
	if err != nil {
		return notFoundOrInternal(c, err, "Failed to fetch gallery stats")
	}

	return c.JSON(stats)
}

// notFoundOrInternal maps the gallery/story taxonomy: unresolved users, missing
// stories, and foreign stories all read as 404.
func notFoundOrInternal(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, services.ErrUserNotFound) ||
		errors.Is(err, services.ErrStoryNotFound) ||
		errors.Is(err, services.ErrGalleryNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

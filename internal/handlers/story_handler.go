package handlers

import (
	"github.com/ansdud923/fairytale-app/internal/dto"
	"github.com/ansdud923/fairytale-app/internal/middleware"
	"github.com/ansdud923/fairytale-app/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StoryHandler struct {
	storyService *services.StoryService
}

func NewStoryHandler(storyService *services.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

// CreateStory handles POST /stories.
func (h *StoryHandler) CreateStory(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	story, err := h.storyService.CreateStory(username, &req)
	if err != nil {
		return notFoundOrInternal(c, err, "Failed to create story")
	}

	return c.Status(fiber.StatusCreated).JSON(story)
}

// GetMyStories handles GET /stories.
func (h *StoryHandler) GetMyStories(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	stories, err := h.storyService.GetUserStories(username)
	if err != nil {
		return notFoundOrInternal(c, err, "Failed to fetch stories")
	}

	return c.JSON(stories)
}

// GetStory handles GET /stories/:storyId.
func (h *StoryHandler) GetStory(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	storyID, err := c.ParamsInt("storyId")
	if err != nil || storyID < 1 {
		return badRequest(c, "Invalid story ID")
	}

	story, err := h.storyService.GetStory(uint(storyID), username)
	if err != nil {
		return notFoundOrInternal(c, err, "Failed to fetch story")
	}

	return c.JSON(story)
}

// DeleteStory handles DELETE /stories/:storyId.
func (h *StoryHandler) DeleteStory(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	storyID, err := c.ParamsInt("storyId")
	if err != nil || storyID < 1 {
		return badRequest(c, "Invalid story ID")
	}

	if err := h.storyService.DeleteStory(uint(storyID), username); err != nil {
		return notFoundOrInternal(c, err, "Failed to delete story")
	}

	return c.JSON(dto.MessageResponse{Message: "Story deleted"})
}

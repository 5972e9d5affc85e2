package handlers

import (
	"errors"

	"github.com/ansdud923/fairytale-app/internal/dto"
	"github.com/ansdud923/fairytale-app/internal/middleware"
	"github.com/ansdud923/fairytale-app/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ShareHandler struct {
	shareService *services.ShareService
}

func NewShareHandler(shareService *services.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// ShareFromStory handles POST /share/story/:storyId.
func (h *ShareHandler) ShareFromStory(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	storyID, err := c.ParamsInt("storyId")
	if err != nil || storyID < 1 {
		return badRequest(c, "Invalid story ID")
	}

	post, err := h.shareService.ShareFromStory(uint(storyID), username)
	if err != nil {
		if errors.Is(err, services.ErrNoShareMedia) {
			return badRequest(c, err.Error())
		}
		return shareError(c, err, "Failed to share story")
	}

	return c.JSON(post)
}

// ShareFromGallery handles POST /share/gallery/:galleryId.
func (h *ShareHandler) ShareFromGallery(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	galleryID, err := c.ParamsInt("galleryId")
	if err != nil || galleryID < 1 {
		return badRequest(c, "Invalid gallery ID")
	}

	post, err := h.shareService.ShareFromGallery(uint(galleryID), username)
	if err != nil {
		return shareError(c, err, "Failed to share gallery image")
	}

	return c.JSON(post)
}

// GetAllSharePosts handles GET /share/posts. Auth is optional; anonymous
// viewers get the feed with every liked-by-me flag false.
func (h *ShareHandler) GetAllSharePosts(c *fiber.Ctx) error {
	viewer := middleware.ViewerUsername(c)

	posts, err := h.shareService.GetAllSharePosts(viewer)
	if err != nil {
		return shareError(c, err, "Failed to fetch share posts")
	}

	return c.JSON(posts)
}

// GetMySharePosts handles GET /share/my-posts.
func (h *ShareHandler) GetMySharePosts(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	posts, err := h.shareService.GetUserSharePosts(username)
	if err != nil {
		return shareError(c, err, "Failed to fetch share posts")
	}

	return c.JSON(posts)
}

// DeleteSharePost handles DELETE /share/posts/:postId. A post owned by
// someone else returns 403, unlike the gallery endpoints.
func (h *ShareHandler) DeleteSharePost(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := c.ParamsInt("postId")
	if err != nil || postID < 1 {
		return badRequest(c, "Invalid post ID")
	}

	if err := h.shareService.DeleteSharePost(uint(postID), username); err != nil {
		if errors.Is(err, services.ErrNotPostOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "You can only delete your own posts",
			})
		}
		return shareError(c, err, "Failed to delete share post")
	}

	return c.JSON(dto.MessageResponse{Message: "Post deleted"})
}

// ToggleLike handles POST /share/posts/:postId/like.
func (h *ShareHandler) ToggleLike(c *fiber.Ctx) error {
	username, err := middleware.CurrentUsername(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := c.ParamsInt("postId")
	if err != nil || postID < 1 {
		return badRequest(c, "Invalid post ID")
	}

	post, err := h.shareService.ToggleLike(uint(postID), username)
	if err != nil {
		return shareError(c, err, "Failed to toggle like")
	}

	return c.JSON(post)
}

func shareError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, services.ErrUserNotFound) ||
		errors.Is(err, services.ErrStoryNotFound) ||
		errors.Is(err, services.ErrGalleryNotFound) ||
		errors.Is(err, services.ErrPostNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

package routes

import (
	"time"

	"github.com/ansdud923/fairytale-app/internal/config"
	"github.com/ansdud923/fairytale-app/internal/handlers"
	"github.com/ansdud923/fairytale-app/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	storyHandler *handlers.StoryHandler,
	galleryHandler *handlers.GalleryHandler,
	shareHandler *handlers.ShareHandler,
	lullabyHandler *handlers.LullabyHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/social", authHandler.SocialLogin)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Share feed listing is public; the viewer identity is picked up when a
	// token is supplied so liked-by-me can be computed.
	api.Get("/share/posts", middleware.OptionalAuth(cfg), shareHandler.GetAllSharePosts)

	protected := api.Group("", middleware.JWTProtected(cfg))

	stories := protected.Group("/stories")
	stories.Post("/", storyHandler.CreateStory)
	stories.Get("/", storyHandler.GetMyStories)
	stories.Get("/:storyId", storyHandler.GetStory)
	stories.Delete("/:storyId", storyHandler.DeleteStory)

	gallery := protected.Group("/gallery")
	gallery.Get("/images", galleryHandler.GetUserGalleryImages)
	gallery.Get("/images/:storyId", galleryHandler.GetStoryGalleryImage)
	gallery.Post("/coloring/:storyId", galleryHandler.UpdateColoringImage)
	gallery.Delete("/images/:storyId", galleryHandler.DeleteGalleryImage)
	gallery.Get("/stats", galleryHandler.GetGalleryStats)

	share := protected.Group("/share")
	share.Post("/story/:storyId", shareHandler.ShareFromStory)
	share.Post("/gallery/:galleryId", shareHandler.ShareFromGallery)
	share.Get("/my-posts", shareHandler.GetMySharePosts)
	share.Delete("/posts/:postId", shareHandler.DeleteSharePost)
	share.Post("/posts/:postId/like", shareHandler.ToggleLike)

	lullaby := protected.Group("/lullaby")
	lullaby.Get("/music", lullabyHandler.SearchMusic)
	lullaby.Get("/video", lullabyHandler.SearchVideos)
	lullaby.Get("/health", lullabyHandler.Health)
}

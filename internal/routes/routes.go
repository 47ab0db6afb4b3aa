package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tanakrit-dev/uninews-backend/internal/config"
	"github.com/tanakrit-dev/uninews-backend/internal/handlers"
	"github.com/tanakrit-dev/uninews-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	newsHandler *handlers.NewsHandler,
	commentHandler *handlers.CommentHandler,
	reportHandler *handlers.ReportHandler,
	aiHandler *handlers.AIHandler,
	adminHandler *handlers.AdminHandler,
	consentHandler *handlers.ConsentHandler,
	healthHandler *handlers.HealthHandler,
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

	// Public portal content
	api.Get("/news", newsHandler.List)
	api.Get("/news/:id", newsHandler.Get)
	api.Get("/news/:id/comments", commentHandler.List)
	api.Get("/categories", newsHandler.ListCategories)

	// PDPA consent log (anonymous allowed)
	api.Post("/pdpa/consent", consentHandler.LogConsent)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/reset-password", authHandler.ResetPassword)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Profile
	api.Get("/profile", middleware.JWTProtected(cfg), authHandler.Profile)
	api.Put("/profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)

	// Comments (moderated server-side) and reports
	api.Post("/news/:id/comments", middleware.JWTProtected(cfg), commentHandler.Create)
	api.Delete("/comments/:id", middleware.JWTProtected(cfg), commentHandler.Delete)
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.Create)
	api.Get("/reports/my", middleware.JWTProtected(cfg), reportHandler.ListMine)

	// AI — each call costs a completion round trip: 10 req/min per IP
	ai := api.Group("/ai", middleware.JWTProtected(cfg))
	ai.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	ai.Post("/summarize", aiHandler.Summarize)

	// Admin panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/news", newsHandler.Create)
	admin.Put("/news/:id", newsHandler.Update)
	admin.Delete("/news/:id", newsHandler.Delete)
	admin.Post("/categories", newsHandler.CreateCategory)
	admin.Delete("/categories/:id", newsHandler.DeleteCategory)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/ban", adminHandler.SetBanned)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/reports", reportHandler.ListAll)
	admin.Put("/reports/:id/status", reportHandler.UpdateStatus)
	admin.Put("/reports/:id/reply", reportHandler.Reply)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sepandsoft/admin-directory/internal/config"
	"github.com/sepandsoft/admin-directory/internal/handlers"
	"github.com/sepandsoft/admin-directory/internal/middleware"
	"github.com/sepandsoft/admin-directory/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	app.Post("/auth/login", authHandler.Login)

	// Every directory operation sits behind the role allow-list.
	admins := app.Group("/admins",
		middleware.JWTProtected(cfg),
		middleware.RequireRoles(models.RoleSuperAdmin, models.RoleGeneralAdmin),
	)

	// Registered before /:id so "search" is never taken as an identifier.
	admins.Get("/search/", adminHandler.Search)

	admins.Get("/", adminHandler.List)
	admins.Post("/", adminHandler.Create)
	admins.Get("/:id", adminHandler.Get)
	admins.Patch("/:id", adminHandler.Update)
	admins.Delete("/:id", adminHandler.Delete)
}

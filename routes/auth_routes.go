package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/config"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/controllers"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/middleware"
)

func SetupAuthRoutes(app *fiber.App, authController *controllers.AuthController) {
	api := app.Group(config.MAIN_ROUTES)

	api.Post("/login", authController.Login)
	api.Get("/logout", middleware.AuthMiddleware, authController.Logout)
	api.Get("/me", middleware.AuthMiddleware, authController.Me)
}

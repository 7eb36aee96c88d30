package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/config"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/controllers"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/middleware"
)

func SetupDonorRoutes(app *fiber.App, donorController *controllers.DonorController) {
	api := app.Group(config.MAIN_ROUTES+"/donors", middleware.AuthMiddleware)

	api.Get("/", donorController.GetDonors)
	api.Post("/", donorController.CreateDonor)
	api.Put("/:id", donorController.UpdateDonor)
	api.Delete("/:id", donorController.DeleteDonor)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/config"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/controllers"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/middleware"
)

func SetupLogisticsRoutes(app *fiber.App, logisticsController *controllers.LogisticsController) {
	api := app.Group(config.MAIN_ROUTES+"/logistics", middleware.AuthMiddleware)

	api.Get("/", logisticsController.GetLogistics)
	api.Get("/excel", logisticsController.ExportExcel)
	api.Post("/shipments", logisticsController.CreateShipment)
	api.Patch("/:id/status", logisticsController.UpdateStatus)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/config"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/controllers"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/middleware"
)

func SetupInventoryRoutes(app *fiber.App, inventoryController *controllers.InventoryController) {
	api := app.Group(config.MAIN_ROUTES+"/inventory", middleware.AuthMiddleware)

	api.Get("/", inventoryController.GetInventory)
	api.Get("/excel", inventoryController.ExportExcel)
	api.Post("/", inventoryController.AddItem)
	api.Put("/:id", inventoryController.UpdateItem)
	api.Delete("/:id", inventoryController.DeleteItem)
}

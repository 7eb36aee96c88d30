package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/config"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/controllers"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/middleware"
)

func SetupDonationRoutes(app *fiber.App, donationController *controllers.DonationController) {
	api := app.Group(config.MAIN_ROUTES+"/donations", middleware.AuthMiddleware)

	api.Get("/", donationController.GetDonations)
	api.Post("/record", donationController.RecordDonation)
	api.Get("/donor/:donorId/history", donationController.DonorHistory)
	api.Get("/item-donors", donationController.ItemDonors)
}

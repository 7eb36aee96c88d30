package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/config"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/controllers"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/idgen"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/mailer"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/routes"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/services"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/session"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/stores"
)

func main() {
	config.LoadConfig()
	logger := config.GetLogger()

	idgen.Init()

	sessions, err := session.Open(config.SessionDBPath)
	if err != nil {
		log.Fatalf("Failed to open session database: %v", err)
	}
	defer sessions.Close()

	// Single client for the hosted data store; every resource store shares
	// it.
	client := datastore.NewClient(config.DataStoreBaseURL, config.DataStoreTimeout, logger)

	donorStore := stores.NewDonorStore(client)
	donationStore := stores.NewDonationStore(client)
	inventoryStore := stores.NewInventoryStore(client)
	logisticsStore := stores.NewLogisticsStore(client)

	mail := mailer.NewFromConfig()

	authService := services.NewAuthService(client, sessions, logger)
	donationService := services.NewDonationService(donorStore, donationStore, inventoryStore, logger)
	logisticsService := services.NewLogisticsService(logisticsStore, inventoryStore, mail, logger)

	app := fiber.New()

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, controllers.NewAuthController(authService))
	routes.SetupDonorRoutes(app, controllers.NewDonorController(donorStore))
	routes.SetupDonationRoutes(app, controllers.NewDonationController(donationStore, donationService))
	routes.SetupInventoryRoutes(app, controllers.NewInventoryController(inventoryStore))
	routes.SetupLogisticsRoutes(app, controllers.NewLogisticsController(logisticsStore, logisticsService))

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}

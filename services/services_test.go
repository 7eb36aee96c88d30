package services

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore/datastoretest"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/stores"
)

type fixture struct {
	srv       *datastoretest.Server
	donors    *stores.DonorStore
	donations *stores.DonationStore
	inventory *stores.InventoryStore
	logistics *stores.LogisticsStore
	donation  *DonationService
	shipping  *LogisticsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	srv := datastoretest.New(t)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	client := datastore.NewClient(srv.URL, 5*time.Second, logger)

	f := &fixture{
		srv:       srv,
		donors:    stores.NewDonorStore(client),
		donations: stores.NewDonationStore(client),
		inventory: stores.NewInventoryStore(client),
		logistics: stores.NewLogisticsStore(client),
	}
	f.donation = NewDonationService(f.donors, f.donations, f.inventory, logger)
	f.shipping = NewLogisticsService(f.logistics, f.inventory, nil, logger)
	return f
}

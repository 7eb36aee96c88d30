package stores

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore/datastoretest"
)

func testClient(t *testing.T, srv *datastoretest.Server) *datastore.Client {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return datastore.NewClient(srv.URL, 5*time.Second, logger)
}

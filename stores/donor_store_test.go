package stores

import (
	"context"
	"net/http"
	"testing"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/datastore/datastoretest"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
)

func TestDonorStoreFetchAllReplacesCache(t *testing.T) {
	srv := datastoretest.New(t)
	srv.Seed("donors", map[string]any{"name": "Acme", "type": "Organization"})
	srv.Seed("donors", map[string]any{"name": "Bob", "type": "Individual"})
	store := NewDonorStore(testClient(t, srv))
	ctx := context.Background()

	donors, err := store.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(donors) != 2 {
		t.Fatalf("expected 2 donors, got %d", len(donors))
	}

	// A second fetch must replace, not merge.
	srv.Seed("donors", map[string]any{"name": "Carol", "type": "Individual"})
	donors, _ = store.FetchAll(ctx)
	if len(donors) != 3 || len(store.Items()) != 3 {
		t.Errorf("expected replaced cache of 3, got %d", len(store.Items()))
	}

	if store.Snapshot()["fetch"].Status != StatusSucceeded {
		t.Errorf("fetch status should be succeeded, got %+v", store.Snapshot()["fetch"])
	}
}

func TestDonorStoreCreateSplicesServerCopy(t *testing.T) {
	srv := datastoretest.New(t)
	store := NewDonorStore(testClient(t, srv))

	created, err := store.Create(context.Background(), models.Donor{Name: "Acme", Type: "Organization", ContactPerson: "Jane"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected server-assigned id")
	}
	items := store.Items()
	if len(items) != 1 || items[0].ID != created.ID {
		t.Errorf("created donor not spliced into cache: %+v", items)
	}
}

func TestDonorStoreFailedDeleteKeepsList(t *testing.T) {
	srv := datastoretest.New(t)
	seeded := srv.Seed("donors", map[string]any{"name": "Acme", "type": "Organization"})
	store := NewDonorStore(testClient(t, srv))
	ctx := context.Background()

	store.FetchAll(ctx)
	srv.FailNext(http.MethodDelete, "/donors/"+seeded["id"].(string), http.StatusInternalServerError, "delete endpoint broken")

	err := store.Delete(ctx, seeded["id"].(string))
	if err == nil {
		t.Fatal("expected delete to fail")
	}

	// The failed delete must not blank out the fetched list, and each
	// operation keeps its own status slot.
	if len(store.Items()) != 1 {
		t.Errorf("cache should be untouched after failed delete, got %d items", len(store.Items()))
	}
	snap := store.Snapshot()
	if snap["delete"].Status != StatusFailed {
		t.Errorf("delete status should be failed, got %+v", snap["delete"])
	}
	if snap["delete"].Error == "" {
		t.Error("delete error should carry the server message")
	}
	if snap["fetch"].Status != StatusSucceeded {
		t.Errorf("fetch status must survive a failed delete, got %+v", snap["fetch"])
	}
}

func TestDonorStoreDeleteRemovesLocally(t *testing.T) {
	srv := datastoretest.New(t)
	seeded := srv.Seed("donors", map[string]any{"name": "Acme", "type": "Organization"})
	store := NewDonorStore(testClient(t, srv))
	ctx := context.Background()

	store.FetchAll(ctx)
	if err := store.Delete(ctx, seeded["id"].(string)); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Errorf("expected empty cache after delete, got %d", len(store.Items()))
	}
	if len(srv.Items("donors")) != 0 {
		t.Errorf("expected donor removed remotely")
	}
}

func TestDonorStoreUpdateSplices(t *testing.T) {
	srv := datastoretest.New(t)
	seeded := srv.Seed("donors", map[string]any{"name": "Acme", "type": "Organization", "contactPerson": "Jane"})
	store := NewDonorStore(testClient(t, srv))
	ctx := context.Background()
	store.FetchAll(ctx)

	id := seeded["id"].(string)
	updated, err := store.Update(ctx, id, models.Donor{ID: id, Name: "Acme Corp", Type: "Organization", ContactPerson: "Jane"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Acme Corp" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	items := store.Items()
	if len(items) != 1 || items[0].Name != "Acme Corp" {
		t.Errorf("update not spliced into cache: %+v", items)
	}
}

func TestDonorStoreGetBypassesCache(t *testing.T) {
	srv := datastoretest.New(t)
	seeded := srv.Seed("donors", map[string]any{"name": "Acme", "type": "Organization"})
	store := NewDonorStore(testClient(t, srv))

	donor, err := store.Get(context.Background(), seeded["id"].(string))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if donor.Name != "Acme" {
		t.Errorf("expected Acme, got %q", donor.Name)
	}
	if len(store.Items()) != 0 {
		t.Error("Get must not populate the cache")
	}
}

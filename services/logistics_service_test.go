package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
)

func TestCreateShipmentDecrementsInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.srv.Seed("inventory", map[string]any{
		"itemName": "Rice Bags (5kg)",
		"category": "Food Grains",
		"quantity": 50,
	})

	created, err := f.shipping.CreateShipment(ctx, CreateShipmentInput{
		Destination:     "Relief Center Alpha",
		InventoryItemID: item["id"].(string),
		QuantityShipped: 20,
	})
	if err != nil {
		t.Fatalf("CreateShipment: %v", err)
	}

	if created.Status != models.ShipmentStatusPending {
		t.Fatalf("new shipment status = %q, want Pending", created.Status)
	}
	if created.ItemName != "Rice Bags (5kg)" || created.Category != "Food Grains" {
		t.Fatalf("denormalized item fields = %q/%q", created.ItemName, created.Category)
	}
	if created.CreationDate.IsZero() || !created.CreationDate.Equal(created.LastUpdateDate) {
		t.Fatal("creation and last-update dates should both be stamped and equal")
	}

	stored := f.srv.Item("inventory", item["id"].(string))
	if got := asInt(t, stored["quantity"]); got != 30 {
		t.Fatalf("inventory quantity = %d, want 30 after shipping 20 of 50", got)
	}
	if len(f.srv.Items("logistics")) != 1 {
		t.Fatal("expected exactly one logistics record")
	}
}

func TestCreateShipmentRejectsOverQuantityBeforeAnyWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.srv.Seed("inventory", map[string]any{
		"itemName": "Rice Bags (5kg)",
		"category": "Food Grains",
		"quantity": 50,
	})

	_, err := f.shipping.CreateShipment(ctx, CreateShipmentInput{
		Destination:     "Relief Center Alpha",
		InventoryItemID: item["id"].(string),
		QuantityShipped: 51,
	})
	if err == nil {
		t.Fatal("expected over-quantity shipment to be rejected")
	}
	if !strings.Contains(err.Error(), "cannot ship 51") {
		t.Fatalf("error = %v, want the available-quantity message", err)
	}

	if got := asInt(t, f.srv.Item("inventory", item["id"].(string))["quantity"]); got != 50 {
		t.Fatalf("inventory quantity = %d, want untouched 50", got)
	}
	if len(f.srv.Items("logistics")) != 0 {
		t.Fatal("no logistics record should exist")
	}
	for _, r := range f.srv.Requests() {
		if strings.HasPrefix(r, "POST ") || strings.HasPrefix(r, "PUT ") {
			t.Fatalf("rejected shipment still issued a write: %s", r)
		}
	}
}

func TestCreateShipmentRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.srv.Seed("inventory", map[string]any{
		"itemName": "Blankets",
		"category": "Bedding",
		"quantity": 10,
	})

	for _, qty := range []int{0, -5} {
		_, err := f.shipping.CreateShipment(ctx, CreateShipmentInput{
			Destination:     "Relief Center Alpha",
			InventoryItemID: item["id"].(string),
			QuantityShipped: qty,
		})
		if err == nil {
			t.Fatalf("quantity %d should be rejected", qty)
		}
	}
}

func TestCreateShipmentUnknownItem(t *testing.T) {
	f := newFixture(t)

	_, err := f.shipping.CreateShipment(context.Background(), CreateShipmentInput{
		Destination:     "Relief Center Alpha",
		InventoryItemID: "no-such-item",
		QuantityShipped: 1,
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("error = %v, want ErrItemNotFound", err)
	}
}

func TestCreateShipmentRecordSurvivesFailedDecrement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.srv.Seed("inventory", map[string]any{
		"itemName": "Tents",
		"category": "Shelter",
		"quantity": 10,
	})
	f.srv.FailNext("PUT", "/inventory/"+item["id"].(string), 500, "boom")

	_, err := f.shipping.CreateShipment(ctx, CreateShipmentInput{
		Destination:     "Relief Center Alpha",
		InventoryItemID: item["id"].(string),
		QuantityShipped: 4,
	})
	if err == nil {
		t.Fatal("expected the decrement failure to surface")
	}
	if !strings.Contains(err.Error(), "inventory was not decremented") {
		t.Fatalf("error = %v, want it to name the undecremented shipment", err)
	}

	// No rollback: the record stays while the stock keeps its old quantity.
	if len(f.srv.Items("logistics")) != 1 {
		t.Fatal("logistics record should survive the failed decrement")
	}
	if got := asInt(t, f.srv.Item("inventory", item["id"].(string))["quantity"]); got != 10 {
		t.Fatalf("inventory quantity = %d, want untouched 10", got)
	}
}

func TestUpdateShipmentStatusTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record := f.srv.Seed("logistics", map[string]any{
		"destination":     "Relief Center Alpha",
		"inventoryItemId": "1",
		"itemName":        "Blankets",
		"category":        "Bedding",
		"quantityShipped": 5,
		"status":          "Pending",
		"creationDate":    "2026-03-01T10:00:00Z",
		"lastUpdateDate":  "2026-03-01T10:00:00Z",
	})
	id := record["id"].(string)

	updated, err := f.shipping.UpdateShipmentStatus(ctx, id, models.ShipmentStatusShipped)
	if err != nil {
		t.Fatalf("Pending -> Shipped: %v", err)
	}
	if updated.Status != models.ShipmentStatusShipped {
		t.Fatalf("status = %q, want Shipped", updated.Status)
	}

	// Moving backwards is allowed while the shipment is still open.
	if _, err := f.shipping.UpdateShipmentStatus(ctx, id, models.ShipmentStatusPending); err != nil {
		t.Fatalf("Shipped -> Pending: %v", err)
	}

	if _, err := f.shipping.UpdateShipmentStatus(ctx, id, models.ShipmentStatusDelivered); err != nil {
		t.Fatalf("Pending -> Delivered: %v", err)
	}

	// Delivered is terminal.
	_, err = f.shipping.UpdateShipmentStatus(ctx, id, models.ShipmentStatusPending)
	if !errors.Is(err, ErrShipmentFinalized) {
		t.Fatalf("error = %v, want ErrShipmentFinalized", err)
	}
	if f.srv.Item("logistics", id)["status"] != "Delivered" {
		t.Fatal("rejected edit must not change the stored status")
	}
}

func TestUpdateShipmentStatusCancelledIsTerminal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record := f.srv.Seed("logistics", map[string]any{
		"destination":     "Relief Center Beta",
		"inventoryItemId": "1",
		"quantityShipped": 2,
		"status":          "Cancelled",
		"creationDate":    "2026-03-01T10:00:00Z",
		"lastUpdateDate":  "2026-03-02T10:00:00Z",
	})

	_, err := f.shipping.UpdateShipmentStatus(ctx, record["id"].(string), models.ShipmentStatusShipped)
	if !errors.Is(err, ErrShipmentFinalized) {
		t.Fatalf("error = %v, want ErrShipmentFinalized", err)
	}
}

func TestUpdateShipmentStatusFetchesUncachedRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record := f.srv.Seed("logistics", map[string]any{
		"destination":     "Relief Center Alpha",
		"inventoryItemId": "1",
		"quantityShipped": 5,
		"status":          "Pending",
		"creationDate":    "2026-03-01T10:00:00Z",
		"lastUpdateDate":  "2026-03-01T10:00:00Z",
	})

	// Nothing was fetched into the local mirror; the service must look the
	// record up remotely before checking the transition.
	updated, err := f.shipping.UpdateShipmentStatus(ctx, record["id"].(string), models.ShipmentStatusDelivered)
	if err != nil {
		t.Fatalf("UpdateShipmentStatus: %v", err)
	}
	if updated.Status != models.ShipmentStatusDelivered {
		t.Fatalf("status = %q, want Delivered", updated.Status)
	}
}

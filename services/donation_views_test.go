package services

import (
	"context"
	"testing"
)

func TestDonorHistoryResolvesCachedDonor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	donor := f.srv.Seed("donors", map[string]any{"name": "Acme Corp", "type": "Organization", "contactPerson": "Jane"})
	other := f.srv.Seed("donors", map[string]any{"name": "Jane Doe", "type": "Individual"})
	f.srv.Seed("donations", map[string]any{"donorId": donor["id"], "itemName": "Blankets", "category": "Bedding", "quantity": 5, "donationDate": "2026-01-10T00:00:00Z"})
	f.srv.Seed("donations", map[string]any{"donorId": other["id"], "itemName": "Tents", "category": "Shelter", "quantity": 2, "donationDate": "2026-01-11T00:00:00Z"})

	if _, err := f.donors.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll donors: %v", err)
	}
	before := len(f.srv.Requests())

	view, err := f.donation.DonorHistory(ctx, donor["id"].(string))
	if err != nil {
		t.Fatalf("DonorHistory: %v", err)
	}
	if view.Donor == nil || view.Donor.Name != "Acme Corp" {
		t.Fatalf("donor = %+v, want Acme Corp", view.Donor)
	}
	if len(view.Donations) != 1 || view.Donations[0].ItemName != "Blankets" {
		t.Fatalf("donations = %+v, want only this donor's entries", view.Donations)
	}

	// Cached donor: only the donation fetch hits the server.
	if got := len(f.srv.Requests()) - before; got != 1 {
		t.Fatalf("issued %d requests, want 1 (history fetch only)", got)
	}
}

func TestDonorHistoryDeletedDonorStillShowsDonations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.srv.Seed("donations", map[string]any{"donorId": "gone", "itemName": "Blankets", "category": "Bedding", "quantity": 5, "donationDate": "2026-01-10T00:00:00Z"})

	view, err := f.donation.DonorHistory(ctx, "gone")
	if err != nil {
		t.Fatalf("DonorHistory: %v", err)
	}
	if view.Donor != nil {
		t.Fatalf("donor = %+v, want nil for a deleted donor", view.Donor)
	}
	if len(view.Donations) != 1 {
		t.Fatalf("donations = %+v, want the history regardless", view.Donations)
	}
}

func TestItemDonorsAttachesNamesWithPlaceholderForDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	donor := f.srv.Seed("donors", map[string]any{"name": "Acme Corp", "type": "Organization", "contactPerson": "Jane"})
	f.srv.Seed("donations", map[string]any{"donorId": donor["id"], "itemName": "Rice Bags (5kg)", "category": "Food Grains", "quantity": 50, "donationDate": "2026-01-10T00:00:00Z"})
	f.srv.Seed("donations", map[string]any{"donorId": donor["id"], "itemName": "Rice Bags (5kg)", "category": "Food Grains", "quantity": 10, "donationDate": "2026-01-12T00:00:00Z"})
	f.srv.Seed("donations", map[string]any{"donorId": "deleted", "itemName": "Rice Bags (5kg)", "category": "Food Grains", "quantity": 3, "donationDate": "2026-01-13T00:00:00Z"})
	f.srv.Seed("donations", map[string]any{"donorId": donor["id"], "itemName": "Rice Bags (5kg)", "category": "Relief Kits", "quantity": 4, "donationDate": "2026-01-14T00:00:00Z"})

	entries, err := f.donation.ItemDonors(ctx, "Rice Bags (5kg)", "Food Grains")
	if err != nil {
		t.Fatalf("ItemDonors: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3 (other category excluded)", len(entries))
	}

	named, placeholders := 0, 0
	for _, e := range entries {
		switch {
		case e.DonorKnown && e.DonorName == "Acme Corp":
			named++
		case !e.DonorKnown && e.DonorName == PlaceholderDonorName:
			placeholders++
		default:
			t.Fatalf("unexpected entry %+v", e)
		}
	}
	if named != 2 || placeholders != 1 {
		t.Fatalf("named=%d placeholders=%d, want 2 and 1", named, placeholders)
	}

	// The same donor is looked up once, not once per donation.
	if n := countRequests(f.srv.Requests(), "GET /donors/"+donor["id"].(string)); n != 1 {
		t.Fatalf("donor fetched %d times, want 1", n)
	}
}

func TestDeletingDonorLeavesDonations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	donor := f.srv.Seed("donors", map[string]any{"name": "Jane Doe", "type": "Individual"})
	f.srv.Seed("donations", map[string]any{"donorId": donor["id"], "itemName": "Blankets", "category": "Bedding", "quantity": 5, "donationDate": "2026-01-10T00:00:00Z"})

	if err := f.donors.Delete(ctx, donor["id"].(string)); err != nil {
		t.Fatalf("Delete donor: %v", err)
	}

	if len(f.srv.Items("donors")) != 0 {
		t.Fatal("donor should be gone")
	}
	if len(f.srv.Items("donations")) != 1 {
		t.Fatal("donations must survive their donor's deletion")
	}
}

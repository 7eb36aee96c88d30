package services

import (
	"context"
	"fmt"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
)

// PlaceholderDonorName is shown for donations whose donor could not be
// resolved, typically because the donor was deleted.
const PlaceholderDonorName = "details unavailable"

type DonorHistoryView struct {
	Donor     *models.Donor     `json:"donor"`
	Donations []models.Donation `json:"donations"`
}

type ItemDonorEntry struct {
	Donation   models.Donation `json:"donation"`
	DonorName  string          `json:"donorName"`
	DonorKnown bool            `json:"donorKnown"`
}

// DonorHistory cross-references one donor with their donation history. The
// donor is resolved from the cached list first, then directly from the
// server; a missing donor degrades to a nil Donor rather than an error so
// the history is still shown.
func (s *DonationService) DonorHistory(ctx context.Context, donorID string) (DonorHistoryView, error) {
	donations, err := s.donations.FetchByDonor(ctx, donorID)
	if err != nil {
		return DonorHistoryView{}, fmt.Errorf("loading donor history: %w", err)
	}

	view := DonorHistoryView{Donations: donations}

	for _, donor := range s.donors.Items() {
		if donor.ID == donorID {
			d := donor
			view.Donor = &d
			return view, nil
		}
	}

	donor, err := s.donors.Get(ctx, donorID)
	if err != nil {
		s.logger.WithField("donor_id", donorID).Warn("donor lookup failed: " + err.Error())
		return view, nil
	}
	view.Donor = &donor
	return view, nil
}

// ItemDonors lists the donations behind one inventory item with the donor
// names attached. Every unique donor is fetched individually (an accepted
// N+1 on small collections); a failed lookup degrades to a placeholder name
// instead of failing the whole view.
func (s *DonationService) ItemDonors(ctx context.Context, itemName, category string) ([]ItemDonorEntry, error) {
	donations, err := s.donations.FetchByItem(ctx, itemName, category)
	if err != nil {
		return nil, fmt.Errorf("loading item donors: %w", err)
	}

	donorNames := make(map[string]string)
	for _, donation := range donations {
		if _, ok := donorNames[donation.DonorID]; ok {
			continue
		}
		donor, err := s.donors.Get(ctx, donation.DonorID)
		if err != nil {
			s.logger.WithField("donor_id", donation.DonorID).Warn("donor lookup failed: " + err.Error())
			donorNames[donation.DonorID] = ""
			continue
		}
		donorNames[donation.DonorID] = donor.Name
	}

	entries := make([]ItemDonorEntry, 0, len(donations))
	for _, donation := range donations {
		name := donorNames[donation.DonorID]
		entry := ItemDonorEntry{Donation: donation, DonorName: name, DonorKnown: name != ""}
		if !entry.DonorKnown {
			entry.DonorName = PlaceholderDonorName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

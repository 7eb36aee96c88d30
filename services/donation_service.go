// Package services holds the multi-store sync workflows. Each service takes
// its store handles explicitly so ordering and side effects are testable in
// isolation; nothing here is a global singleton.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/idgen"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/stores"
)

type DonationService struct {
	donors    *stores.DonorStore
	donations *stores.DonationStore
	inventory *stores.InventoryStore
	logger    *logrus.Logger
}

func NewDonationService(donors *stores.DonorStore, donations *stores.DonationStore, inventory *stores.InventoryStore, logger *logrus.Logger) *DonationService {
	return &DonationService{
		donors:    donors,
		donations: donations,
		inventory: inventory,
		logger:    logger,
	}
}

type RecordDonationInput struct {
	Donor    models.Donor
	Donation models.Donation
}

type RecordDonationResult struct {
	DonorID  string          `json:"donorId"`
	Donation models.Donation `json:"donation"`
}

// RecordDonation runs the donation workflow strictly in sequence: create the
// donor when it has no id yet, create the donation record, then upsert the
// inventory item matching the exact itemName+category pair.
//
// There are no compensating transactions. A failure aborts the remaining
// steps but leaves committed ones in place: a created donor survives a
// failed donation create, and a created donation survives a failed inventory
// upsert. Callers retrying after a donor was created must pass its id back
// in, or a duplicate donor will be created.
func (s *DonationService) RecordDonation(ctx context.Context, input RecordDonationInput) (RecordDonationResult, error) {
	workflowID := idgen.WorkflowID()
	log := s.logger.WithFields(logrus.Fields{
		"workflow":    "record_donation",
		"workflow_id": workflowID,
	})

	// Step 1: resolve the donor, creating it when no id was supplied.
	donorID := input.Donor.ID
	if donorID == "" {
		created, err := s.donors.Create(ctx, input.Donor)
		if err != nil {
			log.WithField("step", "create_donor").Error(err.Error())
			return RecordDonationResult{}, fmt.Errorf("recording donation: %w", err)
		}
		donorID = created.ID
		log.WithFields(logrus.Fields{"step": "create_donor", "donor_id": donorID}).Info("donor created")
	}

	// Step 2: create the donation record with the resolved donor and the
	// current time.
	donation := input.Donation
	donation.DonorID = donorID
	donation.DonationDate = time.Now().UTC()
	created, err := s.donations.Create(ctx, donation)
	if err != nil {
		log.WithField("step", "create_donation").Error(err.Error())
		return RecordDonationResult{}, fmt.Errorf("recording donation: %w", err)
	}
	log.WithFields(logrus.Fields{"step": "create_donation", "donation_id": created.ID}).Info("donation created")

	// Step 3: upsert inventory for the exact itemName+category pair.
	existing, found, err := s.inventory.FindByNameCategory(ctx, donation.ItemName, donation.Category)
	if err != nil {
		log.WithField("step", "lookup_inventory").Error(err.Error())
		return RecordDonationResult{}, fmt.Errorf("recording donation: %w", err)
	}

	if found {
		existing.Quantity += donation.Quantity
		if _, err := s.inventory.Update(ctx, existing.ID, existing); err != nil {
			log.WithField("step", "update_inventory").Error(err.Error())
			return RecordDonationResult{}, fmt.Errorf("recording donation: %w", err)
		}
		log.WithFields(logrus.Fields{"step": "update_inventory", "item_id": existing.ID, "quantity": existing.Quantity}).Info("inventory incremented")
	} else {
		item := models.InventoryItem{
			ItemName: donation.ItemName,
			Category: donation.Category,
			Quantity: donation.Quantity,
		}
		created, err := s.inventory.Create(ctx, item)
		if err != nil {
			log.WithField("step", "create_inventory").Error(err.Error())
			return RecordDonationResult{}, fmt.Errorf("recording donation: %w", err)
		}
		log.WithFields(logrus.Fields{"step": "create_inventory", "item_id": created.ID}).Info("inventory item created")
	}

	return RecordDonationResult{DonorID: donorID, Donation: created}, nil
}

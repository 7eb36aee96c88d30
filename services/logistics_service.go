package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/idgen"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/mailer"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/stores"
)

// ErrShipmentFinalized is returned when a status edit is attempted on a
// Delivered or Cancelled shipment.
var ErrShipmentFinalized = errors.New("shipment status can no longer be changed")

// ErrItemNotFound is returned when the requested inventory item is absent
// from the loaded inventory.
var ErrItemNotFound = errors.New("inventory item not found")

type LogisticsService struct {
	logistics *stores.LogisticsStore
	inventory *stores.InventoryStore
	mail      *mailer.Mailer
	logger    *logrus.Logger
}

func NewLogisticsService(logistics *stores.LogisticsStore, inventory *stores.InventoryStore, mail *mailer.Mailer, logger *logrus.Logger) *LogisticsService {
	return &LogisticsService{
		logistics: logistics,
		inventory: inventory,
		mail:      mail,
		logger:    logger,
	}
}

type CreateShipmentInput struct {
	Destination     string
	InventoryItemID string
	QuantityShipped int
}

// CreateShipment validates the requested quantity against the loaded
// inventory before any write, creates the Pending logistics record with
// denormalized item fields, then decrements the inventory item.
//
// No rollback: if the inventory decrement fails after the record was
// created, the record stays, referencing stock that was never decremented.
func (s *LogisticsService) CreateShipment(ctx context.Context, input CreateShipmentInput) (models.LogisticsRecord, error) {
	workflowID := idgen.WorkflowID()
	log := s.logger.WithFields(logrus.Fields{
		"workflow":    "create_shipment",
		"workflow_id": workflowID,
	})

	// Step 1: make sure the inventory mirror is settled.
	if !s.inventory.Settled() {
		if _, err := s.inventory.FetchAll(ctx); err != nil {
			log.WithField("step", "fetch_inventory").Error(err.Error())
			return models.LogisticsRecord{}, fmt.Errorf("creating shipment: %w", err)
		}
	}

	// Step 2: resolve the item locally.
	item, ok := s.inventory.FindByID(input.InventoryItemID)
	if !ok {
		return models.LogisticsRecord{}, fmt.Errorf("creating shipment: %w: %s", ErrItemNotFound, input.InventoryItemID)
	}

	// Step 3: validate before any write. No partial shipments.
	if input.QuantityShipped <= 0 {
		return models.LogisticsRecord{}, errors.New("quantity to ship must be greater than zero")
	}
	if input.QuantityShipped > item.Quantity {
		return models.LogisticsRecord{}, fmt.Errorf("cannot ship %d: only %d of %s available",
			input.QuantityShipped, item.Quantity, item.ItemName)
	}

	// Step 4: create the logistics record.
	now := time.Now().UTC()
	record := models.LogisticsRecord{
		Destination:     input.Destination,
		InventoryItemID: input.InventoryItemID,
		ItemName:        item.ItemName,
		Category:        item.Category,
		QuantityShipped: input.QuantityShipped,
		Status:          models.ShipmentStatusPending,
		CreationDate:    now,
		LastUpdateDate:  now,
	}
	created, err := s.logistics.Create(ctx, record)
	if err != nil {
		log.WithField("step", "create_record").Error(err.Error())
		return models.LogisticsRecord{}, fmt.Errorf("creating shipment: %w", err)
	}
	log.WithFields(logrus.Fields{"step": "create_record", "shipment_id": created.ID}).Info("shipment created")

	// Step 5: decrement the inventory item.
	item.Quantity -= input.QuantityShipped
	if _, err := s.inventory.Update(ctx, item.ID, item); err != nil {
		log.WithFields(logrus.Fields{"step": "update_inventory", "shipment_id": created.ID}).Error(err.Error())
		return models.LogisticsRecord{}, fmt.Errorf("creating shipment: inventory was not decremented for shipment %s: %w", created.ID, err)
	}

	return created, nil
}

// UpdateShipmentStatus moves a shipment to a new status. Delivered and
// Cancelled are terminal; any edit on them is rejected here, before the
// remote call. Other jumps, Pending straight to Delivered included, are
// allowed.
func (s *LogisticsService) UpdateShipmentStatus(ctx context.Context, id string, status models.ShipmentStatus) (models.LogisticsRecord, error) {
	current, ok := s.logistics.Find(id)
	if !ok {
		fetched, err := s.logistics.Get(ctx, id)
		if err != nil {
			return models.LogisticsRecord{}, fmt.Errorf("updating shipment status: %w", err)
		}
		current = fetched
	}

	if !current.Status.CanTransitionTo(status) {
		return models.LogisticsRecord{}, fmt.Errorf("shipment %s is %s: %w", id, current.Status, ErrShipmentFinalized)
	}

	updated, err := s.logistics.ApplyStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		return models.LogisticsRecord{}, fmt.Errorf("updating shipment status: %w", err)
	}

	if status == models.ShipmentStatusDelivered && s.mail != nil {
		// A notification failure is logged, never surfaced: the status
		// update already succeeded.
		if err := s.mail.SendShipmentDelivered(updated); err != nil {
			s.logger.WithField("shipment_id", updated.ID).Warn(err.Error())
		}
	}

	return updated, nil
}

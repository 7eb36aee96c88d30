package models

import (
	"fmt"
	"time"
)

type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "Pending"
	ShipmentStatusShipped   ShipmentStatus = "Shipped"
	ShipmentStatusDelivered ShipmentStatus = "Delivered"
	ShipmentStatusCancelled ShipmentStatus = "Cancelled"
)

func ParseShipmentStatus(s string) (ShipmentStatus, error) {
	switch ShipmentStatus(s) {
	case ShipmentStatusPending, ShipmentStatusShipped, ShipmentStatusDelivered, ShipmentStatusCancelled:
		return ShipmentStatus(s), nil
	}
	return "", fmt.Errorf("unknown shipment status %q", s)
}

// IsTerminal reports whether no further status edits are allowed.
func (s ShipmentStatus) IsTerminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusCancelled
}

// CanTransitionTo is the whole transition table: Delivered and Cancelled are
// terminal, every other jump is allowed (Pending straight to Delivered
// included).
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	return !s.IsTerminal()
}

// LogisticsRecord is a shipment. ItemName and Category are denormalized
// copies of the referenced inventory item at creation time, kept for display
// even if the item is later deleted.
type LogisticsRecord struct {
	ID              string         `json:"id,omitempty"`
	Destination     string         `json:"destination" validate:"required"`
	InventoryItemID string         `json:"inventoryItemId" validate:"required"`
	ItemName        string         `json:"itemName"`
	Category        string         `json:"category"`
	QuantityShipped int            `json:"quantityShipped" validate:"required,gt=0"`
	Status          ShipmentStatus `json:"status"`
	CreationDate    time.Time      `json:"creationDate"`
	LastUpdateDate  time.Time      `json:"lastUpdateDate"`
}

package models

// InventoryItem.Quantity is the cumulative total for the itemName+category
// pair: incremented by every donation, decremented by every shipment. The
// remote store does not enforce this, the workflow code does.
type InventoryItem struct {
	ID       string `json:"id,omitempty"`
	ItemName string `json:"itemName" validate:"required"`
	Category string `json:"category" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

package models

import "time"

// Donation records are immutable once created; there is no update or delete
// operation anywhere in the app. DonorID is a weak reference: the referenced
// donor may have been deleted since.
type Donation struct {
	ID           string    `json:"id,omitempty"`
	DonorID      string    `json:"donorId"`
	ItemName     string    `json:"itemName" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	Quantity     int       `json:"quantity" validate:"required,gt=0"`
	DonationDate time.Time `json:"donationDate"`
}

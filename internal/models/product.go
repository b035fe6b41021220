package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a trackable stock unit. Wire field names match the legacy
// frontend contract (cat, stoc) and are kept for compatibility.
type Product struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Cat             string    `json:"cat" db:"cat"`
	Stoc            int       `json:"stoc" db:"stoc"`
	Barcode         *string   `json:"barcode,omitempty" db:"barcode"`
	CurrentLocation string    `json:"currentLocation" db:"current_location"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// DefaultLocation is assigned to products created without an explicit location.
const DefaultLocation = "warehouse"

// ProductUpdate carries a partial update for a product. Nil fields are
// left untouched. Stoc is set absolutely, no clamping on direct edits.
type ProductUpdate struct {
	Name            *string `json:"name"`
	Cat             *string `json:"cat"`
	Stoc            *int    `json:"stoc"`
	Barcode         *string `json:"barcode"`
	CurrentLocation *string `json:"currentLocation"`
}

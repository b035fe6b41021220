package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationHistory is one entry in a product's append-only location log.
// The first entry for a product has FromLocation nil. Entries are never
// updated or deleted.
type LocationHistory struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ProductID    uuid.UUID `json:"productId" db:"product_id"`
	FromLocation *string   `json:"fromLocation" db:"from_location"`
	ToLocation   string    `json:"toLocation" db:"to_location"`
	MovedAt      time.Time `json:"movedAt" db:"moved_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Consumption records a stock depletion event against a product.
// Records are immutable once created.
type Consumption struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Cant      int       `json:"cant" db:"cant"`
	Date      time.Time `json:"date" db:"date"`
	User      *string   `json:"user,omitempty" db:"consumed_by"`
	Locm      *string   `json:"locm,omitempty" db:"locm"`
}

// Package valueobject defines derived, identity-free domain values.
package valueobject

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AvailableBatch is a derived, read-only projection of a purchase transaction
// showing how much of the batch is still unsold. It is recomputed from the
// ledger on read and never stored.
type AvailableBatch struct {
	BatchID           uuid.UUID
	PurchaseDate      time.Time
	Breed             string
	AverageWeightKg   *decimal.Decimal
	PricePerHead      decimal.Decimal
	PurchaseNotes     string
	PurchasedQuantity int
	SoldQuantity      int
	RemainingQuantity int
}

// IsSelectable reports whether the batch can still be allocated against.
// Fully sold batches remain visible for historical display but are excluded
// from sale forms.
func (b AvailableBatch) IsSelectable() bool {
	return b.RemainingQuantity > 0
}

// AllocationRequest is a single line of a prospective sale: a quantity drawn
// from one purchase batch.
type AllocationRequest struct {
	BatchID  uuid.UUID
	Quantity int
}

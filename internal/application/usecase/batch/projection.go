// Package batch contains use cases for the available-batch projection.
package batch

import (
	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/domain/entity"
	"github.com/herd-ledger/backend/internal/domain/valueobject"
)

// ComputeAvailableBatches derives the available-batch projection from the raw
// ledger. Each purchase becomes one batch; its sold quantity is the sum of
// every allocation referencing it. The input order of purchases is preserved.
//
// Allocations referencing a purchase not present in the input are ignored,
// which lets callers compute a partial projection from a filtered purchase set.
func ComputeAvailableBatches(
	purchases []*entity.CattleTransaction,
	allocations []*entity.BatchAllocation,
) []valueobject.AvailableBatch {
	soldByBatch := make(map[uuid.UUID]int, len(purchases))
	for _, alloc := range allocations {
		soldByBatch[alloc.PurchaseTransactionID] += alloc.Quantity
	}

	batches := make([]valueobject.AvailableBatch, 0, len(purchases))
	for _, purchase := range purchases {
		if !purchase.IsBuy() {
			continue
		}

		sold := soldByBatch[purchase.ID]
		batches = append(batches, valueobject.AvailableBatch{
			BatchID:           purchase.ID,
			PurchaseDate:      purchase.OccurredOn,
			Breed:             purchase.Breed,
			AverageWeightKg:   purchase.AverageWeightKg,
			PricePerHead:      purchase.PricePerHead,
			PurchaseNotes:     purchase.Notes,
			PurchasedQuantity: purchase.Quantity,
			SoldQuantity:      sold,
			RemainingQuantity: purchase.Quantity - sold,
		})
	}

	return batches
}

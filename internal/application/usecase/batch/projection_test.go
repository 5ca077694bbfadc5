// Package batch contains use cases for the available-batch projection.
package batch

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

func newTestPurchase(t *testing.T, userID uuid.UUID, quantity int, pricePerHead string, daysAgo int) *entity.CattleTransaction {
	t.Helper()
	price, err := decimal.NewFromString(pricePerHead)
	if err != nil {
		t.Fatalf("invalid price %q: %v", pricePerHead, err)
	}
	occurred := time.Now().UTC().AddDate(0, 0, -daysAgo)
	return entity.NewPurchase(userID, quantity, price, "Angus", nil, occurred, "")
}

func TestComputeAvailableBatches(t *testing.T) {
	userID := uuid.New()

	t.Run("purchase with no allocations is fully available", func(t *testing.T) {
		purchase := newTestPurchase(t, userID, 50, "1200", 10)

		batches := ComputeAvailableBatches([]*entity.CattleTransaction{purchase}, nil)

		if len(batches) != 1 {
			t.Fatalf("expected 1 batch, got %d", len(batches))
		}
		if batches[0].BatchID != purchase.ID {
			t.Errorf("expected batch ID %s, got %s", purchase.ID, batches[0].BatchID)
		}
		if batches[0].SoldQuantity != 0 {
			t.Errorf("expected sold quantity 0, got %d", batches[0].SoldQuantity)
		}
		if batches[0].RemainingQuantity != 50 {
			t.Errorf("expected remaining quantity 50, got %d", batches[0].RemainingQuantity)
		}
		if !batches[0].IsSelectable() {
			t.Error("expected batch with remaining quantity to be selectable")
		}
	})

	t.Run("allocations across sales are summed per batch", func(t *testing.T) {
		purchase := newTestPurchase(t, userID, 50, "1200", 10)
		saleA := uuid.New()
		saleB := uuid.New()
		allocations := []*entity.BatchAllocation{
			entity.NewBatchAllocation(userID, saleA, purchase.ID, 20, purchase.PricePerHead),
			entity.NewBatchAllocation(userID, saleB, purchase.ID, 15, purchase.PricePerHead),
		}

		batches := ComputeAvailableBatches([]*entity.CattleTransaction{purchase}, allocations)

		if batches[0].SoldQuantity != 35 {
			t.Errorf("expected sold quantity 35, got %d", batches[0].SoldQuantity)
		}
		if batches[0].RemainingQuantity != 15 {
			t.Errorf("expected remaining quantity 15, got %d", batches[0].RemainingQuantity)
		}
	})

	t.Run("fully sold batch has zero remaining and is not selectable", func(t *testing.T) {
		purchase := newTestPurchase(t, userID, 30, "900.50", 5)
		allocations := []*entity.BatchAllocation{
			entity.NewBatchAllocation(userID, uuid.New(), purchase.ID, 30, purchase.PricePerHead),
		}

		batches := ComputeAvailableBatches([]*entity.CattleTransaction{purchase}, allocations)

		if batches[0].RemainingQuantity != 0 {
			t.Errorf("expected remaining quantity 0, got %d", batches[0].RemainingQuantity)
		}
		if batches[0].IsSelectable() {
			t.Error("expected fully sold batch not to be selectable")
		}
	})

	t.Run("allocations only affect their own batch", func(t *testing.T) {
		first := newTestPurchase(t, userID, 40, "1100", 20)
		second := newTestPurchase(t, userID, 25, "1300", 3)
		allocations := []*entity.BatchAllocation{
			entity.NewBatchAllocation(userID, uuid.New(), first.ID, 10, first.PricePerHead),
		}

		batches := ComputeAvailableBatches([]*entity.CattleTransaction{first, second}, allocations)

		if len(batches) != 2 {
			t.Fatalf("expected 2 batches, got %d", len(batches))
		}
		if batches[0].RemainingQuantity != 30 {
			t.Errorf("expected first batch remaining 30, got %d", batches[0].RemainingQuantity)
		}
		if batches[1].RemainingQuantity != 25 {
			t.Errorf("expected second batch remaining 25, got %d", batches[1].RemainingQuantity)
		}
	})

	t.Run("input order of purchases is preserved", func(t *testing.T) {
		newest := newTestPurchase(t, userID, 10, "1000", 1)
		oldest := newTestPurchase(t, userID, 10, "1000", 30)

		batches := ComputeAvailableBatches([]*entity.CattleTransaction{newest, oldest}, nil)

		if batches[0].BatchID != newest.ID || batches[1].BatchID != oldest.ID {
			t.Error("expected projection to preserve purchase order")
		}
	})

	t.Run("sell transactions in the input are skipped", func(t *testing.T) {
		purchase := newTestPurchase(t, userID, 10, "1000", 1)
		sale := entity.NewSale(userID, 5, decimal.NewFromInt(8000), decimal.Zero, time.Now().UTC(), "")

		batches := ComputeAvailableBatches([]*entity.CattleTransaction{purchase, sale}, nil)

		if len(batches) != 1 {
			t.Fatalf("expected 1 batch, got %d", len(batches))
		}
	})

	t.Run("empty ledger yields empty projection", func(t *testing.T) {
		batches := ComputeAvailableBatches(nil, nil)
		if len(batches) != 0 {
			t.Errorf("expected no batches, got %d", len(batches))
		}
	})
}

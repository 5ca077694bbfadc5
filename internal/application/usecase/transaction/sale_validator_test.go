// Package transaction contains cattle transaction-related use cases.
package transaction

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/herd-ledger/backend/internal/domain/error"
	"github.com/herd-ledger/backend/internal/domain/valueobject"
)

func testBatch(remaining int, pricePerHead string) valueobject.AvailableBatch {
	price, _ := decimal.NewFromString(pricePerHead)
	return valueobject.AvailableBatch{
		BatchID:           uuid.New(),
		PricePerHead:      price,
		PurchasedQuantity: remaining,
		RemainingQuantity: remaining,
	}
}

func assertAllocationCode(t *testing.T, err error, want domainerror.AllocationErrorCode) *domainerror.AllocationError {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var allocErr *domainerror.AllocationError
	if !errors.As(err, &allocErr) {
		t.Fatalf("expected AllocationError, got %T: %v", err, err)
	}
	if allocErr.Code != want {
		t.Fatalf("expected code %s, got %s", want, allocErr.Code)
	}
	return allocErr
}

func TestValidateSale(t *testing.T) {
	pool := decimal.NewFromInt(1000)
	price := decimal.NewFromInt(8000)

	t.Run("valid sale across two batches passes", func(t *testing.T) {
		batchA := testBatch(5, "1200")
		batchB := testBatch(5, "1100")
		requests := []valueobject.AllocationRequest{
			{BatchID: batchA.BatchID, Quantity: 3},
			{BatchID: batchB.BatchID, Quantity: 2},
		}

		err := ValidateSale(requests, []valueobject.AvailableBatch{batchA, batchB}, decimal.NewFromInt(400), pool, price)
		if err != nil {
			t.Fatalf("expected valid sale, got %v", err)
		}
		if got := SaleQuantity(requests); got != 5 {
			t.Errorf("expected sale quantity 5, got %d", got)
		}
	})

	t.Run("no allocations is rejected", func(t *testing.T) {
		err := ValidateSale(nil, nil, decimal.Zero, pool, price)
		assertAllocationCode(t, err, domainerror.ErrCodeNoAllocations)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		b := testBatch(5, "1200")
		requests := []valueobject.AllocationRequest{{BatchID: b.BatchID, Quantity: 0}}

		err := ValidateSale(requests, []valueobject.AvailableBatch{b}, decimal.Zero, pool, price)
		allocErr := assertAllocationCode(t, err, domainerror.ErrCodeInvalidAllocationQuantity)
		if allocErr.BatchID != b.BatchID.String() {
			t.Errorf("expected error to name batch %s, got %s", b.BatchID, allocErr.BatchID)
		}
	})

	t.Run("unknown batch is rejected", func(t *testing.T) {
		b := testBatch(5, "1200")
		unknown := uuid.New()
		requests := []valueobject.AllocationRequest{{BatchID: unknown, Quantity: 1}}

		err := ValidateSale(requests, []valueobject.AvailableBatch{b}, decimal.Zero, pool, price)
		allocErr := assertAllocationCode(t, err, domainerror.ErrCodeBatchNotFound)
		if allocErr.BatchID != unknown.String() {
			t.Errorf("expected error to name batch %s, got %s", unknown, allocErr.BatchID)
		}
	})

	t.Run("request beyond remaining quantity is rejected", func(t *testing.T) {
		b := testBatch(5, "1200")
		requests := []valueobject.AllocationRequest{{BatchID: b.BatchID, Quantity: 6}}

		err := ValidateSale(requests, []valueobject.AvailableBatch{b}, decimal.Zero, pool, price)
		assertAllocationCode(t, err, domainerror.ErrCodeBatchOverAllocated)
	})

	t.Run("two rows against the same batch are summed before the check", func(t *testing.T) {
		b := testBatch(5, "1200")
		requests := []valueobject.AllocationRequest{
			{BatchID: b.BatchID, Quantity: 3},
			{BatchID: b.BatchID, Quantity: 3},
		}

		err := ValidateSale(requests, []valueobject.AvailableBatch{b}, decimal.Zero, pool, price)
		assertAllocationCode(t, err, domainerror.ErrCodeBatchOverAllocated)
	})

	t.Run("two rows against the same batch within remaining pass", func(t *testing.T) {
		b := testBatch(5, "1200")
		requests := []valueobject.AllocationRequest{
			{BatchID: b.BatchID, Quantity: 2},
			{BatchID: b.BatchID, Quantity: 3},
		}

		err := ValidateSale(requests, []valueobject.AvailableBatch{b}, decimal.Zero, pool, price)
		if err != nil {
			t.Fatalf("expected valid sale, got %v", err)
		}
	})

	t.Run("negative deduction is rejected", func(t *testing.T) {
		b := testBatch(5, "1200")
		requests := []valueobject.AllocationRequest{{BatchID: b.BatchID, Quantity: 1}}

		err := ValidateSale(requests, []valueobject.AvailableBatch{b}, decimal.NewFromInt(-1), pool, price)
		allocErr := assertAllocationCode(t, err, domainerror.ErrCodeInvalidDeduction)
		if allocErr.Field != "inputCostDeduction" {
			t.Errorf("expected field inputCostDeduction, got %s", allocErr.Field)
		}
	})

	t.Run("deduction above the unaccounted pool is rejected", func(t *testing.T) {
		b := testBatch(5, "1200")
		requests := []valueobject.AllocationRequest{{BatchID: b.BatchID, Quantity: 1}}

		err := ValidateSale(requests, []valueobject.AvailableBatch{b}, decimal.NewFromInt(1001), pool, price)
		assertAllocationCode(t, err, domainerror.ErrCodeDeductionExceedsPool)
	})

	t.Run("deduction equal to the pool passes", func(t *testing.T) {
		b := testBatch(5, "1200")
		requests := []valueobject.AllocationRequest{{BatchID: b.BatchID, Quantity: 1}}

		err := ValidateSale(requests, []valueobject.AvailableBatch{b}, pool, pool, price)
		if err != nil {
			t.Fatalf("expected valid sale, got %v", err)
		}
	})

	t.Run("zero or negative sale price is rejected", func(t *testing.T) {
		b := testBatch(5, "1200")
		requests := []valueobject.AllocationRequest{{BatchID: b.BatchID, Quantity: 1}}

		err := ValidateSale(requests, []valueobject.AvailableBatch{b}, decimal.Zero, pool, decimal.Zero)
		allocErr := assertAllocationCode(t, err, domainerror.ErrCodeInvalidSalePrice)
		if allocErr.Field != "totalSalePrice" {
			t.Errorf("expected field totalSalePrice, got %s", allocErr.Field)
		}
	})

	// Costs total $1000 with no prior deductions. A $400 deduction succeeds,
	// leaving $600 in the pool; a second sale asking for $700 is rejected.
	t.Run("deduction pool shrinks across sales", func(t *testing.T) {
		b := testBatch(10, "1200")

		first := []valueobject.AllocationRequest{{BatchID: b.BatchID, Quantity: 2}}
		if err := ValidateSale(first, []valueobject.AvailableBatch{b}, decimal.NewFromInt(400), decimal.NewFromInt(1000), price); err != nil {
			t.Fatalf("expected first sale to pass, got %v", err)
		}

		remainingPool := decimal.NewFromInt(1000).Sub(decimal.NewFromInt(400))
		if !remainingPool.Equal(decimal.NewFromInt(600)) {
			t.Fatalf("expected remaining pool 600, got %s", remainingPool)
		}

		second := []valueobject.AllocationRequest{{BatchID: b.BatchID, Quantity: 2}}
		err := ValidateSale(second, []valueobject.AvailableBatch{b}, decimal.NewFromInt(700), remainingPool, price)
		assertAllocationCode(t, err, domainerror.ErrCodeDeductionExceedsPool)
	})
}

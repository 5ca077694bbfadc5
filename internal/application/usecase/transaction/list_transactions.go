package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles transaction listing with filters.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	allocationRepo  adapter.AllocationRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	allocationRepo adapter.AllocationRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		allocationRepo:  allocationRepo,
	}
}

// Execute lists the user's transactions, newest first. Sales carry their
// batch allocations.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	allocations, err := uc.allocationRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	allocationsBySale := make(map[uuid.UUID][]*AllocationOutput)
	for _, alloc := range allocations {
		allocationsBySale[alloc.SaleTransactionID] = append(allocationsBySale[alloc.SaleTransactionID], toAllocationOutput(alloc))
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, len(transactions)),
	}
	for _, t := range transactions {
		out := toTransactionOutput(t)
		if t.IsSell() {
			out.Allocations = allocationsBySale[t.ID]
		}
		output.Transactions = append(output.Transactions, out)
	}

	return output, nil
}

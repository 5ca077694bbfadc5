package cost

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// CostOutput represents an input cost in use case outputs.
type CostOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    entity.CostCategory
	Amount      decimal.Decimal
	OccurredOn  time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toCostOutput(c *entity.InputCost) *CostOutput {
	return &CostOutput{
		ID:          c.ID,
		UserID:      c.UserID,
		Category:    c.Category,
		Amount:      c.Amount,
		OccurredOn:  c.OccurredOn,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// GetDataRangeInput represents the input for getting the ledger date range.
type GetDataRangeInput struct {
	UserID uuid.UUID
}

// GetDataRangeOutput represents the output of getting the ledger date range.
type GetDataRangeOutput struct {
	DateRange *DateRange
}

// GetDataRangeUseCase returns the date boundaries of the user's ledger so the
// client can bound its range picker.
type GetDataRangeUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(dashboardRepo DashboardRepository) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{dashboardRepo: dashboardRepo}
}

// Execute retrieves the ledger date range.
func (uc *GetDataRangeUseCase) Execute(ctx context.Context, input GetDataRangeInput) (*GetDataRangeOutput, error) {
	dateRange, err := uc.dashboardRepo.GetDateRange(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	return &GetDataRangeOutput{DateRange: dateRange}, nil
}

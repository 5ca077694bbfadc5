package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetDailySeriesInput represents the input for getting the daily series.
type GetDailySeriesInput struct {
	UserID uuid.UUID
	Range  RangeInput
}

// GetDailySeriesOutput represents the output of getting the daily series.
type GetDailySeriesOutput struct {
	StartDate time.Time
	EndDate   time.Time
	Series    []DailyPoint
}

// GetDailySeriesUseCase handles the per-day dashboard chart data. The series
// is recomputed from the ledger on every call; no incremental state is kept.
type GetDailySeriesUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetDailySeriesUseCase creates a new GetDailySeriesUseCase instance.
func NewGetDailySeriesUseCase(dashboardRepo DashboardRepository) *GetDailySeriesUseCase {
	return &GetDailySeriesUseCase{dashboardRepo: dashboardRepo}
}

// Execute computes the daily series for the resolved date range.
func (uc *GetDailySeriesUseCase) Execute(ctx context.Context, input GetDailySeriesInput) (*GetDailySeriesOutput, error) {
	start, end, err := input.Range.resolve(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	transactions, err := uc.dashboardRepo.GetTransactionsInRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	costs, err := uc.dashboardRepo.GetCostsInRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load input costs: %w", err)
	}

	return &GetDailySeriesOutput{
		StartDate: start,
		EndDate:   end,
		Series:    ComputeDailySeries(transactions, costs, start, end),
	}, nil
}

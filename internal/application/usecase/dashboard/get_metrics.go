package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RangeInput carries either a preset or explicit start/end dates. A non-empty
// preset wins over the explicit dates.
type RangeInput struct {
	Preset    RangePreset
	StartDate time.Time
	EndDate   time.Time
}

// resolve turns the range input into concrete bounds.
func (r RangeInput) resolve(now time.Time) (start, end time.Time, err error) {
	if r.Preset != "" {
		return ResolvePreset(r.Preset, now)
	}
	if err := ValidateRange(r.StartDate, r.EndDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return r.StartDate, r.EndDate, nil
}

// GetMetricsInput represents the input for getting dashboard metrics.
type GetMetricsInput struct {
	UserID uuid.UUID
	Range  RangeInput
}

// GetMetricsOutput represents the output of getting dashboard metrics.
type GetMetricsOutput struct {
	StartDate time.Time
	EndDate   time.Time
	Metrics   Metrics
}

// GetMetricsUseCase handles the dashboard headline metrics.
type GetMetricsUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetMetricsUseCase creates a new GetMetricsUseCase instance.
func NewGetMetricsUseCase(dashboardRepo DashboardRepository) *GetMetricsUseCase {
	return &GetMetricsUseCase{dashboardRepo: dashboardRepo}
}

// Execute computes the metrics for the resolved date range.
func (uc *GetMetricsUseCase) Execute(ctx context.Context, input GetMetricsInput) (*GetMetricsOutput, error) {
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

	return &GetMetricsOutput{
		StartDate: start,
		EndDate:   end,
		Metrics:   ComputeMetrics(transactions, costs),
	}, nil
}

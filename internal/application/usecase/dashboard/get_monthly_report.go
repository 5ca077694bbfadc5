package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetMonthlyReportInput represents the input for getting the monthly report.
type GetMonthlyReportInput struct {
	UserID uuid.UUID
	Range  RangeInput
}

// GetMonthlyReportOutput represents the output of getting the monthly report.
type GetMonthlyReportOutput struct {
	StartDate time.Time
	EndDate   time.Time
	Months    []MonthlyPoint
}

// GetMonthlyReportUseCase handles the month-by-month activity report.
type GetMonthlyReportUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
func NewGetMonthlyReportUseCase(dashboardRepo DashboardRepository) *GetMonthlyReportUseCase {
	return &GetMonthlyReportUseCase{dashboardRepo: dashboardRepo}
}

// Execute computes the monthly report for the resolved date range.
func (uc *GetMonthlyReportUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*GetMonthlyReportOutput, error) {
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

	return &GetMonthlyReportOutput{
		StartDate: start,
		EndDate:   end,
		Months:    ComputeMonthlyReport(transactions, costs, start, end),
	}, nil
}

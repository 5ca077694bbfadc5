// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/herd-ledger/backend/internal/application/usecase/dashboard"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard and report endpoints.
type DashboardController struct {
	metricsUseCase       *dashboard.GetMetricsUseCase
	dailySeriesUseCase   *dashboard.GetDailySeriesUseCase
	monthlyReportUseCase *dashboard.GetMonthlyReportUseCase
	dataRangeUseCase     *dashboard.GetDataRangeUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	metricsUseCase *dashboard.GetMetricsUseCase,
	dailySeriesUseCase *dashboard.GetDailySeriesUseCase,
	monthlyReportUseCase *dashboard.GetMonthlyReportUseCase,
	dataRangeUseCase *dashboard.GetDataRangeUseCase,
) *DashboardController {
	return &DashboardController{
		metricsUseCase:       metricsUseCase,
		dailySeriesUseCase:   dailySeriesUseCase,
		monthlyReportUseCase: monthlyReportUseCase,
		dataRangeUseCase:     dataRangeUseCase,
	}
}

// GetMetrics handles GET /dashboard/metrics requests.
func (c *DashboardController) GetMetrics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetMetricsInput{
		UserID: userID,
		Range:  parseRangeInput(ctx),
	}

	output, err := c.metricsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetricsResponse(output))
}

// GetDailySeries handles GET /dashboard/daily requests.
func (c *DashboardController) GetDailySeries(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetDailySeriesInput{
		UserID: userID,
		Range:  parseRangeInput(ctx),
	}

	output, err := c.dailySeriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySeriesResponse(output))
}

// GetMonthlyReport handles GET /dashboard/monthly requests.
func (c *DashboardController) GetMonthlyReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetMonthlyReportInput{
		UserID: userID,
		Range:  parseRangeInput(ctx),
	}

	output, err := c.monthlyReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// GetDataRange handles GET /dashboard/data-range requests.
func (c *DashboardController) GetDataRange(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetDataRangeInput{
		UserID: userID,
	}

	output, err := c.dataRangeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDataRangeResponse(output))
}

// parseRangeInput builds a RangeInput from query parameters. A preset takes
// precedence over explicit dates.
func parseRangeInput(ctx *gin.Context) dashboard.RangeInput {
	input := dashboard.RangeInput{
		Preset: dashboard.RangePreset(ctx.Query("preset")),
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			input.StartDate = startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			input.EndDate = endDate
		}
	}

	return input
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

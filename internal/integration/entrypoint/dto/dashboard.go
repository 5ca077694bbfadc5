// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/herd-ledger/backend/internal/application/usecase/dashboard"
)

// MetricsResponse represents the dashboard headline metrics in API responses.
type MetricsResponse struct {
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	NetHeadcount        int     `json:"net_headcount"`
	SalesRevenue        float64 `json:"sales_revenue"`
	InputCostTotal      float64 `json:"input_cost_total"`
	InputCostDeductions float64 `json:"input_cost_deductions"`
	PnL                 float64 `json:"pnl"`
}

// DailyPointResponse represents a single day in the dashboard chart.
type DailyPointResponse struct {
	Date          string  `json:"date"`
	Sales         float64 `json:"sales"`
	Inputs        float64 `json:"inputs"`
	Deductions    float64 `json:"deductions"`
	CumulativePnL float64 `json:"cumulative_pnl"`
}

// DailySeriesResponse represents the response for the daily series endpoint.
type DailySeriesResponse struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Series    []DailyPointResponse `json:"series"`
}

// MonthlyPointResponse represents a single month in the monthly report.
type MonthlyPointResponse struct {
	Month     string  `json:"month"`
	Label     string  `json:"label"`
	Purchases float64 `json:"purchases"`
	Sales     float64 `json:"sales"`
	Costs     float64 `json:"costs"`
	PnL       float64 `json:"pnl"`
}

// MonthlyReportResponse represents the response for the monthly report endpoint.
type MonthlyReportResponse struct {
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Months    []MonthlyPointResponse `json:"months"`
}

// DataRangeResponse represents the ledger date boundaries in API responses.
type DataRangeResponse struct {
	OldestDate        *string `json:"oldest_date"`
	NewestDate        *string `json:"newest_date"`
	TotalTransactions int     `json:"total_transactions"`
}

// ToMetricsResponse converts a GetMetricsOutput to a MetricsResponse DTO.
func ToMetricsResponse(output *dashboard.GetMetricsOutput) MetricsResponse {
	salesRevenue, _ := output.Metrics.SalesRevenue.Float64()
	inputCostTotal, _ := output.Metrics.InputCostTotal.Float64()
	deductions, _ := output.Metrics.InputCostDeductions.Float64()
	pnl, _ := output.Metrics.PnL.Float64()

	return MetricsResponse{
		StartDate:           output.StartDate.Format("2006-01-02"),
		EndDate:             output.EndDate.Format("2006-01-02"),
		NetHeadcount:        output.Metrics.NetHeadcount,
		SalesRevenue:        salesRevenue,
		InputCostTotal:      inputCostTotal,
		InputCostDeductions: deductions,
		PnL:                 pnl,
	}
}

// ToDailySeriesResponse converts a GetDailySeriesOutput to a DailySeriesResponse DTO.
func ToDailySeriesResponse(output *dashboard.GetDailySeriesOutput) DailySeriesResponse {
	series := make([]DailyPointResponse, len(output.Series))
	for i, point := range output.Series {
		sales, _ := point.Sales.Float64()
		inputs, _ := point.Inputs.Float64()
		deductions, _ := point.Deductions.Float64()
		cumulative, _ := point.CumulativePnL.Float64()

		series[i] = DailyPointResponse{
			Date:          point.Date.Format("2006-01-02"),
			Sales:         sales,
			Inputs:        inputs,
			Deductions:    deductions,
			CumulativePnL: cumulative,
		}
	}

	return DailySeriesResponse{
		StartDate: output.StartDate.Format("2006-01-02"),
		EndDate:   output.EndDate.Format("2006-01-02"),
		Series:    series,
	}
}

// ToMonthlyReportResponse converts a GetMonthlyReportOutput to a MonthlyReportResponse DTO.
func ToMonthlyReportResponse(output *dashboard.GetMonthlyReportOutput) MonthlyReportResponse {
	months := make([]MonthlyPointResponse, len(output.Months))
	for i, month := range output.Months {
		purchases, _ := month.Purchases.Float64()
		sales, _ := month.Sales.Float64()
		costs, _ := month.Costs.Float64()
		pnl, _ := month.PnL.Float64()

		months[i] = MonthlyPointResponse{
			Month:     month.MonthStart.Format("2006-01"),
			Label:     month.Label,
			Purchases: purchases,
			Sales:     sales,
			Costs:     costs,
			PnL:       pnl,
		}
	}

	return MonthlyReportResponse{
		StartDate: output.StartDate.Format("2006-01-02"),
		EndDate:   output.EndDate.Format("2006-01-02"),
		Months:    months,
	}
}

// ToDataRangeResponse converts a GetDataRangeOutput to a DataRangeResponse DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	response := DataRangeResponse{
		TotalTransactions: output.DateRange.TotalTransactions,
	}

	if output.DateRange.OldestDate != nil {
		oldest := output.DateRange.OldestDate.Format("2006-01-02")
		response.OldestDate = &oldest
	}
	if output.DateRange.NewestDate != nil {
		newest := output.DateRange.NewestDate.Format("2006-01-02")
		response.NewestDate = &newest
	}

	return response
}

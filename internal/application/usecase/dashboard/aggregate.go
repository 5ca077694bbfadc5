package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

// Metrics holds the headline numbers for a date range.
//
// PnL is salesRevenue minus inputCostTotal minus inputCostDeductions. Cattle
// purchase cost is deliberately excluded here; it is recovered through
// deductions attributed at sale time, not expensed at purchase time.
type Metrics struct {
	NetHeadcount        int
	SalesRevenue        decimal.Decimal
	InputCostTotal      decimal.Decimal
	InputCostDeductions decimal.Decimal
	PnL                 decimal.Decimal
}

// DailyPoint is one day of the dashboard series.
type DailyPoint struct {
	Date          time.Time
	Sales         decimal.Decimal
	Inputs        decimal.Decimal
	Deductions    decimal.Decimal
	CumulativePnL decimal.Decimal
}

// MonthlyPoint is one month of the activity report. Unlike the dashboard PnL,
// the monthly report expenses purchases directly: pnl = sales − purchases −
// costs.
type MonthlyPoint struct {
	MonthStart time.Time
	Label      string
	Purchases  decimal.Decimal
	Sales      decimal.Decimal
	Costs      decimal.Decimal
	PnL        decimal.Decimal
}

// ComputeMetrics aggregates the headline numbers from raw ledger rows. The
// caller is expected to pass rows already filtered to the date range.
func ComputeMetrics(transactions []*entity.CattleTransaction, costs []*entity.InputCost) Metrics {
	m := Metrics{
		SalesRevenue:        decimal.Zero,
		InputCostTotal:      decimal.Zero,
		InputCostDeductions: decimal.Zero,
	}

	for _, t := range transactions {
		if t.IsBuy() {
			m.NetHeadcount += t.Quantity
		} else {
			m.NetHeadcount -= t.Quantity
			m.SalesRevenue = m.SalesRevenue.Add(t.TotalAmount)
			m.InputCostDeductions = m.InputCostDeductions.Add(t.InputCostDeduction)
		}
	}

	for _, c := range costs {
		m.InputCostTotal = m.InputCostTotal.Add(c.Amount)
	}

	m.PnL = m.SalesRevenue.Sub(m.InputCostTotal).Sub(m.InputCostDeductions)
	return m
}

// ComputeDailySeries buckets sales, input costs, and deductions by calendar
// day over [start, end] inclusive. The result has exactly one entry per day,
// ascending, with zero-activity days filled in. CumulativePnL runs from zero
// on the first day.
func ComputeDailySeries(transactions []*entity.CattleTransaction, costs []*entity.InputCost, start, end time.Time) []DailyPoint {
	salesByDay := make(map[string]decimal.Decimal)
	deductionsByDay := make(map[string]decimal.Decimal)
	inputsByDay := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if !t.IsSell() {
			continue
		}
		key := dayKey(t.OccurredOn)
		salesByDay[key] = salesByDay[key].Add(t.TotalAmount)
		deductionsByDay[key] = deductionsByDay[key].Add(t.InputCostDeduction)
	}

	for _, c := range costs {
		key := dayKey(c.OccurredOn)
		inputsByDay[key] = inputsByDay[key].Add(c.Amount)
	}

	days := GenerateDaySeries(start, end)
	series := make([]DailyPoint, 0, len(days))
	cumulative := decimal.Zero

	for _, day := range days {
		key := dayKey(day)
		point := DailyPoint{
			Date:       day,
			Sales:      salesByDay[key],
			Inputs:     inputsByDay[key],
			Deductions: deductionsByDay[key],
		}
		cumulative = cumulative.Add(point.Sales.Sub(point.Inputs).Sub(point.Deductions))
		point.CumulativePnL = cumulative
		series = append(series, point)
	}

	return series
}

// ComputeMonthlyReport buckets purchases, sales, and costs by calendar month
// over the months touching [start, end], gap-free and ascending.
func ComputeMonthlyReport(transactions []*entity.CattleTransaction, costs []*entity.InputCost, start, end time.Time) []MonthlyPoint {
	purchasesByMonth := make(map[string]decimal.Decimal)
	salesByMonth := make(map[string]decimal.Decimal)
	costsByMonth := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		key := monthKey(t.OccurredOn)
		if t.IsBuy() {
			purchasesByMonth[key] = purchasesByMonth[key].Add(t.TotalAmount)
		} else {
			salesByMonth[key] = salesByMonth[key].Add(t.TotalAmount)
		}
	}

	for _, c := range costs {
		key := monthKey(c.OccurredOn)
		costsByMonth[key] = costsByMonth[key].Add(c.Amount)
	}

	months := GenerateMonthSeries(start, end)
	report := make([]MonthlyPoint, 0, len(months))

	for _, month := range months {
		key := monthKey(month)
		point := MonthlyPoint{
			MonthStart: month,
			Label:      MonthLabel(month),
			Purchases:  purchasesByMonth[key],
			Sales:      salesByMonth[key],
			Costs:      costsByMonth[key],
		}
		point.PnL = point.Sales.Sub(point.Purchases).Sub(point.Costs)
		report = append(report, point)
	}

	return report
}

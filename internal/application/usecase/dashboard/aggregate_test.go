// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("invalid day %q: %v", value, err)
	}
	return d
}

func purchaseOn(userID uuid.UUID, occurredOn time.Time, quantity int, pricePerHead int64) *entity.CattleTransaction {
	return entity.NewPurchase(userID, quantity, decimal.NewFromInt(pricePerHead), "", nil, occurredOn, "")
}

func saleOn(userID uuid.UUID, occurredOn time.Time, quantity int, total, deduction int64) *entity.CattleTransaction {
	return entity.NewSale(userID, quantity, decimal.NewFromInt(total), decimal.NewFromInt(deduction), occurredOn, "")
}

func costOn(userID uuid.UUID, occurredOn time.Time, amount int64) *entity.InputCost {
	return entity.NewInputCost(userID, entity.CostCategoryFeed, decimal.NewFromInt(amount), occurredOn, "")
}

func TestComputeMetrics(t *testing.T) {
	userID := uuid.New()

	// Buy 10 head at $500 on day 1, costs $200 on day 5, sell 10 head for
	// $8000 with a $1000 deduction on day 10. Purchase cost is excluded from
	// PnL, so pnl = 8000 - 200 - 1000 = 6800 and the herd nets out to zero.
	t.Run("full cycle scenario", func(t *testing.T) {
		transactions := []*entity.CattleTransaction{
			purchaseOn(userID, day(t, "2024-03-01"), 10, 500),
			saleOn(userID, day(t, "2024-03-10"), 10, 8000, 1000),
		}
		costs := []*entity.InputCost{
			costOn(userID, day(t, "2024-03-05"), 200),
		}

		m := ComputeMetrics(transactions, costs)

		if m.NetHeadcount != 0 {
			t.Errorf("expected net headcount 0, got %d", m.NetHeadcount)
		}
		if !m.SalesRevenue.Equal(decimal.NewFromInt(8000)) {
			t.Errorf("expected sales revenue 8000, got %s", m.SalesRevenue)
		}
		if !m.InputCostTotal.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected input cost total 200, got %s", m.InputCostTotal)
		}
		if !m.InputCostDeductions.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected deductions 1000, got %s", m.InputCostDeductions)
		}
		if !m.PnL.Equal(decimal.NewFromInt(6800)) {
			t.Errorf("expected pnl 6800, got %s", m.PnL)
		}
	})

	t.Run("empty range yields zero metrics", func(t *testing.T) {
		m := ComputeMetrics(nil, nil)
		if m.NetHeadcount != 0 || !m.PnL.IsZero() || !m.SalesRevenue.IsZero() {
			t.Errorf("expected zero metrics, got %+v", m)
		}
	})

	// Metrics over the union of two disjoint ranges must equal the sums of
	// the metrics over each range, for all four monetary fields.
	t.Run("additivity over disjoint ranges", func(t *testing.T) {
		march := []*entity.CattleTransaction{
			purchaseOn(userID, day(t, "2024-03-01"), 10, 500),
			saleOn(userID, day(t, "2024-03-20"), 4, 4000, 150),
		}
		marchCosts := []*entity.InputCost{costOn(userID, day(t, "2024-03-10"), 300)}

		april := []*entity.CattleTransaction{
			saleOn(userID, day(t, "2024-04-02"), 6, 7000, 250),
		}
		aprilCosts := []*entity.InputCost{costOn(userID, day(t, "2024-04-15"), 120)}

		first := ComputeMetrics(march, marchCosts)
		second := ComputeMetrics(april, aprilCosts)
		union := ComputeMetrics(append(append([]*entity.CattleTransaction{}, march...), april...),
			append(append([]*entity.InputCost{}, marchCosts...), aprilCosts...))

		if union.NetHeadcount != first.NetHeadcount+second.NetHeadcount {
			t.Errorf("net headcount not additive: %d vs %d + %d", union.NetHeadcount, first.NetHeadcount, second.NetHeadcount)
		}
		if !union.SalesRevenue.Equal(first.SalesRevenue.Add(second.SalesRevenue)) {
			t.Errorf("sales revenue not additive")
		}
		if !union.InputCostTotal.Equal(first.InputCostTotal.Add(second.InputCostTotal)) {
			t.Errorf("input cost total not additive")
		}
		if !union.InputCostDeductions.Equal(first.InputCostDeductions.Add(second.InputCostDeductions)) {
			t.Errorf("deductions not additive")
		}
		if !union.PnL.Equal(first.PnL.Add(second.PnL)) {
			t.Errorf("pnl not additive")
		}
	})
}

func TestComputeDailySeries(t *testing.T) {
	userID := uuid.New()

	t.Run("one entry per day inclusive and strictly ascending", func(t *testing.T) {
		start := day(t, "2024-03-01")
		end := day(t, "2024-03-10")

		series := ComputeDailySeries(nil, nil, start, end)

		if len(series) != 10 {
			t.Fatalf("expected 10 entries, got %d", len(series))
		}
		for i := 1; i < len(series); i++ {
			if !series[i].Date.After(series[i-1].Date) {
				t.Fatalf("series not strictly ascending at index %d", i)
			}
			if series[i].Date.Sub(series[i-1].Date) != 24*time.Hour {
				t.Fatalf("gap in series at index %d", i)
			}
		}
	})

	t.Run("single day range has one entry", func(t *testing.T) {
		d := day(t, "2024-03-01")
		series := ComputeDailySeries(nil, nil, d, d)
		if len(series) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(series))
		}
	})

	t.Run("cumulative pnl runs from zero on the first day", func(t *testing.T) {
		start := day(t, "2024-03-01")
		end := day(t, "2024-03-10")
		transactions := []*entity.CattleTransaction{
			saleOn(userID, day(t, "2024-03-10"), 10, 8000, 1000),
		}
		costs := []*entity.InputCost{
			costOn(userID, day(t, "2024-03-05"), 200),
		}

		series := ComputeDailySeries(transactions, costs, start, end)

		if !series[0].CumulativePnL.IsZero() {
			t.Errorf("expected day 1 cumulative pnl 0, got %s", series[0].CumulativePnL)
		}
		if !series[4].CumulativePnL.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected day 5 cumulative pnl -200, got %s", series[4].CumulativePnL)
		}
		last := series[len(series)-1]
		if !last.CumulativePnL.Equal(decimal.NewFromInt(6800)) {
			t.Errorf("expected final cumulative pnl 6800, got %s", last.CumulativePnL)
		}
		if !last.Sales.Equal(decimal.NewFromInt(8000)) {
			t.Errorf("expected final day sales 8000, got %s", last.Sales)
		}
		if !last.Deductions.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected final day deductions 1000, got %s", last.Deductions)
		}
	})

	t.Run("zero-activity days are filled with zeros", func(t *testing.T) {
		start := day(t, "2024-03-01")
		end := day(t, "2024-03-03")

		series := ComputeDailySeries(nil, nil, start, end)

		for _, point := range series {
			if !point.Sales.IsZero() || !point.Inputs.IsZero() || !point.Deductions.IsZero() {
				t.Errorf("expected zero activity on %s", point.Date.Format("2006-01-02"))
			}
		}
	})
}

func TestComputeMonthlyReport(t *testing.T) {
	userID := uuid.New()

	t.Run("buckets by month with gap-free series", func(t *testing.T) {
		transactions := []*entity.CattleTransaction{
			purchaseOn(userID, day(t, "2024-01-15"), 10, 500),
			saleOn(userID, day(t, "2024-03-20"), 10, 8000, 0),
		}
		costs := []*entity.InputCost{
			costOn(userID, day(t, "2024-01-20"), 300),
		}

		report := ComputeMonthlyReport(transactions, costs, day(t, "2024-01-01"), day(t, "2024-03-31"))

		if len(report) != 3 {
			t.Fatalf("expected 3 months, got %d", len(report))
		}
		if report[0].Label != "Jan 2024" {
			t.Errorf("expected label Jan 2024, got %s", report[0].Label)
		}

		// January: purchases 5000, costs 300, pnl = 0 - 5000 - 300.
		if !report[0].Purchases.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected January purchases 5000, got %s", report[0].Purchases)
		}
		if !report[0].PnL.Equal(decimal.NewFromInt(-5300)) {
			t.Errorf("expected January pnl -5300, got %s", report[0].PnL)
		}

		// February: no activity.
		if !report[1].Purchases.IsZero() || !report[1].Sales.IsZero() || !report[1].Costs.IsZero() {
			t.Errorf("expected empty February, got %+v", report[1])
		}

		// March: sales 8000.
		if !report[2].Sales.Equal(decimal.NewFromInt(8000)) {
			t.Errorf("expected March sales 8000, got %s", report[2].Sales)
		}
		if !report[2].PnL.Equal(decimal.NewFromInt(8000)) {
			t.Errorf("expected March pnl 8000, got %s", report[2].PnL)
		}
	})
}

package dashboard

import (
	"fmt"
	"time"

	domainerror "github.com/herd-ledger/backend/internal/domain/error"
)

// RangePreset names a relative date range the client can request instead of
// explicit start/end dates.
type RangePreset string

const (
	PresetLast7      RangePreset = "last7"
	PresetLast30     RangePreset = "last30"
	PresetThisMonth  RangePreset = "thisMonth"
	PresetLastMonth  RangePreset = "lastMonth"
	PresetYearToDate RangePreset = "ytd"
)

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// ResolvePreset turns a range preset into explicit start and end dates
// relative to now. Both bounds are truncated to calendar days.
func ResolvePreset(preset RangePreset, now time.Time) (start, end time.Time, err error) {
	today := truncateToDay(now)

	switch preset {
	case PresetLast7:
		return today.AddDate(0, 0, -6), today, nil
	case PresetLast30:
		return today.AddDate(0, 0, -29), today, nil
	case PresetThisMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, today, nil
	case PresetLastMonth:
		firstOfThisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		start = firstOfThisMonth.AddDate(0, -1, 0)
		return start, firstOfThisMonth.AddDate(0, 0, -1), nil
	case PresetYearToDate:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return start, today, nil
	default:
		return time.Time{}, time.Time{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidRangePreset,
			fmt.Sprintf("unknown range preset %q", preset),
			domainerror.ErrInvalidRangePreset,
		)
	}
}

// ValidateRange checks explicit start/end dates.
func ValidateRange(start, end time.Time) error {
	if start.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"end date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if end.Before(start) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// GenerateDaySeries returns every calendar day from start through end
// inclusive, ascending, truncated to days.
func GenerateDaySeries(start, end time.Time) []time.Time {
	first := truncateToDay(start)
	last := truncateToDay(end)

	days := make([]time.Time, 0)
	for current := first; !current.After(last); current = current.AddDate(0, 0, 1) {
		days = append(days, current)
	}
	return days
}

// GenerateMonthSeries returns the first day of every month from the month
// containing start through the month containing end, ascending.
func GenerateMonthSeries(start, end time.Time) []time.Time {
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())

	months := make([]time.Time, 0)
	for !current.After(last) {
		months = append(months, current)
		current = current.AddDate(0, 1, 0)
	}
	return months
}

// MonthLabel formats a month as e.g. "Mar 2025".
func MonthLabel(monthStart time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[monthStart.Month()], monthStart.Year())
}

// dayKey buckets a timestamp by calendar day.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// monthKey buckets a timestamp by calendar month.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/herd-ledger/backend/internal/domain/error"
)

func TestResolvePreset(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		preset    RangePreset
		wantStart string
		wantEnd   string
	}{
		{PresetLast7, "2024-03-09", "2024-03-15"},
		{PresetLast30, "2024-02-15", "2024-03-15"},
		{PresetThisMonth, "2024-03-01", "2024-03-15"},
		{PresetLastMonth, "2024-02-01", "2024-02-29"},
		{PresetYearToDate, "2024-01-01", "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			start, end, err := ResolvePreset(tt.preset, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("expected start %s, got %s", tt.wantStart, got)
			}
			if got := end.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("expected end %s, got %s", tt.wantEnd, got)
			}
		})
	}

	t.Run("unknown preset is rejected", func(t *testing.T) {
		_, _, err := ResolvePreset("lastYear", now)
		if !errors.Is(err, domainerror.ErrInvalidRangePreset) {
			t.Fatalf("expected ErrInvalidRangePreset, got %v", err)
		}
	})
}

func TestValidateRange(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("valid range passes", func(t *testing.T) {
		if err := ValidateRange(start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing start is rejected", func(t *testing.T) {
		err := ValidateRange(time.Time{}, end)
		if !errors.Is(err, domainerror.ErrMissingStartDate) {
			t.Fatalf("expected ErrMissingStartDate, got %v", err)
		}
	})

	t.Run("missing end is rejected", func(t *testing.T) {
		err := ValidateRange(start, time.Time{})
		if !errors.Is(err, domainerror.ErrMissingEndDate) {
			t.Fatalf("expected ErrMissingEndDate, got %v", err)
		}
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		err := ValidateRange(end, start)
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestGenerateDaySeries(t *testing.T) {
	start := time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)

	days := GenerateDaySeries(start, end)

	// Leap year: Feb 27, 28, 29, Mar 1, 2.
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if days[2].Format("2006-01-02") != "2024-02-29" {
		t.Errorf("expected leap day at index 2, got %s", days[2].Format("2006-01-02"))
	}
}

func TestGenerateMonthSeries(t *testing.T) {
	start := time.Date(2023, time.November, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	months := GenerateMonthSeries(start, end)

	if len(months) != 4 {
		t.Fatalf("expected 4 months, got %d", len(months))
	}
	if MonthLabel(months[0]) != "Nov 2023" {
		t.Errorf("expected Nov 2023, got %s", MonthLabel(months[0]))
	}
	if MonthLabel(months[3]) != "Feb 2024" {
		t.Errorf("expected Feb 2024, got %s", MonthLabel(months[3]))
	}
}

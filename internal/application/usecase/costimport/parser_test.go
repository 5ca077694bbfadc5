// Package costimport contains use cases for importing input costs from bank
// statement CSV files.
package costimport

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
)

func TestParseStatement(t *testing.T) {
	t.Run("keeps only debits as positive magnitudes", func(t *testing.T) {
		input := strings.Join([]string{
			"Date,Description,Amount,Balance",
			"20240105,FEED STORE PURCHASE,-450.00,10550.00",
			"20240110,CATTLE SALE DEPOSIT,8000.00,18550.00",
			"20240112,VET CLINIC,-120.50,18429.50",
		}, "\n")

		rows, err := ParseStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(rows) != 2 {
			t.Fatalf("expected 2 debit rows, got %d", len(rows))
		}
		if !rows[0].Amount.Equal(decimal.RequireFromString("450.00")) {
			t.Errorf("expected amount 450.00, got %s", rows[0].Amount)
		}
		if rows[0].Description != "FEED STORE PURCHASE" {
			t.Errorf("unexpected description %q", rows[0].Description)
		}
		if !rows[1].Amount.Equal(decimal.RequireFromString("120.50")) {
			t.Errorf("expected amount 120.50, got %s", rows[1].Amount)
		}
	})

	t.Run("parses YYYYMMDD dates", func(t *testing.T) {
		input := "Date,Description,Amount,Balance\n20240229,LEAP DAY EXPENSE,-10.00,100.00\n"

		rows, err := ParseStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		d := rows[0].Date
		if d.Year() != 2024 || d.Month() != 2 || d.Day() != 29 {
			t.Errorf("expected 2024-02-29, got %s", d.Format("2006-01-02"))
		}
	})

	t.Run("strips comma grouping from amounts", func(t *testing.T) {
		input := "Date,Description,Amount,Balance\n20240105,\"HAY DELIVERY\",\"-1,234.56\",\"8,765.44\"\n"

		rows, err := ParseStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !rows[0].Amount.Equal(decimal.RequireFromString("1234.56")) {
			t.Errorf("expected amount 1234.56, got %s", rows[0].Amount)
		}
	})

	t.Run("rows default to the other category with sequential indexes", func(t *testing.T) {
		input := strings.Join([]string{
			"Date,Description,Amount,Balance",
			"20240101,A,-1.00,99.00",
			"20240102,B,5.00,104.00",
			"20240103,C,-2.00,102.00",
		}, "\n")

		rows, err := ParseStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i, row := range rows {
			if row.RowIndex != i {
				t.Errorf("expected row index %d, got %d", i, row.RowIndex)
			}
			if row.Category != entity.CostCategoryOther {
				t.Errorf("expected default category other, got %s", row.Category)
			}
		}
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		_, err := ParseStatement(strings.NewReader(""))
		if !errors.Is(err, domainerror.ErrEmptyStatement) {
			t.Fatalf("expected ErrEmptyStatement, got %v", err)
		}
	})

	t.Run("header-only file is rejected", func(t *testing.T) {
		_, err := ParseStatement(strings.NewReader("Date,Description,Amount,Balance\n"))
		if !errors.Is(err, domainerror.ErrEmptyStatement) {
			t.Fatalf("expected ErrEmptyStatement, got %v", err)
		}
	})

	t.Run("wrong header is rejected", func(t *testing.T) {
		_, err := ParseStatement(strings.NewReader("Foo,Bar,Baz\n1,2,3\n"))
		if !errors.Is(err, domainerror.ErrMalformedStatement) {
			t.Fatalf("expected ErrMalformedStatement, got %v", err)
		}
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		input := "Date,Description,Amount,Balance\n2024-01-05,FEED,-450.00,100.00\n"
		_, err := ParseStatement(strings.NewReader(input))
		if !errors.Is(err, domainerror.ErrMalformedStatement) {
			t.Fatalf("expected ErrMalformedStatement, got %v", err)
		}
	})

	t.Run("bad amount is rejected", func(t *testing.T) {
		input := "Date,Description,Amount,Balance\n20240105,FEED,abc,100.00\n"
		_, err := ParseStatement(strings.NewReader(input))
		if !errors.Is(err, domainerror.ErrMalformedStatement) {
			t.Fatalf("expected ErrMalformedStatement, got %v", err)
		}
	})

	t.Run("statement with only credits yields no rows", func(t *testing.T) {
		input := "Date,Description,Amount,Balance\n20240105,DEPOSIT,100.00,200.00\n"
		rows, err := ParseStatement(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})
}

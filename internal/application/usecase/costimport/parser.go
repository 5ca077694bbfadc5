// Package costimport contains use cases for importing input costs from bank
// statement CSV files.
package costimport

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/herd-ledger/backend/internal/domain/entity"
	domainerror "github.com/herd-ledger/backend/internal/domain/error"
)

// statement date format, e.g. 20240131.
const statementDateLayout = "20060102"

// ParsedRow is one statement row that qualifies as an input cost: a debit,
// kept as a positive magnitude, with a default category the user can change
// before committing.
type ParsedRow struct {
	// RowIndex is the zero-based position among parsed debit rows. Commit
	// selections reference rows by this index.
	RowIndex    int
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    entity.CostCategory
}

// ParseStatement reads a bank statement CSV with the header
// Date,Description,Amount,Balance. Dates are YYYYMMDD and amounts may carry
// comma grouping. Only negative amounts (debits) are kept; their sign is
// flipped so the resulting costs carry positive magnitudes.
func ParseStatement(r io.Reader) ([]ParsedRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeEmptyStatement,
			"statement contains no rows",
			domainerror.ErrEmptyStatement,
		)
	}
	if err != nil {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeMalformedStatement,
			"failed to read statement header",
			domainerror.ErrMalformedStatement,
		)
	}

	if len(header) < 3 || !strings.EqualFold(strings.TrimSpace(header[0]), "Date") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "Description") ||
		!strings.EqualFold(strings.TrimSpace(header[2]), "Amount") {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeMalformedStatement,
			"expected header Date,Description,Amount,Balance",
			domainerror.ErrMalformedStatement,
		)
	}

	rows := make([]ParsedRow, 0)
	sawRecord := false
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domainerror.NewCostError(
				domainerror.ErrCodeMalformedStatement,
				"failed to read statement row",
				domainerror.ErrMalformedStatement,
			)
		}
		if len(record) < 3 {
			continue
		}
		sawRecord = true

		date, err := time.Parse(statementDateLayout, strings.TrimSpace(record[0]))
		if err != nil {
			return nil, domainerror.NewCostError(
				domainerror.ErrCodeMalformedStatement,
				"invalid statement date "+record[0],
				domainerror.ErrMalformedStatement,
			)
		}

		amount, err := parseStatementAmount(record[2])
		if err != nil {
			return nil, domainerror.NewCostError(
				domainerror.ErrCodeMalformedStatement,
				"invalid statement amount "+record[2],
				domainerror.ErrMalformedStatement,
			)
		}

		// Credits are not costs.
		if !amount.IsNegative() {
			continue
		}

		rows = append(rows, ParsedRow{
			RowIndex:    len(rows),
			Date:        date,
			Description: strings.TrimSpace(record[1]),
			Amount:      amount.Neg(),
			Category:    entity.CostCategoryOther,
		})
	}

	if !sawRecord {
		return nil, domainerror.NewCostError(
			domainerror.ErrCodeEmptyStatement,
			"statement contains no rows",
			domainerror.ErrEmptyStatement,
		)
	}

	return rows, nil
}

// parseStatementAmount parses an amount like "-1,234.56" into a decimal.
func parseStatementAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	return decimal.NewFromString(cleaned)
}

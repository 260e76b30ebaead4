// Package export renders an account's expenses as CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"expensetracker/internal/models"
)

const (
	// ContentTypeCSV is the media type of WriteCSV output.
	ContentTypeCSV = "text/csv; charset=utf-8"
	// ContentTypeXLSX is the media type of WriteXLSX output.
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// amountColumn is the index of Amount in models.ExportHeader.
const amountColumn = 2

// WriteCSV writes the header line followed by one record per row.
func WriteCSV(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(models.ExportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// WriteXLSX writes a single-sheet workbook named after the account. Amounts
// are stored as numbers so spreadsheets can sum them.
func WriteXLSX(w io.Writer, sheet string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet = sheetName(sheet)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet %q: %w", sheet, err)
	}

	for i, h := range models.ExportHeader {
		if err := setCell(f, sheet, i+1, 1, h); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, value := range row {
			var v interface{} = value
			if c == amountColumn {
				if d, err := decimal.NewFromString(value); err == nil {
					v = d.InexactFloat64()
				}
			}
			if err := setCell(f, sheet, c+1, r+2, v); err != nil {
				return err
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 30)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 15)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

var sheetNameReplacer = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_")

// sheetName maps an account name onto the characters and length a worksheet
// name allows.
func sheetName(name string) string {
	name = strings.Trim(sheetNameReplacer.Replace(name), "'")
	if r := []rune(name); len(r) > excelize.MaxSheetNameLength {
		name = string(r[:excelize.MaxSheetNameLength])
	}
	if strings.TrimSpace(name) == "" {
		return "Expenses"
	}
	return name
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
	}
	return nil
}

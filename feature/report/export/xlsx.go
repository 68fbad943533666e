package export

import (
	"fmt"

	"lb-status/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the report workbook.
const (
	SheetSummary = "Summary"
	SheetList    = "List"
)

// SummaryColumns is the header of the summary sheet.
var SummaryColumns = []string{"Type", "Available", "Offline", "Unknown", "Unavailable", "Total"}

// NewWorkbook builds the report workbook: a Summary sheet with one line per
// class under a title, and a List sheet with every row. The caller closes it.
func NewWorkbook(title string, rows []reconcile.ReportRow, summary reconcile.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SheetList); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := writeSummarySheet(f, title, summary); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeListSheet(f, rows); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook builds the report workbook and saves it to path.
func WriteWorkbook(path, title string, rows []reconcile.ReportRow, summary reconcile.Summary) error {
	f, err := NewWorkbook(title, rows, summary)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, title string, summary reconcile.Summary) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(SheetSummary, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "A1", bold); err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetSummary, "A3", &SummaryColumns); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A3", "F3", bold); err != nil {
		return err
	}

	for i, class := range reconcile.Classes {
		counts := summary.For(class)
		line := []any{
			ClassLabel(class),
			counts[reconcile.StateAvailable],
			counts[reconcile.StateOffline],
			counts[reconcile.StateUnknown],
			counts[reconcile.StateUnavailable],
			counts.Total(),
		}
		cell, err := excelize.CoordinatesToCellName(1, 4+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetSummary, cell, &line); err != nil {
			return err
		}
	}
	return nil
}

func writeListSheet(f *excelize.File, rows []reconcile.ReportRow) error {
	sw, err := f.NewStreamWriter(SheetList)
	if err != nil {
		return err
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, r := range rows {
		record := Record(r)
		values := make([]any, len(record))
		for j, v := range record {
			values[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}
	return sw.Flush()
}

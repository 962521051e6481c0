package statfile

import (
	"fmt"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first worksheet of a workbook. Upstream notebooks
// sometimes export the table with DataFrame.to_excel instead of to_csv.
func readXLSX(path string) (table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table{}, fmt.Errorf("read xlsx: workbook has no sheets")
	}

	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return table{}, fmt.Errorf("read xlsx sheet %q: %w", sheets[0], err)
	}
	if len(grid) == 0 {
		return table{}, fmt.Errorf("read xlsx sheet %q: no header row", sheets[0])
	}
	return table{header: grid[0], rows: grid[1:]}, nil
}

// WriteXLSX writes rows as a single-sheet workbook using the loader's column
// contract, so the result reads back through Load unchanged.
func WriteXLSX(path string, rows []domain.StatRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(domain.RequiredColumns))
	for i, col := range domain.RequiredColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+2, err)
		}
		values := []any{
			r.Island,
			r.ProbabilityModel,
			r.ProbabilityHistorical,
			r.AvgPredictedMagnitude,
			r.AvgHistoricalMagnitude,
			r.Frequency,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

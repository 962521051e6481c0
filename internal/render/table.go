package render

import "github.com/couchcryptid/quake-risk-dashboard/internal/domain"

// TableRow is one formatted summary table line.
type TableRow struct {
	Island                 string
	ProbabilityModel       string
	ProbabilityHistorical  string
	AvgPredictedMagnitude  string
	AvgHistoricalMagnitude string
	Frequency              string
}

// SummaryTable is the formatted view of the filtered rows.
type SummaryTable struct {
	Columns []string
	Rows    []TableRow
}

// RenderTable formats rows for display. Column headers keep the source
// table's names. The input is not modified.
func RenderTable(rows []domain.StatRow) SummaryTable {
	out := SummaryTable{
		Columns: domain.RequiredColumns,
		Rows:    make([]TableRow, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, TableRow{
			Island:                 r.Island,
			ProbabilityModel:       FormatPercent(r.ProbabilityModel),
			ProbabilityHistorical:  FormatPercent(r.ProbabilityHistorical),
			AvgPredictedMagnitude:  FormatMagnitude(r.AvgPredictedMagnitude),
			AvgHistoricalMagnitude: FormatMagnitude(r.AvgHistoricalMagnitude),
			Frequency:              FormatCount(r.Frequency),
		})
	}
	return out
}

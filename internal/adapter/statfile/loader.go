// Package statfile reads the per-island statistics table produced by the
// upstream modelling pipeline. CSV and XLSX files share one column contract.
package statfile

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
)

// table is the raw string grid read from a file, header first.
type table struct {
	header []string
	rows   [][]string
}

// Load reads the statistics table at path. Any failure, including a single
// malformed numeric cell, is returned as a *domain.DataLoadError and no rows
// are kept.
func Load(path string) (*domain.Dataset, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, &domain.DataLoadError{Path: path, Err: err}
	}
	return domain.NewDataset(path, rows), nil
}

func readRows(path string) ([]domain.StatRow, error) {
	var (
		t   table
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt", "":
		t, err = readCSV(path)
	case ".xlsx":
		t, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return parseTable(t)
}

// parseTable maps the required columns by header name and parses each row.
func parseTable(t table) ([]domain.StatRow, error) {
	idx, err := columnIndex(t.header)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.StatRow, 0, len(t.rows))
	for i, rec := range t.rows {
		// Line numbers are 1-based and count the header.
		row, err := parseRow(rec, idx, i+2)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, col := range domain.RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, col)
		}
	}
	return idx, nil
}

func parseRow(rec []string, idx map[string]int, line int) (domain.StatRow, error) {
	cell := func(col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var row domain.StatRow
	row.Island = cell(domain.ColIsland)

	numeric := []struct {
		col string
		dst *float64
	}{
		{domain.ColProbabilityModel, &row.ProbabilityModel},
		{domain.ColProbabilityHistorical, &row.ProbabilityHistorical},
		{domain.ColAvgPredictedMagnitude, &row.AvgPredictedMagnitude},
		{domain.ColAvgHistoricalMagnitude, &row.AvgHistoricalMagnitude},
		{domain.ColFrequency, &row.Frequency},
	}
	for _, n := range numeric {
		v, err := parseNumber(cell(n.col))
		if err != nil {
			return domain.StatRow{}, fmt.Errorf("line %d column %q: %w", line, n.col, err)
		}
		*n.dst = v
	}

	if row.Frequency < 0 {
		return domain.StatRow{}, fmt.Errorf("line %d column %q: %w: negative count %v",
			line, domain.ColFrequency, domain.ErrMalformedNumber, row.Frequency)
	}
	return row, nil
}

// parseNumber accepts any finite float. Empty cells, "NaN" and infinities are
// rejected.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", domain.ErrMalformedNumber, s)
	}
	return v, nil
}

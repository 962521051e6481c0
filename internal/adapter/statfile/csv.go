package statfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// readCSV loads a delimited file through a gota DataFrame. Every column is
// read as a string so numeric parsing stays strict in parseTable; type
// detection would silently turn bad cells into NaN.
//
// The header is taken from the file as written. gota renames repeated
// column names, which would hide the first "freq" behind "freq_0".
func readCSV(path string) (table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	header, hasRows, err := readHeader(f)
	if err != nil {
		return table{}, err
	}
	// gota refuses a frame without records; a header-only table is valid.
	if !hasRows {
		return table{header: header}, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return table{}, fmt.Errorf("rewind csv: %w", err)
	}
	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return table{}, fmt.Errorf("read csv: %w", df.Err)
	}

	records := df.Records()
	if len(records) == 0 {
		return table{}, fmt.Errorf("read csv: no header row")
	}
	return table{header: header, rows: records[1:]}, nil
}

// readHeader returns the first record and whether any record follows it.
func readHeader(r io.Reader) ([]string, bool, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, false, fmt.Errorf("read csv: no header row")
	}
	if err != nil {
		return nil, false, fmt.Errorf("read csv header: %w", err)
	}

	_, err = cr.Read()
	if errors.Is(err, io.EOF) {
		return header, false, nil
	}
	// A malformed second line is left for gota to report.
	return header, true, nil
}

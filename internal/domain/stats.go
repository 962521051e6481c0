package domain

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Source table column names. Header matching is exact after trimming
// surrounding whitespace.
const (
	ColIsland                 = "island"
	ColProbabilityModel       = "probability_model (%)"
	ColProbabilityHistorical  = "probability_historis (%)"
	ColAvgPredictedMagnitude  = "avg_predicted_mag"
	ColAvgHistoricalMagnitude = "avg_mag"
	ColFrequency              = "freq"
)

// RequiredColumns lists every column the loader insists on, in display order.
var RequiredColumns = []string{
	ColIsland,
	ColProbabilityModel,
	ColProbabilityHistorical,
	ColAvgPredictedMagnitude,
	ColAvgHistoricalMagnitude,
	ColFrequency,
}

var (
	// ErrMissingColumn is wrapped when the input table lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformedNumber is wrapped when a numeric cell does not parse as a
	// finite number.
	ErrMalformedNumber = errors.New("malformed numeric value")

	// ErrUnsupportedFormat is wrapped when the input file extension is unknown.
	ErrUnsupportedFormat = errors.New("unsupported table format")
)

// DataLoadError reports why the statistics table could not be loaded. The
// dashboard refuses to start on this error; no partial view is served.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load statistics %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// StatRow holds the precomputed statistics for one island.
type StatRow struct {
	Island                 string  `json:"island"`
	ProbabilityModel       float64 `json:"probability_model"`
	ProbabilityHistorical  float64 `json:"probability_historical"`
	AvgPredictedMagnitude  float64 `json:"avg_predicted_magnitude"`
	AvgHistoricalMagnitude float64 `json:"avg_historical_magnitude"`
	// Frequency is a count, kept as float64 because upstream occasionally
	// writes it as "120.0"; renderers decide how to round or truncate it.
	Frequency float64 `json:"frequency"`
}

// Dataset is the loaded statistics table. It is never mutated after
// construction and may be shared by any number of concurrent requests.
type Dataset struct {
	rows     []StatRow
	path     string
	loadedAt time.Time
}

// NewDataset wraps rows read from path. The slice is copied.
func NewDataset(path string, rows []StatRow) *Dataset {
	return &Dataset{
		rows:     slices.Clone(rows),
		path:     path,
		loadedAt: clock.Now(),
	}
}

// Rows returns a copy of the loaded rows in file order.
func (d *Dataset) Rows() []StatRow {
	return slices.Clone(d.rows)
}

// Len reports the number of loaded rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Path is the file the rows were read from.
func (d *Dataset) Path() string {
	return d.path
}

// LoadedAt is when the dataset was created.
func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}

// Islands returns the distinct island names in order of first appearance.
func (d *Dataset) Islands() []string {
	return AvailableIslands(d.rows)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "island,probability_model (%),probability_historis (%),avg_predicted_mag,avg_mag,freq\n"

func writeTable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stats.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+body), 0o600))
	return path
}

func TestRun_Pass(t *testing.T) {
	path := writeTable(t, "Jawa,30,12,5.1,4.9,300\nBali,4,9,4.2,4.4,20\n")
	var out bytes.Buffer

	code := run(&out, path)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "All checks passed.")
}

func TestRun_UnmappedIslandIsWarning(t *testing.T) {
	path := writeTable(t, "Jawa,30,12,5.1,4.9,300\nAtlantis,50,40,6,6,1\n")
	var out bytes.Buffer

	code := run(&out, path)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), `island "Atlantis" has no centroid`)
}

func TestRun_LoadFailure(t *testing.T) {
	var out bytes.Buffer

	code := run(&out, filepath.Join(t.TempDir(), "missing.csv"))

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "FAIL")
}

func TestCheckValueRanges(t *testing.T) {
	p := checkValueRanges([]domain.StatRow{
		{Island: "Jawa", ProbabilityModel: 130, ProbabilityHistorical: 12, AvgPredictedMagnitude: 5, AvgHistoricalMagnitude: 11, Frequency: 12.5},
	})

	assert.False(t, p.passed())
	assert.Len(t, p.errors, 2)
	assert.Len(t, p.warnings, 1)
}

func TestCheckIslands(t *testing.T) {
	p := checkIslands([]domain.StatRow{{Island: "Jawa"}, {Island: "Jawa"}, {Island: ""}})

	assert.Len(t, p.errors, 1)
	assert.Len(t, p.warnings, 1)

	empty := checkIslands(nil)
	assert.False(t, empty.passed())
}

// Command checkdata inspects a per-island statistics table before it is
// served. It loads the table with the same loader as the dashboard, then
// reports centroid coverage and value ranges.
//
// Usage:
//
//	go run ./cmd/checkdata -data outputs/probabilitas_dan_prediksi_magnitudo_per_pulau.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/couchcryptid/quake-risk-dashboard/internal/adapter/statfile"
	"github.com/couchcryptid/quake-risk-dashboard/internal/config"
	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
)

// Magnitudes outside this range are almost certainly unit or column errors.
const (
	minMagnitude = 0.0
	maxMagnitude = 10.0
)

// phase tracks pass/fail for a validation phase. Warnings are reported but
// do not fail the phase.
type phase struct {
	name     string
	errors   []string
	warnings []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataPath := flag.String("data", config.DefaultDataPath, "path to the statistics table (.csv or .xlsx)")
	flag.Parse()

	os.Exit(run(os.Stdout, *dataPath))
}

func run(out io.Writer, path string) int {
	fmt.Fprintln(out, "=== Island Statistics Check ===")
	fmt.Fprintln(out)

	ds, err := statfile.Load(path)
	if err != nil {
		fmt.Fprintf(out, "  %-32s \033[31mFAIL\033[0m\n\n", "Load table")
		fmt.Fprintf(out, "%v\n", err)
		return 1
	}
	rows := ds.Rows()

	phases := []*phase{
		checkIslands(rows),
		checkCentroidCoverage(rows),
		checkValueRanges(rows),
	}

	allPassed := true
	fmt.Fprintf(out, "  %-32s \033[32mPASS\033[0m\n", "Load table")
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		} else if len(p.warnings) > 0 {
			status = fmt.Sprintf("\033[32mPASS\033[0m \033[33m(%d warnings)\033[0m", len(p.warnings))
		}
		fmt.Fprintf(out, "  %-32s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Rows: %d, islands: %d, source: %s\n", ds.Len(), len(ds.Islands()), ds.Path())

	for _, p := range phases {
		if len(p.errors) == 0 && len(p.warnings) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
		for _, w := range p.warnings {
			fmt.Fprintf(out, "  warning: %s\n", w)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll checks passed.")
		return 0
	}
	fmt.Fprintln(out, "\nCheck FAILED.")
	return 1
}

// checkIslands flags empty and repeated island names. Repeats are legal but
// produce duplicate table rows and stacked markers.
func checkIslands(rows []domain.StatRow) *phase {
	p := &phase{name: "Island names"}
	if len(rows) == 0 {
		p.errorf("table has no rows")
	}
	seen := make(map[string]int, len(rows))
	for i, r := range rows {
		if r.Island == "" {
			p.errorf("row %d: empty island name", i+1)
			continue
		}
		if first, ok := seen[r.Island]; ok {
			p.warnf("row %d: island %q repeats row %d", i+1, r.Island, first)
			continue
		}
		seen[r.Island] = i + 1
	}
	return p
}

// checkCentroidCoverage reports islands the map cannot place. The dashboard
// leaves them off the map silently; this is the only place they surface.
func checkCentroidCoverage(rows []domain.StatRow) *phase {
	p := &phase{name: "Centroid coverage"}
	for _, island := range domain.AvailableIslands(rows) {
		if _, ok := domain.LookupCentroid(island); !ok {
			p.warnf("island %q has no centroid and will not appear on the map", island)
		}
	}
	return p
}

func checkValueRanges(rows []domain.StatRow) *phase {
	p := &phase{name: "Value ranges"}
	for _, r := range rows {
		for _, v := range []struct {
			column string
			value  float64
		}{
			{domain.ColProbabilityModel, r.ProbabilityModel},
			{domain.ColProbabilityHistorical, r.ProbabilityHistorical},
		} {
			if v.value < 0 || v.value > 100 {
				p.errorf("%s: %s = %g is outside 0..100", r.Island, v.column, v.value)
			}
		}
		for _, v := range []struct {
			column string
			value  float64
		}{
			{domain.ColAvgPredictedMagnitude, r.AvgPredictedMagnitude},
			{domain.ColAvgHistoricalMagnitude, r.AvgHistoricalMagnitude},
		} {
			if v.value < minMagnitude || v.value > maxMagnitude {
				p.errorf("%s: %s = %g is outside %g..%g", r.Island, v.column, v.value, minMagnitude, maxMagnitude)
			}
		}
		if r.Frequency != math.Trunc(r.Frequency) {
			p.warnf("%s: %s = %g is not a whole count", r.Island, domain.ColFrequency, r.Frequency)
		}
	}
	return p
}

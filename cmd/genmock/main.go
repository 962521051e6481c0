// Command genmock turns a statistics CSV into an equivalent XLSX workbook
// fixture. It goes through the dashboard's own loader, so a table that would
// not load is never converted.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv internal/adapter/statfile/testdata/islands.csv \
//	  -xlsx-out outputs/probabilitas_dan_prediksi_magnitudo_per_pulau.xlsx
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/couchcryptid/quake-risk-dashboard/internal/adapter/statfile"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "source statistics CSV")
	xlsxOut := flag.String("xlsx-out", "", "output path for the XLSX fixture")
	flag.Parse()

	if *csvPath == "" || *xlsxOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -xlsx-out")
	}

	ds, err := statfile.Load(*csvPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(*xlsxOut), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := statfile.WriteXLSX(*xlsxOut, ds.Rows()); err != nil {
		return err
	}

	// Read it back so a bad fixture fails here rather than in a test.
	check, err := statfile.Load(*xlsxOut)
	if err != nil {
		return fmt.Errorf("verify %s: %w", *xlsxOut, err)
	}
	if check.Len() != ds.Len() {
		return fmt.Errorf("verify %s: wrote %d rows, read back %d", *xlsxOut, ds.Len(), check.Len())
	}

	log.Printf("%s: %d rows -> %s", *csvPath, ds.Len(), *xlsxOut)
	return nil
}

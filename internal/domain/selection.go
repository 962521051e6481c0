package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
)

// Selection is the set of islands chosen in the island selector.
type Selection map[string]struct{}

// NewSelection builds a selection from island names. Duplicates collapse.
func NewSelection(islands ...string) Selection {
	s := make(Selection, len(islands))
	for _, island := range islands {
		s[island] = struct{}{}
	}
	return s
}

// SelectAll is the default selection: every island present in rows.
func SelectAll(rows []StatRow) Selection {
	return NewSelection(AvailableIslands(rows)...)
}

// Contains reports whether island is selected.
func (s Selection) Contains(island string) bool {
	_, ok := s[island]
	return ok
}

// Islands returns the selected names sorted, for stable display and keys.
func (s Selection) Islands() []string {
	names := make([]string, 0, len(s))
	for island := range s {
		names = append(names, island)
	}
	slices.Sort(names)
	return names
}

// AvailableIslands returns the distinct island values in order of first
// appearance.
func AvailableIslands(rows []StatRow) []string {
	seen := make(map[string]struct{}, len(rows))
	islands := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.Island]; ok {
			continue
		}
		seen[r.Island] = struct{}{}
		islands = append(islands, r.Island)
	}
	return islands
}

// Filter returns the rows whose island is selected, preserving their relative
// order. The input is not modified. An empty selection yields an empty,
// non-nil slice.
func Filter(rows []StatRow, selected Selection) []StatRow {
	out := make([]StatRow, 0, len(rows))
	for _, r := range rows {
		if selected.Contains(r.Island) {
			out = append(out, r)
		}
	}
	return out
}

// ViewKey identifies a filtered view by its content: island names and every
// numeric field, in order. Two selections that yield the same rows share a
// key; a reloaded table with changed values does not.
func ViewKey(rows []StatRow) string {
	h := sha256.New()
	for _, r := range rows {
		fmt.Fprintf(h, "%q|%g|%g|%g|%g|%g\n", r.Island,
			r.ProbabilityModel, r.ProbabilityHistorical,
			r.AvgPredictedMagnitude, r.AvgHistoricalMagnitude, r.Frequency)
	}
	return hex.EncodeToString(h.Sum(nil))
}

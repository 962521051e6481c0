package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRows() []StatRow {
	return []StatRow{
		{Island: "Sumatera", ProbabilityModel: 27.1},
		{Island: "Jawa", ProbabilityModel: 30.0},
		{Island: "Atlantis", ProbabilityModel: 10.0},
		{Island: "Papua", ProbabilityModel: 3.2},
	}
}

func TestAvailableIslands_FirstAppearanceOrder(t *testing.T) {
	rows := append(sampleRows(), StatRow{Island: "Jawa"})
	assert.Equal(t, []string{"Sumatera", "Jawa", "Atlantis", "Papua"}, AvailableIslands(rows))
}

func TestAvailableIslands_Empty(t *testing.T) {
	assert.Empty(t, AvailableIslands(nil))
}

func TestFilter_AllIslandsReproducesRows(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, rows, Filter(rows, SelectAll(rows)))
}

func TestFilter_EmptySelection(t *testing.T) {
	got := Filter(sampleRows(), NewSelection())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	got := Filter(sampleRows(), NewSelection("Papua", "Sumatera"))
	assert.Equal(t, []string{"Sumatera", "Papua"}, AvailableIslands(got))
}

func TestFilter_UnknownSelectionIgnored(t *testing.T) {
	got := Filter(sampleRows(), NewSelection("Krakatau"))
	assert.Empty(t, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	before := append([]StatRow(nil), rows...)
	_ = Filter(rows, NewSelection("Jawa"))
	assert.Equal(t, before, rows)
}

func TestSelection_Islands_Sorted(t *testing.T) {
	assert.Equal(t, []string{"Bali", "Jawa", "Papua"}, NewSelection("Papua", "Jawa", "Bali", "Jawa").Islands())
}

func TestViewKey(t *testing.T) {
	rows := sampleRows()
	a := ViewKey(Filter(rows, NewSelection("Jawa", "Papua")))
	b := ViewKey(Filter(rows, NewSelection("Jawa", "Papua", "Krakatau")))
	c := ViewKey(Filter(rows, NewSelection("Jawa")))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, ViewKey(nil), ViewKey([]StatRow{}))
}

func TestViewKey_ChangesWithValues(t *testing.T) {
	rows := sampleRows()
	before := ViewKey(rows)
	rows[1].ProbabilityModel = 31.0
	assert.NotEqual(t, before, ViewKey(rows))
}

package render

import (
	"strings"
	"testing"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartRows() []domain.StatRow {
	return []domain.StatRow{
		{Island: "Jawa", ProbabilityModel: 30, ProbabilityHistorical: 12, AvgPredictedMagnitude: 5.1, AvgHistoricalMagnitude: 4.9, Frequency: 300},
		{Island: "Bali", ProbabilityModel: 4, ProbabilityHistorical: 9, AvgPredictedMagnitude: 4.2, AvgHistoricalMagnitude: 4.4, Frequency: 20},
		{Island: "Papua", ProbabilityModel: 18, ProbabilityHistorical: 21, AvgPredictedMagnitude: 5.6, AvgHistoricalMagnitude: 5.3, Frequency: 410},
	}
}

func TestPlotRenderer_RenderCharts(t *testing.T) {
	charts, err := PlotRenderer{}.RenderCharts(chartRows())
	require.NoError(t, err)

	for name, svg := range map[string]string{
		"model":      string(charts.ModelProbability),
		"historical": string(charts.HistoricalProbability),
		"magnitude":  string(charts.Magnitude),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(svg, "<svg"), "inline svg should not carry an xml prolog")
			assert.Contains(t, svg, "Jawa")
			assert.Contains(t, svg, "Papua")
		})
	}
	assert.Contains(t, string(charts.Magnitude), "5.10")
	assert.Contains(t, string(charts.Magnitude), domain.ColAvgPredictedMagnitude)
	assert.Contains(t, string(charts.Magnitude), domain.ColAvgHistoricalMagnitude)
}

func TestPlotRenderer_KeepsIslandsWithoutCentroid(t *testing.T) {
	rows := []domain.StatRow{
		{Island: "Jawa", ProbabilityModel: 30, ProbabilityHistorical: 12, AvgPredictedMagnitude: 5.1, AvgHistoricalMagnitude: 4.9, Frequency: 300},
		{Island: "Atlantis", ProbabilityModel: 50, ProbabilityHistorical: 40, AvgPredictedMagnitude: 6, AvgHistoricalMagnitude: 6, Frequency: 1},
	}
	_, mapped := domain.LookupCentroid("Atlantis")
	require.False(t, mapped)

	charts, err := PlotRenderer{}.RenderCharts(rows)
	require.NoError(t, err)

	assert.Contains(t, string(charts.ModelProbability), "Atlantis")
	assert.Contains(t, string(charts.HistoricalProbability), "Atlantis")
	assert.Contains(t, string(charts.Magnitude), "Atlantis")
}

func TestPlotRenderer_EmptyView(t *testing.T) {
	charts, err := PlotRenderer{}.RenderCharts(nil)
	require.NoError(t, err)

	assert.Contains(t, string(charts.ModelProbability), "<svg")
	assert.Contains(t, string(charts.HistoricalProbability), "<svg")
	assert.Contains(t, string(charts.Magnitude), "<svg")
}

func TestSortedBy(t *testing.T) {
	rows := chartRows()

	sorted := sortedBy(rows, func(r domain.StatRow) float64 { return r.ProbabilityModel })

	var islands []string
	for _, r := range sorted {
		islands = append(islands, r.Island)
	}
	assert.Equal(t, []string{"Bali", "Papua", "Jawa"}, islands)
	assert.Equal(t, "Jawa", rows[0].Island, "input order must be preserved")
}

func TestShade(t *testing.T) {
	shades, err := sequentialShades("Reds")
	require.NoError(t, err)
	require.Len(t, shades, 7)

	assert.Equal(t, shades[0], shade(shades, 0, 10, 0))
	assert.Equal(t, shades[6], shade(shades, 0, 10, 10))
	assert.Equal(t, shades[6], shade(shades, 5, 5, 5), "degenerate scale uses darkest shade")
}

func TestSequentialShades_UnknownPalette(t *testing.T) {
	_, err := sequentialShades("NoSuchPalette")
	assert.Error(t, err)
}

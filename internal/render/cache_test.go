package render

import (
	"errors"
	"testing"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
	"github.com/couchcryptid/quake-risk-dashboard/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRenderer struct {
	calls int
	err   error
}

func (c *countingRenderer) RenderCharts(rows []domain.StatRow) (Charts, error) {
	c.calls++
	if c.err != nil {
		return Charts{}, c.err
	}
	return Charts{ModelProbability: "<svg>model</svg>"}, nil
}

func TestCachedChartRenderer_HitAndMiss(t *testing.T) {
	inner := &countingRenderer{}
	metrics := observability.NewMetricsForTesting()
	cached, err := NewCachedChartRenderer(inner, 4, metrics)
	require.NoError(t, err)

	rows := chartRows()
	first, err := cached.RenderCharts(rows)
	require.NoError(t, err)
	second, err := cached.RenderCharts(rows)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cached.Len())
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ChartCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ChartCache.WithLabelValues("miss")), 0)
}

func TestCachedChartRenderer_DifferentViews(t *testing.T) {
	inner := &countingRenderer{}
	cached, err := NewCachedChartRenderer(inner, 4, observability.NewMetricsForTesting())
	require.NoError(t, err)

	rows := chartRows()
	_, err = cached.RenderCharts(rows)
	require.NoError(t, err)
	_, err = cached.RenderCharts(rows[:1])
	require.NoError(t, err)

	changed := chartRows()
	changed[0].ProbabilityModel = 31
	_, err = cached.RenderCharts(changed)
	require.NoError(t, err)

	assert.Equal(t, 3, inner.calls)
}

func TestCachedChartRenderer_ErrorNotCached(t *testing.T) {
	inner := &countingRenderer{err: errors.New("boom")}
	cached, err := NewCachedChartRenderer(inner, 4, observability.NewMetricsForTesting())
	require.NoError(t, err)

	_, err = cached.RenderCharts(chartRows())
	require.Error(t, err)
	_, err = cached.RenderCharts(chartRows())
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 0, cached.Len())
}

func TestNewCachedChartRenderer_InvalidSize(t *testing.T) {
	_, err := NewCachedChartRenderer(&countingRenderer{}, 0, observability.NewMetricsForTesting())
	assert.Error(t, err)
}

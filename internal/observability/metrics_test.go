package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsForTesting_Usable(t *testing.T) {
	m := NewMetricsForTesting()

	m.RowsLoaded.Set(8)
	m.UnmappedIslands.Inc()
	m.ChartCache.WithLabelValues("hit").Inc()
	m.ChartCache.WithLabelValues("hit").Inc()

	assert.Equal(t, 8.0, testutil.ToFloat64(m.RowsLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UnmappedIslands))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChartCache.WithLabelValues("hit")))
}

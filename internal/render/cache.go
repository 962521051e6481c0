package render

import (
	"fmt"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
	"github.com/couchcryptid/quake-risk-dashboard/internal/observability"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedChartRenderer wraps a ChartRenderer with an in-memory LRU keyed by
// the content of the filtered view. Identical views render identical charts,
// so a hit is indistinguishable from a fresh render.
type CachedChartRenderer struct {
	inner   ChartRenderer
	cache   *lru.Cache[string, Charts]
	metrics *observability.Metrics
}

// NewCachedChartRenderer creates a cache decorator around a chart renderer.
func NewCachedChartRenderer(inner ChartRenderer, maxEntries int, metrics *observability.Metrics) (*CachedChartRenderer, error) {
	cache, err := lru.New[string, Charts](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("chart cache: %w", err)
	}
	return &CachedChartRenderer{inner: inner, cache: cache, metrics: metrics}, nil
}

func (c *CachedChartRenderer) RenderCharts(rows []domain.StatRow) (Charts, error) {
	key := domain.ViewKey(rows)
	if charts, ok := c.cache.Get(key); ok {
		c.metrics.ChartCache.WithLabelValues("hit").Inc()
		return charts, nil
	}
	c.metrics.ChartCache.WithLabelValues("miss").Inc()

	charts, err := c.inner.RenderCharts(rows)
	if err != nil {
		return charts, err
	}
	c.cache.Add(key, charts)
	return charts, nil
}

// Len reports the number of cached chart sets.
func (c *CachedChartRenderer) Len() int {
	return c.cache.Len()
}

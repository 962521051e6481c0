package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the dashboard.
type Metrics struct {
	RowsLoaded     prometheus.Gauge
	DatasetLoads   *prometheus.CounterVec // labels: outcome={success,error}
	PageRenders    *prometheus.CounterVec // labels: view={page,stats}
	RenderErrors   prometheus.Counter
	RenderDuration prometheus.Histogram

	// Map metrics.
	UnmappedIslands prometheus.Counter
	MarkersRendered prometheus.Histogram

	// Chart cache metrics.
	ChartCache *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_dashboard",
			Name:      "rows_loaded",
			Help:      "Number of island rows in the currently loaded statistics table.",
		}),
		DatasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "dataset_loads_total",
			Help:      "Statistics table load attempts by outcome.",
		}, []string{"outcome"}),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "renders_total",
			Help:      "Completed render passes by view.",
		}, []string{"view"}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "render_errors_total",
			Help:      "Render passes that failed.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_dashboard",
			Name:      "render_duration_seconds",
			Help:      "Duration of a full filter-and-render pass.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		UnmappedIslands: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "unmapped_islands_total",
			Help:      "Rows left off the map because their island has no centroid.",
		}),
		MarkersRendered: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_dashboard",
			Name:      "map_markers",
			Help:      "Markers placed per map render.",
			Buckets:   []float64{0, 1, 2, 4, 6, 8},
		}),
		ChartCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "chart_cache_total",
			Help:      "Chart set cache lookups by result.",
		}, []string{"result"}),
	}

	prometheus.MustRegister(
		m.RowsLoaded,
		m.DatasetLoads,
		m.PageRenders,
		m.RenderErrors,
		m.RenderDuration,
		m.UnmappedIslands,
		m.MarkersRendered,
		m.ChartCache,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsLoaded:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quake_dashboard", Name: "rows_loaded"}),
		DatasetLoads:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "dataset_loads_total"}, []string{"outcome"}),
		PageRenders:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "renders_total"}, []string{"view"}),
		RenderErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "render_errors_total"}),
		RenderDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quake_dashboard", Name: "render_duration_seconds"}),
		UnmappedIslands: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "unmapped_islands_total"}),
		MarkersRendered: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quake_dashboard", Name: "map_markers"}),
		ChartCache:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "chart_cache_total"}, []string{"result"}),
	}
}

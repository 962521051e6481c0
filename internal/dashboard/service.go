// Package dashboard serves per-request views over the loaded island
// statistics. The table is shared and immutable; each request carries its own
// selection.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/quake-risk-dashboard/internal/domain"
	"github.com/couchcryptid/quake-risk-dashboard/internal/observability"
	"github.com/couchcryptid/quake-risk-dashboard/internal/render"
)

// Loader reads the statistics table at path.
type Loader func(path string) (*domain.Dataset, error)

// MapRenderer builds the risk map model for a filtered view.
type MapRenderer interface {
	Render(rows []domain.StatRow) render.RiskMap
}

// Service renders dashboard views from the current dataset.
type Service struct {
	dataset atomic.Pointer[domain.Dataset]
	load    Loader
	charts  render.ChartRenderer
	maps    MapRenderer
	author  string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Service over an already loaded dataset.
func New(ds *domain.Dataset, load Loader, charts render.ChartRenderer, maps MapRenderer, author string, logger *slog.Logger, metrics *observability.Metrics) *Service {
	s := &Service{
		load:    load,
		charts:  charts,
		maps:    maps,
		author:  author,
		logger:  logger,
		metrics: metrics,
	}
	s.swap(ds)
	return s
}

// CheckReadiness returns nil once a dataset is available.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.dataset.Load() == nil {
		return errors.New("statistics table not loaded")
	}
	return nil
}

// Dataset returns the table currently being served.
func (s *Service) Dataset() *domain.Dataset {
	return s.dataset.Load()
}

// ResolveSelection turns request parameters into a selection. A request that
// never touched the selector gets every island; an explicit empty selection
// stays empty.
func (s *Service) ResolveSelection(islands []string, filtered bool) domain.Selection {
	if !filtered && len(islands) == 0 {
		return domain.SelectAll(s.dataset.Load().Rows())
	}
	return domain.NewSelection(islands...)
}

// Page runs one full render pass for the selection.
func (s *Service) Page(ctx context.Context, sel domain.Selection) (render.Page, error) {
	start := time.Now()
	ds := s.dataset.Load()
	rows := domain.Filter(ds.Rows(), sel)

	if err := ctx.Err(); err != nil {
		return render.Page{}, err
	}

	charts, err := s.charts.RenderCharts(rows)
	if err != nil {
		s.metrics.RenderErrors.Inc()
		return render.Page{}, fmt.Errorf("render charts: %w", err)
	}

	page := render.Page{
		Title:   render.PageTitle,
		Islands: render.IslandOptions(ds.Islands(), sel),
		Table:   render.RenderTable(rows),
		Charts:  charts,
		Map:     s.maps.Render(rows),
		Legend:  render.RiskLegend(),
		Footer: render.Footer{
			Credit:   s.author,
			DataPath: ds.Path(),
			LoadedAt: ds.LoadedAt(),
		},
	}

	s.metrics.PageRenders.WithLabelValues("page").Inc()
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	s.logger.Debug("page rendered", "selected", len(sel), "rows", len(rows), "markers", len(page.Map.Markers))
	return page, nil
}

// Stats returns the filtered rows and map model without drawing charts.
func (s *Service) Stats(ctx context.Context, sel domain.Selection) (render.StatsView, error) {
	if err := ctx.Err(); err != nil {
		return render.StatsView{}, err
	}
	rows := domain.Filter(s.dataset.Load().Rows(), sel)
	rm := s.maps.Render(rows)

	s.metrics.PageRenders.WithLabelValues("stats").Inc()
	return render.StatsView{
		Selected: sel.Islands(),
		Rows:     rows,
		Labels:   rm.Labels,
		Markers:  rm.Markers,
	}, nil
}

// Reload re-reads the table from the current path. On failure the previous
// dataset keeps being served.
func (s *Service) Reload(_ context.Context) error {
	path := s.dataset.Load().Path()
	ds, err := s.load(path)
	if err != nil {
		s.metrics.DatasetLoads.WithLabelValues("error").Inc()
		s.logger.Error("reload failed, keeping previous table", "path", path, "error", err)
		return err
	}
	s.swap(ds)
	s.logger.Info("statistics table reloaded", "path", path, "rows", ds.Len())
	return nil
}

func (s *Service) swap(ds *domain.Dataset) {
	s.dataset.Store(ds)
	s.metrics.DatasetLoads.WithLabelValues("success").Inc()
	s.metrics.RowsLoaded.Set(float64(ds.Len()))
}

package chartkit

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transform"
)

// Querier runs a query and returns its rows.
// *source.SQLSource satisfies it.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) ([]models.Row, error)
}

// HydrateDashboard runs the query of every chart in d and hydrates the
// results, at most opts.EffectiveParallelism() queries at a time.
//
// Charts come back in dashboard order. Mappings are validated before any
// query runs. The first failing chart cancels the remaining queries and is
// returned as a *ChartError.
func HydrateDashboard(ctx context.Context, q Querier, d models.Dashboard, opts Options, logger *zap.Logger) (*models.DashboardView, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("dashboard", d.Name))

	for _, chart := range d.Charts {
		if err := ValidateMapping(chart.Mapping); err != nil {
			return nil, &ChartError{ChartID: chart.ID, Err: err}
		}
	}
	if len(d.Charts) > 0 && q == nil {
		return nil, ErrNoDatabase
	}

	view := &models.DashboardView{
		Name:   d.Name,
		Charts: make([]models.DashboardChartView, len(d.Charts)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.EffectiveParallelism())

	for i, chart := range d.Charts {
		g.Go(func() error {
			start := time.Now()
			rows, err := q.Query(gctx, chart.Query)
			if err != nil {
				logger.Warn("chart query failed", zap.String("chart", chart.ID), zap.Error(err))
				return &ChartError{ChartID: chart.ID, Err: err}
			}

			cfg := Hydrate(chart.Mapping, rows, opts)
			if len(opts.Palette) > 0 {
				cfg = transform.ApplyPalette(cfg, opts.Palette)
			}
			view.Charts[i] = models.DashboardChartView{ID: chart.ID, Config: cfg}

			logger.Debug("chart hydrated",
				zap.String("chart", chart.ID),
				zap.Int("rows", len(rows)),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

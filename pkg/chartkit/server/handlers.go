package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transform"
)

type hydrateRequest struct {
	Mapping models.ColumnMapping `json:"mapping"`
	Rows    []models.Row         `json:"rows"`
}

type queryRequest struct {
	Mapping models.ColumnMapping `json:"mapping"`
	Query   string               `json:"query"`
	Args    []any                `json:"args,omitempty"`
}

func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", s.handleHealth)
	s.echo.POST("/v1/hydrate", s.handleHydrate)
	s.echo.POST("/v1/query", s.handleQuery)
	s.echo.POST("/v1/dashboards", s.handleDashboard)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"database": s.querier != nil,
	})
}

func (s *Server) handleHydrate(c echo.Context) error {
	var req hydrateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
	}
	if err := chartkit.ValidateMapping(req.Mapping); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s.hydrate(req.Mapping, req.Rows))
}

func (s *Server) handleQuery(c echo.Context) error {
	if s.querier == nil {
		return writeError(c, chartkit.ErrNoDatabase)
	}

	var req queryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
	}
	if req.Query == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "query is required"})
	}
	if err := chartkit.ValidateMapping(req.Mapping); err != nil {
		return writeError(c, err)
	}

	rows, err := s.querier.Query(c.Request().Context(), req.Query, req.Args...)
	if err != nil {
		s.logger.Warn("query failed", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s.hydrate(req.Mapping, rows))
}

func (s *Server) handleDashboard(c echo.Context) error {
	var d models.Dashboard
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
	}

	view, err := chartkit.HydrateDashboard(c.Request().Context(), s.querier, d, s.opts, s.logger)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (s *Server) hydrate(m models.ColumnMapping, rows []models.Row) *models.ChartConfiguration {
	cfg := chartkit.Hydrate(m, rows, s.opts)
	if len(s.opts.Palette) > 0 {
		cfg = transform.ApplyPalette(cfg, s.opts.Palette)
	}
	return cfg
}

// writeError maps library errors to status codes: invalid mappings are the
// caller's fault, a missing database is 503 and query failures are 502.
func writeError(c echo.Context, err error) error {
	body := map[string]any{"error": err.Error()}

	var mappingErr *chartkit.MappingError
	if errors.As(err, &mappingErr) {
		body["field"] = mappingErr.Field
	}
	var chartErr *chartkit.ChartError
	if errors.As(err, &chartErr) {
		body["chart"] = chartErr.ChartID
	}

	switch {
	case errors.Is(err, chartkit.ErrInvalidMapping):
		return c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, chartkit.ErrNoDatabase):
		return c.JSON(http.StatusServiceUnavailable, body)
	default:
		return c.JSON(http.StatusBadGateway, body)
	}
}

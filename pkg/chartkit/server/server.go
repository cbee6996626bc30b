// Package server exposes chart hydration over HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
)

// requestIDHeader carries the request id in both directions.
const requestIDHeader = "X-Request-ID"

// requestIDContextKey is the echo context key for the request id.
const requestIDContextKey = "request_id"

// Config configures the HTTP server.
type Config struct {
	Address           string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	Logger            *zap.Logger
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Address:           "127.0.0.1:8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// Server serves the chart API. Query routes need a Querier; without one they
// answer 503.
type Server struct {
	echo    *echo.Echo
	querier chartkit.Querier
	opts    chartkit.Options
	config  Config
	logger  *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	errCh    chan error
	started  bool
}

// New creates a server. q may be nil.
func New(q chartkit.Querier, opts chartkit.Options, cfg Config) *Server {
	cfg = mergeWithDefaultConfig(cfg)
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "http"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestIDMiddleware())
	e.Use(requestLoggerMiddleware(logger))

	s := &Server{
		echo:    e,
		querier: q,
		opts:    opts,
		config:  cfg,
		logger:  logger,
		errCh:   make(chan error, 1),
	}
	s.registerRoutes()
	return s
}

func mergeWithDefaultConfig(cfg Config) Config {
	d := DefaultConfig()
	if cfg.Address != "" {
		d.Address = cfg.Address
	}
	if cfg.ReadHeaderTimeout > 0 {
		d.ReadHeaderTimeout = cfg.ReadHeaderTimeout
	}
	if cfg.ShutdownTimeout > 0 {
		d.ShutdownTimeout = cfg.ShutdownTimeout
	}
	d.Logger = cfg.Logger
	return d
}

// requestIDMiddleware keeps the caller's X-Request-ID or assigns a new uuid,
// and echoes it back on the response.
func requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(requestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(requestIDContextKey, id)
			c.Response().Header().Set(requestIDHeader, id)
			return next(c)
		}
	}
}

func requestLoggerMiddleware(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			if status == 0 {
				status = http.StatusOK
			}
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			id, _ := c.Get(requestIDContextKey).(string)
			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("path", path),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
				zap.String("request_id", id),
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("http request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		}
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("server already started")
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	s.listener = ln
	s.started = true

	srv := &http.Server{Handler: s.echo, ReadHeaderTimeout: s.config.ReadHeaderTimeout}
	s.echo.Server = srv

	go func() {
		err := srv.Serve(ln)
		if err == http.ErrServerClosed {
			err = nil
		}
		s.errCh <- err
	}()

	s.logger.Info("listening", zap.String("address", ln.Addr().String()))
	return nil
}

// Address returns the dialable listen address, or "" before Start.
func (s *Server) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	addr := s.listener.Addr().String()
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	host = strings.TrimSpace(host)
	if host == "" || host == "::" || host == "0.0.0.0" || host == "[::]" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}

// Wait blocks until the server stops and returns its serve error.
func (s *Server) Wait() error {
	return <-s.errCh
}

// Stop shuts the server down gracefully. A nil ctx uses the configured
// shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.started = false
	s.mu.Unlock()

	if !started {
		return nil
	}

	if ctx == nil {
		c, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		ctx = c
	}

	return s.echo.Shutdown(ctx)
}

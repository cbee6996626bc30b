package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SQLOptions configures a SQLSource.
type SQLOptions struct {
	// QueryTimeout bounds each query. Zero means no timeout beyond the caller's context.
	QueryTimeout time.Duration
	// MaxRows caps the rows returned per query. Zero means unlimited.
	MaxRows int
	// Logger receives query diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

// SQLSource runs chart queries against a database.
type SQLSource struct {
	db      *sql.DB
	driver  string
	timeout time.Duration
	maxRows int
	logger  *zap.Logger
}

// OpenSQL opens a database with one of the supported drivers and pings it.
func OpenSQL(ctx context.Context, driver, dsn string, opts SQLOptions) (*SQLSource, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, NewSourceError("sql", driver, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver))
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, NewSourceError("sql", driver, fmt.Errorf("failed to open database: %w", err))
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, NewSourceError("sql", driver, fmt.Errorf("failed to ping database: %w", err))
	}

	return NewSQLSource(db, driver, opts), nil
}

// NewSQLSource wraps an already opened database.
func NewSQLSource(db *sql.DB, driver string, opts SQLOptions) *SQLSource {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLSource{
		db:      db,
		driver:  driver,
		timeout: opts.QueryTimeout,
		maxRows: opts.MaxRows,
		logger:  logger.With(zap.String("component", "sql_source"), zap.String("driver", driver)),
	}
}

// DB returns the underlying database handle.
func (s *SQLSource) DB() *sql.DB {
	return s.db
}

// Close closes the database.
func (s *SQLSource) Close() error {
	return s.db.Close()
}

// Query runs query and returns its result set as rows, in result order.
func (s *SQLSource) Query(ctx context.Context, query string, args ...any) ([]models.Row, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	rs, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, NewSourceError("sql", summarize(query), err)
	}
	defer rs.Close()

	columns, err := rs.ColumnTypes()
	if err != nil {
		return nil, NewSourceError("sql", summarize(query), err)
	}

	result := []models.Row{}
	truncated := false
	for rs.Next() {
		if s.maxRows > 0 && len(result) >= s.maxRows {
			truncated = true
			break
		}
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, NewSourceError("sql", summarize(query), err)
		}

		row := make(models.Row, len(columns))
		for i, col := range columns {
			row[col.Name()] = normalizeCell(raw[i], col.DatabaseTypeName())
		}
		result = append(result, row)
	}
	if err := rs.Err(); err != nil {
		return nil, NewSourceError("sql", summarize(query), err)
	}

	if truncated {
		s.logger.Warn("query result truncated", zap.Int("max_rows", s.maxRows))
	}
	s.logger.Debug("query complete",
		zap.Int("rows", len(result)),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

// normalizeCell turns driver byte slices into text, or into exact decimals
// for NUMERIC and DECIMAL columns.
func normalizeCell(v any, dbType string) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	switch strings.ToUpper(dbType) {
	case "NUMERIC", "DECIMAL":
		if d, err := decimal.NewFromString(string(b)); err == nil {
			return d
		}
	}
	return string(b)
}

// summarize shortens a query for error messages.
func summarize(query string) string {
	q := strings.Join(strings.Fields(query), " ")
	if len(q) > 60 {
		return q[:57] + "..."
	}
	return q
}

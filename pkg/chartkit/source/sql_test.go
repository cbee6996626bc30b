package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func newTestDB(t *testing.T, opts SQLOptions) *SQLSource {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "charts.db")
	src, err := OpenSQL(context.Background(), DriverSQLite, dsn, opts)
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })

	_, err = src.DB().Exec(`
		CREATE TABLE sales (month TEXT, amount REAL, orders INTEGER, note TEXT);
		INSERT INTO sales VALUES ('Jan', 100.5, 3, NULL);
		INSERT INTO sales VALUES ('Feb', 80, 2, 'promo');
		INSERT INTO sales VALUES ('Mar', 120.25, 5, NULL);
	`)
	require.NoError(t, err)
	return src
}

func TestSQLSourceQuery(t *testing.T) {
	src := newTestDB(t, SQLOptions{})

	rows, err := src.Query(context.Background(), "SELECT month, amount, orders, note FROM sales ORDER BY rowid")
	require.NoError(t, err)

	expected := []models.Row{
		{"month": "Jan", "amount": 100.5, "orders": int64(3), "note": nil},
		{"month": "Feb", "amount": 80.0, "orders": int64(2), "note": "promo"},
		{"month": "Mar", "amount": 120.25, "orders": int64(5), "note": nil},
	}
	assert.Equal(t, expected, rows)
}

func TestSQLSourceQueryArgs(t *testing.T) {
	src := newTestDB(t, SQLOptions{})

	rows, err := src.Query(context.Background(), "SELECT month FROM sales WHERE orders > ? ORDER BY orders", 2)
	require.NoError(t, err)
	assert.Equal(t, []models.Row{{"month": "Jan"}, {"month": "Mar"}}, rows)
}

func TestSQLSourceMaxRows(t *testing.T) {
	src := newTestDB(t, SQLOptions{MaxRows: 2})

	rows, err := src.Query(context.Background(), "SELECT month FROM sales ORDER BY rowid")
	require.NoError(t, err)
	assert.Equal(t, []models.Row{{"month": "Jan"}, {"month": "Feb"}}, rows)
}

func TestSQLSourceEmptyResult(t *testing.T) {
	src := newTestDB(t, SQLOptions{})

	rows, err := src.Query(context.Background(), "SELECT month FROM sales WHERE 1 = 0")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSQLSourceQueryError(t *testing.T) {
	src := newTestDB(t, SQLOptions{})

	_, err := src.Query(context.Background(), "SELECT nope FROM missing_table")
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "sql", srcErr.Source)
	assert.Contains(t, srcErr.Target, "missing_table")
}

func TestOpenSQLUnsupportedDriver(t *testing.T) {
	_, err := OpenSQL(context.Background(), "oracle", "dsn", SQLOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		value    any
		dbType   string
		expected any
	}{
		{[]byte("12.50"), "NUMERIC", decimal.RequireFromString("12.50")},
		{[]byte("7"), "decimal", decimal.RequireFromString("7")},
		{[]byte("n/a"), "NUMERIC", "n/a"},
		{[]byte("text"), "VARCHAR", "text"},
		{int64(4), "INT8", int64(4)},
		{nil, "TEXT", nil},
	}

	for _, tt := range tests {
		result := normalizeCell(tt.value, tt.dbType)
		if d, ok := tt.expected.(decimal.Decimal); ok {
			got, isDec := result.(decimal.Decimal)
			require.True(t, isDec, "normalizeCell(%q, %q) = %T", tt.value, tt.dbType, result)
			assert.True(t, d.Equal(got), "normalizeCell(%q, %q) = %v", tt.value, tt.dbType, got)
			continue
		}
		assert.Equal(t, tt.expected, result, "normalizeCell(%v, %q)", tt.value, tt.dbType)
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "SELECT a FROM b", summarize("SELECT a\n\t FROM   b"))
	long := "SELECT aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa FROM t"
	assert.Len(t, summarize(long), 60)
}

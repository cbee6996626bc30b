package models

// Row maps a column name to its raw cell value. Values may be nil, strings,
// numbers, booleans, time.Time, decimal.Decimal or byte slices.
// Rows are read-only inputs; hydration never modifies them.
type Row map[string]any

// Package transform turns tabular rows into chart datasets and options.
package transform

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// Formatter coerces raw cell values into chart primitives.
// The zero Formatter is ready to use.
type Formatter struct {
	// FalsyAsEmpty renders falsy values (0, false, "") as "" in the
	// string/categorical branch instead of their natural string form.
	FalsyAsEmpty bool
}

// FormatValue formats value with the zero Formatter.
func FormatValue(value any, semantic models.SemanticType, format models.DisplayFormat) models.Value {
	return Formatter{}.Format(value, semantic, format)
}

// Format coerces value according to its semantic type and display format.
// It never fails: missing numeric data becomes 0, everything else missing
// becomes "".
func (f Formatter) Format(value any, semantic models.SemanticType, format models.DisplayFormat) models.Value {
	if isNil(value) {
		if semantic == models.TypeNumeric {
			return models.Number(0)
		}
		return models.String("")
	}

	switch semantic {
	case models.TypeNumeric:
		n := toNumber(value)
		if format == models.FormatInteger {
			n = math.Round(n)
		}
		return models.Number(n)
	case models.TypeDate, models.TypeDatetime:
		return models.String(stringify(value))
	case models.TypeBoolean:
		if truthy(value) {
			return models.Number(1)
		}
		return models.Number(0)
	default:
		if f.FalsyAsEmpty && !truthy(value) {
			return models.String("")
		}
		return models.String(stringify(value))
	}
}

// isNil reports untyped nil and nil pointers, maps, slices and interfaces.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// toNumber converts value the way a browser's Number() would, mapping
// unparsable and non-finite results to 0.
func toNumber(value any) float64 {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case bool:
		if v {
			n = 1
		}
	case string:
		n = parseNumber(v)
	case []byte:
		n = parseNumber(string(v))
	case decimal.Decimal:
		n = v.InexactFloat64()
	case time.Time:
		n = float64(v.UnixMilli())
	case fmt.Stringer:
		n = parseNumber(v.String())
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// parseNumber parses trimmed text; empty text is 0 and garbage is NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return float64(i)
		}
		return math.NaN()
	}
	// ParseFloat also accepts "inf", "nan" and hex floats, which are not
	// numbers in the sense the rows mean them.
	if strings.ContainsAny(lower, "npx_") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// truthy applies the usual truthiness rules: false, 0, NaN and empty text
// are falsy, everything else is truthy.
func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case []byte:
		return len(v) > 0
	case decimal.Decimal:
		return !v.IsZero()
	case float64:
		return v != 0 && !math.IsNaN(v)
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return toNumber(v) != 0
	}
	return !isNil(value)
}

// stringify renders value in its natural string form.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return models.FormatNumber(v)
	case float32:
		return models.FormatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int8, int16, int32:
		return fmt.Sprint(v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case decimal.Decimal:
		return v.String()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

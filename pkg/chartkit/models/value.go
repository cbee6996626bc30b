package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a chart-safe primitive: either a number or a string.
// The zero Value is the number 0.
type Value struct {
	str   string
	num   float64
	isStr bool
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{num: f}
}

// String returns a string Value.
func String(s string) Value {
	return Value{str: s, isStr: true}
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return !v.isStr
}

// Float returns the numeric content of v, or 0 for string values.
func (v Value) Float() float64 {
	if v.isStr {
		return 0
	}
	return v.num
}

// String returns the display form of v. Numbers render the way a browser
// would stringify them, so 4 becomes "4" and 1e21 becomes "1e+21".
func (v Value) String() string {
	if v.isStr {
		return v.str
	}
	return FormatNumber(v.num)
}

// Equal reports whether v and o hold the same kind and content.
func (v Value) Equal(o Value) bool {
	return v == o
}

// MarshalJSON encodes numbers as JSON numbers and strings as JSON strings.
// Non-finite numbers encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isStr {
		return json.Marshal(v.str)
	}
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON accepts a JSON number, string or null (decoded as 0).
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = Number(0)
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("chart value must be a number or string: %s", data)
		}
		*v = Number(f)
	}
	return nil
}

// FormatNumber renders f using the shortest representation that round-trips,
// switching to exponent notation outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Go zero-pads the exponent ("1e-07"), browsers do not ("1e-7").
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + exp[:1] + digits
}

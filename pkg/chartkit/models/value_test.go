package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{123456789012, "123456789012"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{-3e-10, "-3e-10"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.input), "FormatNumber(%v)", tt.input)
	}
}

func TestValueJSON(t *testing.T) {
	values := []Value{Number(1), Number(2.5), String("a"), String(""), Number(math.NaN()), Number(math.Inf(-1))}

	data, err := json.Marshal(values)
	require.NoError(t, err)
	assert.Equal(t, `[1,2.5,"a","",null,null]`, string(data))

	var back []Value
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []Value{Number(1), Number(2.5), String("a"), String(""), Number(0), Number(0)}, back)

	var bad Value
	assert.Error(t, json.Unmarshal([]byte(`true`), &bad))
}

func TestValueAccessors(t *testing.T) {
	n := Number(4)
	assert.True(t, n.IsNumber())
	assert.Equal(t, 4.0, n.Float())
	assert.Equal(t, "4", n.String())

	s := String("4")
	assert.False(t, s.IsNumber())
	assert.Equal(t, "4", s.String())
	assert.False(t, n.Equal(s))
	assert.True(t, s.Equal(String("4")))
}

func TestColorSpecJSON(t *testing.T) {
	tests := []struct {
		spec ColorSpec
		json string
	}{
		{ColorSpec{"#fff"}, `"#fff"`},
		{ColorSpec{"#fff", "#000"}, `["#fff","#000"]`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.spec)
		require.NoError(t, err)
		assert.Equal(t, tt.json, string(data))

		var back ColorSpec
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, tt.spec, back)
	}
}

func TestCellRangeUnion(t *testing.T) {
	a := CellRange{R1: 2, C1: 1, R2: 4, C2: 1}
	b := CellRange{R1: 3, C1: 3, R2: 6, C2: 3}

	assert.Equal(t, CellRange{R1: 2, C1: 1, R2: 6, C2: 3}, a.Union(b))
	assert.Equal(t, a, a.Union(CellRange{}))
	assert.Equal(t, b, CellRange{}.Union(b))
}

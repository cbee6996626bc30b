// Package models defines data structures for chart hydration.
package models

// ChartType is the chart kind understood by the renderer.
type ChartType string

const (
	ChartLine     ChartType = "line"
	ChartBar      ChartType = "bar"
	ChartPie      ChartType = "pie"
	ChartDoughnut ChartType = "doughnut"
	ChartScatter  ChartType = "scatter"
	ChartBubble   ChartType = "bubble"
	ChartRadar    ChartType = "radar"
)

// ChartTypes lists every supported chart type.
var ChartTypes = []ChartType{
	ChartLine, ChartBar, ChartPie, ChartDoughnut, ChartScatter, ChartBubble, ChartRadar,
}

// IsProportional reports whether the chart shows parts of a whole (pie, doughnut).
// Proportional charts use a single value series and have no axes.
func (t ChartType) IsProportional() bool {
	return t == ChartPie || t == ChartDoughnut
}

// IsKnown reports whether t is one of ChartTypes.
func (t ChartType) IsKnown() bool {
	for _, ct := range ChartTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// SemanticType is the declared logical type of a column.
type SemanticType string

const (
	TypeString      SemanticType = "string"
	TypeNumeric     SemanticType = "numeric"
	TypeDate        SemanticType = "date"
	TypeDatetime    SemanticType = "datetime"
	TypeBoolean     SemanticType = "boolean"
	TypeCategorical SemanticType = "categorical"
)

// IsKnown reports whether t is a recognised semantic type.
func (t SemanticType) IsKnown() bool {
	switch t {
	case TypeString, TypeNumeric, TypeDate, TypeDatetime, TypeBoolean, TypeCategorical:
		return true
	}
	return false
}

// DisplayFormat is an optional presentation hint for numeric values.
type DisplayFormat string

const (
	FormatNone       DisplayFormat = ""
	FormatInteger    DisplayFormat = "integer"
	FormatPercentage DisplayFormat = "percentage"
	FormatCurrency   DisplayFormat = "currency"
	FormatDecimal    DisplayFormat = "decimal"
)

// IsKnown reports whether f is empty or a recognised display format.
func (f DisplayFormat) IsKnown() bool {
	switch f {
	case FormatNone, FormatInteger, FormatPercentage, FormatCurrency, FormatDecimal:
		return true
	}
	return false
}

// ValueMapping projects one row column into a data series.
type ValueMapping struct {
	// Column is the row column supplying the values.
	Column string `json:"column" yaml:"column"`
	// Label is the series display label.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Type is the semantic type of the column.
	Type SemanticType `json:"type,omitempty" yaml:"type,omitempty"`
	// Format is the optional display format.
	Format DisplayFormat `json:"format,omitempty" yaml:"format,omitempty"`
	// Color is used for both fill and stroke of cartesian series.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// AxisTitles holds optional axis titles for cartesian charts.
type AxisTitles struct {
	X string `json:"x,omitempty" yaml:"x,omitempty"`
	Y string `json:"y,omitempty" yaml:"y,omitempty"`
}

// ColumnMapping describes how tabular rows are projected into a chart.
type ColumnMapping struct {
	// ChartType is the chart kind.
	ChartType ChartType `json:"chartType" yaml:"chartType"`
	// LabelColumn supplies category / x-axis labels.
	LabelColumn string `json:"labelColumn" yaml:"labelColumn"`
	// LabelType is the semantic type of LabelColumn (default "string").
	LabelType SemanticType `json:"labelType,omitempty" yaml:"labelType,omitempty"`
	// ValueMappings lists the value series in display order.
	// Proportional charts only use the first entry.
	ValueMappings []ValueMapping `json:"valueMappings" yaml:"valueMappings"`
	// Title is the chart title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// AxisTitles is only meaningful for cartesian charts.
	AxisTitles *AxisTitles `json:"axisTitles,omitempty" yaml:"axisTitles,omitempty"`
}

// EffectiveLabelType returns LabelType, or TypeString when unset.
func (m ColumnMapping) EffectiveLabelType() SemanticType {
	if m.LabelType == "" {
		return TypeString
	}
	return m.LabelType
}

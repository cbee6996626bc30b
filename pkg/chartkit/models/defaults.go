package models

// Defaults used when the mapping leaves a display string unset.
const (
	// DefaultDatasetLabel labels a series without a display label or column.
	DefaultDatasetLabel = "Value"
	// DefaultChartTitle is the title used when the mapping has none.
	DefaultChartTitle = "Chart"
	// NoDataLabel labels the placeholder dataset of an empty chart.
	NoDataLabel = "No data"
	// DefaultBorderWidth is the stroke width of every built dataset.
	DefaultBorderWidth = 1
)

// Legend positions. Proportional charts read better with the legend beside them.
const (
	LegendPositionProportional = "right"
	LegendPositionCartesian    = "top"
)

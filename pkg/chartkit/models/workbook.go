package models

// ImportedChart is a chart found in a workbook, expressed as a column mapping.
type ImportedChart struct {
	// Sheet is the sheet hosting the chart drawing.
	Sheet string `json:"sheet" yaml:"sheet"`
	// Name is the drawing object name (e.g. "Chart 1").
	Name string `json:"name" yaml:"name"`
	// DataSheet is the sheet holding the series data.
	DataSheet string `json:"dataSheet" yaml:"dataSheet"`
	// DataRange covers the category and value ranges of every series.
	DataRange CellRange `json:"dataRange" yaml:"dataRange"`
	// Mapping projects DataSheet rows into the chart.
	Mapping ColumnMapping `json:"mapping" yaml:"mapping"`
}

// RenderedChart pairs an imported chart with its hydrated configuration.
type RenderedChart struct {
	Sheet  string              `json:"sheet"`
	Name   string              `json:"name"`
	Config *ChartConfiguration `json:"config"`
}

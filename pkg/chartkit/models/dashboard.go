package models

// DashboardChart is one query-backed chart on a dashboard.
type DashboardChart struct {
	// ID identifies the chart within the dashboard.
	ID string `json:"id" yaml:"id"`
	// Query is the SQL statement producing the chart rows.
	Query string `json:"query" yaml:"query"`
	// Mapping projects the query rows into the chart.
	Mapping ColumnMapping `json:"mapping" yaml:"mapping"`
}

// Dashboard is a named, ordered set of charts.
type Dashboard struct {
	Name   string           `json:"name" yaml:"name"`
	Charts []DashboardChart `json:"charts" yaml:"charts"`
}

// DashboardChartView is a hydrated dashboard chart.
type DashboardChartView struct {
	ID     string              `json:"id"`
	Config *ChartConfiguration `json:"config"`
}

// DashboardView is a hydrated dashboard, charts in dashboard order.
type DashboardView struct {
	Name   string               `json:"name"`
	Charts []DashboardChartView `json:"charts"`
}

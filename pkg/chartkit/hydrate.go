package chartkit

import (
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transform"
)

// Hydrate builds a chart configuration from a mapping and query rows.
//
// It never returns nil: without rows or value mappings the result is a
// placeholder with no labels and a single empty "No data" dataset. Every call
// allocates a fresh configuration and leaves rows untouched, so Hydrate is
// safe for concurrent use. The chart type is copied as-is; validate it
// upstream with ValidateMapping.
func Hydrate(mapping models.ColumnMapping, rows []models.Row, opts Options) *models.ChartConfiguration {
	proportional := mapping.ChartType.IsProportional()
	options := transform.BuildOptions(mapping, proportional)

	if len(rows) == 0 || len(mapping.ValueMappings) == 0 {
		return emptyConfiguration(mapping.ChartType, options)
	}

	f := opts.formatter()
	labelType := mapping.EffectiveLabelType()
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = f.Format(row[mapping.LabelColumn], labelType, models.FormatNone).String()
	}

	return &models.ChartConfiguration{
		Type: mapping.ChartType,
		Data: models.ChartData{
			Labels:   labels,
			Datasets: transform.BuildDatasets(mapping, rows, f),
		},
		Options: options,
	}
}

func emptyConfiguration(chartType models.ChartType, options models.ChartOptions) *models.ChartConfiguration {
	return &models.ChartConfiguration{
		Type: chartType,
		Data: models.ChartData{
			Labels: []string{},
			Datasets: []models.Dataset{{
				Label: models.NoDataLabel,
				Data:  []models.Value{},
			}},
		},
		Options: options,
	}
}

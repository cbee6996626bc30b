package transform

import "github.com/ukaji3/chartkit-go/pkg/chartkit/models"

// BuildOptions derives rendering options from the mapping.
// Scales are only emitted for cartesian charts.
func BuildOptions(m models.ColumnMapping, proportional bool) models.ChartOptions {
	title := m.Title
	if title == "" {
		title = models.DefaultChartTitle
	}

	opts := models.ChartOptions{
		Responsive:          true,
		MaintainAspectRatio: false,
		Plugins: models.PluginOptions{
			Title: models.TitleOptions{Display: true, Text: title},
			Legend: models.LegendOptions{
				Display:  true,
				Position: models.LegendPositionCartesian,
			},
		},
	}

	if proportional {
		opts.Plugins.Legend.Position = models.LegendPositionProportional
		return opts
	}

	var axes models.AxisTitles
	if m.AxisTitles != nil {
		axes = *m.AxisTitles
	}
	opts.Scales = &models.Scales{
		X: axisOptions(axes.X),
		Y: axisOptions(axes.Y),
	}
	return opts
}

func axisOptions(title string) models.AxisOptions {
	if title == "" {
		return models.AxisOptions{}
	}
	return models.AxisOptions{Title: &models.TitleOptions{Display: true, Text: title}}
}

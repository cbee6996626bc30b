package transform

import "github.com/ukaji3/chartkit-go/pkg/chartkit/models"

// BuildDatasets projects rows into datasets following the mapping.
//
// Proportional charts get exactly one dataset built from the first value
// mapping; cartesian charts get one dataset per value mapping, in mapping
// order. Row order is preserved and rows are neither sorted nor aggregated.
// It returns nil when the mapping has no value mappings.
func BuildDatasets(m models.ColumnMapping, rows []models.Row, f Formatter) []models.Dataset {
	if len(m.ValueMappings) == 0 {
		return nil
	}

	if m.ChartType.IsProportional() {
		vm := m.ValueMappings[0]
		label := vm.Label
		if label == "" {
			label = models.DefaultDatasetLabel
		}
		return []models.Dataset{{
			Label:       label,
			Data:        columnValues(rows, vm, f),
			BorderWidth: models.DefaultBorderWidth,
		}}
	}

	datasets := make([]models.Dataset, 0, len(m.ValueMappings))
	for _, vm := range m.ValueMappings {
		ds := models.Dataset{
			Label:       seriesLabel(vm),
			Data:        columnValues(rows, vm, f),
			BorderWidth: models.DefaultBorderWidth,
		}
		if vm.Color != "" {
			ds.BackgroundColor = models.ColorSpec{vm.Color}
			ds.BorderColor = models.ColorSpec{vm.Color}
		}
		datasets = append(datasets, ds)
	}
	return datasets
}

// seriesLabel falls back from the display label to the column name.
func seriesLabel(vm models.ValueMapping) string {
	switch {
	case vm.Label != "":
		return vm.Label
	case vm.Column != "":
		return vm.Column
	default:
		return models.DefaultDatasetLabel
	}
}

// columnValues formats one column across all rows. The result is never nil.
func columnValues(rows []models.Row, vm models.ValueMapping, f Formatter) []models.Value {
	data := make([]models.Value, len(rows))
	for i, row := range rows {
		data[i] = f.Format(row[vm.Column], vm.Type, vm.Format)
	}
	return data
}

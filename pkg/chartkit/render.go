package chartkit

import (
	"fmt"
	"os"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transform"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/workbook"
)

// RenderWorkbook hydrates every importable chart embedded in an xlsx file
// from the cells it plots.
func RenderWorkbook(path string, opts Options) ([]models.RenderedChart, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	wb, err := workbook.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	result := make([]models.RenderedChart, 0, len(wb.Charts))
	for _, chart := range wb.Charts {
		rows, err := source.ReadRange(wb.File, chart.DataSheet, chart.DataRange)
		if err != nil {
			return nil, &ChartError{ChartID: chart.Name, Err: err}
		}

		cfg := Hydrate(chart.Mapping, rows, opts)
		if len(opts.Palette) > 0 {
			cfg = transform.ApplyPalette(cfg, opts.Palette)
		}
		result = append(result, models.RenderedChart{
			Sheet:  chart.Sheet,
			Name:   chart.Name,
			Config: cfg,
		})
	}
	return result, nil
}

package transform

import (
	"slices"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// DefaultPalette is the colour cycle used when no palette is configured.
var DefaultPalette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// ApplyPalette returns a copy of cfg with colours assigned from palette.
//
// A proportional chart gets one colour per slice. Cartesian datasets that
// already carry a colour keep it; the others take palette[i%len(palette)]
// for both fill and stroke. cfg itself is not modified.
func ApplyPalette(cfg *models.ChartConfiguration, palette []string) *models.ChartConfiguration {
	if cfg == nil {
		return nil
	}
	out := *cfg
	out.Data.Labels = slices.Clone(cfg.Data.Labels)
	out.Data.Datasets = make([]models.Dataset, len(cfg.Data.Datasets))
	for i, ds := range cfg.Data.Datasets {
		ds.Data = slices.Clone(ds.Data)
		ds.BackgroundColor = slices.Clone(ds.BackgroundColor)
		ds.BorderColor = slices.Clone(ds.BorderColor)
		out.Data.Datasets[i] = ds
	}
	if len(palette) == 0 {
		return &out
	}

	if cfg.Type.IsProportional() {
		for i := range out.Data.Datasets {
			ds := &out.Data.Datasets[i]
			if len(ds.Data) == 0 {
				continue
			}
			colors := make(models.ColorSpec, len(ds.Data))
			for j := range colors {
				colors[j] = palette[j%len(palette)]
			}
			ds.BackgroundColor = colors
		}
		return &out
	}

	for i := range out.Data.Datasets {
		ds := &out.Data.Datasets[i]
		if len(ds.BackgroundColor) > 0 {
			continue
		}
		c := palette[i%len(palette)]
		ds.BackgroundColor = models.ColorSpec{c}
		ds.BorderColor = models.ColorSpec{c}
	}
	return &out
}

package chartkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func TestValidateMapping(t *testing.T) {
	valid := func() models.ColumnMapping {
		return models.ColumnMapping{
			ChartType:   models.ChartBar,
			LabelColumn: "month",
			ValueMappings: []models.ValueMapping{
				{Column: "sales", Type: models.TypeNumeric, Format: models.FormatCurrency},
				{Column: "cost"},
			},
		}
	}

	tests := []struct {
		name   string
		modify func(*models.ColumnMapping)
		field  string
	}{
		{"valid", func(*models.ColumnMapping) {}, ""},
		{"unknown chart type", func(m *models.ColumnMapping) { m.ChartType = "area" }, "chartType"},
		{"empty chart type", func(m *models.ColumnMapping) { m.ChartType = "" }, "chartType"},
		{"blank label column", func(m *models.ColumnMapping) { m.LabelColumn = "  " }, "labelColumn"},
		{"unknown label type", func(m *models.ColumnMapping) { m.LabelType = "time" }, "labelType"},
		{"no value mappings", func(m *models.ColumnMapping) { m.ValueMappings = nil }, "valueMappings"},
		{"missing column", func(m *models.ColumnMapping) { m.ValueMappings[1].Column = "" }, "valueMappings[1].column"},
		{"unknown type", func(m *models.ColumnMapping) { m.ValueMappings[0].Type = "money" }, "valueMappings[0].type"},
		{"unknown format", func(m *models.ColumnMapping) { m.ValueMappings[0].Format = "scientific" }, "valueMappings[0].format"},
		{"blank color", func(m *models.ColumnMapping) { m.ValueMappings[1].Color = " " }, "valueMappings[1].color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.modify(&m)

			err := ValidateMapping(m)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidMapping)
			var mappingErr *MappingError
			require.True(t, errors.As(err, &mappingErr))
			assert.Equal(t, tt.field, mappingErr.Field)
		})
	}
}

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func TestToJSON(t *testing.T) {
	cfg := &models.ChartConfiguration{
		Type: models.ChartBar,
		Data: models.ChartData{
			Labels: []string{"<a>"},
			Datasets: []models.Dataset{{
				Label: "S&P",
				Data:  []models.Value{models.Number(1.5)},
			}},
		},
	}

	compact, err := ToJSON(cfg, false)
	require.NoError(t, err)
	assert.Contains(t, string(compact), `"labels":["<a>"]`)
	assert.Contains(t, string(compact), `"label":"S&P"`)
	assert.NotContains(t, string(compact), "\n")

	pretty, err := ToJSON(cfg, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"data\": {")
	assert.JSONEq(t, string(compact), string(pretty))
}

func TestToYAML(t *testing.T) {
	m := models.ColumnMapping{
		ChartType:   models.ChartPie,
		LabelColumn: "region",
		ValueMappings: []models.ValueMapping{
			{Column: "total", Type: models.TypeNumeric},
		},
	}

	data, err := ToYAML(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), "chartType: pie\n")

	var back models.ColumnMapping
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}

package models

import "encoding/json"

// ColorSpec holds dataset colours. A single colour marshals as a string,
// several marshal as an array (one per data point), none are omitted.
type ColorSpec []string

// MarshalJSON implements json.Marshaler.
func (c ColorSpec) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

// UnmarshalJSON accepts either a string or an array of strings.
func (c *ColorSpec) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*c = nil
		} else {
			*c = ColorSpec{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*c = many
	return nil
}

// Dataset is one named series of chart values.
type Dataset struct {
	// Label is the legend label of the series.
	Label string `json:"label"`
	// Data holds one value per row, in row order.
	Data []Value `json:"data"`
	// BackgroundColor is the fill colour(s).
	BackgroundColor ColorSpec `json:"backgroundColor,omitempty"`
	// BorderColor is the stroke colour(s).
	BorderColor ColorSpec `json:"borderColor,omitempty"`
	// BorderWidth is the stroke width (omitted when zero).
	BorderWidth int `json:"borderWidth,omitempty"`
}

// ChartData holds labels and datasets.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// TitleOptions configures the chart title block.
type TitleOptions struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// LegendOptions configures the legend.
type LegendOptions struct {
	Display  bool   `json:"display"`
	Position string `json:"position"`
}

// PluginOptions groups the title and legend options.
type PluginOptions struct {
	Title  TitleOptions  `json:"title"`
	Legend LegendOptions `json:"legend"`
}

// AxisOptions configures one axis. Title is nil when no axis title is set.
type AxisOptions struct {
	Title *TitleOptions `json:"title,omitempty"`
}

// Scales holds the cartesian axes.
type Scales struct {
	X AxisOptions `json:"x"`
	Y AxisOptions `json:"y"`
}

// ChartOptions is the rendering options object.
type ChartOptions struct {
	Responsive          bool          `json:"responsive"`
	MaintainAspectRatio bool          `json:"maintainAspectRatio"`
	Plugins             PluginOptions `json:"plugins"`
	// Scales is nil for proportional charts, which reject axis configuration.
	Scales *Scales `json:"scales,omitempty"`
}

// ChartConfiguration is the renderer-ready chart.
type ChartConfiguration struct {
	Type    ChartType    `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

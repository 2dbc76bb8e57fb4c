package eventmodels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ReferenceLineYAML struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

type ChartConfigYAML struct {
	Title          string              `yaml:"title"`
	Subtitle       string              `yaml:"subtitle"`
	SeriesColors   []string            `yaml:"series_colors"`
	ReferenceLines []ReferenceLineYAML `yaml:"reference_lines"`
	YAxisMin       float64             `yaml:"y_axis_min"`
	YAxisMax       float64             `yaml:"y_axis_max"`
}

// SeriesColor returns the color for the i-th series, wrapping around when
// there are more series than configured colors.
func (c *ChartConfigYAML) SeriesColor(i int) string {
	if len(c.SeriesColors) == 0 {
		return ""
	}

	return c.SeriesColors[i%len(c.SeriesColors)]
}

// Colors returns the palette for n series, wrapping past the configured
// list.
func (c *ChartConfigYAML) Colors(n int) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		colors = append(colors, c.SeriesColor(i))
	}

	return colors
}

// DefaultChartConfig matches the contract's published curve: the 1.0x base
// and the 1.5x cap, rendered between 1.0 and 1.6 on the y-axis.
func DefaultChartConfig() *ChartConfigYAML {
	return &ChartConfigYAML{
		Title:        "Sapien Staking Multiplier by Token Amount and Lockup Period",
		Subtitle:     "Live Data from Solidity Contract",
		SeriesColors: []string{"gray", "blue", "green", "orange", "black"},
		ReferenceLines: []ReferenceLineYAML{
			{Label: "Base (1.0x)", Value: 1.0},
			{Label: "Max (1.5x)", Value: 1.5},
		},
		YAxisMin: 1.0,
		YAxisMax: 1.6,
	}
}

// LoadChartConfig reads a ChartConfigYAML from path. A missing file is not
// an error: the built-in defaults are returned instead.
func LoadChartConfig(path string) (*ChartConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultChartConfig(), nil
		}

		return nil, fmt.Errorf("LoadChartConfig: failed to read %s: %v", path, err)
	}

	config := DefaultChartConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("LoadChartConfig: failed to parse %s: %v", path, err)
	}

	return config, nil
}

package charting

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

// BuildMultiplierHeatMap pivots the table into a tokens x lockup_days grid
// and renders it as an annotated heatmap. The pivot error propagates when
// the pairs do not form a complete rectangle.
func BuildMultiplierHeatMap(table eventmodels.MultiplierTable, config *eventmodels.ChartConfigYAML) (*charts.HeatMap, error) {
	grid, err := table.Pivot()
	if err != nil {
		return nil, fmt.Errorf("BuildMultiplierHeatMap: %w", err)
	}

	heatmap := charts.NewHeatMap()

	xLabels := make([]string, 0, len(grid.ColumnIndex))
	for _, lockup := range grid.ColumnIndex {
		xLabels = append(xLabels, strconv.Itoa(lockup))
	}

	yLabels := make([]string, 0, len(grid.RowIndex))
	for _, tokens := range grid.RowIndex {
		yLabels = append(yLabels, strconv.FormatFloat(tokens, 'f', -1, 64))
	}

	heatmap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Multiplier Heatmap",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Lockup Days",
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Token Amount",
			Type:      "category",
			Data:      yLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(grid.MinValue()),
			Max:        float32(grid.MaxValue()),
			Text:       []string{"Multiplier (x)", ""},
			InRange: &opts.VisualMapInRange{
				Color: []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
			},
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1000px",
			Height: "600px",
		}),
	)

	data := make([]opts.HeatMapData, 0, len(grid.RowIndex)*len(grid.ColumnIndex))
	for yi, row := range grid.Values {
		for xi, value := range row {
			// Cell annotations are shown to three decimal places.
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{xi, yi, math.Round(value*1000) / 1000},
			})
		}
	}

	heatmap.SetXAxis(xLabels).AddSeries("Multiplier", data,
		charts.WithLabelOpts(opts.Label{
			Show:  opts.Bool(true),
			Color: "white",
		}),
	)

	return heatmap, nil
}

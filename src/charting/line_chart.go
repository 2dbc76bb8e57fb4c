package charting

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

// BuildMultiplierLineChart plots the decimal multiplier against token
// amount, one series per lockup period. Series colors are assigned in
// ascending lockup order from the configured palette.
func BuildMultiplierLineChart(table eventmodels.MultiplierTable, config *eventmodels.ChartConfigYAML) *charts.Line {
	line := charts.NewLine()

	lockups := table.DistinctLockupDays()

	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Token Amount",
			Type: "value",
			Min:  0,
			Max:  table.MaxTokens() * 1.05,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Multiplier (x)",
			Type: "value",
			Min:  config.YAxisMin,
			Max:  config.YAxisMax,
		}),
		charts.WithColorsOpts(opts.Colors(config.Colors(len(lockups)))),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1200px",
			Height: "600px",
		}),
	)

	for i, lockup := range lockups {
		rows := table.FilterByLockupDays(lockup)

		data := make([]opts.LineData, 0, len(rows))
		for _, r := range rows {
			data = append(data, opts.LineData{
				Value: []interface{}{r.Tokens, r.MultiplierDecimal},
			})
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(true),
			}),
		}

		// Attach the horizontal reference lines to the first series only,
		// so they are drawn once.
		if i == 0 {
			for _, ref := range config.ReferenceLines {
				seriesOpts = append(seriesOpts, charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
					Name:  ref.Label,
					YAxis: ref.Value,
				}))
			}

			seriesOpts = append(seriesOpts, charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
				Symbol: []string{"none", "none"},
				LineStyle: &opts.LineStyle{
					Type:    "dashed",
					Opacity: 0.5,
				},
			}))
		}

		line.AddSeries(fmt.Sprintf("%d days", lockup), data, seriesOpts...)
	}

	return line
}

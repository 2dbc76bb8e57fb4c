package charting

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

// BonusLockupDays is the lockup period the bonus breakdown is rendered
// for: the full-year lockup where the curve reaches its cap.
const BonusLockupDays = 365

// BuildBonusChart plots the bonus percentage above the 1.0x base against
// token amount for the 365-day lockup. A table with no 365-day rows
// produces an empty chart.
func BuildBonusChart(table eventmodels.MultiplierTable, config *eventmodels.ChartConfigYAML) *charts.Line {
	line := charts.NewLine()

	rows := table.FilterByLockupDays(BonusLockupDays)

	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Total Bonus vs Token Amount (%d days)", BonusLockupDays),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Token Amount",
			Type: "value",
			Min:  0,
			Max:  rows.MaxTokens() * 1.05,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Total Bonus (%)",
			Type: "value",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1200px",
			Height: "500px",
		}),
	)

	data := make([]opts.LineData, 0, len(rows))
	for _, r := range rows {
		data = append(data, opts.LineData{
			Value: []interface{}{r.Tokens, r.Bonus()},
		})
	}

	line.AddSeries("Total Bonus", data, charts.WithLineChartOpts(opts.LineChart{
		ShowSymbol: opts.Bool(true),
	}))

	return line
}

// RenderBonusTable writes the 365-day multiplier summary to w: one row per
// record with the formatted amount, the multiplier to three decimal places
// and the bonus percentage to one.
func RenderBonusTable(w io.Writer, table eventmodels.MultiplierTable) {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	tbl := tablewriter.NewWriter(display)
	tbl.SetHeader([]string{"Amount", "Multiplier", "Total Bonus"})
	tbl.SetAlignment(tablewriter.ALIGN_CENTER)
	tbl.SetColumnSeparator("")

	display.WriteString(fmt.Sprintf("Multiplier Summary (%d days):\n", BonusLockupDays))

	for _, r := range table.FilterByLockupDays(BonusLockupDays) {
		amount := p.Sprintf("%.0f tokens", r.Tokens)
		multiplier := fmt.Sprintf("%.3fx", r.MultiplierDecimal)
		bonus := fmt.Sprintf("%.1f%%", r.Bonus())

		tbl.Append([]string{amount, multiplier, bonus})
	}

	tbl.Render()
	fmt.Fprint(w, display.String())
}

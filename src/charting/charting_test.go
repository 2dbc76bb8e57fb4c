package charting

import (
	"bytes"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

func newTestTable() eventmodels.MultiplierTable {
	return eventmodels.MultiplierTable{
		{Tokens: 100, LockupDays: 30, Multiplier: 10000, MultiplierDecimal: 1.0},
		{Tokens: 100, LockupDays: 365, Multiplier: 15000, MultiplierDecimal: 1.5},
		{Tokens: 200, LockupDays: 30, Multiplier: 10050, MultiplierDecimal: 1.005},
		{Tokens: 200, LockupDays: 365, Multiplier: 15200, MultiplierDecimal: 1.52},
	}
}

func TestBuildMultiplierLineChart(t *testing.T) {
	t.Run("one series per lockup period", func(t *testing.T) {
		line := BuildMultiplierLineChart(newTestTable(), eventmodels.DefaultChartConfig())

		require.Len(t, line.MultiSeries, 2)
		assert.Equal(t, "30 days", line.MultiSeries[0].Name)
		assert.Equal(t, "365 days", line.MultiSeries[1].Name)
	})

	t.Run("renders without error", func(t *testing.T) {
		line := BuildMultiplierLineChart(newTestTable(), eventmodels.DefaultChartConfig())

		var buf bytes.Buffer
		require.NoError(t, line.Render(&buf))
		assert.Contains(t, buf.String(), "Sapien Staking Multiplier")
	})
}

func TestBuildBonusChart(t *testing.T) {
	t.Run("plots only the 365-day rows", func(t *testing.T) {
		line := BuildBonusChart(newTestTable(), eventmodels.DefaultChartConfig())

		require.Len(t, line.MultiSeries, 1)
		assert.Len(t, line.MultiSeries[0].Data, 2)
	})

	t.Run("no 365-day rows produces an empty chart", func(t *testing.T) {
		table := eventmodels.MultiplierTable{
			{Tokens: 100, LockupDays: 30, Multiplier: 10000, MultiplierDecimal: 1.0},
		}

		line := BuildBonusChart(table, eventmodels.DefaultChartConfig())

		require.Len(t, line.MultiSeries, 1)
		assert.Len(t, line.MultiSeries[0].Data, 0)
	})
}

func TestRenderBonusTable(t *testing.T) {
	t.Run("shows amount, multiplier and bonus per row", func(t *testing.T) {
		var buf bytes.Buffer
		RenderBonusTable(&buf, newTestTable())

		out := buf.String()
		assert.Contains(t, out, "Multiplier Summary (365 days):")
		assert.Contains(t, out, "100 tokens")
		assert.Contains(t, out, "1.500x")
		assert.Contains(t, out, "50.0%")
		assert.Contains(t, out, "1.520x")
		assert.Contains(t, out, "52.0%")
	})
}

func TestBuildMultiplierHeatMap(t *testing.T) {
	t.Run("builds from a complete grid", func(t *testing.T) {
		heatmap, err := BuildMultiplierHeatMap(newTestTable(), eventmodels.DefaultChartConfig())

		require.NoError(t, err)
		require.Len(t, heatmap.MultiSeries, 1)
		assert.Len(t, heatmap.MultiSeries[0].Data, 4)
	})

	t.Run("incomplete grid fails", func(t *testing.T) {
		_, err := BuildMultiplierHeatMap(newTestTable()[:3], eventmodels.DefaultChartConfig())

		assert.Error(t, err)
	})
}

func TestRenderChartsPage(t *testing.T) {
	t.Run("writes the page to the output directory", func(t *testing.T) {
		outDir := path.Join(t.TempDir(), "charts")

		outPath, err := RenderChartsPage(newTestTable(), eventmodels.DefaultChartConfig(), outDir)

		require.NoError(t, err)
		assert.Equal(t, path.Join(outDir, ChartsPageFilename), outPath)

		raw, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Multiplier Heatmap")
	})

	t.Run("pivot failure propagates", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteChartsPage(newTestTable()[:3], eventmodels.DefaultChartConfig(), &buf)

		assert.Error(t, err)
	})
}

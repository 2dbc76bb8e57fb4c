package charting

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/go-echarts/go-echarts/v2/components"
	log "github.com/sirupsen/logrus"

	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

const ChartsPageFilename = "multiplier_charts.html"

// RenderChartsPage writes all three charts into a single HTML page under
// outDir and returns the path written.
func RenderChartsPage(table eventmodels.MultiplierTable, config *eventmodels.ChartConfigYAML, outDir string) (string, error) {
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return "", fmt.Errorf("RenderChartsPage: failed to create directory: %w", err)
		}
	}

	outPath := path.Join(outDir, ChartsPageFilename)

	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("RenderChartsPage: failed to create file: %w", err)
	}

	defer file.Close()

	if err := WriteChartsPage(table, config, file); err != nil {
		return "", err
	}

	log.Infof("Rendered charts to %s", outPath)

	return outPath, nil
}

// WriteChartsPage renders the line chart, bonus chart and heatmap as one
// page to w.
func WriteChartsPage(table eventmodels.MultiplierTable, config *eventmodels.ChartConfigYAML, w io.Writer) error {
	heatmap, err := BuildMultiplierHeatMap(table, config)
	if err != nil {
		return fmt.Errorf("WriteChartsPage: %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		BuildMultiplierLineChart(table, config),
		BuildBonusChart(table, config),
		heatmap,
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("WriteChartsPage: failed to render page: %v", err)
	}

	return nil
}

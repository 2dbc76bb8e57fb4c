package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sapien-tools/multiplier-charts/src/charting"
	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
	"github.com/sapien-tools/multiplier-charts/src/eventservices"
	"github.com/sapien-tools/multiplier-charts/src/utils"
)

type RunArgs struct {
	CsvFile         string
	OutDir          string
	ChartConfigFile string
}

type RunResults struct {
	ChartsFilepath string
	Summary        eventservices.TableSummary
}

var rootCmd = &cobra.Command{
	Use:   "multiplier-charts",
	Short: "Renders staking multiplier charts from a CSV exported by the staking contract's forge script.",
	Long: `This program reads a CSV file with header tokens,lockup_days,multiplier,
derives the decimal multiplier for each row and renders:
1.) A line chart of multiplier vs token amount, one series per lockup period
2.) A bonus breakdown chart and summary table for the 365-day lockup
3.) A tokens x lockup_days multiplier heatmap

The charts are written to a single HTML page, followed by summary statistics
printed to the console.`,
	Run: func(cmd *cobra.Command, args []string) {
		csvFile, err := cmd.Flags().GetString("csv-file")
		if err != nil {
			log.Fatalf("error getting csv-file: %v", err)
		}

		outDir, err := cmd.Flags().GetString("out-dir")
		if err != nil {
			log.Fatalf("error getting out-dir: %v", err)
		}

		chartConfigFile, err := cmd.Flags().GetString("chart-config")
		if err != nil {
			log.Fatalf("error getting chart-config: %v", err)
		}

		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if err := utils.InitEnvironmentVariables(goEnv); err != nil {
			log.Fatalf("error initializing environment variables: %v", err)
		}

		if envOutDir := os.Getenv("OUTPUT_DIR"); envOutDir != "" {
			outDir = envOutDir
		}

		result, err := Run(RunArgs{
			CsvFile:         csvFile,
			OutDir:          outDir,
			ChartConfigFile: chartConfigFile,
		})

		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Println("CSV file not found. Please provide data using one of these methods:")
				fmt.Printf("1. Save the forge script output to '%s'\n", csvFile)
				fmt.Println("2. Pipe the forge output through extract_forge_output to recover the CSV rows")
			}

			log.Fatalf("error running command: %v", err)
		}

		fmt.Print(result.Summary)
	},
}

func Run(args RunArgs) (RunResults, error) {
	table, err := eventservices.LoadMultiplierTable(eventservices.LoadTableArgs{
		CsvFile: args.CsvFile,
	})
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to load multiplier table: %w", err)
	}

	log.Infof("Reading from CSV file %s: %d rows", args.CsvFile, len(table))

	table = eventservices.DeriveDecimalMultipliers(table)

	config, err := eventmodels.LoadChartConfig(args.ChartConfigFile)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to load chart config: %v", err)
	}

	chartsFilepath, err := charting.RenderChartsPage(table, config, args.OutDir)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to render charts: %v", err)
	}

	charting.RenderBonusTable(os.Stdout, table)

	summary, err := eventservices.ComputeSummary(table)
	if err != nil {
		return RunResults{}, fmt.Errorf("failed to compute summary: %v", err)
	}

	return RunResults{
		ChartsFilepath: chartsFilepath,
		Summary:        summary,
	}, nil
}

func main() {
	rootCmd.PersistentFlags().String("csv-file", "multipliers.csv", "The CSV file to read multiplier data from.")
	rootCmd.PersistentFlags().String("out-dir", ".", "The directory to write the rendered charts to. Overridden by the OUTPUT_DIR environment variable.")
	rootCmd.PersistentFlags().String("chart-config", "charts.yaml", "Optional YAML file overriding chart titles, palette and reference lines.")
	rootCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")

	rootCmd.Execute()
}

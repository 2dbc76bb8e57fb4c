package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sapien-tools/multiplier-charts/src/eventservices"
)

type RunArgs struct {
	InFile  string
	OutFile string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/export_table/main.go --inFile multipliers.csv --outFile multipliers_derived.csv",
	Short: "Re-exports a multiplier CSV with the derived multiplier_decimal column added.",
	Run: func(cmd *cobra.Command, args []string) {
		inFile, err := cmd.Flags().GetString("inFile")
		if err != nil {
			log.Fatalf("error getting inFile: %v", err)
		}

		outFile, err := cmd.Flags().GetString("outFile")
		if err != nil {
			log.Fatalf("error getting outFile: %v", err)
		}

		if err := Run(RunArgs{
			InFile:  inFile,
			OutFile: outFile,
		}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	table, err := eventservices.LoadMultiplierTable(eventservices.LoadTableArgs{
		CsvFile: args.InFile,
	})
	if err != nil {
		return fmt.Errorf("failed to load multiplier table: %w", err)
	}

	table = eventservices.DeriveDecimalMultipliers(table)

	if err := eventservices.ExportTableToCsv(table, args.OutFile); err != nil {
		return fmt.Errorf("failed to export table: %w", err)
	}

	return nil
}

func main() {
	runCmd.PersistentFlags().String("inFile", "", "The CSV file to read multiplier data from.")
	runCmd.PersistentFlags().String("outFile", "", "The CSV file to write the derived table to.")

	runCmd.MarkPersistentFlagRequired("inFile")
	runCmd.MarkPersistentFlagRequired("outFile")

	runCmd.Execute()
}

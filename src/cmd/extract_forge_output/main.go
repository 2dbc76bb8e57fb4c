package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sapien-tools/multiplier-charts/src/forgeoutput"
)

type RunArgs struct {
	InFile  string
	OutFile string
}

type RunResults struct {
	RowsRecovered int
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/extract_forge_output/main.go --inFile forge_output.txt --outFile multipliers.csv",
	Short: "Extracts CSV multiplier rows from forge script console output.",
	Long: `This program scans free-form forge script output for the
tokens,lockup_days,multiplier header and its data rows, and writes the
reassembled CSV. Reads stdin when --inFile is not set, writes stdout when
--outFile is not set.`,
	Run: func(cmd *cobra.Command, args []string) {
		inFile, err := cmd.Flags().GetString("inFile")
		if err != nil {
			log.Fatalf("error getting inFile: %v", err)
		}

		outFile, err := cmd.Flags().GetString("outFile")
		if err != nil {
			log.Fatalf("error getting outFile: %v", err)
		}

		if result, err := Run(RunArgs{
			InFile:  inFile,
			OutFile: outFile,
		}); err != nil {
			log.Fatalf("error running command: %v", err)
		} else {
			log.Infof("Recovered %d multiplier rows", result.RowsRecovered)
		}
	},
}

func Run(args RunArgs) (RunResults, error) {
	var raw []byte
	var err error

	if args.InFile != "" {
		raw, err = os.ReadFile(args.InFile)
		if err != nil {
			return RunResults{}, fmt.Errorf("failed to read file: %v", err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return RunResults{}, fmt.Errorf("failed to read stdin: %v", err)
		}
	}

	csvContent := forgeoutput.ExtractCsv(string(raw))

	if args.OutFile != "" {
		if err := os.WriteFile(args.OutFile, []byte(csvContent+"\n"), 0644); err != nil {
			return RunResults{}, fmt.Errorf("failed to write file: %v", err)
		}
	} else {
		fmt.Println(csvContent)
	}

	return RunResults{
		RowsRecovered: forgeoutput.CountDataRows(csvContent),
	}, nil
}

func main() {
	runCmd.PersistentFlags().String("inFile", "", "The file to read forge output from. Reads stdin when empty.")
	runCmd.PersistentFlags().String("outFile", "", "The file to write the extracted CSV to. Writes stdout when empty.")

	runCmd.Execute()
}

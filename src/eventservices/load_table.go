package eventservices

import (
	"errors"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

// ErrInvalidArgument is returned when the loader is not given exactly one
// data source.
var ErrInvalidArgument = errors.New("exactly one of CsvFile or CsvText must be set")

type LoadTableArgs struct {
	// CsvFile is a path to a CSV file with header tokens,lockup_days,multiplier.
	CsvFile string
	// CsvText is the same CSV content as an in-memory blob.
	CsvText string
}

// LoadMultiplierTable reads multiplier records from a CSV file or an
// in-memory CSV blob. A missing file surfaces as an error wrapping
// os.ErrNotExist so callers can branch on it.
func LoadMultiplierTable(args LoadTableArgs) (eventmodels.MultiplierTable, error) {
	if (args.CsvFile == "") == (args.CsvText == "") {
		return nil, fmt.Errorf("LoadMultiplierTable: %w", ErrInvalidArgument)
	}

	var csvRows []*eventmodels.MultiplierRecordDTO

	if args.CsvFile != "" {
		f, err := os.Open(args.CsvFile)
		if err != nil {
			return nil, fmt.Errorf("LoadMultiplierTable: failed to open file: %w", err)
		}

		defer f.Close()

		if err := gocsv.UnmarshalFile(f, &csvRows); err != nil {
			return nil, fmt.Errorf("LoadMultiplierTable: failed to unmarshal CSV file %s: %v", args.CsvFile, err)
		}
	} else {
		if err := gocsv.UnmarshalString(args.CsvText, &csvRows); err != nil {
			return nil, fmt.Errorf("LoadMultiplierTable: failed to unmarshal CSV text: %v", err)
		}
	}

	table := make(eventmodels.MultiplierTable, 0, len(csvRows))
	for _, row := range csvRows {
		table = append(table, row.ToModel())
	}

	return table, nil
}

package eventservices

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

type exportRowDTO struct {
	Tokens            float64 `csv:"tokens"`
	LockupDays        int     `csv:"lockup_days"`
	Multiplier        int     `csv:"multiplier"`
	MultiplierDecimal float64 `csv:"multiplier_decimal"`
}

// ExportTableToCsv writes the table, including the derived decimal column,
// to outFile. Parent directories are created as needed.
func ExportTableToCsv(table eventmodels.MultiplierTable, outFile string) error {
	outDir := filepath.Dir(outFile)
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return fmt.Errorf("ExportTableToCsv: failed to create directory: %w", err)
		}
	}

	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("ExportTableToCsv: failed to create file: %w", err)
	}

	defer file.Close()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = ','
		return gocsv.NewSafeCSVWriter(writer)
	})

	rows := make([]*exportRowDTO, 0, len(table))
	for _, r := range table {
		rows = append(rows, &exportRowDTO{
			Tokens:            r.Tokens,
			LockupDays:        r.LockupDays,
			Multiplier:        r.Multiplier,
			MultiplierDecimal: r.MultiplierDecimal,
		})
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("ExportTableToCsv: failed to write to file: %w", err)
	}

	log.Infof("Exported %d multiplier rows to %s", len(rows), outFile)

	return nil
}

package eventservices

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportTableToCsv(t *testing.T) {
	t.Run("round trip preserves rows and adds the derived column", func(t *testing.T) {
		table, err := LoadMultiplierTable(LoadTableArgs{CsvText: testCsv})
		require.NoError(t, err)

		table = DeriveDecimalMultipliers(table)

		outFile := filepath.Join(t.TempDir(), "out", "multipliers_derived.csv")
		require.NoError(t, ExportTableToCsv(table, outFile))

		raw, err := os.ReadFile(outFile)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, "tokens,lockup_days,multiplier,multiplier_decimal", lines[0])
		assert.Contains(t, lines, "100,365,15000,1.5")

		reloaded, err := LoadMultiplierTable(LoadTableArgs{CsvFile: outFile})
		require.NoError(t, err)

		require.Len(t, reloaded, len(table))
		for i := range table {
			assert.Equal(t, table[i].Tokens, reloaded[i].Tokens)
			assert.Equal(t, table[i].LockupDays, reloaded[i].LockupDays)
			assert.Equal(t, table[i].Multiplier, reloaded[i].Multiplier)
		}
	})
}

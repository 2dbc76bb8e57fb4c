package eventservices

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCsv = "tokens,lockup_days,multiplier\n100,30,10000\n100,365,15000\n200,30,10050\n200,365,15200\n"

func writeTestCsv(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "multipliers.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCsv), 0644))

	return path
}

func TestLoadMultiplierTable(t *testing.T) {
	t.Run("loads from text", func(t *testing.T) {
		table, err := LoadMultiplierTable(LoadTableArgs{CsvText: testCsv})

		require.NoError(t, err)
		require.Len(t, table, 4)
		assert.Equal(t, 100.0, table[0].Tokens)
		assert.Equal(t, 30, table[0].LockupDays)
		assert.Equal(t, 10000, table[0].Multiplier)
		assert.Equal(t, 15200, table[3].Multiplier)
	})

	t.Run("loads from file", func(t *testing.T) {
		path := writeTestCsv(t)

		table, err := LoadMultiplierTable(LoadTableArgs{CsvFile: path})

		require.NoError(t, err)
		assert.Len(t, table, 4)
	})

	t.Run("neither source fails with invalid argument", func(t *testing.T) {
		_, err := LoadMultiplierTable(LoadTableArgs{})

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("both sources fail with invalid argument", func(t *testing.T) {
		path := writeTestCsv(t)

		_, err := LoadMultiplierTable(LoadTableArgs{CsvFile: path, CsvText: testCsv})

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("missing file wraps os.ErrNotExist", func(t *testing.T) {
		_, err := LoadMultiplierTable(LoadTableArgs{CsvFile: filepath.Join(t.TempDir(), "missing.csv")})

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed multiplier column fails", func(t *testing.T) {
		_, err := LoadMultiplierTable(LoadTableArgs{CsvText: "tokens,lockup_days,multiplier\n100,30,abc\n"})

		assert.Error(t, err)
	})

	t.Run("loading is idempotent", func(t *testing.T) {
		path := writeTestCsv(t)

		first, err := LoadMultiplierTable(LoadTableArgs{CsvFile: path})
		require.NoError(t, err)

		second, err := LoadMultiplierTable(LoadTableArgs{CsvFile: path})
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, *first[i], *second[i])
		}

		fromText, err := LoadMultiplierTable(LoadTableArgs{CsvText: testCsv})
		require.NoError(t, err)

		require.Len(t, fromText, len(first))
		for i := range first {
			assert.Equal(t, *first[i], *fromText[i])
		}
	})
}

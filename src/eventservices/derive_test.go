package eventservices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

func TestDeriveDecimalMultipliers(t *testing.T) {
	t.Run("every row satisfies multiplier over 10000", func(t *testing.T) {
		table, err := LoadMultiplierTable(LoadTableArgs{CsvText: testCsv})
		require.NoError(t, err)

		derived := DeriveDecimalMultipliers(table)

		require.Len(t, derived, len(table))
		for _, r := range derived {
			assert.Equal(t, float64(r.Multiplier)/10000.0, r.MultiplierDecimal)
		}
	})

	t.Run("input table is not modified", func(t *testing.T) {
		table := eventmodels.MultiplierTable{
			{Tokens: 100, LockupDays: 365, Multiplier: 15000},
		}

		derived := DeriveDecimalMultipliers(table)

		assert.Equal(t, 1.5, derived[0].MultiplierDecimal)
		assert.Equal(t, 0.0, table[0].MultiplierDecimal)
	})

	t.Run("empty table derives to empty table", func(t *testing.T) {
		derived := DeriveDecimalMultipliers(eventmodels.MultiplierTable{})

		assert.Len(t, derived, 0)
	})
}

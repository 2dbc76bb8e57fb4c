package eventservices

import (
	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

// DeriveDecimalMultipliers returns a copy of the table with
// MultiplierDecimal populated on every record. The input table is left
// untouched.
func DeriveDecimalMultipliers(table eventmodels.MultiplierTable) eventmodels.MultiplierTable {
	derived := make(eventmodels.MultiplierTable, 0, len(table))
	for _, r := range table {
		record := *r
		record.MultiplierDecimal = float64(record.Multiplier) / eventmodels.MultiplierScale
		derived = append(derived, &record)
	}

	return derived
}

package eventservices

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/sapien-tools/multiplier-charts/src/eventmodels"
)

type TableSummary struct {
	TokenAmounts  []float64
	LockupPeriods []int
	MultiplierMin int
	MultiplierMax int
}

// MaxMultiplierDecimal returns the largest multiplier in decimal form.
func (s TableSummary) MaxMultiplierDecimal() float64 {
	return float64(s.MultiplierMax) / eventmodels.MultiplierScale
}

func (s TableSummary) String() string {
	display := &strings.Builder{}

	display.WriteString("\nSummary Statistics:\n")
	display.WriteString(strings.Repeat("=", 50) + "\n")
	display.WriteString(fmt.Sprintf("Token amounts tested: %v\n", s.TokenAmounts))
	display.WriteString(fmt.Sprintf("Lockup periods tested: %v days\n", s.LockupPeriods))
	display.WriteString(fmt.Sprintf("Multiplier range: %d - %d\n", s.MultiplierMin, s.MultiplierMax))
	display.WriteString(fmt.Sprintf("Max multiplier: %.3fx\n", s.MaxMultiplierDecimal()))

	return display.String()
}

// ComputeSummary aggregates the multiplier column of the table.
func ComputeSummary(table eventmodels.MultiplierTable) (TableSummary, error) {
	if len(table) == 0 {
		return TableSummary{}, fmt.Errorf("ComputeSummary: table is empty")
	}

	multipliers := make([]float64, 0, len(table))
	for _, r := range table {
		multipliers = append(multipliers, float64(r.Multiplier))
	}

	min, err := stats.Min(multipliers)
	if err != nil {
		return TableSummary{}, fmt.Errorf("ComputeSummary: failed to calculate min: %v", err)
	}

	max, err := stats.Max(multipliers)
	if err != nil {
		return TableSummary{}, fmt.Errorf("ComputeSummary: failed to calculate max: %v", err)
	}

	return TableSummary{
		TokenAmounts:  table.DistinctTokens(),
		LockupPeriods: table.DistinctLockupDays(),
		MultiplierMin: int(min),
		MultiplierMax: int(max),
	}, nil
}

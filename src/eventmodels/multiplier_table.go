package eventmodels

import (
	"fmt"
	"sort"
)

type MultiplierTable []*MultiplierRecord

// DistinctLockupDays returns the unique lockup periods in the table,
// sorted ascending.
func (t MultiplierTable) DistinctLockupDays() []int {
	seen := make(map[int]struct{})
	for _, r := range t {
		seen[r.LockupDays] = struct{}{}
	}

	lockups := make([]int, 0, len(seen))
	for lockup := range seen {
		lockups = append(lockups, lockup)
	}

	sort.Ints(lockups)

	return lockups
}

// DistinctTokens returns the unique token amounts in the table, sorted
// ascending.
func (t MultiplierTable) DistinctTokens() []float64 {
	seen := make(map[float64]struct{})
	for _, r := range t {
		seen[r.Tokens] = struct{}{}
	}

	tokens := make([]float64, 0, len(seen))
	for amount := range seen {
		tokens = append(tokens, amount)
	}

	sort.Float64s(tokens)

	return tokens
}

// FilterByLockupDays returns the rows matching the given lockup period,
// sorted by token amount ascending. An empty result is not an error.
func (t MultiplierTable) FilterByLockupDays(days int) MultiplierTable {
	var filtered MultiplierTable
	for _, r := range t {
		if r.LockupDays == days {
			filtered = append(filtered, r)
		}
	}

	return filtered.SortedByTokens()
}

// SortedByTokens returns a copy of the table sorted by token amount
// ascending. The receiver is not modified.
func (t MultiplierTable) SortedByTokens() MultiplierTable {
	sorted := make(MultiplierTable, len(t))
	copy(sorted, t)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tokens < sorted[j].Tokens
	})

	return sorted
}

func (t MultiplierTable) MaxTokens() float64 {
	max := 0.0
	for _, r := range t {
		if r.Tokens > max {
			max = r.Tokens
		}
	}

	return max
}

// Pivot reshapes the table into a grid indexed by token amount (rows) and
// lockup period (columns), with MultiplierDecimal as the cell value. The
// (tokens, lockup_days) pairs must form a complete rectangle: a duplicate
// or missing combination is an error.
func (t MultiplierTable) Pivot() (*PivotGrid, error) {
	cells := make(map[float64]map[int]float64)
	for _, r := range t {
		row, found := cells[r.Tokens]
		if !found {
			row = make(map[int]float64)
			cells[r.Tokens] = row
		}

		if _, found := row[r.LockupDays]; found {
			return nil, fmt.Errorf("MultiplierTable.Pivot: duplicate entry for tokens=%v, lockup_days=%d", r.Tokens, r.LockupDays)
		}

		row[r.LockupDays] = r.MultiplierDecimal
	}

	rowIndex := t.DistinctTokens()
	columnIndex := t.DistinctLockupDays()

	values := make([][]float64, 0, len(rowIndex))
	for _, tokens := range rowIndex {
		row := make([]float64, 0, len(columnIndex))
		for _, lockup := range columnIndex {
			value, found := cells[tokens][lockup]
			if !found {
				return nil, fmt.Errorf("MultiplierTable.Pivot: missing entry for tokens=%v, lockup_days=%d", tokens, lockup)
			}

			row = append(row, value)
		}

		values = append(values, row)
	}

	return &PivotGrid{
		RowIndex:    rowIndex,
		ColumnIndex: columnIndex,
		Values:      values,
	}, nil
}

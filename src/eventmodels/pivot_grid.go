package eventmodels

// PivotGrid is a rectangular view of a MultiplierTable: one row per token
// amount, one column per lockup period, MultiplierDecimal in each cell.
type PivotGrid struct {
	RowIndex    []float64
	ColumnIndex []int
	Values      [][]float64
}

func (g *PivotGrid) MinValue() float64 {
	min := 0.0
	first := true
	for _, row := range g.Values {
		for _, v := range row {
			if first || v < min {
				min = v
				first = false
			}
		}
	}

	return min
}

func (g *PivotGrid) MaxValue() float64 {
	max := 0.0
	for _, row := range g.Values {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}

	return max
}

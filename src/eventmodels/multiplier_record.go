package eventmodels

// BaseMultiplier is the fixed-point representation of the 1.0x base
// multiplier used by the staking contract.
const BaseMultiplier = 10000

// MultiplierScale converts the contract's fixed-point multiplier into
// decimal form, e.g. 15000 -> 1.5x.
const MultiplierScale = 10000.0

type MultiplierRecord struct {
	Tokens     float64
	LockupDays int
	Multiplier int

	// MultiplierDecimal is zero until set by the deriver.
	MultiplierDecimal float64
}

// Bonus returns the multiplier amount above the 1.0x base as a percentage,
// e.g. for multiplier 15000 the bonus is 50.0.
func (r *MultiplierRecord) Bonus() float64 {
	return float64(r.Multiplier-BaseMultiplier) / 100.0
}

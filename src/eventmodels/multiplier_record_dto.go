package eventmodels

// MultiplierRecordDTO mirrors one row of the CSV exported by the staking
// contract's forge script: tokens,lockup_days,multiplier.
type MultiplierRecordDTO struct {
	Tokens     float64 `csv:"tokens"`
	LockupDays int     `csv:"lockup_days"`
	Multiplier int     `csv:"multiplier"`
}

func (dto *MultiplierRecordDTO) ToModel() *MultiplierRecord {
	return &MultiplierRecord{
		Tokens:     dto.Tokens,
		LockupDays: dto.LockupDays,
		Multiplier: dto.Multiplier,
	}
}

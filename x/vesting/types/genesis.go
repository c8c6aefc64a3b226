package types

import (
	errorsmod "cosmossdk.io/errors"
)

// DefaultIndex is the default global index
const DefaultIndex uint64 = 1

// GenesisState defines the vesting module's genesis state.
type GenesisState struct {
	Params       Params          `json:"params"`
	Periods      []VestingPeriod `json:"periods"`
	NextPeriodId uint64          `json:"next_period_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Periods:      []VestingPeriod{},
		NextPeriodId: DefaultIndex,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
	}
	if gs.NextPeriodId < DefaultIndex {
		return errorsmod.Wrapf(ErrInvalidGenesis, "next period id must be at least %d", DefaultIndex)
	}

	seen := make(map[uint64]struct{}, len(gs.Periods))
	for _, period := range gs.Periods {
		if _, ok := seen[period.Id]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicated period id %d", period.Id)
		}
		seen[period.Id] = struct{}{}

		if period.Id == 0 || period.Id >= gs.NextPeriodId {
			return errorsmod.Wrapf(ErrInvalidGenesis, "period id %d outside [1, %d)", period.Id, gs.NextPeriodId)
		}
		if err := period.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "period %d: %s", period.Id, err)
		}
		if period.FullyVested() {
			return errorsmod.Wrapf(ErrInvalidGenesis, "period %d is fully vested and must not be stored", period.Id)
		}
	}
	return nil
}
